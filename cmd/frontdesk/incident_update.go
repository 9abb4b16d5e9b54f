// Incident update command merges changed fields into a record. Completing a
// treatment is an update that sets status, cost, and treatment.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

var (
	incidentUpdatePatient     string
	incidentUpdateTitle       string
	incidentUpdateDescription string
	incidentUpdateComments    string
	incidentUpdateDate        string
	incidentUpdateStatus      string
	incidentUpdateCost        float64
	incidentUpdateTreatment   string
	incidentUpdateNextDate    string
	incidentUpdateFiles       []string
)

var incidentUpdateCmd = &cobra.Command{
	Use:   "update <incident-id>",
	Short: "Update fields on an appointment record",
	Long: `Update merges the given flags into the stored record; fields not flagged
are preserved. Attachments given with --file are appended to the existing
list. Requires an Admin session.

Example:
  frontdesk incident update i2 --status Completed --cost 95 --treatment "Scaling"
  frontdesk incident update i2 --next-date 2025-07-30T14:00
  frontdesk incident update i2 --file "invoice.pdf:data:application/pdf"`,
	Args: cobra.ExactArgs(1),
	RunE: runIncidentUpdate,
}

func init() {
	incidentUpdateCmd.Flags().StringVar(&incidentUpdatePatient, "patient", "", "patient ID")
	incidentUpdateCmd.Flags().StringVar(&incidentUpdateTitle, "title", "", "title")
	incidentUpdateCmd.Flags().StringVar(&incidentUpdateDescription, "description", "", "description")
	incidentUpdateCmd.Flags().StringVar(&incidentUpdateComments, "comments", "", "comments")
	incidentUpdateCmd.Flags().StringVar(&incidentUpdateDate, "date", "", "appointment date-time")
	incidentUpdateCmd.Flags().StringVar(&incidentUpdateStatus, "status", "", "status (Scheduled, Completed, Cancelled, Pending)")
	incidentUpdateCmd.Flags().Float64Var(&incidentUpdateCost, "cost", 0, "treatment cost")
	incidentUpdateCmd.Flags().StringVar(&incidentUpdateTreatment, "treatment", "", "treatment performed")
	incidentUpdateCmd.Flags().StringVar(&incidentUpdateNextDate, "next-date", "", "recommended follow-up date-time")
	incidentUpdateCmd.Flags().StringArrayVar(&incidentUpdateFiles, "file", nil, "attachment to append as name:url:type (repeatable)")
}

func runIncidentUpdate(cmd *cobra.Command, args []string) error {
	user, err := session()
	if err != nil {
		return err
	}
	id := args[0]

	var update types.IncidentUpdate
	if cmd.Flags().Changed("patient") {
		update.PatientID = &incidentUpdatePatient
	}
	if cmd.Flags().Changed("title") {
		update.Title = &incidentUpdateTitle
	}
	if cmd.Flags().Changed("description") {
		update.Description = &incidentUpdateDescription
	}
	if cmd.Flags().Changed("comments") {
		update.Comments = &incidentUpdateComments
	}
	if cmd.Flags().Changed("date") {
		date, err := parseDateTime(incidentUpdateDate)
		if err != nil {
			return err
		}
		update.AppointmentDate = &date
	}
	if cmd.Flags().Changed("status") {
		update.Status = &incidentUpdateStatus
	}
	if cmd.Flags().Changed("cost") {
		update.Cost = &incidentUpdateCost
	}
	if cmd.Flags().Changed("treatment") {
		update.Treatment = &incidentUpdateTreatment
	}
	if cmd.Flags().Changed("next-date") {
		next, err := parseDateTime(incidentUpdateNextDate)
		if err != nil {
			return err
		}
		update.NextDate = &next
	}
	if len(incidentUpdateFiles) > 0 {
		// Appending means: read the current list, extend, replace.
		existing, err := clinic.GetIncident(user, id)
		if err != nil {
			return fmt.Errorf("get incident: %w", err)
		}
		files := append([]types.Attachment{}, existing.Files...)
		for _, f := range incidentUpdateFiles {
			attachment, err := parseAttachment(f)
			if err != nil {
				return err
			}
			files = append(files, attachment)
		}
		update.Files = files
	}

	i, err := clinic.UpdateIncident(user, id, update)
	if err != nil {
		return fmt.Errorf("update incident: %w", err)
	}

	if flagJSON {
		return printJSON(i)
	}
	fmt.Printf("Updated incident: %s\n", i.ID)
	return nil
}
