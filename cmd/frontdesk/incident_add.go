// Incident add command schedules a new appointment.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

var (
	incidentAddPatient     string
	incidentAddTitle       string
	incidentAddDescription string
	incidentAddComments    string
	incidentAddDate        string
	incidentAddStatus      string
	incidentAddCost        float64
	incidentAddTreatment   string
	incidentAddNextDate    string
	incidentAddFiles       []string
)

var incidentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new appointment record",
	Long: `Add creates a new incident (appointment/treatment record) for a patient.
The patient must exist. Requires an Admin session.

Example:
  frontdesk incident add --patient p1 --title "Toothache" --date 2025-02-10T10:00
  frontdesk incident add --patient p2 --title "Cleaning" --date 2025-02-12T14:00 --status Pending
  frontdesk incident add --patient p1 --title "Checkup" --date 2025-02-15T09:00 --file "xray.png:data:image/png"`,
	Args: cobra.NoArgs,
	RunE: runIncidentAdd,
}

func init() {
	incidentAddCmd.Flags().StringVar(&incidentAddPatient, "patient", "", "patient ID (required)")
	incidentAddCmd.Flags().StringVar(&incidentAddTitle, "title", "", "title (required)")
	incidentAddCmd.Flags().StringVar(&incidentAddDescription, "description", "", "description")
	incidentAddCmd.Flags().StringVar(&incidentAddComments, "comments", "", "comments")
	incidentAddCmd.Flags().StringVar(&incidentAddDate, "date", "", "appointment date-time (required)")
	incidentAddCmd.Flags().StringVar(&incidentAddStatus, "status", types.StatusScheduled, "status (Scheduled, Completed, Cancelled, Pending)")
	incidentAddCmd.Flags().Float64Var(&incidentAddCost, "cost", 0, "treatment cost")
	incidentAddCmd.Flags().StringVar(&incidentAddTreatment, "treatment", "", "treatment performed")
	incidentAddCmd.Flags().StringVar(&incidentAddNextDate, "next-date", "", "recommended follow-up date-time")
	incidentAddCmd.Flags().StringArrayVar(&incidentAddFiles, "file", nil, "attachment as name:url:type (repeatable)")
	_ = incidentAddCmd.MarkFlagRequired("patient")
	_ = incidentAddCmd.MarkFlagRequired("title")
	_ = incidentAddCmd.MarkFlagRequired("date")
}

func runIncidentAdd(cmd *cobra.Command, args []string) error {
	user, err := session()
	if err != nil {
		return err
	}

	date, err := parseDateTime(incidentAddDate)
	if err != nil {
		return err
	}

	draft := types.Incident{
		PatientID:       incidentAddPatient,
		Title:           incidentAddTitle,
		Description:     incidentAddDescription,
		Comments:        incidentAddComments,
		AppointmentDate: date,
		Status:          incidentAddStatus,
		Treatment:       incidentAddTreatment,
	}
	if cmd.Flags().Changed("cost") {
		draft.Cost = &incidentAddCost
	}
	if incidentAddNextDate != "" {
		next, err := parseDateTime(incidentAddNextDate)
		if err != nil {
			return err
		}
		draft.NextDate = &next
	}
	for _, f := range incidentAddFiles {
		attachment, err := parseAttachment(f)
		if err != nil {
			return err
		}
		draft.Files = append(draft.Files, attachment)
	}

	created, err := clinic.AddIncident(user, draft)
	if err != nil {
		return fmt.Errorf("add incident: %w", err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created incident: %s\n", created.ID)
	return nil
}
