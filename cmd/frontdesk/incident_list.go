// Incident list command shows the visible appointment records.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

var (
	incidentListPatient string
	incidentListStatus  string
)

var incidentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointment records",
	Long: `List shows the incidents visible to the session. An Admin sees every
record; a Patient only their own.

Example:
  frontdesk incident list
  frontdesk incident list --status Scheduled
  frontdesk incident list --patient p1 --json`,
	Args: cobra.NoArgs,
	RunE: runIncidentList,
}

func init() {
	incidentListCmd.Flags().StringVar(&incidentListPatient, "patient", "", "filter by patient ID")
	incidentListCmd.Flags().StringVar(&incidentListStatus, "status", "", "filter by status (Scheduled, Completed, Cancelled, Pending)")
}

func runIncidentList(cmd *cobra.Command, args []string) error {
	user, err := session()
	if err != nil {
		return err
	}

	incidents, err := clinic.ListIncidents(user, types.IncidentFilter{
		PatientID: incidentListPatient,
		Status:    incidentListStatus,
	})
	if err != nil {
		return fmt.Errorf("list incidents: %w", err)
	}

	if flagJSON {
		return printJSON(incidents)
	}
	printIncidentTable(incidents)
	return nil
}

// printIncidentTable prints incidents in a human-readable table format.
func printIncidentTable(incidents []types.Incident) {
	if len(incidents) == 0 {
		fmt.Println("No incidents found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tPATIENT\tTITLE\tDATE\tSTATUS\tCOST")
	fmt.Fprintln(w, "--\t-------\t-----\t----\t------\t----")
	for _, i := range incidents {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(i.ID), shortID(i.PatientID), truncate(i.Title, 30),
			i.AppointmentDate.Local().Format("2006-01-02 15:04"),
			i.Status, costDisplay(i.Cost),
		)
	}
	w.Flush()
	fmt.Print(sb.String())
}
