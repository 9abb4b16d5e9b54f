// Incident command group. An incident is one scheduled or completed
// appointment/treatment record tied to a patient.
package main

import "github.com/spf13/cobra"

var incidentCmd = &cobra.Command{
	Use:     "incident",
	Aliases: []string{"appointment"},
	Short:   "Manage appointment and treatment records",
}

func init() {
	incidentCmd.AddCommand(incidentAddCmd)
	incidentCmd.AddCommand(incidentGetCmd)
	incidentCmd.AddCommand(incidentListCmd)
	incidentCmd.AddCommand(incidentUpdateCmd)
	incidentCmd.AddCommand(incidentDeleteCmd)
}
