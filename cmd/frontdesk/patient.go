// Patient command group.
package main

import "github.com/spf13/cobra"

var patientCmd = &cobra.Command{
	Use:   "patient",
	Short: "Manage patient records",
}

func init() {
	patientCmd.AddCommand(patientAddCmd)
	patientCmd.AddCommand(patientGetCmd)
	patientCmd.AddCommand(patientListCmd)
	patientCmd.AddCommand(patientUpdateCmd)
	patientCmd.AddCommand(patientDeleteCmd)
}
