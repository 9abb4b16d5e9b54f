// Incident delete command removes one appointment record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var incidentDeleteCmd = &cobra.Command{
	Use:   "delete <incident-id>",
	Short: "Delete an appointment record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := session()
		if err != nil {
			return err
		}

		if err := clinic.DeleteIncident(user, args[0]); err != nil {
			return fmt.Errorf("delete incident: %w", err)
		}
		fmt.Printf("Deleted incident %s\n", args[0])
		return nil
	},
}
