// Patient delete command removes a record and its incidents.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var patientDeleteCmd = &cobra.Command{
	Use:   "delete <patient-id>",
	Short: "Delete a patient and all their incidents",
	Long: `Delete removes the patient record and cascades to every incident
referencing it. Requires an Admin session.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := session()
		if err != nil {
			return err
		}

		if err := clinic.DeletePatient(user, args[0]); err != nil {
			return fmt.Errorf("delete patient: %w", err)
		}
		fmt.Printf("Deleted patient %s and associated incidents\n", args[0])
		return nil
	},
}
