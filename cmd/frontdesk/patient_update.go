// Patient update command merges changed fields into a record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

var (
	patientUpdateName    string
	patientUpdateDOB     string
	patientUpdateContact string
	patientUpdateHealth  string
	patientUpdateEmail   string
)

var patientUpdateCmd = &cobra.Command{
	Use:   "update <patient-id>",
	Short: "Update fields on a patient record",
	Long: `Update merges the given flags into the stored record; fields not flagged
are preserved. Requires an Admin session.

Example:
  frontdesk patient update p1 --contact 5550001111
  frontdesk patient update p2 --health "Allergic to penicillin"`,
	Args: cobra.ExactArgs(1),
	RunE: runPatientUpdate,
}

func init() {
	patientUpdateCmd.Flags().StringVar(&patientUpdateName, "name", "", "full name")
	patientUpdateCmd.Flags().StringVar(&patientUpdateDOB, "dob", "", "date of birth, YYYY-MM-DD")
	patientUpdateCmd.Flags().StringVar(&patientUpdateContact, "contact", "", "phone number")
	patientUpdateCmd.Flags().StringVar(&patientUpdateHealth, "health", "", "health information")
	patientUpdateCmd.Flags().StringVar(&patientUpdateEmail, "email", "", "email for login correlation")
}

func runPatientUpdate(cmd *cobra.Command, args []string) error {
	user, err := session()
	if err != nil {
		return err
	}

	var update types.PatientUpdate
	if cmd.Flags().Changed("name") {
		update.Name = &patientUpdateName
	}
	if cmd.Flags().Changed("dob") {
		update.DOB = &patientUpdateDOB
	}
	if cmd.Flags().Changed("contact") {
		update.Contact = &patientUpdateContact
	}
	if cmd.Flags().Changed("health") {
		update.HealthInfo = &patientUpdateHealth
	}
	if cmd.Flags().Changed("email") {
		update.Email = &patientUpdateEmail
	}

	p, err := clinic.UpdatePatient(user, args[0], update)
	if err != nil {
		return fmt.Errorf("update patient: %w", err)
	}

	if flagJSON {
		return printJSON(p)
	}
	fmt.Printf("Updated patient: %s\n", p.ID)
	return nil
}
