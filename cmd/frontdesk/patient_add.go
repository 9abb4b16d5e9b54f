// Patient add command creates a new patient record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

var (
	patientAddName    string
	patientAddDOB     string
	patientAddContact string
	patientAddHealth  string
	patientAddEmail   string
)

var patientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new patient record",
	Long: `Add creates a new patient record. Requires an Admin session.

Example:
  frontdesk patient add --name "John Doe" --dob 1990-05-10 --contact 1234567890
  frontdesk patient add --name "Jane Smith" --dob 1985-03-22 --contact 0987654321 --health "Allergic to penicillin"`,
	Args: cobra.NoArgs,
	RunE: runPatientAdd,
}

func init() {
	patientAddCmd.Flags().StringVar(&patientAddName, "name", "", "full name (required)")
	patientAddCmd.Flags().StringVar(&patientAddDOB, "dob", "", "date of birth, YYYY-MM-DD (required)")
	patientAddCmd.Flags().StringVar(&patientAddContact, "contact", "", "phone number (required)")
	patientAddCmd.Flags().StringVar(&patientAddHealth, "health", "", "health information")
	patientAddCmd.Flags().StringVar(&patientAddEmail, "email", "", "email for login correlation")
	_ = patientAddCmd.MarkFlagRequired("name")
	_ = patientAddCmd.MarkFlagRequired("dob")
	_ = patientAddCmd.MarkFlagRequired("contact")
}

func runPatientAdd(cmd *cobra.Command, args []string) error {
	user, err := session()
	if err != nil {
		return err
	}

	created, err := clinic.AddPatient(user, types.Patient{
		Name:       patientAddName,
		DOB:        patientAddDOB,
		Contact:    patientAddContact,
		HealthInfo: patientAddHealth,
		Email:      patientAddEmail,
	})
	if err != nil {
		return fmt.Errorf("add patient: %w", err)
	}

	if flagJSON {
		return printJSON(created)
	}
	fmt.Printf("Created patient: %s\n", created.ID)
	return nil
}
