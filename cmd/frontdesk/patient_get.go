// Patient get command shows one patient record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var patientGetCmd = &cobra.Command{
	Use:   "get <patient-id>",
	Short: "Show one patient record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := session()
		if err != nil {
			return err
		}

		p, err := clinic.GetPatient(user, args[0])
		if err != nil {
			return fmt.Errorf("get patient: %w", err)
		}

		if flagJSON {
			return printJSON(p)
		}
		fmt.Printf("ID:      %s\n", p.ID)
		fmt.Printf("Name:    %s\n", p.Name)
		fmt.Printf("DOB:     %s\n", p.DOB)
		fmt.Printf("Contact: %s\n", p.Contact)
		fmt.Printf("Health:  %s\n", p.HealthInfo)
		if p.Email != "" {
			fmt.Printf("Email:   %s\n", p.Email)
		}
		return nil
	},
}
