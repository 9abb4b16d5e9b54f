// Incident get command shows one appointment record.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var incidentGetCmd = &cobra.Command{
	Use:   "get <incident-id>",
	Short: "Show one appointment record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := session()
		if err != nil {
			return err
		}

		i, err := clinic.GetIncident(user, args[0])
		if err != nil {
			return fmt.Errorf("get incident: %w", err)
		}

		if flagJSON {
			return printJSON(i)
		}
		fmt.Printf("ID:          %s\n", i.ID)
		fmt.Printf("Patient:     %s\n", i.PatientID)
		fmt.Printf("Title:       %s\n", i.Title)
		fmt.Printf("Status:      %s\n", i.Status)
		fmt.Printf("Appointment: %s\n", i.AppointmentDate.Local().Format("2006-01-02 15:04"))
		if i.Description != "" {
			fmt.Printf("Description: %s\n", i.Description)
		}
		if i.Comments != "" {
			fmt.Printf("Comments:    %s\n", i.Comments)
		}
		if i.Cost != nil {
			fmt.Printf("Cost:        %.2f\n", *i.Cost)
		}
		if i.Treatment != "" {
			fmt.Printf("Treatment:   %s\n", i.Treatment)
		}
		if i.NextDate != nil {
			fmt.Printf("Next visit:  %s\n", i.NextDate.Local().Format("2006-01-02 15:04"))
		}
		if len(i.Files) > 0 {
			fmt.Printf("Files:       %d attachment(s)\n", len(i.Files))
			for _, f := range i.Files {
				fmt.Printf("  - %s (%s)\n", f.Name, f.Type)
			}
		}
		return nil
	},
}
