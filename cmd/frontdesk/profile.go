// Profile command shows one patient's treatment summary.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profilePatientID string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show a patient's treatment summary",
	Long: `Profile aggregates a patient's history: completed treatments, upcoming
appointments, and total spend. A Patient session defaults to its own
record; an Admin names one with --patient.

Example:
  frontdesk profile
  frontdesk profile --patient p1`,
	Args: cobra.NoArgs,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profilePatientID, "patient", "", "patient ID (default: the session's own patient)")
}

func runProfile(cmd *cobra.Command, args []string) error {
	user, err := session()
	if err != nil {
		return err
	}

	patientID := profilePatientID
	if patientID == "" {
		if user.PatientID == "" {
			return fmt.Errorf("no patient selected; use --patient")
		}
		patientID = user.PatientID
	}

	summary, err := clinic.PatientSummary(user, patientID)
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}

	if flagJSON {
		return printJSON(summary)
	}
	fmt.Printf("Patient:              %s (%s)\n", summary.Name, summary.PatientID)
	fmt.Printf("Age:                  %d\n", summary.Age)
	fmt.Printf("Completed treatments: %d\n", summary.CompletedCount)
	fmt.Printf("Upcoming visits:      %d\n", summary.UpcomingCount)
	fmt.Printf("Total spent:          %.2f\n", summary.TotalSpent)
	return nil
}
