// Patient list command shows the visible patient collection.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

var patientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List patient records",
	Long: `List shows every patient for an Admin session, or the session's own
record for a Patient session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := session()
		if err != nil {
			return err
		}

		patients, err := clinic.ListPatients(user)
		if err != nil {
			return fmt.Errorf("list patients: %w", err)
		}

		if flagJSON {
			return printJSON(patients)
		}
		printPatientTable(patients)
		return nil
	},
}

// printPatientTable prints patients in a human-readable table format.
func printPatientTable(patients []types.Patient) {
	if len(patients) == 0 {
		fmt.Println("No patients found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tDOB\tCONTACT")
	fmt.Fprintln(w, "--\t----\t---\t-------")
	for _, p := range patients {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", shortID(p.ID), truncate(p.Name, 40), p.DOB, p.Contact)
	}
	w.Flush()
	fmt.Print(sb.String())
}
