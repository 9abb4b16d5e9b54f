// Dashboard command shows clinic-wide totals.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show clinic-wide totals",
	Long: `Dashboard prints the numbers the admin landing page shows: patient and
incident counts, today's scheduled appointments, and revenue over completed
treatments. Requires an Admin session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := session()
		if err != nil {
			return err
		}

		stats, err := clinic.DashboardStats(user)
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}

		if flagJSON {
			return printJSON(stats)
		}
		fmt.Printf("Patients:        %d\n", stats.PatientCount)
		fmt.Printf("Incidents:       %d\n", stats.IncidentCount)
		fmt.Printf("Scheduled today: %d\n", stats.ScheduledToday)
		fmt.Printf("Total revenue:   %.2f\n", stats.TotalRevenue)

		statuses := make([]string, 0, len(stats.StatusCounts))
		for status := range stats.StatusCounts {
			statuses = append(statuses, status)
		}
		sort.Strings(statuses)
		for _, status := range statuses {
			fmt.Printf("  %-10s %d\n", status, stats.StatusCounts[status])
		}
		return nil
	},
}
