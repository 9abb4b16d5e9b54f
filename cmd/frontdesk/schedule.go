// Schedule commands: today's appointments, any calendar day, and the
// six-week month grid.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	scheduleDayDate    string
	scheduleMonthYear  int
	scheduleMonthMonth int
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Query the appointment schedule",
}

var scheduleTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's scheduled appointments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScheduleDay(time.Now())
	},
}

var scheduleDayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show scheduled appointments for one calendar day",
	Long: `Day lists the Scheduled incidents falling on the given calendar day.

Example:
  frontdesk schedule day --date 2025-01-30`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateTime(scheduleDayDate)
		if err != nil {
			return err
		}
		return runScheduleDay(day)
	},
}

var scheduleMonthCmd = &cobra.Command{
	Use:   "month",
	Short: "Show the six-week calendar grid for a month",
	Long: `Month prints the calendar grid the clinic wall calendar shows: 42 days
starting the Sunday on or before the 1st, with each day's Scheduled
appointments. Requires an Admin session.

Example:
  frontdesk schedule month --year 2025 --month 1`,
	Args: cobra.NoArgs,
	RunE: runScheduleMonth,
}

func init() {
	now := time.Now()
	scheduleDayCmd.Flags().StringVar(&scheduleDayDate, "date", "", "calendar day, YYYY-MM-DD (required)")
	_ = scheduleDayCmd.MarkFlagRequired("date")
	scheduleMonthCmd.Flags().IntVar(&scheduleMonthYear, "year", now.Year(), "calendar year")
	scheduleMonthCmd.Flags().IntVar(&scheduleMonthMonth, "month", int(now.Month()), "calendar month (1-12)")

	scheduleCmd.AddCommand(scheduleTodayCmd)
	scheduleCmd.AddCommand(scheduleDayCmd)
	scheduleCmd.AddCommand(scheduleMonthCmd)
}

func runScheduleDay(day time.Time) error {
	user, err := session()
	if err != nil {
		return err
	}

	appointments, err := clinic.AppointmentsOn(user, day)
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	if flagJSON {
		return printJSON(appointments)
	}
	fmt.Printf("Appointments on %s:\n", day.Format("2006-01-02"))
	printIncidentTable(appointments)
	return nil
}

func runScheduleMonth(cmd *cobra.Command, args []string) error {
	user, err := session()
	if err != nil {
		return err
	}
	if scheduleMonthMonth < 1 || scheduleMonthMonth > 12 {
		return fmt.Errorf("invalid month %d", scheduleMonthMonth)
	}

	grid, err := clinic.MonthSchedule(user, scheduleMonthYear, time.Month(scheduleMonthMonth))
	if err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	if flagJSON {
		return printJSON(grid)
	}

	fmt.Printf("%s %d\n", grid.Month, grid.Year)
	for week := 0; week < 6; week++ {
		for _, day := range grid.Days[week*7 : week*7+7] {
			marker := " "
			if len(day.Appointments) > 0 {
				marker = fmt.Sprintf("*%d", len(day.Appointments))
			}
			if day.InMonth {
				fmt.Printf("%3d%-3s", day.Date.Day(), marker)
			} else {
				fmt.Printf("  .%-3s", "")
			}
		}
		fmt.Println()
	}
	return nil
}
