// This file implements the derived read queries: per-patient aggregates, the
// day and window schedule filters, the month calendar grid, and the admin
// dashboard totals. None of them mutate or persist anything.
package sqlite

import (
	"fmt"
	"time"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

// sameCalendarDay reports whether t falls on the same calendar day as day,
// judged in day's location.
func sameCalendarDay(t, day time.Time) bool {
	y1, m1, d1 := t.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// dayKey buckets a time by calendar day in the given location.
func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(types.DOBLayout)
}

// PatientSummary aggregates one patient's incident history: completed and
// upcoming counts, and total spend over completed treatments. Admins may
// summarize any patient; a Patient session only itself.
func (b *Backend) PatientSummary(session *types.User, patientID string) (*types.PatientSummary, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.requireSession(session); err != nil {
		return nil, err
	}
	if patientID == "" {
		return nil, types.ErrInvalidID
	}
	if !session.CanViewPatient(patientID) {
		return nil, types.ErrUnauthorized
	}

	p, err := b.getPatient(patientID)
	if err != nil {
		return nil, err
	}

	summary := &types.PatientSummary{
		PatientID: p.ID,
		Name:      p.Name,
		Age:       p.Age(time.Now()),
	}

	err = b.db.QueryRow(
		"SELECT COUNT(*), COALESCE(SUM(cost), 0) FROM incidents WHERE patient_id = ? AND status = ?",
		patientID, types.StatusCompleted,
	).Scan(&summary.CompletedCount, &summary.TotalSpent)
	if err != nil {
		return nil, fmt.Errorf("aggregating completed incidents: %w", err)
	}

	err = b.db.QueryRow(
		"SELECT COUNT(*) FROM incidents WHERE patient_id = ? AND status = ?",
		patientID, types.StatusScheduled,
	).Scan(&summary.UpcomingCount)
	if err != nil {
		return nil, fmt.Errorf("counting upcoming incidents: %w", err)
	}

	return summary, nil
}

// scheduledVisible returns the Scheduled incidents the session may see.
// The caller must hold b.mu.
func (b *Backend) scheduledVisible(session *types.User) ([]types.Incident, error) {
	filter := types.IncidentFilter{Status: types.StatusScheduled}
	if !session.IsAdmin() {
		filter.PatientID = session.PatientID
	}
	return b.fetchIncidents(filter)
}

// AppointmentsOn returns the Scheduled incidents whose appointment falls on
// the same calendar day as day, judged in day's location.
func (b *Backend) AppointmentsOn(session *types.User, day time.Time) ([]types.Incident, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.requireSession(session); err != nil {
		return nil, err
	}

	scheduled, err := b.scheduledVisible(session)
	if err != nil {
		return nil, err
	}
	matches := make([]types.Incident, 0)
	for _, i := range scheduled {
		if sameCalendarDay(i.AppointmentDate, day) {
			matches = append(matches, i)
		}
	}
	return matches, nil
}

// UpcomingAppointments returns the Scheduled incidents with an appointment in
// [from, until).
func (b *Backend) UpcomingAppointments(session *types.User, from, until time.Time) ([]types.Incident, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.requireSession(session); err != nil {
		return nil, err
	}

	scheduled, err := b.scheduledVisible(session)
	if err != nil {
		return nil, err
	}
	matches := make([]types.Incident, 0)
	for _, i := range scheduled {
		if !i.AppointmentDate.Before(from) && i.AppointmentDate.Before(until) {
			matches = append(matches, i)
		}
	}
	return matches, nil
}

// MonthSchedule builds the six-week calendar grid for the given month: 42
// consecutive days starting the Sunday on or before the 1st, each with its
// Scheduled incidents. Admin only.
func (b *Backend) MonthSchedule(session *types.User, year int, month time.Month) (*types.MonthSchedule, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.requireAdmin(session); err != nil {
		return nil, err
	}

	scheduled, err := b.scheduledVisible(session)
	if err != nil {
		return nil, err
	}

	loc := time.Local
	byDay := make(map[string][]types.Incident)
	for _, i := range scheduled {
		key := dayKey(i.AppointmentDate, loc)
		byDay[key] = append(byDay[key], i)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	grid := &types.MonthSchedule{
		Year:  year,
		Month: month,
		Days:  make([]types.ScheduleDay, 0, 42),
	}
	for n := 0; n < 42; n++ {
		day := start.AddDate(0, 0, n)
		appointments := byDay[dayKey(day, loc)]
		if appointments == nil {
			appointments = []types.Incident{}
		}
		grid.Days = append(grid.Days, types.ScheduleDay{
			Date:         day,
			InMonth:      day.Month() == month,
			Appointments: appointments,
		})
	}
	return grid, nil
}

// DashboardStats computes the clinic-wide totals shown on the admin
// dashboard: patient count, incident counts by status, today's scheduled
// appointments, and revenue over completed treatments. Admin only.
func (b *Backend) DashboardStats(session *types.User) (*types.DashboardStats, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.requireAdmin(session); err != nil {
		return nil, err
	}

	stats := &types.DashboardStats{StatusCounts: make(map[string]int)}

	if err := b.db.QueryRow("SELECT COUNT(*) FROM patients").Scan(&stats.PatientCount); err != nil {
		return nil, fmt.Errorf("counting patients: %w", err)
	}

	rows, err := b.db.Query("SELECT status, COUNT(*) FROM incidents GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("counting incidents by status: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.StatusCounts[status] = count
		stats.IncidentCount += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = b.db.QueryRow(
		"SELECT COALESCE(SUM(cost), 0) FROM incidents WHERE status = ?",
		types.StatusCompleted,
	).Scan(&stats.TotalRevenue)
	if err != nil {
		return nil, fmt.Errorf("summing revenue: %w", err)
	}

	scheduled, err := b.scheduledVisible(session)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for _, i := range scheduled {
		if sameCalendarDay(i.AppointmentDate, now) {
			stats.ScheduledToday++
		}
	}

	return stats, nil
}
