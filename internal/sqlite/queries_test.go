// Tests for the derived queries: aggregates, day filters, the month grid,
// and dashboard totals.
package sqlite

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

func TestPatientSummary(t *testing.T) {
	b, _ := attachTestBackend(t)
	admin := loginAdmin(t, b)

	// Seed p1 already has {cost:80, Completed} and {Scheduled}.
	summary, err := b.PatientSummary(admin, "p1")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", summary.Name)
	assert.Equal(t, 1, summary.CompletedCount)
	assert.Equal(t, 1, summary.UpcomingCount)
	assert.Equal(t, 80.0, summary.TotalSpent)
	assert.Greater(t, summary.Age, 0)
}

func TestPatientSummaryAccumulates(t *testing.T) {
	b, _ := attachTestBackend(t)
	admin := loginAdmin(t, b)

	cost := 40.0
	draft := testIncidentDraft("p1")
	draft.Status = types.StatusCompleted
	draft.Cost = &cost
	_, err := b.AddIncident(admin, draft)
	require.NoError(t, err)

	summary, err := b.PatientSummary(admin, "p1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.CompletedCount)
	assert.Equal(t, 120.0, summary.TotalSpent)
}

func TestPatientSummaryAuthorization(t *testing.T) {
	b, _ := attachTestBackend(t)
	john := loginJohn(t, b)

	_, err := b.PatientSummary(john, "p1")
	assert.NoError(t, err)

	_, err = b.PatientSummary(john, "p2")
	assert.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = b.PatientSummary(nil, "p1")
	assert.ErrorIs(t, err, types.ErrNoSession)
}

func TestAppointmentsOn(t *testing.T) {
	b, _ := attachTestBackend(t)
	admin := loginAdmin(t, b)

	now := time.Now()

	today := testIncidentDraft("p1")
	today.Title = "Today checkup"
	today.AppointmentDate = now
	_, err := b.AddIncident(admin, today)
	require.NoError(t, err)

	nextWeek := testIncidentDraft("p1")
	nextWeek.Title = "Next week checkup"
	nextWeek.AppointmentDate = now.AddDate(0, 0, 7)
	_, err = b.AddIncident(admin, nextWeek)
	require.NoError(t, err)

	// A completed incident today does not count as an appointment.
	done := testIncidentDraft("p1")
	done.Title = "Done today"
	done.AppointmentDate = now
	done.Status = types.StatusCompleted
	_, err = b.AddIncident(admin, done)
	require.NoError(t, err)

	appointments, err := b.AppointmentsOn(admin, now)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "Today checkup", appointments[0].Title)
}

func TestUpcomingAppointments(t *testing.T) {
	b, _ := attachTestBackend(t)
	admin := loginAdmin(t, b)

	now := time.Now()
	inWindow := testIncidentDraft("p2")
	inWindow.Title = "Tomorrow morning"
	inWindow.AppointmentDate = now.Add(12 * time.Hour)
	_, err := b.AddIncident(admin, inWindow)
	require.NoError(t, err)

	outside := testIncidentDraft("p2")
	outside.Title = "Far future"
	outside.AppointmentDate = now.AddDate(0, 1, 0)
	_, err = b.AddIncident(admin, outside)
	require.NoError(t, err)

	upcoming, err := b.UpcomingAppointments(admin, now, now.Add(48*time.Hour))
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Tomorrow morning", upcoming[0].Title)
}

func TestMonthSchedule(t *testing.T) {
	b, _ := attachTestBackend(t)
	admin := loginAdmin(t, b)

	// Seed i2 is Scheduled for 2025-01-30 14:00 local.
	grid, err := b.MonthSchedule(admin, 2025, time.January)
	require.NoError(t, err)

	require.Len(t, grid.Days, 42)
	assert.Equal(t, time.Sunday, grid.Days[0].Date.Weekday())
	// January 2025 starts on a Wednesday; the grid starts Sunday Dec 29.
	assert.Equal(t, 29, grid.Days[0].Date.Day())
	assert.False(t, grid.Days[0].InMonth)

	var found int
	for _, day := range grid.Days {
		if len(day.Appointments) == 0 {
			continue
		}
		found += len(day.Appointments)
		assert.True(t, day.InMonth)
		assert.Equal(t, 30, day.Date.Day())
		assert.Equal(t, "i2", day.Appointments[0].ID)
	}
	assert.Equal(t, 1, found)
}

func TestMonthScheduleAdminOnly(t *testing.T) {
	b, _ := attachTestBackend(t)
	john := loginJohn(t, b)

	_, err := b.MonthSchedule(john, 2025, time.January)
	assert.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestDashboardStats(t *testing.T) {
	b, _ := attachTestBackend(t)
	admin := loginAdmin(t, b)

	stats, err := b.DashboardStats(admin)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.PatientCount)
	assert.Equal(t, 3, stats.IncidentCount)
	assert.Equal(t, 2, stats.StatusCounts[types.StatusCompleted])
	assert.Equal(t, 1, stats.StatusCounts[types.StatusScheduled])
	assert.Equal(t, 200.0, stats.TotalRevenue)
}

func TestDashboardStatsAdminOnly(t *testing.T) {
	b, _ := attachTestBackend(t)
	john := loginJohn(t, b)

	_, err := b.DashboardStats(john)
	assert.ErrorIs(t, err, types.ErrUnauthorized)
}
