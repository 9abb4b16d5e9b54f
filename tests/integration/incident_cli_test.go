// CLI integration tests for appointment record management and the derived
// schedule and dashboard views.
package integration

import (
	"strings"
	"testing"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

func TestIncidentCRUD(t *testing.T) {
	env := NewTestEnv(t)
	env.LoginAdmin()

	result := env.MustRunFrontdesk("incident", "add",
		"--patient", "p1",
		"--title", "Crown fitting",
		"--description", "Upper left molar",
		"--date", "2025-04-02T10:00",
		"--json")
	created := ParseJSON[types.Incident](t, result.Stdout)
	if created.ID == "" {
		t.Fatal("expected generated incident ID")
	}
	if created.Status != types.StatusScheduled {
		t.Errorf("expected Scheduled default, got %s", created.Status)
	}

	// Complete the treatment with a cost.
	result = env.MustRunFrontdesk("incident", "update", created.ID,
		"--status", "Completed",
		"--cost", "150",
		"--treatment", "Ceramic crown",
		"--json")
	updated := ParseJSON[types.Incident](t, result.Stdout)
	if updated.Cost == nil || *updated.Cost != 150 {
		t.Errorf("expected cost 150, got %v", updated.Cost)
	}
	if updated.Title != created.Title {
		t.Error("update changed the title without being asked to")
	}

	env.MustRunFrontdesk("incident", "delete", created.ID)
	result = env.RunFrontdesk("incident", "get", created.ID)
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for deleted incident, got %d", result.ExitCode)
	}
}

func TestIncidentAddRejectsUnknownPatient(t *testing.T) {
	env := NewTestEnv(t)
	env.LoginAdmin()

	result := env.RunFrontdesk("incident", "add",
		"--patient", "nope",
		"--title", "Phantom",
		"--date", "2025-04-02T10:00")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1, got %d", result.ExitCode)
	}
	if !strings.Contains(result.Stderr, "patient") {
		t.Errorf("expected patient error, got %q", result.Stderr)
	}
}

func TestIncidentAttachments(t *testing.T) {
	env := NewTestEnv(t)
	env.LoginAdmin()

	result := env.MustRunFrontdesk("incident", "add",
		"--patient", "p2",
		"--title", "X-ray review",
		"--date", "2025-04-05T09:00",
		"--file", "xray.png:data:image/png;base64,AAAA:image/png",
		"--json")
	created := ParseJSON[types.Incident](t, result.Stdout)
	if len(created.Files) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(created.Files))
	}
	if created.Files[0].Name != "xray.png" {
		t.Errorf("unexpected attachment name %s", created.Files[0].Name)
	}

	// A second file appends rather than replaces.
	result = env.MustRunFrontdesk("incident", "update", created.ID,
		"--file", "invoice.pdf:data:application/pdf;base64,BBBB:application/pdf",
		"--json")
	updated := ParseJSON[types.Incident](t, result.Stdout)
	if len(updated.Files) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(updated.Files))
	}
}

func TestIncidentListScopedToPatientRole(t *testing.T) {
	env := NewTestEnv(t)
	env.LoginPatient()

	result := env.MustRunFrontdesk("incident", "list", "--json")
	incidents := ParseJSON[[]types.Incident](t, result.Stdout)
	for _, i := range incidents {
		if i.PatientID != "p1" {
			t.Errorf("patient session saw foreign incident %s (patient %s)", i.ID, i.PatientID)
		}
	}
	if len(incidents) != 2 {
		t.Errorf("expected 2 incidents for p1, got %d", len(incidents))
	}

	// Mutations denied.
	mutation := env.RunFrontdesk("incident", "add",
		"--patient", "p1", "--title", "Self-booked", "--date", "2025-04-02T10:00")
	if mutation.ExitCode != 1 {
		t.Errorf("expected exit code 1 for patient mutation, got %d", mutation.ExitCode)
	}
}

func TestScheduleMonth(t *testing.T) {
	env := NewTestEnv(t)
	env.LoginAdmin()

	result := env.MustRunFrontdesk("schedule", "month",
		"--year", "2025", "--month", "1", "--json")
	grid := ParseJSON[types.MonthSchedule](t, result.Stdout)
	if len(grid.Days) != 42 {
		t.Fatalf("expected 42 grid days, got %d", len(grid.Days))
	}

	var appointments int
	for _, day := range grid.Days {
		appointments += len(day.Appointments)
	}
	if appointments != 1 {
		t.Errorf("expected 1 seeded January appointment, got %d", appointments)
	}
}

func TestScheduleMonthAdminOnly(t *testing.T) {
	env := NewTestEnv(t)
	env.LoginPatient()

	result := env.RunFrontdesk("schedule", "month", "--year", "2025", "--month", "1")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for patient session, got %d", result.ExitCode)
	}
}

func TestDashboard(t *testing.T) {
	env := NewTestEnv(t)
	env.LoginAdmin()

	result := env.MustRunFrontdesk("dashboard", "--json")
	stats := ParseJSON[types.DashboardStats](t, result.Stdout)
	if stats.PatientCount != 2 {
		t.Errorf("expected 2 patients, got %d", stats.PatientCount)
	}
	if stats.IncidentCount != 3 {
		t.Errorf("expected 3 incidents, got %d", stats.IncidentCount)
	}
	if stats.TotalRevenue != 200 {
		t.Errorf("expected revenue 200, got %v", stats.TotalRevenue)
	}
}

func TestProfileDefaultsToOwnRecord(t *testing.T) {
	env := NewTestEnv(t)
	env.LoginPatient()

	result := env.MustRunFrontdesk("profile", "--json")
	summary := ParseJSON[types.PatientSummary](t, result.Stdout)
	if summary.PatientID != "p1" {
		t.Errorf("expected p1 summary, got %s", summary.PatientID)
	}
	if summary.TotalSpent != 80 {
		t.Errorf("expected total spent 80, got %v", summary.TotalSpent)
	}
	if summary.CompletedCount != 1 || summary.UpcomingCount != 1 {
		t.Errorf("unexpected counts: %+v", summary)
	}
}
