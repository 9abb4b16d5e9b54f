// CLI integration tests for patient record management.
package integration

import (
	"strings"
	"testing"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

func TestPatientCRUD(t *testing.T) {
	env := NewTestEnv(t)
	env.LoginAdmin()

	// Create.
	result := env.MustRunFrontdesk("patient", "add",
		"--name", "Sam Rivers",
		"--dob", "1988-06-14",
		"--contact", "5550001111",
		"--health", "No known allergies",
		"--json")
	created := ParseJSON[types.Patient](t, result.Stdout)
	if created.ID == "" {
		t.Fatal("expected generated patient ID")
	}
	if created.Name != "Sam Rivers" {
		t.Errorf("expected Sam Rivers, got %s", created.Name)
	}

	// Read.
	result = env.MustRunFrontdesk("patient", "get", created.ID, "--json")
	got := ParseJSON[types.Patient](t, result.Stdout)
	if got != created {
		t.Errorf("get returned %+v, want %+v", got, created)
	}

	// Update preserves unspecified fields.
	result = env.MustRunFrontdesk("patient", "update", created.ID,
		"--contact", "5550002222", "--json")
	updated := ParseJSON[types.Patient](t, result.Stdout)
	if updated.Contact != "5550002222" {
		t.Errorf("expected updated contact, got %s", updated.Contact)
	}
	if updated.Name != created.Name || updated.DOB != created.DOB {
		t.Error("update changed fields that were not specified")
	}

	// Delete.
	env.MustRunFrontdesk("patient", "delete", created.ID)
	result = env.RunFrontdesk("patient", "get", created.ID)
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for deleted patient, got %d", result.ExitCode)
	}
}

func TestPatientListSeedSet(t *testing.T) {
	env := NewTestEnv(t)
	env.LoginAdmin()

	result := env.MustRunFrontdesk("patient", "list", "--json")
	patients := ParseJSON[[]types.Patient](t, result.Stdout)
	if len(patients) != 2 {
		t.Fatalf("expected 2 seeded patients, got %d", len(patients))
	}
	if patients[0].ID != "p1" || patients[1].ID != "p2" {
		t.Errorf("unexpected seed order: %s, %s", patients[0].ID, patients[1].ID)
	}
}

func TestPatientRoleIsReadOnlyOnOwnRecord(t *testing.T) {
	env := NewTestEnv(t)
	env.LoginPatient()

	// John sees only his own record.
	result := env.MustRunFrontdesk("patient", "list", "--json")
	patients := ParseJSON[[]types.Patient](t, result.Stdout)
	if len(patients) != 1 || patients[0].ID != "p1" {
		t.Fatalf("expected only p1, got %+v", patients)
	}

	// Foreign record denied.
	result = env.RunFrontdesk("patient", "get", "p2")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for foreign record, got %d", result.ExitCode)
	}

	// Mutations denied even on the own record.
	result = env.RunFrontdesk("patient", "update", "p1", "--contact", "0000000000")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for patient update, got %d", result.ExitCode)
	}
	result = env.RunFrontdesk("patient", "delete", "p1")
	if result.ExitCode != 1 {
		t.Errorf("expected exit code 1 for patient delete, got %d", result.ExitCode)
	}
}

func TestDeletePatientCascadesToIncidents(t *testing.T) {
	env := NewTestEnv(t)
	env.LoginAdmin()

	env.MustRunFrontdesk("patient", "delete", "p1")

	result := env.MustRunFrontdesk("incident", "list", "--json")
	incidents := ParseJSON[[]types.Incident](t, result.Stdout)
	if len(incidents) != 1 {
		t.Fatalf("expected 1 incident after cascade, got %d", len(incidents))
	}
	if incidents[0].ID != "i3" {
		t.Errorf("expected i3 to survive, got %s", incidents[0].ID)
	}
}

func TestCommandsRequireLogin(t *testing.T) {
	env := NewTestEnv(t)

	for _, args := range [][]string{
		{"patient", "list"},
		{"patient", "add", "--name", "X", "--dob", "1990-01-01", "--contact", "5550000000"},
		{"incident", "list"},
		{"dashboard"},
	} {
		result := env.RunFrontdesk(args...)
		if result.ExitCode != 1 {
			t.Errorf("%v: expected exit code 1 without login, got %d", args, result.ExitCode)
		}
		if !strings.Contains(result.Stderr, "not logged in") {
			t.Errorf("%v: expected login hint, got %q", args, result.Stderr)
		}
	}
}
