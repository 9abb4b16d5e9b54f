// Tests for persistence across restarts and corrupt-storage recovery.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

// reattach detaches b and attaches a fresh backend over the same data
// directory, simulating a process restart.
func reattach(t *testing.T, b *Backend, dir string) *Backend {
	t.Helper()
	require.NoError(t, b.Detach())
	fresh := NewBackend()
	require.NoError(t, fresh.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { fresh.Detach() })
	return fresh
}

func TestMutationsSurviveRestart(t *testing.T) {
	b, dir := attachTestBackend(t)
	admin := loginAdmin(t, b)

	added, err := b.AddPatient(admin, types.Patient{
		Name:       "Sam Rivers",
		DOB:        "1988-06-14",
		Contact:    "5550001111",
		HealthInfo: "No known allergies",
	})
	require.NoError(t, err)

	require.NoError(t, b.DeletePatient(admin, "p2"))

	cost := 95.5
	incident, err := b.AddIncident(admin, types.Incident{
		PatientID:       added.ID,
		Title:           "Crown fitting",
		AppointmentDate: time.Date(2025, time.April, 2, 10, 0, 0, 0, time.Local),
		Status:          types.StatusCompleted,
		Cost:            &cost,
		Treatment:       "Ceramic crown",
	})
	require.NoError(t, err)

	fresh := reattach(t, b, dir)
	admin = loginAdmin(t, fresh)

	patients, err := fresh.ListPatients(admin)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "p1", patients[0].ID)
	assert.Equal(t, added.ID, patients[1].ID)
	assert.Equal(t, "Sam Rivers", patients[1].Name)

	got, err := fresh.GetIncident(admin, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, "Crown fitting", got.Title)
	require.NotNil(t, got.Cost)
	assert.Equal(t, 95.5, *got.Cost)
	assert.True(t, got.AppointmentDate.Equal(incident.AppointmentDate))

	// The cascade from deleting p2 holds across restarts.
	_, err = fresh.GetIncident(admin, "i3")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestAttachmentsSurviveRestart(t *testing.T) {
	b, dir := attachTestBackend(t)
	admin := loginAdmin(t, b)

	files := []types.Attachment{
		{Name: "xray.png", URL: "data:image/png;base64,AAAA", Type: "image/png"},
		{Name: "invoice.pdf", URL: "data:application/pdf;base64,BBBB", Type: "application/pdf"},
	}
	updated, err := b.UpdateIncident(admin, "i1", types.IncidentUpdate{Files: files})
	require.NoError(t, err)
	require.Len(t, updated.Files, 2)

	fresh := reattach(t, b, dir)
	admin = loginAdmin(t, fresh)

	got, err := fresh.GetIncident(admin, "i1")
	require.NoError(t, err)
	assert.Equal(t, files, got.Files)
}

func TestCorruptPatientsDocumentResetsStorage(t *testing.T) {
	b, dir := attachTestBackend(t)
	admin := loginAdmin(t, b)

	_, err := b.AddPatient(admin, types.Patient{
		Name:    "Will Be Lost",
		DOB:     "1970-01-01",
		Contact: "5559999999",
	})
	require.NoError(t, err)
	require.NoError(t, b.Detach())

	path := filepath.Join(dir, patientsFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	fresh := NewBackend()
	require.NoError(t, fresh.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { fresh.Detach() })

	// Every key reverts to the seed set and the session is gone.
	_, err = fresh.CurrentSession()
	assert.ErrorIs(t, err, types.ErrNoSession)

	admin = loginAdmin(t, fresh)
	patients, err := fresh.ListPatients(admin)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "p1", patients[0].ID)
	assert.Equal(t, "p2", patients[1].ID)

	incidents, err := fresh.ListIncidents(admin, types.IncidentFilter{})
	require.NoError(t, err)
	assert.Len(t, incidents, 3)
}

func TestCorruptIncidentsDocumentResetsStorage(t *testing.T) {
	b, dir := attachTestBackend(t)
	admin := loginAdmin(t, b)

	require.NoError(t, b.DeleteIncident(admin, "i1"))
	require.NoError(t, b.Detach())

	path := filepath.Join(dir, incidentsFile)
	require.NoError(t, os.WriteFile(path, []byte("[{\"id\":"), 0o644))

	fresh := NewBackend()
	require.NoError(t, fresh.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}))
	t.Cleanup(func() { fresh.Detach() })

	admin = loginAdmin(t, fresh)
	incidents, err := fresh.ListIncidents(admin, types.IncidentFilter{})
	require.NoError(t, err)
	require.Len(t, incidents, 3)
	assert.Equal(t, "i1", incidents[0].ID)

	// The reseeded documents are written back out immediately.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Routine Cleaning")
}
