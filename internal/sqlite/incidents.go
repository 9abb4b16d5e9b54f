// This file implements incident collection CRUD. Incidents always reference
// an existing patient; the store checks this on creation and on update.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

const incidentColumns = "incident_id, patient_id, title, description, comments, appointment_date, cost, treatment, status, next_date, files"

// insertIncidentRow writes one incident row. Attachments are stored as a
// JSON array in the files column.
func insertIncidentRow(e execer, i *types.Incident) error {
	files, err := marshalFiles(i.Files)
	if err != nil {
		return err
	}
	_, err = e.Exec(
		"INSERT INTO incidents ("+incidentColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		i.ID, i.PatientID, i.Title, i.Description, i.Comments,
		i.AppointmentDate.Format(time.RFC3339), nullableCost(i.Cost),
		i.Treatment, i.Status, nullableTime(i.NextDate), files,
	)
	return err
}

// hydrateIncident scans one incidents row into an Incident.
func hydrateIncident(row interface{ Scan(dest ...any) error }) (*types.Incident, error) {
	var (
		i        types.Incident
		apptStr  string
		cost     sql.NullFloat64
		nextStr  sql.NullString
		filesStr string
	)
	err := row.Scan(
		&i.ID, &i.PatientID, &i.Title, &i.Description, &i.Comments,
		&apptStr, &cost, &i.Treatment, &i.Status, &nextStr, &filesStr,
	)
	if err != nil {
		return nil, err
	}

	i.AppointmentDate, err = time.Parse(time.RFC3339, apptStr)
	if err != nil {
		return nil, fmt.Errorf("parsing appointment date %q: %w", apptStr, err)
	}
	if cost.Valid {
		c := cost.Float64
		i.Cost = &c
	}
	if nextStr.Valid && nextStr.String != "" {
		next, err := time.Parse(time.RFC3339, nextStr.String)
		if err != nil {
			return nil, fmt.Errorf("parsing next date %q: %w", nextStr.String, err)
		}
		i.NextDate = &next
	}
	if err := json.Unmarshal([]byte(filesStr), &i.Files); err != nil {
		return nil, fmt.Errorf("parsing files for incident %s: %w", i.ID, err)
	}
	if i.Files == nil {
		i.Files = []types.Attachment{}
	}
	return &i, nil
}

func marshalFiles(files []types.Attachment) (string, error) {
	if files == nil {
		files = []types.Attachment{}
	}
	data, err := json.Marshal(files)
	if err != nil {
		return "", fmt.Errorf("marshaling attachments: %w", err)
	}
	return string(data), nil
}

func nullableCost(cost *float64) any {
	if cost == nil {
		return nil
	}
	return *cost
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

// fetchIncidents returns incidents matching the filter in insertion order.
// The caller must hold b.mu.
func (b *Backend) fetchIncidents(filter types.IncidentFilter) ([]types.Incident, error) {
	query := "SELECT " + incidentColumns + " FROM incidents"
	var (
		conds []string
		args  []any
	)
	if filter.PatientID != "" {
		conds = append(conds, "patient_id = ?")
		args = append(args, filter.PatientID)
	}
	if filter.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, filter.Status)
	}
	for n, c := range conds {
		if n == 0 {
			query += " WHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += " ORDER BY rowid"

	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	incidents := make([]types.Incident, 0)
	for rows.Next() {
		i, err := hydrateIncident(rows)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, *i)
	}
	return incidents, rows.Err()
}

// getIncident returns one incident or ErrNotFound. The caller must hold b.mu.
func (b *Backend) getIncident(id string) (*types.Incident, error) {
	row := b.db.QueryRow(
		"SELECT "+incidentColumns+" FROM incidents WHERE incident_id = ?", id,
	)
	i, err := hydrateIncident(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting incident %s: %w", id, err)
	}
	return i, nil
}

// patientExists reports whether a patient row with the given id exists.
// The caller must hold b.mu.
func (b *Backend) patientExists(id string) (bool, error) {
	var one int
	err := b.db.QueryRow("SELECT 1 FROM patients WHERE patient_id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking patient %s: %w", id, err)
	}
	return true, nil
}

// AddIncident validates the draft, verifies its patient reference, generates
// a UUID v7 id, appends the record to the collection, and persists it.
// Admin only.
func (b *Backend) AddIncident(session *types.User, draft types.Incident) (*types.Incident, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.requireAdmin(session); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	exists, err := b.patientExists(draft.PatientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, types.ErrPatientNotFound
	}

	draft.ID = generateUUID()
	if draft.Files == nil {
		draft.Files = []types.Attachment{}
	}
	if err := insertIncidentRow(b.db, &draft); err != nil {
		return nil, fmt.Errorf("persisting incident: %w", err)
	}
	if err := b.persistIncidents(); err != nil {
		return nil, err
	}
	return &draft, nil
}

// GetIncident returns the incident with the given id. Admins may read any
// record; a Patient session only incidents on its own patient.
func (b *Backend) GetIncident(session *types.User, id string) (*types.Incident, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.requireSession(session); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	i, err := b.getIncident(id)
	if err != nil {
		return nil, err
	}
	if !session.CanViewPatient(i.PatientID) {
		return nil, types.ErrUnauthorized
	}
	return i, nil
}

// ListIncidents returns the incidents visible to the session that match the
// filter. A Patient session is pinned to its own patient id; asking for
// another patient's incidents is ErrUnauthorized.
func (b *Backend) ListIncidents(session *types.User, filter types.IncidentFilter) ([]types.Incident, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.requireSession(session); err != nil {
		return nil, err
	}
	if !session.IsAdmin() {
		if filter.PatientID != "" && filter.PatientID != session.PatientID {
			return nil, types.ErrUnauthorized
		}
		filter.PatientID = session.PatientID
	}
	return b.fetchIncidents(filter)
}

// UpdateIncident merges the partial update into the stored record and
// persists the collection. Fields absent from the update are preserved; a
// changed patient reference must point at an existing patient.
// Returns ErrNotFound if no incident has that id. Admin only.
func (b *Backend) UpdateIncident(session *types.User, id string, update types.IncidentUpdate) (*types.Incident, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.requireAdmin(session); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	i, err := b.getIncident(id)
	if err != nil {
		return nil, err
	}
	update.Apply(i)
	if err := i.Validate(); err != nil {
		return nil, err
	}
	if update.PatientID != nil {
		exists, err := b.patientExists(i.PatientID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, types.ErrPatientNotFound
		}
	}

	files, err := marshalFiles(i.Files)
	if err != nil {
		return nil, err
	}
	_, err = b.db.Exec(
		"UPDATE incidents SET patient_id = ?, title = ?, description = ?, comments = ?, appointment_date = ?, cost = ?, treatment = ?, status = ?, next_date = ?, files = ? WHERE incident_id = ?",
		i.PatientID, i.Title, i.Description, i.Comments,
		i.AppointmentDate.Format(time.RFC3339), nullableCost(i.Cost),
		i.Treatment, i.Status, nullableTime(i.NextDate), files, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating incident %s: %w", id, err)
	}
	if err := b.persistIncidents(); err != nil {
		return nil, err
	}
	return i, nil
}

// DeleteIncident removes the incident and persists the collection. No
// cascade. Returns ErrNotFound if no incident has that id. Admin only.
func (b *Backend) DeleteIncident(session *types.User, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.requireAdmin(session); err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	res, err := b.db.Exec("DELETE FROM incidents WHERE incident_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting incident %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return b.persistIncidents()
}
