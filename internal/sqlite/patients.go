// This file implements patient collection CRUD, including the cascade from
// patient deletion to the incidents referencing it.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

// execer abstracts *sql.DB and *sql.Tx for the row helpers.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// insertPatientRow writes one patient row.
func insertPatientRow(e execer, p *types.Patient) error {
	_, err := e.Exec(
		"INSERT INTO patients (patient_id, name, dob, contact, health_info, email) VALUES (?, ?, ?, ?, ?, ?)",
		p.ID, p.Name, p.DOB, p.Contact, p.HealthInfo, p.Email,
	)
	return err
}

// hydratePatient scans one patients row into a Patient.
func hydratePatient(row interface{ Scan(dest ...any) error }) (*types.Patient, error) {
	var p types.Patient
	if err := row.Scan(&p.ID, &p.Name, &p.DOB, &p.Contact, &p.HealthInfo, &p.Email); err != nil {
		return nil, err
	}
	return &p, nil
}

const patientColumns = "patient_id, name, dob, contact, health_info, email"

// fetchPatients returns patients in insertion order. An empty id returns the
// whole collection. The caller must hold b.mu.
func (b *Backend) fetchPatients(id string) ([]types.Patient, error) {
	query := "SELECT " + patientColumns + " FROM patients"
	var args []any
	if id != "" {
		query += " WHERE patient_id = ?"
		args = append(args, id)
	}
	query += " ORDER BY rowid"

	rows, err := b.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := make([]types.Patient, 0)
	for rows.Next() {
		p, err := hydratePatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, *p)
	}
	return patients, rows.Err()
}

// getPatient returns one patient or ErrNotFound. The caller must hold b.mu.
func (b *Backend) getPatient(id string) (*types.Patient, error) {
	row := b.db.QueryRow(
		"SELECT "+patientColumns+" FROM patients WHERE patient_id = ?", id,
	)
	p, err := hydratePatient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting patient %s: %w", id, err)
	}
	return p, nil
}

// AddPatient validates the draft, generates a UUID v7 id, appends the record
// to the collection, and persists it. Admin only.
func (b *Backend) AddPatient(session *types.User, draft types.Patient) (*types.Patient, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.requireAdmin(session); err != nil {
		return nil, err
	}
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	draft.ID = generateUUID()
	if err := insertPatientRow(b.db, &draft); err != nil {
		return nil, fmt.Errorf("persisting patient: %w", err)
	}
	if err := b.persistPatients(); err != nil {
		return nil, err
	}
	return &draft, nil
}

// GetPatient returns the patient with the given id. Admins may read any
// record; a Patient session only its own.
func (b *Backend) GetPatient(session *types.User, id string) (*types.Patient, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.requireSession(session); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}
	if !session.CanViewPatient(id) {
		return nil, types.ErrUnauthorized
	}
	return b.getPatient(id)
}

// ListPatients returns the patients visible to the session: the full
// collection for an Admin, the session's own record for a Patient.
func (b *Backend) ListPatients(session *types.User) ([]types.Patient, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.requireSession(session); err != nil {
		return nil, err
	}
	if session.IsAdmin() {
		return b.fetchPatients("")
	}
	return b.fetchPatients(session.PatientID)
}

// UpdatePatient merges the partial update into the stored record and
// persists the collection. Fields absent from the update are preserved.
// Returns ErrNotFound if no patient has that id. Admin only.
func (b *Backend) UpdatePatient(session *types.User, id string, update types.PatientUpdate) (*types.Patient, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.requireAdmin(session); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	p, err := b.getPatient(id)
	if err != nil {
		return nil, err
	}
	update.Apply(p)
	if err := p.Validate(); err != nil {
		return nil, err
	}

	_, err = b.db.Exec(
		"UPDATE patients SET name = ?, dob = ?, contact = ?, health_info = ?, email = ? WHERE patient_id = ?",
		p.Name, p.DOB, p.Contact, p.HealthInfo, p.Email, id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating patient %s: %w", id, err)
	}
	if err := b.persistPatients(); err != nil {
		return nil, err
	}
	return p, nil
}

// DeletePatient removes the patient and every incident referencing it, then
// persists both collections. Returns ErrNotFound if no patient has that id.
// Admin only.
func (b *Backend) DeletePatient(session *types.User, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.requireAdmin(session); err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning delete transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM patients WHERE patient_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting patient %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}

	// Cascade: a deleted patient takes its incidents with it.
	if _, err := tx.Exec("DELETE FROM incidents WHERE patient_id = ?", id); err != nil {
		return fmt.Errorf("cascading incident delete for %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	if err := b.persistPatients(); err != nil {
		return err
	}
	return b.persistIncidents()
}
