// This file implements startup loading of the JSON documents into SQLite,
// first-run seeding, and corrupt-storage recovery.
package sqlite

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

// loadCollections restores the patient and incident collections and the
// persisted session from the data directory. Missing documents fall back to
// the fixed seed set. If any document exists but cannot be parsed, every
// storage key is cleared and the store reverts to the seed set; corruption is
// never fatal. The caller must hold b.mu.
func (b *Backend) loadCollections() error {
	var (
		patients  []types.Patient
		incidents []types.Incident
		session   *types.User

		seededPatients  bool
		seededIncidents bool
		corrupt         bool
	)

	err := readJSONDoc(b.dataPath(patientsFile), &patients)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		patients = seedPatients()
		seededPatients = true
	case errors.Is(err, errCorruptDocument):
		corrupt = true
	default:
		return err
	}

	err = readJSONDoc(b.dataPath(incidentsFile), &incidents)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		incidents = seedIncidents()
		seededIncidents = true
	case errors.Is(err, errCorruptDocument):
		corrupt = true
	default:
		return err
	}

	var stored types.User
	err = readJSONDoc(b.dataPath(sessionFile), &stored)
	switch {
	case err == nil:
		session = &stored
	case errors.Is(err, fs.ErrNotExist):
	case errors.Is(err, errCorruptDocument):
		corrupt = true
	default:
		return err
	}

	if corrupt {
		if err := b.clearStorage(); err != nil {
			return fmt.Errorf("clearing corrupt storage: %w", err)
		}
		patients = seedPatients()
		incidents = seedIncidents()
		session = nil
		seededPatients = true
		seededIncidents = true
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range patients {
		if err := insertPatientRow(tx, &patients[i]); err != nil {
			return fmt.Errorf("loading patient %s: %w", patients[i].ID, err)
		}
	}
	for i := range incidents {
		if err := insertIncidentRow(tx, &incidents[i]); err != nil {
			return fmt.Errorf("loading incident %s: %w", incidents[i].ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}

	b.session = session

	// Seeded collections are written out immediately so a restart without
	// any intervening mutation still restores the same state.
	if seededPatients {
		if err := writeJSONDoc(b.dataPath(patientsFile), patients); err != nil {
			return err
		}
	}
	if seededIncidents {
		if err := writeJSONDoc(b.dataPath(incidentsFile), incidents); err != nil {
			return err
		}
	}
	return nil
}

// clearStorage removes every storage key for this application: both
// collection documents, the persisted session, and the database is left to
// be rebuilt by the caller.
func (b *Backend) clearStorage() error {
	for _, name := range []string{patientsFile, incidentsFile, sessionFile} {
		if err := removeDoc(b.dataPath(name)); err != nil {
			return err
		}
	}
	return nil
}

// persistPatients rewrites patients.json from the database, preserving
// insertion order. The caller must hold b.mu.
func (b *Backend) persistPatients() error {
	patients, err := b.fetchPatients("")
	if err != nil {
		return fmt.Errorf("fetching patients for persist: %w", err)
	}
	return writeJSONDoc(b.dataPath(patientsFile), patients)
}

// persistIncidents rewrites incidents.json from the database, preserving
// insertion order. The caller must hold b.mu.
func (b *Backend) persistIncidents() error {
	incidents, err := b.fetchIncidents(types.IncidentFilter{})
	if err != nil {
		return fmt.Errorf("fetching incidents for persist: %w", err)
	}
	return writeJSONDoc(b.dataPath(incidentsFile), incidents)
}
