// Package sqlite implements the SQLite backend for the clinic records store.
// SQLite is the query engine; JSON documents in the data directory are the
// source of truth, loaded on Attach and rewritten on every mutation.
package sqlite

// Schema DDL. The database file is rebuilt from the JSON documents on every
// Attach, so there is no migration story.
const (
	createPatients = `CREATE TABLE patients (
    patient_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    dob TEXT NOT NULL,
    contact TEXT NOT NULL,
    health_info TEXT NOT NULL,
    email TEXT
);`

	createIncidents = `CREATE TABLE incidents (
    incident_id TEXT PRIMARY KEY,
    patient_id TEXT NOT NULL,
    title TEXT NOT NULL,
    description TEXT NOT NULL,
    comments TEXT NOT NULL,
    appointment_date TEXT NOT NULL,
    cost REAL,
    treatment TEXT NOT NULL,
    status TEXT NOT NULL,
    next_date TEXT,
    files TEXT NOT NULL,
    FOREIGN KEY (patient_id) REFERENCES patients(patient_id)
);`
)

// Index DDL for the common lookups: role-scoped listing by patient and the
// schedule queries by status.
const (
	idxIncidentsPatient = `CREATE INDEX idx_incidents_patient ON incidents(patient_id);`
	idxIncidentsStatus  = `CREATE INDEX idx_incidents_status ON incidents(status);`
	idxIncidentsDate    = `CREATE INDEX idx_incidents_date ON incidents(appointment_date);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createPatients,
	createIncidents,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxIncidentsPatient,
	idxIncidentsStatus,
	idxIncidentsDate,
}
