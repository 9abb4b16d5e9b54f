package types

import (
	"errors"
	"time"
)

// Clinic is the backend-agnostic interface to the clinic records store.
// Callers attach to a backend, act through a session, and detach when done.
//
// Every operation below Login/Logout takes the acting session explicitly.
// Authorization is enforced here, not in the view layer: a nil session is
// rejected with ErrNoSession, and a Patient-role session may only read its
// own patient record and incidents. All mutations require the Admin role.
type Clinic interface {
	// Attach connects the store to the backend described by config,
	// restoring prior state from the data directory or seeding the fixed
	// default records on first run. Returns ErrAlreadyAttached if called
	// while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, operations return ErrClinicDetached.
	Detach() error

	// Login scans the fixed user set for an exact, case-sensitive match on
	// both email and password. On match the session is set and persisted;
	// on mismatch the session is unchanged and ErrAuthenticationFailed is
	// returned.
	Login(email, password string) (*User, error)

	// Logout clears the session in memory and in durable storage.
	// Idempotent.
	Logout() error

	// CurrentSession returns the authenticated user, or ErrNoSession.
	CurrentSession() (*User, error)

	// AddPatient generates an id for the draft, appends it to the patient
	// collection, and persists. Admin only.
	AddPatient(session *User, draft Patient) (*Patient, error)

	// GetPatient returns the patient with the given id.
	GetPatient(session *User, id string) (*Patient, error)

	// ListPatients returns the patients visible to the session: all of
	// them for an Admin, the session's own record for a Patient.
	ListPatients(session *User) ([]Patient, error)

	// UpdatePatient merges the partial update into the stored record and
	// persists. Returns ErrNotFound if no patient has that id. Admin only.
	UpdatePatient(session *User, id string, update PatientUpdate) (*Patient, error)

	// DeletePatient removes the patient and cascades to every incident
	// referencing it, persisting both collections. Returns ErrNotFound if
	// no patient has that id. Admin only.
	DeletePatient(session *User, id string) error

	// AddIncident generates an id for the draft, appends it to the
	// incident collection, and persists. The draft's PatientID must
	// reference an existing patient; otherwise ErrPatientNotFound.
	// Admin only.
	AddIncident(session *User, draft Incident) (*Incident, error)

	// GetIncident returns the incident with the given id.
	GetIncident(session *User, id string) (*Incident, error)

	// ListIncidents returns the incidents visible to the session that
	// match the filter.
	ListIncidents(session *User, filter IncidentFilter) ([]Incident, error)

	// UpdateIncident merges the partial update into the stored record and
	// persists. Returns ErrNotFound if no incident has that id. Admin only.
	UpdateIncident(session *User, id string, update IncidentUpdate) (*Incident, error)

	// DeleteIncident removes the incident. No cascade. Returns ErrNotFound
	// if no incident has that id. Admin only.
	DeleteIncident(session *User, id string) error

	// PatientSummary aggregates one patient's incident history: completed
	// and upcoming counts, and total spend over completed treatments.
	PatientSummary(session *User, patientID string) (*PatientSummary, error)

	// AppointmentsOn returns the Scheduled incidents whose appointment
	// falls on the same calendar day as day, in the day's location.
	AppointmentsOn(session *User, day time.Time) ([]Incident, error)

	// UpcomingAppointments returns the Scheduled incidents with an
	// appointment in [from, until).
	UpcomingAppointments(session *User, from, until time.Time) ([]Incident, error)

	// MonthSchedule builds the six-week calendar grid for the given month:
	// 42 consecutive days starting the Sunday on or before the 1st, each
	// with its Scheduled incidents. Admin only.
	MonthSchedule(session *User, year int, month time.Month) (*MonthSchedule, error)

	// DashboardStats computes clinic-wide totals. Admin only.
	DashboardStats(session *User) (*DashboardStats, error)
}

// PatientSummary is the profile-page aggregate for one patient.
type PatientSummary struct {
	PatientID      string  `json:"patientId"`
	Name           string  `json:"name"`
	Age            int     `json:"age"`
	CompletedCount int     `json:"completedCount"`
	UpcomingCount  int     `json:"upcomingCount"`
	TotalSpent     float64 `json:"totalSpent"`
}

// ScheduleDay is one cell of the calendar grid.
type ScheduleDay struct {
	Date         time.Time  `json:"date"`
	InMonth      bool       `json:"inMonth"`
	Appointments []Incident `json:"appointments"`
}

// MonthSchedule is the six-week calendar grid for one month.
type MonthSchedule struct {
	Year  int           `json:"year"`
	Month time.Month    `json:"month"`
	Days  []ScheduleDay `json:"days"` // Always 42 entries, Sunday-aligned.
}

// DashboardStats holds the clinic-wide totals shown on the admin dashboard.
type DashboardStats struct {
	PatientCount   int            `json:"patientCount"`
	IncidentCount  int            `json:"incidentCount"`
	StatusCounts   map[string]int `json:"statusCounts"`
	ScheduledToday int            `json:"scheduledToday"`
	TotalRevenue   float64        `json:"totalRevenue"` // Sum of completed costs.
}

// Clinic lifecycle errors.
var (
	ErrClinicDetached  = errors.New("clinic store is detached")
	ErrAlreadyAttached = errors.New("clinic store is already attached")
)

// Session and authorization errors.
var (
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNoSession            = errors.New("no active session")
	ErrUnauthorized         = errors.New("operation not permitted for this session")
)

// Record operation errors.
var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid record ID")
)

// Validation errors.
var (
	ErrInvalidName     = errors.New("name must not be empty")
	ErrInvalidContact  = errors.New("contact must not be empty")
	ErrInvalidDOB      = errors.New("date of birth must be a calendar date")
	ErrInvalidTitle    = errors.New("title must not be empty")
	ErrInvalidDate     = errors.New("appointment date is required")
	ErrInvalidStatus   = errors.New("invalid status value")
	ErrInvalidCost     = errors.New("cost must not be negative")
	ErrPatientRequired = errors.New("patient ID is required")
	ErrPatientNotFound = errors.New("incident references a nonexistent patient")
)
