package types

import "time"

// Incident statuses. Transitions are unconstrained: any status may move to
// any other.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
	StatusPending   = "Pending"
)

// validStatuses is the set of recognized incident status values.
var validStatuses = map[string]bool{
	StatusScheduled: true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusPending:   true,
}

// ValidStatus reports whether status is a recognized status value.
func ValidStatus(status string) bool {
	return validStatuses[status]
}

// Attachment describes one file attached to an incident. The URL is an
// opaque content reference; encoding file bytes is the caller's concern.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Incident is one scheduled or historical appointment/treatment record tied
// to a single patient.
type Incident struct {
	ID              string       `json:"id"` // UUID v7, generated on creation.
	PatientID       string       `json:"patientId"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	Comments        string       `json:"comments"`
	AppointmentDate time.Time    `json:"appointmentDate"`
	Cost            *float64     `json:"cost,omitempty"` // Meaningful once Completed.
	Treatment       string       `json:"treatment,omitempty"`
	Status          string       `json:"status"`
	NextDate        *time.Time   `json:"nextDate,omitempty"` // Follow-up recommendation.
	Files           []Attachment `json:"files"`
}

// Validate checks the required incident fields. It returns a sentinel error
// for the first violation found. Referential integrity of PatientID is the
// store's job; Validate only checks that it is present.
func (i *Incident) Validate() error {
	if i.PatientID == "" {
		return ErrPatientRequired
	}
	if i.Title == "" {
		return ErrInvalidTitle
	}
	if i.AppointmentDate.IsZero() {
		return ErrInvalidDate
	}
	if !validStatuses[i.Status] {
		return ErrInvalidStatus
	}
	if i.Cost != nil && *i.Cost < 0 {
		return ErrInvalidCost
	}
	return nil
}

// IncidentUpdate is a partial update. Nil fields preserve the stored value.
// Files replaces the attachment list wholesale when set; callers wanting to
// append read the record first and extend its list.
type IncidentUpdate struct {
	PatientID       *string
	Title           *string
	Description     *string
	Comments        *string
	AppointmentDate *time.Time
	Cost            *float64
	Treatment       *string
	Status          *string
	NextDate        *time.Time
	Files           []Attachment
}

// Apply merges the update into i, leaving nil fields untouched.
func (u IncidentUpdate) Apply(i *Incident) {
	if u.PatientID != nil {
		i.PatientID = *u.PatientID
	}
	if u.Title != nil {
		i.Title = *u.Title
	}
	if u.Description != nil {
		i.Description = *u.Description
	}
	if u.Comments != nil {
		i.Comments = *u.Comments
	}
	if u.AppointmentDate != nil {
		i.AppointmentDate = *u.AppointmentDate
	}
	if u.Cost != nil {
		i.Cost = u.Cost
	}
	if u.Treatment != nil {
		i.Treatment = *u.Treatment
	}
	if u.Status != nil {
		i.Status = *u.Status
	}
	if u.NextDate != nil {
		i.NextDate = u.NextDate
	}
	if u.Files != nil {
		i.Files = u.Files
	}
}

// IncidentFilter narrows ListIncidents results. Zero values match everything.
type IncidentFilter struct {
	PatientID string
	Status    string
}

// Matches reports whether the incident satisfies the filter.
func (f IncidentFilter) Matches(i *Incident) bool {
	if f.PatientID != "" && i.PatientID != f.PatientID {
		return false
	}
	if f.Status != "" && i.Status != f.Status {
		return false
	}
	return true
}
