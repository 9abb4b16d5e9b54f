package types

import "time"

// DOBLayout is the calendar-date format used for Patient.DOB.
const DOBLayout = "2006-01-02"

// Patient is a clinical record subject. Patients are owned exclusively by the
// Clinic store; deleting a patient cascades to every incident referencing it.
type Patient struct {
	ID         string `json:"id"` // UUID v7, generated on creation.
	Name       string `json:"name"`
	DOB        string `json:"dob"` // Calendar date, DOBLayout.
	Contact    string `json:"contact"`
	HealthInfo string `json:"healthInfo"`
	Email      string `json:"email,omitempty"`
}

// Validate checks the required patient fields. It returns a sentinel error
// for the first violation found.
func (p *Patient) Validate() error {
	if p.Name == "" {
		return ErrInvalidName
	}
	if p.Contact == "" {
		return ErrInvalidContact
	}
	if _, err := time.Parse(DOBLayout, p.DOB); err != nil {
		return ErrInvalidDOB
	}
	return nil
}

// Age returns the patient's age in whole calendar years at the given time.
func (p *Patient) Age(now time.Time) int {
	dob, err := time.Parse(DOBLayout, p.DOB)
	if err != nil {
		return 0
	}
	years := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// PatientUpdate is a partial update. Nil fields preserve the stored value.
type PatientUpdate struct {
	Name       *string
	DOB        *string
	Contact    *string
	HealthInfo *string
	Email      *string
}

// Apply merges the update into p, leaving nil fields untouched.
func (u PatientUpdate) Apply(p *Patient) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.DOB != nil {
		p.DOB = *u.DOB
	}
	if u.Contact != nil {
		p.Contact = *u.Contact
	}
	if u.HealthInfo != nil {
		p.HealthInfo = *u.HealthInfo
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
}
