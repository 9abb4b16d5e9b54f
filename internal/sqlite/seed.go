// This file defines the fixed records seeded on first run. The user set is
// always these three; patients and incidents seed only when no stored
// document exists.
package sqlite

import (
	"time"

	"github.com/BhanuNama/entnt-dental-dashboard/pkg/types"
)

// seedUsers returns the fixed credential set. Users are never persisted or
// mutated, so each Attach starts from this list.
func seedUsers() []types.User {
	return []types.User{
		{ID: "1", Role: types.RoleAdmin, Email: "admin@entnt.in", Password: "admin123"},
		{ID: "2", Role: types.RolePatient, Email: "john@entnt.in", Password: "patient123", PatientID: "p1"},
		{ID: "3", Role: types.RolePatient, Email: "jane@entnt.in", Password: "patient123", PatientID: "p2"},
	}
}

// seedPatients returns the default patient collection.
func seedPatients() []types.Patient {
	return []types.Patient{
		{
			ID:         "p1",
			Name:       "John Doe",
			DOB:        "1990-05-10",
			Contact:    "1234567890",
			HealthInfo: "No allergies",
			Email:      "john@entnt.in",
		},
		{
			ID:         "p2",
			Name:       "Jane Smith",
			DOB:        "1985-03-22",
			Contact:    "0987654321",
			HealthInfo: "Allergic to penicillin",
			Email:      "jane@entnt.in",
		},
	}
}

// seedIncidents returns the default incident collection.
func seedIncidents() []types.Incident {
	cost1 := 80.0
	cost3 := 120.0
	return []types.Incident{
		{
			ID:              "i1",
			PatientID:       "p1",
			Title:           "Toothache",
			Description:     "Upper molar pain",
			Comments:        "Sensitive to cold",
			AppointmentDate: time.Date(2025, time.January, 15, 10, 0, 0, 0, time.Local),
			Cost:            &cost1,
			Treatment:       "Root canal treatment",
			Status:          types.StatusCompleted,
			Files:           []types.Attachment{},
		},
		{
			ID:              "i2",
			PatientID:       "p1",
			Title:           "Routine Cleaning",
			Description:     "Regular dental cleaning",
			Comments:        "Good oral hygiene",
			AppointmentDate: time.Date(2025, time.January, 30, 14, 0, 0, 0, time.Local),
			Status:          types.StatusScheduled,
			Files:           []types.Attachment{},
		},
		{
			ID:              "i3",
			PatientID:       "p2",
			Title:           "Cavity Filling",
			Description:     "Small cavity in lower molar",
			Comments:        "Pain when chewing",
			AppointmentDate: time.Date(2025, time.January, 20, 11, 0, 0, 0, time.Local),
			Cost:            &cost3,
			Treatment:       "Composite filling",
			Status:          types.StatusCompleted,
			Files:           []types.Attachment{},
		},
	}
}
