package types

// User roles. Role decides which records a session may see and change.
const (
	RoleAdmin   = "Admin"
	RolePatient = "Patient"
)

// validRoles is the set of recognized role values.
var validRoles = map[string]bool{
	RoleAdmin:   true,
	RolePatient: true,
}

// User is an authentication identity. The user set is fixed: it is seeded
// once, never persisted, and not exposed through the CRUD surface.
type User struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Email    string `json:"email"`
	Password string `json:"password"`
	// PatientID links a Patient-role user to their clinical record.
	// Empty for Admin users.
	PatientID string `json:"patientId,omitempty"`
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// CanViewPatient reports whether the user may read the patient record with
// the given id. Admins see every record; a Patient user sees only their own.
func (u *User) CanViewPatient(patientID string) bool {
	if u == nil {
		return false
	}
	if u.Role == RoleAdmin {
		return true
	}
	return u.Role == RolePatient && u.PatientID != "" && u.PatientID == patientID
}

// ValidRole reports whether role is a recognized role value.
func ValidRole(role string) bool {
	return validRoles[role]
}
