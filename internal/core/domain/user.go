package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of actor roles in the platform.
type Role string

const (
	RoleOrganizer    Role = "organizer"
	RoleAttendee     Role = "attendee"
	RoleAdmin        Role = "admin"
	RolePromoter     Role = "promoter"
	RoleCollaborator Role = "collaborator"
)

// ParseRole maps a stored role string back to a Role.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleOrganizer, RoleAttendee, RoleAdmin, RolePromoter, RoleCollaborator:
		return Role(s), true
	}
	return "", false
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// HasProfile reports whether the role carries a 1:1 profile row.
// Keep the switch exhaustive: a new role must make an explicit choice here.
func (r Role) HasProfile() bool {
	switch r {
	case RoleOrganizer, RoleAttendee:
		return true
	case RoleAdmin, RolePromoter, RoleCollaborator:
		return false
	}
	return false
}

// User models an identity record. The credential hash is server-side only and
// must never appear in responses or token claims.
type User struct {
	ID                uuid.UUID  `json:"id"`
	FullName          string     `json:"full_name"`
	Role              Role       `json:"role"`
	Email             string     `json:"email"`
	GovIdentification int64      `json:"gov_identification"`
	BirthDate         *time.Time `json:"birth_date,omitempty"`
	PasswordHash      string     `json:"-"`
}

// OrganizerProfile is the organizer-specific extension, 1:1 with a User.
type OrganizerProfile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AttendeeProfile is the attendee-specific extension, 1:1 with a User.
type AttendeeProfile struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Phone     string    `json:"phone"`
	BirthDate time.Time `json:"birth_date"`
	CreatedAt time.Time `json:"created_at"`
}

// RelatedData is the role-specific profile attached to a /me response.
// At most one field is set, matching the authenticated role.
type RelatedData struct {
	Organizer *OrganizerProfile `json:"organizer,omitempty"`
	Attendee  *AttendeeProfile  `json:"attendee,omitempty"`
}
