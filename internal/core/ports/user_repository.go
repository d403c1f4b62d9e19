package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/noxel/ticketing-api/internal/core/domain"
)

// UserRepository persists users together with their role-specific profile.
//
// The Create* methods insert the user row and its profile row inside a single
// transaction: either both rows exist afterwards or neither does. Uniqueness
// violations on email or gov_identification are returned as *domain.ConflictError.
type UserRepository interface {
	CreateOrganizer(ctx context.Context, user *domain.User) (*domain.User, *domain.OrganizerProfile, error)
	CreateAttendee(ctx context.Context, user *domain.User, phone string, birthDate time.Time) (*domain.User, *domain.AttendeeProfile, error)

	OrganizerProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.OrganizerProfile, error)
	AttendeeProfileByUserID(ctx context.Context, userID uuid.UUID) (*domain.AttendeeProfile, error)
}
