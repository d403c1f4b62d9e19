package ports

import (
	"context"
	"time"

	"github.com/noxel/ticketing-api/internal/core/domain"
)

// SignupInput is the role-tagged signup payload. All variants share the same
// capability set; Phone and BirthDate are populated for attendees only. The
// Role tag is the single branching point, so adding a role means extending the
// exhaustive switches that consume it, not adding a new input type.
type SignupInput struct {
	Role              domain.Role
	FullName          string
	Password          string
	Email             string
	GovIdentification int64

	// Attendee-only fields.
	Phone     string
	BirthDate *time.Time
}

// SignupResult carries everything the signup response needs.
type SignupResult struct {
	Token       string
	User        *domain.User
	RelatedData *domain.RelatedData
}

// SignupService orchestrates atomic user+profile creation and token issuance.
type SignupService interface {
	Signup(ctx context.Context, input SignupInput) (*SignupResult, error)

	// RelatedData fetches the role-specific profile for an authenticated
	// user. Roles without a profile yield nil, not an error.
	RelatedData(ctx context.Context, user *domain.User) (*domain.RelatedData, error)
}

// PasswordHasher turns a plaintext password into a storable hash and verifies
// later attempts. Implementations never log or echo the plaintext.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, stored string) (bool, error)
}

// TokenService mints and validates stateless session tokens. Issue with a
// non-positive ttl applies the service default. Verify returns the embedded
// user snapshot; any failure is reported as domain.ErrUnauthorized with the
// underlying cause retained for server-side logging.
type TokenService interface {
	Issue(user *domain.User, ttl time.Duration) (string, error)
	Verify(token string) (*domain.User, error)
}
