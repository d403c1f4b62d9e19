package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/noxel/ticketing-api/internal/core/domain"
)

// ProfileCache is a read-through cache for role profiles served on /users/me.
// A cache miss returns (nil, false, nil). Errors are advisory: callers fall
// back to the repository and log, never fail the request.
type ProfileCache interface {
	Get(ctx context.Context, role domain.Role, userID uuid.UUID) (*domain.RelatedData, bool, error)
	Set(ctx context.Context, role domain.Role, userID uuid.UUID, data *domain.RelatedData) error
}
