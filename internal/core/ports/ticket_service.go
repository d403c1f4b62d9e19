package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/noxel/ticketing-api/internal/core/domain"
)

// TicketService is the ticketing subsystem boundary. The current
// implementation is a placeholder until ticket persistence lands.
type TicketService interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	Create(ctx context.Context, title string) (*domain.Ticket, error)
}
