package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/noxel/ticketing-api/internal/core/domain"
)

// TicketService is a placeholder implementation of the ticketing boundary.
// Listing returns nothing and lookups miss until real persistence lands.
type TicketService struct{}

func NewTicketService() *TicketService {
	return &TicketService{}
}

func (s *TicketService) List(_ context.Context) ([]domain.Ticket, error) {
	return []domain.Ticket{}, nil
}

func (s *TicketService) Get(_ context.Context, _ uuid.UUID) (*domain.Ticket, error) {
	return nil, domain.ErrTicketNotFound
}

func (s *TicketService) Create(_ context.Context, title string) (*domain.Ticket, error) {
	return &domain.Ticket{ID: uuid.New(), Title: title}, nil
}
