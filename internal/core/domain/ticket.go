package domain

import "github.com/google/uuid"

// Ticket is a placeholder for the ticketing subsystem.
type Ticket struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}
