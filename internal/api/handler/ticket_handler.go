package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/noxel/ticketing-api/internal/core/domain"
	"github.com/noxel/ticketing-api/internal/core/ports"
)

type createTicketRequest struct {
	Title string `json:"title" validate:"required"`
}

type listTicketsResponse struct {
	Tickets []domain.Ticket `json:"tickets"`
}

// TicketHandler exposes the ticketing stubs behind authentication.
type TicketHandler struct {
	tickets ports.TicketService
}

func NewTicketHandler(tickets ports.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

// List handles GET /tickets.
func (h *TicketHandler) List(c echo.Context) error {
	tickets, err := h.tickets.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listTicketsResponse{Tickets: tickets})
}

// Get handles GET /tickets/:id.
func (h *TicketHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid ticket id")
	}

	ticket, err := h.tickets.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ticket)
}

// Create handles POST /tickets.
func (h *TicketHandler) Create(c echo.Context) error {
	var req createTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ticket, err := h.tickets.Create(c.Request().Context(), req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ticket)
}
