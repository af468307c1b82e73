package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seatmap-editor/internal/repository"
)

// TicketTypeHandler serves the pricing categories seats are assigned to.
type TicketTypeHandler struct {
	Tickets *repository.TicketTypeRepo
}

func NewTicketTypeHandler(t *repository.TicketTypeRepo) *TicketTypeHandler {
	return &TicketTypeHandler{Tickets: t}
}

// List handles GET /v1/ticket-types.
func (h *TicketTypeHandler) List(c echo.Context) error {
	types, err := h.Tickets.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(types), "items": types})
}

// Get handles GET /v1/ticket-types/:id.
func (h *TicketTypeHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	tt, err := h.Tickets.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTicketTypeNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket type not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, tt)
}
