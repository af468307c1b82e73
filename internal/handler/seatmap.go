package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seatmap-editor/internal/layout"
	"github.com/iliyamo/venue-seatmap-editor/internal/model"
	"github.com/iliyamo/venue-seatmap-editor/internal/queue"
	"github.com/iliyamo/venue-seatmap-editor/internal/repository"
	"github.com/iliyamo/venue-seatmap-editor/internal/store"
)

// SeatMapHandler exposes the seat map CRUD, the layout generator and the
// load/save endpoints backing the editor.
type SeatMapHandler struct {
	Maps    *repository.SeatMapRepo
	Seats   *repository.SeatRepo
	Adapter *store.Adapter
	Gen     *layout.Generator

	// Publish is called after a successful save; nil disables events.
	Publish func(ctx context.Context, ev queue.SeatMapSavedEvent) error
}

func NewSeatMapHandler(maps *repository.SeatMapRepo, seats *repository.SeatRepo, adapter *store.Adapter,
	publish func(ctx context.Context, ev queue.SeatMapSavedEvent) error) *SeatMapHandler {
	return &SeatMapHandler{
		Maps:    maps,
		Seats:   seats,
		Adapter: adapter,
		Gen:     layout.New(nil),
		Publish: publish,
	}
}

type createMapReq struct {
	Name string `json:"name"`
}

type saveMapReq struct {
	Layout model.VenueLayout `json:"layout"`
	Seats  []model.Seat      `json:"seats"`
}

type generateReq struct {
	Layout    model.VenueLayout `json:"layout"`
	CarryOver bool              `json:"carry_over"`
	Persist   bool              `json:"persist"`
}

type mapDocResp struct {
	Map           *repository.SeatMap `json:"map"`
	Layout        model.VenueLayout   `json:"layout"`
	LayoutVersion int                 `json:"layout_version"`
	Seats         []model.Seat        `json:"seats"`
}

// CreateMap handles POST /v1/maps.
func (h *SeatMapHandler) CreateMap(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createMapReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	m := &repository.SeatMap{OwnerID: ownerID, Name: req.Name, IsActive: true}
	if err := h.Maps.Create(c.Request().Context(), m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create map failed"})
	}
	return c.JSON(http.StatusCreated, m)
}

// ListMaps handles GET /v1/maps.
func (h *SeatMapHandler) ListMaps(c echo.Context) error {
	ownerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	maps, err := h.Maps.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"count": len(maps), "items": maps})
}

// GetMap handles GET /v1/maps/:id and returns the map, its layout (merged
// over defaults) and its seats.
func (h *SeatMapHandler) GetMap(c echo.Context) error {
	m, errResp := h.ownedMap(c)
	if m == nil {
		return errResp
	}

	doc, err := h.Adapter.Load(c.Request().Context(), m.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load failed"})
	}
	return c.JSON(http.StatusOK, mapDocResp{
		Map:           m,
		Layout:        doc.Layout,
		LayoutVersion: doc.LayoutVersion,
		Seats:         doc.Seats,
	})
}

// SaveMap handles PUT /v1/maps/:id. The whole seat set is replaced in one
// transaction; an empty set is rejected before anything is written.
func (h *SeatMapHandler) SaveMap(c echo.Context) error {
	m, errResp := h.ownedMap(c)
	if m == nil {
		return errResp
	}
	var req saveMapReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	if err := h.Adapter.Save(c.Request().Context(), m.ID, req.Layout, req.Seats); err != nil {
		if errors.Is(err, store.ErrEmptySeatSet) {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
		}
		if layout.IsValidationError(err) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}

	h.publishSaved(m, req.Layout, len(req.Seats))

	return c.JSON(http.StatusOK, echo.Map{
		"status":         "saved",
		"seat_count":     len(req.Seats),
		"format_version": store.LayoutFormatVersion,
	})
}

// GenerateSeats handles POST /v1/maps/:id/generate. It produces a fresh
// seat set from the layout; with carry_over the type, status and kind of
// seats at unchanged (row, number) positions survive regeneration. With
// persist the result is saved immediately.
func (h *SeatMapHandler) GenerateSeats(c echo.Context) error {
	m, errResp := h.ownedMap(c)
	if m == nil {
		return errResp
	}
	var req generateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()

	existing, err := h.Seats.GetByMap(ctx, m.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	seats, err := h.Gen.Generate(req.Layout, layout.FallbackTypeID(existing))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if req.CarryOver {
		seats = layout.CarryOver(existing, seats)
	}

	if req.Persist {
		if err := h.Adapter.Save(ctx, m.ID, req.Layout, seats); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
		}
		h.publishSaved(m, req.Layout, len(seats))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"layout": req.Layout,
		"seats":  seats,
		"count":  len(seats),
	})
}

// DeleteMap handles DELETE /v1/maps/:id.
func (h *SeatMapHandler) DeleteMap(c echo.Context) error {
	m, errResp := h.ownedMap(c)
	if m == nil {
		return errResp
	}
	ctx := c.Request().Context()
	if err := h.Seats.DeleteByMap(ctx, m.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete seats failed"})
	}
	if err := h.Maps.DeleteByIDAndOwner(ctx, m.ID, m.OwnerID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete map failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// SaveStatus handles GET /v1/maps/save-status. The editor polls it to show
// the transient "saved" banner or a sticky error.
func (h *SeatMapHandler) SaveStatus(c echo.Context) error {
	s := h.Adapter.Status()
	resp := echo.Map{"kind": s.Kind.String()}
	if s.Message != "" {
		resp["message"] = s.Message
	}
	return c.JSON(http.StatusOK, resp)
}

// ownedMap loads the map in :id and verifies it belongs to the bearer. On
// failure it writes the response and returns nil.
func (h *SeatMapHandler) ownedMap(c echo.Context) (*repository.SeatMap, error) {
	ownerID, err := getUserID(c)
	if err != nil {
		return nil, c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return nil, c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	m, err := h.Maps.GetByIDAndOwner(c.Request().Context(), id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrSeatMapNotFound) {
			return nil, c.JSON(http.StatusNotFound, echo.Map{"error": "seat map not found"})
		}
		return nil, c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return m, nil
}

func (h *SeatMapHandler) publishSaved(m *repository.SeatMap, l model.VenueLayout, seatCount int) {
	if h.Publish == nil {
		return
	}
	ev := queue.SeatMapSavedEvent{
		MapID:         m.ID,
		OwnerID:       m.OwnerID,
		MapName:       m.Name,
		SeatCount:     seatCount,
		Rows:          l.Rows,
		Columns:       l.Columns,
		FormatVersion: store.LayoutFormatVersion,
		SavedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = h.Publish(ctx, ev)
	}()
}
