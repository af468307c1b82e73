package handler

import (
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seatmap-editor/internal/layout"
	"github.com/iliyamo/venue-seatmap-editor/internal/repository"
	"github.com/iliyamo/venue-seatmap-editor/internal/store"
)

// PublicHandler serves read-only views of active seat maps without
// authentication. These routes sit behind the response cache.
type PublicHandler struct {
	Maps    *repository.SeatMapRepo
	Adapter *store.Adapter
}

func NewPublicHandler(maps *repository.SeatMapRepo, adapter *store.Adapter) *PublicHandler {
	return &PublicHandler{Maps: maps, Adapter: adapter}
}

// ViewMap handles GET /public/maps/:id and returns the layout plus the full
// seat set for rendering.
func (h *PublicHandler) ViewMap(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	m, err := h.Maps.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSeatMapNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat map not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if !m.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat map not found"})
	}

	doc, err := h.Adapter.Load(c.Request().Context(), m.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"name":   m.Name,
		"layout": doc.Layout,
		"seats":  doc.Seats,
	})
}

// ViewRows handles GET /public/maps/:id/rows and returns a compact
// row-grouped summary: ordered row labels with their sorted seat numbers.
func (h *PublicHandler) ViewRows(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	m, err := h.Maps.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSeatMapNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat map not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if !m.IsActive {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat map not found"})
	}

	doc, err := h.Adapter.Load(c.Request().Context(), m.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load failed"})
	}

	rowsMap := make(map[string][]uint32)
	for _, s := range doc.Seats {
		lbl := strings.ToUpper(strings.TrimSpace(s.Row))
		rowsMap[lbl] = append(rowsMap[lbl], s.Number)
	}

	order := make([]string, 0, len(rowsMap))
	for lbl := range rowsMap {
		order = append(order, lbl)
	}
	sort.Slice(order, func(i, j int) bool {
		ii, okI := layout.RowLabelIndex(order[i])
		jj, okJ := layout.RowLabelIndex(order[j])
		if !okI || !okJ {
			return order[i] < order[j]
		}
		return ii < jj
	})

	type rowOut struct {
		RowLabel string   `json:"row_label"`
		Numbers  []uint32 `json:"numbers"`
	}
	rows := make([]rowOut, 0, len(order))
	for _, lbl := range order {
		nums := rowsMap[lbl]
		sort.Slice(nums, func(i, j int) bool { return nums[i] < nums[j] })
		rows = append(rows, rowOut{RowLabel: lbl, Numbers: nums})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"map_id": m.ID,
		"name":   m.Name,
		"rows":   rows,
	})
}
