package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seatmap-editor/internal/config"
)

// EditorConfigHandler exposes the viewport tunables so the canvas client
// picks up the deployment's zoom limits and gesture switches.
type EditorConfigHandler struct {
	Cfg config.EditorConfig
}

func NewEditorConfigHandler(cfg config.EditorConfig) *EditorConfigHandler {
	return &EditorConfigHandler{Cfg: cfg}
}

// Get handles GET /v1/editor/config.
func (h *EditorConfigHandler) Get(c echo.Context) error {
	opts := h.Cfg.ViewportOptions()
	return c.JSON(http.StatusOK, echo.Map{
		"min_scale":         opts.MinScale,
		"max_scale":         opts.MaxScale,
		"scale_step":        opts.ScaleStep,
		"boundary_padding":  opts.BoundaryPadding,
		"wheel_damping":     opts.WheelDamping,
		"pinch_sensitivity": opts.PinchSensitivity,
		"wheel_zoom":        opts.WheelZoomEnabled,
		"pinch_zoom":        opts.PinchZoomEnabled,
	})
}
