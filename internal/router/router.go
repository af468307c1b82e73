// Package router wires handlers and middleware onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-seatmap-editor/internal/handler"
	"github.com/iliyamo/venue-seatmap-editor/internal/middleware"
)

// RegisterRoutes registers routes that carry no middleware at all.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session endpoints. Register, login, refresh
// and logout live under /v1/auth without JWT middleware; /v1/me requires a
// valid bearer.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole("EDITOR", "VIEWER"))
	auth.GET("/me", a.Me)
}

// RegisterEditor registers the seat map endpoints. Everything here mutates
// or exposes owner data, so the whole group requires the EDITOR role.
func RegisterEditor(e *echo.Echo, sm *handler.SeatMapHandler, tt *handler.TicketTypeHandler, ec *handler.EditorConfigHandler, jwtSecret string, extra ...echo.MiddlewareFunc) {
	g := e.Group("/v1")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(middleware.RequireRole("EDITOR"))
	for _, m := range extra {
		g.Use(m)
	}

	g.POST("/maps", sm.CreateMap)
	g.GET("/maps", sm.ListMaps)
	g.GET("/maps/save-status", sm.SaveStatus)
	g.GET("/maps/:id", sm.GetMap)
	g.PUT("/maps/:id", sm.SaveMap)
	g.DELETE("/maps/:id", sm.DeleteMap)
	g.POST("/maps/:id/generate", sm.GenerateSeats)

	g.GET("/ticket-types", tt.List)
	g.GET("/ticket-types/:id", tt.Get)

	g.GET("/editor/config", ec.Get)
}

// RegisterPublic registers the unauthenticated read-only views. The cache
// middleware is applied here so published maps are served from Redis.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/public")
	if cache != nil {
		g.Use(cache)
	}
	g.GET("/maps/:id", p.ViewMap)
	g.GET("/maps/:id/rows", p.ViewRows)
}
