package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the console page and the JSON API.
func RegisterRoutes(e *echo.Echo, h *ConsoleHandler) {
	e.GET("/health", h.Health)

	e.GET("/", h.Page)
	e.POST("/search", h.Submit)

	api := e.Group("/api/v1")
	api.GET("/flights/search", h.SearchFlights)
	api.GET("/session", h.SessionState)
}
