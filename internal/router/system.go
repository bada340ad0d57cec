package router

import (
	"github.com/deppfellow/fbr-erp/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the ERP API
// itself: health, docs UI and static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/api/health", h.Health.CheckHealth)

	// openapi.html and openapi.json
	r.Static("/static", handler.StaticDir)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
