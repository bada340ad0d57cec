package router

import (
	"net/http"

	"github.com/deppfellow/fbr-erp/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerV1Routes registers the identifier and formatting endpoints.
func registerV1Routes(v1 *echo.Group, h *handler.Handlers) {
	identifiers := v1.Group("/identifiers")
	identifiers.POST("/check", handler.Handle(h.Identifier.Handler, h.Identifier.CheckIdentifiers, http.StatusOK))
	identifiers.POST("/verify", handler.Handle(h.Identifier.Handler, h.Identifier.VerifyIdentifiers, http.StatusOK))

	format := v1.Group("/format")
	format.GET("/currency", handler.Handle(h.Format.Handler, h.Format.FormatCurrency, http.StatusOK))
	format.GET("/date", handler.Handle(h.Format.Handler, h.Format.FormatDate, http.StatusOK))
}
