package handler

import (
	"github.com/deppfellow/fbr-erp/internal/server"
	"github.com/deppfellow/fbr-erp/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health     *HealthHandler     // Health serves GET /api/health.
	OpenAPI    *OpenAPIHandler    // OpenAPI serves the docs UI.
	Identifier *IdentifierHandler // Identifier checks NTN, STRN and CNIC values.
	Format     *FormatHandler     // Format renders currency amounts and dates.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Identifier: NewIdentifierHandler(s, services.Identifier),
		Format:     NewFormatHandler(s, services.Format),
	}
}
