package service

import (
	"github.com/deppfellow/fbr-erp/internal/server"
)

// Services groups the business services so handlers receive them from one
// place.
type Services struct {
	Identifier *IdentifierService
	Format     *FormatService
}

func NewServices(s *server.Server) *Services {
	return &Services{
		Identifier: NewIdentifierService(s),
		Format:     NewFormatService(s),
	}
}
