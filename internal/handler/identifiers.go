package handler

import (
	"github.com/deppfellow/fbr-erp/internal/server"
	"github.com/deppfellow/fbr-erp/internal/service"
	"github.com/deppfellow/fbr-erp/internal/validation"
	"github.com/labstack/echo/v4"
)

// CheckIdentifiersRequest is the body of POST /api/v1/identifiers/check.
// Malformed identifiers are reported in the response, not rejected.
type CheckIdentifiersRequest struct {
	NTN  *string `json:"ntn" validate:"omitempty,max=64"`
	STRN *string `json:"strn" validate:"omitempty,max=64"`
	CNIC *string `json:"cnic" validate:"omitempty,max=64"`
}

func (r *CheckIdentifiersRequest) Validate() error {
	return validation.Validator().Struct(r)
}

// VerifyIdentifiersRequest is the body of POST /api/v1/identifiers/verify.
// At least one identifier is required and every one present must be
// well-formed.
type VerifyIdentifiersRequest struct {
	NTN  *string `json:"ntn" validate:"required_without_all=STRN CNIC,omitempty,ntn"`
	STRN *string `json:"strn" validate:"required_without_all=NTN CNIC,omitempty,strn"`
	CNIC *string `json:"cnic" validate:"required_without_all=NTN STRN,omitempty,cnic"`
}

func (r *VerifyIdentifiersRequest) Validate() error {
	return validation.Validator().Struct(r)
}

type IdentifierHandler struct {
	Handler
	identifierService *service.IdentifierService
}

func NewIdentifierHandler(s *server.Server, identifierService *service.IdentifierService) *IdentifierHandler {
	return &IdentifierHandler{
		Handler:           NewHandler(s),
		identifierService: identifierService,
	}
}

// CheckIdentifiers reports, per submitted identifier, whether it is well-formed.
func (h *IdentifierHandler) CheckIdentifiers(c echo.Context, req *CheckIdentifiersRequest) (service.IdentifierReport, error) {
	return h.identifierService.Check(c.Request().Context(), service.IdentifierSet{
		NTN:  req.NTN,
		STRN: req.STRN,
		CNIC: req.CNIC,
	}), nil
}

// VerifyIdentifiers only runs once validation has accepted every identifier,
// so the report it returns is always valid.
func (h *IdentifierHandler) VerifyIdentifiers(c echo.Context, req *VerifyIdentifiersRequest) (service.IdentifierReport, error) {
	return h.identifierService.Check(c.Request().Context(), service.IdentifierSet{
		NTN:  req.NTN,
		STRN: req.STRN,
		CNIC: req.CNIC,
	}), nil
}
