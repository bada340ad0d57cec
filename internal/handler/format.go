package handler

import (
	"github.com/deppfellow/fbr-erp/internal/server"
	"github.com/deppfellow/fbr-erp/internal/service"
	"github.com/deppfellow/fbr-erp/internal/validation"
	"github.com/labstack/echo/v4"
)

// FormatCurrencyRequest is GET /api/v1/format/currency?amount=1234.5
type FormatCurrencyRequest struct {
	Amount string `json:"amount" query:"amount" validate:"required,numeric"`
}

func (r *FormatCurrencyRequest) Validate() error {
	return validation.Validator().Struct(r)
}

// FormatDateRequest is GET /api/v1/format/date?date=2024-01-15
type FormatDateRequest struct {
	Date string `json:"date" query:"date" validate:"required,max=64"`
}

func (r *FormatDateRequest) Validate() error {
	return validation.Validator().Struct(r)
}

type FormatHandler struct {
	Handler
	formatService *service.FormatService
}

func NewFormatHandler(s *server.Server, formatService *service.FormatService) *FormatHandler {
	return &FormatHandler{
		Handler:       NewHandler(s),
		formatService: formatService,
	}
}

func (h *FormatHandler) FormatCurrency(c echo.Context, req *FormatCurrencyRequest) (*service.CurrencyResult, error) {
	return h.formatService.Currency(c.Request().Context(), req.Amount)
}

// FormatDate never fails on an unparseable date; the result says so instead.
func (h *FormatHandler) FormatDate(c echo.Context, req *FormatDateRequest) (*service.DateResult, error) {
	return h.formatService.Date(c.Request().Context(), req.Date), nil
}
