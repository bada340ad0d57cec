package service

import (
	"context"
	"time"

	"github.com/deppfellow/fbr-erp/internal/errs"
	"github.com/deppfellow/fbr-erp/internal/format"
	"github.com/deppfellow/fbr-erp/internal/server"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CurrencyResult is a formatted amount.
type CurrencyResult struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	Locale    string `json:"locale"`
	Formatted string `json:"formatted"`
}

// DateResult is a formatted date. Valid is false when the input did not
// parse; Formatted is then format.InvalidDate.
type DateResult struct {
	Date      string     `json:"date"`
	Locale    string     `json:"locale"`
	Formatted string     `json:"formatted"`
	Valid     bool       `json:"valid"`
	ISO       *time.Time `json:"iso,omitempty"`
}

type FormatService struct {
	server *server.Server
}

func NewFormatService(s *server.Server) *FormatService {
	return &FormatService{server: s}
}

// Currency formats a decimal amount given as text, e.g. "1234.5".
func (s *FormatService) Currency(ctx context.Context, amount string) (*CurrencyResult, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		code := "INVALID_AMOUNT"
		return nil, errs.NewBadRequestError("Amount must be a number", true, &code,
			[]errs.FieldError{{Field: "amount", Error: "must be a number"}}, nil)
	}

	result := &CurrencyResult{
		Amount:    d.String(),
		Currency:  format.CurrencyCode,
		Locale:    format.Locale,
		Formatted: format.FormatCurrency(d.InexactFloat64()),
	}

	zerolog.Ctx(ctx).Debug().
		Str("amount", result.Amount).
		Msg("currency formatted")

	return result, nil
}

// Date formats a date given as text. An unparseable date is not an error.
func (s *FormatService) Date(ctx context.Context, date string) *DateResult {
	result := &DateResult{
		Date:      date,
		Locale:    format.Locale,
		Formatted: format.InvalidDate,
	}

	t, err := format.ParseDate(date)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Str("date", date).Msg("date did not parse")
		return result
	}

	result.Formatted = format.FormatDate(t)
	result.Valid = result.Formatted != format.InvalidDate
	if result.Valid {
		result.ISO = &t
	}

	return result
}
