package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/fbr-erp/internal/errs"
	"github.com/deppfellow/fbr-erp/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatService_Currency(t *testing.T) {
	svc := NewFormatService(nil)

	t.Run("formats the amount", func(t *testing.T) {
		result, err := svc.Currency(context.Background(), "1234567.891")
		require.NoError(t, err)

		assert.Equal(t, "1234567.891", result.Amount)
		assert.Equal(t, "PKR", result.Currency)
		assert.Equal(t, "en-PK", result.Locale)
		assert.Equal(t, "Rs\u00a01,234,567.89", result.Formatted)
	})

	t.Run("rejects text", func(t *testing.T) {
		_, err := svc.Currency(context.Background(), "ten")

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "INVALID_AMOUNT", httpErr.Code)
	})
}

func TestFormatService_Date(t *testing.T) {
	svc := NewFormatService(nil)

	t.Run("valid date", func(t *testing.T) {
		result := svc.Date(context.Background(), "2024-01-15")

		assert.True(t, result.Valid)
		assert.Equal(t, "15 Jan 2024", result.Formatted)
		require.NotNil(t, result.ISO)
		assert.Equal(t, 2024, result.ISO.Year())
	})

	t.Run("invalid date", func(t *testing.T) {
		result := svc.Date(context.Background(), "not a date")

		assert.False(t, result.Valid)
		assert.Equal(t, format.InvalidDate, result.Formatted)
		assert.Nil(t, result.ISO)
	})
}
