package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/fbr-erp/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerRequest struct {
	Name string `json:"name" validate:"required,max=10"`
	NTN  string `json:"ntn" validate:"required,ntn"`
}

func (r *registerRequest) Validate() error {
	return Validator().Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "period", Message: "must be a closed tax period"}}
}

func newJSONContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func fieldNames(fieldErrors []errs.FieldError) []string {
	names := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		names = append(names, fe.Field)
	}
	return names
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		req := &registerRequest{}
		err := BindAndValidate(newJSONContext(`{"name":"Acme","ntn":"1234567"}`), req)

		require.NoError(t, err)
		assert.Equal(t, "1234567", req.NTN)
	})

	t.Run("field errors", func(t *testing.T) {
		err := BindAndValidate(newJSONContext(`{"name":"","ntn":"12"}`), &registerRequest{})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.True(t, httpErr.Override)
		assert.ElementsMatch(t, []errs.FieldError{
			{Field: "name", Error: "is required"},
			{Field: "ntn", Error: "must be a valid NTN (7 digits)"},
		}, httpErr.Errors)
	})

	t.Run("malformed json", func(t *testing.T) {
		err := BindAndValidate(newJSONContext(`{"name":`), &registerRequest{})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.NotEmpty(t, httpErr.Message)
		assert.Empty(t, httpErr.Errors)
	})

	t.Run("custom validation errors", func(t *testing.T) {
		err := BindAndValidate(newJSONContext(`{}`), &customRequest{})

		var httpErr *errs.HTTPError
		require.True(t, errors.As(err, &httpErr))
		assert.Equal(t, []errs.FieldError{{Field: "period", Error: "must be a closed tax period"}}, httpErr.Errors)
	})
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("550e8400-e29b-41d4-a716-446655440000"))
	assert.False(t, IsValidUUID("550e8400e29b41d4a716446655440000"))
}
