package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/fbr-erp/internal/config"
	"github.com/deppfellow/fbr-erp/internal/errs"
	"github.com/deppfellow/fbr-erp/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(out *bytes.Buffer) *server.Server {
	logger := zerolog.New(out)
	return &server.Server{
		Config: &config.Config{
			Primary: config.Primary{Env: "test"},
			Server:  config.ServerConfig{CORSAllowedOrigins: []string{"*"}},
			RateLimit: config.RateLimitConfig{
				Enabled:           true,
				RequestsPerSecond: 1,
				Burst:             2,
				ExpiresIn:         time.Minute,
			},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func newTestEcho(s *server.Server) (*echo.Echo, *Middlewares) {
	m := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = m.Global.GlobalErrorHandler
	e.Use(RequestID(), m.ContextEnhancer.EnhanceContext())
	return e, m
}

func decodeHTTPError(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	e, _ := newTestEcho(newTestServer(&bytes.Buffer{}))
	e.GET("/id", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generates an id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/id", nil))

		id := rec.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("reuses an incoming uuid", func(t *testing.T) {
		const incoming = "9b2f4c8e-5d1a-4e7b-8c3f-2a6d9e0b1c47"

		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, incoming)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, incoming, rec.Header().Get(RequestIDHeader))
	})

	t.Run("replaces a non-uuid header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/id", nil)
		req.Header.Set(RequestIDHeader, "not\nan id")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.NotEqual(t, "not\nan id", rec.Header().Get(RequestIDHeader))
		assert.Len(t, rec.Header().Get(RequestIDHeader), 36)
	})
}

func TestEnhanceContext(t *testing.T) {
	out := &bytes.Buffer{}
	e, _ := newTestEcho(newTestServer(out))
	e.GET("/log", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("from service")
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/log", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, out.String(), `"message":"from service"`)
	assert.Contains(t, out.String(), `"path":"/log"`)
	assert.Contains(t, out.String(), `"request_id":"`+rec.Header().Get(RequestIDHeader)+`"`)
}

func TestGetLogger_WithoutEnhancer(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.NotNil(t, GetLogger(c))
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "custom http error",
			err:        errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{Field: "ntn", Error: "invalid"}}, nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantMsg:    "Validation failed",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
			wantMsg:    "nope",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newTestEcho(newTestServer(&bytes.Buffer{}))
			e.GET("/fail", func(c echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decodeHTTPError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, tt.wantStatus, body.Status)
		})
	}
}

func TestGlobalErrorHandler_RouteNotFound(t *testing.T) {
	e, _ := newTestEcho(newTestServer(&bytes.Buffer{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeHTTPError(t, rec).Message)
}

func TestRateLimit(t *testing.T) {
	s := newTestServer(&bytes.Buffer{})
	e, m := newTestEcho(s)
	e.GET("/limited", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, m.RateLimit.Limit())

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "203.0.113.7:4321"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_Disabled(t *testing.T) {
	s := newTestServer(&bytes.Buffer{})
	s.Config.RateLimit.Enabled = false

	e, m := newTestEcho(s)
	e.GET("/open", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, m.RateLimit.Limit())

	for range 5 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/open", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestEnhanceTracing_WithoutTransaction(t *testing.T) {
	e, m := newTestEcho(newTestServer(&bytes.Buffer{}))
	e.Use(m.Tracing.NewRelicMiddleware(), m.Tracing.EnhanceTracing())
	e.GET("/traced", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/traced", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLogger_SlowRequest(t *testing.T) {
	out := &bytes.Buffer{}
	s := newTestServer(out)
	s.Config.Observability.Logging.SlowRequestThreshold = time.Millisecond

	e, m := newTestEcho(s)
	e.Use(m.Global.RequestLogger())
	e.GET("/slow", func(c echo.Context) error {
		time.Sleep(5 * time.Millisecond)
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/slow", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, out.String(), `"slow":true`)
	assert.Contains(t, out.String(), `"level":"warn"`)
}
