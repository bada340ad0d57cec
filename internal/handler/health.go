package handler

import (
	"net/http"
	"time"

	"github.com/deppfellow/fbr-erp/internal/middleware"
	"github.com/deppfellow/fbr-erp/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves the health endpoint used by uptime monitors and load
// balancers.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckResponse is the state of one dependency.
type CheckResponse struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status      string                   `json:"status"`
	Message     string                   `json:"message"`
	Database    string                   `json:"database,omitempty"`
	Error       string                   `json:"error,omitempty"`
	Environment string                   `json:"environment"`
	Timestamp   time.Time                `json:"timestamp"`
	Checks      map[string]CheckResponse `json:"checks"`
}

// CheckHealth runs the configured health checks.
//
// It returns 200 with status "ok" while the database is reachable, and 500
// with "Database connection failed" when it is not. Other failing checks
// (redis) are reported under checks without changing the status code.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "ok",
		Message:     "API is running",
		Environment: h.server.Config.Primary.Env,
		Timestamp:   time.Now().UTC(),
		Checks:      make(map[string]CheckResponse),
	}

	for _, result := range h.server.RunHealthChecks(c.Request().Context()) {
		check := CheckResponse{
			Status:       result.Status,
			ResponseTime: result.ResponseTime.String(),
		}

		if result.Healthy() {
			logger.Debug().
				Str("check", result.Name).
				Dur("response_time", result.ResponseTime).
				Msg("health check passed")

			if result.Name == server.CheckDatabase {
				response.Database = "connected"
			}
		} else {
			check.Error = result.Err.Error()

			logger.Error().
				Err(result.Err).
				Str("check", result.Name).
				Dur("response_time", result.ResponseTime).
				Msg("health check failed")

			h.server.RecordHealthCheckError(map[string]interface{}{
				"check_type":       result.Name,
				"operation":        "health_check",
				"error_type":       result.Name + "_unhealthy",
				"response_time_ms": result.ResponseTime.Milliseconds(),
				"error_message":    result.Err.Error(),
			})

			if result.Name == server.CheckDatabase {
				response.Status = "error"
				response.Message = "Database connection failed"
				response.Database = "disconnected"
				response.Error = check.Error
			}
		}

		response.Checks[result.Name] = check
	}

	if response.Status != "ok" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusInternalServerError, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
