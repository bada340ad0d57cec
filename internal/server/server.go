// Package server defines the core Server struct that composes the app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - MongoDB database
//   - optional redis client
//   - named dependency health checks and the background health monitor
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/fbr-erp/internal/config"
	"github.com/deppfellow/fbr-erp/internal/database"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/fbr-erp/internal/logger"
)

// Names of the built-in health checks, as used in
// observability.health_checks.checks.
const (
	CheckDatabase = "database"
	CheckRedis    = "redis"
)

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself; that is the internal *http.Server
// configured by SetupHTTPServer.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger

	// LoggerService holds the New Relic application; it may be nil or disabled.
	LoggerService *loggerPkg.LoggerService

	DB *database.Database

	// Redis is nil when no redis address is configured.
	Redis *redis.Client

	// HealthChecks maps check names to the functions that probe them.
	HealthChecks map[string]HealthCheckFunc

	httpServer *http.Server
	monitor    *healthMonitor
}

// New constructs a Server and initializes core dependencies.
//
// Initialization performed:
//   - MongoDB client with retries (failure blocks startup)
//   - Redis client + optional New Relic hooks (failure is logged, not fatal)
//   - the "database" and "redis" health checks
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	db, err := database.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	s := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		DB:            db,
		HealthChecks:  map[string]HealthCheckFunc{},
	}

	s.HealthChecks[CheckDatabase] = db.Ping

	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Address,
		})

		if loggerService.GetApplication() != nil {
			redisClient.AddHook(nrredis.NewHook(redisClient.Options()))
		}

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		// Redis is an optional dependency: report it, keep booting.
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.Error().Err(err).Msg("failed to connect to Redis, continuing without it")
		}

		s.Redis = redisClient
		s.HealthChecks[CheckRedis] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	return s, nil
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start starts the health monitor (if enabled) and runs the HTTP server.
// It blocks until the server stops; a graceful Shutdown returns nil.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	if s.Config.Observability != nil && s.Config.Observability.HealthChecks.Enabled {
		s.StartHealthMonitor()
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server and its dependencies.
//
// Order: stop accepting requests, stop the monitor, close Redis, disconnect
// MongoDB, flush New Relic. Every step runs; failures are joined.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shutdown HTTP server: %w", err))
		}
	}

	s.StopHealthMonitor()

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}

	if err := s.DB.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database connection: %w", err))
	}

	s.LoggerService.Shutdown()

	return errors.Join(errs...)
}
