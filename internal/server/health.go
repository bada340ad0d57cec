package server

import (
	"context"
	"sync"
	"time"
)

// HealthCheckFunc probes one dependency. A nil error means healthy.
type HealthCheckFunc func(ctx context.Context) error

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// defaultCheckTimeout is used when no observability config is present.
const defaultCheckTimeout = 5 * time.Second

// CheckResult is the outcome of one health check.
type CheckResult struct {
	Name         string
	Status       string
	ResponseTime time.Duration
	Err          error
}

// Healthy reports whether the check passed.
func (r CheckResult) Healthy() bool {
	return r.Err == nil
}

// checkNames returns the configured check names, or every registered check
// when none are configured.
func (s *Server) checkNames() []string {
	if s.Config != nil && s.Config.Observability != nil && len(s.Config.Observability.HealthChecks.Checks) > 0 {
		return s.Config.Observability.HealthChecks.Checks
	}

	names := make([]string, 0, len(s.HealthChecks))
	for _, name := range []string{CheckDatabase, CheckRedis} {
		if _, ok := s.HealthChecks[name]; ok {
			names = append(names, name)
		}
	}
	return names
}

func (s *Server) checkTimeout() time.Duration {
	if s.Config != nil && s.Config.Observability != nil && s.Config.Observability.HealthChecks.Timeout > 0 {
		return s.Config.Observability.HealthChecks.Timeout
	}
	return defaultCheckTimeout
}

// RunHealthChecks runs the configured checks concurrently, each bounded by
// the configured timeout, and returns results in configuration order.
//
// A configured name with no registered check (e.g. "redis" when Redis is
// disabled) is skipped, not reported as a failure.
func (s *Server) RunHealthChecks(ctx context.Context) []CheckResult {
	names := s.checkNames()
	timeout := s.checkTimeout()

	results := make([]CheckResult, len(names))
	present := make([]bool, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		check, ok := s.HealthChecks[name]
		if !ok {
			continue
		}
		present[i] = true

		wg.Add(1)
		go func(i int, name string, check HealthCheckFunc) {
			defer wg.Done()

			checkCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			start := time.Now()
			err := check(checkCtx)

			result := CheckResult{
				Name:         name,
				Status:       StatusHealthy,
				ResponseTime: time.Since(start),
				Err:          err,
			}
			if err != nil {
				result.Status = StatusUnhealthy
			}
			results[i] = result
		}(i, name, check)
	}
	wg.Wait()

	out := make([]CheckResult, 0, len(results))
	for i, r := range results {
		if present[i] {
			out = append(out, r)
		}
	}
	return out
}

// RecordHealthCheckError sends a HealthCheckError custom event to New Relic.
// It is a no-op when New Relic is disabled.
func (s *Server) RecordHealthCheckError(attrs map[string]interface{}) {
	if app := s.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attrs)
	}
}

// healthMonitor runs the checks on a ticker until stopped.
type healthMonitor struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// StartHealthMonitor runs the health checks every configured interval in the
// background, logging failures. Calling it twice is a no-op.
func (s *Server) StartHealthMonitor() {
	if s.monitor != nil {
		return
	}

	interval := 30 * time.Second
	if s.Config != nil && s.Config.Observability != nil && s.Config.Observability.HealthChecks.Interval > 0 {
		interval = s.Config.Observability.HealthChecks.Interval
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &healthMonitor{cancel: cancel, done: make(chan struct{})}
	s.monitor = m

	go func() {
		defer close(m.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runMonitorPass(ctx)
			}
		}
	}()
}

// StopHealthMonitor stops the monitor and waits for an in-flight pass.
func (s *Server) StopHealthMonitor() {
	if s.monitor == nil {
		return
	}
	s.monitor.cancel()
	<-s.monitor.done
	s.monitor = nil
}

func (s *Server) runMonitorPass(ctx context.Context) {
	for _, result := range s.RunHealthChecks(ctx) {
		if result.Healthy() {
			s.Logger.Debug().
				Str("check", result.Name).
				Dur("response_time", result.ResponseTime).
				Msg("health check passed")
			continue
		}

		// A cancelled pass during shutdown is not a dependency failure.
		if ctx.Err() != nil {
			return
		}

		s.Logger.Error().
			Err(result.Err).
			Str("check", result.Name).
			Dur("response_time", result.ResponseTime).
			Msg("health check failed")

		s.RecordHealthCheckError(map[string]interface{}{
			"check_type":       result.Name,
			"operation":        "health_monitor",
			"error_type":       result.Name + "_unhealthy",
			"response_time_ms": result.ResponseTime.Milliseconds(),
			"error_message":    result.Err.Error(),
		})
	}
}
