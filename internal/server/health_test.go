package server

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/deppfellow/fbr-erp/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer lets the monitor goroutine and the test share a log buffer.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestServer(out *syncBuffer, checks map[string]HealthCheckFunc) *Server {
	cfg := &config.Config{
		Primary:       config.Primary{Env: "test"},
		Observability: config.DefaultObservabilityConfig(),
	}

	var logger zerolog.Logger
	if out != nil {
		logger = zerolog.New(out)
	} else {
		logger = zerolog.Nop()
	}

	return &Server{
		Config:       cfg,
		Logger:       &logger,
		HealthChecks: checks,
	}
}

func TestRunHealthChecks(t *testing.T) {
	dbErr := errors.New("no reachable servers")

	s := newTestServer(nil, map[string]HealthCheckFunc{
		CheckDatabase: func(context.Context) error { return dbErr },
		CheckRedis:    func(context.Context) error { return nil },
	})

	results := s.RunHealthChecks(context.Background())
	require.Len(t, results, 2)

	assert.Equal(t, CheckDatabase, results[0].Name)
	assert.Equal(t, StatusUnhealthy, results[0].Status)
	assert.ErrorIs(t, results[0].Err, dbErr)
	assert.False(t, results[0].Healthy())

	assert.Equal(t, CheckRedis, results[1].Name)
	assert.Equal(t, StatusHealthy, results[1].Status)
	assert.True(t, results[1].Healthy())
}

func TestRunHealthChecks_SkipsUnregistered(t *testing.T) {
	s := newTestServer(nil, map[string]HealthCheckFunc{
		CheckDatabase: func(context.Context) error { return nil },
	})

	results := s.RunHealthChecks(context.Background())
	require.Len(t, results, 1)
	assert.Equal(t, CheckDatabase, results[0].Name)
}

func TestRunHealthChecks_Timeout(t *testing.T) {
	s := newTestServer(nil, map[string]HealthCheckFunc{
		CheckDatabase: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})
	s.Config.Observability.HealthChecks.Timeout = 10 * time.Millisecond

	results := s.RunHealthChecks(context.Background())
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, context.DeadlineExceeded)
}

func TestHealthMonitor(t *testing.T) {
	var calls atomic.Int32
	out := &syncBuffer{}

	s := newTestServer(out, map[string]HealthCheckFunc{
		CheckDatabase: func(context.Context) error {
			calls.Add(1)
			return errors.New("connection refused")
		},
	})
	s.Config.Observability.HealthChecks.Interval = 5 * time.Millisecond

	s.StartHealthMonitor()
	s.StartHealthMonitor() // second call is a no-op

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	s.StopHealthMonitor()
	stopped := calls.Load()
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, stopped, calls.Load())
	assert.Contains(t, out.String(), "health check failed")
	assert.NotPanics(t, s.StopHealthMonitor)
}

func TestStart_RequiresHTTPServer(t *testing.T) {
	s := newTestServer(nil, nil)
	assert.Error(t, s.Start())
}
