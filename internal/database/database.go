// Package database contains the logic for establishing
// connections to the MongoDB database.
//
// It handles:
//   - building client options (pool size, idle time, timeouts) from config
//   - connecting with retries, pinging on every attempt
//   - exposing a Ping suitable for health checks
//   - disconnecting on shutdown
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/deppfellow/fbr-erp/internal/config"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

var (
	// ErrFailedToConnect is returned by New once every attempt has failed.
	ErrFailedToConnect = errors.New("failed to connect to mongo")

	// ErrNotConnected is returned by Ping on a Database without a client.
	ErrNotConnected = errors.New("mongo client not initialized")

	// ErrHealthcheckFailed wraps ping failures reported to health checks.
	ErrHealthcheckFailed = errors.New("mongo healthcheck failed")
)

// Database wraps the mongo client, the application database handle and a logger.
type Database struct {
	Client *mongo.Client
	DB     *mongo.Database
	log    *zerolog.Logger
}

// DatabasePingTimeout bounds each ping made while connecting.
const DatabasePingTimeout = 10 * time.Second

// clientOptions maps config onto driver options.
func clientOptions(cfg config.DatabaseConfig) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.URL).
		SetAppName(config.ServiceName).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetRetryWrites(true).
		SetRetryReads(true)
}

// New connects to MongoDB and verifies the connection with a ping.
//
// It makes cfg.Database.RetryAttempts attempts, waiting RetryInterval between
// them, so a database that is still starting (docker compose, Atlas failover)
// does not kill the process. ctx cancels the whole sequence.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	attempts := max(cfg.Database.RetryAttempts, 1)

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		client, err := mongo.Connect(clientOptions(cfg.Database))
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, DatabasePingTimeout)
			err = client.Ping(pingCtx, readpref.Primary())
			cancel()

			if err == nil {
				logger.Info().
					Str("database", cfg.Database.Name).
					Int("attempt", attempt).
					Msg("connected to the database")

				return &Database{
					Client: client,
					DB:     client.Database(cfg.Database.Name),
					log:    logger,
				}, nil
			}

			_ = client.Disconnect(context.Background())
		}

		lastErr = err
		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", attempts).
			Msg("database connection attempt failed")

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrFailedToConnect, ctx.Err())
		case <-time.After(cfg.Database.RetryInterval):
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrFailedToConnect, lastErr)
}

// Ping checks that the primary is reachable.
func (db *Database) Ping(ctx context.Context) error {
	if db == nil || db.Client == nil {
		return ErrNotConnected
	}

	if err := db.Client.Ping(ctx, readpref.Primary()); err != nil {
		return errors.Join(ErrHealthcheckFailed, err)
	}
	return nil
}

// Close disconnects the client, waiting for in-use connections until ctx expires.
func (db *Database) Close(ctx context.Context) error {
	if db == nil || db.Client == nil {
		return nil
	}

	if db.log != nil {
		db.log.Info().Msg("closing database connection")
	}
	return db.Client.Disconnect(ctx)
}
