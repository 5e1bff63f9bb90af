package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/artem13815/joblens/pkg/logging"
)

const (
	pingAttempts = 5
	pingBackoff  = time.Second
)

// Connect opens a pgx connection pool and pings it, retrying while the database
// is still starting up.
func Connect(ctx context.Context, dsn string, log *logrus.Entry) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	// Reasonable defaults
	config.MaxConns = 10
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open pgx pool: %w", err)
	}
	log = logging.Component(log, "postgres")
	for attempt := 1; ; attempt++ {
		err = pool.Ping(ctx)
		if err == nil {
			log.WithField("host", config.ConnConfig.Host).Info("connected")
			return pool, nil
		}
		if attempt == pingAttempts {
			break
		}
		log.WithError(err).WithField("attempt", attempt).Warn("postgres not ready, retrying")
		select {
		case <-ctx.Done():
			pool.Close()
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * pingBackoff):
		}
	}
	pool.Close()
	return nil, fmt.Errorf("ping postgres: %w", err)
}
