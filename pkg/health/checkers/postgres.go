package checkers

import (
	"context"
	"time"
)

// PoolPinger is satisfied by *pgxpool.Pool.
type PoolPinger interface {
	Ping(ctx context.Context) error
}

type PostgresChecker struct {
	pool PoolPinger
}

func NewPostgresChecker(pool PoolPinger) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.pool.Ping(ctx)
}
