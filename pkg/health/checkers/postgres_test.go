package checkers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type poolPingFunc func(ctx context.Context) error

func (f poolPingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestPostgresChecker(t *testing.T) {
	ok := NewPostgresChecker(poolPingFunc(func(ctx context.Context) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	}))
	assert.Equal(t, "postgres", ok.Name())
	assert.NoError(t, ok.Check(context.Background()))

	down := NewPostgresChecker(poolPingFunc(func(context.Context) error { return errors.New("refused") }))
	assert.EqualError(t, down.Check(context.Background()), "refused")
}
