package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (c stubChecker) Name() string { return c.name }
func (c stubChecker) Check(context.Context) error { return c.err }

func TestReady(t *testing.T) {
	assert.NoError(t, NewService().Ready(context.Background()))
	assert.NoError(t, NewService(stubChecker{name: "postgres"}, nil).Ready(context.Background()))

	err := NewService(stubChecker{name: "postgres"}, stubChecker{name: "redis", err: errors.New("refused")}).
		Ready(context.Background())
	require.Error(t, err)
	assert.Equal(t, "redis: refused", err.Error())
}

func TestReport(t *testing.T) {
	rep := NewService(stubChecker{name: "postgres"}, stubChecker{name: "redis", err: errors.New("refused")}).
		Report(context.Background())
	assert.Equal(t, map[string]string{"postgres": "ok", "redis": "refused"}, rep)
}
