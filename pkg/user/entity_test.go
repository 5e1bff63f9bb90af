package user

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	u, ok := New("  Asha ", " Asha@Example.COM ")
	assert.True(t, ok)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "Asha", u.Name)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.False(t, u.CreatedAt.IsZero())

	_, ok = New("", "   ")
	assert.False(t, ok)

	u, ok = New("", "x@y.z")
	assert.True(t, ok)
	assert.Empty(t, u.Name)
}
