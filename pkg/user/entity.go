package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

// User is an anonymous visitor who left a name or an email with an upload.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository is the persistence port for users.
type Repository interface {
	Create(ctx context.Context, u User) error
	Get(ctx context.Context, id uuid.UUID) (User, error)
}

// New returns a user for the given contact details, or false when both are blank.
func New(name, email string) (User, bool) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" && email == "" {
		return User{}, false
	}
	return User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}, true
}
