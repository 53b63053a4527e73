package ports

import (
	"context"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
)

// RegisterInput carries the raw registration form.
type RegisterInput struct {
	Name      string
	Username  string
	Password  string
	DateHired string // YYYY-MM-DD
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns domain.ErrInvalidCredentials for both unknown users and
	// wrong passwords.
	Login(ctx context.Context, username, password string) (*domain.User, error)
}
