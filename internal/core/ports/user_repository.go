package ports

import (
	"context"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Create inserts the user and returns it with its generated ID.
	// A taken username yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByUsername matches the username exactly.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// ListExcept returns every user other than id.
	ListExcept(ctx context.Context, id int64) ([]domain.User, error)
}
