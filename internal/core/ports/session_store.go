package ports

import (
	"context"
	"time"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
)

// SessionStore keeps server-side session records keyed by their opaque ID.
type SessionStore interface {
	// Load returns domain.ErrSessionNotFound for unknown or expired IDs.
	Load(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
