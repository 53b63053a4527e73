package ports

import (
	"context"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
)

// ActivityRepository persists the wishlist audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) error
}
