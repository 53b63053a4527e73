package ports

import (
	"context"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
)

// WishlistRepository defines persistence operations for wishlist items.
type WishlistRepository interface {
	// Create inserts the item; ID and DateAdded are filled by the store.
	Create(ctx context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error)
	FindByID(ctx context.Context, id int64) (*domain.WishlistItem, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.WishlistItem, error)
	ListNotOwnedBy(ctx context.Context, ownerID int64) ([]domain.WishlistItem, error)
	// Delete removes the item, returning domain.ErrItemNotFound when no row matched.
	Delete(ctx context.Context, id int64) error
}
