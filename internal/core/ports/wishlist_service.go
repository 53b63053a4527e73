package ports

import (
	"context"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
)

// Dashboard is everything the home page shows to an authenticated user.
type Dashboard struct {
	CurrentUser domain.User
	OtherUsers  []domain.User
	MyItems     []domain.WishlistItem
	OthersItems []domain.WishlistItem
}

// ItemDetail is a single item together with its owner.
type ItemDetail struct {
	Item  domain.WishlistItem
	Owner domain.User
}

// WishlistService defines use-case operations over wishlists.
type WishlistService interface {
	Dashboard(ctx context.Context, userID int64) (*Dashboard, error)
	AddItem(ctx context.Context, userID int64, name string) (*domain.WishlistItem, error)
	// CopyItem adds an item with the source's name to userID's wishlist.
	// It returns domain.ErrItemNotFound for unknown sources and
	// domain.ErrAlreadyInWishlist when userID already owns the source.
	CopyItem(ctx context.Context, userID, itemID int64) (*domain.WishlistItem, error)
	ItemDetails(ctx context.Context, itemID int64) (*ItemDetail, error)
	// RemoveItem deletes the item when userID owns it; otherwise it returns
	// domain.ErrForbidden and leaves the record intact.
	RemoveItem(ctx context.Context, userID, itemID int64) error
}
