package domain

import (
	"errors"
	"time"
)

// MaxItemNameLength mirrors the wishlist_items.name column size.
const MaxItemNameLength = 100

var (
	ErrItemNotFound      = errors.New("wishlist item not found")
	ErrEmptyItemName     = errors.New("item name cannot be empty")
	ErrAlreadyInWishlist = errors.New("item already in wishlist")
	ErrForbidden         = errors.New("access forbidden")
)

// WishlistItem is a named entry owned by exactly one user.
type WishlistItem struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	AddedBy   int64     `json:"added_by" db:"added_by"`
	DateAdded time.Time `json:"date_added" db:"date_added"`
}

// OwnedBy reports whether userID is the item's owner.
func (i WishlistItem) OwnedBy(userID int64) bool {
	return i.AddedBy == userID
}
