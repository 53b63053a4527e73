package handler

import (
	"errors"

	"github.com/pruebatecnica/wishlist/internal/core/domain"
)

// Messages shown to the user through flashes. Auth flashes carry the
// uncategorised domain.FlashMessage; copy and remove outcomes use the
// success, info and danger categories.
const (
	MsgRegistered      = "Registration successful! Please log in."
	MsgLoggedIn        = "Login successful!"
	MsgBadCredentials  = "Incorrect username or password. Please try again."
	MsgItemAdded       = "Item added successfully."
	MsgItemCopied      = "Item added to your wishlist successfully."
	MsgAlreadyInList   = "This item is already in your wishlist."
	MsgItemMissing     = "Item does not exist."
	MsgItemRemoved     = "Item removed successfully."
	MsgRemoveForbidden = "You do not have permission to delete this item."
)

type userError struct {
	err     error
	message string
	reason  string
}

// userErrors lists the domain errors that are reported back to the user
// instead of failing the request.
var userErrors = []userError{
	{domain.ErrPasswordTooShort, "Password must be at least 8 characters long.", "password_too_short"},
	{domain.ErrPasswordTooLong, "Password must be at most 72 bytes long.", "password_too_long"},
	{domain.ErrUsernameTooShort, "Username must be at least 4 characters long.", "username_too_short"},
	{domain.ErrHireDateNotToday, "Hire date must be today's date.", "hire_date_not_today"},
	{domain.ErrFieldTooLong, "Username must be at most 20 characters and names at most 100 characters.", "field_too_long"},
	{domain.ErrUserExists, "Username is already taken.", "user_exists"},
	{domain.ErrInvalidCredentials, MsgBadCredentials, "invalid_credentials"},
	{domain.ErrEmptyItemName, "Item name cannot be empty.", "empty_name"},
	{domain.ErrAlreadyInWishlist, MsgAlreadyInList, "already_in_wishlist"},
	{domain.ErrItemNotFound, MsgItemMissing, "not_found"},
	{domain.ErrForbidden, MsgRemoveForbidden, "forbidden"},
}

// userMessage returns the flash text and metric reason for err.
func userMessage(err error) (message, reason string, ok bool) {
	for _, ue := range userErrors {
		if errors.Is(err, ue.err) {
			return ue.message, ue.reason, true
		}
	}
	return "", "", false
}
