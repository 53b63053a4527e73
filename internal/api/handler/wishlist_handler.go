package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pruebatecnica/wishlist/internal/api/metrics"
	"github.com/pruebatecnica/wishlist/internal/api/session"
	"github.com/pruebatecnica/wishlist/internal/api/view"
	"github.com/pruebatecnica/wishlist/internal/core/domain"
	"github.com/pruebatecnica/wishlist/internal/core/ports"
)

// MsgItemNameTooLong is flashed when an item name exceeds the column size.
const MsgItemNameTooLong = "Item name must be at most 100 characters."

// WishlistHandler handles HTTP requests for wishlist operations.
type WishlistHandler struct {
	service ports.WishlistService
}

func NewWishlistHandler(service ports.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

type addItemForm struct {
	ItemName string `form:"item_name" validate:"required"`
}

// Home renders the dashboard, or sends anonymous visitors to the login page.
//
// @Summary      Dashboard
// @Description  Current user, every other user, the user's own items and all items owned by others.
// @Tags         wishlist
// @Produce      html
// @Success      200
// @Success      302  "Redirect to /login when not logged in"
// @Router       / [get]
func (h *WishlistHandler) Home(c echo.Context) error {
	sess := session.FromContext(c)
	if !sess.Authenticated() {
		return c.Redirect(http.StatusFound, "/login")
	}

	dashboard, err := h.service.Dashboard(c.Request().Context(), sess.UserID)
	if err != nil {
		return fmt.Errorf("home: %w", err)
	}
	return render(c, http.StatusOK, view.Home, "Home", dashboard)
}

// AddItemForm renders the add-item form.
//
// @Summary      Add item form
// @Tags         wishlist
// @Produce      html
// @Success      200
// @Router       /add_item [get]
func (h *WishlistHandler) AddItemForm(c echo.Context) error {
	return render(c, http.StatusOK, view.AddItem, "Add item", nil)
}

// AddItem creates an item owned by the current user.
//
// @Summary      Add item
// @Tags         wishlist
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        item_name  formData  string  true  "Item name (1-100 characters)"
// @Success      302  "Redirect to / after creating the item"
// @Success      200  "Form shown again with an error message"
// @Router       /add_item [post]
func (h *WishlistHandler) AddItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var form addItemForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if verr := c.Validate(&form); verr != nil {
		err = domain.ErrEmptyItemName
	} else {
		_, err = h.service.AddItem(c.Request().Context(), userID, form.ItemName)
	}

	switch {
	case err == nil:
		metrics.ItemOperationsTotal.WithLabelValues("add", "ok").Inc()
		session.Flash(c, domain.FlashMessage, MsgItemAdded)
		return c.Redirect(http.StatusFound, "/")
	case errors.Is(err, domain.ErrFieldTooLong):
		metrics.ItemOperationsTotal.WithLabelValues("add", "field_too_long").Inc()
		session.Flash(c, domain.FlashMessage, MsgItemNameTooLong)
		return render(c, http.StatusOK, view.AddItem, "Add item", nil)
	}

	msg, reason, ok := userMessage(err)
	if !ok {
		return fmt.Errorf("add item: %w", err)
	}
	metrics.ItemOperationsTotal.WithLabelValues("add", reason).Inc()
	session.Flash(c, domain.FlashMessage, msg)
	return render(c, http.StatusOK, view.AddItem, "Add item", nil)
}

// CopyItem adds an item with the same name as {id} to the current user's
// wishlist. The outcome is always reported through a flash on the dashboard.
//
// @Summary      Copy item into my wishlist
// @Tags         wishlist
// @Param        id  path  int  true  "Source item id"
// @Success      302  "Redirect to /"
// @Failure      404  "Non-numeric id"
// @Router       /add_wishlist_item/{id} [get]
func (h *WishlistHandler) CopyItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c)
	if err != nil {
		return err
	}

	_, err = h.service.CopyItem(c.Request().Context(), userID, itemID)
	switch {
	case err == nil:
		metrics.ItemOperationsTotal.WithLabelValues("copy", "ok").Inc()
		session.Flash(c, domain.FlashSuccess, MsgItemCopied)
	case errors.Is(err, domain.ErrAlreadyInWishlist):
		metrics.ItemOperationsTotal.WithLabelValues("copy", "already_in_wishlist").Inc()
		session.Flash(c, domain.FlashInfo, MsgAlreadyInList)
	case errors.Is(err, domain.ErrItemNotFound):
		metrics.ItemOperationsTotal.WithLabelValues("copy", "not_found").Inc()
		session.Flash(c, domain.FlashDanger, MsgItemMissing)
	default:
		return fmt.Errorf("copy item: %w", err)
	}
	return c.Redirect(http.StatusFound, "/")
}

// ItemDetails renders one item together with its owner.
//
// @Summary      Item details
// @Tags         wishlist
// @Produce      html
// @Param        id  path  int  true  "Item id"
// @Success      200
// @Failure      404  "Unknown or non-numeric id"
// @Router       /item_details/{id} [get]
func (h *WishlistHandler) ItemDetails(c echo.Context) error {
	itemID, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.ItemDetails(c.Request().Context(), itemID)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, view.ItemDetails, detail.Item.Name, detail)
}

// RemoveItem deletes {id} when it belongs to the current user.
//
// @Summary      Remove item
// @Tags         wishlist
// @Param        id  path  int  true  "Item id"
// @Success      302  "Redirect to /"
// @Failure      404  "Unknown or non-numeric id"
// @Router       /remove_wishlist_item/{id} [get]
func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c)
	if err != nil {
		return err
	}

	err = h.service.RemoveItem(c.Request().Context(), userID, itemID)
	switch {
	case err == nil:
		metrics.ItemOperationsTotal.WithLabelValues("remove", "ok").Inc()
		session.Flash(c, domain.FlashSuccess, MsgItemRemoved)
	case errors.Is(err, domain.ErrForbidden):
		metrics.ItemOperationsTotal.WithLabelValues("remove", "forbidden").Inc()
		session.Flash(c, domain.FlashDanger, MsgRemoveForbidden)
	default:
		return err
	}
	return c.Redirect(http.StatusFound, "/")
}
