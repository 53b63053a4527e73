package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pruebatecnica/wishlist/internal/api/session"
	"github.com/pruebatecnica/wishlist/internal/api/view"
)

// currentUserID returns the authenticated user bound to the request session.
// Protected routes sit behind middleware.RequireLogin, so a missing identity
// here means the route was wired without it.
func currentUserID(c echo.Context) (int64, error) {
	sess := session.FromContext(c)
	if !sess.Authenticated() {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authenticated session")
	}
	return sess.UserID, nil
}

// pathID parses the {id} route parameter. Anything that is not a positive
// integer is reported as 404, the same as an unknown id.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrNotFound
	}
	return id, nil
}

// render writes the named page, consuming the session's pending flashes.
func render(c echo.Context, status int, name, title string, data any) error {
	sess := session.FromContext(c)
	return c.Render(status, name, view.Page{
		Title:         title,
		Authenticated: sess.Authenticated(),
		Flashes:       sess.PopFlashes(),
		Data:          data,
	})
}
