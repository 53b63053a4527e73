package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pruebatecnica/wishlist/internal/api/session"
	"github.com/pruebatecnica/wishlist/internal/core/domain"
)

// LoginMessage is flashed when an anonymous request hits a protected route.
const LoginMessage = "Please log in to access this page."

// RequireLogin rejects anonymous sessions with a flash and a redirect to
// loginPath. It must run after session.Manager.Middleware.
func RequireLogin(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := session.FromContext(c)
			if !sess.Authenticated() {
				sess.AddFlash(domain.FlashMessage, LoginMessage)
				return c.Redirect(http.StatusFound, loginPath)
			}
			return next(c)
		}
	}
}
