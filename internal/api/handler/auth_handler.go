package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pruebatecnica/wishlist/internal/api/metrics"
	"github.com/pruebatecnica/wishlist/internal/api/session"
	"github.com/pruebatecnica/wishlist/internal/api/view"
	"github.com/pruebatecnica/wishlist/internal/core/domain"
	"github.com/pruebatecnica/wishlist/internal/core/ports"
)

// SessionManager binds and unbinds the authenticated user of a request.
type SessionManager interface {
	Establish(c echo.Context, userID int64) error
	Destroy(c echo.Context)
}

type AuthHandler struct {
	authService ports.AuthService
	sessions    SessionManager
	now         func() time.Time
}

func NewAuthHandler(authService ports.AuthService, sessions SessionManager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, now: time.Now}
}

type registerForm struct {
	Name      string `form:"name"`
	Username  string `form:"username"`
	Password  string `form:"password"`
	DateHired string `form:"date_hired"`
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type registerPage struct {
	Today string
}

type loginPage struct {
	JustRegistered bool
}

// RegisterForm renders the account creation form.
//
// @Summary      Registration form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /register [get]
func (h *AuthHandler) RegisterForm(c echo.Context) error {
	return render(c, http.StatusOK, view.Register, "Register", registerPage{
		Today: h.now().Format(domain.HireDateLayout),
	})
}

// Register creates a new account and sends the browser to the login page.
// Rule violations are flashed and the form is shown again.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        name        formData  string  true  "Display name"
// @Param        username    formData  string  true  "Unique username (4-20 characters)"
// @Param        password    formData  string  true  "Password (at least 8 characters)"
// @Param        date_hired  formData  string  true  "Hire date, must be today (YYYY-MM-DD)"
// @Success      302  "Redirect to /login on success, back to /register on a rule violation"
// @Failure      400  "Malformed form body"
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	_, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:      form.Name,
		Username:  form.Username,
		Password:  form.Password,
		DateHired: form.DateHired,
	})
	if err != nil {
		msg, reason, ok := userMessage(err)
		if !ok {
			return fmt.Errorf("register: %w", err)
		}
		metrics.RegistrationsTotal.WithLabelValues(reason).Inc()
		session.Flash(c, domain.FlashMessage, msg)
		return c.Redirect(http.StatusFound, "/register")
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	sess := session.FromContext(c)
	sess.RegistrationSuccess = true
	sess.AddFlash(domain.FlashMessage, MsgRegistered)
	return c.Redirect(http.StatusFound, "/login")
}

// LoginForm renders the login form.
//
// @Summary      Login form
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /login [get]
func (h *AuthHandler) LoginForm(c echo.Context) error {
	sess := session.FromContext(c)
	justRegistered := sess.RegistrationSuccess
	sess.RegistrationSuccess = false

	return render(c, http.StatusOK, view.Login, "Log in", loginPage{JustRegistered: justRegistered})
}

// Login checks the credentials and binds the user to a fresh session.
//
// @Summary      Login
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      html
// @Param        username  formData  string  true  "Username"
// @Param        password  formData  string  true  "Password"
// @Success      302  "Redirect to / with an authenticated session"
// @Success      200  "Login form with an error message"
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	var (
		user *domain.User
		err  error
	)
	if verr := c.Validate(&form); verr != nil {
		err = domain.ErrInvalidCredentials
	} else {
		user, err = h.authService.Login(c.Request().Context(), form.Username, form.Password)
	}

	if errors.Is(err, domain.ErrInvalidCredentials) {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		session.Flash(c, domain.FlashMessage, MsgBadCredentials)
		return render(c, http.StatusOK, view.Login, "Log in", loginPage{})
	}
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	if err := h.sessions.Establish(c, user.ID); err != nil {
		return fmt.Errorf("establish session: %w", err)
	}
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	session.Flash(c, domain.FlashMessage, MsgLoggedIn)
	return c.Redirect(http.StatusFound, "/")
}

// Logout ends the current session.
//
// @Summary      Logout
// @Tags         auth
// @Success      302  "Redirect to /login"
// @Router       /logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Destroy(c)
	return c.Redirect(http.StatusFound, "/login")
}
