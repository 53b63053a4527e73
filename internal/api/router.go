package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/pruebatecnica/wishlist/docs"
	"github.com/pruebatecnica/wishlist/internal/api/handler"
	"github.com/pruebatecnica/wishlist/internal/api/middleware"
	"github.com/pruebatecnica/wishlist/internal/api/session"
	"github.com/pruebatecnica/wishlist/internal/api/view"
	"github.com/pruebatecnica/wishlist/internal/core/ports"
	"github.com/pruebatecnica/wishlist/pkg/logger"
)

// Services are the use cases and stores the router wires into handlers.
type Services struct {
	Auth     ports.AuthService
	Wishlist ports.WishlistService
	Sessions ports.SessionStore
}

// Options tunes the router.
type Options struct {
	SessionSecret string
	SessionTTL    time.Duration
	SecureCookies bool
	Logger        zerolog.Logger
	// Checks are pinged by the readiness probe.
	Checks []handler.DependencyCheck
	// Registry receives the request metrics and backs /metrics. The default
	// Prometheus registry is used when nil.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.Renderer = view.MustRenderer()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	sessions := session.NewManager(svc.Sessions, session.Options{
		Secret: opts.SessionSecret,
		TTL:    opts.SessionTTL,
		Secure: opts.SecureCookies,
	}, opts.Logger)

	promCfg := echoprometheus.MiddlewareConfig{
		Namespace: "wishlist",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}
	metricsHandler := echoprometheus.NewHandler()
	if opts.Registry != nil {
		promCfg.Registerer = opts.Registry
		metricsHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Registry})
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(logger.Middleware(opts.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))
	e.Use(sessions.Middleware())

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(svc.Auth, sessions)
	wishlistHandler := handler.NewWishlistHandler(svc.Wishlist)
	requireLogin := middleware.RequireLogin("/login")

	// --- Auth routes ---
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout, requireLogin)

	// --- Wishlist routes ---
	e.GET("/", wishlistHandler.Home)
	e.GET("/add_item", wishlistHandler.AddItemForm, requireLogin)
	e.POST("/add_item", wishlistHandler.AddItem, requireLogin)
	e.GET("/add_wishlist_item/:id", wishlistHandler.CopyItem, requireLogin)
	e.GET("/item_details/:id", wishlistHandler.ItemDetails, requireLogin)
	e.GET("/remove_wishlist_item/:id", wishlistHandler.RemoveItem, requireLogin)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Checks...)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational ---
	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
