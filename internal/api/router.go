package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"github.com/webstore/store-api/internal/api/handler"
	"github.com/webstore/store-api/internal/api/middleware"
	"github.com/webstore/store-api/internal/core/domain"
	"github.com/webstore/store-api/internal/core/ports"
)

// Deps carries everything the router needs. Redis may be nil when token
// revocation is disabled.
type Deps struct {
	Auth       ports.AuthService
	Users      ports.UserService
	Products   ports.ProductService
	Orders     ports.OrderService
	OrderItems ports.OrderItemService

	DB    handler.Pinger
	Redis handler.Pinger

	Logger zerolog.Logger

	// LoginRateLimit is the per-IP request rate allowed on POST /auth/login.
	// Zero disables the limiter.
	LoginRateLimit float64
	// MetricsRegisterer receives the HTTP request metrics. Defaults to the
	// prometheus default registerer.
	MetricsRegisterer prometheus.Registerer
}

// route is one entry of the route table. Every endpoint is declared here
// together with the policy that guards it.
type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	policy  domain.Policy
	extra   []echo.MiddlewareFunc
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "webstore",
		Registerer: deps.MetricsRegisterer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	for _, r := range routes(deps) {
		chain := append([]echo.MiddlewareFunc{middleware.Guard(deps.Auth, r.policy)}, r.extra...)
		e.Add(r.method, r.path, r.handler, chain...)
	}

	return e
}

func routes(deps Deps) []route {
	admin := domain.HasRole(domain.RoleAdmin)
	authenticated := domain.Authenticated()
	public := domain.PermitAll()

	auth := handler.NewAuthHandler(deps.Auth)
	users := handler.NewUserHandler(deps.Users)
	profile := handler.NewProfileHandler(deps.Users)
	products := handler.NewProductHandler(deps.Products)
	orders := handler.NewOrderHandler(deps.Orders)
	items := handler.NewOrderItemHandler(deps.OrderItems)
	health := handler.NewHealthHandler()
	ready := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	var loginLimit []echo.MiddlewareFunc
	if deps.LoginRateLimit > 0 {
		loginLimit = append(loginLimit, loginRateLimiter(deps.LoginRateLimit))
	}

	return []route{
		// --- Auth ---
		{http.MethodPost, "/auth/login", auth.Login, public, loginLimit},
		{http.MethodPost, "/auth/logout", auth.Logout, authenticated, nil},

		// --- Users ---
		{http.MethodGet, "/api/users", users.List, admin, nil},
		{http.MethodPost, "/api/users", users.Create, public, nil},
		{http.MethodGet, "/api/users/:username", users.Get, admin, nil},
		{http.MethodDelete, "/api/users/:username", users.Delete, admin, nil},
		{http.MethodPut, "/api/users/:username/password", users.UpdatePassword, admin, nil},
		{http.MethodGet, "/api/users/:username/roles", users.Roles, admin, nil},
		{http.MethodPost, "/api/users/:username/roles", users.AddRole, admin, nil},
		{http.MethodDelete, "/api/users/:username/roles/:role", users.RemoveRole, admin, nil},

		// --- Profile ---
		{http.MethodGet, "/api/profile", profile.Get, authenticated, nil},
		{http.MethodGet, "/api/profile/roles", profile.Roles, authenticated, nil},
		{http.MethodPut, "/api/profile/change-password", profile.ChangePassword, authenticated, nil},

		// --- Products ---
		{http.MethodGet, "/api/products", products.List, admin, nil},
		{http.MethodPost, "/api/products", products.Create, public, nil},
		{http.MethodGet, "/api/products/:id", products.Get, admin, nil},
		{http.MethodPut, "/api/products/:id", products.Update, admin, nil},
		{http.MethodDelete, "/api/products/:id", products.Delete, admin, nil},

		// --- Orders ---
		{http.MethodGet, "/api/orders", orders.List, admin, nil},
		{http.MethodPost, "/api/orders", orders.Create, public, nil},
		{http.MethodGet, "/api/orders/:id", orders.Get, admin, nil},
		{http.MethodPut, "/api/orders/:id", orders.Update, admin, nil},
		{http.MethodDelete, "/api/orders/:id", orders.Delete, admin, nil},

		// --- Order items ---
		{http.MethodGet, "/api/order-items", items.List, admin, nil},
		{http.MethodPost, "/api/order-items", items.Create, public, nil},
		{http.MethodGet, "/api/order-items/:id", items.Get, admin, nil},
		{http.MethodPut, "/api/order-items/:id", items.Update, admin, nil},
		{http.MethodDelete, "/api/order-items/:id", items.Delete, admin, nil},

		// --- Operations (no auth required) ---
		{http.MethodGet, "/health", health.Liveness, public, nil},       // liveness  – is the process alive?
		{http.MethodGet, "/health/ready", ready.Readiness, public, nil}, // readiness – are dependencies up?
		{http.MethodGet, "/metrics", echoprometheus.NewHandler(), public, nil},
		{http.MethodGet, "/swagger/*", echoSwagger.WrapHandler, public, nil},
	}
}

// loginRateLimiter throttles login attempts per client IP. Rejected requests
// get echo's 429 error.
func loginRateLimiter(perSecond float64) echo.MiddlewareFunc {
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStore(rate.Limit(perSecond)),
	})
}
