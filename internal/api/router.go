package api

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/revesshop/storefront-api/docs"
	"github.com/revesshop/storefront-api/internal/api/handler"
	"github.com/revesshop/storefront-api/internal/api/middleware"
	"github.com/revesshop/storefront-api/internal/core/ports"
	"github.com/revesshop/storefront-api/internal/core/service"
	"github.com/revesshop/storefront-api/internal/infrastructure/config"
)

const appName = "Revesshop API"

// Deps groups everything the router needs. Idempotency and Checks are
// optional. Registerer and Gatherer default to the global Prometheus registry.
type Deps struct {
	Config *config.Config
	Logger zerolog.Logger

	Users       ports.UserRepository
	Products    ports.ProductRepository
	Idempotency ports.IdempotencyStore
	Rates       ports.RateFetcher

	Checks     map[string]handler.CheckFunc
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	cfg := d.Config
	log := d.Logger

	registerer := d.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "revesshop",
		Subsystem:  "http",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || strings.HasPrefix(p, "/swagger")
		},
	}))

	// --- Dependencies ---
	tokens := service.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(d.Users, tokens, cfg.Auth.BcryptCost, log)
	productService := service.NewProductService(d.Products, d.Idempotency, log)
	currencyService := service.NewCurrencyService(d.Rates, cfg.Exchange.BaseCurrency, cfg.Exchange.Timeout, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	currencyHandler := handler.NewCurrencyHandler(currencyService)
	healthHandler := handler.NewHealthHandler(appName, d.Checks)

	authMW := middleware.Auth(tokens)
	adminOnly := []echo.MiddlewareFunc{authMW, middleware.AdminOnly()}

	e.GET("/", healthHandler.Root)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/registro", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/perfil", authHandler.Profile, authMW)

	// --- Catalog routes ---
	productos := e.Group("/productos")
	productos.GET("", productHandler.List)
	productos.GET("/:id", productHandler.Get)
	productos.POST("", productHandler.Create, adminOnly...)
	productos.PUT("/:id", productHandler.Update, adminOnly...)
	productos.DELETE("/:id", productHandler.Delete, adminOnly...)

	// --- Currency routes ---
	divisas := e.Group("/divisas")
	divisas.GET("/tasas", currencyHandler.Rates)
	divisas.GET("/convertir", currencyHandler.Convert)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	// --- Ops ---
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
