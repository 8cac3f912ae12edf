package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/enrollment/enrollment-api/docs"
	"github.com/enrollment/enrollment-api/internal/api/handler"
	"github.com/enrollment/enrollment-api/internal/api/middleware"
	"github.com/enrollment/enrollment-api/internal/core/domain"
	"github.com/enrollment/enrollment-api/internal/core/service"
	"github.com/enrollment/enrollment-api/internal/infrastructure/authz"
	"github.com/enrollment/enrollment-api/internal/infrastructure/memory"
)

// RouterConfig carries everything NewRouter needs to wire the service.
type RouterConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	APIPrefix string
	Logger    zerolog.Logger
	// Store defaults to a fresh memory.Store with memory.DefaultSeed.
	Store *memory.Store
	// Policy defaults to authz.DefaultPolicy.
	Policy [][]string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	store := cfg.Store
	if store == nil {
		store = memory.NewStore(memory.DefaultSeed())
	}
	policy := cfg.Policy
	if policy == nil {
		policy = authz.DefaultPolicy()
	}

	enforcer, err := authz.NewEnforcer(policy)
	if err != nil {
		return nil, fmt.Errorf("build authorizer: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	validator, err := handler.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("build validator: %w", err)
	}
	e.Validator = validator
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// Each router gets its own registry so several can coexist in one process.
	registry := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(cfg.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "enrollment",
		Subsystem:  "http",
		Registerer: registry,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/metrics") || strings.HasPrefix(c.Path(), "/health")
		},
	}))

	// --- Dependencies ---
	authService := service.NewAuthService(store, cfg.JWTSecret, cfg.TokenTTL, cfg.Logger)
	enrollmentService := service.NewEnrollmentService(store, enforcer, cfg.Logger)
	authHandler := handler.NewAuthHandler(authService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	requireToken := middleware.Auth(cfg.JWTSecret)

	// --- Enrollment routes ---
	g := e.Group(strings.TrimRight(cfg.APIPrefix, "/") + "/enrollments")
	g.GET("", enrollmentHandler.List, requireToken, middleware.RBAC(domain.RoleAdmin))
	g.POST("/login", authHandler.Login, middleware.OptionalAuth(cfg.JWTSecret))
	g.POST("/reset", enrollmentHandler.Reset, requireToken)
	g.GET("/:studentId", enrollmentHandler.Get, requireToken)
	g.POST("/:studentId", enrollmentHandler.Create, requireToken)
	g.DELETE("/:studentId", enrollmentHandler.Delete, requireToken)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(map[string]handler.ReadinessChecker{
		"store": store,
	})

	e.GET("/health", healthHandler.Liveness)           // liveness
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: store seeded

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{registry, prometheus.DefaultGatherer},
	}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e, nil
}
