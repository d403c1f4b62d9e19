package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noxel/ticketing-api/internal/api/handler"
	"github.com/noxel/ticketing-api/internal/api/middleware"
	"github.com/noxel/ticketing-api/internal/core/domain"
	"github.com/noxel/ticketing-api/internal/core/service"
	"github.com/noxel/ticketing-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/noxel/ticketing-api/internal/infrastructure/db/redis"
	hhandlers "github.com/noxel/ticketing-api/internal/infrastructure/http/handlers"
)

// Deps bundles the process-wide collaborators the router wires together.
type Deps struct {
	DB        *pgxpool.Pool
	Redis     *redis.Client
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("ticketing"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(deps.DB)
	hasher := service.NewArgon2idHasher()
	tokenService := service.NewTokenService(deps.JWTSecret, deps.TokenTTL, deps.Logger)
	profileCache := redisinfra.NewProfileCache(deps.Redis)
	signupService := service.NewSignupService(userRepo, hasher, tokenService, profileCache, deps.TokenTTL, deps.Logger)
	ticketService := service.NewTicketService()

	authHandler := handler.NewAuthHandler(signupService, deps.Logger)
	ticketHandler := handler.NewTicketHandler(ticketService)
	authMiddleware := middleware.Auth(tokenService)

	// --- User routes ---
	users := e.Group("/users")
	users.POST("/signup/organizer", authHandler.SignupOrganizer)
	users.POST("/signup/attendee", authHandler.SignupAttendee)
	users.GET("/me", authHandler.Me, authMiddleware)

	// --- Ticket routes (stubs, auth required) ---
	tickets := e.Group("/tickets", authMiddleware)
	tickets.GET("", ticketHandler.List)
	tickets.GET("/:id", ticketHandler.Get)
	tickets.POST("", ticketHandler.Create, middleware.RequireRoles(domain.RoleOrganizer, domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := hhandlers.NewHealthHandler()
	healthDepsHandler := hhandlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
