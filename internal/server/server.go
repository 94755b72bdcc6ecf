// Package server contains the HTTP handlers and route table for the API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	_ "devconnect/docs" // swagger docs
	"devconnect/internal/auth"
	"devconnect/internal/cache"
	"devconnect/internal/config"
	"devconnect/internal/database"
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/notifications"
	"devconnect/internal/repository"
	"devconnect/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	tokens         *auth.TokenService
	notifier       *notifications.Notifier
	userService    *service.UserService
	profileService *service.ProfileService
	postService    *service.PostService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// A nil redisClient disables caching and event publishing.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}
	cache.SetClient(redisClient)

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)
	notifier := notifications.NewNotifier(redisClient)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("devconnect-api"),
		tokens:         auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL()),
		notifier:       notifier,
		userService:    service.NewUserService(userRepo, auth.NewHasher(cfg.BcryptCost)),
		profileService: service.NewProfileService(profileRepo),
		postService:    service.NewPostService(postRepo, userRepo, notifier),
	}, nil
}

// NewApp returns a Fiber app whose error handler writes the standard error body.
func (s *Server) NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      "DevConnect API",
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: models.RespondWithError,
	})
}

// SetupMiddleware configures the global middleware chain
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Spans and X-Trace-ID
	app.Use(middleware.TracingMiddleware())

	// Propagate request and trace IDs into the request context
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:3000,http://localhost:5173"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, " + middleware.TokenHeader,
		MaxAge:       86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	api := app.Group("/api")
	api.Get("/swagger/*", swagger.HandlerDefault)

	authRequired := middleware.AuthRequired(s.tokens)

	api.Post("/users", s.Register)

	authRoutes := api.Group("/auth")
	authRoutes.Post("/", s.Login)
	authRoutes.Get("/", authRequired, s.CurrentUser)

	profiles := api.Group("/profile")
	profiles.Get("/me", authRequired, s.GetMyProfile)
	profiles.Get("/user/:user_id", s.GetProfileByUser)
	profiles.Get("/", authRequired, s.ListProfiles)
	profiles.Post("/", authRequired, s.UpsertProfile)
	profiles.Get("/:user_id", s.GetProfileByUser)

	posts := api.Group("/posts")
	posts.Post("/", authRequired, s.CreatePost)
	posts.Get("/", authRequired, s.ListPosts)
	posts.Put("/like/:id", authRequired, s.LikePost)
	posts.Put("/unlike/:id", authRequired, s.UnlikePost)
	posts.Post("/comment/:id", authRequired, s.AddComment)
	posts.Delete("/comment/:id/:comment_id", authRequired, s.DeleteComment)
	posts.Get("/:id", s.GetPost)
	posts.Delete("/:id", authRequired, s.DeletePost)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck reports unhealthy when the database, or a configured Redis, does not answer.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus != "healthy" || redisStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// StartEventLog logs every post event published on Redis until ctx is done.
func (s *Server) StartEventLog(ctx context.Context) error {
	return s.notifier.StartSubscriber(ctx, func(e notifications.PostEvent) {
		middleware.Logger.InfoContext(ctx, "post event",
			slog.String("type", e.Type),
			slog.Uint64("post_id", uint64(e.PostID)),
			slog.Uint64("user_id", uint64(e.UserID)),
		)
	})
}

// Shutdown releases the database and Redis connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			middleware.Logger.ErrorContext(ctx, "error closing sql DB", slog.String("error", cerr.Error()))
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			middleware.Logger.ErrorContext(ctx, "error closing redis", slog.String("error", rerr.Error()))
		}
		cache.SetClient(nil)
	}

	middleware.Logger.InfoContext(ctx, "Server shutdown complete")
	return nil
}
