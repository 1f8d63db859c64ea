// Package server contains the HTTP surface for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"time"

	"viewtube/internal/auth"
	"viewtube/internal/cache"
	"viewtube/internal/config"
	"viewtube/internal/database"
	"viewtube/internal/media"
	"viewtube/internal/middleware"
	"viewtube/internal/repository"
	"viewtube/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	verifier       auth.Verifier

	userRepo       repository.UserRepository
	videoRepo      repository.VideoRepository
	commentRepo    repository.CommentRepository
	tweetRepo      repository.TweetRepository
	playlistRepo   repository.PlaylistRepository
	engagementRepo repository.EngagementRepository
	statsRepo      repository.StatsRepository

	likeService         *service.LikeService
	subscriptionService *service.SubscriptionService
	playlistService     *service.PlaylistService
	commentService      *service.CommentService
	tweetService        *service.TweetService
	videoService        *service.VideoService
	dashboardService    *service.DashboardService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	store, err := media.NewMinioStore(context.Background(), media.MinioConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		UseSSL:    cfg.MinioUseSSL,
		Bucket:    cfg.MinioBucket,
	})
	if err != nil {
		return nil, fmt.Errorf("object store connection failed: %w", err)
	}

	return NewServerWithDeps(cfg, db, redisClient, store)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis/object
// store itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, store media.Store) (*Server, error) {
	prom := middleware.InitMetrics("viewtube-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		verifier:       auth.NewJWTVerifier(cfg.JWTSecret, "viewtube", "viewtube-api"),
		userRepo:       repository.NewUserRepository(db),
		videoRepo:      repository.NewVideoRepository(db),
		commentRepo:    repository.NewCommentRepository(db),
		tweetRepo:      repository.NewTweetRepository(db),
		playlistRepo:   repository.NewPlaylistRepository(db),
		engagementRepo: repository.NewEngagementRepository(db),
		statsRepo:      repository.NewStatsRepository(db),
	}

	server.likeService = service.NewLikeService(server.engagementRepo, server.videoRepo, server.commentRepo, server.tweetRepo)
	server.subscriptionService = service.NewSubscriptionService(server.engagementRepo, server.statsRepo, server.userRepo)
	server.playlistService = service.NewPlaylistService(server.playlistRepo, server.videoRepo, server.userRepo)
	server.commentService = service.NewCommentService(server.commentRepo, server.videoRepo)
	server.tweetService = service.NewTweetService(server.tweetRepo, server.userRepo)
	server.videoService = service.NewVideoService(server.videoRepo, store)
	server.dashboardService = service.NewDashboardService(server.statsRepo, server.videoRepo, server.userRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware runs before middlewares that can short-circuit (e.g.
	// limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Public channel surface
	users := api.Group("/users")
	users.Get("/:userId", s.GetUserProfile)

	videos := api.Group("/videos")
	videos.Get("/:videoId", s.GetVideo)

	comments := api.Group("/comments")
	comments.Get("/:videoId", s.GetVideoComments)

	tweets := api.Group("/tweets")
	tweets.Get("/user/:userId", s.GetUserTweets)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired(s.verifier))

	// Like toggles, one route per target kind
	likes := protected.Group("/likes")
	likes.Post("/toggle/v/:videoId", s.ToggleVideoLike)
	likes.Post("/toggle/c/:commentId", s.ToggleCommentLike)
	likes.Post("/toggle/t/:tweetId", s.ToggleTweetLike)

	// Subscription toggle and rosters
	subscriptions := protected.Group("/subscriptions")
	subscriptions.Post("/c/:channelId", s.ToggleSubscription)
	subscriptions.Get("/c/:channelId", s.GetChannelSubscribers)
	subscriptions.Get("/u/:subscriberId", s.GetSubscribedChannels)

	// Video publish and management
	protectedVideos := protected.Group("/videos")
	protectedVideos.Post("/", middleware.RateLimit(
		s.redis, 5, 10*time.Minute, "publish_video"), s.PublishVideo)
	protectedVideos.Patch("/toggle/publish/:videoId", s.ToggleVideoPublish)
	protectedVideos.Patch("/:videoId", s.UpdateVideo)
	protectedVideos.Delete("/:videoId", s.DeleteVideo)

	// Comment writes
	protectedComments := protected.Group("/comments")
	protectedComments.Post("/:videoId", middleware.RateLimit(
		s.redis, 15, time.Minute, "create_comment"), s.AddComment)
	protectedComments.Patch("/c/:commentId", s.UpdateComment)
	protectedComments.Delete("/c/:commentId", s.DeleteComment)

	// Tweet writes
	protectedTweets := protected.Group("/tweets")
	protectedTweets.Post("/", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_tweet"), s.CreateTweet)
	protectedTweets.Patch("/:tweetId", s.UpdateTweet)
	protectedTweets.Delete("/:tweetId", s.DeleteTweet)

	// Playlists
	playlists := protected.Group("/playlists")
	playlists.Post("/", s.CreatePlaylist)
	playlists.Get("/user/:userId", s.GetUserPlaylists)
	// Specific routes before the generic /:playlistId
	playlists.Patch("/add/:videoId/:playlistId", s.AddVideoToPlaylist)
	playlists.Patch("/remove/:videoId/:playlistId", s.RemoveVideoFromPlaylist)
	playlists.Get("/:playlistId", s.GetPlaylist)
	playlists.Patch("/:playlistId", s.UpdatePlaylist)
	playlists.Delete("/:playlistId", s.DeletePlaylist)

	// Channel dashboard (owner's own channel)
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/stats", s.GetChannelStats)
	dashboard.Get("/videos", s.GetChannelVideos)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus == "unhealthy" {
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

// Start configures and starts the Fiber server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		BodyLimit:    512 * 1024 * 1024, // video uploads come in through multipart
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	middleware.Logger.Info("Server starting", "port", s.config.Port, "env", s.config.Env)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully stops the server, draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app == nil {
		return nil
	}
	return s.app.ShutdownWithContext(ctx)
}
