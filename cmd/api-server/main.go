package main

import (
	"fmt"
	"log/slog"
	"os"

	"blogify/database"
	"blogify/internal/config"
	"blogify/internal/http-api/handler"
	"blogify/internal/http-api/middleware"
	"blogify/internal/http-api/repository"
	"blogify/internal/http-api/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	db, err := database.OpenGorm(cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Reaction summaries are served from redis when available; the service
	// degrades to direct queries when the cache is down.
	cache, err := repository.NewReactionCache(cfg.RedisURL, cfg.CacheTTL)
	if err != nil {
		logger.Warn("redis unavailable, running without reaction cache", "error", err)
		cache = nil
	} else {
		defer cache.Close()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	reactionRepo := repository.NewReactionRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	postService := service.NewPostService(postRepo)
	commentService := service.NewCommentService(commentRepo, postRepo)
	reactionService := service.NewReactionService(reactionRepo, postRepo, cache, logger)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)
	reactionHandler := handler.NewReactionHandler(reactionService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")

	authHandler.RegisterRoutes(api)

	postsPublic := api.Group("/posts")
	postsAuthed := api.Group("/posts")
	postsAuthed.Use(middleware.AuthMiddleware(authService))
	postsAuthed.Use(middleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))

	comments := api.Group("/comments")
	comments.Use(middleware.AuthMiddleware(authService))

	postHandler.RegisterRoutes(postsPublic, postsAuthed)
	reactionHandler.RegisterRoutes(postsPublic, postsAuthed)
	commentHandler.RegisterRoutes(postsPublic, postsAuthed, comments)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
