package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"bloghub/database"
	"bloghub/internal/api/handler"
	"bloghub/internal/api/middleware"
	"bloghub/internal/api/repository"
	"bloghub/internal/api/service"
	"bloghub/internal/config"
	"bloghub/internal/storage"
)

func main() {
	// 1️⃣ Load config
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
	slog.SetDefault(logger)

	// 2️⃣ Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("could not connect to database", "error", err)
		os.Exit(1)
	}

	// 3️⃣ Object storage for blog HTML bodies
	store, err := storage.NewStorage(storage.Config{
		Driver:   cfg.StorageDriver,
		Bucket:   cfg.StorageBucket,
		Region:   cfg.StorageRegion,
		BaseURL:  cfg.StorageURL,
		BasePath: cfg.BlogDataPath,
	})
	if err != nil {
		logger.Error("could not initialize storage", "error", err)
		os.Exit(1)
	}

	// 4️⃣ Redis relay for moderation reports
	notifier := newReportNotifier(cfg, logger)

	// 5️⃣ Repositories
	userRepo := repository.NewUserRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// 6️⃣ Services
	authService := service.NewAuthService(userRepo, cfg)
	userService := service.NewUserService(userRepo)
	blogService := service.NewBlogService(blogRepo, userRepo, notificationRepo, notifier, store)
	commentService := service.NewCommentService(commentRepo, blogRepo, userRepo)
	notificationService := service.NewNotificationService(notificationRepo)

	// 7️⃣ Handlers
	userHandler := handler.NewUserHandler(authService, userService)
	blogHandler := handler.NewBlogHandler(blogService)
	commentHandler := handler.NewCommentHandler(commentService)
	notificationHandler := handler.NewNotificationHandler(notificationService, userService)

	// 8️⃣ Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/check-conn", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"message": "API is alive and database connected ✅"})
	})

	// Uploaded blog HTML is served straight from disk under the local driver
	if cfg.StorageDriver == "local" {
		r.Static("/blogs", cfg.BlogDataPath)
	}

	guard := middleware.SessionGuard(authService)
	loginLimiter := middleware.LoginRateLimiter(cfg.LoginRatePerMin)

	api := r.Group("/api")

	userPublic := api.Group("/user")
	userPrivate := api.Group("/user")
	userPrivate.Use(guard)
	userHandler.RegisterRoutes(userPublic, userPrivate, loginLimiter)

	blogPublic := api.Group("/blog")
	blogPrivate := api.Group("/blog")
	blogPrivate.Use(guard)
	blogHandler.RegisterRoutes(blogPublic, blogPrivate)

	commentPublic := api.Group("/comment")
	commentPrivate := api.Group("/comment")
	commentPrivate.Use(guard)
	commentHandler.RegisterRoutes(commentPublic, commentPrivate)

	notificationPrivate := api.Group("/notification")
	notificationPrivate.Use(guard)
	notificationHandler.RegisterRoutes(notificationPrivate)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("🚀 Server running", "addr", addr)
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
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// newReportNotifier connects to Redis for the report relay. A broken relay
// should not keep the API from serving, so connection errors downgrade to
// the no-op notifier.
func newReportNotifier(cfg *config.Config, logger *slog.Logger) service.ReportNotifier {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid REDIS_URL, report relay disabled", "error", err)
		return service.NoopReportNotifier{}
	}
	client := redis.NewClient(opts)
	return service.NewRedisReportNotifier(client, cfg.ReportChannel)
}
