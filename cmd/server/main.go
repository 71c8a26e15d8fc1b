package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/config"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/database"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/history"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/logging"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/routes"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/services"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/storage"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	ctx := context.Background()

	// Knowledge base
	base := arcana.Default()
	if cfg.ArcanaOverridesPath != "" {
		base, err = arcana.LoadOverrides(cfg.ArcanaOverridesPath)
		if err != nil {
			slog.Error("failed to load arcana overrides", "path", cfg.ArcanaOverridesPath, "error", err)
			os.Exit(1)
		}
		slog.Info("arcana overrides loaded", "path", cfg.ArcanaOverridesPath)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(database.DB); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewJSONHandler(os.Stdout),
		pgLogHandler,
	)))

	// Log cleanup
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cfg.LogRetentionDays, cleanupDone)

	m := metrics.New(prometheus.DefaultRegisterer)

	// History storage: Redis when configured, otherwise the database
	var (
		kv    storage.KV = storage.NewGormKV(database.DB)
		cache handlers.CacheChecker
	)
	redisKV, err := storage.NewRedis(ctx, storage.RedisOptions{
		URL:          cfg.RedisURL,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
		DialTimeout:  cfg.RedisDialTimeout,
		ReadTimeout:  cfg.RedisReadTimeout,
		WriteTimeout: cfg.RedisWriteTimeout,
		KeyPrefix:    cfg.RedisKeyPrefix,
	})
	if err != nil {
		slog.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisKV != nil {
		kv, cache = redisKV, redisKV
		slog.Info("history stored in redis")
	}
	historyStore := history.NewStore(kv, cfg.HistoryMaxRecords)

	// Payment screenshots: GCS when a bucket is configured, otherwise disk
	var screenshots services.ScreenshotStore
	var gcsStore *services.GCSScreenshotStore
	if cfg.GCSBucket != "" {
		gcsStore, err = services.NewGCSScreenshotStore(ctx, cfg.GCSBucket)
		if err != nil {
			slog.Error("gcs client failed", "bucket", cfg.GCSBucket, "error", err)
			os.Exit(1)
		}
		screenshots = gcsStore
	} else {
		screenshots = services.NewDiskScreenshotStore(cfg.ScreenshotDir, cfg.ScreenshotBaseURL)
	}

	// Telegram moderation
	var (
		notifier services.Notifier
		telegram *services.TelegramNotifier
	)
	if cfg.TelegramEnabled() {
		adminURL := strings.TrimRight(cfg.SiteOrigin, "/") + "/admin"
		telegram = services.NewTelegramNotifier(cfg.TelegramAPIURL, cfg.TelegramBotToken, cfg.TelegramChatID, adminURL, cfg.TelegramTimeout)
		notifier = telegram
	}

	// Services
	accessService := services.NewAccessService(database.DB, m)
	deviceService := services.NewDeviceService(database.DB, cfg.MaxDevices)
	authService := services.NewAuthService(cfg, accessService, deviceService)
	paymentService := services.NewPaymentService(database.DB, accessService, notifier, screenshots, m)

	// Handlers
	h := routes.Handlers{
		Health:  handlers.NewHealthHandler(cache, base),
		Legal:   handlers.NewLegalHandler(cfg.SiteOrigin),
		Matrix:  handlers.NewMatrixHandler(base, accessService, historyStore, m, cfg.SiteOrigin),
		Arcana:  handlers.NewArcanaHandler(base, accessService),
		Access:  handlers.NewAccessHandler(accessService, deviceService),
		Auth:    handlers.NewAuthHandler(authService),
		History: handlers.NewHistoryHandler(historyStore),
		Payment: handlers.NewPaymentHandler(paymentService),
		Admin:   handlers.NewAdminHandler(paymentService, accessService),
		Content: handlers.NewContentHandler(),
	}
	if telegram != nil && cfg.TelegramWebhookSecret != "" {
		h.Telegram = handlers.NewTelegramHandler(paymentService, telegram, cfg.TelegramWebhookSecret)
	}

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app; screenshots arrive base64 encoded in the request body
	app := fiber.New(fiber.Config{
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())
	app.Use(m.Middleware())

	if gcsStore == nil {
		app.Static(cfg.ScreenshotBaseURL, cfg.ScreenshotDir)
	}

	// Routes
	routes.Setup(app, cfg, h, prometheus.DefaultGatherer)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "telegram", h.Telegram != nil)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if redisKV != nil {
		if err := redisKV.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}
	if gcsStore != nil {
		if err := gcsStore.Close(); err != nil {
			slog.Error("gcs close error", "error", err)
		}
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
