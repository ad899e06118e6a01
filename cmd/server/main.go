package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mroshb/edu_admissions/internal/config"
	"github.com/mroshb/edu_admissions/internal/database"
	"github.com/mroshb/edu_admissions/internal/handlers"
	"github.com/mroshb/edu_admissions/internal/metrics"
	"github.com/mroshb/edu_admissions/internal/middleware"
	"github.com/mroshb/edu_admissions/internal/notify"
	"github.com/mroshb/edu_admissions/internal/repositories"
	"github.com/mroshb/edu_admissions/internal/services"
	"github.com/mroshb/edu_admissions/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel, cfg.AppEnv)
	defer logger.Sync()

	logger.Info("Starting admissions API...")

	// Validate production security settings
	if cfg.IsProduction() {
		if err := cfg.ValidateProductionSecurity(); err != nil {
			logger.Fatal("Production security validation failed", err)
		}
		logger.Info("Production security validation passed")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	ctx := context.Background()
	if err := database.SeedAdmin(ctx, db, cfg); err != nil {
		logger.Warn("Failed to seed admin", "error", err)
	}

	store, closeStore := newCounterStore(cfg)
	defer closeStore()

	notifier := newNotifier(cfg)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	universityRepo := repositories.NewUniversityRepository(db)
	specializationRepo := repositories.NewSpecializationRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	adminRepo := repositories.NewAdminRepository(db)

	h := handlers.NewHandlerManager(
		cfg,
		services.NewUniversityService(universityRepo),
		services.NewSpecializationService(specializationRepo, m),
		services.NewApplicationService(applicationRepo, universityRepo, specializationRepo, notifier, m),
		services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.SessionTTL),
		services.NewStatsService(universityRepo, applicationRepo),
		adminRepo,
		middleware.NewRateLimiter(store, cfg.RateLimitMax, cfg.RateLimitWindow),
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           h.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("Server stopped")
}

// newCounterStore uses Redis when REDIS_URL is set, otherwise an in-process store.
func newCounterStore(cfg *config.Config) (middleware.CounterStore, func()) {
	if cfg.RedisURL == "" {
		store := middleware.NewMemoryStore(time.Minute)
		return store, store.Stop
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Fatal("Invalid REDIS_URL", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, rate limiter will fail open until it recovers", "error", err)
	}

	return middleware.NewRedisStore(client), func() { _ = client.Close() }
}

func newNotifier(cfg *config.Config) notify.Notifier {
	var notifiers notify.Multi

	if cfg.BotToken != "" {
		bot, err := notify.NewTelegramBot(cfg.BotToken, cfg.AdminChatID, !cfg.IsProduction())
		if err != nil {
			logger.Warn("Telegram notifications disabled", "error", err)
		} else {
			logger.Info("Telegram notifications enabled", "chat_id", cfg.AdminChatID)
			notifiers = append(notifiers, bot)
		}
	}

	if cfg.SendGridAPIKey != "" {
		sender := notify.NewSendGridSender(cfg.SendGridAPIKey, cfg.NotifyEmailFrom, cfg.NotifyEmailSender)
		notifiers = append(notifiers, notify.NewEmailNotifier(sender, cfg.NotifyEmailTo))
		logger.Info("Email notifications enabled", "to", cfg.NotifyEmailTo)
	}

	if len(notifiers) == 0 {
		return notify.NopNotifier{}
	}
	return notifiers
}
