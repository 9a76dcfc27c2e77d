package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/cache"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/config"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/db"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/handler"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/logging"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/queue"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/repository"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger, logCloser := logging.New(cfg.Log, "api")
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("starting estate portal API server")

	ctx := context.Background()

	// Connect to database
	database, err := db.New(ctx, cfg.Database.DSN(), db.DefaultPool)
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	logger.Info("connected to database")

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, logger); err != nil {
			logger.Error("failed to migrate database", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Connect to Redis (queue and list cache)
	redisClient, err := queue.Connect(ctx, cfg.Queue.RedisURL, logger)
	if err != nil {
		logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	queueClient := queue.NewRedisClient(redisClient, cfg.Queue.QueueName, logger)

	var listCache cache.ListCache = cache.Noop{}
	if cfg.Cache.Enabled {
		listCache = cache.NewRedisCache(redisClient, cfg.Cache.TTL, logger)
	}

	// Initialize repositories
	propertyRepo := repository.NewPropertyRepository(database.DB)
	videoRepo := repository.NewVideoRepository(database.DB)
	blogRepo := repository.NewBlogRepository(database.DB)
	enquiryRepo := repository.NewEnquiryRepository(database.DB)
	registrationRepo := repository.NewRegistrationRepository(database.DB)
	notificationRepo := repository.NewNotificationRepository(database.DB)

	// Initialize services
	if cfg.Mail.SalesTeam == "" {
		logger.Warn("SALES_TEAM_EMAIL not set, lead notifications are disabled")
	}
	notifier := service.NewLeadNotifier(notificationRepo, queueClient, cfg.Mail.SalesTeam, logger)

	propertySvc := service.NewPropertyService(propertyRepo, listCache, logger)
	videoSvc := service.NewVideoService(videoRepo, propertyRepo, listCache, logger)
	blogSvc := service.NewBlogService(blogRepo, listCache, logger)
	enquirySvc := service.NewEnquiryService(enquiryRepo, propertyRepo, notifier, logger)
	registrationSvc := service.NewRegistrationService(registrationRepo, notifier, logger)
	emiSvc := service.NewEMIService()

	// Setup router
	router := handler.NewRouter(handler.Handlers{
		Health: handler.NewHealthHandler(map[string]handler.Checker{
			"database": database,
			"queue":    queueClient,
		}, logger),
		Property: handler.NewPropertyHandler(propertySvc, logger),
		Video:    handler.NewVideoHandler(videoSvc, logger),
		Blog:     handler.NewBlogHandler(blogSvc, logger),
		Lead:     handler.NewLeadHandler(enquirySvc, registrationSvc, logger),
		EMI:      handler.NewEMIHandler(emiSvc, logger),
	}, cfg.API.AllowedOrigins, logger)

	// Create server
	addr := fmt.Sprintf(":%d", cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("API server listening", slog.String("addr", addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for interrupt signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}

	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}

		logger.Info("server stopped gracefully")
	}
}
