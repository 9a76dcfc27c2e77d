package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/config"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/db"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/logging"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/queue"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/repository"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger, logCloser := logging.New(cfg.Log, "worker")
	defer logCloser.Close()
	slog.SetDefault(logger)

	logger.Info("starting lead notification worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	database, err := db.New(ctx, cfg.Database.DSN(), db.PoolConfig{
		MaxOpenConns:    cfg.Worker.Concurrency + 2,
		MaxIdleConns:    cfg.Worker.Concurrency,
		ConnMaxLifetime: db.DefaultPool.ConnMaxLifetime,
	})
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	logger.Info("connected to database")

	// Connect to Redis queue
	redisClient, err := queue.Connect(ctx, cfg.Queue.RedisURL, logger)
	if err != nil {
		logger.Error("failed to connect to Redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer redisClient.Close()

	queueClient := queue.NewRedisClient(redisClient, cfg.Queue.QueueName, logger)

	notificationRepo := repository.NewNotificationRepository(database.DB)

	// Without an SMTP host mails are only logged.
	var sender worker.MailSender
	if cfg.Mail.Host != "" {
		sender = worker.NewSMTPSender(worker.SMTPConfig{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			User:     cfg.Mail.User,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
		})
	} else {
		logger.Warn("SMTP_HOST not set, notifications will be logged instead of mailed")
		sender = worker.NewLogSender(logger)
	}

	processor := worker.NewNotificationProcessor(notificationRepo, sender, cfg.Worker.MaxRetryCount, logger)
	sweeper := worker.NewRetrySweeper(notificationRepo, queueClient, cfg.Worker.MaxRetryCount, cfg.Worker.RetrySchedule, logger)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting notification consumer",
			slog.Int("concurrency", cfg.Worker.Concurrency),
			slog.Int("max_retry_count", cfg.Worker.MaxRetryCount),
		)
		return queueClient.Consume(ctx, processor.Process, cfg.Worker.Concurrency)
	})

	g.Go(func() error {
		logger.Info("starting retry sweeper", slog.String("schedule", cfg.Worker.RetrySchedule))
		return sweeper.Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("worker stopped gracefully")
}
