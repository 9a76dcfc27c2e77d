package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/queue"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/repository"
)

// sweepBatch bounds how many notifications one sweep re-queues.
const sweepBatch = 100

// RetrySweeper periodically re-queues failed notifications that still have
// attempts left.
type RetrySweeper struct {
	repo       repository.NotificationRepository
	queue      queue.Client
	maxRetries int
	schedule   string
	logger     *slog.Logger
}

// NewRetrySweeper creates a sweeper running on a cron schedule such as
// "@every 5m" or "*/10 * * * *".
func NewRetrySweeper(
	repo repository.NotificationRepository,
	q queue.Client,
	maxRetries int,
	schedule string,
	logger *slog.Logger,
) *RetrySweeper {
	return &RetrySweeper{
		repo:       repo,
		queue:      q,
		maxRetries: maxRetries,
		schedule:   schedule,
		logger:     logger,
	}
}

// Sweep re-queues one batch of retryable notifications and returns how many
// were queued. Each is moved back to pending first so the next sweep does
// not queue it twice; one that cannot be published is put back to failed
// and the sweep moves on to the rest of the batch.
func (s *RetrySweeper) Sweep(ctx context.Context) (int, error) {
	retryable, err := s.repo.ListRetryable(ctx, s.maxRetries, sweepBatch)
	if err != nil {
		return 0, err
	}

	queued := 0
	var errs []error
	for _, n := range retryable {
		if err := s.repo.UpdateStatus(ctx, n.ID, models.NotificationStatusPending, n.LastError); err != nil {
			errs = append(errs, fmt.Errorf("failed to mark notification %d pending: %w", n.ID, err))
			continue
		}

		if err := s.queue.Publish(ctx, &models.NotificationJob{NotificationID: n.ID}); err != nil {
			errs = append(errs, fmt.Errorf("failed to re-queue notification %d: %w", n.ID, err))

			reason := err.Error()
			if err := s.repo.UpdateStatus(ctx, n.ID, models.NotificationStatusFailed, &reason); err != nil {
				s.logger.Error("notification left pending after publish failure",
					slog.Int64("notification_id", n.ID),
					slog.String("error", err.Error()),
				)
				errs = append(errs, fmt.Errorf("failed to restore notification %d: %w", n.ID, err))
			}
			continue
		}
		queued++
	}

	return queued, errors.Join(errs...)
}

// Run sweeps on schedule until ctx is cancelled.
func (s *RetrySweeper) Run(ctx context.Context) error {
	c := cron.New()
	_, err := c.AddFunc(s.schedule, func() {
		queued, err := s.Sweep(ctx)
		if err != nil {
			s.logger.Error("retry sweep failed",
				slog.Int("queued", queued),
				slog.String("error", err.Error()),
			)
			return
		}
		if queued > 0 {
			s.logger.Info("retry sweep re-queued notifications", slog.Int("queued", queued))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid retry schedule %q: %w", s.schedule, err)
	}

	c.Start()
	s.logger.Info("retry sweeper started", slog.String("schedule", s.schedule))

	<-ctx.Done()
	<-c.Stop().Done()
	s.logger.Info("retry sweeper stopped")
	return nil
}
