package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/metrics"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/repository"
)

// NotificationProcessor processes notification jobs from the queue
type NotificationProcessor struct {
	repo       repository.NotificationRepository
	sender     MailSender
	maxRetries int
	logger     *slog.Logger
}

// NewNotificationProcessor creates a new notification processor
func NewNotificationProcessor(
	repo repository.NotificationRepository,
	sender MailSender,
	maxRetries int,
	logger *slog.Logger,
) *NotificationProcessor {
	return &NotificationProcessor{
		repo:       repo,
		sender:     sender,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// Process handles a single notification job
func (p *NotificationProcessor) Process(ctx context.Context, job *models.NotificationJob) error {
	n, err := p.repo.GetByID(ctx, job.NotificationID)
	if err != nil {
		p.logger.Error("failed to fetch notification",
			slog.Int64("notification_id", job.NotificationID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to fetch notification: %w", err)
	}

	// A job can be delivered twice when the sweep re-queues it; sent
	// notifications are never mailed again.
	if n.IsDone() {
		p.logger.Info("notification already sent, skipping",
			slog.Int64("notification_id", n.ID),
		)
		return nil
	}

	if n.RetryCount >= p.maxRetries {
		p.logger.Warn("notification exhausted its retries, skipping",
			slog.Int64("notification_id", n.ID),
			slog.Int("retry_count", n.RetryCount),
		)
		return nil
	}

	p.logger.Info("processing notification",
		slog.Int64("notification_id", n.ID),
		slog.String("lead_type", n.LeadType),
		slog.Int64("lead_id", n.LeadID),
	)

	err = p.sender.Send(ctx, Mail{To: n.Recipient, Subject: n.Subject, Body: n.Body})
	if err != nil {
		p.logger.Warn("notification send failed",
			slog.Int64("notification_id", n.ID),
			slog.Int("retry_count", n.RetryCount),
			slog.String("error", err.Error()),
		)
		return p.handleFailure(ctx, n, err)
	}

	return p.handleSuccess(ctx, n)
}

func (p *NotificationProcessor) handleSuccess(ctx context.Context, n *models.Notification) error {
	if err := p.repo.UpdateStatus(ctx, n.ID, models.NotificationStatusSent, nil); err != nil {
		p.logger.Error("failed to mark notification sent",
			slog.Int64("notification_id", n.ID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	metrics.NotificationsProcessed.WithLabelValues("sent").Inc()
	p.logger.Info("notification sent",
		slog.Int64("notification_id", n.ID),
		slog.String("recipient", n.Recipient),
	)
	return nil
}

// handleFailure records the attempt. The notification stays failed; the
// retry sweep picks it up again while attempts remain.
func (p *NotificationProcessor) handleFailure(ctx context.Context, n *models.Notification, sendErr error) error {
	if err := p.repo.IncrementRetryCount(ctx, n.ID); err != nil {
		p.logger.Error("failed to increment retry count",
			slog.Int64("notification_id", n.ID),
			slog.String("error", err.Error()),
		)
		return err
	}

	attempts := n.RetryCount + 1
	errMsg := sendErr.Error()

	if attempts >= p.maxRetries {
		p.logger.Error("notification permanently failed after max retries",
			slog.Int64("notification_id", n.ID),
			slog.Int("retry_count", attempts),
			slog.Int("max_retries", p.maxRetries),
		)
		errMsg = "max retries exceeded: " + errMsg
		if err := p.repo.UpdateStatus(ctx, n.ID, models.NotificationStatusFailed, &errMsg); err != nil {
			return err
		}
		metrics.NotificationsProcessed.WithLabelValues("failed").Inc()
		return nil
	}

	if err := p.repo.UpdateStatus(ctx, n.ID, models.NotificationStatusFailed, &errMsg); err != nil {
		p.logger.Error("failed to update notification status",
			slog.Int64("notification_id", n.ID),
			slog.String("error", err.Error()),
		)
		return err
	}

	metrics.NotificationsProcessed.WithLabelValues("retry").Inc()
	return fmt.Errorf("send failed, retry %d/%d: %w", attempts, p.maxRetries, sendErr)
}
