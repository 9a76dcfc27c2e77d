package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/queue"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/repository"
)

// LeadNotifier tells the sales team about new leads. Notification failures
// never fail the submission that triggered them.
type LeadNotifier interface {
	Notify(ctx context.Context, leadType string, leadID int64, subject, body string)
}

type leadNotifier struct {
	repo      repository.NotificationRepository
	queue     queue.Client
	recipient string
	logger    *slog.Logger
}

// NewLeadNotifier creates a notifier mailing recipient. With an empty
// recipient notifications are skipped.
func NewLeadNotifier(
	repo repository.NotificationRepository,
	q queue.Client,
	recipient string,
	logger *slog.Logger,
) LeadNotifier {
	return &leadNotifier{repo: repo, queue: q, recipient: recipient, logger: logger}
}

func (n *leadNotifier) Notify(ctx context.Context, leadType string, leadID int64, subject, body string) {
	if n.recipient == "" {
		n.logger.Debug("no sales recipient configured, skipping notification",
			slog.String("lead_type", leadType),
			slog.Int64("lead_id", leadID),
		)
		return
	}

	notification := &models.Notification{
		LeadType:  leadType,
		LeadID:    leadID,
		Recipient: n.recipient,
		Subject:   subject,
		Body:      body,
		Status:    models.NotificationStatusPending,
	}
	if err := n.repo.Create(ctx, notification); err != nil {
		n.logger.Error("failed to create notification",
			slog.String("error", err.Error()),
			slog.String("lead_type", leadType),
			slog.Int64("lead_id", leadID),
		)
		return
	}

	job := &models.NotificationJob{NotificationID: notification.ID}
	if err := n.queue.Publish(ctx, job); err != nil {
		n.logger.Error("failed to queue notification",
			slog.String("error", err.Error()),
			slog.Int64("notification_id", notification.ID),
		)
		// Failed notifications are picked up by the retry sweep.
		msg := "queue publish failed: " + err.Error()
		if err := n.repo.UpdateStatus(ctx, notification.ID, models.NotificationStatusFailed, &msg); err != nil {
			n.logger.Error("failed to mark notification failed",
				slog.String("error", err.Error()),
				slog.Int64("notification_id", notification.ID),
			)
		}
		return
	}

	n.logger.Info("notification queued",
		slog.Int64("notification_id", notification.ID),
		slog.String("lead_type", leadType),
	)
}

// leadBody renders the plain-text mail body as "Label: value" lines,
// skipping empty values.
func leadBody(title string, fields [][2]string) string {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString("\n\n")
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n", f[0], f[1])
	}
	return b.String()
}
