package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id int64) (*models.Notification, error)
	UpdateStatus(ctx context.Context, id int64, status string, lastError *string) error
	IncrementRetryCount(ctx context.Context, id int64) error
	// ListRetryable returns failed notifications that have not yet used up
	// maxRetries, oldest first.
	ListRetryable(ctx context.Context, maxRetries, limit int) ([]*models.Notification, error)
}

const notificationColumns = `id, lead_type, lead_id, recipient, subject, body, status, last_error, retry_count, created_at, updated_at`

// notificationRepository implements NotificationRepository using PostgreSQL
type notificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func scanNotification(row rowScanner) (*models.Notification, error) {
	n := &models.Notification{}
	err := row.Scan(
		&n.ID,
		&n.LeadType,
		&n.LeadID,
		&n.Recipient,
		&n.Subject,
		&n.Body,
		&n.Status,
		&n.LastError,
		&n.RetryCount,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	return n, err
}

// Create inserts a new notification
func (r *notificationRepository) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (lead_type, lead_id, recipient, subject, body, status, retry_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		n.LeadType,
		n.LeadID,
		n.Recipient,
		n.Subject,
		n.Body,
		n.Status,
		n.RetryCount,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// GetByID retrieves a notification by ID
func (r *notificationRepository) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	n, err := scanNotification(r.db.QueryRowContext(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("notification with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return n, nil
}

// UpdateStatus updates the status and error message of a notification
func (r *notificationRepository) UpdateStatus(ctx context.Context, id int64, status string, lastError *string) error {
	query := `
		UPDATE notifications
		SET status = $1, last_error = $2
		WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, lastError, id)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}

	return checkAffected(result, models.ErrNotFoundWithMsg(fmt.Sprintf("notification with ID %d not found", id)))
}

// IncrementRetryCount increments the retry count for a notification
func (r *notificationRepository) IncrementRetryCount(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET retry_count = retry_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment retry count: %w", err)
	}

	return checkAffected(result, models.ErrNotFoundWithMsg(fmt.Sprintf("notification with ID %d not found", id)))
}

// ListRetryable retrieves failed notifications eligible for another attempt
func (r *notificationRepository) ListRetryable(ctx context.Context, maxRetries, limit int) ([]*models.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE status = $1 AND retry_count < $2
		ORDER BY updated_at ASC
		LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, models.NotificationStatusFailed, maxRetries, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get retryable notifications: %w", err)
	}
	defer rows.Close()

	notifications := []*models.Notification{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}
