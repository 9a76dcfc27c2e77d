package models

import "time"

// Notification status constants
const (
	NotificationStatusPending = "pending"
	NotificationStatusSent    = "sent"
	NotificationStatusFailed  = "failed"
)

// Lead type constants identify what a notification is about.
const (
	LeadTypeEnquiry      = "enquiry"
	LeadTypeRegistration = "registration"
)

// Notification is an e-mail telling the sales team about a new lead.
type Notification struct {
	ID         int64     `json:"id"`
	LeadType   string    `json:"lead_type"`
	LeadID     int64     `json:"lead_id"`
	Recipient  string    `json:"recipient"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Status     string    `json:"status"`
	LastError  *string   `json:"last_error,omitempty"`
	RetryCount int       `json:"retry_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NotificationJob represents a job to be queued for processing
type NotificationJob struct {
	NotificationID int64 `json:"notification_id"`
}

// IsDone reports whether the notification needs no further work.
func (n *Notification) IsDone() bool {
	return n.Status == NotificationStatusSent
}

// CanRetry checks if a notification can be retried
func (n *Notification) CanRetry(maxRetries int) bool {
	return n.Status == NotificationStatusFailed && n.RetryCount < maxRetries
}
