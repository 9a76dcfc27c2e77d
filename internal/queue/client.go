package queue

import (
	"context"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

// Client defines the interface for queue operations
type Client interface {
	// Publish sends a notification job to the queue
	Publish(ctx context.Context, job *models.NotificationJob) error

	// Consume receives jobs and processes them with handler, at most
	// concurrency at a time, until ctx is cancelled.
	Consume(ctx context.Context, handler JobHandler, concurrency int) error

	// Length returns the number of jobs waiting in the queue
	Length(ctx context.Context) (int64, error)

	// Health checks if the queue is healthy
	Health(ctx context.Context) error
}

// JobHandler is a function that processes a notification job
type JobHandler func(ctx context.Context, job *models.NotificationJob) error
