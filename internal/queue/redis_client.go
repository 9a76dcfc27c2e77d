package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

// maxConcurrency bounds parallel SMTP sessions per worker process.
const maxConcurrency = 10

// Connect opens a Redis connection from a redis:// URL and verifies it.
// The same connection backs the queue and the list cache.
func Connect(ctx context.Context, url string, logger *slog.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis", slog.String("addr", opts.Addr))
	return client, nil
}

// redisClient implements Client on a Redis list (LPUSH / BRPOP)
type redisClient struct {
	client    redis.Cmdable
	queueName string
	logger    *slog.Logger
}

// NewRedisClient creates a queue client on an open Redis connection
func NewRedisClient(client redis.Cmdable, queueName string, logger *slog.Logger) Client {
	return &redisClient{
		client:    client,
		queueName: queueName,
		logger:    logger,
	}
}

// Publish sends a notification job to the queue
func (c *redisClient) Publish(ctx context.Context, job *models.NotificationJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if err := c.client.LPush(ctx, c.queueName, data).Err(); err != nil {
		return fmt.Errorf("failed to push job to queue: %w", err)
	}

	c.logger.Debug("job published to queue",
		slog.Int64("notification_id", job.NotificationID),
	)

	return nil
}

// Consume pops jobs until ctx is cancelled, then waits for in-flight jobs.
func (c *redisClient) Consume(ctx context.Context, handler JobHandler, concurrency int) error {
	concurrency = min(max(concurrency, 1), maxConcurrency)

	c.logger.Info("starting queue consumer",
		slog.String("queue", c.queueName),
		slog.Int("concurrency", concurrency),
	)

	semaphore := make(chan struct{}, concurrency)
	var inFlight sync.WaitGroup
	defer func() {
		inFlight.Wait()
		c.logger.Info("all in-flight jobs completed")
	}()

	for {
		if ctx.Err() != nil {
			c.logger.Info("consumer stopped by context, waiting for in-flight jobs")
			return ctx.Err()
		}

		result, err := c.client.BRPop(ctx, time.Second, c.queueName).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			c.logger.Error("failed to pop from queue", slog.String("error", err.Error()))
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
			}
			continue
		}

		// BRPOP returns [queueName, value]
		if len(result) < 2 {
			c.logger.Error("unexpected BRPOP result format")
			continue
		}

		var job models.NotificationJob
		if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
			c.logger.Error("failed to unmarshal job",
				slog.String("error", err.Error()),
				slog.String("data", result[1]),
			)
			continue
		}

		semaphore <- struct{}{}
		inFlight.Add(1)

		go func(job models.NotificationJob) {
			defer func() {
				<-semaphore
				inFlight.Done()
			}()

			// Jobs already popped finish even during shutdown.
			if err := handler(context.WithoutCancel(ctx), &job); err != nil {
				c.logger.Error("handler failed to process job",
					slog.Int64("notification_id", job.NotificationID),
					slog.String("error", err.Error()),
				)
			}
		}(job)
	}
}

// Length returns the number of jobs in the queue
func (c *redisClient) Length(ctx context.Context) (int64, error) {
	length, err := c.client.LLen(ctx, c.queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get queue length: %w", err)
	}
	return length, nil
}

// Health checks if Redis is healthy
func (c *redisClient) Health(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
