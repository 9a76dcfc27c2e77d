package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/cache"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/metrics"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

type listFunc[T any] func(ctx context.Context, d listquery.Descriptor) ([]T, int64, error)

// listResult runs one page query and wraps it with pagination metadata.
func listResult[T any](ctx context.Context, d listquery.Descriptor, list listFunc[T]) (*models.ListResult[T], error) {
	items, total, err := list(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", d.Resource, err)
	}

	result := models.NewListResult(items, d, total)
	return &result, nil
}

// cachedListResult serves public list pages through the list cache. Cache
// failures degrade to a direct query and are never returned.
func cachedListResult[T any](
	ctx context.Context,
	c cache.ListCache,
	logger *slog.Logger,
	d listquery.Descriptor,
	list listFunc[T],
) (*models.ListResult[T], error) {
	key := d.Key()

	var cached models.ListResult[T]
	hit, version, err := c.Get(ctx, d.Resource, key, &cached)
	cacheable := err == nil
	switch {
	case err != nil:
		metrics.ListCacheLookups.WithLabelValues(d.Resource, "error").Inc()
		logger.Warn("list cache read failed",
			slog.String("resource", d.Resource),
			slog.String("error", err.Error()),
		)
	case hit:
		metrics.ListCacheLookups.WithLabelValues(d.Resource, "hit").Inc()
		return &cached, nil
	default:
		metrics.ListCacheLookups.WithLabelValues(d.Resource, "miss").Inc()
	}

	result, err := listResult(ctx, d, list)
	if err != nil {
		return nil, err
	}

	if !cacheable {
		return result, nil
	}
	if err := c.Set(ctx, d.Resource, version, key, result); err != nil {
		logger.Warn("list cache write failed",
			slog.String("resource", d.Resource),
			slog.String("error", err.Error()),
		)
	}

	return result, nil
}

// invalidate drops cached public pages of resource after a write.
func invalidate(ctx context.Context, c cache.ListCache, logger *slog.Logger, resource string) {
	if err := c.Invalidate(ctx, resource); err != nil {
		logger.Warn("list cache invalidation failed",
			slog.String("resource", resource),
			slog.String("error", err.Error()),
		)
	}
}
