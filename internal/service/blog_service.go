package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/cache"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/repository"
)

// BlogService handles blog business logic
type BlogService interface {
	ListPublished(ctx context.Context, params listquery.Params) (*models.ListResult[*models.BlogPost], error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error)

	List(ctx context.Context, params listquery.Params) (*models.ListResult[*models.BlogPost], error)
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	Create(ctx context.Context, req *BlogRequest) (*models.BlogPost, error)
	Update(ctx context.Context, id int64, req *BlogRequest) (*models.BlogPost, error)
	Delete(ctx context.Context, id int64) error
}

type blogService struct {
	repo   repository.BlogRepository
	cache  cache.ListCache
	logger *slog.Logger
	now    func() time.Time
}

// NewBlogService creates a new blog service
func NewBlogService(repo repository.BlogRepository, c cache.ListCache, logger *slog.Logger) BlogService {
	return &blogService{repo: repo, cache: c, logger: logger, now: time.Now}
}

func (s *blogService) ListPublished(ctx context.Context, params listquery.Params) (*models.ListResult[*models.BlogPost], error) {
	d := listquery.Build(params, models.BlogResource).With("published", true)
	return cachedListResult(ctx, s.cache, s.logger, d, s.repo.List)
}

func (s *blogService) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !post.Published {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("blog post %q not found", slug))
	}
	return post, nil
}

func (s *blogService) List(ctx context.Context, params listquery.Params) (*models.ListResult[*models.BlogPost], error) {
	return listResult(ctx, listquery.Build(params, models.BlogResource), s.repo.List)
}

func (s *blogService) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *blogService) Create(ctx context.Context, req *BlogRequest) (*models.BlogPost, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	post := &models.BlogPost{}
	s.apply(post, req)

	err := createWithSlug(ctx, req.Slug, req.Title, "post", func(ctx context.Context, slug string) error {
		post.Slug = slug
		return s.repo.Create(ctx, post)
	})
	if err != nil {
		s.logger.Error("failed to create blog post",
			slog.String("error", err.Error()),
			slog.String("title", req.Title),
		)
		return nil, err
	}

	s.logger.Info("blog post created",
		slog.Int64("post_id", post.ID),
		slog.String("slug", post.Slug),
	)
	invalidate(ctx, s.cache, s.logger, models.BlogResource.Name)

	return post, nil
}

func (s *blogService) Update(ctx context.Context, id int64, req *BlogRequest) (*models.BlogPost, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.apply(post, req)
	if req.Slug != "" {
		slug := Slugify(req.Slug)
		if slug == "" {
			return nil, models.ErrInvalidFields(map[string]string{"slug": "must contain letters or digits"})
		}
		post.Slug = slug
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("blog post updated", slog.Int64("post_id", post.ID))
	invalidate(ctx, s.cache, s.logger, models.BlogResource.Name)

	return post, nil
}

func (s *blogService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("blog post deleted", slog.Int64("post_id", id))
	invalidate(ctx, s.cache, s.logger, models.BlogResource.Name)
	return nil
}

// apply copies request fields onto post. Unpublishing keeps PublishedAt so
// a later republish shows the original date.
func (s *blogService) apply(post *models.BlogPost, req *BlogRequest) {
	post.Title = req.Title
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.Author = req.Author
	post.Category = req.Category
	post.CoverImage = req.CoverImage
	post.Tags = req.Tags

	if req.Published {
		post.Publish(s.now().UTC())
	} else {
		post.Published = false
	}
}
