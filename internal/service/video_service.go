package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/cache"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/repository"
)

// VideoService handles video business logic
type VideoService interface {
	ListPublished(ctx context.Context, params listquery.Params) (*models.ListResult[*models.Video], error)
	List(ctx context.Context, params listquery.Params) (*models.ListResult[*models.Video], error)
	GetByID(ctx context.Context, id int64) (*models.Video, error)
	Create(ctx context.Context, req *VideoRequest) (*models.Video, error)
	Update(ctx context.Context, id int64, req *VideoRequest) (*models.Video, error)
	Delete(ctx context.Context, id int64) error
}

type videoService struct {
	repo         repository.VideoRepository
	propertyRepo repository.PropertyRepository
	cache        cache.ListCache
	logger       *slog.Logger
}

// NewVideoService creates a new video service
func NewVideoService(
	repo repository.VideoRepository,
	propertyRepo repository.PropertyRepository,
	c cache.ListCache,
	logger *slog.Logger,
) VideoService {
	return &videoService{repo: repo, propertyRepo: propertyRepo, cache: c, logger: logger}
}

func (s *videoService) ListPublished(ctx context.Context, params listquery.Params) (*models.ListResult[*models.Video], error) {
	d := listquery.Build(params, models.VideoResource).With("published", true)
	return cachedListResult(ctx, s.cache, s.logger, d, s.repo.List)
}

func (s *videoService) List(ctx context.Context, params listquery.Params) (*models.ListResult[*models.Video], error) {
	return listResult(ctx, listquery.Build(params, models.VideoResource), s.repo.List)
}

func (s *videoService) GetByID(ctx context.Context, id int64) (*models.Video, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *videoService) Create(ctx context.Context, req *VideoRequest) (*models.Video, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	v := &models.Video{}
	applyVideoRequest(v, req)

	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Error("failed to create video",
			slog.String("error", err.Error()),
			slog.String("title", req.Title),
		)
		return nil, err
	}

	s.logger.Info("video created", slog.Int64("video_id", v.ID))
	invalidate(ctx, s.cache, s.logger, models.VideoResource.Name)

	return v, nil
}

func (s *videoService) Update(ctx context.Context, id int64, req *VideoRequest) (*models.Video, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyVideoRequest(v, req)
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}

	s.logger.Info("video updated", slog.Int64("video_id", v.ID))
	invalidate(ctx, s.cache, s.logger, models.VideoResource.Name)

	return v, nil
}

func (s *videoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("video deleted", slog.Int64("video_id", id))
	invalidate(ctx, s.cache, s.logger, models.VideoResource.Name)
	return nil
}

// validate checks the request tags and that the linked property exists.
func (s *videoService) validate(ctx context.Context, req *VideoRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	if req.PropertyID == nil {
		return nil
	}

	_, err := s.propertyRepo.GetByID(ctx, *req.PropertyID)
	if errors.Is(err, models.ErrNotFound) {
		return models.ErrInvalidFields(map[string]string{"property_id": "does not exist"})
	}
	return err
}

func applyVideoRequest(v *models.Video, req *VideoRequest) {
	v.Title = req.Title
	v.Description = req.Description
	v.VideoURL = req.VideoURL
	v.ThumbnailURL = req.ThumbnailURL
	v.PropertyID = req.PropertyID
	v.Published = req.Published
}
