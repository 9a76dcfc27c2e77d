package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/cache"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/money"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/repository"
)

// PropertyService handles property business logic
type PropertyService interface {
	// ListPublished lists published properties for the public site
	ListPublished(ctx context.Context, params listquery.Params) (*models.ListResult[*models.Property], error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Property, error)

	List(ctx context.Context, params listquery.Params) (*models.ListResult[*models.Property], error)
	GetByID(ctx context.Context, id int64) (*models.Property, error)
	Create(ctx context.Context, req *PropertyRequest) (*models.Property, error)
	Update(ctx context.Context, id int64, req *PropertyRequest) (*models.Property, error)
	Delete(ctx context.Context, id int64) error
}

type propertyService struct {
	repo   repository.PropertyRepository
	cache  cache.ListCache
	logger *slog.Logger
}

// NewPropertyService creates a new property service
func NewPropertyService(repo repository.PropertyRepository, c cache.ListCache, logger *slog.Logger) PropertyService {
	return &propertyService{repo: repo, cache: c, logger: logger}
}

func (s *propertyService) list(ctx context.Context, d listquery.Descriptor) ([]*models.Property, int64, error) {
	items, total, err := s.repo.List(ctx, d)
	for _, p := range items {
		labelPrice(p)
	}
	return items, total, err
}

func (s *propertyService) ListPublished(ctx context.Context, params listquery.Params) (*models.ListResult[*models.Property], error) {
	d := listquery.Build(params, models.PropertyResource).With("published", true)
	return cachedListResult(ctx, s.cache, s.logger, d, s.list)
}

func (s *propertyService) GetPublishedBySlug(ctx context.Context, slug string) (*models.Property, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("property %q not found", slug))
	}
	return labelPrice(p), nil
}

func (s *propertyService) List(ctx context.Context, params listquery.Params) (*models.ListResult[*models.Property], error) {
	return listResult(ctx, listquery.Build(params, models.PropertyResource), s.list)
}

func (s *propertyService) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return labelPrice(p), nil
}

// Create creates a new property with a slug derived from its name
func (s *propertyService) Create(ctx context.Context, req *PropertyRequest) (*models.Property, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	p := &models.Property{}
	applyPropertyRequest(p, req)

	err := createWithSlug(ctx, req.Slug, req.Name, "property", func(ctx context.Context, slug string) error {
		p.Slug = slug
		return s.repo.Create(ctx, p)
	})
	if err != nil {
		s.logger.Error("failed to create property",
			slog.String("error", err.Error()),
			slog.String("name", req.Name),
		)
		return nil, err
	}

	s.logger.Info("property created",
		slog.Int64("property_id", p.ID),
		slog.String("slug", p.Slug),
		slog.Bool("published", p.Published),
	)
	invalidate(ctx, s.cache, s.logger, models.PropertyResource.Name)

	return labelPrice(p), nil
}

// Update replaces a property. The slug only changes when one is supplied,
// so published URLs stay stable across renames.
func (s *propertyService) Update(ctx context.Context, id int64, req *PropertyRequest) (*models.Property, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyPropertyRequest(p, req)
	if req.Slug != "" {
		slug := Slugify(req.Slug)
		if slug == "" {
			return nil, models.ErrInvalidFields(map[string]string{"slug": "must contain letters or digits"})
		}
		p.Slug = slug
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("property updated", slog.Int64("property_id", p.ID))
	invalidate(ctx, s.cache, s.logger, models.PropertyResource.Name)

	return labelPrice(p), nil
}

func (s *propertyService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("property deleted", slog.Int64("property_id", id))
	invalidate(ctx, s.cache, s.logger, models.PropertyResource.Name)
	// Videos lose their property link on delete.
	invalidate(ctx, s.cache, s.logger, models.VideoResource.Name)
	return nil
}

func applyPropertyRequest(p *models.Property, req *PropertyRequest) {
	p.Name = req.Name
	p.Builder = req.Builder
	p.Location = req.Location
	p.Type = req.Type
	p.Status = req.Status
	p.Configuration = req.Configuration
	p.AreaSqft = req.AreaSqft
	p.Price = money.Round(req.Price, 2)
	p.Description = req.Description
	p.Amenities = req.Amenities
	p.Images = req.Images
	p.Featured = req.Featured
	p.Published = req.Published
}

func labelPrice(p *models.Property) *models.Property {
	if p.Price > 0 {
		p.PriceLabel = money.FormatINR(p.Price)
	} else {
		p.PriceLabel = "Price on request"
	}
	return p
}
