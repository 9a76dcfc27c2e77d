package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/db"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

// PropertyRepository defines the interface for property data access
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id int64) (*models.Property, error)
	GetBySlug(ctx context.Context, slug string) (*models.Property, error)
	List(ctx context.Context, d listquery.Descriptor) ([]*models.Property, int64, error)
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id int64) error
}

const propertyColumns = `id, slug, name, builder, location, type, status, configuration, area_sqft,
	price, description, amenities, images, featured, published, created_at, updated_at`

// propertyRepository implements PropertyRepository using PostgreSQL
type propertyRepository struct {
	db *sql.DB
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db *sql.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func scanProperty(row rowScanner) (*models.Property, error) {
	p := &models.Property{}
	err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Name,
		&p.Builder,
		&p.Location,
		&p.Type,
		&p.Status,
		&p.Configuration,
		&p.AreaSqft,
		&p.Price,
		&p.Description,
		&p.Amenities,
		&p.Images,
		&p.Featured,
		&p.Published,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

// Create inserts a new property
func (r *propertyRepository) Create(ctx context.Context, p *models.Property) error {
	query := `
		INSERT INTO properties (slug, name, builder, location, type, status, configuration, area_sqft,
			price, description, amenities, images, featured, published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		p.Slug,
		p.Name,
		p.Builder,
		p.Location,
		p.Type,
		p.Status,
		p.Configuration,
		p.AreaSqft,
		p.Price,
		p.Description,
		textArray(p.Amenities),
		textArray(p.Images),
		p.Featured,
		p.Published,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if db.IsUniqueViolation(err, "properties_slug_key") {
		return models.ErrAlreadyExistsWithMsg(fmt.Sprintf("property slug %q is taken", p.Slug))
	}
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	return nil
}

// GetByID retrieves a property by ID
func (r *propertyRepository) GetByID(ctx context.Context, id int64) (*models.Property, error) {
	p, err := scanProperty(r.db.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("property with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return p, nil
}

// GetBySlug retrieves a property by its URL slug
func (r *propertyRepository) GetBySlug(ctx context.Context, slug string) (*models.Property, error) {
	p, err := scanProperty(r.db.QueryRowContext(ctx, `SELECT `+propertyColumns+` FROM properties WHERE slug = $1`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("property %q not found", slug))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return p, nil
}

// List retrieves properties matching the descriptor
func (r *propertyRepository) List(ctx context.Context, d listquery.Descriptor) ([]*models.Property, int64, error) {
	return listPage(ctx, r.db, "properties", propertyColumns, d, scanProperty)
}

// Update updates an existing property
func (r *propertyRepository) Update(ctx context.Context, p *models.Property) error {
	query := `
		UPDATE properties
		SET slug = $1, name = $2, builder = $3, location = $4, type = $5, status = $6,
			configuration = $7, area_sqft = $8, price = $9, description = $10,
			amenities = $11, images = $12, featured = $13, published = $14
		WHERE id = $15
		RETURNING updated_at`

	err := r.db.QueryRowContext(
		ctx,
		query,
		p.Slug,
		p.Name,
		p.Builder,
		p.Location,
		p.Type,
		p.Status,
		p.Configuration,
		p.AreaSqft,
		p.Price,
		p.Description,
		textArray(p.Amenities),
		textArray(p.Images),
		p.Featured,
		p.Published,
		p.ID,
	).Scan(&p.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("property with ID %d not found", p.ID))
	}
	if db.IsUniqueViolation(err, "properties_slug_key") {
		return models.ErrAlreadyExistsWithMsg(fmt.Sprintf("property slug %q is taken", p.Slug))
	}
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	return nil
}

// Delete removes a property
func (r *propertyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return checkAffected(result, models.ErrNotFoundWithMsg(fmt.Sprintf("property with ID %d not found", id)))
}
