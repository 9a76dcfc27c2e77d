package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

// EnquiryRepository defines the interface for enquiry data access
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *models.Enquiry) error
	GetByID(ctx context.Context, id int64) (*models.Enquiry, error)
	List(ctx context.Context, d listquery.Descriptor) ([]*models.Enquiry, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

const enquiryColumns = `id, reference, kind, name, email, phone, message, property_id, source, status, created_at, updated_at`

type enquiryRepository struct {
	db *sql.DB
}

// NewEnquiryRepository creates a new enquiry repository
func NewEnquiryRepository(db *sql.DB) EnquiryRepository {
	return &enquiryRepository{db: db}
}

func scanEnquiry(row rowScanner) (*models.Enquiry, error) {
	e := &models.Enquiry{}
	err := row.Scan(
		&e.ID,
		&e.Reference,
		&e.Kind,
		&e.Name,
		&e.Email,
		&e.Phone,
		&e.Message,
		&e.PropertyID,
		&e.Source,
		&e.Status,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

// Create inserts a new enquiry
func (r *enquiryRepository) Create(ctx context.Context, e *models.Enquiry) error {
	query := `
		INSERT INTO enquiries (reference, kind, name, email, phone, message, property_id, source, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		e.Reference, e.Kind, e.Name, e.Email, e.Phone, e.Message, e.PropertyID, e.Source, e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create enquiry: %w", err)
	}

	return nil
}

// GetByID retrieves an enquiry by ID
func (r *enquiryRepository) GetByID(ctx context.Context, id int64) (*models.Enquiry, error) {
	e, err := scanEnquiry(r.db.QueryRowContext(ctx, `SELECT `+enquiryColumns+` FROM enquiries WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("enquiry with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enquiry: %w", err)
	}
	return e, nil
}

// List retrieves enquiries matching the descriptor
func (r *enquiryRepository) List(ctx context.Context, d listquery.Descriptor) ([]*models.Enquiry, int64, error) {
	return listPage(ctx, r.db, "enquiries", enquiryColumns, d, scanEnquiry)
}

// UpdateStatus updates only the status of an enquiry
func (r *enquiryRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE enquiries SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update enquiry status: %w", err)
	}
	return checkAffected(result, models.ErrNotFoundWithMsg(fmt.Sprintf("enquiry with ID %d not found", id)))
}

// Delete removes an enquiry
func (r *enquiryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM enquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete enquiry: %w", err)
	}
	return checkAffected(result, models.ErrNotFoundWithMsg(fmt.Sprintf("enquiry with ID %d not found", id)))
}
