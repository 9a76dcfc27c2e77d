package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

// RegistrationRepository defines the interface for registration data access
type RegistrationRepository interface {
	Create(ctx context.Context, registration *models.Registration) error
	GetByID(ctx context.Context, id int64) (*models.Registration, error)
	List(ctx context.Context, d listquery.Descriptor) ([]*models.Registration, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

const registrationColumns = `id, reference, kind, name, email, phone, city, visit_date, source, status, created_at, updated_at`

type registrationRepository struct {
	db *sql.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func scanRegistration(row rowScanner) (*models.Registration, error) {
	reg := &models.Registration{}
	err := row.Scan(
		&reg.ID,
		&reg.Reference,
		&reg.Kind,
		&reg.Name,
		&reg.Email,
		&reg.Phone,
		&reg.City,
		&reg.VisitDate,
		&reg.Source,
		&reg.Status,
		&reg.CreatedAt,
		&reg.UpdatedAt,
	)
	return reg, err
}

func (r *registrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	query := `
		INSERT INTO registrations (reference, kind, name, email, phone, city, visit_date, source, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		reg.Reference, reg.Kind, reg.Name, reg.Email, reg.Phone, reg.City, reg.VisitDate, reg.Source, reg.Status,
	).Scan(&reg.ID, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}

	return nil
}

func (r *registrationRepository) GetByID(ctx context.Context, id int64) (*models.Registration, error) {
	reg, err := scanRegistration(r.db.QueryRowContext(ctx, `SELECT `+registrationColumns+` FROM registrations WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("registration with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}
	return reg, nil
}

func (r *registrationRepository) List(ctx context.Context, d listquery.Descriptor) ([]*models.Registration, int64, error) {
	return listPage(ctx, r.db, "registrations", registrationColumns, d, scanRegistration)
}

func (r *registrationRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE registrations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update registration status: %w", err)
	}
	return checkAffected(result, models.ErrNotFoundWithMsg(fmt.Sprintf("registration with ID %d not found", id)))
}

func (r *registrationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	return checkAffected(result, models.ErrNotFoundWithMsg(fmt.Sprintf("registration with ID %d not found", id)))
}
