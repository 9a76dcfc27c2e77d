package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

// VideoRepository defines the interface for video data access
type VideoRepository interface {
	Create(ctx context.Context, video *models.Video) error
	GetByID(ctx context.Context, id int64) (*models.Video, error)
	List(ctx context.Context, d listquery.Descriptor) ([]*models.Video, int64, error)
	Update(ctx context.Context, video *models.Video) error
	Delete(ctx context.Context, id int64) error
}

const videoColumns = `id, title, description, video_url, thumbnail_url, property_id, published, created_at, updated_at`

type videoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new video repository
func NewVideoRepository(db *sql.DB) VideoRepository {
	return &videoRepository{db: db}
}

func scanVideo(row rowScanner) (*models.Video, error) {
	v := &models.Video{}
	err := row.Scan(
		&v.ID,
		&v.Title,
		&v.Description,
		&v.VideoURL,
		&v.ThumbnailURL,
		&v.PropertyID,
		&v.Published,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	return v, err
}

func (r *videoRepository) Create(ctx context.Context, v *models.Video) error {
	query := `
		INSERT INTO videos (title, description, video_url, thumbnail_url, property_id, published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		v.Title, v.Description, v.VideoURL, v.ThumbnailURL, v.PropertyID, v.Published,
	).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id int64) (*models.Video, error) {
	v, err := scanVideo(r.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("video with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return v, nil
}

func (r *videoRepository) List(ctx context.Context, d listquery.Descriptor) ([]*models.Video, int64, error) {
	return listPage(ctx, r.db, "videos", videoColumns, d, scanVideo)
}

func (r *videoRepository) Update(ctx context.Context, v *models.Video) error {
	query := `
		UPDATE videos
		SET title = $1, description = $2, video_url = $3, thumbnail_url = $4, property_id = $5, published = $6
		WHERE id = $7
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		v.Title, v.Description, v.VideoURL, v.ThumbnailURL, v.PropertyID, v.Published, v.ID,
	).Scan(&v.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("video with ID %d not found", v.ID))
	}
	if err != nil {
		return fmt.Errorf("failed to update video: %w", err)
	}

	return nil
}

func (r *videoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return checkAffected(result, models.ErrNotFoundWithMsg(fmt.Sprintf("video with ID %d not found", id)))
}
