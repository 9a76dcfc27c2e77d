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

// BlogRepository defines the interface for blog post data access
type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, id int64) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	List(ctx context.Context, d listquery.Descriptor) ([]*models.BlogPost, int64, error)
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, id int64) error
}

const blogColumns = `id, slug, title, excerpt, content, author, category, cover_image, tags,
	published, published_at, created_at, updated_at`

type blogRepository struct {
	db *sql.DB
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *sql.DB) BlogRepository {
	return &blogRepository{db: db}
}

func scanBlogPost(row rowScanner) (*models.BlogPost, error) {
	b := &models.BlogPost{}
	err := row.Scan(
		&b.ID,
		&b.Slug,
		&b.Title,
		&b.Excerpt,
		&b.Content,
		&b.Author,
		&b.Category,
		&b.CoverImage,
		&b.Tags,
		&b.Published,
		&b.PublishedAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

func (r *blogRepository) Create(ctx context.Context, b *models.BlogPost) error {
	query := `
		INSERT INTO blog_posts (slug, title, excerpt, content, author, category, cover_image, tags, published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		b.Slug, b.Title, b.Excerpt, b.Content, b.Author, b.Category, b.CoverImage,
		textArray(b.Tags), b.Published, b.PublishedAt,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)

	if db.IsUniqueViolation(err, "blog_posts_slug_key") {
		return models.ErrAlreadyExistsWithMsg(fmt.Sprintf("blog slug %q is taken", b.Slug))
	}
	if err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	return nil
}

func (r *blogRepository) GetByID(ctx context.Context, id int64) (*models.BlogPost, error) {
	b, err := scanBlogPost(r.db.QueryRowContext(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("blog post with ID %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return b, nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	b, err := scanBlogPost(r.db.QueryRowContext(ctx, `SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("blog post %q not found", slug))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return b, nil
}

func (r *blogRepository) List(ctx context.Context, d listquery.Descriptor) ([]*models.BlogPost, int64, error) {
	return listPage(ctx, r.db, "blog_posts", blogColumns, d, scanBlogPost)
}

func (r *blogRepository) Update(ctx context.Context, b *models.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET slug = $1, title = $2, excerpt = $3, content = $4, author = $5, category = $6,
			cover_image = $7, tags = $8, published = $9, published_at = $10
		WHERE id = $11
		RETURNING updated_at`

	err := r.db.QueryRowContext(ctx, query,
		b.Slug, b.Title, b.Excerpt, b.Content, b.Author, b.Category, b.CoverImage,
		textArray(b.Tags), b.Published, b.PublishedAt, b.ID,
	).Scan(&b.UpdatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("blog post with ID %d not found", b.ID))
	}
	if db.IsUniqueViolation(err, "blog_posts_slug_key") {
		return models.ErrAlreadyExistsWithMsg(fmt.Sprintf("blog slug %q is taken", b.Slug))
	}
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	return checkAffected(result, models.ErrNotFoundWithMsg(fmt.Sprintf("blog post with ID %d not found", id)))
}
