package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
)

// BlogPost is an article in the portal's blog.
type BlogPost struct {
	ID          int64          `json:"id"`
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	Excerpt     string         `json:"excerpt"`
	Content     string         `json:"content"`
	Author      string         `json:"author"`
	Category    string         `json:"category"`
	CoverImage  string         `json:"cover_image"`
	Tags        pq.StringArray `json:"tags"`
	Published   bool           `json:"published"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// BlogResource is the list configuration for blog posts.
var BlogResource = listquery.Resource{
	Name:         "blogs",
	SearchFields: []string{"title", "excerpt", "author"},
	Filters: []listquery.Field{
		{Param: "published", Kind: listquery.KindBoolean},
		{Param: "category", Kind: listquery.KindEquality},
	},
	DefaultLimit: 10,
	MaxLimit:     MaxPageSize,
	DefaultSort:  listquery.DefaultSort,
	Sortable:     []string{"published_at", "title"},
}

// Publish marks the post published, stamping PublishedAt the first time.
func (b *BlogPost) Publish(now time.Time) {
	b.Published = true
	if b.PublishedAt == nil {
		b.PublishedAt = &now
	}
}
