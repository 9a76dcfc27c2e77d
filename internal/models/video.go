package models

import (
	"time"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
)

// Video is a walkthrough or testimonial clip, optionally tied to a property.
type Video struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	PropertyID   *int64    `json:"property_id,omitempty"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VideoResource is the list configuration for videos.
var VideoResource = listquery.Resource{
	Name:         "videos",
	SearchFields: []string{"title", "description"},
	Filters: []listquery.Field{
		{Param: "published", Kind: listquery.KindBoolean},
		{Param: "property_id", Kind: listquery.KindInteger},
	},
	DefaultLimit: 12,
	MaxLimit:     MaxPageSize,
	DefaultSort:  listquery.DefaultSort,
	Sortable:     []string{"title"},
}
