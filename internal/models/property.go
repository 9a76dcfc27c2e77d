package models

import (
	"time"

	"github.com/lib/pq"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
)

// Property type constants
const (
	PropertyTypeResidential = "residential"
	PropertyTypeCommercial  = "commercial"
	PropertyTypePlot        = "plot"
)

// Property status constants
const (
	PropertyStatusUpcoming          = "upcoming"
	PropertyStatusUnderConstruction = "under_construction"
	PropertyStatusReadyToMove       = "ready_to_move"
)

// PropertyTypes and PropertyStatuses list the accepted enum values in
// display order.
var (
	PropertyTypes    = []string{PropertyTypeResidential, PropertyTypeCommercial, PropertyTypePlot}
	PropertyStatuses = []string{PropertyStatusUpcoming, PropertyStatusUnderConstruction, PropertyStatusReadyToMove}
)

// Property is a project listed on the portal.
type Property struct {
	ID            int64          `json:"id"`
	Slug          string         `json:"slug"`
	Name          string         `json:"name"`
	Builder       string         `json:"builder"`
	Location      string         `json:"location"`
	Type          string         `json:"type"`
	Status        string         `json:"status"`
	Configuration string         `json:"configuration"`
	AreaSqft      int            `json:"area_sqft"`
	Price         float64        `json:"price"`
	PriceLabel    string         `json:"price_label"`
	Description   string         `json:"description"`
	Amenities     pq.StringArray `json:"amenities"`
	Images        pq.StringArray `json:"images"`
	Featured      bool           `json:"featured"`
	Published     bool           `json:"published"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// PropertyResource is the list configuration for properties.
var PropertyResource = listquery.Resource{
	Name:         "properties",
	SearchFields: []string{"name", "builder", "location"},
	Filters: []listquery.Field{
		{Param: "type", Kind: listquery.KindEnum, Values: PropertyTypes},
		{Param: "status", Kind: listquery.KindEnum, Values: PropertyStatuses},
		{Param: "featured", Kind: listquery.KindBoolean},
		{Param: "published", Kind: listquery.KindBoolean},
	},
	DefaultLimit: 12,
	MaxLimit:     MaxPageSize,
	DefaultSort:  listquery.DefaultSort,
	Sortable:     []string{"price", "name", "updated_at"},
}

// IsValidPropertyType checks if the property type is valid
func IsValidPropertyType(t string) bool {
	return contains(PropertyTypes, t)
}

// IsValidPropertyStatus checks if the property status is valid
func IsValidPropertyStatus(status string) bool {
	return contains(PropertyStatuses, status)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
