package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
)

// Enquiry kind constants
const (
	EnquiryKindGeneral  = "general"
	EnquiryKindProperty = "property"
	EnquiryKindHomeLoan = "home_loan"
	EnquiryKindCallback = "callback"
)

var EnquiryKinds = []string{EnquiryKindGeneral, EnquiryKindProperty, EnquiryKindHomeLoan, EnquiryKindCallback}

// Enquiry is a contact request submitted from the public site.
type Enquiry struct {
	ID         int64     `json:"id"`
	Reference  uuid.UUID `json:"reference"`
	Kind       string    `json:"kind"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	PropertyID *int64    `json:"property_id,omitempty"`
	Source     string    `json:"source"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EnquiryResource is the list configuration for enquiries.
var EnquiryResource = listquery.Resource{
	Name:         "enquiries",
	SearchFields: []string{"name", "email", "phone", "message"},
	Filters: []listquery.Field{
		{Param: "kind", Kind: listquery.KindEnum, Values: EnquiryKinds},
		{Param: "status", Kind: listquery.KindEnum, Values: LeadStatuses},
		{Param: "source", Kind: listquery.KindEnum, Values: LeadSources},
	},
	DefaultLimit: 25,
	MaxLimit:     MaxPageSize,
	DefaultSort:  listquery.DefaultSort,
	Sortable:     []string{"name", "status"},
}

// IsValidEnquiryKind checks if the enquiry kind is valid
func IsValidEnquiryKind(kind string) bool {
	return contains(EnquiryKinds, kind)
}
