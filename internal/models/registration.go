package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
)

// Registration kind constants
const (
	RegistrationKindSiteVisit      = "site_visit"
	RegistrationKindChannelPartner = "channel_partner"
	RegistrationKindInvestor       = "investor"
)

var RegistrationKinds = []string{RegistrationKindSiteVisit, RegistrationKindChannelPartner, RegistrationKindInvestor}

// Registration is a sign-up for a site visit or a partner programme.
type Registration struct {
	ID        int64      `json:"id"`
	Reference uuid.UUID  `json:"reference"`
	Kind      string     `json:"kind"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	City      string     `json:"city"`
	VisitDate *time.Time `json:"visit_date,omitempty"`
	Source    string     `json:"source"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RegistrationResource is the list configuration for registrations.
var RegistrationResource = listquery.Resource{
	Name:         "registrations",
	SearchFields: []string{"name", "email", "phone", "city"},
	Filters: []listquery.Field{
		{Param: "kind", Kind: listquery.KindEnum, Values: RegistrationKinds},
		{Param: "status", Kind: listquery.KindEnum, Values: LeadStatuses},
		{Param: "source", Kind: listquery.KindEnum, Values: LeadSources},
	},
	DefaultLimit: 25,
	MaxLimit:     MaxPageSize,
	DefaultSort:  listquery.DefaultSort,
	Sortable:     []string{"name", "status", "visit_date"},
}

// IsValidRegistrationKind checks if the registration kind is valid
func IsValidRegistrationKind(kind string) bool {
	return contains(RegistrationKinds, kind)
}
