package service

import (
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/emi"
)

// PropertyRequest creates or replaces a property
type PropertyRequest struct {
	Name          string   `json:"name" validate:"required,max=200"`
	Slug          string   `json:"slug" validate:"omitempty,max=200"`
	Builder       string   `json:"builder" validate:"max=200"`
	Location      string   `json:"location" validate:"required,max=200"`
	Type          string   `json:"type" validate:"required,oneof=residential commercial plot"`
	Status        string   `json:"status" validate:"required,oneof=upcoming under_construction ready_to_move"`
	Configuration string   `json:"configuration" validate:"max=200"`
	AreaSqft      int      `json:"area_sqft" validate:"gte=0"`
	Price         float64  `json:"price" validate:"gte=0"`
	Description   string   `json:"description" validate:"max=10000"`
	Amenities     []string `json:"amenities" validate:"max=50,dive,required,max=100"`
	Images        []string `json:"images" validate:"max=30,dive,url"`
	Featured      bool     `json:"featured"`
	Published     bool     `json:"published"`
}

// VideoRequest creates or replaces a video
type VideoRequest struct {
	Title        string `json:"title" validate:"required,max=200"`
	Description  string `json:"description" validate:"max=2000"`
	VideoURL     string `json:"video_url" validate:"required,url"`
	ThumbnailURL string `json:"thumbnail_url" validate:"omitempty,url"`
	PropertyID   *int64 `json:"property_id" validate:"omitempty,gt=0"`
	Published    bool   `json:"published"`
}

// BlogRequest creates or replaces a blog post
type BlogRequest struct {
	Title      string   `json:"title" validate:"required,max=200"`
	Slug       string   `json:"slug" validate:"omitempty,max=200"`
	Excerpt    string   `json:"excerpt" validate:"max=500"`
	Content    string   `json:"content" validate:"required"`
	Author     string   `json:"author" validate:"max=100"`
	Category   string   `json:"category" validate:"max=60"`
	CoverImage string   `json:"cover_image" validate:"omitempty,url"`
	Tags       []string `json:"tags" validate:"max=20,dive,required,max=40"`
	Published  bool     `json:"published"`
}

// EnquiryRequest is a contact form submission
type EnquiryRequest struct {
	Kind       string `json:"kind" validate:"omitempty,oneof=general property home_loan callback"`
	Name       string `json:"name" validate:"required,max=120"`
	Email      string `json:"email" validate:"omitempty,email,max=200"`
	Phone      string `json:"phone" validate:"required,phone"`
	Message    string `json:"message" validate:"max=2000"`
	PropertyID *int64 `json:"property_id" validate:"omitempty,gt=0"`
	Source     string `json:"source" validate:"omitempty,oneof=website property_page emi_calculator landing_page"`
}

// RegistrationRequest is a site visit or partner programme sign-up
type RegistrationRequest struct {
	Kind      string `json:"kind" validate:"required,oneof=site_visit channel_partner investor"`
	Name      string `json:"name" validate:"required,max=120"`
	Email     string `json:"email" validate:"omitempty,email,max=200"`
	Phone     string `json:"phone" validate:"required,phone"`
	City      string `json:"city" validate:"max=100"`
	VisitDate string `json:"visit_date" validate:"omitempty,datetime=2006-01-02"`
	Source    string `json:"source" validate:"omitempty,oneof=website property_page emi_calculator landing_page"`
}

// StatusRequest moves a lead to a new status
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted closed"`
}

// EMIRequest asks for an instalment calculation. The bounds keep results
// finite; the engine itself accepts any non-negative input.
type EMIRequest struct {
	Principal         float64 `json:"principal" validate:"gte=0,lte=100000000000"`
	AnnualRatePercent float64 `json:"annual_rate_percent" validate:"gte=0,lte=100"`
	TermYears         int     `json:"term_years" validate:"gte=1,lte=50"`
	IncludeSchedule   bool    `json:"include_schedule"`
}

// EMIResponse carries the engine result rounded to paise, with display
// labels in rupees.
type EMIResponse struct {
	emi.Result
	Labels   EMILabels         `json:"labels"`
	Schedule []emi.YearSummary `json:"schedule,omitempty"`
}

// EMILabels are the amounts formatted for display.
type EMILabels struct {
	MonthlyInstallment string `json:"monthly_installment"`
	TotalPayable       string `json:"total_payable"`
	TotalInterest      string `json:"total_interest"`
}
