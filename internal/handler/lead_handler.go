package handler

import (
	"log/slog"
	"net/http"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/service"
)

// LeadHandler handles enquiry and registration HTTP requests
type LeadHandler struct {
	enquiryService      service.EnquiryService
	registrationService service.RegistrationService
	logger              *slog.Logger
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(
	enquiryService service.EnquiryService,
	registrationService service.RegistrationService,
	logger *slog.Logger,
) *LeadHandler {
	return &LeadHandler{
		enquiryService:      enquiryService,
		registrationService: registrationService,
		logger:              logger,
	}
}

// submissionResponse is what the public site sees after a submission.
// Contact details are not echoed back.
type submissionResponse struct {
	Reference string `json:"reference"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

// SubmitEnquiry handles POST /enquiries
func (h *LeadHandler) SubmitEnquiry(w http.ResponseWriter, r *http.Request) {
	var req service.EnquiryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	enquiry, err := h.enquiryService.Submit(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondCreated(w, submissionResponse{
		Reference: enquiry.Reference.String(),
		Status:    enquiry.Status,
		Message:   "Thank you, our team will contact you shortly.",
	})
}

// SubmitRegistration handles POST /registrations
func (h *LeadHandler) SubmitRegistration(w http.ResponseWriter, r *http.Request) {
	var req service.RegistrationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reg, err := h.registrationService.Submit(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondCreated(w, submissionResponse{
		Reference: reg.Reference.String(),
		Status:    reg.Status,
		Message:   "Thank you for registering, our team will confirm shortly.",
	})
}

// ListEnquiries handles GET /admin/enquiries
func (h *LeadHandler) ListEnquiries(w http.ResponseWriter, r *http.Request) {
	result, err := h.enquiryService.List(r.Context(), listParams(r))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, result)
}

func (h *LeadHandler) GetEnquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	enquiry, err := h.enquiryService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, enquiry)
}

// UpdateEnquiryStatus handles PATCH /admin/enquiries/{id}/status
func (h *LeadHandler) UpdateEnquiryStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req service.StatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	enquiry, err := h.enquiryService.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, enquiry)
}

func (h *LeadHandler) DeleteEnquiry(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.enquiryService.Delete(r.Context(), id); err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondNoContent(w)
}

// ExportEnquiries handles GET /admin/enquiries/export. It accepts the same
// search and filter parameters as the list.
func (h *LeadHandler) ExportEnquiries(w http.ResponseWriter, r *http.Request) {
	filename, data, err := h.enquiryService.Export(r.Context(), listParams(r))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondAttachment(w, xlsxContentType, filename, data)
}

// ListRegistrations handles GET /admin/registrations
func (h *LeadHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	result, err := h.registrationService.List(r.Context(), listParams(r))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, result)
}

func (h *LeadHandler) GetRegistration(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	reg, err := h.registrationService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, reg)
}

// UpdateRegistrationStatus handles PATCH /admin/registrations/{id}/status
func (h *LeadHandler) UpdateRegistrationStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req service.StatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reg, err := h.registrationService.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, reg)
}

func (h *LeadHandler) DeleteRegistration(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.registrationService.Delete(r.Context(), id); err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondNoContent(w)
}
