package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/service"
)

// PropertyHandler handles property HTTP requests
type PropertyHandler struct {
	propertyService service.PropertyService
	logger          *slog.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService service.PropertyService, logger *slog.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
		logger:          logger,
	}
}

// ListPublished handles GET /properties
func (h *PropertyHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	result, err := h.propertyService.ListPublished(r.Context(), listParams(r))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, result)
}

// GetBySlug handles GET /properties/{slug}
func (h *PropertyHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	property, err := h.propertyService.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, property)
}

// List handles GET /admin/properties
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.propertyService.List(r.Context(), listParams(r))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, result)
}

// Get handles GET /admin/properties/{id}
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	property, err := h.propertyService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, property)
}

// Create handles POST /admin/properties
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.PropertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	property, err := h.propertyService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondCreated(w, property)
}

// Update handles PUT /admin/properties/{id}
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req service.PropertyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	property, err := h.propertyService.Update(r.Context(), id, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, property)
}

// Delete handles DELETE /admin/properties/{id}
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.propertyService.Delete(r.Context(), id); err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondNoContent(w)
}
