package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/service"
)

// VideoHandler handles video HTTP requests
type VideoHandler struct {
	videoService service.VideoService
	logger       *slog.Logger
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(videoService service.VideoService, logger *slog.Logger) *VideoHandler {
	return &VideoHandler{videoService: videoService, logger: logger}
}

// ListPublished handles GET /videos
func (h *VideoHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	result, err := h.videoService.ListPublished(r.Context(), listParams(r))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, result)
}

// List handles GET /admin/videos
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.videoService.List(r.Context(), listParams(r))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, result)
}

func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	video, err := h.videoService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, video)
}

func (h *VideoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.VideoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	video, err := h.videoService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondCreated(w, video)
}

func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req service.VideoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	video, err := h.videoService.Update(r.Context(), id, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, video)
}

func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.videoService.Delete(r.Context(), id); err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondNoContent(w)
}

// BlogHandler handles blog HTTP requests
type BlogHandler struct {
	blogService service.BlogService
	logger      *slog.Logger
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogService service.BlogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{blogService: blogService, logger: logger}
}

// ListPublished handles GET /blogs
func (h *BlogHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	result, err := h.blogService.ListPublished(r.Context(), listParams(r))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, result)
}

// GetBySlug handles GET /blogs/{slug}
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogService.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, post)
}

// List handles GET /admin/blogs
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.blogService.List(r.Context(), listParams(r))
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, result)
}

func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := h.blogService.GetByID(r.Context(), id)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, post)
}

func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req service.BlogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.blogService.Create(r.Context(), &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondCreated(w, post)
}

func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req service.BlogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.blogService.Update(r.Context(), id, &req)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondSuccess(w, post)
}

func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.blogService.Delete(r.Context(), id); err != nil {
		handleError(w, err, h.logger)
		return
	}
	respondNoContent(w)
}
