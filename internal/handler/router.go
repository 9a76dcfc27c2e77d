package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles every route handler the router mounts
type Handlers struct {
	Health   *HealthHandler
	Property *PropertyHandler
	Video    *VideoHandler
	Blog     *BlogHandler
	Lead     *LeadHandler
	EMI      *EMIHandler
}

// NewRouter wires the public and admin routes. Admin routes carry no
// authentication of their own and are expected to sit behind a gateway.
func NewRouter(h Handlers, allowedOrigins []string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggingMiddleware(logger))
	r.Use(MetricsMiddleware)
	r.Use(CORSMiddleware(allowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})

	r.Get("/health", h.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Public site
	r.Get("/properties", h.Property.ListPublished)
	r.Get("/properties/{slug}", h.Property.GetBySlug)
	r.Get("/videos", h.Video.ListPublished)
	r.Get("/blogs", h.Blog.ListPublished)
	r.Get("/blogs/{slug}", h.Blog.GetBySlug)
	r.Post("/enquiries", h.Lead.SubmitEnquiry)
	r.Post("/registrations", h.Lead.SubmitRegistration)
	r.Post("/emi", h.EMI.Calculate)

	r.Route("/admin", func(r chi.Router) {
		r.Route("/properties", func(r chi.Router) {
			r.Get("/", h.Property.List)
			r.Post("/", h.Property.Create)
			r.Get("/{id}", h.Property.Get)
			r.Put("/{id}", h.Property.Update)
			r.Delete("/{id}", h.Property.Delete)
		})

		r.Route("/videos", func(r chi.Router) {
			r.Get("/", h.Video.List)
			r.Post("/", h.Video.Create)
			r.Get("/{id}", h.Video.Get)
			r.Put("/{id}", h.Video.Update)
			r.Delete("/{id}", h.Video.Delete)
		})

		r.Route("/blogs", func(r chi.Router) {
			r.Get("/", h.Blog.List)
			r.Post("/", h.Blog.Create)
			r.Get("/{id}", h.Blog.Get)
			r.Put("/{id}", h.Blog.Update)
			r.Delete("/{id}", h.Blog.Delete)
		})

		r.Route("/enquiries", func(r chi.Router) {
			r.Get("/", h.Lead.ListEnquiries)
			r.Get("/export", h.Lead.ExportEnquiries)
			r.Get("/{id}", h.Lead.GetEnquiry)
			r.Patch("/{id}/status", h.Lead.UpdateEnquiryStatus)
			r.Delete("/{id}", h.Lead.DeleteEnquiry)
		})

		r.Route("/registrations", func(r chi.Router) {
			r.Get("/", h.Lead.ListRegistrations)
			r.Get("/{id}", h.Lead.GetRegistration)
			r.Patch("/{id}/status", h.Lead.UpdateRegistrationStatus)
			r.Delete("/{id}", h.Lead.DeleteRegistration)
		})
	})

	return r
}
