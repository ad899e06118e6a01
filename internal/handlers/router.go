package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mroshb/edu_admissions/internal/middleware"
)

// Routes builds the HTTP API
func (h *HandlerManager) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/health", h.Health)
	if h.MetricsHandler != nil {
		r.Handle("/metrics", h.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		// Public
		api.Post("/auth/login", h.Login)
		api.Post("/auth/logout", h.Logout)
		api.Get("/universities", h.ListUniversities)
		api.Get("/universities/{slug}", h.GetUniversity)
		api.With(h.rateLimitApplications).Post("/applications", h.SubmitApplication)

		// Admin
		api.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAdmin(h.Config.JWTSecret, h.Admins))

			admin.Get("/auth/me", h.CurrentAdmin)
			admin.Get("/admin/stats", h.AdminStats)
			admin.Get("/admin/universities", h.ListAllUniversities)
			admin.Get("/admin/universities/{slug}", h.GetUniversityForAdmin)
			admin.Post("/universities", h.CreateUniversity)
			admin.Put("/universities/{id}", h.UpdateUniversity)
			admin.Delete("/universities/{id}", h.DeleteUniversity)

			admin.Route("/universities/{id}/specializations", func(specs chi.Router) {
				specs.Get("/", h.ListSpecializations)
				specs.Post("/", h.CreateSpecialization)
				specs.Post("/bulk", h.BulkCreateSpecializations)
				specs.Post("/parse", h.ParseSpecializations)
				specs.Post("/paste", h.PasteSpecializations)
				specs.Post("/import", h.ImportSpecializations)
			})

			admin.Put("/specializations/{id}", h.UpdateSpecialization)
			admin.Delete("/specializations/{id}", h.DeleteSpecialization)

			admin.Get("/applications", h.ListApplications)
		})
	})

	return r
}

func (h *HandlerManager) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HandlerManager) rateLimitApplications(next http.Handler) http.Handler {
	if h.Limiter == nil {
		return next
	}
	return middleware.RateLimit(h.Limiter, h.Applications.RecordRateLimited)(next)
}
