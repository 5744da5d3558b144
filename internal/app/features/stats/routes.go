// internal/app/features/stats/routes.go
package stats

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /stats.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/views", h.ServeViews)
	r.Get("/views.xlsx", h.ServeViewsXLSX)
	r.Post("/views/reset", h.ServeReset)
	return r
}
