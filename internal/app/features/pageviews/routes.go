// internal/app/features/pageviews/routes.go
package pageviews

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /pageviews.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/{page}", h.ServeRecord)
	return r
}
