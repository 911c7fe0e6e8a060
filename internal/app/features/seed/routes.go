// internal/app/features/seed/routes.go
package seed

import "github.com/go-chi/chi/v5"

// Routes returns the router for the seed endpoint.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Seed)
	return r
}
