// internal/app/features/uwrc/routes.go
package uwrc

import "github.com/go-chi/chi/v5"

// Routes returns the router for the UWR_C dashboard endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/statistics", h.Statistics)
	r.Get("/properties", h.List)
	r.Get("/filters", h.Filters)
	return r
}
