// internal/app/features/proposals/routes.go
package proposals

import (
	sysauth "github.com/dalemusser/riskintel/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for proposal CRUD. Only create requires a
// signed-in caller; update and delete are intentionally left open to match
// the dashboard client's behavior.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{proposalID}", h.Get)
	r.Put("/{proposalID}", h.Update)
	r.Delete("/{proposalID}", h.Delete)

	r.Group(func(pr chi.Router) {
		pr.Use(sysauth.RequireSignedIn)
		pr.Post("/", h.Create)
	})

	return r
}
