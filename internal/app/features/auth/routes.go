// internal/app/features/auth/routes.go
package auth

import (
	sysauth "github.com/dalemusser/riskintel/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the auth endpoints. Login is open; /me
// requires a signed-in caller.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)

	r.Group(func(pr chi.Router) {
		pr.Use(sysauth.RequireSignedIn)
		pr.Get("/me", h.Me)
	})

	return r
}
