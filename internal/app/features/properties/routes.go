// internal/app/features/properties/routes.go
package properties

import "github.com/go-chi/chi/v5"

// Routes returns the router for property detail endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/{propertyID}", h.Detail)
	r.Get("/{propertyID}/exposure/{lob}", h.Exposure)
	r.Get("/{propertyID}/limits/{lob}", h.LimitOfLiability)
	r.Get("/{propertyID}/whatif/{lob}", h.WhatIfGet)
	r.Post("/{propertyID}/whatif/{lob}", h.WhatIfSave)
	r.Get("/{propertyID}/multiline-quote", h.MultilineQuote)

	return r
}
