// internal/app/features/properties/handler.go

// Package properties serves the property detail drill-down: exposure and
// limit reads, saved what-if premium scenarios, and the multiline quote.
package properties

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/riskintel/internal/app/stats"
	exposurestore "github.com/dalemusser/riskintel/internal/app/store/exposures"
	limitstore "github.com/dalemusser/riskintel/internal/app/store/limits"
	propertystore "github.com/dalemusser/riskintel/internal/app/store/properties"
	whatifstore "github.com/dalemusser/riskintel/internal/app/store/whatif"
	"github.com/dalemusser/riskintel/internal/app/system/httpjson"
	"github.com/dalemusser/riskintel/internal/app/system/timeouts"
	"github.com/dalemusser/riskintel/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Properties *propertystore.Store
	Exposures  *exposurestore.Store
	Limits     *limitstore.Store
	WhatIfs    *whatifstore.Store
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Properties: propertystore.New(db),
		Exposures:  exposurestore.New(db),
		Limits:     limitstore.New(db),
		WhatIfs:    whatifstore.New(db),
		Log:        logger,
	}
}

// Detail handles GET /api/properties/{propertyID}.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "propertyID")
	p, err := h.Properties.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "Property not found")
			return
		}
		h.Log.Error("properties: get failed", zap.String("id", id), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpjson.Write(w, http.StatusOK, p)
}

// Exposure handles GET /api/properties/{propertyID}/exposure/{lob}. A line
// with no exposure record gets an empty default rather than a 404 so the
// dashboard can always render the panel.
func (h *Handler) Exposure(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "propertyID")
	lob := chi.URLParam(r, "lob")

	e, err := h.Exposures.Get(ctx, id, lob)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Write(w, http.StatusOK, models.Exposure{
				PropertyID:              id,
				Lob:                     lob,
				TotalInsurableValue2024: "$0M",
				TotalInsurableValue2025: "$0M",
				Coverages:               []map[string]any{},
			})
			return
		}
		h.Log.Error("properties: exposure fetch failed",
			zap.String("id", id), zap.String("lob", lob), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpjson.Write(w, http.StatusOK, e)
}

// LimitOfLiability handles GET /api/properties/{propertyID}/limits/{lob}.
// Missing records default to an empty category list.
func (h *Handler) LimitOfLiability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "propertyID")
	lob := chi.URLParam(r, "lob")

	l, err := h.Limits.Get(ctx, id, lob)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Write(w, http.StatusOK, models.Limits{
				PropertyID: id,
				Lob:        lob,
				Categories: []map[string]any{},
			})
			return
		}
		h.Log.Error("properties: limits fetch failed",
			zap.String("id", id), zap.String("lob", lob), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpjson.Write(w, http.StatusOK, l)
}

// WhatIfGet handles GET /api/properties/{propertyID}/whatif/{lob}.
//
// Resolution order: the saved scenario if one exists, else a scenario
// seeded from the exposure coverages with totalPremium "0", else an empty
// scenario. The handler never 404s here.
func (h *Handler) WhatIfGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "propertyID")
	lob := chi.URLParam(r, "lob")

	saved, err := h.WhatIfs.Get(ctx, id, lob)
	if err == nil {
		httpjson.Write(w, http.StatusOK, saved)
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		h.Log.Error("properties: what-if fetch failed",
			zap.String("id", id), zap.String("lob", lob), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	scenario := models.WhatIf{
		PropertyID:   id,
		Lob:          lob,
		Coverages:    []map[string]any{},
		TotalPremium: "0",
	}
	if e, err := h.Exposures.Get(ctx, id, lob); err == nil && e.Coverages != nil {
		scenario.Coverages = e.Coverages
	}
	httpjson.Write(w, http.StatusOK, scenario)
}

type whatIfSaveRequest struct {
	Coverages    []map[string]any `json:"coverages"`
	TotalPremium string           `json:"totalPremium"`
}

// WhatIfSave handles POST /api/properties/{propertyID}/whatif/{lob},
// upserting the scenario for the pair.
func (h *Handler) WhatIfSave(w http.ResponseWriter, r *http.Request) {
	var req whatIfSaveRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	if req.TotalPremium == "" {
		req.TotalPremium = "0"
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "propertyID")
	lob := chi.URLParam(r, "lob")

	if err := h.WhatIfs.Save(ctx, id, lob, req.Coverages, req.TotalPremium); err != nil {
		h.Log.Error("properties: what-if save failed",
			zap.String("id", id), zap.String("lob", lob), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Log.Info("what-if scenario saved", zap.String("id", id), zap.String("lob", lob))
	httpjson.Write(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "What-if analysis saved",
	})
}

// MultilineQuote handles GET /api/properties/{propertyID}/multiline-quote.
// Lines of business without a saved what-if scenario are omitted from the
// quote rather than zero-filled.
func (h *Handler) MultilineQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	id := chi.URLParam(r, "propertyID")
	p, err := h.Properties.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "Property not found")
			return
		}
		h.Log.Error("properties: quote property fetch failed", zap.String("id", id), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var lookupErr error
	quote := stats.Quote(p.Lobs, func(lob string) (string, bool) {
		scenario, err := h.WhatIfs.Get(ctx, id, lob)
		if err != nil {
			if !errors.Is(err, mongo.ErrNoDocuments) {
				lookupErr = err
			}
			return "", false
		}
		return scenario.TotalPremium, true
	})
	if lookupErr != nil {
		h.Log.Error("properties: quote scenario fetch failed", zap.String("id", id), zap.Error(lookupErr))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpjson.Write(w, http.StatusOK, quote)
}
