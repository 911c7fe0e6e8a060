// internal/app/features/uwrc/handler.go

// Package uwrc serves the UWR_C property dashboard: the premium rollup,
// the filterable property list, and the filter dropdown options.
package uwrc

import (
	"context"
	"net/http"

	"github.com/dalemusser/riskintel/internal/app/stats"
	propertystore "github.com/dalemusser/riskintel/internal/app/store/properties"
	"github.com/dalemusser/riskintel/internal/app/system/httpjson"
	"github.com/dalemusser/riskintel/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Properties *propertystore.Store
	Log        *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Properties: propertystore.New(db),
		Log:        logger,
	}
}

// Statistics handles GET /api/uwrc/statistics.
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Properties.All(ctx)
	if err != nil {
		h.Log.Error("uwrc: statistics fetch failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpjson.Write(w, http.StatusOK, stats.Properties(items))
}

// List handles GET /api/uwrc/properties. Each query parameter narrows the
// result; absent or "All" means no filter on that dimension.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	q := r.URL.Query()
	filter := propertystore.Filter{
		State:      q.Get("state"),
		Lob:        q.Get("lob"),
		CustomerID: q.Get("customerId"),
	}
	items, err := h.Properties.List(ctx, filter)
	if err != nil {
		h.Log.Error("uwrc: property list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpjson.Write(w, http.StatusOK, items)
}

// Filters handles GET /api/uwrc/filters, the dropdown option sets.
func (h *Handler) Filters(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Properties.All(ctx)
	if err != nil {
		h.Log.Error("uwrc: filters fetch failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpjson.Write(w, http.StatusOK, stats.Filters(items))
}
