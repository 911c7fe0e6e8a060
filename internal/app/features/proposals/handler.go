// internal/app/features/proposals/handler.go
package proposals

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/riskintel/internal/app/stats"
	proposalstore "github.com/dalemusser/riskintel/internal/app/store/proposals"
	sysauth "github.com/dalemusser/riskintel/internal/app/system/auth"
	"github.com/dalemusser/riskintel/internal/app/system/httpjson"
	"github.com/dalemusser/riskintel/internal/app/system/timeouts"
	"github.com/dalemusser/riskintel/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the proposal pipeline endpoints.
type Handler struct {
	Proposals *proposalstore.Store
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Proposals: proposalstore.New(db),
		Log:       logger,
	}
}

// List handles GET /api/proposals. Both query parameters are optional:
// ?status= narrows by workflow status ("all" means no filter) and ?search=
// matches title, client, or location as a case-insensitive substring.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	filter := proposalstore.ListFilter{
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}
	items, err := h.Proposals.List(ctx, filter)
	if err != nil {
		h.Log.Error("proposals: list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpjson.Write(w, http.StatusOK, items)
}

// Get handles GET /api/proposals/{proposalID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "proposalID")
	p, err := h.Proposals.Get(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "Proposal not found")
			return
		}
		h.Log.Error("proposals: get failed", zap.String("id", id), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpjson.Write(w, http.StatusOK, p)
}

// Create handles POST /api/proposals. The route requires a signed-in caller;
// createdBy is taken from the session, never from the body.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	u, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var p models.Proposal
	if err := httpjson.Decode(r, &p); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}
	p.CreatedBy = u.FullName

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.Proposals.Create(ctx, p)
	if err != nil {
		h.Log.Error("proposals: create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Log.Info("proposal created",
		zap.String("id", created.ID),
		zap.String("createdBy", created.CreatedBy))
	httpjson.Write(w, http.StatusOK, created)
}

// Update handles PUT /api/proposals/{proposalID}. Only the fields present in
// the body change; updatedAt is always refreshed.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var upd proposalstore.Update
	if err := httpjson.Decode(r, &upd); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "proposalID")
	p, err := h.Proposals.ApplyUpdate(ctx, id, upd)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusNotFound, "Proposal not found")
			return
		}
		h.Log.Error("proposals: update failed", zap.String("id", id), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpjson.Write(w, http.StatusOK, p)
}

// Delete handles DELETE /api/proposals/{proposalID}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	id := chi.URLParam(r, "proposalID")
	n, err := h.Proposals.Delete(ctx, id)
	if err != nil {
		h.Log.Error("proposals: delete failed", zap.String("id", id), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if n == 0 {
		httpjson.Error(w, http.StatusNotFound, "Proposal not found")
		return
	}

	h.Log.Info("proposal deleted", zap.String("id", id))
	httpjson.Write(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Proposal deleted",
	})
}

// Statistics handles GET /api/statistics, the proposal pipeline rollup.
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	items, err := h.Proposals.List(ctx, proposalstore.ListFilter{})
	if err != nil {
		h.Log.Error("proposals: statistics fetch failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpjson.Write(w, http.StatusOK, stats.Proposals(items))
}
