// internal/app/features/seed/handler.go

// Package seed loads the fixed demo dataset: two users and 39 proposals.
// Reseeding with force=true wipes users, proposals, and sessions first;
// wiping sessions keeps stale tokens from resolving against reseeded users.
package seed

import (
	"context"
	"net/http"
	"strconv"

	proposalstore "github.com/dalemusser/riskintel/internal/app/store/proposals"
	sessionstore "github.com/dalemusser/riskintel/internal/app/store/sessions"
	userstore "github.com/dalemusser/riskintel/internal/app/store/users"
	"github.com/dalemusser/riskintel/internal/app/system/httpjson"
	"github.com/dalemusser/riskintel/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Users     *userstore.Store
	Proposals *proposalstore.Store
	Sessions  *sessionstore.Store
	Log       *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users:     userstore.New(db),
		Proposals: proposalstore.New(db),
		Sessions:  sessionstore.New(db),
		Log:       logger,
	}
}

// Seed handles POST /api/seed?force=. Without force it is a no-op when users
// already exist.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	force, _ := strconv.ParseBool(r.URL.Query().Get("force"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	existing, err := h.Users.Count(ctx)
	if err != nil {
		h.Log.Error("seed: user count failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing > 0 && !force {
		httpjson.Write(w, http.StatusOK, map[string]any{
			"message": "Database already seeded, use force=true to reseed",
		})
		return
	}

	if force {
		if err := h.wipe(ctx); err != nil {
			h.Log.Error("seed: wipe failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	if err := h.Users.InsertMany(ctx, Users()); err != nil {
		h.Log.Error("seed: user insert failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	proposals := Proposals()
	if err := h.Proposals.InsertMany(ctx, proposals); err != nil {
		h.Log.Error("seed: proposal insert failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Log.Info("database seeded",
		zap.Bool("force", force),
		zap.Int("proposals", len(proposals)))
	httpjson.Write(w, http.StatusOK, map[string]any{
		"message":   "Database seeded successfully",
		"proposals": len(proposals),
	})
}

func (h *Handler) wipe(ctx context.Context) error {
	if err := h.Users.DeleteAll(ctx); err != nil {
		return err
	}
	if err := h.Proposals.DeleteAll(ctx); err != nil {
		return err
	}
	return h.Sessions.DeleteAll(ctx)
}
