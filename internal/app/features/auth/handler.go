// internal/app/features/auth/handler.go
package auth

import (
	"context"
	"errors"
	"net/http"

	sessionstore "github.com/dalemusser/riskintel/internal/app/store/sessions"
	userstore "github.com/dalemusser/riskintel/internal/app/store/users"
	sysauth "github.com/dalemusser/riskintel/internal/app/system/auth"
	"github.com/dalemusser/riskintel/internal/app/system/httpjson"
	"github.com/dalemusser/riskintel/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Users    *userstore.Store
	Sessions *sessionstore.Store
	Log      *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    userstore.New(db),
		Sessions: sessionstore.New(db),
		Log:      logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// userPayload is the user shape returned by login and /auth/me. It never
// carries the password.
type userPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    userPayload `json:"user"`
}

// Login handles POST /api/auth/login.
//
// The lookup key is the (username, role) pair; the password check is an
// exact string comparison against the stored value (see DESIGN.md). On
// success a new opaque session token is minted.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusUnprocessableEntity, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetByUsernameRole(ctx, req.Username, req.Role)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			httpjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.Log.Error("login: user lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if user.Password != req.Password {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sess, err := h.Sessions.Create(ctx, user.ID)
	if err != nil {
		h.Log.Error("login: session create failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Log.Info("user logged in",
		zap.String("username", user.Username),
		zap.String("role", user.Role))

	httpjson.Write(w, http.StatusOK, loginResponse{
		Success: true,
		Token:   sess.Token,
		User: userPayload{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Role:     user.Role,
			Avatar:   user.Avatar,
		},
	})
}

// Me handles GET /api/auth/me. The route is mounted behind RequireSignedIn,
// so a user is always present here.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := sysauth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	httpjson.Write(w, http.StatusOK, userPayload{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     u.Role,
		Avatar:   u.Avatar,
	})
}
