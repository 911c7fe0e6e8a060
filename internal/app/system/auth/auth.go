// Package auth resolves the bearer credential on incoming requests.
//
// The API uses opaque bearer tokens minted at login. The middleware resolves
// the token to a user and stashes it in the request context; an absent or
// unknown credential resolves to no user rather than failing, so each
// endpoint decides whether anonymous access is permitted.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/riskintel/internal/app/system/httpjson"
	"go.uber.org/zap"
)

// SessionUser is the resolved caller injected into r.Context().
type SessionUser struct {
	ID       string
	Username string
	FullName string
	Role     string
	Avatar   string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the caller and a found flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects a user into the request context, bypassing the
// middleware. For handler tests only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// UserFetcher resolves a bearer token to a user. Implementations return nil
// when the token is unknown or any error occurs.
type UserFetcher interface {
	FetchUser(ctx context.Context, token string) *SessionUser
}

// Verifier is the bearer-token middleware. It loads the caller into context
// on every request; it never rejects by itself.
type Verifier struct {
	fetcher UserFetcher
	log     *zap.Logger
}

// NewVerifier constructs a Verifier backed by the given fetcher.
func NewVerifier(fetcher UserFetcher, logger *zap.Logger) *Verifier {
	return &Verifier{fetcher: fetcher, log: logger}
}

// LoadBearerUser resolves the Authorization header, if present, and injects
// the user into the request context. Missing or invalid credentials pass
// through as anonymous.
func (v *Verifier) LoadBearerUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := BearerToken(r); token != "" {
			if u := v.fetcher.FetchUser(r.Context(), token); u != nil {
				r = withUser(r, u)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn ensures a user was loaded into context. Unauthenticated
// requests get a 401 JSON error.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Returns "" when the header is absent or not a bearer credential.
func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(h, prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}
