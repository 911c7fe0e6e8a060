package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dalemusser/riskintel/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context. Calls
// chain: an existing route context on the request is reused, so handlers
// with multiple URL params can be tested.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestUser represents caller identity for handler tests.
type TestUser struct {
	ID       string
	Username string
	FullName string
	Role     string
}

// UnderwriterB returns a TestUser in the UWR_B role.
func UnderwriterB() TestUser {
	return TestUser{ID: "user-b", Username: "LARA", FullName: "Lara", Role: "UWR_B"}
}

// UnderwriterC returns a TestUser in the UWR_C role.
func UnderwriterC() TestUser {
	return TestUser{ID: "user-c", Username: "ZARA", FullName: "Zara", Role: "UWR_C"}
}

// WithUser injects a user into the request context, bypassing the bearer
// middleware.
func WithUser(r *http.Request, user TestUser) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role,
	})
}

// NewJSONRequest creates an HTTP request carrying a JSON body.
func NewJSONRequest(method, target, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	return req
}
