package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"flightops/frms/internal/auth"
	"flightops/frms/internal/constants"
)

func callWithRole(t *testing.T, mw func(http.Handler) http.Handler, role string) int {
	t.Helper()

	var called bool
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if role != "" {
		ctx := auth.SetUserClaims(req.Context(), &auth.TokenClaims{RoleValue: role})
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code == http.StatusOK && !called {
		t.Fatal("200 without reaching the handler")
	}
	return rec.Code
}

func TestIsOperatorMiddleware(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{constants.RoleOperator, http.StatusOK},
		{constants.RoleAdmin, http.StatusOK},
		{constants.RoleViewer, http.StatusUnauthorized},
		{"", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		if got := callWithRole(t, IsOperatorMiddleware(), tt.role); got != tt.want {
			t.Errorf("role %q: got %d, want %d", tt.role, got, tt.want)
		}
	}
}

func TestIsAdminMiddleware(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{constants.RoleAdmin, http.StatusOK},
		{constants.RoleOperator, http.StatusUnauthorized},
		{constants.RoleViewer, http.StatusUnauthorized},
		{"", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		if got := callWithRole(t, IsAdminMiddleware(), tt.role); got != tt.want {
			t.Errorf("role %q: got %d, want %d", tt.role, got, tt.want)
		}
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" {
		t.Error("no request id generated")
	}
	if rec.Header().Get("X-Request-ID") != seen {
		t.Error("request id not echoed in response header")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "caller-supplied" {
		t.Errorf("caller request id dropped, got %q", seen)
	}
}
