package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"rfpforge/internal/audit"
	"rfpforge/internal/auth/service"
	"rfpforge/internal/auth/store"
	"rfpforge/internal/jwttoken"
	"rfpforge/internal/platform/middleware"
)

type noopRecorder struct{}

func (noopRecorder) Record(_ context.Context, _ string, _ audit.Action, _, _ string) {}

// newAuthRouter builds the real login/logout surface: public session-creation
// routes plus protected status/logout behind the token middleware.
func newAuthRouter() chi.Router {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tokens := jwttoken.NewService("test-signing-key", "rfpforge")
	svc := service.New(
		store.NewInMemoryUserStore(),
		store.NewInMemorySessionStore(),
		tokens,
		noopRecorder{},
		logger,
	)
	handler := New(svc, logger)

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		handler.RegisterPublic(r)
	})
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(tokens, svc, logger))
		handler.RegisterProtected(r)
	})
	return router
}

func login(t *testing.T, router chi.Router, path string, payload any) map[string]any {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, _ := json.Marshal(payload)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(http.MethodPost, path, body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from %s, got %d: %s", path, rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestDemoLoginIssuesToken(t *testing.T) {
	router := newAuthRouter()
	resp := login(t, router, "/api/auth/demo", nil)

	if resp["success"] != true {
		t.Fatal("expected success=true")
	}
	if token, _ := resp["token"].(string); token == "" {
		t.Fatal("expected session token")
	}
	user, _ := resp["user"].(map[string]any)
	if user["email"] != "demo@defense.gov" {
		t.Fatalf("expected demo identity, got %v", user["email"])
	}
}

func TestVerifyRejectsMissingEmail(t *testing.T) {
	router := newAuthRouter()
	body, _ := json.Marshal(map[string]string{"name": "No Email"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/verify", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without email, got %d", rec.Code)
	}
}

func TestStatusRequiresToken(t *testing.T) {
	router := newAuthRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["redirect"] != "/login" {
		t.Fatalf("expected login redirect hint, got %q", resp["redirect"])
	}
}

func TestStatusWithLiveSession(t *testing.T) {
	router := newAuthRouter()
	resp := login(t, router, "/api/auth/cac", nil)
	token, _ := resp["token"].(string)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var status map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if status["authenticated"] != true {
		t.Fatal("expected authenticated=true")
	}
	user, _ := status["user"].(map[string]any)
	if user["name"] != "John Smith" {
		t.Fatalf("expected CAC identity, got %v", user["name"])
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	router := newAuthRouter()
	resp := login(t, router, "/api/auth/email", nil)
	token, _ := resp["token"].(string)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 logging out, got %d: %s", rec.Code, rec.Body.String())
	}

	// The token still parses but its session is gone.
	req = httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}
