package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/internal/auth"
	"backoffice/internal/domain/invoicing"
)

func TestAuthMiddlewareSetsRequester(t *testing.T) {
	secret := "test-secret"
	token, err := auth.GenerateToken(secret, auth.Claims{UserID: "u1", Role: invoicing.RoleManager, CompanyID: "c1"}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	called := false
	handler := Auth(secret, "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		requester, ok := GetRequester(r.Context())
		if !ok {
			t.Fatal("expected requester in context")
		}
		if requester.UserID != "u1" || requester.Role != invoicing.RoleManager || requester.CompanyID != "c1" {
			t.Fatalf("unexpected requester: %+v", requester)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if !called {
		t.Fatal("expected handler to run")
	}
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	handler := Auth("secret", "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetRequester(r.Context()); ok {
			t.Fatal("did not expect requester in context")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestAuthMiddlewareAPIKey(t *testing.T) {
	hash, err := auth.HashAPIKey("svc-key")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	handler := Auth("secret", hash)(RequireRole(invoicing.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-API-Key", "svc-key")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected service key to pass, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-API-Key", "wrong")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected wrong key to be unauthorized, got %d", rec.Code)
	}
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	secret := "test-secret"
	token, err := auth.GenerateToken(secret, auth.Claims{UserID: "u2", Role: invoicing.RoleWorker}, time.Hour)
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	handler := Auth(secret, "")(RequireRole(invoicing.RoleAdmin, invoicing.RoleManager)(noContent()))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetRequestID(r.Context()) == "" {
			t.Fatal("expected request id in context")
		}
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("expected caller request id to be kept, got %q", rec.Header().Get("X-Request-ID"))
	}
}

func TestBodyLimitRejectsDeclaredLength(t *testing.T) {
	handler := BodyLimit(1024)(noContent())
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.ContentLength = 4096
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}
