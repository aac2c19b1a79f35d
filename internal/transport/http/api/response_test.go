package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"

	"backoffice/internal/platform/errs"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return env
}

func TestFailErrorUsesDomainStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	FailError(rec, errs.New(http.StatusUnprocessableEntity, "INVOICE_INVALID_ITEMS"), "invoice_failed", "req-1")

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Error == nil || env.Error.Code != "INVOICE_INVALID_ITEMS" || env.RequestID != "req-1" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestFailErrorHidesForeignErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	FailError(rec, errors.New("disk on fire"), "invoice_failed", "req-2")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error.Code != "invoice_failed" || env.Error.Message != "internal error" {
		t.Fatalf("unexpected error: %+v", env.Error)
	}
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "x"}, "req-3")
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("expected json content type, got %q", rec.Header().Get("Content-Type"))
	}
	env := decodeEnvelope(t, rec)
	if !env.Success || env.Error != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}
