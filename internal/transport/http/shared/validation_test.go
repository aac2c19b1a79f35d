package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type samplePayload struct {
	Status   string `json:"status" validate:"required,oneof=open closed"`
	Language string `json:"language" validate:"omitempty,oneof=nl en"`
}

func TestValidatorStructTags(t *testing.T) {
	v := NewValidator()
	v.Struct(samplePayload{Language: "de"})
	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %+v", issues)
	}
	if issues[0].Field != "samplePayload.Language" || issues[0].Reason != "failed oneof nl en" {
		t.Fatalf("unexpected first issue: %+v", issues[0])
	}

	ok := NewValidator()
	ok.Struct(samplePayload{Status: "open"})
	if ok.HasIssues() {
		t.Fatalf("expected no issues, got %+v", ok.Issues())
	}
}

func TestValidatorRejectWritesDetails(t *testing.T) {
	v := NewValidator()
	v.Required("name", " ", "is required")
	v.Enum("format", "xml", []string{"json", "csv"}, "must be json or csv")
	v.Enum("format", "", []string{"json"}, "ignored when empty")

	rec := httptest.NewRecorder()
	if !v.Reject(rec, "req-1") {
		t.Fatal("expected rejection")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"validation_error"`) || !strings.Contains(body, `"field":"format"`) {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestDecodeJSON(t *testing.T) {
	var payload samplePayload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"status":"open"}`))
	if !DecodeJSON(httptest.NewRecorder(), req, &payload, "") || payload.Status != "open" {
		t.Fatalf("expected payload to decode, got %+v", payload)
	}

	for _, body := range []string{`{"status":`, `{"status":"open"} {"status":"closed"}`} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		if DecodeJSON(rec, req, &payload, "") {
			t.Fatalf("expected %q to be rejected", body)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", body, rec.Code)
		}
	}
}
