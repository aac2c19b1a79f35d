package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParsePage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?limit=5&offset=3", nil)
	p := ParsePage(r, 0)
	if start, end := p.Bounds(20); start != 3 || end != 8 {
		t.Fatalf("expected 3..8, got %d..%d", start, end)
	}
	if start, end := p.Bounds(4); start != 3 || end != 4 {
		t.Fatalf("expected window clamped to 3..4, got %d..%d", start, end)
	}

	all := ParsePage(httptest.NewRequest(http.MethodGet, "/?limit=-1", nil), 0)
	if start, end := all.Bounds(7); start != 0 || end != 7 {
		t.Fatalf("expected everything, got %d..%d", start, end)
	}

	capped := ParsePage(httptest.NewRequest(http.MethodGet, "/?limit=500", nil), 100)
	if capped.Limit != 100 {
		t.Fatalf("expected limit capped at 100, got %d", capped.Limit)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{"2024-03-01", "01-03-2024", "2024-03-01T00:00:00Z"} {
		got, err := ParseDate(raw)
		if err != nil || !got.Equal(want) {
			t.Fatalf("expected %s for %q, got %s (%v)", want, raw, got, err)
		}
	}
	if _, err := ParseDate("March 1st"); err == nil {
		t.Fatal("expected unparsable date to fail")
	}
	if got, err := ParseDate(""); err != nil || !got.IsZero() {
		t.Fatalf("expected zero time for empty input, got %s %v", got, err)
	}
}
