package shared

import (
	"net/http"
	"strconv"
)

// Page is a limit/offset window over a result list. A zero Limit means
// everything from Offset on.
type Page struct {
	Limit  int
	Offset int
}

func ParsePage(r *http.Request, maxLimit int) Page {
	var p Page
	query := r.URL.Query()
	if v, err := strconv.Atoi(query.Get("limit")); err == nil && v > 0 {
		p.Limit = v
	}
	if v, err := strconv.Atoi(query.Get("offset")); err == nil && v >= 0 {
		p.Offset = v
	}
	if maxLimit > 0 && (p.Limit == 0 || p.Limit > maxLimit) {
		p.Limit = maxLimit
	}
	return p
}

// Bounds clamps the window to a list of n elements.
func (p Page) Bounds(n int) (start, end int) {
	start = min(p.Offset, n)
	end = n
	if p.Limit > 0 {
		end = min(start+p.Limit, n)
	}
	return start, end
}
