package shared

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"backoffice/internal/transport/http/api"
)

// DecodeJSON reads the request body into v and writes a 400 response when
// it is not a single valid JSON document. It reports whether decoding
// succeeded.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any, requestID string) bool {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", requestID)
			return false
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return false
	}
	if dec.More() {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "unexpected data after payload", requestID)
		return false
	}
	return true
}
