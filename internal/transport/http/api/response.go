package api

import (
	"errors"
	"log/slog"
	"net/http"

	json "github.com/goccy/go-json"

	"backoffice/internal/platform/errs"
)

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data,omitempty"`
	Error     *Error `json:"error,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message}, RequestID: requestID})
}

func FailWithDetails(w http.ResponseWriter, status int, code, message string, details any, requestID string) {
	WriteJSON(w, status, Envelope{Success: false, Error: &Error{Code: code, Message: message, Details: details}, RequestID: requestID})
}

// FailError writes a domain error with its own status and key. Errors that
// carry no key are logged and reported as fallback.
func FailError(w http.ResponseWriter, err error, fallback, requestID string) {
	var domainErr *errs.Error
	if errors.As(err, &domainErr) {
		Fail(w, domainErr.Status, domainErr.Key, domainErr.Key, requestID)
		return
	}
	slog.Error("request failed", "code", fallback, "err", err, "requestId", requestID)
	Fail(w, http.StatusInternalServerError, fallback, "internal error", requestID)
}
