package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a caller-visible validation failure: an HTTP-style status and a
// machine-readable key. Presentation of the key is left to the caller.
type Error struct {
	Status int
	Key    string
}

func New(status int, key string) *Error {
	return &Error{Status: status, Key: key}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Key)
}

// Is matches on the key so that copies of a sentinel compare equal.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Status == other.Status && e.Key == other.Key
}

// StatusOf returns the status carried by err, or 500 for foreign errors.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// KeyOf returns the key carried by err, or fallback for foreign errors.
func KeyOf(err error, fallback string) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Key
	}
	return fallback
}
