package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the backend could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means the backend rejected the credentials or token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound means the requested resource does not exist.
	ErrNotFound = errors.New("not found")
)

// Error carries a non-2xx response that is not covered by a sentinel.
// Detail is the backend's "detail" message when the body was decodable.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error: status=%d detail=%s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error: status=%d", e.StatusCode)
}
