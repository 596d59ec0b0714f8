package api

import (
	"fmt"
	"net/http"
)

// Error carries the server's failure payload back to the caller: the
// HTTP status, the envelope message and any field-level validation errors.
type Error struct {
	StatusCode  int
	Message     string
	FieldErrors map[string][]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.StatusCode)
}

// IsAuthFailure reports whether the failure was an authorization rejection,
// the signal the request pipeline refreshes on.
func (e *Error) IsAuthFailure() bool {
	return e.StatusCode == http.StatusUnauthorized
}
