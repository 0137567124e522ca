package client

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes callers branch on with errors.Is.
var (
	// ErrAuthRequired means no valid local session exists; the request was
	// aborted before touching the network.
	ErrAuthRequired = errors.New("authentication required")

	// ErrReloginRequired means the server rejected the token with 401. The
	// local credentials have already been cleared when this is returned.
	ErrReloginRequired = errors.New("session is no longer valid, please log in again")

	// ErrUnavailable means the service could not be reached at all. The
	// session is untouched and the operation is safe to retry.
	ErrUnavailable = errors.New("service unreachable")
)

// APIError is a non-2xx, non-401 response from the service. Detail carries
// the server's human-readable reason verbatim when the body had one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}
