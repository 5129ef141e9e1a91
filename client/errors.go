package client

import (
	"fmt"

	interrors "github.com/jrsteele09/go-admin-client/internal/errors"
)

// ErrSessionExpired signals that a token refresh failed and the stored
// credentials were cleared. Callers should redirect to login.
var ErrSessionExpired = interrors.ErrSessionExpired

// ErrNoRefreshToken marks a 401 that could not be retried because no refresh
// token is stored. The original HTTPError stays in the chain.
var ErrNoRefreshToken = interrors.ErrNoRefreshToken

// HTTPError is a response with a non-2xx status. The body is kept verbatim
// so the caller can surface the server's message.
type HTTPError struct {
	Status int
	Body   []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: status %d", e.Status)
}

// NetworkError is a transport failure: the request never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an
// HTTPError.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if interrors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}
