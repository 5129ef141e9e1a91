package errors

import "errors"

// Error sentinels shared across the client packages. Each is re-exported by
// the package that surfaces it.
var (
	// ErrSessionExpired: a token refresh failed and the credentials were
	// cleared.
	ErrSessionExpired = errors.New("session expired")

	// ErrNoRefreshToken: a 401 could not be retried because no refresh token
	// is stored.
	ErrNoRefreshToken = errors.New("no refresh token stored")

	// ErrRoleNotPermitted: the user authenticated but does not hold the
	// privileged role.
	ErrRoleNotPermitted = errors.New("role not permitted")
)

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
