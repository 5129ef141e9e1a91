package credentials

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenClaims is the informational view of an access token's registered
// claims. The server remains the authority on token validity; these values
// are only used for logging and diagnostics.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// InspectAccessToken parses the access token without verifying its signature
// and returns its registered claims. Clients never hold the signing key, so
// verification is not possible (nor needed) on this side.
func InspectAccessToken(rawToken string) (*TokenClaims, error) {
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(rawToken, &claims); err != nil {
		return nil, errors.Wrap(err, "[InspectAccessToken] ParseUnverified")
	}

	tc := &TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		tc.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		tc.ExpiresAt = claims.ExpiresAt.Time
	}
	return tc, nil
}
