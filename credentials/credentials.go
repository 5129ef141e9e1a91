package credentials

// Identity is the normalized operator identity cached alongside the tokens.
type Identity struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Role   string `json:"role"`
}

// Credentials is the single active credential set for a session: the bearer
// token pair plus the identity it was issued to. Created on login or token
// refresh, destroyed on logout or an unrecoverable refresh failure.
type Credentials struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Identity     *Identity `json:"identity,omitempty"`
}

// HasAccessToken reports whether an access token is available to attach as a
// bearer credential.
func (c *Credentials) HasAccessToken() bool {
	return c != nil && c.AccessToken != ""
}

// HasRefreshToken reports whether a refresh token is available for renewal.
func (c *Credentials) HasRefreshToken() bool {
	return c != nil && c.RefreshToken != ""
}
