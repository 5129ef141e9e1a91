package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-admin-client/adminmodel"
	"github.com/jrsteele09/go-admin-client/client"
	"github.com/jrsteele09/go-admin-client/credentials"
	interrors "github.com/jrsteele09/go-admin-client/internal/errors"
	"github.com/jrsteele09/go-admin-client/internal/utils"
	"github.com/pkg/errors"
)

// RoleGateMessage is returned when a correctly authenticated user does not
// hold the privileged role.
const RoleGateMessage = "Only admin users can access this panel."

const fallbackLoginMessage = "Login failed. Please check your credentials."

// ErrRoleNotPermitted is the cause carried by a role-gate rejection.
var ErrRoleNotPermitted = interrors.ErrRoleNotPermitted

// LoginError is the rejection kind surfaced to the login form. Err carries
// the underlying cause when there is one.
type LoginError struct {
	Message string
	Err     error
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("LoginError: %s", e.Message)
}

func (e *LoginError) Unwrap() error {
	return e.Err
}

// LoginResult carries the post-login redirect target.
type LoginResult struct {
	RedirectTo string
}

// LogoutResult carries the post-logout redirect target.
type LogoutResult struct {
	RedirectTo string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	User         adminmodel.User `json:"user"`
}

// Login authenticates against the API and enforces the role gate: tokens
// issued to a non-admin are discarded even though the backend accepted the
// credentials. On success the token pair and identity are persisted.
func (m *Manager) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	resp, err := m.client.Send(ctx, http.MethodPost, "/auth/login", &client.RequestOptions{
		Body: loginRequest{Email: email, Password: password},
	})
	if err != nil {
		return nil, &LoginError{Message: serverMessage(err), Err: err}
	}

	login := loginResponse{}
	if err := resp.Decode(&login); err != nil {
		return nil, &LoginError{Message: fallbackLoginMessage}
	}

	if !login.User.IsSuperAdmin() {
		m.logger.Warn().Str("email", email).Str("role", string(login.User.Role)).Msg("login rejected by role gate")
		return nil, &LoginError{Message: RoleGateMessage, Err: ErrRoleNotPermitted}
	}

	if err := m.creds.Store(&credentials.Credentials{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
		Identity:     identityFromUser(&login.User),
	}); err != nil {
		return nil, &LoginError{Message: fallbackLoginMessage, Err: err}
	}

	m.logger.Info().Str("email", email).Msg("logged in")
	return &LoginResult{RedirectTo: LoginRedirect}, nil
}

// Logout ends the session locally. It always succeeds and never needs server
// confirmation, so calling it on an already ended session is a no-op.
func (m *Manager) Logout(ctx context.Context) (*LogoutResult, error) {
	if err := m.creds.Clear(); err != nil {
		m.logger.Warn().Err(err).Msg("failed to clear credentials on logout")
	}
	m.logger.Info().Msg("logged out")
	return &LogoutResult{RedirectTo: LogoutRedirect}, nil
}

// serverMessage pulls the human-readable message out of an API error body,
// falling back to a generic one.
func serverMessage(err error) string {
	var httpErr *client.HTTPError
	if !errors.As(err, &httpErr) {
		return fallbackLoginMessage
	}
	body := struct {
		Message string `json:"message"`
	}{}
	if jsonErr := json.Unmarshal(httpErr.Body, &body); jsonErr != nil || body.Message == "" {
		return fallbackLoginMessage
	}
	return body.Message
}

// identityFromUser normalizes the API user into the cached identity shape,
// preferring the random display name over the email address.
func identityFromUser(user *adminmodel.User) *credentials.Identity {
	name := utils.FirstNonEmpty(user.RandomName, user.Email)
	return &credentials.Identity{
		ID:     user.ID,
		Name:   name,
		Email:  user.Email,
		Avatar: avatarURL(user.RandomName),
		Role:   string(user.Role),
	}
}

func avatarURL(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=C3E8EB&color=0a0a0a&bold=true", url.QueryEscape(name))
}
