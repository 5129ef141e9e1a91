package auth

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-admin-client/adminmodel"
	"github.com/jrsteele09/go-admin-client/client"
	"github.com/jrsteele09/go-admin-client/credentials"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	// LoginRedirect is where a successful login lands.
	LoginRedirect = "/"
	// LogoutRedirect is where an ended or rejected session lands.
	LogoutRedirect = "/login"
)

// Manager drives the session lifecycle over the HTTP client core: login with
// a privileged-role gate, local logout, empirical session checks, and
// identity/permission queries.
type Manager struct {
	client *client.Client
	creds  credentials.Repo
	logger zerolog.Logger
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithLogger sets the logger used for session events.
func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager initializes a Manager on top of an existing client. The manager
// shares the client's credential repo so refreshed tokens are visible to both.
func NewManager(c *client.Client, options ...ManagerOption) (*Manager, error) {
	if c == nil {
		return nil, errors.New("[NewManager] client is required")
	}

	m := &Manager{
		client: c,
		creds:  c.Credentials(),
		logger: zerolog.Nop(),
	}

	for _, opt := range options {
		opt(m)
	}

	return m, nil
}

// CheckResult reports whether the session is currently authenticated and
// where to send the operator when it is not.
type CheckResult struct {
	Authenticated bool
	RedirectTo    string
}

// Check verifies the session empirically: no stored token means
// unauthenticated, otherwise the identity endpoint decides. Any failure
// clears the stored credentials. Check never returns the underlying error -
// route guards poll it opportunistically.
func (m *Manager) Check(ctx context.Context) CheckResult {
	creds, err := m.creds.Get()
	if err != nil || !creds.HasAccessToken() {
		return CheckResult{Authenticated: false, RedirectTo: LogoutRedirect}
	}

	if _, err := m.client.Send(ctx, http.MethodGet, "/user/me", nil); err != nil {
		m.logger.Debug().Err(err).Msg("session check failed, clearing credentials")
		if clearErr := m.creds.Clear(); clearErr != nil {
			m.logger.Warn().Err(clearErr).Msg("failed to clear credentials")
		}
		return CheckResult{Authenticated: false, RedirectTo: LogoutRedirect}
	}

	return CheckResult{Authenticated: true}
}

// GetIdentity fetches the current operator's normalized identity. It returns
// nil rather than an error when no session exists or the call fails.
func (m *Manager) GetIdentity(ctx context.Context) *credentials.Identity {
	creds, err := m.creds.Get()
	if err != nil || !creds.HasAccessToken() {
		return nil
	}

	resp, err := m.client.Send(ctx, http.MethodGet, "/user/me", nil)
	if err != nil {
		return nil
	}

	user := adminmodel.User{}
	if err := resp.Decode(&user); err != nil {
		return nil
	}

	return identityFromUser(&user)
}

// GetPermissions returns the locally cached role without hitting the network.
func (m *Manager) GetPermissions() string {
	creds, err := m.creds.Get()
	if err != nil || creds == nil || creds.Identity == nil {
		return ""
	}
	return creds.Identity.Role
}

// ErrorAction tells the caller how to react to a failed operation.
type ErrorAction struct {
	Logout     bool
	RedirectTo string
	Err        error
}

// OnError classifies an error: 401 and 403 are authentication faults that end
// the session, everything else passes through unmodified.
func (m *Manager) OnError(err error) ErrorAction {
	status := client.StatusOf(err)
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return ErrorAction{Logout: true, RedirectTo: LogoutRedirect, Err: err}
	}
	return ErrorAction{Err: err}
}
