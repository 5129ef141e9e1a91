package client

import (
	"net/http"
	"strings"
	"time"

	"github.com/jrsteele09/go-admin-client/credentials"
	"github.com/jrsteele09/go-admin-client/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const defaultTimeout = 30 * time.Second

// Client issues REST calls against the admin API. Every request reads the
// current access token from the credential repo and attaches it as a bearer
// credential; a 401 triggers a single refresh-and-retry cycle. Token state
// lives entirely in the credential repo - there is no ambient default-header
// state shared between requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      credentials.Repo
	logger     zerolog.Logger

	refreshGroup *singleflight.Group
	coalesce     bool
}

// Option defines a function type to modify the Client instance.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport (primarily for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithoutRefreshCoalescing makes concurrent 401s each run their own refresh
// cycle instead of sharing one in-flight refresh. Last writer wins on the
// stored tokens.
func WithoutRefreshCoalescing() Option {
	return func(c *Client) {
		c.coalesce = false
	}
}

// New initializes a Client against the configured base URL.
func New(cfg config.EnvConfig, creds credentials.Repo, options ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("[client.New] config is required")
	}
	if creds == nil {
		return nil, errors.New("[client.New] credentials repo is required")
	}

	timeout, err := time.ParseDuration(cfg.GetHTTPTimeout())
	if err != nil {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL:      strings.TrimRight(cfg.GetBaseURL(), "/"),
		httpClient:   &http.Client{Timeout: timeout},
		creds:        creds,
		logger:       zerolog.Nop(),
		refreshGroup: &singleflight.Group{},
		coalesce:     true,
	}

	for _, opt := range options {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the origin all requests are issued against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Credentials returns the credential repo backing this client.
func (c *Client) Credentials() credentials.Repo {
	return c.creds
}
