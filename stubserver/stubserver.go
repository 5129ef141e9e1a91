package stubserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-admin-client/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Server is an in-memory rendition of the admin API, used for local
// development and contract tests. It speaks the same login/refresh/me and
// CRUD contract the real backend does.
type Server struct {
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	store     *store
	tokens    *tokenManager
	passwords map[string]string // email -> bcrypt hash
	logger    zerolog.Logger
	env       string
}

// Option defines a function type to modify the Server instance.
type Option func(*Server)

// WithLogger sets the logger used for request logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New initializes the stub server and seeds the admin account plus one
// regular user (useful for exercising the role gate).
func New(cfg config.Config, options ...Option) (*Server, error) {
	s := &Server{
		mux:       http.NewServeMux(),
		config:    cfg,
		store:     newStore(),
		tokens:    newTokenManager(cfg),
		passwords: make(map[string]string),
		logger:    zerolog.Nop(),
		env:       cfg.GetEnv(),
	}

	for _, opt := range options {
		opt(s)
	}

	if err := s.seedUsers(); err != nil {
		return nil, errors.Wrap(err, "[stubserver.New] seedUsers")
	}

	s.initRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// RegisterRouteFunc registers an extra handler, e.g. for test-only routes.
func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// SeedRecord inserts a record directly into a collection, bypassing HTTP.
// Useful for fixtures in contract tests.
func (s *Server) SeedRecord(resource string, record Record) Record {
	return s.store.insert(resource, record)
}

// Records returns every record of a collection.
func (s *Server) Records(resource string) []Record {
	return s.store.all(resource)
}

func (s *Server) seedUsers() error {
	if err := s.seedUser(s.config.GetSeedAdminEmail(), s.config.GetSeedAdminPassword(), "super_admin", "CosmicOtter"); err != nil {
		return err
	}
	return s.seedUser("user@example.com", "user1234", "user", "BouncyBadger")
}

func (s *Server) seedUser(email, password, role, randomName string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "[Server.seedUser] GenerateFromPassword")
	}
	s.passwords[email] = string(hash)
	s.store.insert("user", Record{
		"_id":        uuid.New().String(),
		"email":      email,
		"role":       role,
		"randomName": randomName,
		"isActive":   true,
		"isBanned":   false,
	})
	return nil
}

type contextKey string

const userIDKey contextKey = "userID"

// requireAuth rejects requests without a valid bearer token and stashes the
// subject user id in the request context.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Missing bearer token")
			return
		}
		userID, err := s.tokens.verifyAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	}
}

// loggingMiddleware traces requests in development.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.env == "DEV" {
			s.logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
		}
		next(w, r)
	}
}

func chainMiddleware(routeFunction http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	chainedHandler := routeFunction
	// Apply middleware in reverse order
	for i := len(mw) - 1; i >= 0; i-- {
		chainedHandler = mw[i](chainedHandler)
	}
	return chainedHandler
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(err, "decode body")
	}
	return nil
}

func requestUserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}
