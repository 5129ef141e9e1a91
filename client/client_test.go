package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jrsteele09/go-admin-client/client"
	"github.com/jrsteele09/go-admin-client/credentials"
	fakecredentialsrepo "github.com/jrsteele09/go-admin-client/credentials/repofake"
	"github.com/jrsteele09/go-admin-client/internal/config"
	"github.com/stretchr/testify/require"
)

const (
	oldAccessToken  = "old-access-token"
	newAccessToken  = "new-access-token"
	oldRefreshToken = "old-refresh-token"
	newRefreshToken = "new-refresh-token"
)

type testConfig struct {
	config.EnvVars
	baseURL string
}

func (c testConfig) GetBaseURL() string { return c.baseURL }

// fixture wires a client against a test server with a fresh credential repo.
type fixture struct {
	client *client.Client
	creds  credentials.Repo
	server *httptest.Server
}

func setup(t *testing.T, handler http.Handler, options ...client.Option) *fixture {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	creds := fakecredentialsrepo.NewFakeCredentialsRepo()
	c, err := client.New(testConfig{baseURL: server.URL}, creds, options...)
	require.NoError(t, err)

	return &fixture{client: c, creds: creds, server: server}
}

func (f *fixture) storeTokens(t *testing.T, accessToken, refreshToken string) {
	t.Helper()
	require.NoError(t, f.creds.Store(&credentials.Credentials{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}))
}

// refreshingHandler serves /protected only to the renewed token and rotates
// tokens at /auth/refresh, counting every call.
type refreshingHandler struct {
	mux            *http.ServeMux
	refreshCalls   atomic.Int64
	protectedCalls atomic.Int64
	refreshDelay   time.Duration
	refreshStatus  int
}

func newRefreshingHandler() *refreshingHandler {
	h := &refreshingHandler{mux: http.NewServeMux(), refreshStatus: http.StatusOK}

	h.mux.HandleFunc("GET /protected", func(w http.ResponseWriter, r *http.Request) {
		h.protectedCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer "+newAccessToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	})

	h.mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		h.refreshCalls.Add(1)
		time.Sleep(h.refreshDelay)
		if h.refreshStatus != http.StatusOK {
			w.WriteHeader(h.refreshStatus)
			w.Write([]byte(`{"message":"refresh rejected"}`))
			return
		}
		w.Write([]byte(`{"accessToken":"` + newAccessToken + `","refreshToken":"` + newRefreshToken + `"}`))
	})

	return h
}

func (h *refreshingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func TestSendWithoutTokenOmitsAuthorization(t *testing.T) {
	var sawAuthorization atomic.Bool
	f := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawAuthorization.Store(r.Header.Get("Authorization") != "")
		w.Write([]byte(`{}`))
	}))

	_, err := f.client.Send(context.Background(), http.MethodGet, "/anything", nil)
	require.NoError(t, err)
	require.False(t, sawAuthorization.Load())
}

func TestSendAttachesBearerToken(t *testing.T) {
	var gotAuthorization atomic.Value
	f := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	f.storeTokens(t, oldAccessToken, oldRefreshToken)

	_, err := f.client.Send(context.Background(), http.MethodGet, "/anything", nil)
	require.NoError(t, err)
	require.Equal(t, "Bearer "+oldAccessToken, gotAuthorization.Load())
}

func TestSingleRefreshAndRetryOn401(t *testing.T) {
	handler := newRefreshingHandler()
	f := setup(t, handler)
	f.storeTokens(t, oldAccessToken, oldRefreshToken)

	resp, err := f.client.Send(context.Background(), http.MethodGet, "/protected", nil)
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(resp.Body))

	require.Equal(t, int64(1), handler.refreshCalls.Load())
	require.Equal(t, int64(2), handler.protectedCalls.Load())

	stored, err := f.creds.Get()
	require.NoError(t, err)
	require.Equal(t, newAccessToken, stored.AccessToken)
	require.Equal(t, newRefreshToken, stored.RefreshToken)
}

func TestNoSecondRefreshAfterRetried401(t *testing.T) {
	var refreshCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("GET /protected", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		w.Write([]byte(`{"accessToken":"` + newAccessToken + `","refreshToken":"` + newRefreshToken + `"}`))
	})

	f := setup(t, mux)
	f.storeTokens(t, oldAccessToken, oldRefreshToken)

	_, err := f.client.Send(context.Background(), http.MethodGet, "/protected", nil)
	require.Error(t, err)
	require.Equal(t, http.StatusUnauthorized, client.StatusOf(err))
	require.Equal(t, int64(1), refreshCalls.Load())
}

func TestNoRefreshWithoutRefreshToken(t *testing.T) {
	handler := newRefreshingHandler()
	f := setup(t, handler)
	f.storeTokens(t, oldAccessToken, "")

	_, err := f.client.Send(context.Background(), http.MethodGet, "/protected", nil)
	require.Error(t, err)
	require.ErrorIs(t, err, client.ErrNoRefreshToken)
	require.Equal(t, http.StatusUnauthorized, client.StatusOf(err))
	require.Equal(t, int64(0), handler.refreshCalls.Load())
}

func TestRefreshFailureClearsCredentials(t *testing.T) {
	handler := newRefreshingHandler()
	handler.refreshStatus = http.StatusUnauthorized
	f := setup(t, handler)
	f.storeTokens(t, oldAccessToken, oldRefreshToken)

	_, err := f.client.Send(context.Background(), http.MethodGet, "/protected", nil)
	require.Error(t, err)
	require.ErrorIs(t, err, client.ErrSessionExpired)

	stored, getErr := f.creds.Get()
	require.NoError(t, getErr)
	require.Nil(t, stored)
}

func TestNon401ErrorsPropagateUnchanged(t *testing.T) {
	var refreshCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("GET /broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
	})

	f := setup(t, mux)
	f.storeTokens(t, oldAccessToken, oldRefreshToken)

	_, err := f.client.Send(context.Background(), http.MethodGet, "/broken", nil)
	require.Error(t, err)

	var httpErr *client.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
	require.JSONEq(t, `{"message":"boom"}`, string(httpErr.Body))
	require.Equal(t, int64(0), refreshCalls.Load())
}

func TestNetworkErrorWrapped(t *testing.T) {
	f := setup(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	f.server.Close()

	_, err := f.client.Send(context.Background(), http.MethodGet, "/anything", nil)
	require.Error(t, err)

	var netErr *client.NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestConcurrent401sShareOneRefresh(t *testing.T) {
	handler := newRefreshingHandler()
	handler.refreshDelay = 200 * time.Millisecond
	f := setup(t, handler)
	f.storeTokens(t, oldAccessToken, oldRefreshToken)

	const concurrency = 5
	wg := sync.WaitGroup{}
	errs := make([]error, concurrency)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.client.Send(context.Background(), http.MethodGet, "/protected", nil)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, int64(1), handler.refreshCalls.Load())
}

func TestConcurrent401sRefreshIndependentlyWhenNotCoalesced(t *testing.T) {
	const concurrency = 3

	// Hold every stale-token request at the handler until all of them have
	// arrived, so each one sees its 401 before any refresh can land.
	var refreshCalls atomic.Int64
	var stale atomic.Int64
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /protected", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+newAccessToken {
			if stale.Add(1) == concurrency {
				close(release)
			}
			<-release
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		w.Write([]byte(`{"accessToken":"` + newAccessToken + `","refreshToken":"` + newRefreshToken + `"}`))
	})

	f := setup(t, mux, client.WithoutRefreshCoalescing())
	f.storeTokens(t, oldAccessToken, oldRefreshToken)

	wg := sync.WaitGroup{}
	errs := make([]error, concurrency)
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.client.Send(context.Background(), http.MethodGet, "/protected", nil)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	// Last writer wins on the stored pair; every request ran its own exchange.
	require.Equal(t, int64(concurrency), refreshCalls.Load())

	stored, err := f.creds.Get()
	require.NoError(t, err)
	require.Equal(t, newAccessToken, stored.AccessToken)
}
