package resources_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jrsteele09/go-admin-client/client"
	fakecredentialsrepo "github.com/jrsteele09/go-admin-client/credentials/repofake"
	"github.com/jrsteele09/go-admin-client/internal/config"
	"github.com/jrsteele09/go-admin-client/resources"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	config.EnvVars
	baseURL string
}

func (c testConfig) GetBaseURL() string { return c.baseURL }

// recordedRequest captures what the provider put on the wire.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   string
}

type fixture struct {
	provider *resources.Provider
	last     *recordedRequest
}

// setup serves every request with the given body and records the last request
// seen.
func setup(t *testing.T, responseBody string) *fixture {
	t.Helper()

	last := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*last = recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Body:   string(body),
		}
		w.Write([]byte(responseBody))
	}))
	t.Cleanup(server.Close)

	apiClient, err := client.New(testConfig{baseURL: server.URL}, fakecredentialsrepo.NewFakeCredentialsRepo())
	require.NoError(t, err)

	provider, err := resources.NewProvider(apiClient)
	require.NoError(t, err)

	return &fixture{provider: provider, last: last}
}

func TestListDefaultsPageAndLimit(t *testing.T) {
	f := setup(t, `[]`)

	_, err := f.provider.List(context.Background(), "user", resources.ListQuery{})
	require.NoError(t, err)
	require.Equal(t, "/user", f.last.Path)
	require.Equal(t, "1", f.last.Query.Get("page"))
	require.Equal(t, "10", f.last.Query.Get("limit"))
	require.Empty(t, f.last.Query.Get("sort"))
}

func TestListSerializesSortDirections(t *testing.T) {
	tests := []struct {
		name      string
		direction resources.SortDirection
		want      string
	}{
		{name: "ascending", direction: resources.SortAsc, want: "createdAt"},
		{name: "descending", direction: resources.SortDesc, want: "-createdAt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, `[]`)
			_, err := f.provider.List(context.Background(), "user", resources.ListQuery{
				Sorters: []resources.Sorter{{Field: "createdAt", Direction: tt.direction}},
			})
			require.NoError(t, err)
			require.Equal(t, tt.want, f.last.Query.Get("sort"))
		})
	}
}

func TestListHonorsOnlyFirstSorter(t *testing.T) {
	f := setup(t, `[]`)

	_, err := f.provider.List(context.Background(), "user", resources.ListQuery{
		Sorters: []resources.Sorter{
			{Field: "email", Direction: resources.SortDesc},
			{Field: "createdAt", Direction: resources.SortAsc},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "-email", f.last.Query.Get("sort"))
}

func TestListKeepsEqFiltersAndDropsOthers(t *testing.T) {
	f := setup(t, `[]`)

	_, err := f.provider.List(context.Background(), "user", resources.ListQuery{
		Filters: []resources.Filter{
			{Field: "isActive", Operator: resources.OperatorEq, Value: true},
			{Field: "email", Operator: resources.OperatorContains, Value: "example"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "true", f.last.Query.Get("isActive"))
	require.False(t, f.last.Query.Has("email"))
}

func TestListLocationOverridesDefaultPage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		location url.Values
		want     string
	}{
		{name: "currentPage wins over default", page: 0, location: url.Values{"currentPage": {"3"}}, want: "3"},
		{name: "current wins over default", page: 1, location: url.Values{"current": {"5"}}, want: "5"},
		{name: "explicit page wins over location", page: 2, location: url.Values{"currentPage": {"7"}}, want: "2"},
		{name: "garbage location ignored", page: 1, location: url.Values{"currentPage": {"abc"}}, want: "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, `[]`)
			_, err := f.provider.List(context.Background(), "user", resources.ListQuery{
				Pagination: resources.Pagination{Page: tt.page},
				Location:   tt.location,
			})
			require.NoError(t, err)
			require.Equal(t, tt.want, f.last.Query.Get("page"))
		})
	}
}

func TestListNormalizesEnvelope(t *testing.T) {
	f := setup(t, `{"data": [{"_id": "a"}, {"_id": "b"}], "total": 42}`)

	list, err := f.provider.List(context.Background(), "user", resources.ListQuery{})
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	require.Equal(t, 42, list.Total)
}

func TestListNormalizesBareArray(t *testing.T) {
	f := setup(t, `[{"_id": "a"}, {"_id": "b"}, {"_id": "c"}]`)

	list, err := f.provider.List(context.Background(), "user", resources.ListQuery{})
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	require.Equal(t, 3, list.Total)
}

func TestListEnvelopeWithoutTotalFallsBackToLength(t *testing.T) {
	f := setup(t, `{"data": [{"_id": "a"}]}`)

	list, err := f.provider.List(context.Background(), "user", resources.ListQuery{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	require.Equal(t, 1, list.Total)
}

func TestListNonArrayDataYieldsEmptyList(t *testing.T) {
	f := setup(t, `{"data": {"unexpected": true}, "total": 9}`)

	list, err := f.provider.List(context.Background(), "user", resources.ListQuery{})
	require.NoError(t, err)
	require.Empty(t, list.Items)
	require.Equal(t, 9, list.Total)
}

func TestCRUDMethodsAndPaths(t *testing.T) {
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		f := setup(t, `{"_id": "u1"}`)
		res, err := f.provider.Get(ctx, "user", "u1")
		require.NoError(t, err)
		require.Equal(t, http.MethodGet, f.last.Method)
		require.Equal(t, "/user/u1", f.last.Path)
		require.JSONEq(t, `{"_id": "u1"}`, string(res.Item))
	})

	t.Run("create", func(t *testing.T) {
		f := setup(t, `{"_id": "new"}`)
		_, err := f.provider.Create(ctx, "reports", map[string]string{"category": "spam"})
		require.NoError(t, err)
		require.Equal(t, http.MethodPost, f.last.Method)
		require.Equal(t, "/reports", f.last.Path)
		require.JSONEq(t, `{"category": "spam"}`, f.last.Body)
	})

	t.Run("update", func(t *testing.T) {
		f := setup(t, `{"_id": "u1"}`)
		_, err := f.provider.Update(ctx, "user", "u1", map[string]bool{"isActive": false})
		require.NoError(t, err)
		require.Equal(t, http.MethodPut, f.last.Method)
		require.Equal(t, "/user/u1", f.last.Path)
		require.JSONEq(t, `{"isActive": false}`, f.last.Body)
	})

	t.Run("delete", func(t *testing.T) {
		f := setup(t, `{}`)
		_, err := f.provider.Delete(ctx, "user", "u1")
		require.NoError(t, err)
		require.Equal(t, http.MethodDelete, f.last.Method)
		require.Equal(t, "/user/u1", f.last.Path)
	})
}

func TestCustomGetSerializesAllFiltersVerbatim(t *testing.T) {
	f := setup(t, `[]`)

	_, err := f.provider.Custom(context.Background(), resources.CustomRequest{
		URL: "/matching/user/u1",
		Filters: []resources.Filter{
			{Field: "status", Operator: resources.OperatorContains, Value: "active"},
			{Field: "limit", Operator: resources.OperatorEq, Value: 50},
		},
		Sorters: []resources.Sorter{{Field: "matchDate", Direction: resources.SortDesc}},
	})
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, f.last.Method)
	require.Equal(t, "/matching/user/u1", f.last.Path)
	require.Equal(t, "active", f.last.Query.Get("status"))
	require.Equal(t, "50", f.last.Query.Get("limit"))
	require.Equal(t, "-matchDate", f.last.Query.Get("sort"))
}

func TestCustomDeleteCarriesBody(t *testing.T) {
	f := setup(t, `{}`)

	_, err := f.provider.Custom(context.Background(), resources.CustomRequest{
		URL:    "/photos/bulk",
		Method: "delete",
		Body:   map[string][]string{"ids": {"p1", "p2"}},
	})
	require.NoError(t, err)
	require.Equal(t, http.MethodDelete, f.last.Method)
	require.JSONEq(t, `{"ids": ["p1", "p2"]}`, f.last.Body)
}

func TestCustomPatchSendsBodyWithoutQuery(t *testing.T) {
	f := setup(t, `{}`)

	_, err := f.provider.Custom(context.Background(), resources.CustomRequest{
		URL:     "/reports/r1",
		Method:  http.MethodPatch,
		Body:    map[string]string{"status": "resolved"},
		Filters: []resources.Filter{{Field: "ignored", Operator: resources.OperatorEq, Value: 1}},
	})
	require.NoError(t, err)
	require.Equal(t, http.MethodPatch, f.last.Method)
	require.JSONEq(t, `{"status": "resolved"}`, f.last.Body)
	require.False(t, f.last.Query.Has("ignored"))
}

func TestDecodeItems(t *testing.T) {
	type user struct {
		ID string `json:"_id"`
	}

	list, err := resources.NormalizeList([]byte(`{"data": [{"_id": "a"}, {"_id": "b"}], "total": 2}`))
	require.NoError(t, err)

	users, err := resources.DecodeItems[user](list)
	require.NoError(t, err)
	require.Equal(t, []user{{ID: "a"}, {ID: "b"}}, users)
}
