package resources

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jrsteele09/go-admin-client/client"
	"github.com/pkg/errors"
)

// Provider translates abstract list/get/create/update/delete operations into
// REST calls through the HTTP client core. It adds no error handling of its
// own: retry and refresh live entirely in the client.
type Provider struct {
	client *client.Client
}

// NewProvider initializes a Provider over an existing client.
func NewProvider(c *client.Client) (*Provider, error) {
	if c == nil {
		return nil, errors.New("[NewProvider] client is required")
	}
	return &Provider{client: c}, nil
}

// List fetches a page of a resource and normalizes the response envelope.
func (p *Provider) List(ctx context.Context, resource string, query ListQuery) (ListResult, error) {
	resp, err := p.client.Send(ctx, http.MethodGet, "/"+resource, &client.RequestOptions{
		Query: query.values(),
	})
	if err != nil {
		return ListResult{}, err
	}
	return NormalizeList(resp.Body)
}

// Get fetches one record by id.
func (p *Provider) Get(ctx context.Context, resource, id string) (Result, error) {
	resp, err := p.client.Send(ctx, http.MethodGet, fmt.Sprintf("/%s/%s", resource, id), nil)
	if err != nil {
		return Result{}, err
	}
	return Result{Item: resp.Body}, nil
}

// Create posts a new record and returns the created representation.
func (p *Provider) Create(ctx context.Context, resource string, body any) (Result, error) {
	resp, err := p.client.Send(ctx, http.MethodPost, "/"+resource, &client.RequestOptions{Body: body})
	if err != nil {
		return Result{}, err
	}
	return Result{Item: resp.Body}, nil
}

// Update replaces a record by id.
func (p *Provider) Update(ctx context.Context, resource, id string, body any) (Result, error) {
	resp, err := p.client.Send(ctx, http.MethodPut, fmt.Sprintf("/%s/%s", resource, id), &client.RequestOptions{Body: body})
	if err != nil {
		return Result{}, err
	}
	return Result{Item: resp.Body}, nil
}

// Delete removes a record by id.
func (p *Provider) Delete(ctx context.Context, resource, id string) (Result, error) {
	resp, err := p.client.Send(ctx, http.MethodDelete, fmt.Sprintf("/%s/%s", resource, id), nil)
	if err != nil {
		return Result{}, err
	}
	return Result{Item: resp.Body}, nil
}

// CustomRequest is an escape hatch for endpoints outside the CRUD shape.
type CustomRequest struct {
	URL     string
	Method  string
	Filters []Filter
	Sorters []Sorter
	Body    any
	Headers http.Header
}

// Custom issues an arbitrary call. For GET-like methods, filters and sorters
// are serialized onto the query string (filters as raw field=value pairs,
// sorters reduced to one sort parameter); mutating methods send the body,
// with DELETE carrying it as the request payload.
func (p *Provider) Custom(ctx context.Context, req CustomRequest) (Result, error) {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}

	opts := &client.RequestOptions{Headers: req.Headers}

	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		opts.Body = req.Body
	default:
		if len(req.Filters) > 0 || len(req.Sorters) > 0 {
			opts.Query = customQuery(req.Filters, req.Sorters)
		}
	}

	resp, err := p.client.Send(ctx, method, req.URL, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Item: resp.Body}, nil
}

func customQuery(filters []Filter, sorters []Sorter) url.Values {
	values := url.Values{}
	for _, filter := range filters {
		values.Set(filter.Field, formatValue(filter.Value))
	}
	if sort := sortParam(sorters); sort != "" {
		values.Set("sort", sort)
	}
	return values
}
