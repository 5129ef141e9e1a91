package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-admin-client/credentials"
	"github.com/pkg/errors"
)

// RequestOptions carries the optional parts of a request.
type RequestOptions struct {
	Query   url.Values
	Body    any
	Headers http.Header
}

// Response is a settled 2xx response with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrap(err, "[Response.Decode] Unmarshal")
	}
	return nil
}

// Send issues a request against the admin API. On a 401 it runs a single
// refresh-and-retry cycle; every other failure propagates unchanged.
func (c *Client) Send(ctx context.Context, method, path string, opts *RequestOptions) (*Response, error) {
	return c.send(ctx, method, path, opts, 0)
}

// send carries an explicit attempt counter so a request is retried at most
// once no matter how many 401s recur.
func (c *Client) send(ctx context.Context, method, path string, opts *RequestOptions, attempt int) (*Response, error) {
	creds, err := c.creds.Get()
	if err != nil {
		return nil, errors.Wrap(err, "[Client.send] credentials.Get")
	}

	resp, err := c.do(ctx, method, path, opts, creds)
	if err == nil {
		return resp, nil
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) || httpErr.Status != http.StatusUnauthorized || attempt > 0 {
		return nil, err
	}

	if !creds.HasRefreshToken() {
		return nil, fmt.Errorf("%w: %w", ErrNoRefreshToken, err)
	}

	if refreshErr := c.refresh(ctx, creds.RefreshToken); refreshErr != nil {
		return nil, refreshErr
	}

	return c.send(ctx, method, path, opts, attempt+1)
}

// do executes a single request attempt without any retry handling.
func (c *Client) do(ctx context.Context, method, path string, opts *RequestOptions, creds *credentials.Credentials) (*Response, error) {
	reqURL := c.baseURL + path
	if opts != nil && len(opts.Query) > 0 {
		reqURL += "?" + opts.Query.Encode()
	}

	var bodyReader io.Reader
	if opts != nil && opts.Body != nil {
		data, err := marshalBody(opts.Body)
		if err != nil {
			return nil, errors.Wrap(err, "[Client.do] marshalBody")
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.do] NewRequestWithContext")
	}

	if opts != nil {
		for key, values := range opts.Headers {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}
	if bodyReader != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if creds.HasAccessToken() {
		req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Str("method", method).Str("path", path).Str("request_id", requestID).Err(err).Msg("transport failure")
		return nil, &NetworkError{Err: err}
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", httpResp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request settled")

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return nil, &HTTPError{Status: httpResp.StatusCode, Body: respBody}
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
	}, nil
}

func marshalBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		return json.Marshal(body)
	}
}
