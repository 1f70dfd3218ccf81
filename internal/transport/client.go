// Package transport implements the HTTP collaborator the client delegates
// to. It issues GET requests through resty and hands back raw responses; it
// never retries and never interprets status codes.
package transport

import (
	"context"
	"fmt"
	"time"

	"github.com/datapip-io/ati/pkg/ati"
	"github.com/go-resty/resty/v2"
)

const defaultUserAgent = "ati-go-client/1.0"

// Client wraps a resty client scoped to one API endpoint.
type Client struct {
	rc      *resty.Client
	baseURL string
	logger  ati.Logger
	debug   bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug request/response logging.
func WithLogger(logger ati.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.rc.SetHeader("User-Agent", userAgent)
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.rc.SetTimeout(timeout)
	}
}

// NewClient creates a transport client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		rc:      resty.New(),
		baseURL: baseURL,
	}
	client.rc.SetHeader("User-Agent", defaultUserAgent)

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Get issues a GET request to path with the given query parameters and
// headers. Transport failures are returned as errors; any HTTP response,
// 2xx or not, is returned as-is.
func (c *Client) Get(ctx context.Context, path string, query map[string]string, headers map[string]string) (*ati.Response, error) {
	req := c.rc.R().SetContext(ctx)

	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	if len(headers) > 0 {
		req.SetHeaders(headers)
	}

	url := c.baseURL + path

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": "GET",
			"url":    url,
			"query":  query,
		})
	}

	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"url":    url,
			"status": resp.StatusCode(),
			"bytes":  len(resp.Body()),
		})
	}

	return &ati.Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Headers:    resp.Header(),
		Body:       resp.Body(),
	}, nil
}
