// Package client implements the ati.Client interface: it normalizes
// parameters and credentials at construction time and builds the URL,
// parameters, and headers for each Data API call.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/datapip-io/ati/internal/transport"
	"github.com/datapip-io/ati/pkg/ati"
)

// Client is the request builder/executor. All fields are set at construction
// and never mutated; operations on the same instance are independent.
type Client struct {
	httpClient *transport.Client
	params     ati.Params
	creds      ati.Credentials
	allRows    bool
	format     ati.Format
}

// New creates a Data API client from config. Parameter and auth parsing
// failures are fatal; an unsupported DataFormat silently falls back to json.
func New(config *ati.Config) (*Client, error) {
	if config == nil {
		return nil, ati.ErrConfigRequired
	}

	params, err := ati.ParseParams(config.Params)
	if err != nil {
		return nil, fmt.Errorf("parsing request parameters: %w", err)
	}

	creds, err := ati.ParseAuth(config.Auth)
	if err != nil {
		return nil, fmt.Errorf("parsing auth: %w", err)
	}

	httpClient := transport.NewClient(normalizeEndpoint(config.APIEndpoint), transportOptions(config)...)

	return &Client{
		httpClient: httpClient,
		params:     params,
		creds:      creds,
		allRows:    config.AllRows,
		format:     ati.ResolveDataFormat(config.DataFormat),
	}, nil
}

// normalizeEndpoint applies the default endpoint, trims a trailing slash,
// and adds https:// when no scheme is present.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return ati.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// transportOptions builds transport options from config.
func transportOptions(config *ati.Config) []transport.Option {
	var opts []transport.Option

	if config.Logger != nil {
		opts = append(opts, transport.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, transport.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, transport.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, transport.WithTimeout(config.HTTPTimeout))
	}

	return opts
}

// call issues one GET to /data/v2/{format}/{route}. Header credentials go out
// as an "authorization" header with the parameters untouched; API-key
// credentials extend a copy of the parameters with an "apikey" entry and send
// no auth header.
func (c *Client) call(ctx context.Context, route string, format ati.Format, params ati.Params) (*ati.Response, error) {
	path := fmt.Sprintf("/data/v2/%s/%s", format, route)

	var headers map[string]string

	query := params

	switch c.creds.Scheme {
	case ati.AuthHeader:
		headers = map[string]string{"authorization": c.creds.Header}
	case ati.AuthAPIKey:
		query = params.Clone()
		query["apikey"] = c.creds.APIKey
	}

	resp, err := c.httpClient.Get(ctx, path, query, headers)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", route, err)
	}

	return resp, nil
}
