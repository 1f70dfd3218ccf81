package ati

import (
	"context"
	"time"
)

// DefaultAPIEndpoint is the production Data API v2 endpoint.
const DefaultAPIEndpoint = "https://apirest.atinternet-solutions.com"

// Client is the caller-facing surface of the request builder/executor. The
// format argument on every operation is an optional override: an empty Format
// uses the configured default, and either way the value is revalidated
// against the operation's compatibility set with the usual silent json
// fallback.
type Client interface {
	// GetRows retrieves the total row count for the configured query. The
	// outgoing request forces a minimal single-row page; the true total is
	// reported by the response.
	GetRows(ctx context.Context, format Format) (*Response, error)

	// GetMaxDate retrieves the ISO time until which data is available today.
	// Only the "space" base parameter is sent; it must be present.
	GetMaxDate(ctx context.Context, format Format) (*Response, error)

	// GetData retrieves the data. Without AllRows it issues exactly one call
	// and returns a one-element slice. With AllRows it first checks the row
	// count (always in json), then fetches every page sequentially,
	// returning one Response per page in page order. An upstream error code
	// on the row-count check is returned in-band as the sole element.
	GetData(ctx context.Context, format Format) ([]*Response, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building an ati.Client.
// It is read once at construction; the resulting client is immutable.
type Config struct {
	// Params: request parameters, either a query-string-like string
	// ("a=1&b=2", optionally prefixed with "?" or "&") or a Params /
	// map[string]string mapping. Required.
	Params any

	// Auth: combined "method:credential" string. "apikey:KEY" for API-key
	// auth, "header:B64" for a basic-auth header where B64 encodes
	// "email:password". Required.
	Auth string

	// AllRows: when true, GetData fetches every row of the result set in
	// fixed-size pages instead of a single bounded page.
	AllRows bool

	// DataFormat: preferred response format, one of json/html/xml/csv.
	// Empty or unsupported values fall back to json without error.
	DataFormat Format

	// Optional configurations
	// APIEndpoint: overrides DefaultAPIEndpoint. A schemeless value gets
	// "https://" prepended; a trailing slash is trimmed.
	APIEndpoint string
	// HTTPTimeout: request timeout applied by the transport. Zero means the
	// transport default.
	HTTPTimeout time.Duration
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the transport.
	Logger Logger
}
