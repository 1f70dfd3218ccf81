package ati

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Response is the raw result of one HTTP call. It is owned by the caller and
// not retained by the client. Status codes are reported, never interpreted:
// a non-2xx response is still a Response, not an error.
type Response struct {
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
}

// JSON decodes the response body into out.
func (r *Response) JSON(out any) error {
	err := json.Unmarshal(r.Body, out)
	if err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// RowCountDocument is the JSON shape returned by the getrowcount route.
type RowCountDocument struct {
	ErrorCode ErrorCode       `json:"ErrorCode"`
	RowCounts []RowCountEntry `json:"RowCounts"`
}

// RowCountEntry carries one row count, encoded upstream as a string.
type RowCountEntry struct {
	RowCount string `json:"RowCount"`
}

// Rows returns the total row count from the first entry.
func (d *RowCountDocument) Rows() (int, error) {
	if len(d.RowCounts) == 0 {
		return 0, ErrEmptyRowCounts
	}

	rows, err := strconv.Atoi(d.RowCounts[0].RowCount)
	if err != nil {
		return 0, fmt.Errorf("parsing row count %q: %w", d.RowCounts[0].RowCount, err)
	}

	return rows, nil
}

// ParseRowCount decodes a getrowcount response body.
func ParseRowCount(body []byte) (*RowCountDocument, error) {
	var doc RowCountDocument

	err := json.Unmarshal(body, &doc)
	if err != nil {
		return nil, fmt.Errorf("parsing row count document: %w", err)
	}

	return &doc, nil
}

// ErrorCode is the upstream error indicator. The API is loose about its type
// (number, string, bool, or null), so the raw JSON scalar is kept and
// truthiness follows the upstream contract: any non-zero number, non-empty
// string, or true signals an error.
type ErrorCode struct {
	raw json.RawMessage
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ErrorCode) UnmarshalJSON(data []byte) error {
	e.raw = append(e.raw[:0], data...)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (e ErrorCode) MarshalJSON() ([]byte, error) {
	if len(e.raw) == 0 {
		return []byte("null"), nil
	}

	return e.raw, nil
}

// IsZero reports whether the code signals "no error": absent, null, false,
// the number zero, or an empty string.
func (e ErrorCode) IsZero() bool {
	raw := bytes.TrimSpace(e.raw)

	switch {
	case len(raw) == 0:
		return true
	case bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte("false")):
		return true
	case raw[0] == '"':
		return bytes.Equal(raw, []byte(`""`))
	case bytes.Equal(raw, []byte("true")):
		return false
	default:
		value, err := strconv.ParseFloat(string(raw), 64)

		return err == nil && value == 0
	}
}

// String implements fmt.Stringer.
func (e ErrorCode) String() string {
	return strings.Trim(string(e.raw), `"`)
}

// AllRowsPageSize is the fixed page size used by all-rows pagination.
const AllRowsPageSize = 10000

// PageCount returns the number of pages needed to fetch rows in pages of
// AllRowsPageSize. Zero or negative row counts need zero pages.
func PageCount(rows int) int {
	if rows <= 0 {
		return 0
	}

	return (rows + AllRowsPageSize - 1) / AllRowsPageSize
}
