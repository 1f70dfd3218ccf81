package ati_test

import (
	"encoding/json"
	"testing"

	"github.com/datapip-io/ati/pkg/ati"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowCount(t *testing.T) {
	t.Parallel()

	doc, err := ati.ParseRowCount([]byte(`{"ErrorCode":0,"RowCounts":[{"RowCount":"25000"}]}`))
	require.NoError(t, err)
	assert.True(t, doc.ErrorCode.IsZero())

	rows, err := doc.Rows()
	require.NoError(t, err)
	assert.Equal(t, 25000, rows)
}

func TestParseRowCount_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ati.ParseRowCount([]byte("<html>not json</html>"))
	require.Error(t, err)
}

func TestRowCountDocument_Rows_Errors(t *testing.T) {
	t.Parallel()

	t.Run("empty row counts", func(t *testing.T) {
		t.Parallel()

		doc := &ati.RowCountDocument{}
		_, err := doc.Rows()
		require.ErrorIs(t, err, ati.ErrEmptyRowCounts)
	})

	t.Run("non numeric row count", func(t *testing.T) {
		t.Parallel()

		doc := &ati.RowCountDocument{RowCounts: []ati.RowCountEntry{{RowCount: "lots"}}}
		_, err := doc.Rows()
		require.Error(t, err)
	})
}

//nolint:funlen // Test functions can be longer for detailed testing
func TestErrorCode_IsZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		body   string
		isZero bool
	}{
		{name: "number zero", body: `{"ErrorCode":0}`, isZero: true},
		{name: "number nonzero", body: `{"ErrorCode":1103}`, isZero: false},
		{name: "empty string", body: `{"ErrorCode":""}`, isZero: true},
		{name: "nonempty string", body: `{"ErrorCode":"1103"}`, isZero: false},
		{name: "null", body: `{"ErrorCode":null}`, isZero: true},
		{name: "absent", body: `{}`, isZero: true},
		{name: "false", body: `{"ErrorCode":false}`, isZero: true},
		{name: "true", body: `{"ErrorCode":true}`, isZero: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var doc ati.RowCountDocument

			require.NoError(t, json.Unmarshal([]byte(tt.body), &doc))
			assert.Equal(t, tt.isZero, doc.ErrorCode.IsZero())
		})
	}
}

func TestErrorCode_RoundTrip(t *testing.T) {
	t.Parallel()

	var doc ati.RowCountDocument

	require.NoError(t, json.Unmarshal([]byte(`{"ErrorCode":"1103"}`), &doc))
	assert.Equal(t, "1103", doc.ErrorCode.String())

	encoded, err := json.Marshal(doc.ErrorCode)
	require.NoError(t, err)
	assert.Equal(t, `"1103"`, string(encoded))
}

func TestPageCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rows     int
		expected int
	}{
		{name: "zero rows", rows: 0, expected: 0},
		{name: "negative rows", rows: -5, expected: 0},
		{name: "single partial page", rows: 1, expected: 1},
		{name: "exact page boundary", rows: 10000, expected: 1},
		{name: "one past boundary", rows: 10001, expected: 2},
		{name: "two and a half pages", rows: 25000, expected: 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, ati.PageCount(tt.rows))
		})
	}
}

func TestResponse_JSON(t *testing.T) {
	t.Parallel()

	resp := &ati.Response{Body: []byte(`{"MaxDate":"2026-01-31T14:00:00"}`)}

	var decoded map[string]string

	require.NoError(t, resp.JSON(&decoded))
	assert.Equal(t, "2026-01-31T14:00:00", decoded["MaxDate"])
}
