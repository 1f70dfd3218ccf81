package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/datapip-io/ati/pkg/ati"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRows_ForcesSingleRowPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/v2/json/getrowcount", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("max-results"))
		assert.Equal(t, "1", r.URL.Query().Get("page-num"))
		assert.Equal(t, "{s:1}", r.URL.Query().Get("space"))

		_, _ = w.Write([]byte(`{"ErrorCode":0,"RowCounts":[{"RowCount":"7"}]}`))
	}))
	defer server.Close()

	// Configured base parameters already carry pagination keys; they are
	// overridden for the row-count call.
	cli := newTestClient(t, server, &ati.Config{
		Params: "space={s:1}&max-results=500&page-num=9",
		Auth:   "header:dXNlcjpwYXNz",
	})

	resp, err := cli.GetRows(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestGetRows_CSVFallsBackToJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/v2/json/getrowcount", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cli := newTestClient(t, server, &ati.Config{Params: "space={s:1}", Auth: "apikey:k"})

	_, err := cli.GetRows(context.Background(), ati.FormatCSV)
	require.NoError(t, err)
}

func TestGetRows_ConfiguredCSVDefaultRevalidated(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/v2/json/getrowcount", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// csv is a valid default for data fetches, but not for row counts.
	cli := newTestClient(t, server, &ati.Config{
		Params:     "space={s:1}",
		Auth:       "apikey:k",
		DataFormat: ati.FormatCSV,
	})

	_, err := cli.GetRows(context.Background(), "")
	require.NoError(t, err)
}

func TestGetRows_XMLOverride(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/v2/xml/getrowcount", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cli := newTestClient(t, server, &ati.Config{Params: "space={s:1}", Auth: "apikey:k"})

	_, err := cli.GetRows(context.Background(), ati.FormatXML)
	require.NoError(t, err)
}
