package ati_test

import (
	"testing"

	"github.com/datapip-io/ati/pkg/ati"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected ati.Credentials
	}{
		{
			name:     "api key",
			input:    "apikey:ABC123",
			expected: ati.Credentials{Scheme: ati.AuthAPIKey, APIKey: "ABC123"},
		},
		{
			name:     "api key keeps everything after first colon",
			input:    "apikey:abc:def",
			expected: ati.Credentials{Scheme: ati.AuthAPIKey, APIKey: "abc:def"},
		},
		{
			name:     "header auth",
			input:    "header:dXNlcjpwYXNz",
			expected: ati.Credentials{Scheme: ati.AuthHeader, Header: "Basic dXNlcjpwYXNz"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			creds, err := ati.ParseAuth(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, creds)
		})
	}
}

func TestParseAuth_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "unknown method", input: "ftp:x"},
		{name: "missing colon", input: "apikey"},
		{name: "case sensitive", input: "ApiKey:x"},
		{name: "empty string", input: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ati.ParseAuth(tt.input)
			require.ErrorIs(t, err, ati.ErrInvalidAuthFormat)
		})
	}
}

func TestParseAuth_ErrorOmitsCredential(t *testing.T) {
	t.Parallel()

	_, err := ati.ParseAuth("bearer:super-secret-token")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "super-secret-token")
}

func TestAuthScheme_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "apikey", ati.AuthAPIKey.String())
	assert.Equal(t, "header", ati.AuthHeader.String())
}
