package ati

import (
	"fmt"
	"strings"
)

// AuthScheme selects how credentials are attached to outgoing requests.
type AuthScheme int

const (
	// AuthAPIKey sends the credential as an "apikey" query parameter.
	AuthAPIKey AuthScheme = iota
	// AuthHeader sends the credential as an "authorization" request header.
	AuthHeader
)

// String implements fmt.Stringer.
func (s AuthScheme) String() string {
	switch s {
	case AuthAPIKey:
		return "apikey"
	case AuthHeader:
		return "header"
	default:
		return "unknown"
	}
}

// Credentials is the authentication descriptor resolved once at construction
// from a combined "method:credential" string and never mutated afterwards.
// Exactly one of APIKey or Header is populated, depending on Scheme.
type Credentials struct {
	Scheme AuthScheme
	// APIKey holds the raw key for AuthAPIKey.
	APIKey string
	// Header holds the full header value ("Basic " + credential) for AuthHeader.
	Header string
}

const (
	apiKeyPrefix = "apikey:"
	headerPrefix = "header:"
)

// ParseAuth resolves a combined auth string into Credentials.
//
// "apikey:X" yields API-key credentials with value X; "header:X" yields
// header credentials with value "Basic X". X is everything after the first
// colon. The method prefix is matched exactly and case-sensitively; any other
// input fails with ErrInvalidAuthFormat.
func ParseAuth(auth string) (Credentials, error) {
	switch {
	case strings.HasPrefix(auth, apiKeyPrefix):
		return Credentials{Scheme: AuthAPIKey, APIKey: auth[len(apiKeyPrefix):]}, nil
	case strings.HasPrefix(auth, headerPrefix):
		return Credentials{Scheme: AuthHeader, Header: "Basic " + auth[len(headerPrefix):]}, nil
	default:
		return Credentials{}, fmt.Errorf("%w: got %q", ErrInvalidAuthFormat, truncateForError(auth))
	}
}

// truncateForError keeps credential material out of error messages.
func truncateForError(auth string) string {
	method, _, found := strings.Cut(auth, ":")
	if !found {
		return auth
	}

	return method + ":***"
}
