package aticlient

import (
	"fmt"

	"github.com/datapip-io/ati/internal/client"
	"github.com/datapip-io/ati/pkg/ati"
)

// New creates a new Data API client.
func New(config *ati.Config) (ati.Client, error) {
	if config == nil {
		return nil, ati.ErrConfigRequired
	}

	cli, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return cli, nil
}

// NewWithAPIKey creates a client that authenticates with an API key.
func NewWithAPIKey(params any, apiKey string) (ati.Client, error) {
	return New(&ati.Config{
		Params: params,
		Auth:   "apikey:" + apiKey,
	})
}

// NewWithBasicAuth creates a client that authenticates with a basic-auth
// header. credential is the base64 encoding of "email:password".
func NewWithBasicAuth(params any, credential string) (ati.Client, error) {
	return New(&ati.Config{
		Params: params,
		Auth:   "header:" + credential,
	})
}
