// Package aticlient provides the main entry point for creating AT Internet
// Data API clients.
//
// New accepts an ati.Config and returns an ati.Client:
//
//	cli, err := aticlient.New(&ati.Config{
//	  Params:  "&columns={d_source}&space={s:1234}",
//	  Auth:    "apikey:YOUR_API_KEY",
//	  AllRows: true,
//	})
//
// Convenience constructors cover the two authentication modes directly:
// NewWithAPIKey and NewWithBasicAuth.
package aticlient
