package ati

import "errors"

// Static errors for err113 compliance.
var (
	// ErrInvalidParameterFormat is returned at construction when the params
	// input is neither a recognized parameter string nor a key/value mapping.
	ErrInvalidParameterFormat = errors.New("parameters must either be a string separated by '&' or a key/value mapping")

	// ErrInvalidAuthFormat is returned at construction when the auth string
	// lacks a recognized method prefix.
	ErrInvalidAuthFormat = errors.New("authentication string must start with either 'apikey:' or 'header:'")

	// ErrSpaceParamRequired is returned by GetMaxDate when the base
	// parameters carry no "space" key.
	ErrSpaceParamRequired = errors.New("base parameters must contain a 'space' key")

	ErrConfigRequired = errors.New("config is required")
	ErrEmptyRowCounts = errors.New("row count response contains no row counts")
)
