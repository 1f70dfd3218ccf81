package ati

import (
	"fmt"
	"strings"
)

// Params is the normalized query-parameter mapping sent with every request.
type Params map[string]string

// ParseParams normalizes the raw parameter input accepted by Config.Params.
//
// A Params or map[string]string input is used as-is. A string input that does
// not start with "http" is parsed as a query string: one leading "?" and then
// one leading "&" are stripped, the remainder is split on "&", and each pair
// is split on the first "=" only. Any other input fails with
// ErrInvalidParameterFormat.
func ParseParams(input any) (Params, error) {
	switch value := input.(type) {
	case Params:
		return value.Clone(), nil
	case map[string]string:
		return Params(value).Clone(), nil
	case string:
		return parseParamString(value)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidParameterFormat, input)
	}
}

func parseParamString(raw string) (Params, error) {
	if strings.HasPrefix(raw, "http") {
		return nil, fmt.Errorf("%w: got a URL", ErrInvalidParameterFormat)
	}

	raw = strings.TrimPrefix(raw, "?")
	raw = strings.TrimPrefix(raw, "&")

	params := make(Params)

	for _, pair := range strings.Split(raw, "&") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("%w: %q is not a key=value pair", ErrInvalidParameterFormat, pair)
		}

		params[key] = value
	}

	return params, nil
}

// Clone returns a copy of the mapping. Operations copy the base parameters
// before overriding pagination keys so the configured mapping stays immutable.
func (p Params) Clone() Params {
	clone := make(Params, len(p))
	for key, value := range p {
		clone[key] = value
	}

	return clone
}
