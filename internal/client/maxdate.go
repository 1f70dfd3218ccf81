package client

import (
	"context"

	"github.com/datapip-io/ati/pkg/ati"
)

// GetMaxDate implements ati.Client.GetMaxDate. The max-date endpoint is
// space-scoped only: the outgoing mapping contains exactly the "space" key
// from the base parameters, everything else is discarded.
func (c *Client) GetMaxDate(ctx context.Context, format ati.Format) (*ati.Response, error) {
	if format == "" {
		format = c.format
	}

	format = ati.ResolveCountFormat(format)

	space, ok := c.params["space"]
	if !ok {
		return nil, ati.ErrSpaceParamRequired
	}

	return c.call(ctx, ati.RouteMaxDate, format, ati.Params{"space": space})
}
