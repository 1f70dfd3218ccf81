package client

import (
	"context"

	"github.com/datapip-io/ati/pkg/ati"
)

// GetRows implements ati.Client.GetRows. The base parameters are copied and
// the pagination keys forced to a minimal single-row page; the response
// still reports the true total row count.
func (c *Client) GetRows(ctx context.Context, format ati.Format) (*ati.Response, error) {
	if format == "" {
		format = c.format
	}

	format = ati.ResolveCountFormat(format)

	params := c.params.Clone()
	params["max-results"] = "1"
	params["page-num"] = "1"

	return c.call(ctx, ati.RouteRowCount, format, params)
}
