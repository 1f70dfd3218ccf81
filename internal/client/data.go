package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/datapip-io/ati/pkg/ati"
)

// GetData implements ati.Client.GetData.
func (c *Client) GetData(ctx context.Context, format ati.Format) ([]*ati.Response, error) {
	if format == "" {
		format = c.format
	} else {
		format = ati.ResolveDataFormat(format)
	}

	if !c.allRows {
		resp, err := c.call(ctx, ati.RouteData, format, c.params)
		if err != nil {
			return nil, err
		}

		return []*ati.Response{resp}, nil
	}

	return c.getAllRows(ctx, format)
}

// getAllRows fetches every row of the result set in fixed-size pages. The
// row-count pre-check always requests json, regardless of the configured or
// requested data format; only the pre-check body is parsed here, so the data
// pages themselves can still be any supported format.
func (c *Client) getAllRows(ctx context.Context, format ati.Format) ([]*ati.Response, error) {
	countResp, err := c.GetRows(ctx, ati.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("checking row count: %w", err)
	}

	doc, err := ati.ParseRowCount(countResp.Body)
	if err != nil {
		return nil, fmt.Errorf("checking row count: %w", err)
	}

	// An upstream error is carried in-band: return the error document as the
	// sole result instead of attempting pagination.
	if !doc.ErrorCode.IsZero() {
		return []*ati.Response{countResp}, nil
	}

	rows, err := doc.Rows()
	if err != nil {
		return nil, fmt.Errorf("checking row count: %w", err)
	}

	pages := ati.PageCount(rows)
	results := make([]*ati.Response, 0, pages)
	params := c.params.Clone()
	params["max-results"] = strconv.Itoa(ati.AllRowsPageSize)

	// Pages are fetched strictly sequentially: page N+1 is not issued until
	// page N has returned.
	for page := 1; page <= pages; page++ {
		params["page-num"] = strconv.Itoa(page)

		resp, err := c.call(ctx, ati.RouteData, format, params)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d of %d: %w", page, pages, err)
		}

		results = append(results, resp)
	}

	return results, nil
}
