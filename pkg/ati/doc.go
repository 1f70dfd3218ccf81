// Package ati provides types, interfaces, and helpers for working with the
// AT Internet Data API v2.
//
// # Overview
//
// The ati package defines the request data model (Params, Credentials,
// Format), the raw Response type, the row-count document returned by the
// getrowcount route, and the Client interface exposing the three API
// operations: GetRows, GetMaxDate, and GetData. A concrete implementation is
// provided by the aticlient package, which wires configuration, transport,
// and authentication. Most consumers should import aticlient to construct a
// client and then work with the interface exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/datapip-io/ati/pkg/ati"
//	  "github.com/datapip-io/ati/pkg/aticlient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := aticlient.New(&ati.Config{
//	    Params: "&columns={d_source}&space={s:1234}&period={D:{start:'2026-01-01',end:'2026-01-31'}}",
//	    Auth:   "apikey:YOUR_API_KEY",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.GetRows(ctx, "")
//	  if err != nil { log.Fatal(err) }
//	  _ = resp
//	}
//
// # Parameters and authentication
//
// Request parameters may be supplied either as a key/value mapping or as a
// query-string-like string ("a=1&b=2", optionally with a leading "?" or "&").
// Authentication is a combined "method:credential" string: "apikey:KEY" for
// API-key auth, or "header:B64" where B64 is the base64 encoding of
// "email:password" for basic-auth headers. Both are resolved once at
// construction time.
//
// # Formats
//
// Responses can be requested as json, html, xml, or csv. The getrowcount and
// getmaxdate routes do not support csv; an unsupported format silently
// degrades to json rather than failing, matching the upstream API helper
// behavior that callers depend on.
//
// # Pagination
//
// With Config.AllRows set, GetData first issues a row-count call, then
// fetches every page of the result set sequentially in fixed-size pages of
// AllRowsPageSize rows, returning one Response per page in page order. When
// the row-count call carries an upstream error code, that response is
// returned as the sole element and no data calls are issued; use
// ParseRowCount to inspect it.
package ati
