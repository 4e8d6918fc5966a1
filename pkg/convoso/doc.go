// Package convoso provides types, interfaces, and helpers for working with the
// Convoso call-center REST API.
//
// # Overview
//
// The convoso package defines the request and response types of every endpoint
// family (leads, lists, DNC, callbacks, campaigns, agent reports, ...) and the
// interfaces of the resource clients (e.g., LeadsClient, DNCClient). A concrete
// implementation is provided by the convosoclient package, which validates the
// configuration and wires the HTTP dispatcher. Most consumers import
// convosoclient to construct a client and then use the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/convoso-client/pkg/convoso"
//	  "github.com/fivetwenty-io/convoso-client/pkg/convosoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := convosoclient.NewWithAPIKey("your-token")
//	  if err != nil { log.Fatal(err) }
//
//	  res, err := cli.Leads().Search(ctx, &convoso.LeadsSearchParams{Limit: ptr(100)})
//	  if err != nil { log.Fatal(err) }
//	  if res.Failure != nil { log.Fatal(res.Failure) }
//	  _ = res.Data
//	}
//
// # Parameters
//
// Every params struct renders itself as Params, a map of Value. A Value is a
// scalar, a list, an omitted value, a null or an unsupported shape.
// NormalizeParams turns Params into a Query: lists are joined with commas,
// nulls and unsupported shapes are dropped, and omitted values are never
// sent. Fields a struct does not model go in its Extra bag.
//
// # Pagination
//
// Paginated endpoints clamp numeric offset and limit to per-endpoint bounds
// (see PaginationPolicy) before the request is sent. Values of any other
// kind pass through unchanged.
//
// # Results and errors
//
// Convoso reports many failures with HTTP 200 and a {"success": false, "code":
// ..., "text": ...} body. Typed calls therefore return a *Result[T] holding
// either Data or a Failure; each endpoint exports the closed ErrorSet of codes
// it can fail with. Transport failures, timeouts and non-2xx responses are
// returned as a wrapped *APIError instead; use errors.As or the predicates
// IsTimeout, IsNetworkError, IsRateLimited, IsNotFound and friends.
package convoso
