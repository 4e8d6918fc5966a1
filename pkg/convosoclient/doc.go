// Package convosoclient provides the primary entry point for constructing a
// Convoso API client that implements the convoso.Client interface.
//
// It validates and defaults a convoso.Config, then wires the HTTP dispatcher
// (retry with exponential backoff, per-attempt timeout, auth_token query
// parameter) under the resource clients defined in the convoso package.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//	  "time"
//
//	  "github.com/fivetwenty-io/convoso-client/pkg/convoso"
//	  "github.com/fivetwenty-io/convoso-client/pkg/convosoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an API key, default root https://api.convoso.com/v1/.
//	  cli, err := convosoclient.NewWithAPIKey(os.Getenv("CONVOSO_API_KEY"))
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with explicit settings:
//	  cli, err = convosoclient.New(&convoso.Config{
//	    APIKey:     os.Getenv("CONVOSO_API_KEY"),
//	    Timeout:    10 * time.Second,
//	    MaxRetries: 5,
//	    Headers:    map[string]string{"X-Request-Source": "reports"},
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  res, err := cli.Campaigns().Search(ctx)
//	  if err != nil { log.Fatal(err) }
//	  for _, c := range res.Data.Data {
//	    log.Println(c.ID, c.Name)
//	  }
//	}
//
// Errors
//
// Transport failures, timeouts and non-2xx responses come back as a wrapped
// *convoso.APIError. Application-level rejections (HTTP 200 with
// "success": false) come back as the Failure side of convoso.Result.
package convosoclient
