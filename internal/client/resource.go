package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/convoso-client/internal/http"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// resource is the part every endpoint family client shares: the dispatcher
// and the family's base path.
type resource struct {
	httpClient *http.Client
	basePath   string
	name       string
}

func newResource(httpClient *http.Client, basePath, name string) resource {
	return resource{
		httpClient: httpClient,
		basePath:   basePath,
		name:       name,
	}
}

func (r resource) path(action string) string {
	if action == "" {
		return r.basePath
	}

	return r.basePath + "/" + action
}

// fetch normalizes params, sends them as the query of a GET to the action
// path and decodes the typed result.
func fetch[T any](ctx context.Context, r resource, action, op string, params convoso.Params) (*convoso.Result[T], error) {
	resp, err := r.httpClient.Get(ctx, r.path(action), convoso.NormalizeParams(params))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result, err := convoso.DecodeResult[T](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s %s response: %w", r.name, action, err)
	}

	return result, nil
}

// fetchPage is fetch with the endpoint's pagination bounds applied first.
func fetchPage[T any](
	ctx context.Context,
	r resource,
	action, op string,
	params convoso.Params,
	policy convoso.PaginationPolicy,
) (*convoso.Result[T], error) {
	return fetch[T](ctx, r, action, op, convoso.ApplyPaginationPolicy(params, policy))
}

// postBody sends body as JSON to one of the legacy POST endpoints and returns
// the decoded body untyped.
func postBody(ctx context.Context, r resource, action, op string, body interface{}) (map[string]interface{}, error) {
	resp, err := r.httpClient.Post(ctx, r.path(action), body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := map[string]interface{}{}
	if resp.Empty() {
		return out, nil
	}

	err = json.Unmarshal(resp.Body, &out)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", op, err)
	}

	return out, nil
}
