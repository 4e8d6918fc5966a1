package client

import (
	"context"

	"github.com/fivetwenty-io/convoso-client/internal/http"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// DNCClient implements convoso.DNCClient.
type DNCClient struct {
	resource
}

// NewDNCClient creates a new DNC client.
func NewDNCClient(httpClient *http.Client) *DNCClient {
	return &DNCClient{resource: newResource(httpClient, "/dnc", "dnc")}
}

// Insert implements convoso.DNCClient.Insert.
func (c *DNCClient) Insert(ctx context.Context, params *convoso.DNCInsertParams) (*convoso.Result[convoso.DNCInsertResponse], error) {
	return fetch[convoso.DNCInsertResponse](ctx, c.resource, "insert", "inserting DNC entry", params.Params())
}

// Update implements convoso.DNCClient.Update.
func (c *DNCClient) Update(ctx context.Context, params *convoso.DNCUpdateParams) (*convoso.Result[convoso.DNCUpdateResponse], error) {
	return fetch[convoso.DNCUpdateResponse](ctx, c.resource, "update", "updating DNC entry", params.Params())
}

// Delete implements convoso.DNCClient.Delete.
func (c *DNCClient) Delete(ctx context.Context, params *convoso.DNCDeleteParams) (*convoso.Result[convoso.DNCDeleteResponse], error) {
	return fetch[convoso.DNCDeleteResponse](ctx, c.resource, "delete", "deleting DNC entry", params.Params())
}

// Search implements convoso.DNCClient.Search.
func (c *DNCClient) Search(ctx context.Context, params *convoso.DNCSearchParams) (*convoso.Result[convoso.DNCSearchResponse], error) {
	return fetchPage[convoso.DNCSearchResponse](ctx, c.resource, "search", "searching DNC entries",
		params.Params(), convoso.DNCSearchPagination)
}

// Add implements convoso.DNCClient.Add.
func (c *DNCClient) Add(ctx context.Context, body map[string]interface{}) (map[string]interface{}, error) {
	return postBody(ctx, c.resource, "add", "adding DNC entry", body)
}

// Remove implements convoso.DNCClient.Remove.
func (c *DNCClient) Remove(ctx context.Context, body map[string]interface{}) (map[string]interface{}, error) {
	return postBody(ctx, c.resource, "remove", "removing DNC entry", body)
}

// SMSOptOutClient implements convoso.SMSOptOutClient.
type SMSOptOutClient struct {
	resource
}

// NewSMSOptOutClient creates a new SMS opt-out client.
func NewSMSOptOutClient(httpClient *http.Client) *SMSOptOutClient {
	return &SMSOptOutClient{resource: newResource(httpClient, "/sms-opt-out", "sms opt-out")}
}

// Insert implements convoso.SMSOptOutClient.Insert.
func (c *SMSOptOutClient) Insert(ctx context.Context, params *convoso.SMSOptOutInsertParams) (*convoso.Result[convoso.SMSOptOutInsertResponse], error) {
	return fetch[convoso.SMSOptOutInsertResponse](ctx, c.resource, "insert", "inserting SMS opt-out", params.Params())
}

// Update implements convoso.SMSOptOutClient.Update.
func (c *SMSOptOutClient) Update(ctx context.Context, params *convoso.SMSOptOutUpdateParams) (*convoso.Result[convoso.SMSOptOutUpdateResponse], error) {
	return fetch[convoso.SMSOptOutUpdateResponse](ctx, c.resource, "update", "updating SMS opt-out", params.Params())
}

// Search implements convoso.SMSOptOutClient.Search.
func (c *SMSOptOutClient) Search(ctx context.Context, params *convoso.SMSOptOutSearchParams) (*convoso.Result[convoso.SMSOptOutSearchResponse], error) {
	return fetchPage[convoso.SMSOptOutSearchResponse](ctx, c.resource, "search", "searching SMS opt-outs",
		params.Params(), convoso.SMSOptOutSearchPagination)
}
