package client

import (
	"context"

	"github.com/fivetwenty-io/convoso-client/internal/http"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// LeadsClient implements convoso.LeadsClient.
type LeadsClient struct {
	resource
}

// NewLeadsClient creates a new leads client.
func NewLeadsClient(httpClient *http.Client) *LeadsClient {
	return &LeadsClient{resource: newResource(httpClient, "/leads", "leads")}
}

// Insert implements convoso.LeadsClient.Insert.
func (c *LeadsClient) Insert(ctx context.Context, params *convoso.LeadsInsertParams) (*convoso.Result[convoso.LeadsInsertResponse], error) {
	return fetch[convoso.LeadsInsertResponse](ctx, c.resource, "insert", "inserting lead", params.Params())
}

// Update implements convoso.LeadsClient.Update.
func (c *LeadsClient) Update(ctx context.Context, params *convoso.LeadsUpdateParams) (*convoso.Result[convoso.LeadsUpdateResponse], error) {
	return fetch[convoso.LeadsUpdateResponse](ctx, c.resource, "update", "updating lead", params.Params())
}

// Delete implements convoso.LeadsClient.Delete.
func (c *LeadsClient) Delete(ctx context.Context, params *convoso.LeadsDeleteParams) (*convoso.Result[convoso.LeadsDeleteResponse], error) {
	return fetch[convoso.LeadsDeleteResponse](ctx, c.resource, "delete", "deleting lead", params.Params())
}

// Search implements convoso.LeadsClient.Search.
func (c *LeadsClient) Search(ctx context.Context, params *convoso.LeadsSearchParams) (*convoso.Result[convoso.LeadsSearchResponse], error) {
	return fetchPage[convoso.LeadsSearchResponse](ctx, c.resource, "search", "searching leads",
		params.Params(), convoso.LeadsSearchPagination)
}

// GetRecordings implements convoso.LeadsClient.GetRecordings.
func (c *LeadsClient) GetRecordings(ctx context.Context, params *convoso.LeadRecordingsParams) (*convoso.Result[convoso.RecordingsResponse], error) {
	return fetchPage[convoso.RecordingsResponse](ctx, c.resource, "get-recordings", "getting lead recordings",
		params.Params(), convoso.LeadRecordingsPagination)
}

// LeadPostClient implements convoso.LeadPostClient.
type LeadPostClient struct {
	resource
}

// NewLeadPostClient creates a new lead post client.
func NewLeadPostClient(httpClient *http.Client) *LeadPostClient {
	return &LeadPostClient{resource: newResource(httpClient, "/lead-post-validation", "lead post")}
}

// Insert implements convoso.LeadPostClient.Insert.
func (c *LeadPostClient) Insert(ctx context.Context, params *convoso.LeadPostInsertParams) (*convoso.Result[convoso.LeadPostInsertResponse], error) {
	return fetch[convoso.LeadPostInsertResponse](ctx, c.resource, "insert", "posting lead", params.Params())
}

// LeadValidationClient implements convoso.LeadValidationClient.
type LeadValidationClient struct {
	resource
}

// NewLeadValidationClient creates a new lead validation client.
func NewLeadValidationClient(httpClient *http.Client) *LeadValidationClient {
	return &LeadValidationClient{resource: newResource(httpClient, "/lead-validation", "lead validation")}
}

// Search implements convoso.LeadValidationClient.Search.
func (c *LeadValidationClient) Search(ctx context.Context, params *convoso.LeadValidationSearchParams) (*convoso.Result[convoso.LeadValidationSearchResponse], error) {
	return fetch[convoso.LeadValidationSearchResponse](ctx, c.resource, "search", "validating lead", params.Params())
}

// ListsClient implements convoso.ListsClient.
type ListsClient struct {
	resource
}

// NewListsClient creates a new lists client.
func NewListsClient(httpClient *http.Client) *ListsClient {
	return &ListsClient{resource: newResource(httpClient, "/lists", "lists")}
}

// Insert implements convoso.ListsClient.Insert.
func (c *ListsClient) Insert(ctx context.Context, params *convoso.ListsInsertParams) (*convoso.Result[convoso.ListsInsertResponse], error) {
	return fetch[convoso.ListsInsertResponse](ctx, c.resource, "insert", "inserting list", params.Params())
}

// Update implements convoso.ListsClient.Update.
func (c *ListsClient) Update(ctx context.Context, params *convoso.ListsUpdateParams) (*convoso.Result[convoso.ListsUpdateResponse], error) {
	return fetch[convoso.ListsUpdateResponse](ctx, c.resource, "update", "updating list", params.Params())
}

// Delete implements convoso.ListsClient.Delete.
func (c *ListsClient) Delete(ctx context.Context, params *convoso.ListsDeleteParams) (*convoso.Result[convoso.ListsDeleteResponse], error) {
	return fetch[convoso.ListsDeleteResponse](ctx, c.resource, "delete", "deleting list", params.Params())
}

// Search implements convoso.ListsClient.Search.
func (c *ListsClient) Search(ctx context.Context, params *convoso.ListsSearchParams) (*convoso.Result[convoso.ListsSearchResponse], error) {
	return fetch[convoso.ListsSearchResponse](ctx, c.resource, "search", "searching lists", params.Params())
}
