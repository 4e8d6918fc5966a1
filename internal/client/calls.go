package client

import (
	"context"

	"github.com/fivetwenty-io/convoso-client/internal/http"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// CallLogsClient implements convoso.CallLogsClient.
type CallLogsClient struct {
	resource
}

// NewCallLogsClient creates a new call logs client.
func NewCallLogsClient(httpClient *http.Client) *CallLogsClient {
	return &CallLogsClient{resource: newResource(httpClient, "/log", "call log")}
}

// Search implements convoso.CallLogsClient.Search. Offset and limit are sent
// as given.
func (c *CallLogsClient) Search(ctx context.Context, params *convoso.CallLogsSearchParams) (*convoso.Result[convoso.CallLogsSearchResponse], error) {
	return fetch[convoso.CallLogsSearchResponse](ctx, c.resource, "retrieve", "searching call logs", params.Params())
}

// Update implements convoso.CallLogsClient.Update.
func (c *CallLogsClient) Update(ctx context.Context, params *convoso.CallLogsUpdateParams) (*convoso.Result[convoso.CallLogsUpdateResponse], error) {
	return fetch[convoso.CallLogsUpdateResponse](ctx, c.resource, "update", "updating call log", params.Params())
}

// CallbacksClient implements convoso.CallbacksClient.
type CallbacksClient struct {
	resource
}

// NewCallbacksClient creates a new callbacks client.
func NewCallbacksClient(httpClient *http.Client) *CallbacksClient {
	return &CallbacksClient{resource: newResource(httpClient, "/callbacks", "callbacks")}
}

// Insert implements convoso.CallbacksClient.Insert.
func (c *CallbacksClient) Insert(ctx context.Context, params *convoso.CallbackInsertParams) (*convoso.Result[convoso.CallbackInsertResponse], error) {
	return fetch[convoso.CallbackInsertResponse](ctx, c.resource, "insert", "inserting callback", params.Params())
}

// Update implements convoso.CallbacksClient.Update.
func (c *CallbacksClient) Update(ctx context.Context, params *convoso.CallbackUpdateParams) (*convoso.Result[convoso.CallbackUpdateResponse], error) {
	return fetch[convoso.CallbackUpdateResponse](ctx, c.resource, "update", "updating callback", params.Params())
}

// Delete implements convoso.CallbacksClient.Delete.
func (c *CallbacksClient) Delete(ctx context.Context, params *convoso.CallbackDeleteParams) (*convoso.Result[convoso.CallbackDeleteResponse], error) {
	return fetch[convoso.CallbackDeleteResponse](ctx, c.resource, "delete", "deleting callback", params.Params())
}

// Search implements convoso.CallbacksClient.Search.
func (c *CallbacksClient) Search(ctx context.Context, params *convoso.CallbackSearchParams) (*convoso.Result[convoso.CallbackSearchResponse], error) {
	return fetchPage[convoso.CallbackSearchResponse](ctx, c.resource, "search", "searching callbacks",
		params.Params(), convoso.CallbacksSearchPagination)
}

// CampaignsClient implements convoso.CampaignsClient.
type CampaignsClient struct {
	resource
}

// NewCampaignsClient creates a new campaigns client.
func NewCampaignsClient(httpClient *http.Client) *CampaignsClient {
	return &CampaignsClient{resource: newResource(httpClient, "/campaigns", "campaigns")}
}

// Status implements convoso.CampaignsClient.Status.
func (c *CampaignsClient) Status(ctx context.Context, params *convoso.CampaignStatusParams) (*convoso.Result[convoso.CampaignStatusResponse], error) {
	return fetch[convoso.CampaignStatusResponse](ctx, c.resource, "status", "updating campaign status", params.Params())
}

// Search implements convoso.CampaignsClient.Search.
func (c *CampaignsClient) Search(ctx context.Context) (*convoso.Result[convoso.CampaignSearchResponse], error) {
	return fetch[convoso.CampaignSearchResponse](ctx, c.resource, "search", "searching campaigns", nil)
}

// List implements convoso.CampaignsClient.List.
func (c *CampaignsClient) List(ctx context.Context, body map[string]interface{}) (map[string]interface{}, error) {
	return postBody(ctx, c.resource, "list", "listing campaigns", body)
}

// Get implements convoso.CampaignsClient.Get.
func (c *CampaignsClient) Get(ctx context.Context, campaignID string) (map[string]interface{}, error) {
	return postBody(ctx, c.resource, "get", "getting campaign", map[string]string{"campaign_id": campaignID})
}

// Create implements convoso.CampaignsClient.Create.
func (c *CampaignsClient) Create(ctx context.Context, body map[string]interface{}) (map[string]interface{}, error) {
	return postBody(ctx, c.resource, "", "creating campaign", body)
}

// Update implements convoso.CampaignsClient.Update.
func (c *CampaignsClient) Update(ctx context.Context, body map[string]interface{}) (map[string]interface{}, error) {
	return postBody(ctx, c.resource, "update", "updating campaign", body)
}

// RevenueClient implements convoso.RevenueClient.
type RevenueClient struct {
	resource
}

// NewRevenueClient creates a new revenue client.
func NewRevenueClient(httpClient *http.Client) *RevenueClient {
	return &RevenueClient{resource: newResource(httpClient, "/revenue", "revenue")}
}

// Update implements convoso.RevenueClient.Update.
func (c *RevenueClient) Update(ctx context.Context, params *convoso.RevenueUpdateParams) (*convoso.Result[convoso.RevenueUpdateResponse], error) {
	return fetch[convoso.RevenueUpdateResponse](ctx, c.resource, "update", "updating revenue", params.Params())
}

// StatusesClient implements convoso.StatusesClient.
type StatusesClient struct {
	resource
}

// NewStatusesClient creates a new statuses client.
func NewStatusesClient(httpClient *http.Client) *StatusesClient {
	return &StatusesClient{resource: newResource(httpClient, "/statuses", "statuses")}
}

// Insert implements convoso.StatusesClient.Insert.
func (c *StatusesClient) Insert(ctx context.Context, params *convoso.StatusesInsertParams) (*convoso.Result[convoso.StatusesInsertResponse], error) {
	return fetch[convoso.StatusesInsertResponse](ctx, c.resource, "insert", "inserting status", params.Params())
}

// Update implements convoso.StatusesClient.Update.
func (c *StatusesClient) Update(ctx context.Context, params *convoso.StatusesUpdateParams) (*convoso.Result[convoso.StatusesUpdateResponse], error) {
	return fetch[convoso.StatusesUpdateResponse](ctx, c.resource, "update", "updating status", params.Params())
}

// Search implements convoso.StatusesClient.Search.
func (c *StatusesClient) Search(ctx context.Context, params *convoso.StatusesSearchParams) (*convoso.Result[convoso.StatusesSearchResponse], error) {
	return fetch[convoso.StatusesSearchResponse](ctx, c.resource, "search", "searching statuses", params.Params())
}
