package client

import (
	"context"

	"github.com/fivetwenty-io/convoso-client/internal/http"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// AgentMonitorClient implements convoso.AgentMonitorClient.
type AgentMonitorClient struct {
	resource
}

// NewAgentMonitorClient creates a new agent monitor client.
func NewAgentMonitorClient(httpClient *http.Client) *AgentMonitorClient {
	return &AgentMonitorClient{resource: newResource(httpClient, "/agent-monitor", "agent monitor")}
}

// Search implements convoso.AgentMonitorClient.Search.
func (c *AgentMonitorClient) Search(ctx context.Context, params *convoso.AgentMonitorSearchParams) (*convoso.Result[convoso.AgentMonitorSearchResponse], error) {
	return fetch[convoso.AgentMonitorSearchResponse](ctx, c.resource, "search", "searching agent monitor", params.Params())
}

// Logout implements convoso.AgentMonitorClient.Logout.
func (c *AgentMonitorClient) Logout(ctx context.Context, params *convoso.AgentMonitorLogoutParams) (*convoso.Result[convoso.AgentMonitorLogoutResponse], error) {
	return fetch[convoso.AgentMonitorLogoutResponse](ctx, c.resource, "logout", "logging out agent", params.Params())
}

// AgentPerformanceClient implements convoso.AgentPerformanceClient.
type AgentPerformanceClient struct {
	resource
}

// NewAgentPerformanceClient creates a new agent performance client.
func NewAgentPerformanceClient(httpClient *http.Client) *AgentPerformanceClient {
	return &AgentPerformanceClient{resource: newResource(httpClient, "/agent-performance", "agent performance")}
}

// Search implements convoso.AgentPerformanceClient.Search.
func (c *AgentPerformanceClient) Search(ctx context.Context, params *convoso.AgentPerformanceSearchParams) (*convoso.Result[convoso.AgentPerformanceSearchResponse], error) {
	return fetch[convoso.AgentPerformanceSearchResponse](ctx, c.resource, "search", "searching agent performance", params.Params())
}

// AgentProductivityClient implements convoso.AgentProductivityClient.
type AgentProductivityClient struct {
	resource
}

// NewAgentProductivityClient creates a new agent productivity client.
func NewAgentProductivityClient(httpClient *http.Client) *AgentProductivityClient {
	return &AgentProductivityClient{resource: newResource(httpClient, "/agent-productivity", "agent productivity")}
}

// Search implements convoso.AgentProductivityClient.Search.
func (c *AgentProductivityClient) Search(ctx context.Context, params *convoso.AgentProductivitySearchParams) (*convoso.Result[convoso.AgentProductivitySearchResponse], error) {
	return fetchPage[convoso.AgentProductivitySearchResponse](ctx, c.resource, "search", "searching agent productivity",
		params.Params(), convoso.AgentProductivityPagination)
}

// UserActivityClient implements convoso.UserActivityClient.
type UserActivityClient struct {
	resource
}

// NewUserActivityClient creates a new user activity client.
func NewUserActivityClient(httpClient *http.Client) *UserActivityClient {
	return &UserActivityClient{resource: newResource(httpClient, "/user-activity", "user activity")}
}

// Search implements convoso.UserActivityClient.Search.
func (c *UserActivityClient) Search(ctx context.Context, params *convoso.UserActivitySearchParams) (*convoso.Result[convoso.UserActivitySearchResponse], error) {
	return fetch[convoso.UserActivitySearchResponse](ctx, c.resource, "search", "searching user activity", params.Params())
}

// UsersClient implements convoso.UsersClient.
type UsersClient struct {
	resource
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{resource: newResource(httpClient, "/users", "users")}
}

// GetRecordings implements convoso.UsersClient.GetRecordings.
func (c *UsersClient) GetRecordings(ctx context.Context, params *convoso.UsersRecordingsParams) (*convoso.Result[convoso.RecordingsResponse], error) {
	return fetchPage[convoso.RecordingsResponse](ctx, c.resource, "recordings", "getting user recordings",
		params.Params(), convoso.UserRecordingsPagination)
}

// Search implements convoso.UsersClient.Search.
func (c *UsersClient) Search(ctx context.Context, params *convoso.UsersSearchParams) (*convoso.Result[convoso.UsersSearchResponse], error) {
	return fetchPage[convoso.UsersSearchResponse](ctx, c.resource, "search", "searching users",
		params.Params(), convoso.UsersSearchPagination)
}
