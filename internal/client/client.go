package client

import (
	"errors"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
	"github.com/fivetwenty-io/convoso-client/internal/http"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// Static errors for err113 compliance.
var (
	ErrAPIKeyRequired  = errors.New("API key is required")
	ErrBaseURLRequired = errors.New("base URL is required")
)

// Client implements the convoso.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     convoso.Logger

	// Resource clients
	agentMonitor      convoso.AgentMonitorClient
	agentPerformance  convoso.AgentPerformanceClient
	agentProductivity convoso.AgentProductivityClient
	userActivity      convoso.UserActivityClient
	users             convoso.UsersClient
	leads             convoso.LeadsClient
	leadPost          convoso.LeadPostClient
	leadValidation    convoso.LeadValidationClient
	lists             convoso.ListsClient
	callbacks         convoso.CallbacksClient
	dnc               convoso.DNCClient
	smsOptOut         convoso.SMSOptOutClient
	campaigns         convoso.CampaignsClient
	callLogs          convoso.CallLogsClient
	revenue           convoso.RevenueClient
	statuses          convoso.StatusesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *convoso.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if len(config.Headers) > 0 {
		httpOpts = append(httpOpts, http.WithHeaders(config.Headers))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	retryMax := config.MaxRetries
	if retryMax == 0 {
		retryMax = constants.DefaultRetryMax
	}

	retryWaitMin := constants.DefaultRetryWaitMin
	retryWaitMax := constants.DefaultRetryWaitMax

	if config.RetryWaitMin > 0 {
		retryWaitMin = config.RetryWaitMin
	}

	if config.RetryWaitMax > 0 {
		retryWaitMax = config.RetryWaitMax
	}

	return append(httpOpts, http.WithRetryConfig(retryMax, retryWaitMin, retryWaitMax))
}

// New creates a new Convoso API client. The config is expected to have been
// validated and defaulted by the caller.
func New(config *convoso.Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, config.APIKey, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Resource client accessors

// AgentMonitor implements convoso.Client.AgentMonitor.
func (c *Client) AgentMonitor() convoso.AgentMonitorClient {
	return c.agentMonitor
}

// AgentPerformance implements convoso.Client.AgentPerformance.
func (c *Client) AgentPerformance() convoso.AgentPerformanceClient {
	return c.agentPerformance
}

// AgentProductivity implements convoso.Client.AgentProductivity.
func (c *Client) AgentProductivity() convoso.AgentProductivityClient {
	return c.agentProductivity
}

// UserActivity implements convoso.Client.UserActivity.
func (c *Client) UserActivity() convoso.UserActivityClient {
	return c.userActivity
}

// Users implements convoso.Client.Users.
func (c *Client) Users() convoso.UsersClient {
	return c.users
}

// Leads implements convoso.Client.Leads.
func (c *Client) Leads() convoso.LeadsClient {
	return c.leads
}

// LeadPost implements convoso.Client.LeadPost.
func (c *Client) LeadPost() convoso.LeadPostClient {
	return c.leadPost
}

// LeadValidation implements convoso.Client.LeadValidation.
func (c *Client) LeadValidation() convoso.LeadValidationClient {
	return c.leadValidation
}

// Lists implements convoso.Client.Lists.
func (c *Client) Lists() convoso.ListsClient {
	return c.lists
}

// Callbacks implements convoso.Client.Callbacks.
func (c *Client) Callbacks() convoso.CallbacksClient {
	return c.callbacks
}

// DNC implements convoso.Client.DNC.
func (c *Client) DNC() convoso.DNCClient {
	return c.dnc
}

// SMSOptOut implements convoso.Client.SMSOptOut.
func (c *Client) SMSOptOut() convoso.SMSOptOutClient {
	return c.smsOptOut
}

// Campaigns implements convoso.Client.Campaigns.
func (c *Client) Campaigns() convoso.CampaignsClient {
	return c.campaigns
}

// CallLogs implements convoso.Client.CallLogs.
func (c *Client) CallLogs() convoso.CallLogsClient {
	return c.callLogs
}

// Revenue implements convoso.Client.Revenue.
func (c *Client) Revenue() convoso.RevenueClient {
	return c.revenue
}

// Statuses implements convoso.Client.Statuses.
func (c *Client) Statuses() convoso.StatusesClient {
	return c.statuses
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.agentMonitor = NewAgentMonitorClient(c.httpClient)
	c.agentPerformance = NewAgentPerformanceClient(c.httpClient)
	c.agentProductivity = NewAgentProductivityClient(c.httpClient)
	c.userActivity = NewUserActivityClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.leads = NewLeadsClient(c.httpClient)
	c.leadPost = NewLeadPostClient(c.httpClient)
	c.leadValidation = NewLeadValidationClient(c.httpClient)
	c.lists = NewListsClient(c.httpClient)
	c.callbacks = NewCallbacksClient(c.httpClient)
	c.dnc = NewDNCClient(c.httpClient)
	c.smsOptOut = NewSMSOptOutClient(c.httpClient)
	c.campaigns = NewCampaignsClient(c.httpClient)
	c.callLogs = NewCallLogsClient(c.httpClient)
	c.revenue = NewRevenueClient(c.httpClient)
	c.statuses = NewStatusesClient(c.httpClient)
}

var _ convoso.Client = (*Client)(nil)
