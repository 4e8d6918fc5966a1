package convoso

import (
	"context"
	"net/http"
	"time"
)

// AgentMonitorClient reads and controls live agent sessions.
type AgentMonitorClient interface {
	Search(ctx context.Context, params *AgentMonitorSearchParams) (*Result[AgentMonitorSearchResponse], error)
	Logout(ctx context.Context, params *AgentMonitorLogoutParams) (*Result[AgentMonitorLogoutResponse], error)
}

// AgentPerformanceClient reads agent performance reports.
type AgentPerformanceClient interface {
	Search(ctx context.Context, params *AgentPerformanceSearchParams) (*Result[AgentPerformanceSearchResponse], error)
}

// AgentProductivityClient reads agent productivity reports.
type AgentProductivityClient interface {
	Search(ctx context.Context, params *AgentProductivitySearchParams) (*Result[AgentProductivitySearchResponse], error)
}

// CallLogsClient reads and annotates call log records.
type CallLogsClient interface {
	Search(ctx context.Context, params *CallLogsSearchParams) (*Result[CallLogsSearchResponse], error)
	Update(ctx context.Context, params *CallLogsUpdateParams) (*Result[CallLogsUpdateResponse], error)
}

// CallbacksClient manages scheduled callbacks.
type CallbacksClient interface {
	Insert(ctx context.Context, params *CallbackInsertParams) (*Result[CallbackInsertResponse], error)
	Update(ctx context.Context, params *CallbackUpdateParams) (*Result[CallbackUpdateResponse], error)
	Delete(ctx context.Context, params *CallbackDeleteParams) (*Result[CallbackDeleteResponse], error)
	Search(ctx context.Context, params *CallbackSearchParams) (*Result[CallbackSearchResponse], error)
}

// CampaignsClient manages campaigns.
//
// List, Get, Create and Update call the legacy POST endpoints and return the
// decoded body untyped.
type CampaignsClient interface {
	Status(ctx context.Context, params *CampaignStatusParams) (*Result[CampaignStatusResponse], error)
	Search(ctx context.Context) (*Result[CampaignSearchResponse], error)
	List(ctx context.Context, body map[string]any) (map[string]any, error)
	Get(ctx context.Context, campaignID string) (map[string]any, error)
	Create(ctx context.Context, body map[string]any) (map[string]any, error)
	Update(ctx context.Context, body map[string]any) (map[string]any, error)
}

// DNCClient manages the Do Not Call list.
//
// Add and Remove call the legacy POST endpoints.
type DNCClient interface {
	Insert(ctx context.Context, params *DNCInsertParams) (*Result[DNCInsertResponse], error)
	Update(ctx context.Context, params *DNCUpdateParams) (*Result[DNCUpdateResponse], error)
	Delete(ctx context.Context, params *DNCDeleteParams) (*Result[DNCDeleteResponse], error)
	Search(ctx context.Context, params *DNCSearchParams) (*Result[DNCSearchResponse], error)
	Add(ctx context.Context, body map[string]any) (map[string]any, error)
	Remove(ctx context.Context, body map[string]any) (map[string]any, error)
}

// LeadPostClient submits leads through a lead post criteria key.
type LeadPostClient interface {
	Insert(ctx context.Context, params *LeadPostInsertParams) (*Result[LeadPostInsertResponse], error)
}

// LeadValidationClient validates a lead against lead post criteria.
type LeadValidationClient interface {
	Search(ctx context.Context, params *LeadValidationSearchParams) (*Result[LeadValidationSearchResponse], error)
}

// LeadsClient manages leads.
type LeadsClient interface {
	Insert(ctx context.Context, params *LeadsInsertParams) (*Result[LeadsInsertResponse], error)
	Update(ctx context.Context, params *LeadsUpdateParams) (*Result[LeadsUpdateResponse], error)
	Delete(ctx context.Context, params *LeadsDeleteParams) (*Result[LeadsDeleteResponse], error)
	Search(ctx context.Context, params *LeadsSearchParams) (*Result[LeadsSearchResponse], error)
	GetRecordings(ctx context.Context, params *LeadRecordingsParams) (*Result[RecordingsResponse], error)
}

// ListsClient manages lead lists.
type ListsClient interface {
	Insert(ctx context.Context, params *ListsInsertParams) (*Result[ListsInsertResponse], error)
	Update(ctx context.Context, params *ListsUpdateParams) (*Result[ListsUpdateResponse], error)
	Delete(ctx context.Context, params *ListsDeleteParams) (*Result[ListsDeleteResponse], error)
	Search(ctx context.Context, params *ListsSearchParams) (*Result[ListsSearchResponse], error)
}

// RevenueClient records revenue against call logs.
type RevenueClient interface {
	Update(ctx context.Context, params *RevenueUpdateParams) (*Result[RevenueUpdateResponse], error)
}

// SMSOptOutClient manages the SMS opt-out list.
type SMSOptOutClient interface {
	Insert(ctx context.Context, params *SMSOptOutInsertParams) (*Result[SMSOptOutInsertResponse], error)
	Update(ctx context.Context, params *SMSOptOutUpdateParams) (*Result[SMSOptOutUpdateResponse], error)
	Search(ctx context.Context, params *SMSOptOutSearchParams) (*Result[SMSOptOutSearchResponse], error)
}

// StatusesClient manages lead dispositions.
type StatusesClient interface {
	Insert(ctx context.Context, params *StatusesInsertParams) (*Result[StatusesInsertResponse], error)
	Update(ctx context.Context, params *StatusesUpdateParams) (*Result[StatusesUpdateResponse], error)
	Search(ctx context.Context, params *StatusesSearchParams) (*Result[StatusesSearchResponse], error)
}

// UserActivityClient reads agent availability counters.
type UserActivityClient interface {
	Search(ctx context.Context, params *UserActivitySearchParams) (*Result[UserActivitySearchResponse], error)
}

// UsersClient reads users and their recordings.
type UsersClient interface {
	GetRecordings(ctx context.Context, params *UsersRecordingsParams) (*Result[RecordingsResponse], error)
	Search(ctx context.Context, params *UsersSearchParams) (*Result[UsersSearchResponse], error)
}

// AgentClients provides access to agent-facing resource clients.
type AgentClients interface {
	AgentMonitor() AgentMonitorClient
	AgentPerformance() AgentPerformanceClient
	AgentProductivity() AgentProductivityClient
	UserActivity() UserActivityClient
	Users() UsersClient
}

// LeadClients provides access to lead management resource clients.
type LeadClients interface {
	Leads() LeadsClient
	LeadPost() LeadPostClient
	LeadValidation() LeadValidationClient
	Lists() ListsClient
	Callbacks() CallbacksClient
}

// ComplianceClients provides access to suppression list clients.
type ComplianceClients interface {
	DNC() DNCClient
	SMSOptOut() SMSOptOutClient
}

// CallClients provides access to campaign and call record clients.
type CallClients interface {
	Campaigns() CampaignsClient
	CallLogs() CallLogsClient
	Revenue() RevenueClient
	Statuses() StatusesClient
}

// Client is the Convoso API client.
type Client interface {
	// BaseURL returns the API root requests are sent to.
	BaseURL() string

	AgentClients
	LeadClients
	ComplianceClients
	CallClients
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a convoso.Client.
//
// A Config is read once by convosoclient.New; changing it afterwards has no
// effect on clients already built from it.
type Config struct {
	// Required fields
	// APIKey: the account API token, sent as the auth_token query parameter
	// on every request.
	APIKey string

	// Optional configurations
	// BaseURL: API root (default "https://api.convoso.com/v1/"). A value
	// without a scheme gets "https://" prepended.
	BaseURL string
	// Timeout: per-attempt deadline (default 30s). An attempt that runs past
	// it fails with an APIError whose Code is "TIMEOUT".
	Timeout time.Duration
	// MaxRetries: retries after the first attempt for 429 and 5xx responses
	// (default 3). Negative disables retries.
	MaxRetries int
	// RetryWaitMin: backoff base delay (default 1s). Retry n waits
	// min(RetryWaitMin * 2^n, RetryWaitMax).
	RetryWaitMin time.Duration
	// RetryWaitMax: backoff ceiling (default 30s).
	RetryWaitMax time.Duration
	// Headers: extra headers sent with every request. Per-call headers win
	// over these, and these win over Content-Type.
	Headers map[string]string
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// HTTPClient: optional base client whose transport is reused. Its Timeout
	// is replaced by Timeout above.
	HTTPClient *http.Client
	// Logger: optional structured logger. Nil disables logging.
	Logger Logger
	// Debug: log every request and response through Logger.
	Debug bool
}
