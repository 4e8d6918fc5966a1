package convoso

import "encoding/json"

// AgentMonitorSearchParams filters the live agent monitor. Every filter is
// optional and list filters accept one or more ids.
type AgentMonitorSearchParams struct {
	CampaignIDs  []int    `json:"campaign_id,omitempty"             yaml:"campaign_id,omitempty"`
	QueueIDs     []int    `json:"queue_id,omitempty"                yaml:"queue_id,omitempty"`
	UserIDs      []int    `json:"user_id,omitempty"                 yaml:"user_id,omitempty"`
	SkillOptions []string `json:"filter_by_skill_options,omitempty" yaml:"filter_by_skill_options,omitempty"`
	// Extra carries parameters not modeled above. It wins over typed fields.
	Extra Params `json:"-" yaml:"-"`
}

// Params returns the request parameters.
func (p *AgentMonitorSearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"campaign_id":             OptInts(p.CampaignIDs),
		"queue_id":                OptInts(p.QueueIDs),
		"user_id":                 OptInts(p.UserIDs),
		"filter_by_skill_options": OptStrings(p.SkillOptions),
	}, p.Extra)
}

// AgentStatus is the current state of an agent.
type AgentStatus struct {
	Status     string `json:"status,omitempty"      yaml:"status,omitempty"`
	StatusTime string `json:"status_time,omitempty" yaml:"status_time,omitempty"`
	Duration   int    `json:"duration,omitempty"    yaml:"duration,omitempty"`
}

// CurrentCall is the call an agent is on.
type CurrentCall struct {
	CallID        string `json:"call_id,omitempty"         yaml:"call_id,omitempty"`
	PhoneNumber   string `json:"phone_number,omitempty"    yaml:"phone_number,omitempty"`
	CallStartTime string `json:"call_start_time,omitempty" yaml:"call_start_time,omitempty"`
	CallDuration  int    `json:"call_duration,omitempty"   yaml:"call_duration,omitempty"`
}

// AgentMonitorData is one logged in agent.
type AgentMonitorData struct {
	UserID        int          `json:"user_id,omitempty"        yaml:"user_id,omitempty"`
	Username      string       `json:"username,omitempty"       yaml:"username,omitempty"`
	FirstName     string       `json:"first_name,omitempty"     yaml:"first_name,omitempty"`
	LastName      string       `json:"last_name,omitempty"      yaml:"last_name,omitempty"`
	Email         string       `json:"email,omitempty"          yaml:"email,omitempty"`
	CampaignID    int          `json:"campaign_id,omitempty"    yaml:"campaign_id,omitempty"`
	CampaignName  string       `json:"campaign_name,omitempty"  yaml:"campaign_name,omitempty"`
	QueueID       int          `json:"queue_id,omitempty"       yaml:"queue_id,omitempty"`
	QueueName     string       `json:"queue_name,omitempty"     yaml:"queue_name,omitempty"`
	Status        *AgentStatus `json:"status,omitempty"         yaml:"status,omitempty"`
	SkillOptions  []string     `json:"skill_options,omitempty"  yaml:"skill_options,omitempty"`
	LoginTime     string       `json:"login_time,omitempty"     yaml:"login_time,omitempty"`
	LoginDuration int          `json:"login_duration,omitempty" yaml:"login_duration,omitempty"`
	CurrentCall   *CurrentCall `json:"current_call,omitempty"   yaml:"current_call,omitempty"`
}

// AgentMonitorSearchResponse is the agent monitor search body.
type AgentMonitorSearchResponse struct {
	Success bool               `json:"success"           yaml:"success"`
	Message string             `json:"message,omitempty" yaml:"message,omitempty"`
	Data    []AgentMonitorData `json:"data,omitempty"    yaml:"data,omitempty"`
	Total   int                `json:"total,omitempty"   yaml:"total,omitempty"`
}

// AgentMonitorLogoutParams selects the agents to log out.
type AgentMonitorLogoutParams struct {
	UserIDs     []int `json:"user_id,omitempty"     yaml:"user_id,omitempty"`
	CampaignIDs []int `json:"campaign_id,omitempty" yaml:"campaign_id,omitempty"`
	QueueIDs    []int `json:"queue_id,omitempty"    yaml:"queue_id,omitempty"`
	// Force disconnects active calls.
	Force *bool  `json:"force,omitempty" yaml:"force,omitempty"`
	Extra Params `json:"-"               yaml:"-"`
}

// Params returns the request parameters.
func (p *AgentMonitorLogoutParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"user_id":     OptInts(p.UserIDs),
		"campaign_id": OptInts(p.CampaignIDs),
		"queue_id":    OptInts(p.QueueIDs),
		"force":       OptBool(p.Force),
	}, p.Extra)
}

// AgentMonitorLogoutResponse is the agent logout body.
type AgentMonitorLogoutResponse struct {
	Success        bool   `json:"success"                    yaml:"success"`
	Message        string `json:"message,omitempty"          yaml:"message,omitempty"`
	Count          int    `json:"count,omitempty"            yaml:"count,omitempty"`
	LoggedOutUsers []int  `json:"logged_out_users,omitempty" yaml:"logged_out_users,omitempty"`
}

// AgentPerformanceSearchParams selects performance records. Dates use
// "YYYY-MM-DD" or "YYYY-MM-DD HH:MM:SS" and default to today on the server.
type AgentPerformanceSearchParams struct {
	DateStart   string   `json:"date_start,omitempty"   yaml:"date_start,omitempty"`
	DateEnd     string   `json:"date_end,omitempty"     yaml:"date_end,omitempty"`
	CampaignIDs []int    `json:"campaign_ids,omitempty" yaml:"campaign_ids,omitempty"`
	ListIDs     []int    `json:"list_ids,omitempty"     yaml:"list_ids,omitempty"`
	QueueIDs    []int    `json:"queue_ids,omitempty"    yaml:"queue_ids,omitempty"`
	UserIDs     []int    `json:"user_ids,omitempty"     yaml:"user_ids,omitempty"`
	StatusIDs   []string `json:"status_ids,omitempty"   yaml:"status_ids,omitempty"`
	Extra       Params   `json:"-"                      yaml:"-"`
}

// Params returns the request parameters.
func (p *AgentPerformanceSearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"date_start":   NonEmpty(p.DateStart),
		"date_end":     NonEmpty(p.DateEnd),
		"campaign_ids": OptInts(p.CampaignIDs),
		"list_ids":     OptInts(p.ListIDs),
		"queue_ids":    OptInts(p.QueueIDs),
		"user_ids":     OptInts(p.UserIDs),
		"status_ids":   OptStrings(p.StatusIDs),
	}, p.Extra)
}

// AgentPerformanceMetrics is one agent's performance record.
type AgentPerformanceMetrics struct {
	UserID         int     `json:"user_id,omitempty"         yaml:"user_id,omitempty"`
	Username       string  `json:"username,omitempty"        yaml:"username,omitempty"`
	FirstName      string  `json:"first_name,omitempty"      yaml:"first_name,omitempty"`
	LastName       string  `json:"last_name,omitempty"       yaml:"last_name,omitempty"`
	CampaignID     int     `json:"campaign_id,omitempty"     yaml:"campaign_id,omitempty"`
	CampaignName   string  `json:"campaign_name,omitempty"   yaml:"campaign_name,omitempty"`
	QueueID        int     `json:"queue_id,omitempty"        yaml:"queue_id,omitempty"`
	QueueName      string  `json:"queue_name,omitempty"      yaml:"queue_name,omitempty"`
	TotalCalls     int     `json:"total_calls,omitempty"     yaml:"total_calls,omitempty"`
	TalkTime       float64 `json:"talk_time,omitempty"       yaml:"talk_time,omitempty"`
	WaitTime       float64 `json:"wait_time,omitempty"       yaml:"wait_time,omitempty"`
	PauseTime      float64 `json:"pause_time,omitempty"      yaml:"pause_time,omitempty"`
	LoginTime      float64 `json:"login_time,omitempty"      yaml:"login_time,omitempty"`
	Contacts       int     `json:"contacts,omitempty"        yaml:"contacts,omitempty"`
	ConversionRate float64 `json:"conversion_rate,omitempty" yaml:"conversion_rate,omitempty"`
	AvgHandleTime  float64 `json:"avg_handle_time,omitempty" yaml:"avg_handle_time,omitempty"`
	CallsPerHour   float64 `json:"calls_per_hour,omitempty"  yaml:"calls_per_hour,omitempty"`
	Sales          int     `json:"sales,omitempty"           yaml:"sales,omitempty"`
	Revenue        float64 `json:"revenue,omitempty"         yaml:"revenue,omitempty"`
}

// AgentPerformanceSearchResponse is the agent performance search body.
type AgentPerformanceSearchResponse struct {
	Success   bool                      `json:"success"              yaml:"success"`
	Message   string                    `json:"message,omitempty"    yaml:"message,omitempty"`
	Data      []AgentPerformanceMetrics `json:"data,omitempty"       yaml:"data,omitempty"`
	Total     int                       `json:"total,omitempty"      yaml:"total,omitempty"`
	DateRange *DateRange                `json:"date_range,omitempty" yaml:"date_range,omitempty"`
}

// AgentProductivitySearchParams selects productivity records.
type AgentProductivitySearchParams struct {
	DateStart   string   `json:"date_start,omitempty"   yaml:"date_start,omitempty"`
	DateEnd     string   `json:"date_end,omitempty"     yaml:"date_end,omitempty"`
	AgentEmails []string `json:"agent_emails,omitempty" yaml:"agent_emails,omitempty"`
	CampaignID  *int     `json:"campaign_id,omitempty"  yaml:"campaign_id,omitempty"`
	// Offset is clamped to [0, 50000].
	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty"`
	// Limit is clamped to [1, 1000].
	Limit *int   `json:"limit,omitempty" yaml:"limit,omitempty"`
	Extra Params `json:"-"               yaml:"-"`
}

// Params returns the request parameters.
func (p *AgentProductivitySearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{
		"date_start":   NonEmpty(p.DateStart),
		"date_end":     NonEmpty(p.DateEnd),
		"agent_emails": OptStrings(p.AgentEmails),
		"campaign_id":  OptInt(p.CampaignID),
	}
	applyPagination(params, p.Offset, p.Limit)

	return finish(params, p.Extra)
}

// AgentProductivityData is one agent's productivity record.
type AgentProductivityData struct {
	UserID                 int     `json:"user_id,omitempty"                 yaml:"user_id,omitempty"`
	Username               string  `json:"username,omitempty"                yaml:"username,omitempty"`
	Email                  string  `json:"email,omitempty"                   yaml:"email,omitempty"`
	FirstName              string  `json:"first_name,omitempty"              yaml:"first_name,omitempty"`
	LastName               string  `json:"last_name,omitempty"               yaml:"last_name,omitempty"`
	CampaignID             int     `json:"campaign_id,omitempty"             yaml:"campaign_id,omitempty"`
	CampaignName           string  `json:"campaign_name,omitempty"           yaml:"campaign_name,omitempty"`
	Date                   string  `json:"date,omitempty"                    yaml:"date,omitempty"`
	LoginTime              float64 `json:"login_time,omitempty"              yaml:"login_time,omitempty"`
	AvailableTime          float64 `json:"available_time,omitempty"          yaml:"available_time,omitempty"`
	OnCallTime             float64 `json:"on_call_time,omitempty"            yaml:"on_call_time,omitempty"`
	WrapUpTime             float64 `json:"wrap_up_time,omitempty"            yaml:"wrap_up_time,omitempty"`
	PauseTime              float64 `json:"pause_time,omitempty"              yaml:"pause_time,omitempty"`
	CallsHandled           int     `json:"calls_handled,omitempty"           yaml:"calls_handled,omitempty"`
	LeadsContacted         int     `json:"leads_contacted,omitempty"         yaml:"leads_contacted,omitempty"`
	ProductivityPercentage float64 `json:"productivity_percentage,omitempty" yaml:"productivity_percentage,omitempty"`
	UtilizationPercentage  float64 `json:"utilization_percentage,omitempty"  yaml:"utilization_percentage,omitempty"`
}

// AgentProductivitySearchResponse is the agent productivity search body.
type AgentProductivitySearchResponse struct {
	Success    bool                    `json:"success"              yaml:"success"`
	Message    string                  `json:"message,omitempty"    yaml:"message,omitempty"`
	Data       []AgentProductivityData `json:"data,omitempty"       yaml:"data,omitempty"`
	Total      int                     `json:"total,omitempty"      yaml:"total,omitempty"`
	Pagination *PageInfo               `json:"pagination,omitempty" yaml:"pagination,omitempty"`
	DateRange  *DateRange              `json:"date_range,omitempty" yaml:"date_range,omitempty"`
}

// UserActivitySearchParams filters agent availability counters.
type UserActivitySearchParams struct {
	CampaignIDs  []int    `json:"campaign_id,omitempty"             yaml:"campaign_id,omitempty"`
	QueueIDs     []int    `json:"queue_id,omitempty"                yaml:"queue_id,omitempty"`
	UserIDs      []int    `json:"user_id,omitempty"                 yaml:"user_id,omitempty"`
	SkillOptions []string `json:"filter_by_skill_options,omitempty" yaml:"filter_by_skill_options,omitempty"`
	Extra        Params   `json:"-"                                 yaml:"-"`
}

// Params returns the request parameters.
func (p *UserActivitySearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"campaign_id":             OptInts(p.CampaignIDs),
		"queue_id":                OptInts(p.QueueIDs),
		"user_id":                 OptInts(p.UserIDs),
		"filter_by_skill_options": OptStrings(p.SkillOptions),
	}, p.Extra)
}

// UserActivityData holds agent availability counters.
type UserActivityData struct {
	AvailableAgents int `json:"available_agents" yaml:"available_agents"`
	LoggedInAgents  int `json:"logged_in_agents" yaml:"logged_in_agents"`
}

// UserActivitySearchResponse is the user activity search body.
type UserActivitySearchResponse struct {
	Success bool             `json:"success" yaml:"success"`
	Data    UserActivityData `json:"data"    yaml:"data"`
}

// UsersRecordingsParams selects a user's recordings.
type UsersRecordingsParams struct {
	// User is the user id or email. Required.
	User      string `json:"user"                 yaml:"user"`
	StartTime string `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"   yaml:"end_time,omitempty"`
	Offset    *int   `json:"offset,omitempty"     yaml:"offset,omitempty"`
	Limit     *int   `json:"limit,omitempty"      yaml:"limit,omitempty"`
	Extra     Params `json:"-"                    yaml:"-"`
}

// Params returns the request parameters.
func (p *UsersRecordingsParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{
		"user":       String(p.User),
		"start_time": NonEmpty(p.StartTime),
		"end_time":   NonEmpty(p.EndTime),
	}
	applyPagination(params, p.Offset, p.Limit)

	return finish(params, p.Extra)
}

// UsersRecordingsErrors lists the failures of a user recordings lookup.
var UsersRecordingsErrors = ErrorSet{
	6005: "Missing users",
	7231: "Invalid offset value",
}

// UsersSearchParams selects users.
type UsersSearchParams struct {
	User   string `json:"user,omitempty"   yaml:"user,omitempty"`
	Offset *int   `json:"offset,omitempty" yaml:"offset,omitempty"`
	Limit  *int   `json:"limit,omitempty"  yaml:"limit,omitempty"`
	Extra  Params `json:"-"                yaml:"-"`
}

// Params returns the request parameters.
func (p *UsersSearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{"user": NonEmpty(p.User)}
	applyPagination(params, p.Offset, p.Limit)

	return finish(params, p.Extra)
}

// UserData is one user account.
type UserData struct {
	ID                      int     `json:"id"                        yaml:"id"`
	ACLAccessProfile        int     `json:"acl_access_profile"        yaml:"acl_access_profile"`
	Email                   string  `json:"email"                     yaml:"email"`
	FirstName               string  `json:"first_name"                yaml:"first_name"`
	LastName                string  `json:"last_name"                 yaml:"last_name"`
	UserLevel               int     `json:"user_level"                yaml:"user_level"`
	QueueOverride           string  `json:"queue_override"            yaml:"queue_override"`
	AllowQueueSelection     string  `json:"allow_queue_selection"     yaml:"allow_queue_selection"`
	AllowCallbacks          string  `json:"allow_callbacks"           yaml:"allow_callbacks"`
	CallbackTypesAllowed    string  `json:"callback_types_allowed"    yaml:"callback_types_allowed"`
	AllowTransfers          string  `json:"allow_transfers"           yaml:"allow_transfers"`
	DefaultBlendedSelection string  `json:"default_blended_selection" yaml:"default_blended_selection"`
	AlterCustdataOverride   string  `json:"alter_custdata_override"   yaml:"alter_custdata_override"`
	Status                  string  `json:"status"                    yaml:"status"`
	LocalGMT                string  `json:"local_gmt"                 yaml:"local_gmt"`
	AllowBlendedCampaign    string  `json:"allow_blended_campaign"    yaml:"allow_blended_campaign"`
	Notification            string  `json:"notification"              yaml:"notification"`
	CreatedAt               string  `json:"created_at"                yaml:"created_at"`
	ConnectionType          string  `json:"connection_type"           yaml:"connection_type"`
	Extension               []int   `json:"extension"                 yaml:"extension"`
	LastLogin               *string `json:"last_login"                yaml:"last_login"`
}

// UsersPage is a page of users keyed by user id. The server sends limit and
// total as strings.
type UsersPage struct {
	Offset  int                 `json:"offset"  yaml:"offset"`
	Limit   json.Number         `json:"limit"   yaml:"limit"`
	Total   json.Number         `json:"total"   yaml:"total"`
	Results map[string]UserData `json:"results" yaml:"results"`
}

// UsersSearchResponse is the users search body.
type UsersSearchResponse struct {
	Success bool       `json:"success"        yaml:"success"`
	Data    *UsersPage `json:"data,omitempty" yaml:"data,omitempty"`
}

// UsersSearchErrors lists the failures of a users search.
var UsersSearchErrors = ErrorSet{
	6005: "Missing users",
	7231: "Invalid offset value",
}
