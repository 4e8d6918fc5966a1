package convoso

// Call types accepted by the call log search.
const (
	CallTypeOutbound = "OUTBOUND"
	CallTypeInbound  = "INBOUND"
	CallTypeManual   = "MANUAL"
	CallType3Way     = "3WAY"
)

// Sort orders accepted by the call log search.
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// CallLogsSearchParams filters call log records.
type CallLogsSearchParams struct {
	ID           string `json:"id,omitempty"            yaml:"id,omitempty"`
	LeadID       string `json:"lead_id,omitempty"       yaml:"lead_id,omitempty"`
	CampaignID   string `json:"campaign_id,omitempty"   yaml:"campaign_id,omitempty"`
	QueueID      string `json:"queue_id,omitempty"      yaml:"queue_id,omitempty"`
	ListID       string `json:"list_id,omitempty"       yaml:"list_id,omitempty"`
	UserID       string `json:"user_id,omitempty"       yaml:"user_id,omitempty"`
	CallType     string `json:"call_type,omitempty"     yaml:"call_type,omitempty"`
	CalledCount  string `json:"called_count,omitempty"  yaml:"called_count,omitempty"`
	Status       string `json:"status,omitempty"        yaml:"status,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"  yaml:"phone_number,omitempty"`
	NumberDialed string `json:"number_dialed,omitempty" yaml:"number_dialed,omitempty"`
	FirstName    string `json:"first_name,omitempty"    yaml:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"     yaml:"last_name,omitempty"`
	StartTime    string `json:"start_time,omitempty"    yaml:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"      yaml:"end_time,omitempty"`
	Offset       *int   `json:"offset,omitempty"        yaml:"offset,omitempty"`
	Limit        *int   `json:"limit,omitempty"         yaml:"limit,omitempty"`
	Order        string `json:"order,omitempty"         yaml:"order,omitempty"`
	// IncludeRecordings adds recording URLs to each record when true.
	IncludeRecordings bool   `json:"include_recordings,omitempty" yaml:"include_recordings,omitempty"`
	Extra             Params `json:"-"                            yaml:"-"`
}

// Params returns the request parameters.
func (p *CallLogsSearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{
		"id":            NonEmpty(p.ID),
		"lead_id":       NonEmpty(p.LeadID),
		"campaign_id":   NonEmpty(p.CampaignID),
		"queue_id":      NonEmpty(p.QueueID),
		"list_id":       NonEmpty(p.ListID),
		"user_id":       NonEmpty(p.UserID),
		"call_type":     NonEmpty(p.CallType),
		"called_count":  NonEmpty(p.CalledCount),
		"status":        NonEmpty(p.Status),
		"phone_number":  NonEmpty(p.PhoneNumber),
		"number_dialed": NonEmpty(p.NumberDialed),
		"first_name":    NonEmpty(p.FirstName),
		"last_name":     NonEmpty(p.LastName),
		"start_time":    NonEmpty(p.StartTime),
		"end_time":      NonEmpty(p.EndTime),
		"order":         NonEmpty(p.Order),
	}
	applyPagination(params, p.Offset, p.Limit)

	if p.IncludeRecordings {
		params.Set("include_recordings", Int(1))
	}

	return finish(params, p.Extra)
}

// CallLogData is one call log record. Nullable columns decode to "".
type CallLogData struct {
	ID                 string `json:"id,omitempty"                   yaml:"id,omitempty"`
	LeadID             string `json:"lead_id,omitempty"              yaml:"lead_id,omitempty"`
	ListID             string `json:"list_id,omitempty"              yaml:"list_id,omitempty"`
	CampaignID         string `json:"campaign_id,omitempty"          yaml:"campaign_id,omitempty"`
	Campaign           string `json:"campaign,omitempty"             yaml:"campaign,omitempty"`
	User               string `json:"user,omitempty"                 yaml:"user,omitempty"`
	UserID             string `json:"user_id,omitempty"              yaml:"user_id,omitempty"`
	PhoneNumber        string `json:"phone_number,omitempty"         yaml:"phone_number,omitempty"`
	NumberDialed       string `json:"number_dialed,omitempty"        yaml:"number_dialed,omitempty"`
	FirstName          string `json:"first_name,omitempty"           yaml:"first_name,omitempty"`
	LastName           string `json:"last_name,omitempty"            yaml:"last_name,omitempty"`
	Status             string `json:"status,omitempty"               yaml:"status,omitempty"`
	StatusName         string `json:"status_name,omitempty"          yaml:"status_name,omitempty"`
	CallLength         string `json:"call_length,omitempty"          yaml:"call_length,omitempty"`
	CallDate           string `json:"call_date,omitempty"            yaml:"call_date,omitempty"`
	AgentComment       string `json:"agent_comment,omitempty"        yaml:"agent_comment,omitempty"`
	QueueID            string `json:"queue_id,omitempty"             yaml:"queue_id,omitempty"`
	CalledCount        string `json:"called_count,omitempty"         yaml:"called_count,omitempty"`
	CallerIDDisplayed  string `json:"caller_id_displayed,omitempty"  yaml:"caller_id_displayed,omitempty"`
	TermReason         string `json:"term_reason,omitempty"          yaml:"term_reason,omitempty"`
	CallType           string `json:"call_type,omitempty"            yaml:"call_type,omitempty"`
	QueuePosition      string `json:"queue_position,omitempty"       yaml:"queue_position,omitempty"`
	QueueSeconds       string `json:"queue_seconds,omitempty"        yaml:"queue_seconds,omitempty"`
	OriginatingAgentID string `json:"originating_agent_id,omitempty" yaml:"originating_agent_id,omitempty"`
	SessionID          string `json:"session_id,omitempty"           yaml:"session_id,omitempty"`
}

// CallLogsPage is a page of call log records.
type CallLogsPage struct {
	Offset     int           `json:"offset,omitempty"      yaml:"offset,omitempty"`
	Limit      int           `json:"limit,omitempty"       yaml:"limit,omitempty"`
	TotalFound int           `json:"total_found,omitempty" yaml:"total_found,omitempty"`
	Entries    int           `json:"entries,omitempty"     yaml:"entries,omitempty"`
	Results    []CallLogData `json:"results,omitempty"     yaml:"results,omitempty"`
}

// CallLogsSearchResponse is the call log retrieve body.
type CallLogsSearchResponse struct {
	Success bool          `json:"success"        yaml:"success"`
	Data    *CallLogsPage `json:"data,omitempty" yaml:"data,omitempty"`
}

// CallLogsUpdateParams annotates a call log record.
type CallLogsUpdateParams struct {
	CallLogID    string `json:"call_log_id"             yaml:"call_log_id"`
	Status       string `json:"status,omitempty"        yaml:"status,omitempty"`
	AgentComment string `json:"agent_comment,omitempty" yaml:"agent_comment,omitempty"`
	Extra        Params `json:"-"                       yaml:"-"`
}

// Params returns the request parameters.
func (p *CallLogsUpdateParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"call_log_id":   String(p.CallLogID),
		"status":        NonEmpty(p.Status),
		"agent_comment": NonEmpty(p.AgentComment),
	}, p.Extra)
}

// CallLogIDData carries the id of an updated call log.
type CallLogIDData struct {
	CallLogID string `json:"call_log_id" yaml:"call_log_id"`
}

// CallLogsUpdateResponse is the call log update body.
type CallLogsUpdateResponse struct {
	Success bool          `json:"success"        yaml:"success"`
	Data    CallLogIDData `json:"data,omitempty" yaml:"data,omitempty"`
}

// Callback recipients.
const (
	RecipientSystem   = "System"
	RecipientPersonal = "Personal"
)

// Callback stages.
const (
	StageCompleted = "COMPLETED"
	StagePastDue   = "PAST_DUE"
	StagePending   = "PENDING"
	StageDismissed = "DISMISSED"
)

// CallbackInsertParams schedules a callback.
type CallbackInsertParams struct {
	LeadID           string `json:"lead_id"            yaml:"lead_id"`
	Recipient        string `json:"recipient"          yaml:"recipient"`
	CallbackTimeZone string `json:"callback_time_zone" yaml:"callback_time_zone"`
	CallbackTime     string `json:"callback_time"      yaml:"callback_time"`
	UserID           string `json:"user_id,omitempty"  yaml:"user_id,omitempty"`
	Comments         string `json:"comments,omitempty" yaml:"comments,omitempty"`
	Extra            Params `json:"-"                  yaml:"-"`
}

// Params returns the request parameters.
func (p *CallbackInsertParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"lead_id":            String(p.LeadID),
		"recipient":          String(p.Recipient),
		"callback_time_zone": String(p.CallbackTimeZone),
		"callback_time":      String(p.CallbackTime),
		"user_id":            NonEmpty(p.UserID),
		"comments":           NonEmpty(p.Comments),
	}, p.Extra)
}

// CallbackIDData carries the id of a callback.
type CallbackIDData struct {
	CallbackID string `json:"callback_id" yaml:"callback_id"`
}

// CallbackInsertResponse is the callback insert body.
type CallbackInsertResponse struct {
	Success bool            `json:"success"        yaml:"success"`
	Data    *CallbackIDData `json:"data,omitempty" yaml:"data,omitempty"`
}

// CallbackInsertErrors lists the failures of a callback insert.
var CallbackInsertErrors = ErrorSet{
	6038: "No such Callback",
	6001: "No such Lead",
	6006: "No such User",
	6023: "Required fields are missed",
	7237: "Invalid callback_time",
}

// CallbackUpdateParams changes a callback.
type CallbackUpdateParams struct {
	CallbackID       string `json:"callback_id"                  yaml:"callback_id"`
	UserID           string `json:"user_id,omitempty"            yaml:"user_id,omitempty"`
	Recipient        string `json:"recipient,omitempty"          yaml:"recipient,omitempty"`
	Comments         string `json:"comments,omitempty"           yaml:"comments,omitempty"`
	CallbackTimeZone string `json:"callback_time_zone,omitempty" yaml:"callback_time_zone,omitempty"`
	CallbackTime     string `json:"callback_time,omitempty"      yaml:"callback_time,omitempty"`
	Status           string `json:"status,omitempty"             yaml:"status,omitempty"`
	Extra            Params `json:"-"                            yaml:"-"`
}

// Params returns the request parameters.
func (p *CallbackUpdateParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"callback_id":        String(p.CallbackID),
		"user_id":            NonEmpty(p.UserID),
		"recipient":          NonEmpty(p.Recipient),
		"comments":           NonEmpty(p.Comments),
		"callback_time_zone": NonEmpty(p.CallbackTimeZone),
		"callback_time":      NonEmpty(p.CallbackTime),
		"status":             NonEmpty(p.Status),
	}, p.Extra)
}

// CallbackUpdateResponse is the callback update body.
type CallbackUpdateResponse = CallbackInsertResponse

// CallbackUpdateErrors lists the failures of a callback update.
var CallbackUpdateErrors = ErrorSet{
	6006: "No such User",
	6023: "Required fields are missed",
	6038: "No such Callback",
	7237: "Invalid callback_time",
}

// CallbackDeleteParams identifies the callback to delete.
type CallbackDeleteParams struct {
	CallbackID string `json:"callback_id" yaml:"callback_id"`
	Extra      Params `json:"-"           yaml:"-"`
}

// Params returns the request parameters.
func (p *CallbackDeleteParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{"callback_id": String(p.CallbackID)}, p.Extra)
}

// CallbackDeleteResponse is the callback delete body.
type CallbackDeleteResponse = SuccessResponse

// CallbackDeleteErrors lists the failures of a callback delete.
var CallbackDeleteErrors = ErrorSet{
	6038: "No such Callback",
}

// CallbackSearchParams filters callbacks.
type CallbackSearchParams struct {
	CampaignID string `json:"campaign_id,omitempty" yaml:"campaign_id,omitempty"`
	Comments   string `json:"comments,omitempty"    yaml:"comments,omitempty"`
	ID         *int   `json:"id,omitempty"          yaml:"id,omitempty"`
	LeadID     *int   `json:"lead_id,omitempty"     yaml:"lead_id,omitempty"`
	ListID     *int   `json:"list_id,omitempty"     yaml:"list_id,omitempty"`
	Recipient  string `json:"recipient,omitempty"   yaml:"recipient,omitempty"`
	UserID     string `json:"user_id,omitempty"     yaml:"user_id,omitempty"`
	Stage      string `json:"stage,omitempty"       yaml:"stage,omitempty"`
	StartDate  string `json:"start_date,omitempty"  yaml:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"    yaml:"end_date,omitempty"`
	// Offset is clamped to [0, 50000].
	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty"`
	// Limit is clamped to [1, 5000].
	Limit *int   `json:"limit,omitempty" yaml:"limit,omitempty"`
	Extra Params `json:"-"               yaml:"-"`
}

// Params returns the request parameters.
func (p *CallbackSearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{
		"campaign_id": NonEmpty(p.CampaignID),
		"comments":    NonEmpty(p.Comments),
		"id":          OptInt(p.ID),
		"lead_id":     OptInt(p.LeadID),
		"list_id":     OptInt(p.ListID),
		"recipient":   NonEmpty(p.Recipient),
		"user_id":     NonEmpty(p.UserID),
		"stage":       NonEmpty(p.Stage),
		"start_date":  NonEmpty(p.StartDate),
		"end_date":    NonEmpty(p.EndDate),
	}
	applyPagination(params, p.Offset, p.Limit)

	return finish(params, p.Extra)
}

// CallbackData is one scheduled callback.
type CallbackData struct {
	ID            string `json:"id"             yaml:"id"`
	LeadID        string `json:"lead_id"        yaml:"lead_id"`
	ListID        string `json:"list_id"        yaml:"list_id"`
	CampaignID    string `json:"campaign_id"    yaml:"campaign_id"`
	Status        string `json:"status"         yaml:"status"`
	CreatedAt     string `json:"created_at"     yaml:"created_at"`
	CallbackTime  string `json:"callback_time"  yaml:"callback_time"`
	ModifiedAt    string `json:"modified_at"    yaml:"modified_at"`
	User          string `json:"user"           yaml:"user"`
	Recipient     string `json:"recipient"      yaml:"recipient"`
	Comments      string `json:"comments"       yaml:"comments"`
	Context       string `json:"context"        yaml:"context"`
	CallbackSeen  string `json:"callback_seen"  yaml:"callback_seen"`
	PhoneNumber   string `json:"phone_number"   yaml:"phone_number"`
	Stage         string `json:"stage"          yaml:"stage"`
	Class         string `json:"class"          yaml:"class"`
	UserName      string `json:"user_name"      yaml:"user_name"`
	DirectoryName string `json:"directory_name" yaml:"directory_name"`
	CampaignName  string `json:"campaign_name"  yaml:"campaign_name"`
	CampaignType  string `json:"campaign_type"  yaml:"campaign_type"`
	StatusName    string `json:"status_name"    yaml:"status_name"`
}

// CallbacksPage is a page of callbacks.
type CallbacksPage struct {
	Offset  int            `json:"offset"  yaml:"offset"`
	Limit   int            `json:"limit"   yaml:"limit"`
	Total   int            `json:"total"   yaml:"total"`
	Results []CallbackData `json:"results" yaml:"results"`
}

// CallbackSearchResponse is the callback search body.
type CallbackSearchResponse struct {
	Success bool           `json:"success"        yaml:"success"`
	Data    *CallbacksPage `json:"data,omitempty" yaml:"data,omitempty"`
}

// CallbackSearchErrors lists the failures of a callback search.
var CallbackSearchErrors = ErrorSet{
	6000: "Missing callbacks",
	7231: "Invalid offset value",
}

// Campaign status toggles.
const (
	CampaignDeactivate = 0
	CampaignActivate   = 1
)

// CampaignStatusParams activates or deactivates a campaign.
type CampaignStatusParams struct {
	CampaignID string `json:"campaign_id" yaml:"campaign_id"`
	// Status is CampaignActivate or CampaignDeactivate.
	Status int    `json:"status" yaml:"status"`
	Extra  Params `json:"-"      yaml:"-"`
}

// Params returns the request parameters.
func (p *CampaignStatusParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"campaign_id": String(p.CampaignID),
		"status":      Int(p.Status),
	}, p.Extra)
}

// CampaignStatusResponse is the campaign status body.
type CampaignStatusResponse = SuccessResponse

// CampaignStatusErrors lists the failures of a campaign status toggle.
var CampaignStatusErrors = ErrorSet{
	6004: "Unknown Campaign ID",
	6010: "Missing status",
}

// CampaignData is one campaign.
type CampaignData struct {
	ID           int       `json:"id"             yaml:"id"`
	Name         string    `json:"name"           yaml:"name"`
	Status       YesNo     `json:"status"         yaml:"status"`
	LastCallDate *DateTime `json:"last_call_date" yaml:"last_call_date"`
}

// CampaignSearchResponse is the campaign search body.
type CampaignSearchResponse struct {
	Success bool           `json:"success"        yaml:"success"`
	Data    []CampaignData `json:"data,omitempty" yaml:"data,omitempty"`
}

// RevenueUpdateParams records revenue or a return against a call log.
// At least one of Revenue and Return must be set.
type RevenueUpdateParams struct {
	CallLogID string   `json:"call_log_id"       yaml:"call_log_id"`
	Revenue   *float64 `json:"revenue,omitempty" yaml:"revenue,omitempty"`
	Return    *float64 `json:"return,omitempty"  yaml:"return,omitempty"`
	Extra     Params   `json:"-"                 yaml:"-"`
}

// Params returns the request parameters.
func (p *RevenueUpdateParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"call_log_id": String(p.CallLogID),
		"revenue":     OptFloat(p.Revenue),
		"return":      OptFloat(p.Return),
	}, p.Extra)
}

// RevenueUpdateResponse is the revenue update body.
type RevenueUpdateResponse struct {
	Success bool          `json:"success" yaml:"success"`
	Data    CallLogIDData `json:"data"    yaml:"data"`
}

// RevenueUpdateErrors lists the failures of a revenue update.
var RevenueUpdateErrors = ErrorSet{
	6032: "Missing Call Log ID",
	6033: "No such Call Log",
	6036: "Either Revenue or Return need to have value",
}

// StatusesInsertParams creates a custom status. Status is a 2-6 character
// alphanumeric abbreviation. HexColor may carry a leading "#".
type StatusesInsertParams struct {
	Status    string `json:"status"              yaml:"status"`
	Name      string `json:"name"                yaml:"name"`
	HexColor  string `json:"hex_color,omitempty" yaml:"hex_color,omitempty"`
	Final     YesNo  `json:"final"               yaml:"final"`
	Reached   YesNo  `json:"reached"             yaml:"reached"`
	Success   YesNo  `json:"success"             yaml:"success"`
	DNC       YesNo  `json:"dnc"                 yaml:"dnc"`
	Callback  YesNo  `json:"callback"            yaml:"callback"`
	Contact   YesNo  `json:"contact"             yaml:"contact"`
	Voicemail YesNo  `json:"voicemail"           yaml:"voicemail"`
	Extra     Params `json:"-"                   yaml:"-"`
}

// Params returns the request parameters.
func (p *StatusesInsertParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"status":    String(p.Status),
		"name":      String(p.Name),
		"hex_color": NonEmpty(NormalizeHexColor(p.HexColor)),
		"final":     String(string(p.Final)),
		"reached":   String(string(p.Reached)),
		"success":   String(string(p.Success)),
		"dnc":       String(string(p.DNC)),
		"callback":  String(string(p.Callback)),
		"contact":   String(string(p.Contact)),
		"voicemail": String(string(p.Voicemail)),
	}, p.Extra)
}

// StatusInsertData describes a created status.
type StatusInsertData struct {
	New    string `json:"new"    yaml:"new"`
	Status string `json:"status" yaml:"status"`
}

// StatusesInsertResponse is the status insert body.
type StatusesInsertResponse struct {
	Success bool             `json:"success" yaml:"success"`
	Code    int              `json:"code"    yaml:"code"`
	Data    StatusInsertData `json:"data"    yaml:"data"`
}

// StatusesInsertErrors lists the failures of a status insert.
var StatusesInsertErrors = ErrorSet{
	6060: "Missing Status Description",
	6061: "Missing or Invalid Status Abbreviation, only Alphanumeric characters allowed. Must be between 2-6 characters long.",
	6062: "Missing or Invalid Final option, Must be Y for Yes or N for No.",
	6063: "Missing or Invalid Reached option, Must be Y for Yes or N for No.",
	6064: "Missing or Invalid Success option, Must be Y for Yes or N for No.",
	6065: "Missing or Invalid DNC option, Must be Y for Yes or N for No.",
	6066: "Missing or Invalid Callback option, Must be Y for Yes or N for No.",
	6067: "Missing or Invalid Contact option, Must be Y for Yes or N for No.",
	6068: "Missing or Invalid Voicemail option, Must be Y for Yes or N for No.",
	6078: "HEX color defined is invalid, do not include #, valid example: 6711d1.",
}

// StatusesUpdateParams changes a custom status. Empty flags are not sent.
type StatusesUpdateParams struct {
	Status    string `json:"status"              yaml:"status"`
	Name      string `json:"name,omitempty"      yaml:"name,omitempty"`
	HexColor  string `json:"hex_color,omitempty" yaml:"hex_color,omitempty"`
	Final     YesNo  `json:"final,omitempty"     yaml:"final,omitempty"`
	Reached   YesNo  `json:"reached,omitempty"   yaml:"reached,omitempty"`
	Success   YesNo  `json:"success,omitempty"   yaml:"success,omitempty"`
	DNC       YesNo  `json:"dnc,omitempty"       yaml:"dnc,omitempty"`
	Callback  YesNo  `json:"callback,omitempty"  yaml:"callback,omitempty"`
	Contact   YesNo  `json:"contact,omitempty"   yaml:"contact,omitempty"`
	Voicemail YesNo  `json:"voicemail,omitempty" yaml:"voicemail,omitempty"`
	Extra     Params `json:"-"                   yaml:"-"`
}

// Params returns the request parameters.
func (p *StatusesUpdateParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"status":    String(p.Status),
		"name":      NonEmpty(p.Name),
		"hex_color": NonEmpty(NormalizeHexColor(p.HexColor)),
		"final":     NonEmpty(string(p.Final)),
		"reached":   NonEmpty(string(p.Reached)),
		"success":   NonEmpty(string(p.Success)),
		"dnc":       NonEmpty(string(p.DNC)),
		"callback":  NonEmpty(string(p.Callback)),
		"contact":   NonEmpty(string(p.Contact)),
		"voicemail": NonEmpty(string(p.Voicemail)),
	}, p.Extra)
}

// StatusUpdateData names an updated status.
type StatusUpdateData struct {
	Status string `json:"status" yaml:"status"`
}

// StatusesUpdateResponse is the status update body.
type StatusesUpdateResponse struct {
	Success bool             `json:"success" yaml:"success"`
	Data    StatusUpdateData `json:"data"    yaml:"data"`
}

// StatusesUpdateErrors lists the failures of a status update.
var StatusesUpdateErrors = ErrorSet{
	6069: "Missing or Invalid Status Abbreviation, Only custom statuses can be modified.",
	6071: "Final option can not be set to a empty value, please assign a Y for Yes or N for No or dont set parameter.",
	6072: "Reached option can not be set to a empty value, please assign a Y for Yes or N for No or dont set parameter.",
	6073: "Success option can not be set to a empty value, please assign a Y for Yes or N for No or dont set parameter.",
	6074: "DNC option can not be set to a empty value, please assign a Y for Yes or N for No or dont set parameter.",
	6075: "Callback option can not be set to a empty value, please assign a Y for Yes or N for No or dont set parameter.",
	6076: "Contact option can not be set to a empty value, please assign a Y for Yes or N for No or dont set parameter.",
	6077: "Voicemail option can not be set to a empty value, please assign a Y for Yes or N for No or dont set parameter.",
	6078: "HEX color defined is invalid, do not include #, valid example: 6711d1.",
}

// StatusesSearchParams searches statuses by abbreviation or name.
type StatusesSearchParams struct {
	Query string `json:"query" yaml:"query"`
	Extra Params `json:"-"     yaml:"-"`
}

// Params returns the request parameters.
func (p *StatusesSearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{"query": String(p.Query)}, p.Extra)
}

// StatusData is one status.
type StatusData struct {
	Status                         string `json:"status"                           yaml:"status"`
	Name                           string `json:"name"                             yaml:"name"`
	Final                          YesNo  `json:"final"                            yaml:"final"`
	Reached                        YesNo  `json:"reached"                          yaml:"reached"`
	Success                        YesNo  `json:"success"                          yaml:"success"`
	DNC                            YesNo  `json:"dnc"                              yaml:"dnc"`
	Callback                       YesNo  `json:"callback"                         yaml:"callback"`
	Contact                        YesNo  `json:"contact"                          yaml:"contact"`
	Voicemail                      YesNo  `json:"voicemail"                        yaml:"voicemail"`
	WorkflowDispositionEventOption int    `json:"workflow_dispositon_event_option" yaml:"workflow_dispositon_event_option"`
	CustomStatus                   YesNo  `json:"custom_status"                    yaml:"custom_status"`
}

// StatusesSearchResponse is the status search body.
type StatusesSearchResponse struct {
	Success bool         `json:"success" yaml:"success"`
	Data    []StatusData `json:"data"    yaml:"data"`
}
