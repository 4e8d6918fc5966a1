package convoso

import (
	"encoding/json"
	"fmt"
)

// LeadsInsertParams describes a lead to create. ListID and PhoneNumber are
// required.
type LeadsInsertParams struct {
	ListID      int    `json:"list_id"      yaml:"list_id"`
	PhoneNumber string `json:"phone_number" yaml:"phone_number"`
	LeadFields  `yaml:",inline"`

	// CheckDup selects duplicate checking (0 none, 1 list, 2 campaign, 3 system).
	CheckDup        *int  `json:"check_dup,omitempty"         yaml:"check_dup,omitempty"`
	CheckDupArchive *bool `json:"check_dup_archive,omitempty" yaml:"check_dup_archive,omitempty"`
	CheckDNC        *bool `json:"check_dnc,omitempty"         yaml:"check_dnc,omitempty"`
	CheckWireless   *bool `json:"check_wireless,omitempty"    yaml:"check_wireless,omitempty"`
	Hopper          *bool `json:"hopper,omitempty"            yaml:"hopper,omitempty"`
	HopperPriority  *int  `json:"hopper_priority,omitempty"   yaml:"hopper_priority,omitempty"`
	HopperExpiresIn *int  `json:"hopper_expires_in,omitempty" yaml:"hopper_expires_in,omitempty"`

	BlueInkDigitalToken         string `json:"blueinkdigital_token,omitempty"             yaml:"blueinkdigital_token,omitempty"`
	RejectByCarrierType         string `json:"reject_by_carrier_type,omitempty"           yaml:"reject_by_carrier_type,omitempty"`
	FilterPhoneCode             *bool  `json:"filter_phone_code,omitempty"                yaml:"filter_phone_code,omitempty"`
	UpdateIfFound               *bool  `json:"update_if_found,omitempty"                  yaml:"update_if_found,omitempty"`
	SearchCampaignID            *int   `json:"search_campaign_id,omitempty"               yaml:"search_campaign_id,omitempty"`
	SearchListID                *int   `json:"search_list_id,omitempty"                   yaml:"search_list_id,omitempty"`
	UpdateOrderByLastCalledTime string `json:"update_order_by_last_called_time,omitempty" yaml:"update_order_by_last_called_time,omitempty"`
	LeadID                      *int   `json:"lead_id,omitempty"                          yaml:"lead_id,omitempty"`

	Extra Params `json:"-" yaml:"-"`
}

// Params returns the request parameters.
func (p *LeadsInsertParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{
		"list_id":                          Int(p.ListID),
		"phone_number":                     String(p.PhoneNumber),
		"check_dup":                        OptInt(p.CheckDup),
		"check_dup_archive":                OptBool(p.CheckDupArchive),
		"check_dnc":                        OptBool(p.CheckDNC),
		"check_wireless":                   OptBool(p.CheckWireless),
		"hopper":                           OptBool(p.Hopper),
		"hopper_priority":                  OptInt(p.HopperPriority),
		"hopper_expires_in":                OptInt(p.HopperExpiresIn),
		"blueinkdigital_token":             NonEmpty(p.BlueInkDigitalToken),
		"reject_by_carrier_type":           NonEmpty(p.RejectByCarrierType),
		"filter_phone_code":                OptBool(p.FilterPhoneCode),
		"update_if_found":                  OptBool(p.UpdateIfFound),
		"search_campaign_id":               OptInt(p.SearchCampaignID),
		"search_list_id":                   OptInt(p.SearchListID),
		"update_order_by_last_called_time": NonEmpty(p.UpdateOrderByLastCalledTime),
		"lead_id":                          OptInt(p.LeadID),
	}
	p.LeadFields.apply(params)

	return finish(params, p.Extra)
}

// LeadsInsertResponse is the lead insert body.
type LeadsInsertResponse struct {
	Success bool       `json:"success" yaml:"success"`
	Data    LeadIDData `json:"data"    yaml:"data"`
}

// LeadsInsertErrors lists the failures of a lead insert.
var LeadsInsertErrors = ErrorSet{
	6002: "No such List",
	6006: "No such User",
	6007: "The Lead requires a phone number and list id",
	6008: "The phone number is invalid",
	6009: "The phone number already exists",
	6023: "Required fields are missed",
	6079: "Invalid Email(s)",
}

// LeadsUpdateParams describes changes to an existing lead. LeadID is required.
type LeadsUpdateParams struct {
	LeadID      int    `json:"lead_id"                yaml:"lead_id"`
	ListID      *int   `json:"list_id,omitempty"      yaml:"list_id,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	LeadFields  `yaml:",inline"`
	Extra       Params `json:"-" yaml:"-"`
}

// Params returns the request parameters.
func (p *LeadsUpdateParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{
		"lead_id":      Int(p.LeadID),
		"list_id":      OptInt(p.ListID),
		"phone_number": NonEmpty(p.PhoneNumber),
	}
	p.LeadFields.apply(params)

	return finish(params, p.Extra)
}

// LeadsUpdateResponse is the lead update body.
type LeadsUpdateResponse struct {
	Success bool       `json:"success" yaml:"success"`
	Data    LeadIDData `json:"data"    yaml:"data"`
}

// LeadsUpdateErrors lists the failures of a lead update.
var LeadsUpdateErrors = ErrorSet{
	6001: "No such Lead",
	6002: "No such List",
	6006: "No such User",
	6008: "The phone number is invalid",
	6079: "Invalid Email(s)",
}

// LeadsDeleteParams identifies the lead to delete.
type LeadsDeleteParams struct {
	LeadID int    `json:"lead_id" yaml:"lead_id"`
	Extra  Params `json:"-"       yaml:"-"`
}

// Params returns the request parameters.
func (p *LeadsDeleteParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{"lead_id": Int(p.LeadID)}, p.Extra)
}

// LeadsDeleteResponse is the lead delete body.
type LeadsDeleteResponse = SuccessResponse

// LeadsDeleteErrors lists the failures of a lead delete.
var LeadsDeleteErrors = ErrorSet{
	6001: "No such Lead",
}

// LeadsSearchParams filters leads. Date filters use "YYYY-MM-DD" or
// "YYYY-MM-DD HH:MM:SS".
type LeadsSearchParams struct {
	LeadID      *int   `json:"lead_id,omitempty"      yaml:"lead_id,omitempty"`
	ListID      *int   `json:"list_id,omitempty"      yaml:"list_id,omitempty"`
	UserID      string `json:"user_id,omitempty"      yaml:"user_id,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	LeadFields  `yaml:",inline"`

	CreatedAtStartDate string `json:"created_at_start_date,omitempty" yaml:"created_at_start_date,omitempty"`
	CreatedAtEndDate   string `json:"created_at_end_date,omitempty"   yaml:"created_at_end_date,omitempty"`
	UpdatedAtStartDate string `json:"updated_at_start_date,omitempty" yaml:"updated_at_start_date,omitempty"`
	UpdatedAtEndDate   string `json:"updated_at_end_date,omitempty"   yaml:"updated_at_end_date,omitempty"`
	DeletedAtStart     string `json:"deleted_at_start,omitempty"      yaml:"deleted_at_start,omitempty"`
	DeletedAtEnd       string `json:"deleted_at_end,omitempty"        yaml:"deleted_at_end,omitempty"`
	ArchivedAtStart    string `json:"archived_at_start,omitempty"     yaml:"archived_at_start,omitempty"`
	ArchivedAtEnd      string `json:"archived_at_end,omitempty"       yaml:"archived_at_end,omitempty"`
	LastCallStartDate  string `json:"last_call_start_date,omitempty"  yaml:"last_call_start_date,omitempty"`
	LastCallEndDate    string `json:"last_call_end_date,omitempty"    yaml:"last_call_end_date,omitempty"`

	// Offset is clamped to [0, 50000].
	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty"`
	// Limit is clamped to [1, 2000].
	Limit *int   `json:"limit,omitempty" yaml:"limit,omitempty"`
	Extra Params `json:"-"               yaml:"-"`
}

// Params returns the request parameters.
func (p *LeadsSearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{
		"lead_id":               OptInt(p.LeadID),
		"list_id":               OptInt(p.ListID),
		"user_id":               NonEmpty(p.UserID),
		"phone_number":          NonEmpty(p.PhoneNumber),
		"created_at_start_date": NonEmpty(p.CreatedAtStartDate),
		"created_at_end_date":   NonEmpty(p.CreatedAtEndDate),
		"updated_at_start_date": NonEmpty(p.UpdatedAtStartDate),
		"updated_at_end_date":   NonEmpty(p.UpdatedAtEndDate),
		"deleted_at_start":      NonEmpty(p.DeletedAtStart),
		"deleted_at_end":        NonEmpty(p.DeletedAtEnd),
		"archived_at_start":     NonEmpty(p.ArchivedAtStart),
		"archived_at_end":       NonEmpty(p.ArchivedAtEnd),
		"last_call_start_date":  NonEmpty(p.LastCallStartDate),
		"last_call_end_date":    NonEmpty(p.LastCallEndDate),
	}
	p.LeadFields.apply(params)
	applyPagination(params, p.Offset, p.Limit)

	return finish(params, p.Extra)
}

// LeadData is one lead record. Custom fields configured on the account are
// kept in Fields.
type LeadData struct {
	ID          string `json:"id"           yaml:"id"`
	CreatedAt   string `json:"created_at"   yaml:"created_at"`
	ModifiedAt  string `json:"modified_at"  yaml:"modified_at"`
	UserID      string `json:"user_id"      yaml:"user_id"`
	SourceID    string `json:"source_id"    yaml:"source_id"`
	ListID      string `json:"list_id"      yaml:"list_id"`
	PhoneNumber string `json:"phone_number" yaml:"phone_number"`
	LeadFields  `yaml:",inline"`

	Fields map[string]any `json:"-" yaml:"fields,omitempty"`
}

var leadDataKeys = map[string]struct{}{
	"id": {}, "created_at": {}, "modified_at": {}, "user_id": {}, "source_id": {},
	"list_id": {}, "phone_number": {}, "phone_code": {}, "status": {}, "created_by": {},
	"email": {}, "last_modified_by": {}, "owner_id": {}, "first_name": {}, "last_name": {},
	"alt_phone_1": {}, "alt_phone_2": {}, "address1": {}, "address2": {}, "city": {},
	"state": {}, "province": {}, "postal_code": {}, "country": {}, "gender": {},
	"date_of_birth": {}, "notes": {}, "carrier_and_plan_1": {}, "carrier_and_plan_2": {},
	"carrier_and_plan_3": {}, "carrier_and_plan_4": {}, "individual_or_family": {},
	"current_coverage": {},
}

// UnmarshalJSON decodes the known lead columns and keeps the rest in Fields.
func (l *LeadData) UnmarshalJSON(data []byte) error {
	type plain LeadData

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("decoding lead: %w", err)
	}

	fields, err := extraFields(data, leadDataKeys)
	if err != nil {
		return fmt.Errorf("decoding lead custom fields: %w", err)
	}

	*l = LeadData(decoded)
	l.Fields = fields

	return nil
}

// MarshalJSON encodes the lead with its custom fields flattened in.
func (l LeadData) MarshalJSON() ([]byte, error) {
	type plain LeadData

	known, err := json.Marshal(plain(l))
	if err != nil {
		return nil, fmt.Errorf("encoding lead: %w", err)
	}

	if len(l.Fields) == 0 {
		return known, nil
	}

	merged := make(map[string]any, len(l.Fields)+len(leadDataKeys))
	for k, v := range l.Fields {
		merged[k] = v
	}

	var columns map[string]any
	if err := json.Unmarshal(known, &columns); err != nil {
		return nil, fmt.Errorf("encoding lead: %w", err)
	}

	for k, v := range columns {
		merged[k] = v
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("encoding lead: %w", err)
	}

	return out, nil
}

// LeadsPage is a page of leads.
type LeadsPage struct {
	Offset  int        `json:"offset"  yaml:"offset"`
	Limit   int        `json:"limit"   yaml:"limit"`
	Total   int        `json:"total"   yaml:"total"`
	Entries []LeadData `json:"entries" yaml:"entries"`
}

// LeadsSearchResponse is the lead search body.
type LeadsSearchResponse struct {
	Success bool       `json:"success"        yaml:"success"`
	Data    *LeadsPage `json:"data,omitempty" yaml:"data,omitempty"`
}

// LeadsSearchErrors lists the failures of a lead search.
var LeadsSearchErrors = ErrorSet{
	6000: "Missing lists",
	7230: "Invalid limit value",
	7231: "Invalid offset value",
}

// LeadRecordingsParams selects the recordings of one lead.
type LeadRecordingsParams struct {
	LeadID    int    `json:"lead_id"              yaml:"lead_id"`
	StartTime string `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"   yaml:"end_time,omitempty"`
	Offset    *int   `json:"offset,omitempty"     yaml:"offset,omitempty"`
	Limit     *int   `json:"limit,omitempty"      yaml:"limit,omitempty"`
	Extra     Params `json:"-"                    yaml:"-"`
}

// Params returns the request parameters.
func (p *LeadRecordingsParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{
		"lead_id":    Int(p.LeadID),
		"start_time": NonEmpty(p.StartTime),
		"end_time":   NonEmpty(p.EndTime),
	}
	applyPagination(params, p.Offset, p.Limit)

	return finish(params, p.Extra)
}

// LeadRecordingsErrors lists the failures of a lead recordings lookup.
var LeadRecordingsErrors = ErrorSet{
	6005: "Missing users",
	7231: "Invalid offset value",
}

// LeadPostInsertParams submits a lead through a lead post criteria key.
type LeadPostInsertParams struct {
	CriteriaKey string `json:"criteria_key" yaml:"criteria_key"`
	PhoneNumber string `json:"phone_number" yaml:"phone_number"`
	LeadFields  `yaml:",inline"`
	Extra       Params `json:"-" yaml:"-"`
}

// Params returns the request parameters.
func (p *LeadPostInsertParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{
		"criteria_key": String(p.CriteriaKey),
		"phone_number": String(p.PhoneNumber),
	}
	p.LeadFields.apply(params)

	return finish(params, p.Extra)
}

// LeadPostInsertResponse is the lead post body.
type LeadPostInsertResponse struct {
	Success bool       `json:"success" yaml:"success"`
	Data    LeadIDData `json:"data"    yaml:"data"`
}

// LeadPostInsertErrors is empty: lead post only fails with the forbidden variant.
var LeadPostInsertErrors = ErrorSet{}

// LeadValidationSearchParams checks a lead against lead post criteria.
type LeadValidationSearchParams struct {
	CriteriaKey string `json:"criteria_key"          yaml:"criteria_key"`
	PhoneNumber string `json:"phone_number"          yaml:"phone_number"`
	State       string `json:"state,omitempty"       yaml:"state,omitempty"`
	PostalCode  string `json:"postal_code,omitempty" yaml:"postal_code,omitempty"`
	Extra       Params `json:"-"                     yaml:"-"`
}

// Params returns the request parameters.
func (p *LeadValidationSearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"criteria_key": String(p.CriteriaKey),
		"phone_number": String(p.PhoneNumber),
		"state":        NonEmpty(p.State),
		"postal_code":  NonEmpty(p.PostalCode),
	}, p.Extra)
}

// LeadValidationSearchResponse is the lead validation body.
type LeadValidationSearchResponse struct {
	Success bool   `json:"success" yaml:"success"`
	Result  string `json:"result"  yaml:"result"`
}

// LeadValidationSearchErrors is empty: validation only fails with the forbidden variant.
var LeadValidationSearchErrors = ErrorSet{}

// ListsInsertParams describes a list to create.
type ListsInsertParams struct {
	Name        string `json:"name"                  yaml:"name"`
	CampaignID  string `json:"campaign_id"           yaml:"campaign_id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Status      *bool  `json:"status,omitempty"      yaml:"status,omitempty"`
	Extra       Params `json:"-"                     yaml:"-"`
}

// Params returns the request parameters.
func (p *ListsInsertParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"name":        String(p.Name),
		"campaign_id": String(p.CampaignID),
		"description": NonEmpty(p.Description),
		"status":      OptBool(p.Status),
	}, p.Extra)
}

// ListIDData carries the id of an inserted or updated list.
type ListIDData struct {
	ListID string `json:"list_id" yaml:"list_id"`
}

// ListsInsertResponse is the list insert body.
type ListsInsertResponse struct {
	Success bool       `json:"success" yaml:"success"`
	Data    ListIDData `json:"data"    yaml:"data"`
}

// ListsInsertErrors lists the failures of a list insert.
var ListsInsertErrors = ErrorSet{
	6003: "The List requires a name",
	6004: "Unknown Campaign ID",
	6046: "The List name should be at least 10 characters long",
	6081: "The list name should be unique",
}

// ListsUpdateParams describes changes to a list.
type ListsUpdateParams struct {
	ListID     int    `json:"list_id"               yaml:"list_id"`
	Name       string `json:"name,omitempty"        yaml:"name,omitempty"`
	CampaignID string `json:"campaign_id,omitempty" yaml:"campaign_id,omitempty"`
	Status     *bool  `json:"status,omitempty"      yaml:"status,omitempty"`
	Extra      Params `json:"-"                     yaml:"-"`
}

// Params returns the request parameters.
func (p *ListsUpdateParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"list_id":     Int(p.ListID),
		"name":        NonEmpty(p.Name),
		"campaign_id": NonEmpty(p.CampaignID),
		"status":      OptBool(p.Status),
	}, p.Extra)
}

// ListsUpdateResponse is the list update body.
type ListsUpdateResponse struct {
	Success bool       `json:"success" yaml:"success"`
	Data    ListIDData `json:"data"    yaml:"data"`
}

// ListsUpdateErrors lists the failures of a list update.
var ListsUpdateErrors = ErrorSet{
	6002: "No such List",
	6004: "Unknown Campaign ID",
	6046: "The List name should be at least 10 characters long",
	6081: "The list name should be unique",
}

// ListsDeleteParams identifies the list to delete.
type ListsDeleteParams struct {
	ListID int    `json:"list_id" yaml:"list_id"`
	Extra  Params `json:"-"       yaml:"-"`
}

// Params returns the request parameters.
func (p *ListsDeleteParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{"list_id": Int(p.ListID)}, p.Extra)
}

// ListsDeleteResponse is the list delete body.
type ListsDeleteResponse = SuccessResponse

// ListsDeleteErrors lists the failures of a list delete.
var ListsDeleteErrors = ErrorSet{
	6002: "No such List",
	102:  "List deletion in progress",
}

// ListsSearchParams filters lists. Status is required.
type ListsSearchParams struct {
	Status     string `json:"status"                yaml:"status"`
	ID         string `json:"id,omitempty"          yaml:"id,omitempty"`
	CampaignID string `json:"campaign_id,omitempty" yaml:"campaign_id,omitempty"`
	Extra      Params `json:"-"                     yaml:"-"`
}

// Params returns the request parameters.
func (p *ListsSearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"status":      String(p.Status),
		"id":          NonEmpty(p.ID),
		"campaign_id": NonEmpty(p.CampaignID),
	}, p.Extra)
}

// ListItem is one lead list.
type ListItem struct {
	ID           int       `json:"id"                       yaml:"id"`
	CampaignID   string    `json:"campaign_id"              yaml:"campaign_id"`
	Status       string    `json:"status"                   yaml:"status"`
	LastCalledAt *DateTime `json:"last_called_at,omitempty" yaml:"last_called_at,omitempty"`
}

// ListsSearchResponse is the list search body.
type ListsSearchResponse struct {
	Success bool       `json:"success" yaml:"success"`
	Data    []ListItem `json:"data"    yaml:"data"`
}

// ListsSearchErrors lists the failures of a list search.
var ListsSearchErrors = ErrorSet{
	6002: "No such List",
}
