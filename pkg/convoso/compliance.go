package convoso

// DNCInsertParams adds a number to the Do Not Call list. CampaignID "0"
// targets the global list.
type DNCInsertParams struct {
	PhoneNumber string `json:"phone_number" yaml:"phone_number"`
	PhoneCode   string `json:"phone_code"   yaml:"phone_code"`
	CampaignID  string `json:"campaign_id"  yaml:"campaign_id"`
	Purpose     string `json:"purpose"      yaml:"purpose"`
	Reason      string `json:"reason"       yaml:"reason"`
	Extra       Params `json:"-"            yaml:"-"`
}

// Params returns the request parameters.
func (p *DNCInsertParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"phone_number": String(p.PhoneNumber),
		"phone_code":   String(p.PhoneCode),
		"campaign_id":  String(p.CampaignID),
		"purpose":      NonEmpty(p.Purpose),
		"reason":       NonEmpty(p.Reason),
	}, p.Extra)
}

// DNCInsertResponse is the DNC insert body.
type DNCInsertResponse = SuccessResponse

// DNCInsertErrors lists the failures of a DNC insert.
var DNCInsertErrors = ErrorSet{
	6006: "Invalid Campaign ID",
	6007: "Invalid Phone Number",
	6008: "The phone number already exists",
	6026: "Missing or Invalid Country Code",
	6057: "Invalid Purpose Provided",
	6058: "Invalid Reason Provided",
}

// DNCUpdateParams changes a DNC record. Use PurposeBlank or ReasonBlank to
// clear a field.
type DNCUpdateParams struct {
	ID          int    `json:"id"                     yaml:"id"`
	PhoneNumber string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	PhoneCode   string `json:"phone_code,omitempty"   yaml:"phone_code,omitempty"`
	CampaignID  *int   `json:"campaign_id,omitempty"  yaml:"campaign_id,omitempty"`
	Purpose     string `json:"purpose,omitempty"      yaml:"purpose,omitempty"`
	Reason      string `json:"reason,omitempty"       yaml:"reason,omitempty"`
	Extra       Params `json:"-"                      yaml:"-"`
}

// Params returns the request parameters.
func (p *DNCUpdateParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"id":           Int(p.ID),
		"phone_number": NonEmpty(p.PhoneNumber),
		"phone_code":   NonEmpty(p.PhoneCode),
		"campaign_id":  OptInt(p.CampaignID),
		"purpose":      NonEmpty(p.Purpose),
		"reason":       NonEmpty(p.Reason),
	}, p.Extra)
}

// DNCUpdateResponse is the DNC update body.
type DNCUpdateResponse struct {
	Success bool `json:"success" yaml:"success"`
	ID      int  `json:"id"      yaml:"id"`
}

// DNCUpdateErrors lists the failures of a DNC update.
var DNCUpdateErrors = ErrorSet{
	6004: "Unknown Campaign ID",
	6008: "The phone number is invalid",
	6026: "Missing or Invalid Country Code",
	6056: "Missing or Invalid value for ID",
	6057: "Invalid Purpose Provided",
	6058: "Invalid Reason Provided",
	6059: "This combination of Phone number, Campaign ID, and Phone Code already exists.",
}

// DNCDeleteParams removes a number from the Do Not Call list.
type DNCDeleteParams struct {
	PhoneNumber      string `json:"phone_number"                 yaml:"phone_number"`
	PhoneCode        string `json:"phone_code"                   yaml:"phone_code"`
	CampaignID       string `json:"campaign_id"                  yaml:"campaign_id"`
	UpdateLeadStatus string `json:"update_lead_status,omitempty" yaml:"update_lead_status,omitempty"`
	LeadStatus       string `json:"lead_status,omitempty"        yaml:"lead_status,omitempty"`
	Extra            Params `json:"-"                            yaml:"-"`
}

// Params returns the request parameters.
func (p *DNCDeleteParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"phone_number":       String(p.PhoneNumber),
		"phone_code":         String(p.PhoneCode),
		"campaign_id":        String(p.CampaignID),
		"update_lead_status": NonEmpty(p.UpdateLeadStatus),
		"lead_status":        NonEmpty(p.LeadStatus),
	}, p.Extra)
}

// DNCDeleteResponse is the DNC delete body.
type DNCDeleteResponse = SuccessResponse

// DNCDeleteErrors lists the failures of a DNC delete.
var DNCDeleteErrors = ErrorSet{
	6000: "Missing Phone Code",
	6001: "Missing Campaign ID",
	6002: "Missing Phone Number",
	6003: "Phone Number Not Found",
	6004: "Invalid Lead status",
	6005: "Missing Lead status",
}

// DNCSearchParams filters DNC records. PurposeNotBlank and ReasonNotBlank
// match records with any value set.
type DNCSearchParams struct {
	ID          *int   `json:"id,omitempty"           yaml:"id,omitempty"`
	CampaignID  *int   `json:"campaign_id,omitempty"  yaml:"campaign_id,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	PhoneCode   string `json:"phone_code,omitempty"   yaml:"phone_code,omitempty"`
	InsertDate  string `json:"insert_date,omitempty"  yaml:"insert_date,omitempty"`
	Purpose     string `json:"purpose,omitempty"      yaml:"purpose,omitempty"`
	Reason      string `json:"reason,omitempty"       yaml:"reason,omitempty"`
	// Offset is clamped to [0, 100000].
	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty"`
	// Limit is clamped to [1, 1000].
	Limit *int   `json:"limit,omitempty" yaml:"limit,omitempty"`
	Extra Params `json:"-"               yaml:"-"`
}

// Params returns the request parameters.
func (p *DNCSearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{
		"id":           OptInt(p.ID),
		"campaign_id":  OptInt(p.CampaignID),
		"phone_number": NonEmpty(p.PhoneNumber),
		"phone_code":   NonEmpty(p.PhoneCode),
		"insert_date":  NonEmpty(p.InsertDate),
		"purpose":      NonEmpty(p.Purpose),
		"reason":       NonEmpty(p.Reason),
	}
	applyPagination(params, p.Offset, p.Limit)

	return finish(params, p.Extra)
}

// DNCData is one DNC record.
type DNCData struct {
	ID           string `json:"id"            yaml:"id"`
	PhoneNumber  string `json:"phone_number"  yaml:"phone_number"`
	CampaignID   string `json:"campaign_id"   yaml:"campaign_id"`
	InsertDate   string `json:"insert_date"   yaml:"insert_date"`
	PhoneCode    string `json:"phone_code"    yaml:"phone_code"`
	CampaignUID  string `json:"campaign_uid"  yaml:"campaign_uid"`
	CampaignName string `json:"campaign_name" yaml:"campaign_name"`
	CampaignType string `json:"campaign_type" yaml:"campaign_type"`
	Purpose      string `json:"purpose"       yaml:"purpose"`
	Reason       string `json:"reason"        yaml:"reason"`
}

// DNCPage is a page of DNC records.
type DNCPage struct {
	Offset  int       `json:"offset"  yaml:"offset"`
	Limit   int       `json:"limit"   yaml:"limit"`
	Total   int       `json:"total"   yaml:"total"`
	Entries []DNCData `json:"entries" yaml:"entries"`
}

// DNCSearchResponse is the DNC search body.
type DNCSearchResponse struct {
	Success bool     `json:"success"        yaml:"success"`
	Data    *DNCPage `json:"data,omitempty" yaml:"data,omitempty"`
}

// DNCSearchErrors lists the failures of a DNC search.
var DNCSearchErrors = ErrorSet{
	6006: "Invalid Campaign ID",
	7231: "Invalid offset value",
	6008: "The phone number already exists",
	6026: "Missing or Invalid Country Code",
	6057: "Invalid Purpose Provided",
	6058: "Invalid Reason Provided",
}

// SMSOptOutInsertParams adds a number to the SMS opt-out list.
type SMSOptOutInsertParams struct {
	PhoneNumber string `json:"phone_number"      yaml:"phone_number"`
	PhoneCode   string `json:"phone_code"        yaml:"phone_code"`
	CampaignID  string `json:"campaign_id"       yaml:"campaign_id"`
	Reason      string `json:"reason,omitempty"  yaml:"reason,omitempty"`
	Purpose     string `json:"purpose,omitempty" yaml:"purpose,omitempty"`
	Extra       Params `json:"-"                 yaml:"-"`
}

// Params returns the request parameters.
func (p *SMSOptOutInsertParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"phone_number": String(p.PhoneNumber),
		"phone_code":   String(p.PhoneCode),
		"campaign_id":  String(p.CampaignID),
		"reason":       NonEmpty(p.Reason),
		"purpose":      NonEmpty(p.Purpose),
	}, p.Extra)
}

// SMSOptOutInsertResponse is the SMS opt-out insert body.
type SMSOptOutInsertResponse = SuccessResponse

// SMSOptOutInsertErrors lists the failures of an SMS opt-out insert.
var SMSOptOutInsertErrors = ErrorSet{
	6006: "Invalid Campaign ID",
	6007: "Invalid Phone Number",
	6008: "The phone number already exists",
	6026: "Missing or Invalid Country Code",
	6057: "Invalid Purpose Provided",
	6058: "Invalid Reason Provided",
}

// SMSOptOutUpdateParams changes an SMS opt-out record.
type SMSOptOutUpdateParams struct {
	ID          int    `json:"id"                     yaml:"id"`
	CampaignID  *int   `json:"campaign_id,omitempty"  yaml:"campaign_id,omitempty"`
	PhoneCode   string `json:"phone_code,omitempty"   yaml:"phone_code,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	Reason      string `json:"reason,omitempty"       yaml:"reason,omitempty"`
	Purpose     string `json:"purpose,omitempty"      yaml:"purpose,omitempty"`
	Extra       Params `json:"-"                      yaml:"-"`
}

// Params returns the request parameters.
func (p *SMSOptOutUpdateParams) Params() Params {
	if p == nil {
		return Params{}
	}

	return finish(Params{
		"id":           Int(p.ID),
		"campaign_id":  OptInt(p.CampaignID),
		"phone_code":   NonEmpty(p.PhoneCode),
		"phone_number": NonEmpty(p.PhoneNumber),
		"reason":       NonEmpty(p.Reason),
		"purpose":      NonEmpty(p.Purpose),
	}, p.Extra)
}

// SMSOptOutIDData carries the id of an updated opt-out record.
type SMSOptOutIDData struct {
	ID string `json:"id" yaml:"id"`
}

// SMSOptOutUpdateResponse is the SMS opt-out update body.
type SMSOptOutUpdateResponse struct {
	Success bool            `json:"success" yaml:"success"`
	Data    SMSOptOutIDData `json:"data"    yaml:"data"`
}

// SMSOptOutUpdateErrors lists the failures of an SMS opt-out update.
var SMSOptOutUpdateErrors = ErrorSet{
	6004: "Unknown Campaign ID",
	6008: "The phone number is invalid",
	6026: "Missing or Invalid Country Code",
	6056: "Missing or Invalid value for ID",
	6057: "Invalid Purpose Provided",
	6058: "Invalid Reason Provided",
	6059: "This combination of Phone number, Campaign ID, and Phone Code already exists.",
	4001: "Missing required field: phone_number / phone_code / campaign_id.",
	4002: "phone_number / phone_code / campaign_id must be numeric.",
}

// SMSOptOutSearchParams filters SMS opt-out records. The server expects the
// reason and purpose filters capitalized.
type SMSOptOutSearchParams struct {
	ID          *int   `json:"id,omitempty"           yaml:"id,omitempty"`
	CampaignID  *int   `json:"campaign_id,omitempty"  yaml:"campaign_id,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	PhoneCode   string `json:"phone_code,omitempty"   yaml:"phone_code,omitempty"`
	Reason      string `json:"Reason,omitempty"       yaml:"reason,omitempty"`
	Purpose     string `json:"Purpose,omitempty"      yaml:"purpose,omitempty"`
	InsertDate  string `json:"insert_date,omitempty"  yaml:"insert_date,omitempty"`
	// Offset is clamped to [0, 100000].
	Offset *int `json:"offset,omitempty" yaml:"offset,omitempty"`
	// Limit is clamped to [1, 1000].
	Limit *int   `json:"limit,omitempty" yaml:"limit,omitempty"`
	Extra Params `json:"-"               yaml:"-"`
}

// Params returns the request parameters.
func (p *SMSOptOutSearchParams) Params() Params {
	if p == nil {
		return Params{}
	}

	params := Params{
		"id":           OptInt(p.ID),
		"campaign_id":  OptInt(p.CampaignID),
		"phone_number": NonEmpty(p.PhoneNumber),
		"phone_code":   NonEmpty(p.PhoneCode),
		"Reason":       NonEmpty(p.Reason),
		"Purpose":      NonEmpty(p.Purpose),
		"insert_date":  NonEmpty(p.InsertDate),
	}
	applyPagination(params, p.Offset, p.Limit)

	return finish(params, p.Extra)
}

// SMSOptOutData is one SMS opt-out record.
type SMSOptOutData struct {
	ID           string `json:"id"            yaml:"id"`
	PhoneNumber  string `json:"phone_number"  yaml:"phone_number"`
	CampaignID   string `json:"campaign_id"   yaml:"campaign_id"`
	Reason       string `json:"reason"        yaml:"reason"`
	Purpose      string `json:"Purpose"       yaml:"purpose"`
	InsertDate   string `json:"insert_date"   yaml:"insert_date"`
	PhoneCode    string `json:"phone_code"    yaml:"phone_code"`
	CampaignUID  string `json:"campaign_uid"  yaml:"campaign_uid"`
	CampaignName string `json:"campaign_name" yaml:"campaign_name"`
}

// SMSOptOutPage is a page of SMS opt-out records.
type SMSOptOutPage struct {
	Offset  int             `json:"offset"  yaml:"offset"`
	Limit   int             `json:"limit"   yaml:"limit"`
	Total   int             `json:"total"   yaml:"total"`
	Entries []SMSOptOutData `json:"entries" yaml:"entries"`
}

// SMSOptOutSearchResponse is the SMS opt-out search body.
type SMSOptOutSearchResponse struct {
	Success bool           `json:"success"        yaml:"success"`
	Data    *SMSOptOutPage `json:"data,omitempty" yaml:"data,omitempty"`
}

// SMSOptOutSearchErrors lists the failures of an SMS opt-out search.
var SMSOptOutSearchErrors = ErrorSet{
	6006: "Invalid Campaign ID",
	7231: "Invalid offset value",
	6008: "The phone number already exists",
	6026: "Missing or Invalid Country Code",
	6057: "Invalid Purpose Provided",
	6058: "Invalid Reason Provided",
}
