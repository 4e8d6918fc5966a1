package convoso

import (
	"encoding/json"
	"strings"
)

// DateTime is the PHP-style timestamp object some endpoints return.
type DateTime struct {
	Date         string `json:"date"          yaml:"date"`
	TimezoneType int    `json:"timezone_type" yaml:"timezone_type"`
	Timezone     string `json:"timezone"      yaml:"timezone"`
}

// DateRange is the reporting window echoed back by report endpoints.
type DateRange struct {
	Start string `json:"start,omitempty" yaml:"start,omitempty"`
	End   string `json:"end,omitempty"   yaml:"end,omitempty"`
}

// PageInfo describes a page of report results.
type PageInfo struct {
	Offset  int  `json:"offset,omitempty"   yaml:"offset,omitempty"`
	Limit   int  `json:"limit,omitempty"    yaml:"limit,omitempty"`
	HasMore bool `json:"has_more,omitempty" yaml:"has_more,omitempty"`
}

// YesNo is a "Y"/"N" flag.
type YesNo string

// YesNo values.
const (
	Yes YesNo = "Y"
	No  YesNo = "N"
)

// Suppression purpose keywords shared by DNC and SMS opt-out records.
const (
	PurposeBlank    = "-BLANK-"
	PurposeNotBlank = "-NOTBLANK-"
	PurposeCollect  = "COLLECT"
	PurposeCommNoTM = "COMMNOTM"
	PurposeConfirm  = "CONFIRM"
	PurposeESign    = "ESIGN"
	PurposeHIPAA    = "HIPAA"
	PurposeInform   = "INFORM"
	PurposeNonComm  = "NONCOMM"
	PurposeNonProf  = "NONPROF"
	PurposeNotFound = "NOTFOUND"
	PurposeNotify   = "NOTIFY"
	PurposeTeleMkt  = "TELEMKT"
	PurposeVerify   = "VERIFY"
)

// Suppression reason keywords shared by DNC and SMS opt-out records.
const (
	ReasonBlank          = "-BLANK-"
	ReasonNotBlank       = "-NOTBLANK-"
	ReasonDNC            = "DNC"
	ReasonDNCT           = "DNCT"
	ReasonConsentRevoked = "ConsentRevoked"
)

// LeadFields are the contact fields shared by lead insert, update and lead
// post requests. Empty strings are not sent.
type LeadFields struct {
	PhoneCode          string `json:"phone_code,omitempty"           yaml:"phone_code,omitempty"`
	Status             string `json:"status,omitempty"               yaml:"status,omitempty"`
	CreatedBy          string `json:"created_by,omitempty"           yaml:"created_by,omitempty"`
	Email              string `json:"email,omitempty"                yaml:"email,omitempty"`
	LastModifiedBy     string `json:"last_modified_by,omitempty"     yaml:"last_modified_by,omitempty"`
	OwnerID            string `json:"owner_id,omitempty"             yaml:"owner_id,omitempty"`
	FirstName          string `json:"first_name,omitempty"           yaml:"first_name,omitempty"`
	LastName           string `json:"last_name,omitempty"            yaml:"last_name,omitempty"`
	AltPhone1          string `json:"alt_phone_1,omitempty"          yaml:"alt_phone_1,omitempty"`
	AltPhone2          string `json:"alt_phone_2,omitempty"          yaml:"alt_phone_2,omitempty"`
	Address1           string `json:"address1,omitempty"             yaml:"address1,omitempty"`
	Address2           string `json:"address2,omitempty"             yaml:"address2,omitempty"`
	City               string `json:"city,omitempty"                 yaml:"city,omitempty"`
	State              string `json:"state,omitempty"                yaml:"state,omitempty"`
	Province           string `json:"province,omitempty"             yaml:"province,omitempty"`
	PostalCode         string `json:"postal_code,omitempty"          yaml:"postal_code,omitempty"`
	Country            string `json:"country,omitempty"              yaml:"country,omitempty"`
	Gender             string `json:"gender,omitempty"               yaml:"gender,omitempty"`
	DateOfBirth        string `json:"date_of_birth,omitempty"        yaml:"date_of_birth,omitempty"`
	Notes              string `json:"notes,omitempty"                yaml:"notes,omitempty"`
	CarrierAndPlan1    string `json:"carrier_and_plan_1,omitempty"   yaml:"carrier_and_plan_1,omitempty"`
	CarrierAndPlan2    string `json:"carrier_and_plan_2,omitempty"   yaml:"carrier_and_plan_2,omitempty"`
	CarrierAndPlan3    string `json:"carrier_and_plan_3,omitempty"   yaml:"carrier_and_plan_3,omitempty"`
	CarrierAndPlan4    string `json:"carrier_and_plan_4,omitempty"   yaml:"carrier_and_plan_4,omitempty"`
	IndividualOrFamily string `json:"individual_or_family,omitempty" yaml:"individual_or_family,omitempty"`
	CurrentCoverage    string `json:"current_coverage,omitempty"     yaml:"current_coverage,omitempty"`
}

func (f *LeadFields) apply(p Params) {
	p.Set("phone_code", NonEmpty(f.PhoneCode)).
		Set("status", NonEmpty(f.Status)).
		Set("created_by", NonEmpty(f.CreatedBy)).
		Set("email", NonEmpty(f.Email)).
		Set("last_modified_by", NonEmpty(f.LastModifiedBy)).
		Set("owner_id", NonEmpty(f.OwnerID)).
		Set("first_name", NonEmpty(f.FirstName)).
		Set("last_name", NonEmpty(f.LastName)).
		Set("alt_phone_1", NonEmpty(f.AltPhone1)).
		Set("alt_phone_2", NonEmpty(f.AltPhone2)).
		Set("address1", NonEmpty(f.Address1)).
		Set("address2", NonEmpty(f.Address2)).
		Set("city", NonEmpty(f.City)).
		Set("state", NonEmpty(f.State)).
		Set("province", NonEmpty(f.Province)).
		Set("postal_code", NonEmpty(f.PostalCode)).
		Set("country", NonEmpty(f.Country)).
		Set("gender", NonEmpty(f.Gender)).
		Set("date_of_birth", NonEmpty(f.DateOfBirth)).
		Set("notes", NonEmpty(f.Notes)).
		Set("carrier_and_plan_1", NonEmpty(f.CarrierAndPlan1)).
		Set("carrier_and_plan_2", NonEmpty(f.CarrierAndPlan2)).
		Set("carrier_and_plan_3", NonEmpty(f.CarrierAndPlan3)).
		Set("carrier_and_plan_4", NonEmpty(f.CarrierAndPlan4)).
		Set("individual_or_family", NonEmpty(f.IndividualOrFamily)).
		Set("current_coverage", NonEmpty(f.CurrentCoverage))
}

// LeadIDData carries the id of an inserted or updated lead.
type LeadIDData struct {
	LeadID string `json:"lead_id" yaml:"lead_id"`
}

// Recording is a call recording of a lead or a user.
type Recording struct {
	RecordingID int    `json:"recording_id" yaml:"recording_id"`
	LeadID      int    `json:"lead_id"      yaml:"lead_id"`
	StartTime   string `json:"start_time"   yaml:"start_time"`
	EndTime     string `json:"end_time"     yaml:"end_time"`
	Seconds     *int   `json:"seconds"      yaml:"seconds"`
	URL         string `json:"url"          yaml:"url"`
}

// RecordingsPage is a page of recordings.
type RecordingsPage struct {
	Offset  int         `json:"offset"  yaml:"offset"`
	Limit   int         `json:"limit"   yaml:"limit"`
	Total   int         `json:"total"   yaml:"total"`
	Entries []Recording `json:"entries" yaml:"entries"`
}

// RecordingsResponse is returned by lead and user recording lookups.
type RecordingsResponse struct {
	Success bool            `json:"success"        yaml:"success"`
	Data    *RecordingsPage `json:"data,omitempty" yaml:"data,omitempty"`
}

// SuccessResponse is the body of endpoints that only acknowledge.
type SuccessResponse struct {
	Success bool `json:"success" yaml:"success"`
}

// NormalizeHexColor strips a single leading "#" from a color code.
func NormalizeHexColor(color string) string {
	return strings.TrimPrefix(color, "#")
}

// applyPagination sets offset and limit from optional ints.
func applyPagination(p Params, offset, limit *int) {
	p.Set(OffsetKey, OptInt(offset)).Set(LimitKey, OptInt(limit))
}

// finish layers extra over p and drops omitted entries.
func finish(p, extra Params) Params {
	out := p.With(extra)
	for k, v := range out {
		if v.IsOmitted() {
			delete(out, k)
		}
	}

	return out
}

// extraFields collects the keys of raw not consumed by a typed decode.
func extraFields(raw []byte, known map[string]struct{}) (map[string]any, error) {
	var all map[string]any
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}

	for k := range all {
		if _, ok := known[k]; ok {
			delete(all, k)
		}
	}

	if len(all) == 0 {
		return nil, nil //nolint:nilnil // no custom fields
	}

	return all, nil
}
