package convoso

import "github.com/fivetwenty-io/convoso-client/internal/constants"

// Pagination parameter keys.
const (
	OffsetKey = "offset"
	LimitKey  = "limit"
)

// Default pagination bounds.
const (
	DefaultOffsetMax = constants.DefaultOffsetMax
	DefaultLimitMax  = constants.DefaultLimitMax
	DefaultLimit     = constants.DefaultLimit
)

// PaginationPolicy holds the offset and limit bounds of one endpoint.
// Zero fields fall back to the package defaults.
type PaginationPolicy struct {
	OffsetMax    int
	LimitMax     int
	LimitDefault int
}

// Endpoint pagination policies.
var (
	DefaultPaginationPolicy     = PaginationPolicy{}
	LeadsSearchPagination       = PaginationPolicy{LimitMax: constants.LeadsLimitMax}
	LeadRecordingsPagination    = PaginationPolicy{}
	UserRecordingsPagination    = PaginationPolicy{}
	UsersSearchPagination       = PaginationPolicy{}
	AgentProductivityPagination = PaginationPolicy{}
	SMSOptOutSearchPagination   = PaginationPolicy{OffsetMax: constants.ExtendedOffsetMax}
	CallbacksSearchPagination   = PaginationPolicy{LimitMax: constants.CallbacksLimitMax, LimitDefault: constants.CallbacksLimitDefault}
	DNCSearchPagination         = PaginationPolicy{OffsetMax: constants.ExtendedOffsetMax, LimitMax: constants.DefaultLimitMax, LimitDefault: constants.DefaultLimit}
)

func (p PaginationPolicy) withDefaults() PaginationPolicy {
	if p.OffsetMax <= 0 {
		p.OffsetMax = DefaultOffsetMax
	}

	if p.LimitMax <= 0 {
		p.LimitMax = DefaultLimitMax
	}

	if p.LimitDefault <= 0 {
		p.LimitDefault = DefaultLimit
	}

	return p
}

// ClampOffset bounds offset to [0, max]. A nil offset yields 0.
func ClampOffset(offset *int, maxOffset int) int {
	if offset == nil {
		return 0
	}

	return int(clampInt(int64(*offset), 0, int64(maxOffset)))
}

// ClampLimit bounds limit to [1, max]. A nil limit yields def.
func ClampLimit(limit *int, maxLimit, def int) int {
	if limit == nil {
		return def
	}

	return int(clampInt(int64(*limit), 1, int64(maxLimit)))
}

// ApplyPaginationPolicy returns a shallow copy of params with numeric offset
// and limit values clamped to the policy bounds. Values of any other kind,
// including strings, pass through untouched, and a missing limit is not
// filled in.
func ApplyPaginationPolicy(params Params, policy PaginationPolicy) Params {
	policy = policy.withDefaults()
	out := params.Clone()

	if v, ok := out[OffsetKey]; ok {
		out[OffsetKey] = clampValue(v, 0, policy.OffsetMax)
	}

	if v, ok := out[LimitKey]; ok {
		out[LimitKey] = clampValue(v, 1, policy.LimitMax)
	}

	return out
}

// Bounds returns the effective policy with defaults filled in.
func (p PaginationPolicy) Bounds() PaginationPolicy {
	return p.withDefaults()
}

func clampValue(v Value, lo, hi int) Value {
	//nolint:exhaustive // only numeric kinds are clamped
	switch v.kind {
	case KindInt:
		return Int64(clampInt(v.num, int64(lo), int64(hi)))
	case KindFloat:
		f := v.flt
		if f > float64(hi) {
			f = float64(hi)
		}

		if f < float64(lo) {
			f = float64(lo)
		}

		return Float(f)
	default:
		return v
	}
}

func clampInt(n, lo, hi int64) int64 {
	return max(lo, min(n, hi))
}
