package convoso

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
)

// Classification codes for failures that never reached an HTTP response.
const (
	CodeTimeout      = constants.ErrorCodeTimeout
	CodeNetworkError = constants.ErrorCodeNetwork
)

// APIError is the single error type returned by the request dispatcher.
//
// Transport failures carry Code CodeNetworkError and the underlying cause in
// Err. Deadline failures carry Code CodeTimeout. Non-2xx responses carry the
// HTTP status in StatusCode and, when the body held one, the application
// code and details.
type APIError struct {
	Message    string          `json:"message"               yaml:"message"`
	StatusCode int             `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	Code       string          `json:"code,omitempty"        yaml:"code,omitempty"`
	Details    json.RawMessage `json:"details,omitempty"     yaml:"-"`
	Err        error           `json:"-"                     yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Code != "":
		return fmt.Sprintf("%s (status: %d, code: %s)", e.Message, e.StatusCode, e.Code)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	case e.Code != "":
		return fmt.Sprintf("%s (code: %s)", e.Message, e.Code)
	default:
		return e.Message
	}
}

// Unwrap returns the transport cause, if any.
func (e *APIError) Unwrap() error {
	return e.Err
}

// NewTimeoutError builds the error reported when a request exceeds its deadline.
func NewTimeoutError(cause error) *APIError {
	return &APIError{Message: constants.TimeoutMessage, Code: CodeTimeout, Err: cause}
}

// NewNetworkError wraps a transport failure.
func NewNetworkError(cause error) *APIError {
	return &APIError{Message: cause.Error(), Code: CodeNetworkError, Err: cause}
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyRequired = errors.New("API key is required")
	ErrInvalidBaseURL = errors.New("invalid base URL")
)

// AsAPIError extracts an *APIError from err's chain.
func AsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	if apiErr, ok := AsAPIError(err); ok {
		return apiErr.StatusCode
	}

	return 0
}

// IsRetryableStatus reports whether a response with this status may be retried.
func IsRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// IsTimeout checks if the error is a timeout error.
func IsTimeout(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.Code == CodeTimeout
}

// IsNetworkError checks if the error is a transport failure.
func IsNetworkError(err error) bool {
	apiErr, ok := AsAPIError(err)

	return ok && apiErr.Code == CodeNetworkError
}

// IsRateLimited checks if the error is a 429 response.
func IsRateLimited(err error) bool {
	return StatusCode(err) == http.StatusTooManyRequests
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a 403 response or a forbidden failure payload.
func IsForbidden(err error) bool {
	if StatusCode(err) == http.StatusForbidden {
		return true
	}

	failure := &Failure{}
	if errors.As(err, &failure) {
		return failure.Forbidden
	}

	return false
}

// IsServerError checks if the error is a 5xx response.
func IsServerError(err error) bool {
	return StatusCode(err) >= http.StatusInternalServerError
}

// IsRetryable checks if the dispatcher would have retried this error.
func IsRetryable(err error) bool {
	return IsRetryableStatus(StatusCode(err))
}
