package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API endpoint defaults.
const (
	// DefaultBaseURL is the versioned Convoso API root.
	DefaultBaseURL = "https://api.convoso.com/v1/"

	// AuthTokenParam is the query parameter carrying the API key on every request.
	AuthTokenParam = "auth_token"

	// ContentTypeJSON is the media type sent and expected by the API.
	ContentTypeJSON = "application/json"

	// DefaultUserAgent identifies the client library.
	DefaultUserAgent = "convoso-client-go/1.0"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default per-attempt timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry policy.
const (
	// DefaultRetryMax is the default maximum number of retries after the first attempt.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the backoff base delay.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax caps the backoff delay.
	DefaultRetryWaitMax = 30 * time.Second

	// ExponentialBackoffBase is the base for exponential backoff.
	ExponentialBackoffBase = 2
)

// Concurrency limits.
const (
	// DefaultConcurrencyLimit limits concurrent operations in bulk commands.
	DefaultConcurrencyLimit = 3

	// MaxConcurrencyLimit is the upper bound accepted for bulk commands.
	MaxConcurrencyLimit = 16
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusMultipleChoices is the first status outside the success range.
	HTTPStatusMultipleChoices = 300

	// HTTPStatusForbidden represents a permission failure.
	HTTPStatusForbidden = 403
)

// Error classification codes.
const (
	// ErrorCodeTimeout marks a request that exceeded its deadline.
	ErrorCodeTimeout = "TIMEOUT"

	// ErrorCodeNetwork marks a transport level failure.
	ErrorCodeNetwork = "NETWORK_ERROR"

	// TimeoutMessage is the message carried by timeout errors.
	TimeoutMessage = "Request timeout"
)

// Pagination bounds.
const (
	// DefaultOffsetMax is the largest offset most endpoints accept.
	DefaultOffsetMax = 50000

	// ExtendedOffsetMax is the offset ceiling for DNC and SMS opt-out searches.
	ExtendedOffsetMax = 100000

	// DefaultLimitMax is the largest page size most endpoints accept.
	DefaultLimitMax = 1000

	// DefaultLimit is the page size used when a caller gives none.
	DefaultLimit = 1000

	// LeadsLimitMax is the page size ceiling for lead searches.
	LeadsLimitMax = 2000

	// CallbacksLimitMax is the page size ceiling for callback searches.
	CallbacksLimitMax = 5000

	// CallbacksLimitDefault is the callback search page size when none is given.
	CallbacksLimitDefault = 20
)

// Time intervals.
const (
	// DefaultPollInterval is used by the agent monitor watch loop.
	DefaultPollInterval = 5 * time.Second

	// MinPollInterval keeps watch loops from hammering the API.
	MinPollInterval = 1 * time.Second
)

// UI and display constants.
const (
	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// MaskedSecretVisibleChars is how many trailing key characters stay visible when masking.
	MaskedSecretVisibleChars = 4

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// StringTruncationLength is the default length for truncating table cells.
	StringTruncationLength = 60
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Messaging.
const (
	// DefaultNATSSubject is the subject agent monitor snapshots are published to.
	DefaultNATSSubject = "convoso.agent-monitor"
)
