package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKey          = errors.New("no API key configured, use --api-key, CONVOSO_API_KEY or 'convoso config set api_key <key>'")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrInvalidOutput     = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidTimeout    = errors.New("timeout must be a positive duration")
	ErrAPIKeyPromptNoTTY = errors.New("cannot prompt for API key: stdin is not a terminal")
)

// Validation errors.
var (
	ErrInvalidParam       = errors.New("invalid --param, expected key=value")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvalidConcurrency = errors.New("concurrency must be between 1 and 16")
	ErrInvalidInterval    = errors.New("interval must be at least one second")
	ErrEmptyImportFile    = errors.New("import file contains no entries")
	ErrUnsupportedFormat  = errors.New("unsupported import file format")
)

// Operation errors.
var (
	ErrRequestFailed = errors.New("request reported failure")
	ErrImportFailed  = errors.New("one or more DNC entries failed to import")
)
