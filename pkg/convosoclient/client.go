// Package convosoclient provides the main entry point for creating Convoso API clients
package convosoclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/convoso-client/internal/client"
	"github.com/fivetwenty-io/convoso-client/internal/constants"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// New creates a new Convoso API client. The caller's config is copied, so
// later changes to it (including its Headers map) do not affect the client.
func New(config *convoso.Config) (convoso.Client, error) {
	if config == nil {
		return nil, convoso.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, convoso.ErrAPIKeyRequired
	}

	normalized := *config

	baseURL, err := normalizeBaseURL(config.BaseURL)
	if err != nil {
		return nil, err
	}

	normalized.BaseURL = baseURL

	if normalized.Timeout <= 0 {
		normalized.Timeout = constants.DefaultHTTPTimeout
	}

	if config.Headers != nil {
		normalized.Headers = make(map[string]string, len(config.Headers))
		for k, v := range config.Headers {
			normalized.Headers[k] = v
		}
	}

	client, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithAPIKey creates a client for the default API root.
func NewWithAPIKey(apiKey string) (convoso.Client, error) {
	return New(&convoso.Config{APIKey: apiKey})
}

// NewWithBaseURL creates a client for a non-default API root, e.g. a
// sandbox or a test server.
func NewWithBaseURL(baseURL, apiKey string) (convoso.Client, error) {
	return New(&convoso.Config{APIKey: apiKey, BaseURL: baseURL})
}

// normalizeBaseURL applies the default root and prepends https:// to a
// schemeless value.
func normalizeBaseURL(raw string) (string, error) {
	baseURL := strings.TrimSpace(raw)
	if baseURL == "" {
		return constants.DefaultBaseURL, nil
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return "", fmt.Errorf("%w: %q", convoso.ErrInvalidBaseURL, raw)
	}

	return baseURL, nil
}
