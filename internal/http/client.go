package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the request dispatcher. It is safe for concurrent use once built.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *retryablehttp.Client
	transport    http.RoundTripper
	logger       Logger
	debug        bool
	userAgent    string
	headers      map[string]string
	timeout      time.Duration
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// Option configures the HTTP client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig sets the retry budget and the backoff bounds. A negative
// retryMax disables retries.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = max(retryMax, 0)

		if waitMin > 0 {
			c.retryWaitMin = waitMin
		}

		if waitMax > 0 {
			c.retryWaitMax = waitMax
		}
	}
}

// WithTimeout sets the per-attempt deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHeaders sets headers sent with every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		c.headers = make(map[string]string, len(headers))
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// WithHTTPClient reuses the transport of an existing client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil && client.Transport != nil {
			c.transport = client.Transport
		}
	}
}

// NewClient creates a new HTTP client for the API rooted at baseURL.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		userAgent:    constants.DefaultUserAgent,
		timeout:      constants.DefaultHTTPTimeout,
		retryMax:     constants.DefaultRetryMax,
		retryWaitMin: constants.DefaultRetryWaitMin,
		retryWaitMax: constants.DefaultRetryWaitMax,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient = client.newRetryableClient()

	return client
}

func (c *Client) newRetryableClient() *retryablehttp.Client {
	transport := c.transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{
		Timeout:   c.timeout,
		Transport: transport,
	}
	retryClient.RetryMax = c.retryMax
	retryClient.RetryWaitMin = c.retryWaitMin
	retryClient.RetryWaitMax = c.retryWaitMax
	retryClient.CheckRetry = CheckRetry
	retryClient.Backoff = Backoff
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if c.logger != nil {
		retryClient.Logger = &leveledLogger{logger: c.logger, secret: c.apiKey}
	} else {
		retryClient.Logger = nil
	}

	return retryClient
}

// Request represents one API call.
type Request struct {
	Method  string
	Path    string
	Query   convoso.Query
	Body    interface{}
	Headers map[string]string
}

// Response represents an HTTP response. Body is nil when the API answered
// without a JSON payload.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Empty reports whether the response carried no JSON payload.
func (r *Response) Empty() bool {
	return r == nil || len(r.Body) == 0
}

// errorPayload is the best-effort shape of a non-2xx body.
type errorPayload struct {
	Message string          `json:"message"`
	Code    json.RawMessage `json:"code"`
	Details json.RawMessage `json:"details"`
}

// Do executes an HTTP request. On a non-2xx status the returned Response is
// non-nil alongside the *convoso.APIError. Cancelling ctx also ends a backoff
// wait between retries.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	target := c.buildURL(req.Path, req.Query)

	var body interface{}

	if req.Body != nil {
		bodyBytes, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		body = bodyBytes
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(httpReq.Header, req.Headers)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": method,
			"url":    maskURL(target),
		})
	}

	start := time.Now()

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if resp != nil {
			_ = resp.Body.Close()
		}

		return nil, classifyTransportError(err)
	}

	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
			"size":     len(respBody),
		})
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	if resp.StatusCode < constants.HTTPStatusOK || resp.StatusCode >= constants.HTTPStatusMultipleChoices {
		return response, parseErrorResponse(resp, respBody)
	}

	if !isJSON(resp.Header.Get("Content-Type")) || len(bytes.TrimSpace(respBody)) == 0 {
		response.Body = nil
	}

	return response, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query convoso.Query) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   body,
	})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   body,
	})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodPatch,
		Path:   path,
		Body:   body,
	})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodDelete,
		Path:   path,
	})
}

// buildURL joins base and path with a single slash and appends auth_token
// followed by the non-omitted query entries in key order.
func (c *Client) buildURL(path string, query convoso.Query) string {
	var builder strings.Builder

	builder.WriteString(c.baseURL)
	builder.WriteString("/")
	builder.WriteString(strings.TrimLeft(path, "/"))
	builder.WriteString("?")
	builder.WriteString(url.QueryEscape(constants.AuthTokenParam))
	builder.WriteString("=")
	builder.WriteString(url.QueryEscape(c.apiKey))

	values := query.Values()

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		builder.WriteString("&")
		builder.WriteString(url.QueryEscape(key))
		builder.WriteString("=")
		builder.WriteString(url.QueryEscape(values.Get(key)))
	}

	return builder.String()
}

// setHeaders applies Content-Type, then client headers, then per-call headers.
func (c *Client) setHeaders(header http.Header, perCall map[string]string) {
	header.Set("Accept", constants.ContentTypeJSON)

	if c.userAgent != "" {
		header.Set("User-Agent", c.userAgent)
	}

	header.Set("Content-Type", constants.ContentTypeJSON)

	for k, v := range c.headers {
		header.Set(k, v)
	}

	for k, v := range perCall {
		header.Set(k, v)
	}
}

func parseErrorResponse(resp *http.Response, body []byte) *convoso.APIError {
	apiErr := &convoso.APIError{
		Message:    http.StatusText(resp.StatusCode),
		StatusCode: resp.StatusCode,
	}

	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprint(resp.StatusCode)))
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		return apiErr
	}

	var payload errorPayload

	err := json.Unmarshal(body, &payload)
	if err != nil {
		return apiErr
	}

	if payload.Message != "" {
		apiErr.Message = payload.Message
	}

	apiErr.Code = rawCode(payload.Code)

	if len(payload.Details) > 0 && string(payload.Details) != "null" {
		apiErr.Details = payload.Details
	}

	return apiErr
}

// rawCode renders a code that may be a JSON string or number.
func rawCode(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}

func classifyTransportError(err error) *convoso.APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return convoso.NewTimeoutError(err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return convoso.NewTimeoutError(err)
	}

	return convoso.NewNetworkError(err)
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), constants.ContentTypeJSON)
}

// maskURL hides the API key in a request URL.
func maskURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	query := parsed.Query()
	if !query.Has(constants.AuthTokenParam) {
		return raw
	}

	query.Set(constants.AuthTokenParam, constants.MaskedSecret)
	parsed.RawQuery = query.Encode()

	return parsed.String()
}
