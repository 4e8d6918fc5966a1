package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/convoso-client/internal/http"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// TestAPIKey is the key every test client authenticates with.
const TestAPIKey = "test-api-key"

// NewTestClient creates a new test client with the given base URL. Retries
// are disabled.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, TestAPIKey,
		internalhttp.WithRetryConfig(0, time.Millisecond, time.Millisecond))

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	// Initialize resource clients
	client.initializeResourceClients()

	return client
}

// TestEndpointOperation represents a generic query-string endpoint test case.
type TestEndpointOperation[TResponse any] struct {
	Name          string
	ExpectedPath  string
	ExpectedQuery map[string]string
	AbsentQuery   []string
	StatusCode    int
	Response      interface{}
	WantErr       bool
	ErrMessage    string
	// WantFailure expects a success:false body with this code.
	WantFailure int
	// WantForbidden expects the forbidden failure variant.
	WantForbidden bool
	Check         func(t *testing.T, result *convoso.Result[TResponse])
}

// RunEndpointTests runs a series of query-string endpoint tests.
func RunEndpointTests[TResponse any](
	t *testing.T,
	tests []TestEndpointOperation[TResponse],
	call func(context.Context, *Client) (*convoso.Result[TResponse], error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, "GET", request.Method)

				query := request.URL.Query()
				assert.Equal(t, TestAPIKey, query.Get("auth_token"))

				for key, want := range testCase.ExpectedQuery {
					assert.True(t, query.Has(key), "query parameter %q missing", key)
					assert.Equal(t, want, query.Get(key), "query parameter %q", key)
				}

				for _, key := range testCase.AbsentQuery {
					assert.False(t, query.Has(key), "query parameter %q should be absent", key)
				}

				status := testCase.StatusCode
				if status == 0 {
					status = http.StatusOK
				}

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(status)

				if testCase.Response != nil {
					_ = json.NewEncoder(writer).Encode(testCase.Response)
				}
			}))
			defer server.Close()

			client := NewTestClient(server.URL)
			result, err := call(context.Background(), client)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)

			switch {
			case testCase.WantFailure != 0 || testCase.WantForbidden:
				assert.False(t, result.Success)
				require.NotNil(t, result.Failure)

				if testCase.WantFailure != 0 {
					assert.Equal(t, testCase.WantFailure, result.Failure.Code)
				}

				assert.Equal(t, testCase.WantForbidden, result.Failure.Forbidden)
			default:
				assert.True(t, result.Success)
				require.NotNil(t, result.Data)
			}

			if testCase.Check != nil {
				testCase.Check(t, result)
			}
		})
	}
}

// failureBody builds an application-level rejection body.
func failureBody(code int, text string) map[string]interface{} {
	return map[string]interface{}{
		"success": false,
		"code":    code,
		"text":    text,
	}
}

func intPtr(n int) *int {
	return &n
}

func boolPtr(b bool) *bool {
	return &b
}

func floatPtr(f float64) *float64 {
	return &f
}
