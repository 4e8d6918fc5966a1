package convoso_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *convoso.APIError
		want string
	}{
		{
			name: "status and code",
			err:  &convoso.APIError{Message: "Invalid list", StatusCode: 422, Code: "6002"},
			want: "Invalid list (status: 422, code: 6002)",
		},
		{
			name: "status only",
			err:  &convoso.APIError{Message: "Not Found", StatusCode: 404},
			want: "Not Found (status: 404)",
		},
		{
			name: "code only",
			err:  convoso.NewTimeoutError(context.DeadlineExceeded),
			want: "Request timeout (code: TIMEOUT)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestNewNetworkError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := convoso.NewNetworkError(cause)

	assert.Equal(t, "connection refused", err.Message)
	assert.Equal(t, convoso.CodeNetworkError, err.Code)
	assert.Equal(t, 0, err.StatusCode)
	require.ErrorIs(t, err, cause)
}

//nolint:funlen
func TestPredicates(t *testing.T) {
	t.Parallel()

	wrap := func(err error) error { return fmt.Errorf("searching leads: %w", err) }

	tests := []struct {
		name      string
		err       error
		check     func(error) bool
		want      bool
		retryable bool
	}{
		{name: "timeout", err: wrap(convoso.NewTimeoutError(context.DeadlineExceeded)), check: convoso.IsTimeout, want: true},
		{name: "network", err: wrap(convoso.NewNetworkError(errors.New("reset"))), check: convoso.IsNetworkError, want: true},
		{name: "rate limited", err: wrap(&convoso.APIError{StatusCode: http.StatusTooManyRequests}), check: convoso.IsRateLimited, want: true, retryable: true},
		{name: "not found", err: wrap(&convoso.APIError{StatusCode: http.StatusNotFound}), check: convoso.IsNotFound, want: true},
		{name: "unauthorized", err: wrap(&convoso.APIError{StatusCode: http.StatusUnauthorized}), check: convoso.IsUnauthorized, want: true},
		{name: "forbidden status", err: wrap(&convoso.APIError{StatusCode: http.StatusForbidden}), check: convoso.IsForbidden, want: true},
		{name: "forbidden failure", err: &convoso.Failure{Forbidden: true}, check: convoso.IsForbidden, want: true},
		{name: "server error", err: wrap(&convoso.APIError{StatusCode: http.StatusBadGateway}), check: convoso.IsServerError, want: true, retryable: true},
		{name: "client error is not server error", err: &convoso.APIError{StatusCode: http.StatusBadRequest}, check: convoso.IsServerError, want: false},
		{name: "plain error", err: errors.New("x"), check: convoso.IsTimeout, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.check(tt.err))
			assert.Equal(t, tt.retryable, convoso.IsRetryable(tt.err))
		})
	}
}

func TestIsRetryableStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []int{429, 500, 502, 503, 599} {
		assert.True(t, convoso.IsRetryableStatus(status), "status %d", status)
	}

	for _, status := range []int{200, 400, 401, 403, 404, 422, 428} {
		assert.False(t, convoso.IsRetryableStatus(status), "status %d", status)
	}
}

func TestStatusCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 418, convoso.StatusCode(fmt.Errorf("ctx: %w", &convoso.APIError{StatusCode: 418})))
	assert.Equal(t, 0, convoso.StatusCode(errors.New("plain")))
	assert.Equal(t, 0, convoso.StatusCode(nil))
}
