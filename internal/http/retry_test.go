package http_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	convosohttp "github.com/fivetwenty-io/convoso-client/internal/http"
)

var errDial = errors.New("dial tcp: connection refused")

func TestBackoff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: time.Second},
		{attempt: 1, want: 2 * time.Second},
		{attempt: 2, want: 4 * time.Second},
		{attempt: 3, want: 8 * time.Second},
		{attempt: 4, want: 16 * time.Second},
		{attempt: 5, want: 30 * time.Second},
		{attempt: 12, want: 30 * time.Second},
		{attempt: 200, want: 30 * time.Second},
	}

	for _, tt := range tests {
		got := convosohttp.Backoff(time.Second, 30*time.Second, tt.attempt, nil)
		assert.Equal(t, tt.want, got, "attempt %d", tt.attempt)
	}
}

func TestBackoff_IgnoresRetryAfter(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{"Retry-After": []string{"120"}},
	}

	assert.Equal(t, 2*time.Second, convosohttp.Backoff(time.Second, 30*time.Second, 1, resp))
}

func TestCheckRetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   bool
	}{
		{name: "ok", status: http.StatusOK, want: false},
		{name: "bad request", status: http.StatusBadRequest, want: false},
		{name: "not found", status: http.StatusNotFound, want: false},
		{name: "rate limited", status: http.StatusTooManyRequests, want: true},
		{name: "internal error", status: http.StatusInternalServerError, want: true},
		{name: "bad gateway", status: http.StatusBadGateway, want: true},
		{name: "unavailable", status: http.StatusServiceUnavailable, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			retry, err := convosohttp.CheckRetry(context.Background(), &http.Response{StatusCode: tt.status}, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, retry)
		})
	}

	t.Run("transport error is not retried", func(t *testing.T) {
		t.Parallel()

		retry, err := convosohttp.CheckRetry(context.Background(), nil, errDial)
		require.NoError(t, err)
		assert.False(t, retry)
	})

	t.Run("done context stops retrying", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		retry, err := convosohttp.CheckRetry(ctx, &http.Response{StatusCode: http.StatusBadGateway}, nil)
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, retry)
	})
}
