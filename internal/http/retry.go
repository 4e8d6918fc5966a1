package http

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// CheckRetry retries only HTTP responses with status 429 or >= 500.
// Transport errors are returned to the caller on the first attempt.
func CheckRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return false, nil
	}

	return convoso.IsRetryableStatus(resp.StatusCode), nil
}

// Backoff returns min * 2^attemptNum capped at max. Retry-After is ignored.
func Backoff(minWait, maxWait time.Duration, attemptNum int, _ *http.Response) time.Duration {
	wait := float64(minWait) * math.Pow(constants.ExponentialBackoffBase, float64(attemptNum))
	if wait > float64(maxWait) {
		return maxWait
	}

	return time.Duration(wait)
}

// leveledLogger routes retryablehttp's own log lines to a Logger.
type leveledLogger struct {
	logger Logger
	secret string
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, l.fields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, l.fields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, l.fields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, l.fields(keysAndValues))
}

// fields pairs up keysAndValues, masking the API key wherever it appears,
// raw or query-escaped.
func (l *leveledLogger) fields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		value := keysAndValues[i+1]

		switch typed := value.(type) {
		case string, error, fmt.Stringer:
			text := fmt.Sprint(typed)
			if l.secret != "" {
				text = strings.ReplaceAll(text, l.secret, constants.MaskedSecret)
				text = strings.ReplaceAll(text, url.QueryEscape(l.secret), constants.MaskedSecret)
			}

			value = text
		}

		fields[key] = value
	}

	return fields
}
