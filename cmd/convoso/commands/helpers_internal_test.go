//nolint:testpackage // Need access to internal helpers
package commands

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
)

func TestMaskSecret(t *testing.T) {
	t.Parallel()

	assert.Empty(t, maskSecret(""))
	assert.Equal(t, "***", maskSecret("short"))
	assert.Equal(t, "***7890", maskSecret("abcdef1234567890"))
}

//nolint:funlen
func TestSetConfigValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		value   string
		check   func(t *testing.T, config *FileConfig)
		wantErr error
	}{
		{
			name: "timeout is normalized", key: keyTimeout, value: "90s",
			check: func(t *testing.T, config *FileConfig) { t.Helper(); assert.Equal(t, "1m30s", config.Timeout) },
		},
		{name: "bad timeout", key: keyTimeout, value: "soon", wantErr: constants.ErrInvalidTimeout},
		{name: "zero timeout", key: keyTimeout, value: "0s", wantErr: constants.ErrInvalidTimeout},
		{
			name: "max retries", key: keyMaxRetries, value: "0",
			check: func(t *testing.T, config *FileConfig) {
				t.Helper()
				require.NotNil(t, config.MaxRetries)
				assert.Equal(t, 0, *config.MaxRetries)
			},
		},
		{name: "output", key: keyOutput, value: "json", check: func(t *testing.T, config *FileConfig) {
			t.Helper()
			assert.Equal(t, "json", config.Output)
		}},
		{name: "bad output", key: keyOutput, value: "xml", wantErr: constants.ErrInvalidOutput},
		{name: "header", key: "headers.X-Team", value: "ops", check: func(t *testing.T, config *FileConfig) {
			t.Helper()
			assert.Equal(t, map[string]string{"X-Team": "ops"}, config.Headers)
		}},
		{name: "log level lowercased", key: keyLogLevel, value: "DEBUG", check: func(t *testing.T, config *FileConfig) {
			t.Helper()
			assert.Equal(t, "debug", config.LogLevel)
		}},
		{name: "unknown", key: "colour", value: "red", wantErr: constants.ErrUnknownConfigKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config := &FileConfig{}

			err := setConfigValue(config, tt.key, tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			tt.check(t, config)
		})
	}
}

func TestUnsetConfigValue(t *testing.T) {
	t.Parallel()

	retries := 1
	config := &FileConfig{
		APIKey:     "token",
		MaxRetries: &retries,
		Headers:    map[string]string{"X-A": "1", "X-B": "2"},
	}

	require.NoError(t, unsetConfigValue(config, keyAPIKey))
	require.NoError(t, unsetConfigValue(config, keyMaxRetries))
	require.NoError(t, unsetConfigValue(config, "headers.X-A"))

	assert.Empty(t, config.APIKey)
	assert.Nil(t, config.MaxRetries)
	assert.Equal(t, map[string]string{"X-B": "2"}, config.Headers)

	require.NoError(t, unsetConfigValue(config, keyHeaders))
	assert.Nil(t, config.Headers)

	require.ErrorIs(t, unsetConfigValue(config, "nope"), constants.ErrUnknownConfigKey)
}

func TestResolveAPIKey(t *testing.T) {
	t.Parallel()

	key, err := resolveAPIKey("  token  ", os.Stdin, &strings.Builder{})
	require.NoError(t, err)
	assert.Equal(t, "token", key)

	_, err = resolveAPIKey("", os.Stdin, &strings.Builder{})
	require.ErrorIs(t, err, constants.ErrNoAPIKey)

	devNull, err := os.Open(os.DevNull)
	require.NoError(t, err)

	t.Cleanup(func() { _ = devNull.Close() })

	_, err = resolveAPIKey(promptAPIKey, devNull, &strings.Builder{})
	require.ErrorIs(t, err, constants.ErrAPIKeyPromptNoTTY)
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID(" 42 ", "lead id")
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	for _, bad := range []string{"", "0", "-1", "abc"} {
		_, err := parseID(bad, "lead id")
		require.ErrorIs(t, err, constants.ErrInvalidID, "value %q", bad)
	}
}

func TestFormatCell(t *testing.T) {
	t.Parallel()

	assert.Empty(t, formatCell(nil))
	assert.Equal(t, "12.5", formatCell(12.5))
	assert.Equal(t, "3", formatCell(float64(3)))
	assert.Equal(t, "true", formatCell(true))

	long := strings.Repeat("x", constants.StringTruncationLength+10)
	cell := formatCell(long)
	assert.Len(t, cell, constants.StringTruncationLength)
	assert.True(t, strings.HasSuffix(cell, "..."))
}

func TestLookup(t *testing.T) {
	t.Parallel()

	row := map[string]any{
		"user_id": "7",
		"status":  map[string]any{"status": "READY", "duration": float64(30)},
	}

	assert.Equal(t, "7", lookup(row, "user_id"))
	assert.Equal(t, "READY", lookup(row, "status.status"))
	assert.Nil(t, lookup(row, "status.status.deeper"))
	assert.Nil(t, lookup(row, "missing"))
}
