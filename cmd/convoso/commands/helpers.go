package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
	"github.com/fivetwenty-io/convoso-client/pkg/convosoclient"
)

// Configuration keys shared by flags, environment and the config file.
const (
	keyAPIKey     = "api_key"
	keyBaseURL    = "base_url"
	keyTimeout    = "timeout"
	keyMaxRetries = "max_retries"
	keyOutput     = "output"
	keyFilter     = "filter"
	keyLogLevel   = "log_level"
	keyVerbose    = "verbose"
	keyHeaders    = "headers"
	keyUserAgent  = "user_agent"

	// promptAPIKey asks for the key on the terminal.
	promptAPIKey = "-"
)

// CreateClient builds a Convoso client from the effective configuration.
func CreateClient() (convoso.Client, error) {
	apiKey, err := resolveAPIKey(viper.GetString(keyAPIKey), os.Stdin, os.Stderr)
	if err != nil {
		return nil, err
	}

	timeout := viper.GetDuration(keyTimeout)
	if timeout < 0 {
		return nil, constants.ErrInvalidTimeout
	}

	config := &convoso.Config{
		APIKey:     apiKey,
		BaseURL:    viper.GetString(keyBaseURL),
		Timeout:    timeout,
		MaxRetries: maxRetries(),
		Headers:    viper.GetStringMapString(keyHeaders),
		UserAgent:  viper.GetString(keyUserAgent),
		Logger:     NewLogger(os.Stderr, logLevel()),
		Debug:      viper.GetBool(keyVerbose),
	}

	client, err := convosoclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// maxRetries maps an explicit 0 to "no retries"; the library reads 0 as
// "use the default".
func maxRetries() int {
	n := viper.GetInt(keyMaxRetries)
	if n == 0 {
		return -1
	}

	return n
}

func logLevel() string {
	if viper.GetBool(keyVerbose) {
		return "debug"
	}

	return viper.GetString(keyLogLevel)
}

func resolveAPIKey(configured string, in *os.File, prompt io.Writer) (string, error) {
	key := strings.TrimSpace(configured)

	switch key {
	case "":
		return "", constants.ErrNoAPIKey
	case promptAPIKey:
		return readAPIKey(in, prompt)
	default:
		return key, nil
	}
}

func readAPIKey(in *os.File, prompt io.Writer) (string, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return "", constants.ErrAPIKeyPromptNoTTY
	}

	_, err := io.WriteString(prompt, "API key: ")
	if err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	keyBytes, err := term.ReadPassword(fd)

	_, _ = io.WriteString(prompt, "\n") // Add newline after password input

	if err != nil {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	key := strings.TrimSpace(string(keyBytes))
	if key == "" {
		return "", constants.ErrNoAPIKey
	}

	return key, nil
}

// ParseParams turns repeated key=value flags into request parameters. A value
// containing commas becomes a list.
func ParseParams(pairs []string) (convoso.Params, error) {
	params := make(convoso.Params, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)

		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidParam, pair)
		}

		if strings.Contains(value, ",") {
			params[key] = convoso.Strings(strings.Split(value, ",")...)

			continue
		}

		params[key] = convoso.String(value)
	}

	return params, nil
}

// searchFlags are the flags every search command carries.
type searchFlags struct {
	offset int
	limit  int
	params []string
}

func addSearchFlags(cmd *cobra.Command, flags *searchFlags) {
	cmd.Flags().IntVar(&flags.offset, "offset", 0, "number of records to skip")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "maximum number of records to return")
	addParamFlag(cmd, &flags.params)
}

func addParamFlag(cmd *cobra.Command, params *[]string) {
	cmd.Flags().StringArrayVar(params, "param", nil, "extra request parameter as key=value (repeatable)")
}

// pagination returns the offset and limit the user set, nil for the others.
func (f *searchFlags) pagination(cmd *cobra.Command) (*int, *int) {
	var offset, limit *int

	if cmd.Flags().Changed("offset") {
		offset = &f.offset
	}

	if cmd.Flags().Changed("limit") {
		limit = &f.limit
	}

	return offset, limit
}

// intFlag returns a pointer to value when the flag was set.
func intFlag(cmd *cobra.Command, name string, value int) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return &value
}

// boolFlag returns a pointer to value when the flag was set.
func boolFlag(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}

	return &value
}

// unwrap returns the data of a successful result, or the failure wrapped
// with the operation name.
func unwrap[T any](result *convoso.Result[T], operation string) (*T, error) {
	data, err := result.Unwrap()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", operation, constants.ErrRequestFailed, err)
	}

	return data, nil
}

// maskSecret hides all but the last few characters of a secret.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	if len(secret) <= constants.MaskedSecretVisibleChars*2 {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + secret[len(secret)-constants.MaskedSecretVisibleChars:]
}

func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return truncate(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return truncate(fmt.Sprint(v))
	}
}

func truncate(s string) string {
	if len(s) <= constants.StringTruncationLength {
		return s
	}

	return s[:constants.StringTruncationLength-3] + "..."
}

func parseID(value, name string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q", constants.ErrInvalidID, name, value)
	}

	return id, nil
}

// printSuccess prints a confirmation, or a {"success": true, "message": ...}
// document for structured output.
func printSuccess(cmd *cobra.Command, format string, args ...any) error {
	message := fmt.Sprintf(format, args...)

	output := viper.GetString(keyOutput)
	if output == constants.FormatJSON || output == constants.FormatYAML {
		return (&Renderer{Out: cmd.OutOrStdout(), Format: output}).Render(map[string]any{
			"success": true,
			"message": message,
		})
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), message)

	return err
}
