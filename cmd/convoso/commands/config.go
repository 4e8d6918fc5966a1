package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
)

const headerKeyPrefix = keyHeaders + "."

// FileConfig is the content of the CLI config file.
type FileConfig struct {
	APIKey     string            `json:"api_key,omitempty"     yaml:"api_key,omitempty"`
	BaseURL    string            `json:"base_url,omitempty"    yaml:"base_url,omitempty"`
	Timeout    string            `json:"timeout,omitempty"     yaml:"timeout,omitempty"`
	MaxRetries *int              `json:"max_retries,omitempty" yaml:"max_retries,omitempty"`
	Output     string            `json:"output,omitempty"      yaml:"output,omitempty"`
	LogLevel   string            `json:"log_level,omitempty"   yaml:"log_level,omitempty"`
	UserAgent  string            `json:"user_agent,omitempty"  yaml:"user_agent,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"     yaml:"headers,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the Convoso CLI configuration stored in $HOME/.convoso/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from flags, environment and config file. The API key is masked.",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := effectiveSettings()

			output := viper.GetString(keyOutput)
			if output == constants.FormatJSON || output == constants.FormatYAML {
				return (&Renderer{Out: cmd.OutOrStdout(), Format: output}).Render(settings)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Property", "Value")

			for _, key := range settingKeys(settings) {
				_ = table.Append(key, settings[key])
			}

			if err := table.Render(); err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Persist a configuration value. Keys: api_key, base_url, timeout,
max_retries, output, log_level, user_agent and headers.<Name>.`,
		Example: `  convoso config set api_key abc123
  convoso config set timeout 45s
  convoso config set headers.X-Request-Source crm`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigFile(configFilePath(), func(config *FileConfig) error {
				return setConfigValue(config, args[0], args[1])
			}, cmd, "set", args[0])
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfigFile(configFilePath(), func(config *FileConfig) error {
				return unsetConfigValue(config, args[0])
			}, cmd, "unset", args[0])
		},
	}
}

func updateConfigFile(path string, change func(*FileConfig) error, cmd *cobra.Command, action, key string) error {
	config, err := LoadFileConfig(path)
	if err != nil {
		return err
	}

	err = change(config)
	if err != nil {
		return err
	}

	err = SaveFileConfig(path, config)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration %s: %s (%s)\n", action, key, path)

	return nil
}

// configFilePath returns the config file in use, or the default location.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}

	if explicit := viper.GetString("config"); explicit != "" {
		return explicit
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".convoso", "config.yml")
	}

	return filepath.Join(home, ".convoso", "config.yml")
}

// LoadFileConfig reads the config file at path. A missing file yields an
// empty config.
func LoadFileConfig(path string) (*FileConfig, error) {
	config := &FileConfig{}

	data, err := os.ReadFile(path) //nolint:gosec // user-chosen config path
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return config, nil
}

// SaveFileConfig writes config to path, creating the directory if needed.
func SaveFileConfig(path string, config *FileConfig) error {
	err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func setConfigValue(config *FileConfig, key, value string) error {
	if name, ok := strings.CutPrefix(key, headerKeyPrefix); ok && name != "" {
		if config.Headers == nil {
			config.Headers = make(map[string]string)
		}

		config.Headers[name] = value

		return nil
	}

	switch key {
	case keyAPIKey:
		config.APIKey = value
	case keyBaseURL:
		config.BaseURL = value
	case keyTimeout:
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q", constants.ErrInvalidTimeout, value)
		}

		config.Timeout = d.String()
	case keyMaxRetries:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_retries must be an integer: %w", err)
		}

		config.MaxRetries = &n
	case keyOutput:
		if !validOutput(value) {
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, value)
		}

		config.Output = value
	case keyLogLevel:
		config.LogLevel = strings.ToLower(value)
	case keyUserAgent:
		config.UserAgent = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func unsetConfigValue(config *FileConfig, key string) error {
	if name, ok := strings.CutPrefix(key, headerKeyPrefix); ok && name != "" {
		delete(config.Headers, name)

		return nil
	}

	switch key {
	case keyAPIKey:
		config.APIKey = ""
	case keyBaseURL:
		config.BaseURL = ""
	case keyTimeout:
		config.Timeout = ""
	case keyMaxRetries:
		config.MaxRetries = nil
	case keyOutput:
		config.Output = ""
	case keyLogLevel:
		config.LogLevel = ""
	case keyUserAgent:
		config.UserAgent = ""
	case keyHeaders:
		config.Headers = nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func validOutput(format string) bool {
	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return true
	default:
		return false
	}
}

// effectiveSettings returns the configuration the next command would use.
func effectiveSettings() map[string]string {
	settings := map[string]string{
		keyAPIKey:     maskSecret(viper.GetString(keyAPIKey)),
		keyBaseURL:    viper.GetString(keyBaseURL),
		keyTimeout:    viper.GetDuration(keyTimeout).String(),
		keyMaxRetries: strconv.Itoa(viper.GetInt(keyMaxRetries)),
		keyOutput:     viper.GetString(keyOutput),
		keyLogLevel:   viper.GetString(keyLogLevel),
		keyUserAgent:  viper.GetString(keyUserAgent),
		"config_file": configFilePath(),
	}

	for name, value := range viper.GetStringMapString(keyHeaders) {
		settings[headerKeyPrefix+name] = value
	}

	return settings
}

func settingKeys(settings map[string]string) []string {
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}
