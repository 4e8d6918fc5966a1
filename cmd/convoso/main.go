package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/convoso-client/cmd/convoso/commands"
	"github.com/fivetwenty-io/convoso-client/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "convoso",
	Short: "Convoso call-center API CLI",
	Long: `A command-line interface for the Convoso call-center REST API.

Search and manage leads, lists, DNC entries, callbacks, campaigns and agent
sessions. Every search command accepts --offset, --limit and repeated
--param key=value flags, and every result can be narrowed with --filter.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.convoso/config.yml)")
	flags.StringP("api-key", "k", "", "API key, or '-' to read it from the terminal")
	flags.String("base-url", constants.DefaultBaseURL, "API base URL")
	flags.Duration("timeout", constants.DefaultHTTPTimeout, "per-attempt request timeout")
	flags.Int("max-retries", constants.DefaultRetryMax, "retries for 429 and 5xx responses (negative disables)")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.StringP("filter", "f", "", "expression evaluated against each result row")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolP("verbose", "v", false, "log every request and response")

	// Bind flags to viper
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("api_key", flags.Lookup("api-key"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = viper.BindPFlag("max_retries", flags.Lookup("max-retries"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("filter", flags.Lookup("filter"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewLeadsCommand())
	rootCmd.AddCommand(commands.NewListsCommand())
	rootCmd.AddCommand(commands.NewCallbacksCommand())
	rootCmd.AddCommand(commands.NewDNCCommand())
	rootCmd.AddCommand(commands.NewSMSOptOutCommand())
	rootCmd.AddCommand(commands.NewAgentMonitorCommand())
	rootCmd.AddCommand(commands.NewAgentPerformanceCommand())
	rootCmd.AddCommand(commands.NewAgentProductivityCommand())
	rootCmd.AddCommand(commands.NewUserActivityCommand())
	rootCmd.AddCommand(commands.NewUsersCommand())
	rootCmd.AddCommand(commands.NewCampaignsCommand())
	rootCmd.AddCommand(commands.NewCallLogsCommand())
	rootCmd.AddCommand(commands.NewStatusesCommand())
}

func initConfig() {
	// A missing .env is fine.
	_ = godotenv.Load()

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.convoso/config.yml
		viper.AddConfigPath(filepath.Join(home, ".convoso"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// CONVOSO_API_KEY, CONVOSO_BASE_URL, ...
	viper.SetEnvPrefix("CONVOSO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
