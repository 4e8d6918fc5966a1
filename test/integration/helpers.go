//go:build integration

package integration

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/joho/godotenv"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey     string
	BaseURL    string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from the environment, reading a .env
// file at the repository root first when present.
func LoadTestConfig() *TestConfig {
	_ = godotenv.Load("../../.env")

	return &TestConfig{
		APIKey:     os.Getenv("CONVOSO_API_KEY"),
		BaseURL:    os.Getenv("CONVOSO_BASE_URL"),
		BinaryPath: binaryPath(),
		Verbose:    os.Getenv("CONVOSO_VERBOSE") == "true",
	}
}

func binaryPath() string {
	if path := os.Getenv("CONVOSO_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../convoso", "./convoso", "../convoso"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "convoso"
}

// SkipIfMissingConfig skips the test when no API key is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("CONVOSO_API_KEY not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test when the CLI binary cannot be found.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("convoso binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// CommandRunner runs the convoso CLI against the configured account.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes a convoso command and returns its output. The API key is
// passed through the environment, never on the command line.
func (runner *CommandRunner) Run(ctx context.Context, args ...string) (stdout, stderr string, err error) {
	cmd := exec.CommandContext(ctx, runner.config.BinaryPath, args...) //nolint:gosec // test binary
	cmd.Env = append(os.Environ(), "CONVOSO_API_KEY="+runner.config.APIKey)

	if runner.config.BaseURL != "" {
		cmd.Env = append(cmd.Env, "CONVOSO_BASE_URL="+runner.config.BaseURL)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}
