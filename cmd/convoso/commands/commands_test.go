package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/convoso-client/cmd/convoso/commands"
	"github.com/fivetwenty-io/convoso-client/internal/constants"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

//nolint:funlen
func TestCommandStructure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		build       func() *cobra.Command
		use         string
		subcommands []string
	}{
		{name: "leads", build: commands.NewLeadsCommand, use: "leads", subcommands: []string{"search", "insert", "update", "delete", "recordings"}},
		{name: "lists", build: commands.NewListsCommand, use: "lists", subcommands: []string{"search"}},
		{name: "callbacks", build: commands.NewCallbacksCommand, use: "callbacks", subcommands: []string{"search", "insert", "delete"}},
		{name: "dnc", build: commands.NewDNCCommand, use: "dnc", subcommands: []string{"search", "insert", "delete", "import"}},
		{name: "sms opt out", build: commands.NewSMSOptOutCommand, use: "sms-opt-out", subcommands: []string{"search", "insert"}},
		{name: "agent monitor", build: commands.NewAgentMonitorCommand, use: "agent-monitor", subcommands: []string{"search", "logout", "watch"}},
		{name: "users", build: commands.NewUsersCommand, use: "users", subcommands: []string{"search", "recordings"}},
		{name: "campaigns", build: commands.NewCampaignsCommand, use: "campaigns", subcommands: []string{"search", "status"}},
		{name: "call logs", build: commands.NewCallLogsCommand, use: "call-logs", subcommands: []string{"search"}},
		{name: "statuses", build: commands.NewStatusesCommand, use: "statuses", subcommands: []string{"search"}},
		{name: "config", build: commands.NewConfigCommand, use: "config", subcommands: []string{"show", "set", "unset"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := tt.build()
			assert.Equal(t, tt.use, cmd.Use)
			assert.NotEmpty(t, cmd.Short)

			for _, name := range tt.subcommands {
				sub := findSubcommand(cmd, name)
				if assert.NotNil(t, sub, "subcommand %s", name) {
					assert.NotNil(t, sub.RunE, "subcommand %s", name)
				}
			}
		})
	}
}

func TestSearchCommandFlags(t *testing.T) {
	t.Parallel()

	search := findSubcommand(commands.NewLeadsCommand(), "search")
	require.NotNil(t, search)

	for _, flag := range []string{"offset", "limit", "param"} {
		assert.NotNil(t, search.Flags().Lookup(flag), "flag %s", flag)
	}

	watch := findSubcommand(commands.NewAgentMonitorCommand(), "watch")
	require.NotNil(t, watch)

	for _, flag := range []string{"interval", "count", "nats-url", "subject", "campaign-id"} {
		assert.NotNil(t, watch.Flags().Lookup(flag), "flag %s", flag)
	}

	importCmd := findSubcommand(commands.NewDNCCommand(), "import")
	require.NotNil(t, importCmd)
	assert.NotNil(t, importCmd.Flags().Lookup("concurrency"))
}

func TestParseParams(t *testing.T) {
	t.Parallel()

	params, err := commands.ParseParams([]string{"status=NEW,SALE", "owner_id=7", "empty="})
	require.NoError(t, err)

	values := convoso.NormalizeParams(params).Values()
	assert.Equal(t, "NEW,SALE", values.Get("status"))
	assert.Equal(t, convoso.KindList, params["status"].Kind())
	assert.Equal(t, "7", values.Get("owner_id"))
	assert.True(t, values.Has("empty"))

	for _, bad := range []string{"novalue", "=x", " =x"} {
		_, err := commands.ParseParams([]string{bad})
		require.ErrorIs(t, err, constants.ErrInvalidParam, "pair %q", bad)
	}
}

var renderRecords = []convoso.DNCData{
	{ID: "1", PhoneNumber: "5550001", CampaignID: "10", Reason: "asked"},
	{ID: "2", PhoneNumber: "5550002", CampaignID: "10", Reason: "litigator"},
}

//nolint:funlen
func TestRenderer(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := (&commands.Renderer{Out: &out, Format: constants.FormatJSON}).Render(renderRecords)
		require.NoError(t, err)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "5550002", rows[1]["phone_number"])
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := (&commands.Renderer{Out: &out, Format: constants.FormatYAML}).Render(renderRecords[0])
		require.NoError(t, err)
		assert.Contains(t, out.String(), "phone_number: \"5550001\"")
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := (&commands.Renderer{Out: &out}).Render(renderRecords, "id", "phone_number")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "5550001")
		assert.Contains(t, out.String(), "5550002")
		assert.NotContains(t, out.String(), "litigator")
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := (&commands.Renderer{Out: &out, Format: constants.FormatTable}).Render([]convoso.DNCData{})
		require.NoError(t, err)
		assert.Equal(t, "No records found\n", out.String())
	})

	t.Run("filter", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := (&commands.Renderer{Out: &out, Format: constants.FormatJSON, Filter: `reason == "litigator"`}).Render(renderRecords)
		require.NoError(t, err)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
		require.Len(t, rows, 1)
		assert.Equal(t, "2", rows[0]["id"])
	})

	t.Run("invalid filter", func(t *testing.T) {
		t.Parallel()

		err := (&commands.Renderer{Out: &bytes.Buffer{}, Filter: `reason ==`}).Render(renderRecords)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid filter expression")
	})

	t.Run("keyed records", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		users := map[string]convoso.UserData{"b": {}, "a": {}}
		err := (&commands.Renderer{Out: &out, Format: constants.FormatJSON}).Render(users)
		require.NoError(t, err)

		var rows []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
		assert.Len(t, rows, 2)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		err := (&commands.Renderer{Out: &bytes.Buffer{}, Format: "xml"}).Render(renderRecords)
		require.ErrorIs(t, err, constants.ErrInvalidOutput)
	})
}

func TestFileConfig_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	missing, err := commands.LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, &commands.FileConfig{}, missing)

	retries := 2
	config := &commands.FileConfig{
		APIKey:     "secret-token",
		BaseURL:    "https://api.convoso.com/v1",
		Timeout:    "45s",
		MaxRetries: &retries,
		Output:     constants.FormatYAML,
		Headers:    map[string]string{"X-Team": "ops"},
	}

	require.NoError(t, commands.SaveFileConfig(path, config))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	loaded, err := commands.LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}

func TestLoadFileConfig_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("api_key: [unterminated"), 0o600))

	_, err := commands.LoadFileConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

//nolint:funlen
func TestReadDNCImportFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		path := write("entries.yml", `
- phone_number: "5550001"
  phone_code: "1"
  campaign_id: "0"
  reason: asked
- phone_number: "5550002"
  phone_code: "1"
`)

		entries, err := commands.ReadDNCImportFile(path)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "5550001", entries[0].PhoneNumber)
		assert.Equal(t, "asked", entries[0].Reason)
		assert.Empty(t, entries[1].CampaignID)
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		path := write("entries.json", `[{"phone_number":"5550003","phone_code":"1","purpose":"DNC"}]`)

		entries, err := commands.ReadDNCImportFile(path)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "DNC", entries[0].Purpose)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		_, err := commands.ReadDNCImportFile(write("empty.yaml", "[]"))
		require.ErrorIs(t, err, constants.ErrEmptyImportFile)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		_, err := commands.ReadDNCImportFile(write("entries.csv", "5550001"))
		require.ErrorIs(t, err, constants.ErrUnsupportedFormat)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := commands.ReadDNCImportFile(filepath.Join(dir, "missing.yml"))
		require.Error(t, err)
	})
}

type fakeDNC struct {
	mu       sync.Mutex
	inserted []string
}

func (f *fakeDNC) Insert(_ context.Context, params *convoso.DNCInsertParams) (*convoso.Result[convoso.DNCInsertResponse], error) {
	f.mu.Lock()
	f.inserted = append(f.inserted, params.PhoneNumber)
	f.mu.Unlock()

	switch params.PhoneNumber {
	case "bad":
		return &convoso.Result[convoso.DNCInsertResponse]{Failure: &convoso.Failure{Code: 6001, Text: "Invalid phone number"}}, nil
	case "down":
		return nil, convoso.NewNetworkError(errors.New("connection refused"))
	default:
		return &convoso.Result[convoso.DNCInsertResponse]{
			Success: true,
			Data:    &convoso.DNCInsertResponse{Success: true},
		}, nil
	}
}

func (f *fakeDNC) Update(context.Context, *convoso.DNCUpdateParams) (*convoso.Result[convoso.DNCUpdateResponse], error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDNC) Delete(context.Context, *convoso.DNCDeleteParams) (*convoso.Result[convoso.DNCDeleteResponse], error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDNC) Search(context.Context, *convoso.DNCSearchParams) (*convoso.Result[convoso.DNCSearchResponse], error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDNC) Add(context.Context, map[string]any) (map[string]any, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDNC) Remove(context.Context, map[string]any) (map[string]any, error) {
	return nil, errors.New("not implemented")
}

func TestImportDNC(t *testing.T) {
	t.Parallel()

	dnc := &fakeDNC{}
	entries := []convoso.DNCInsertParams{
		{PhoneNumber: "5550001", CampaignID: "0"},
		{PhoneNumber: "bad", CampaignID: "0"},
		{PhoneNumber: "down", CampaignID: "12"},
		{PhoneNumber: "5550004", CampaignID: "12"},
	}

	outcomes := commands.ImportDNC(context.Background(), dnc, entries, 2)
	require.Len(t, outcomes, len(entries))

	assert.Equal(t, commands.ImportInserted, outcomes[0].Status)
	assert.Equal(t, "5550001", outcomes[0].PhoneNumber)

	assert.Equal(t, commands.ImportRejected, outcomes[1].Status)
	assert.Equal(t, 6001, outcomes[1].Code)
	assert.Contains(t, outcomes[1].Error, "Invalid phone number")

	assert.Equal(t, commands.ImportFailed, outcomes[2].Status)
	assert.Equal(t, "12", outcomes[2].CampaignID)
	assert.Contains(t, outcomes[2].Error, "connection refused")

	assert.Equal(t, commands.ImportInserted, outcomes[3].Status)
	assert.ElementsMatch(t, []string{"5550001", "bad", "down", "5550004"}, dnc.inserted)
}

func TestImportDNC_NonPositiveConcurrency(t *testing.T) {
	t.Parallel()

	entries := []convoso.DNCInsertParams{
		{PhoneNumber: "5550001", CampaignID: "0"},
		{PhoneNumber: "5550002", CampaignID: "0"},
	}

	for _, concurrency := range []int{0, -3} {
		dnc := &fakeDNC{}

		outcomes := commands.ImportDNC(context.Background(), dnc, entries, concurrency)
		require.Len(t, outcomes, len(entries))
		assert.Equal(t, commands.ImportInserted, outcomes[0].Status)
		assert.Equal(t, commands.ImportInserted, outcomes[1].Status)
		assert.Equal(t, []string{"5550001", "5550002"}, dnc.inserted, "concurrency %d", concurrency)
	}
}
