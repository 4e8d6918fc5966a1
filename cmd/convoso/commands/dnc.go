package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

var dncColumns = []string{"id", "phone_number", "phone_code", "campaign_id", "purpose", "reason", "insert_date"}

// NewDNCCommand creates the DNC command group.
func NewDNCCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dnc",
		Short: "Manage the Do Not Call list",
	}

	cmd.AddCommand(newDNCSearchCommand())
	cmd.AddCommand(newDNCInsertCommand())
	cmd.AddCommand(newDNCDeleteCommand())
	cmd.AddCommand(newDNCImportCommand())

	return cmd
}

func newDNCSearchCommand() *cobra.Command {
	var (
		search      searchFlags
		campaignID  int
		phoneNumber string
		phoneCode   string
		purpose     string
		reason      string
		insertDate  string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search DNC entries",
		Long:  "Search DNC entries. Offsets up to 100000 are accepted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := ParseParams(search.params)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			offset, limit := search.pagination(cmd)

			result, err := client.DNC().Search(cmd.Context(), &convoso.DNCSearchParams{
				CampaignID:  intFlag(cmd, "campaign-id", campaignID),
				PhoneNumber: phoneNumber,
				PhoneCode:   phoneCode,
				Purpose:     purpose,
				Reason:      reason,
				InsertDate:  insertDate,
				Offset:      offset,
				Limit:       limit,
				Extra:       extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching DNC entries")
			if err != nil {
				return err
			}

			var entries []convoso.DNCData
			if data.Data != nil {
				entries = data.Data.Entries
			}

			return NewRenderer(cmd.OutOrStdout()).Render(entries, dncColumns...)
		},
	}

	addSearchFlags(cmd, &search)
	cmd.Flags().IntVar(&campaignID, "campaign-id", 0, "campaign id (0 is the global list)")
	cmd.Flags().StringVar(&phoneNumber, "phone-number", "", "phone number")
	cmd.Flags().StringVar(&phoneCode, "phone-code", "", "country phone code")
	cmd.Flags().StringVar(&purpose, "purpose", "", "suppression purpose")
	cmd.Flags().StringVar(&reason, "reason", "", "suppression reason")
	cmd.Flags().StringVar(&insertDate, "insert-date", "", "insert date (YYYY-MM-DD)")

	return cmd
}

func newDNCInsertCommand() *cobra.Command {
	var (
		params []string
		entry  convoso.DNCInsertParams
	)

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Add a number to the DNC list",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := ParseParams(params)
			if err != nil {
				return err
			}

			entry.Extra = extra

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.DNC().Insert(cmd.Context(), &entry)
			if err != nil {
				return err
			}

			_, err = unwrap(result, "inserting DNC entry")
			if err != nil {
				return err
			}

			return printSuccess(cmd, "%s added to the DNC list", entry.PhoneNumber)
		},
	}

	addParamFlag(cmd, &params)
	addDNCEntryFlags(cmd, &entry)
	_ = cmd.MarkFlagRequired("phone-number")

	return cmd
}

func addDNCEntryFlags(cmd *cobra.Command, entry *convoso.DNCInsertParams) {
	cmd.Flags().StringVar(&entry.PhoneNumber, "phone-number", "", "phone number")
	cmd.Flags().StringVar(&entry.PhoneCode, "phone-code", "1", "country phone code")
	cmd.Flags().StringVar(&entry.CampaignID, "campaign-id", "0", "campaign id (0 is the global list)")
	cmd.Flags().StringVar(&entry.Purpose, "purpose", convoso.PurposeTeleMkt, "suppression purpose")
	cmd.Flags().StringVar(&entry.Reason, "reason", convoso.ReasonDNC, "suppression reason")
}

func newDNCDeleteCommand() *cobra.Command {
	var (
		params []string
		entry  convoso.DNCDeleteParams
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a number from the DNC list",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := ParseParams(params)
			if err != nil {
				return err
			}

			entry.Extra = extra

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.DNC().Delete(cmd.Context(), &entry)
			if err != nil {
				return err
			}

			_, err = unwrap(result, "deleting DNC entry")
			if err != nil {
				return err
			}

			return printSuccess(cmd, "%s removed from the DNC list", entry.PhoneNumber)
		},
	}

	addParamFlag(cmd, &params)
	cmd.Flags().StringVar(&entry.PhoneNumber, "phone-number", "", "phone number")
	cmd.Flags().StringVar(&entry.PhoneCode, "phone-code", "1", "country phone code")
	cmd.Flags().StringVar(&entry.CampaignID, "campaign-id", "0", "campaign id (0 is the global list)")
	cmd.Flags().StringVar(&entry.UpdateLeadStatus, "update-lead-status", "", "also update matching leads")
	cmd.Flags().StringVar(&entry.LeadStatus, "lead-status", "", "status to give matching leads")
	_ = cmd.MarkFlagRequired("phone-number")

	return cmd
}

func newDNCImportCommand() *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add many numbers to the DNC list",
		Long: `Insert every entry of a YAML or JSON file into the DNC list. The file
holds a list of entries with phone_number, phone_code, campaign_id, purpose
and reason keys.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if concurrency < 1 || concurrency > constants.MaxConcurrencyLimit {
				return fmt.Errorf("%w: %d", constants.ErrInvalidConcurrency, concurrency)
			}

			entries, err := ReadDNCImportFile(args[0])
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			outcomes := ImportDNC(cmd.Context(), client.DNC(), entries, concurrency)

			err = NewRenderer(cmd.OutOrStdout()).Render(outcomes, "phone_number", "campaign_id", "status", "code", "error")
			if err != nil {
				return err
			}

			for _, outcome := range outcomes {
				if outcome.Status != ImportInserted {
					return constants.ErrImportFailed
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultConcurrencyLimit, "parallel requests")

	return cmd
}

// Import outcomes.
const (
	ImportInserted = "inserted"
	ImportRejected = "rejected"
	ImportFailed   = "failed"
)

// ImportOutcome is the result of importing one DNC entry.
type ImportOutcome struct {
	PhoneNumber string `json:"phone_number"    yaml:"phone_number"`
	CampaignID  string `json:"campaign_id"     yaml:"campaign_id"`
	Status      string `json:"status"          yaml:"status"`
	Code        int    `json:"code,omitempty"  yaml:"code,omitempty"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ReadDNCImportFile reads DNC entries from a YAML or JSON file.
func ReadDNCImportFile(path string) ([]convoso.DNCInsertParams, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s", constants.ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path given by the user
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var entries []convoso.DNCInsertParams

	err = yaml.Unmarshal(data, &entries)
	if err != nil {
		return nil, fmt.Errorf("parsing import file %s: %w", path, err)
	}

	if len(entries) == 0 {
		return nil, constants.ErrEmptyImportFile
	}

	return entries, nil
}

// ImportDNC inserts entries with at most concurrency requests in flight. One
// outcome is returned per entry, in input order. Failures do not stop the
// import. A concurrency below 1 runs the entries one at a time.
func ImportDNC(ctx context.Context, dnc convoso.DNCClient, entries []convoso.DNCInsertParams, concurrency int) []ImportOutcome {
	outcomes := make([]ImportOutcome, len(entries))

	if concurrency < 1 {
		concurrency = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range entries {
		entry := entries[i]

		g.Go(func() error {
			outcomes[i] = importDNCEntry(ctx, dnc, &entry)

			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}

func importDNCEntry(ctx context.Context, dnc convoso.DNCClient, entry *convoso.DNCInsertParams) ImportOutcome {
	outcome := ImportOutcome{PhoneNumber: entry.PhoneNumber, CampaignID: entry.CampaignID}

	result, err := dnc.Insert(ctx, entry)
	if err != nil {
		outcome.Status = ImportFailed
		outcome.Error = err.Error()

		return outcome
	}

	_, err = result.Unwrap()
	if err != nil {
		outcome.Status = ImportRejected
		outcome.Error = err.Error()

		var failure *convoso.Failure
		if errors.As(err, &failure) {
			outcome.Code = failure.Code
		}

		return outcome
	}

	outcome.Status = ImportInserted

	return outcome
}
