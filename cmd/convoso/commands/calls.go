package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// NewCampaignsCommand creates the campaigns command group.
func NewCampaignsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "campaigns",
		Aliases: []string{"campaign"},
		Short:   "List and toggle campaigns",
	}

	cmd.AddCommand(newCampaignsSearchCommand())
	cmd.AddCommand(newCampaignsStatusCommand())

	return cmd
}

func newCampaignsSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "List campaigns",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Campaigns().Search(cmd.Context())
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching campaigns")
			if err != nil {
				return err
			}

			return NewRenderer(cmd.OutOrStdout()).Render(data.Data, "id", "name", "status", "last_call_date.date")
		},
	}
}

func newCampaignsStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "status CAMPAIGN_ID active|inactive",
		Short:     "Activate or deactivate a campaign",
		Args:      cobra.ExactArgs(2), //nolint:mnd
		ValidArgs: []string{"active", "inactive"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var status int

			switch args[1] {
			case "active", "on", "1":
				status = convoso.CampaignActivate
			case "inactive", "off", "0":
				status = convoso.CampaignDeactivate
			default:
				return fmt.Errorf("%w: status must be active or inactive, got %q", constants.ErrInvalidParam, args[1])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Campaigns().Status(cmd.Context(), &convoso.CampaignStatusParams{
				CampaignID: args[0],
				Status:     status,
			})
			if err != nil {
				return err
			}

			if _, err := unwrap(result, "updating campaign status"); err != nil {
				return err
			}

			return printSuccess(cmd, "Campaign %s set %s", args[0], args[1])
		},
	}
}

// NewCallLogsCommand creates the call logs command group.
func NewCallLogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "call-logs",
		Aliases: []string{"calls", "cl"},
		Short:   "Search call logs",
	}

	cmd.AddCommand(newCallLogsSearchCommand())

	return cmd
}

func newCallLogsSearchCommand() *cobra.Command {
	var (
		search     searchFlags
		filters    convoso.CallLogsSearchParams
		recordings bool
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search call log records",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := ParseParams(search.params)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			params := filters
			params.Offset, params.Limit = search.pagination(cmd)
			params.IncludeRecordings = recordings
			params.Extra = extra

			result, err := client.CallLogs().Search(cmd.Context(), &params)
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching call logs")
			if err != nil {
				return err
			}

			var entries []convoso.CallLogData
			if data.Data != nil {
				entries = data.Data.Results
			}

			return NewRenderer(cmd.OutOrStdout()).Render(entries,
				"id", "lead_id", "campaign", "user", "phone_number", "status", "call_length", "call_date")
		},
	}

	addSearchFlags(cmd, &search)
	cmd.Flags().StringVar(&filters.ID, "id", "", "call log id")
	cmd.Flags().StringVar(&filters.LeadID, "lead-id", "", "lead id")
	cmd.Flags().StringVar(&filters.CampaignID, "campaign-id", "", "campaign id")
	cmd.Flags().StringVar(&filters.QueueID, "queue-id", "", "queue id")
	cmd.Flags().StringVar(&filters.ListID, "list-id", "", "list id")
	cmd.Flags().StringVar(&filters.UserID, "user-id", "", "user id")
	cmd.Flags().StringVar(&filters.Status, "status", "", "call status")
	cmd.Flags().StringVar(&filters.PhoneNumber, "phone-number", "", "lead phone number")
	cmd.Flags().StringVar(&filters.CallType, "call-type", "", "call type")
	cmd.Flags().StringVar(&filters.StartTime, "start-time", "", "earliest call time (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&filters.EndTime, "end-time", "", "latest call time (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&filters.Order, "order", "", "sort order (ASC or DESC)")
	cmd.Flags().BoolVar(&recordings, "recordings", false, "include recording urls")

	return cmd
}

// NewStatusesCommand creates the statuses command group.
func NewStatusesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "statuses",
		Aliases: []string{"status"},
		Short:   "Search call statuses",
	}

	cmd.AddCommand(newStatusesSearchCommand())

	return cmd
}

func newStatusesSearchCommand() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Search statuses by code or name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := ParseParams(params)
			if err != nil {
				return err
			}

			search := &convoso.StatusesSearchParams{Extra: extra}
			if len(args) == 1 {
				search.Query = args[0]
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Statuses().Search(cmd.Context(), search)
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching statuses")
			if err != nil {
				return err
			}

			return NewRenderer(cmd.OutOrStdout()).Render(data.Data,
				"status", "name", "final", "reached", "success", "dnc", "callback", "contact")
		},
	}

	addParamFlag(cmd, &params)

	return cmd
}
