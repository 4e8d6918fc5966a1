package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// NewCallbacksCommand creates the callbacks command group.
func NewCallbacksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "callbacks",
		Aliases: []string{"callback", "cb"},
		Short:   "Manage scheduled callbacks",
	}

	cmd.AddCommand(newCallbacksSearchCommand())
	cmd.AddCommand(newCallbacksInsertCommand())
	cmd.AddCommand(newCallbacksDeleteCommand())

	return cmd
}

func newCallbacksSearchCommand() *cobra.Command {
	var (
		search     searchFlags
		campaignID string
		leadID     int
		listID     int
		userID     string
		stage      string
		startDate  string
		endDate    string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search callbacks",
		Long:  "Search callbacks. Pages default to 20 entries and are capped at 5000.",
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

			result, err := client.Callbacks().Search(cmd.Context(), &convoso.CallbackSearchParams{
				CampaignID: campaignID,
				LeadID:     intFlag(cmd, "lead-id", leadID),
				ListID:     intFlag(cmd, "list-id", listID),
				UserID:     userID,
				Stage:      stage,
				StartDate:  startDate,
				EndDate:    endDate,
				Offset:     offset,
				Limit:      limit,
				Extra:      extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching callbacks")
			if err != nil {
				return err
			}

			var entries []convoso.CallbackData
			if data.Data != nil {
				entries = data.Data.Results
			}

			return NewRenderer(cmd.OutOrStdout()).Render(entries,
				"id", "lead_id", "campaign_id", "status", "callback_time", "user", "recipient")
		},
	}

	addSearchFlags(cmd, &search)
	cmd.Flags().StringVar(&campaignID, "campaign-id", "", "campaign id")
	cmd.Flags().IntVar(&leadID, "lead-id", 0, "lead id")
	cmd.Flags().IntVar(&listID, "list-id", 0, "list id")
	cmd.Flags().StringVar(&userID, "user-id", "", "user id")
	cmd.Flags().StringVar(&stage, "stage", "", "callback stage")
	cmd.Flags().StringVar(&startDate, "start-date", "", "callbacks due on or after")
	cmd.Flags().StringVar(&endDate, "end-date", "", "callbacks due on or before")

	return cmd
}

func newCallbacksInsertCommand() *cobra.Command {
	var (
		params    []string
		leadID    string
		recipient string
		timeZone  string
		when      string
		userID    string
		comments  string
	)

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Schedule a callback",
		Example: `  convoso callbacks insert --lead-id 123 --recipient personal \
    --time-zone America/New_York --time "2024-06-01 10:00:00"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := ParseParams(params)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Callbacks().Insert(cmd.Context(), &convoso.CallbackInsertParams{
				LeadID:           leadID,
				Recipient:        recipient,
				CallbackTimeZone: timeZone,
				CallbackTime:     when,
				UserID:           userID,
				Comments:         comments,
				Extra:            extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "inserting callback")
			if err != nil {
				return err
			}

			return NewRenderer(cmd.OutOrStdout()).Render(data.Data, "callback_id")
		},
	}

	addParamFlag(cmd, &params)
	cmd.Flags().StringVar(&leadID, "lead-id", "", "lead to call back")
	cmd.Flags().StringVar(&recipient, "recipient", "", "personal or system")
	cmd.Flags().StringVar(&timeZone, "time-zone", "", "callback time zone")
	cmd.Flags().StringVar(&when, "time", "", "callback time (YYYY-MM-DD HH:MM:SS)")
	cmd.Flags().StringVar(&userID, "user-id", "", "agent for a personal callback")
	cmd.Flags().StringVar(&comments, "comments", "", "comments")
	_ = cmd.MarkFlagRequired("lead-id")
	_ = cmd.MarkFlagRequired("recipient")
	_ = cmd.MarkFlagRequired("time-zone")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func newCallbacksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CALLBACK_ID",
		Short: "Delete a callback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Callbacks().Delete(cmd.Context(), &convoso.CallbackDeleteParams{CallbackID: args[0]})
			if err != nil {
				return err
			}

			_, err = unwrap(result, "deleting callback")
			if err != nil {
				return err
			}

			return printSuccess(cmd, "Callback %s deleted", args[0])
		},
	}
}
