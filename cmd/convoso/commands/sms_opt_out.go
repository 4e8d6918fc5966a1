package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// NewSMSOptOutCommand creates the SMS opt-out command group.
func NewSMSOptOutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sms-opt-out",
		Aliases: []string{"sms"},
		Short:   "Manage the SMS opt-out list",
	}

	cmd.AddCommand(newSMSOptOutSearchCommand())
	cmd.AddCommand(newSMSOptOutInsertCommand())

	return cmd
}

func newSMSOptOutSearchCommand() *cobra.Command {
	var (
		search      searchFlags
		campaignID  int
		phoneNumber string
		phoneCode   string
		reason      string
		purpose     string
		insertDate  string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search SMS opt-out entries",
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

			result, err := client.SMSOptOut().Search(cmd.Context(), &convoso.SMSOptOutSearchParams{
				CampaignID:  intFlag(cmd, "campaign-id", campaignID),
				PhoneNumber: phoneNumber,
				PhoneCode:   phoneCode,
				Reason:      reason,
				Purpose:     purpose,
				InsertDate:  insertDate,
				Offset:      offset,
				Limit:       limit,
				Extra:       extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching SMS opt-outs")
			if err != nil {
				return err
			}

			var entries []convoso.SMSOptOutData
			if data.Data != nil {
				entries = data.Data.Entries
			}

			return NewRenderer(cmd.OutOrStdout()).Render(entries,
				"id", "phone_number", "campaign_id", "reason", "Purpose", "insert_date")
		},
	}

	addSearchFlags(cmd, &search)
	cmd.Flags().IntVar(&campaignID, "campaign-id", 0, "campaign id")
	cmd.Flags().StringVar(&phoneNumber, "phone-number", "", "phone number")
	cmd.Flags().StringVar(&phoneCode, "phone-code", "", "country phone code")
	cmd.Flags().StringVar(&reason, "reason", "", "opt-out reason")
	cmd.Flags().StringVar(&purpose, "purpose", "", "opt-out purpose")
	cmd.Flags().StringVar(&insertDate, "insert-date", "", "insert date (YYYY-MM-DD)")

	return cmd
}

func newSMSOptOutInsertCommand() *cobra.Command {
	var (
		params []string
		entry  convoso.SMSOptOutInsertParams
	)

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Opt a number out of SMS",
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

			result, err := client.SMSOptOut().Insert(cmd.Context(), &entry)
			if err != nil {
				return err
			}

			_, err = unwrap(result, "inserting SMS opt-out")
			if err != nil {
				return err
			}

			return printSuccess(cmd, "%s opted out of SMS", entry.PhoneNumber)
		},
	}

	addParamFlag(cmd, &params)
	cmd.Flags().StringVar(&entry.PhoneNumber, "phone-number", "", "phone number")
	cmd.Flags().StringVar(&entry.PhoneCode, "phone-code", "1", "country phone code")
	cmd.Flags().StringVar(&entry.CampaignID, "campaign-id", "0", "campaign id")
	cmd.Flags().StringVar(&entry.Reason, "reason", "", "opt-out reason")
	cmd.Flags().StringVar(&entry.Purpose, "purpose", "", "opt-out purpose")
	_ = cmd.MarkFlagRequired("phone-number")

	return cmd
}
