package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

var leadColumns = []string{"id", "list_id", "phone_number", "first_name", "last_name", "status", "created_at"}

// NewLeadsCommand creates the leads command group.
func NewLeadsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leads",
		Aliases: []string{"lead"},
		Short:   "Manage leads",
		Long:    "Search, insert, update and delete leads and list their recordings",
	}

	cmd.AddCommand(newLeadsSearchCommand())
	cmd.AddCommand(newLeadsInsertCommand())
	cmd.AddCommand(newLeadsUpdateCommand())
	cmd.AddCommand(newLeadsDeleteCommand())
	cmd.AddCommand(newLeadsRecordingsCommand())

	return cmd
}

// leadFieldFlags are the contact fields settable from the command line.
type leadFieldFlags struct {
	firstName string
	lastName  string
	email     string
	status    string
	phoneCode string
	city      string
	state     string
	notes     string
}

func addLeadFieldFlags(cmd *cobra.Command, f *leadFieldFlags) {
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.status, "status", "", "lead status abbreviation")
	cmd.Flags().StringVar(&f.phoneCode, "phone-code", "", "country phone code")
	cmd.Flags().StringVar(&f.city, "city", "", "city")
	cmd.Flags().StringVar(&f.state, "state", "", "state")
	cmd.Flags().StringVar(&f.notes, "notes", "", "notes")
}

func (f *leadFieldFlags) fields() convoso.LeadFields {
	return convoso.LeadFields{
		FirstName: f.firstName,
		LastName:  f.lastName,
		Email:     f.email,
		Status:    f.status,
		PhoneCode: f.phoneCode,
		City:      f.city,
		State:     f.state,
		Notes:     f.notes,
	}
}

func newLeadsSearchCommand() *cobra.Command {
	var (
		search      searchFlags
		fields      leadFieldFlags
		leadID      int
		listID      int
		userID      string
		phoneNumber string
		createdFrom string
		createdTo   string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search leads",
		Long:  "Search leads. The page size is capped at 2000.",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := ParseParams(search.params)
			if err != nil {
				return err
			}

			offset, limit := search.pagination(cmd)
			params := &convoso.LeadsSearchParams{
				LeadID:             intFlag(cmd, "lead-id", leadID),
				ListID:             intFlag(cmd, "list-id", listID),
				UserID:             userID,
				PhoneNumber:        phoneNumber,
				LeadFields:         fields.fields(),
				CreatedAtStartDate: createdFrom,
				CreatedAtEndDate:   createdTo,
				Offset:             offset,
				Limit:              limit,
				Extra:              extra,
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Leads().Search(cmd.Context(), params)
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching leads")
			if err != nil {
				return err
			}

			var entries []convoso.LeadData
			if data.Data != nil {
				entries = data.Data.Entries
			}

			return NewRenderer(cmd.OutOrStdout()).Render(entries, leadColumns...)
		},
	}

	addSearchFlags(cmd, &search)
	addLeadFieldFlags(cmd, &fields)
	cmd.Flags().IntVar(&leadID, "lead-id", 0, "lead id")
	cmd.Flags().IntVar(&listID, "list-id", 0, "list id")
	cmd.Flags().StringVar(&userID, "user-id", "", "owning user id")
	cmd.Flags().StringVar(&phoneNumber, "phone-number", "", "phone number")
	cmd.Flags().StringVar(&createdFrom, "created-from", "", "created on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&createdTo, "created-to", "", "created on or before (YYYY-MM-DD)")

	return cmd
}

func newLeadsInsertCommand() *cobra.Command {
	var (
		fields      leadFieldFlags
		params      []string
		listID      int
		phoneNumber string
		checkDup    int
		checkDNC    bool
		hopper      bool
		updateFound bool
	)

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "Insert a lead",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := ParseParams(params)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Leads().Insert(cmd.Context(), &convoso.LeadsInsertParams{
				ListID:        listID,
				PhoneNumber:   phoneNumber,
				LeadFields:    fields.fields(),
				CheckDup:      intFlag(cmd, "check-dup", checkDup),
				CheckDNC:      boolFlag(cmd, "check-dnc", checkDNC),
				Hopper:        boolFlag(cmd, "hopper", hopper),
				UpdateIfFound: boolFlag(cmd, "update-if-found", updateFound),
				Extra:         extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "inserting lead")
			if err != nil {
				return err
			}

			return NewRenderer(cmd.OutOrStdout()).Render(data.Data, "lead_id")
		},
	}

	addLeadFieldFlags(cmd, &fields)
	addParamFlag(cmd, &params)
	cmd.Flags().IntVar(&listID, "list-id", 0, "list to insert into")
	cmd.Flags().StringVar(&phoneNumber, "phone-number", "", "phone number")
	cmd.Flags().IntVar(&checkDup, "check-dup", 0, "duplicate check (0 none, 1 list, 2 campaign, 3 system)")
	cmd.Flags().BoolVar(&checkDNC, "check-dnc", false, "reject numbers on the DNC list")
	cmd.Flags().BoolVar(&hopper, "hopper", false, "add the lead to the hopper")
	cmd.Flags().BoolVar(&updateFound, "update-if-found", false, "update an existing lead instead of failing")
	_ = cmd.MarkFlagRequired("list-id")
	_ = cmd.MarkFlagRequired("phone-number")

	return cmd
}

func newLeadsUpdateCommand() *cobra.Command {
	var (
		fields      leadFieldFlags
		params      []string
		listID      int
		phoneNumber string
	)

	cmd := &cobra.Command{
		Use:   "update LEAD_ID",
		Short: "Update a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leadID, err := parseID(args[0], "lead id")
			if err != nil {
				return err
			}

			extra, err := ParseParams(params)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Leads().Update(cmd.Context(), &convoso.LeadsUpdateParams{
				LeadID:      leadID,
				ListID:      intFlag(cmd, "list-id", listID),
				PhoneNumber: phoneNumber,
				LeadFields:  fields.fields(),
				Extra:       extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "updating lead")
			if err != nil {
				return err
			}

			return NewRenderer(cmd.OutOrStdout()).Render(data.Data, "lead_id")
		},
	}

	addLeadFieldFlags(cmd, &fields)
	addParamFlag(cmd, &params)
	cmd.Flags().IntVar(&listID, "list-id", 0, "move the lead to this list")
	cmd.Flags().StringVar(&phoneNumber, "phone-number", "", "phone number")

	return cmd
}

func newLeadsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete LEAD_ID",
		Short: "Delete a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leadID, err := parseID(args[0], "lead id")
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Leads().Delete(cmd.Context(), &convoso.LeadsDeleteParams{LeadID: leadID})
			if err != nil {
				return err
			}

			_, err = unwrap(result, "deleting lead")
			if err != nil {
				return err
			}

			return printSuccess(cmd, "Lead %d deleted", leadID)
		},
	}
}

func newLeadsRecordingsCommand() *cobra.Command {
	var (
		search    searchFlags
		startTime string
		endTime   string
	)

	cmd := &cobra.Command{
		Use:   "recordings LEAD_ID",
		Short: "List the recordings of a lead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leadID, err := parseID(args[0], "lead id")
			if err != nil {
				return err
			}

			extra, err := ParseParams(search.params)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			offset, limit := search.pagination(cmd)

			result, err := client.Leads().GetRecordings(cmd.Context(), &convoso.LeadRecordingsParams{
				LeadID:    leadID,
				StartTime: startTime,
				EndTime:   endTime,
				Offset:    offset,
				Limit:     limit,
				Extra:     extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "listing lead recordings")
			if err != nil {
				return err
			}

			return renderRecordings(cmd, data)
		},
	}

	addSearchFlags(cmd, &search)
	cmd.Flags().StringVar(&startTime, "start-time", "", "recordings started at or after")
	cmd.Flags().StringVar(&endTime, "end-time", "", "recordings started at or before")

	return cmd
}

func renderRecordings(cmd *cobra.Command, data *convoso.RecordingsResponse) error {
	var entries []convoso.Recording
	if data.Data != nil {
		entries = data.Data.Entries
	}

	return NewRenderer(cmd.OutOrStdout()).Render(entries, "recording_id", "lead_id", "start_time", "seconds", "url")
}

// NewListsCommand creates the lists command group.
func NewListsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "lists",
		Aliases: []string{"list"},
		Short:   "Manage lead lists",
	}

	cmd.AddCommand(newListsSearchCommand())

	return cmd
}

func newListsSearchCommand() *cobra.Command {
	var (
		params     []string
		status     string
		id         string
		campaignID string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search lists",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := ParseParams(params)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Lists().Search(cmd.Context(), &convoso.ListsSearchParams{
				Status:     status,
				ID:         id,
				CampaignID: campaignID,
				Extra:      extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching lists")
			if err != nil {
				return err
			}

			return NewRenderer(cmd.OutOrStdout()).Render(data.Data, "id", "campaign_id", "status", "last_called_at.date")
		},
	}

	addParamFlag(cmd, &params)
	cmd.Flags().StringVar(&status, "status", "", "list status")
	cmd.Flags().StringVar(&id, "id", "", "list id")
	cmd.Flags().StringVar(&campaignID, "campaign-id", "", "campaign id")

	return cmd
}
