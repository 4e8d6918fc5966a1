package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/convoso-client/internal/constants"
	"github.com/fivetwenty-io/convoso-client/internal/publish"
	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

var agentMonitorColumns = []string{
	"user_id", "username", "campaign_name", "queue_name", "status.status", "status.duration", "current_call.phone_number",
}

// agentFilterFlags are the campaign, queue, user and skill filters shared by
// the live agent commands.
type agentFilterFlags struct {
	campaignIDs  []int
	queueIDs     []int
	userIDs      []int
	skillOptions []string
}

func addAgentFilterFlags(cmd *cobra.Command, f *agentFilterFlags, withSkills bool) {
	cmd.Flags().IntSliceVar(&f.campaignIDs, "campaign-id", nil, "campaign ids (comma-separated)")
	cmd.Flags().IntSliceVar(&f.queueIDs, "queue-id", nil, "queue ids (comma-separated)")
	cmd.Flags().IntSliceVar(&f.userIDs, "user-id", nil, "user ids (comma-separated)")

	if withSkills {
		cmd.Flags().StringSliceVar(&f.skillOptions, "skill", nil, "skill options (comma-separated)")
	}
}

// NewAgentMonitorCommand creates the agent monitor command group.
func NewAgentMonitorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agent-monitor",
		Aliases: []string{"agents", "am"},
		Short:   "Watch and control live agent sessions",
	}

	cmd.AddCommand(newAgentMonitorSearchCommand())
	cmd.AddCommand(newAgentMonitorLogoutCommand())
	cmd.AddCommand(newAgentMonitorWatchCommand())

	return cmd
}

func newAgentMonitorSearchCommand() *cobra.Command {
	var (
		filters agentFilterFlags
		params  []string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "List logged in agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			search, err := agentMonitorParams(&filters, params)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.AgentMonitor().Search(cmd.Context(), search)
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching agent monitor")
			if err != nil {
				return err
			}

			return NewRenderer(cmd.OutOrStdout()).Render(data.Data, agentMonitorColumns...)
		},
	}

	addAgentFilterFlags(cmd, &filters, true)
	addParamFlag(cmd, &params)

	return cmd
}

func agentMonitorParams(filters *agentFilterFlags, params []string) (*convoso.AgentMonitorSearchParams, error) {
	extra, err := ParseParams(params)
	if err != nil {
		return nil, err
	}

	return &convoso.AgentMonitorSearchParams{
		CampaignIDs:  filters.campaignIDs,
		QueueIDs:     filters.queueIDs,
		UserIDs:      filters.userIDs,
		SkillOptions: filters.skillOptions,
		Extra:        extra,
	}, nil
}

func newAgentMonitorLogoutCommand() *cobra.Command {
	var (
		filters agentFilterFlags
		params  []string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Log agents out",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := ParseParams(params)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.AgentMonitor().Logout(cmd.Context(), &convoso.AgentMonitorLogoutParams{
				UserIDs:     filters.userIDs,
				CampaignIDs: filters.campaignIDs,
				QueueIDs:    filters.queueIDs,
				Force:       boolFlag(cmd, "force", force),
				Extra:       extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "logging out agents")
			if err != nil {
				return err
			}

			return printSuccess(cmd, "%d agent(s) logged out", data.Count)
		},
	}

	addAgentFilterFlags(cmd, &filters, false)
	addParamFlag(cmd, &params)
	cmd.Flags().BoolVar(&force, "force", false, "disconnect active calls")

	return cmd
}

func newAgentMonitorWatchCommand() *cobra.Command {
	var (
		filters  agentFilterFlags
		params   []string
		interval time.Duration
		count    int
		natsURL  string
		subject  string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll the agent monitor and publish snapshots",
		Long: `Poll the agent monitor every --interval and publish each snapshot. With
--nats-url snapshots are published as JSON on --subject, otherwise they are
written to stdout as JSON lines. Stops on Ctrl-C or after --count snapshots.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interval < constants.MinPollInterval {
				return fmt.Errorf("%w: %s", constants.ErrInvalidInterval, interval)
			}

			search, err := agentMonitorParams(&filters, params)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			publisher, err := newSnapshotPublisher(cmd, natsURL, subject)
			if err != nil {
				return err
			}

			defer func() { _ = publisher.Close() }()

			watcher := &publish.Watcher{
				Monitor:   client.AgentMonitor(),
				Params:    search,
				Publisher: publisher,
				Interval:  interval,
				Count:     count,
				Logger:    NewLogger(cmd.ErrOrStderr(), logLevel()),
			}

			return watcher.Run(cmd.Context())
		},
	}

	addAgentFilterFlags(cmd, &filters, true)
	addParamFlag(cmd, &params)
	cmd.Flags().DurationVar(&interval, "interval", constants.DefaultPollInterval, "poll interval")
	cmd.Flags().IntVar(&count, "count", 0, "stop after this many snapshots (0 runs until interrupted)")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server to publish snapshots to")
	cmd.Flags().StringVar(&subject, "subject", publish.DefaultSubject, "NATS subject")

	return cmd
}

func newSnapshotPublisher(cmd *cobra.Command, natsURL, subject string) (publish.Publisher, error) {
	if natsURL == "" {
		return publish.NewWriterPublisher(cmd.OutOrStdout()), nil
	}

	publisher, err := publish.NewNATSPublisher(&publish.NATSConfig{
		URL:     natsURL,
		Subject: subject,
		Name:    "convoso agent-monitor watch",
		Timeout: constants.ShortHTTPTimeout,
	})
	if err != nil {
		return nil, err
	}

	return publisher, nil
}

// NewAgentPerformanceCommand creates the agent performance command group.
func NewAgentPerformanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent-performance",
		Short: "Read agent performance reports",
	}

	cmd.AddCommand(newAgentPerformanceSearchCommand())

	return cmd
}

func newAgentPerformanceSearchCommand() *cobra.Command {
	var (
		params    []string
		dateStart string
		dateEnd   string
		campaigns []int
		lists     []int
		queues    []int
		users     []int
		statuses  []string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search agent performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := ParseParams(params)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.AgentPerformance().Search(cmd.Context(), &convoso.AgentPerformanceSearchParams{
				DateStart:   dateStart,
				DateEnd:     dateEnd,
				CampaignIDs: campaigns,
				ListIDs:     lists,
				QueueIDs:    queues,
				UserIDs:     users,
				StatusIDs:   statuses,
				Extra:       extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching agent performance")
			if err != nil {
				return err
			}

			return NewRenderer(cmd.OutOrStdout()).Render(data.Data,
				"user_id", "username", "campaign_name", "total_calls", "talk_time", "sales", "conversion_rate")
		},
	}

	addParamFlag(cmd, &params)
	cmd.Flags().StringVar(&dateStart, "date-start", "", "report start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateEnd, "date-end", "", "report end (YYYY-MM-DD)")
	cmd.Flags().IntSliceVar(&campaigns, "campaign-id", nil, "campaign ids (comma-separated)")
	cmd.Flags().IntSliceVar(&lists, "list-id", nil, "list ids (comma-separated)")
	cmd.Flags().IntSliceVar(&queues, "queue-id", nil, "queue ids (comma-separated)")
	cmd.Flags().IntSliceVar(&users, "user-id", nil, "user ids (comma-separated)")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "status ids (comma-separated)")

	return cmd
}

// NewAgentProductivityCommand creates the agent productivity command group.
func NewAgentProductivityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent-productivity",
		Short: "Read agent productivity reports",
	}

	cmd.AddCommand(newAgentProductivitySearchCommand())

	return cmd
}

func newAgentProductivitySearchCommand() *cobra.Command {
	var (
		search     searchFlags
		dateStart  string
		dateEnd    string
		emails     []string
		campaignID int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search agent productivity",
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

			result, err := client.AgentProductivity().Search(cmd.Context(), &convoso.AgentProductivitySearchParams{
				DateStart:   dateStart,
				DateEnd:     dateEnd,
				AgentEmails: emails,
				CampaignID:  intFlag(cmd, "campaign-id", campaignID),
				Offset:      offset,
				Limit:       limit,
				Extra:       extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching agent productivity")
			if err != nil {
				return err
			}

			return NewRenderer(cmd.OutOrStdout()).Render(data.Data,
				"user_id", "email", "campaign_name", "date", "login_time", "on_call_time", "wrap_up_time")
		},
	}

	addSearchFlags(cmd, &search)
	cmd.Flags().StringVar(&dateStart, "date-start", "", "report start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateEnd, "date-end", "", "report end (YYYY-MM-DD)")
	cmd.Flags().StringSliceVar(&emails, "email", nil, "agent emails (comma-separated)")
	cmd.Flags().IntVar(&campaignID, "campaign-id", 0, "campaign id")

	return cmd
}

// NewUserActivityCommand creates the user activity command group.
func NewUserActivityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user-activity",
		Short: "Read agent availability counters",
	}

	var (
		filters agentFilterFlags
		params  []string
	)

	search := &cobra.Command{
		Use:   "search",
		Short: "Count available and logged in agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			extra, err := ParseParams(params)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.UserActivity().Search(cmd.Context(), &convoso.UserActivitySearchParams{
				CampaignIDs:  filters.campaignIDs,
				QueueIDs:     filters.queueIDs,
				UserIDs:      filters.userIDs,
				SkillOptions: filters.skillOptions,
				Extra:        extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching user activity")
			if err != nil {
				return err
			}

			return NewRenderer(cmd.OutOrStdout()).Render(data.Data, "available_agents", "logged_in_agents")
		},
	}

	addAgentFilterFlags(search, &filters, true)
	addParamFlag(search, &params)
	cmd.AddCommand(search)

	return cmd
}

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Read users and their recordings",
	}

	cmd.AddCommand(newUsersSearchCommand())
	cmd.AddCommand(newUsersRecordingsCommand())

	return cmd
}

func newUsersSearchCommand() *cobra.Command {
	var (
		search searchFlags
		user   string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search users",
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

			result, err := client.Users().Search(cmd.Context(), &convoso.UsersSearchParams{
				User:   user,
				Offset: offset,
				Limit:  limit,
				Extra:  extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "searching users")
			if err != nil {
				return err
			}

			var users map[string]convoso.UserData
			if data.Data != nil {
				users = data.Data.Results
			}

			return NewRenderer(cmd.OutOrStdout()).Render(users, "id", "email", "first_name", "last_name", "user_level")
		},
	}

	addSearchFlags(cmd, &search)
	cmd.Flags().StringVar(&user, "user", "", "user email or comma-separated emails")

	return cmd
}

func newUsersRecordingsCommand() *cobra.Command {
	var (
		search    searchFlags
		startTime string
		endTime   string
	)

	cmd := &cobra.Command{
		Use:   "recordings USER",
		Short: "List the recordings of a user",
		Args:  cobra.ExactArgs(1),
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

			result, err := client.Users().GetRecordings(cmd.Context(), &convoso.UsersRecordingsParams{
				User:      args[0],
				StartTime: startTime,
				EndTime:   endTime,
				Offset:    offset,
				Limit:     limit,
				Extra:     extra,
			})
			if err != nil {
				return err
			}

			data, err := unwrap(result, "listing user recordings")
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
