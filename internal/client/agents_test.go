package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

//nolint:funlen
func TestAgentMonitorClient_Search(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []TestEndpointOperation[convoso.AgentMonitorSearchResponse]{
		{
			Name:          "joins id lists",
			ExpectedPath:  "/agent-monitor/search",
			ExpectedQuery: map[string]string{"campaign_id": "102,104", "filter_by_skill_options": "spanish"},
			AbsentQuery:   []string{"queue_id", "user_id"},
			Response: map[string]interface{}{
				"success": true,
				"data": []interface{}{
					map[string]interface{}{"user_id": 7, "username": "jdoe", "status": map[string]interface{}{"status": "READY"}},
				},
				"total": 1,
			},
			Check: func(t *testing.T, result *convoso.Result[convoso.AgentMonitorSearchResponse]) {
				t.Helper()
				require.Len(t, result.Data.Data, 1)
				assert.Equal(t, 7, result.Data.Data[0].UserID)
				require.NotNil(t, result.Data.Data[0].Status)
				assert.Equal(t, "READY", result.Data.Data[0].Status.Status)
			},
		},
		{
			Name:          "forbidden failure",
			ExpectedPath:  "/agent-monitor/search",
			Response:      failureBody(403, "Forbidden"),
			WantFailure:   403,
			WantForbidden: true,
			Check: func(t *testing.T, result *convoso.Result[convoso.AgentMonitorSearchResponse]) {
				t.Helper()
				assert.True(t, result.Failure.Forbidden)
			},
		},
		{
			Name:         "server error",
			ExpectedPath: "/agent-monitor/search",
			StatusCode:   http.StatusInternalServerError,
			Response:     map[string]interface{}{"message": "boom"},
			WantErr:      true,
			ErrMessage:   "searching agent monitor: boom",
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.AgentMonitorSearchResponse], error) {
		return c.AgentMonitor().Search(ctx, &convoso.AgentMonitorSearchParams{
			CampaignIDs:  []int{102, 104},
			SkillOptions: []string{"spanish"},
		})
	})
}

func TestAgentMonitorClient_Logout(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []TestEndpointOperation[convoso.AgentMonitorLogoutResponse]{
		{
			Name:          "logs out users",
			ExpectedPath:  "/agent-monitor/logout",
			ExpectedQuery: map[string]string{"user_id": "1,2", "force": "true"},
			Response: map[string]interface{}{
				"success":          true,
				"count":            2,
				"logged_out_users": []int{1, 2},
			},
			Check: func(t *testing.T, result *convoso.Result[convoso.AgentMonitorLogoutResponse]) {
				t.Helper()
				assert.Equal(t, 2, result.Data.Count)
				assert.Equal(t, []int{1, 2}, result.Data.LoggedOutUsers)
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.AgentMonitorLogoutResponse], error) {
		return c.AgentMonitor().Logout(ctx, &convoso.AgentMonitorLogoutParams{UserIDs: []int{1, 2}, Force: boolPtr(true)})
	})
}

func TestAgentPerformanceClient_Search(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []TestEndpointOperation[convoso.AgentPerformanceSearchResponse]{
		{
			Name:         "date range and status ids",
			ExpectedPath: "/agent-performance/search",
			ExpectedQuery: map[string]string{
				"date_start": "2024-01-01",
				"date_end":   "2024-01-31",
				"status_ids": "SALE,NI",
			},
			AbsentQuery: []string{"list_ids"},
			Response: map[string]interface{}{
				"success": true,
				"data":    []interface{}{map[string]interface{}{"user_id": 3, "total_calls": 41, "revenue": 99.5}},
			},
			Check: func(t *testing.T, result *convoso.Result[convoso.AgentPerformanceSearchResponse]) {
				t.Helper()
				require.Len(t, result.Data.Data, 1)
				assert.Equal(t, 41, result.Data.Data[0].TotalCalls)
				assert.InDelta(t, 99.5, result.Data.Data[0].Revenue, 0.001)
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.AgentPerformanceSearchResponse], error) {
		return c.AgentPerformance().Search(ctx, &convoso.AgentPerformanceSearchParams{
			DateStart: "2024-01-01",
			DateEnd:   "2024-01-31",
			StatusIDs: []string{"SALE", "NI"},
		})
	})
}

//nolint:funlen
func TestAgentProductivityClient_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		params    *convoso.AgentProductivitySearchParams
		wantQuery map[string]string
		absent    []string
	}{
		{
			name:      "clamps offset and limit",
			params:    &convoso.AgentProductivitySearchParams{Offset: intPtr(-10), Limit: intPtr(5000)},
			wantQuery: map[string]string{"offset": "0", "limit": "1000"},
		},
		{
			name:      "leaves missing limit alone",
			params:    &convoso.AgentProductivitySearchParams{AgentEmails: []string{"a@x.io", "b@x.io"}},
			wantQuery: map[string]string{"agent_emails": "a@x.io,b@x.io"},
			absent:    []string{"limit", "offset"},
		},
		{
			name:      "caps offset",
			params:    &convoso.AgentProductivitySearchParams{Offset: intPtr(60000), Limit: intPtr(0)},
			wantQuery: map[string]string{"offset": "50000", "limit": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			RunEndpointTests(t, []TestEndpointOperation[convoso.AgentProductivitySearchResponse]{
				{
					Name:          tt.name,
					ExpectedPath:  "/agent-productivity/search",
					ExpectedQuery: tt.wantQuery,
					AbsentQuery:   tt.absent,
					Response:      map[string]interface{}{"success": true, "data": []interface{}{}},
				},
			}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.AgentProductivitySearchResponse], error) {
				return c.AgentProductivity().Search(ctx, tt.params)
			})
		})
	}
}

func TestUserActivityClient_Search(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []TestEndpointOperation[convoso.UserActivitySearchResponse]{
		{
			Name:          "counts agents",
			ExpectedPath:  "/user-activity/search",
			ExpectedQuery: map[string]string{"queue_id": "9"},
			Response: map[string]interface{}{
				"success": true,
				"data":    map[string]interface{}{"available_agents": 4, "logged_in_agents": 10},
			},
			Check: func(t *testing.T, result *convoso.Result[convoso.UserActivitySearchResponse]) {
				t.Helper()
				assert.Equal(t, 4, result.Data.Data.AvailableAgents)
				assert.Equal(t, 10, result.Data.Data.LoggedInAgents)
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.UserActivitySearchResponse], error) {
		return c.UserActivity().Search(ctx, &convoso.UserActivitySearchParams{QueueIDs: []int{9}})
	})
}

//nolint:funlen
func TestUsersClient(t *testing.T) {
	t.Parallel()

	t.Run("GetRecordings", func(t *testing.T) {
		t.Parallel()

		RunEndpointTests(t, []TestEndpointOperation[convoso.RecordingsResponse]{
			{
				Name:          "paginates recordings",
				ExpectedPath:  "/users/recordings",
				ExpectedQuery: map[string]string{"user": "agent@example.com", "limit": "1000"},
				Response: map[string]interface{}{
					"success": true,
					"data": map[string]interface{}{
						"offset": 0, "limit": 1000, "total": 1,
						"entries": []interface{}{
							map[string]interface{}{"recording_id": 55, "lead_id": 9, "seconds": nil, "url": "https://rec/55"},
						},
					},
				},
				Check: func(t *testing.T, result *convoso.Result[convoso.RecordingsResponse]) {
					t.Helper()
					require.NotNil(t, result.Data.Data)
					require.Len(t, result.Data.Data.Entries, 1)
					assert.Equal(t, 55, result.Data.Data.Entries[0].RecordingID)
					assert.Nil(t, result.Data.Data.Entries[0].Seconds)
				},
			},
			{
				Name:         "missing users",
				ExpectedPath: "/users/recordings",
				Response:     failureBody(6005, "Missing users"),
				WantFailure:  6005,
				Check: func(t *testing.T, result *convoso.Result[convoso.RecordingsResponse]) {
					t.Helper()
					assert.True(t, convoso.UsersRecordingsErrors.Contains(result.Failure))
				},
			},
		}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.RecordingsResponse], error) {
			return c.Users().GetRecordings(ctx, &convoso.UsersRecordingsParams{
				User:  "agent@example.com",
				Limit: intPtr(4000),
			})
		})
	})

	t.Run("Search", func(t *testing.T) {
		t.Parallel()

		RunEndpointTests(t, []TestEndpointOperation[convoso.UsersSearchResponse]{
			{
				Name:          "string code failure",
				ExpectedPath:  "/users/search",
				ExpectedQuery: map[string]string{"offset": "0"},
				Response:      map[string]interface{}{"success": false, "code": "7231", "text": "Invalid offset value"},
				WantFailure:   7231,
			},
		}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.UsersSearchResponse], error) {
			return c.Users().Search(ctx, &convoso.UsersSearchParams{User: "a", Offset: intPtr(-1)})
		})
	})
}
