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
func TestCallLogsClient(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []TestEndpointOperation[convoso.CallLogsSearchResponse]{
		{
			Name:         "passes limit through unclamped",
			ExpectedPath: "/log/retrieve",
			ExpectedQuery: map[string]string{
				"call_type":          convoso.CallTypeOutbound,
				"limit":              "5000",
				"order":              convoso.OrderDesc,
				"include_recordings": "1",
			},
			AbsentQuery: []string{"offset", "lead_id"},
			Response: map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"offset": 0, "limit": 5000, "total_found": 1, "entries": 1,
					"results": []interface{}{map[string]interface{}{"id": "77", "status": "SALE"}},
				},
			},
			Check: func(t *testing.T, result *convoso.Result[convoso.CallLogsSearchResponse]) {
				t.Helper()
				require.NotNil(t, result.Data.Data)
				assert.Equal(t, 1, result.Data.Data.TotalFound)
				require.Len(t, result.Data.Data.Results, 1)
				assert.Equal(t, "SALE", result.Data.Data.Results[0].Status)
			},
		},
		{
			Name:         "invalid JSON",
			ExpectedPath: "/log/retrieve",
			Response:     "not an object",
			WantErr:      true,
			ErrMessage:   "parsing call log retrieve response",
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.CallLogsSearchResponse], error) {
		return c.CallLogs().Search(ctx, &convoso.CallLogsSearchParams{
			CallType:          convoso.CallTypeOutbound,
			Limit:             intPtr(5000),
			Order:             convoso.OrderDesc,
			IncludeRecordings: true,
		})
	})

	RunEndpointTests(t, []TestEndpointOperation[convoso.CallLogsUpdateResponse]{
		{
			Name:          "updates call log",
			ExpectedPath:  "/log/update",
			ExpectedQuery: map[string]string{"call_log_id": "77", "agent_comment": "follow up"},
			AbsentQuery:   []string{"status"},
			Response:      map[string]interface{}{"success": true, "data": map[string]interface{}{"call_log_id": "77"}},
			Check: func(t *testing.T, result *convoso.Result[convoso.CallLogsUpdateResponse]) {
				t.Helper()
				assert.Equal(t, "77", result.Data.Data.CallLogID)
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.CallLogsUpdateResponse], error) {
		return c.CallLogs().Update(ctx, &convoso.CallLogsUpdateParams{CallLogID: "77", AgentComment: "follow up"})
	})
}

//nolint:funlen
func TestCallbacksClient(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []TestEndpointOperation[convoso.CallbackInsertResponse]{
		{
			Name:         "schedules callback",
			ExpectedPath: "/callbacks/insert",
			ExpectedQuery: map[string]string{
				"lead_id":            "10",
				"recipient":          convoso.RecipientSystem,
				"callback_time_zone": "-5",
				"callback_time":      "2024-06-01 09:00:00",
			},
			Response: map[string]interface{}{"success": true, "data": map[string]interface{}{"callback_id": "300"}},
			Check: func(t *testing.T, result *convoso.Result[convoso.CallbackInsertResponse]) {
				t.Helper()
				require.NotNil(t, result.Data.Data)
				assert.Equal(t, "300", result.Data.Data.CallbackID)
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.CallbackInsertResponse], error) {
		return c.Callbacks().Insert(ctx, &convoso.CallbackInsertParams{
			LeadID:           "10",
			Recipient:        convoso.RecipientSystem,
			CallbackTimeZone: "-5",
			CallbackTime:     "2024-06-01 09:00:00",
		})
	})

	RunEndpointTests(t, []TestEndpointOperation[convoso.CallbackUpdateResponse]{
		{
			Name:          "reschedules callback",
			ExpectedPath:  "/callbacks/update",
			ExpectedQuery: map[string]string{"callback_id": "300", "comments": "moved"},
			AbsentQuery:   []string{"recipient"},
			Response:      map[string]interface{}{"success": true},
			Check: func(t *testing.T, result *convoso.Result[convoso.CallbackUpdateResponse]) {
				t.Helper()
				assert.Nil(t, result.Data.Data)
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.CallbackUpdateResponse], error) {
		return c.Callbacks().Update(ctx, &convoso.CallbackUpdateParams{CallbackID: "300", Comments: "moved"})
	})

	RunEndpointTests(t, []TestEndpointOperation[convoso.CallbackDeleteResponse]{
		{
			Name:          "deletes callback",
			ExpectedPath:  "/callbacks/delete",
			ExpectedQuery: map[string]string{"callback_id": "300"},
			Response:      map[string]interface{}{"success": true},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.CallbackDeleteResponse], error) {
		return c.Callbacks().Delete(ctx, &convoso.CallbackDeleteParams{CallbackID: "300"})
	})

	RunEndpointTests(t, []TestEndpointOperation[convoso.CallbackSearchResponse]{
		{
			Name:          "clamps to the callback ceiling",
			ExpectedPath:  "/callbacks/search",
			ExpectedQuery: map[string]string{"stage": convoso.StagePending, "limit": "5000"},
			Response: map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"total":   1,
					"results": []interface{}{map[string]interface{}{"id": "300", "class": "system"}},
				},
			},
			Check: func(t *testing.T, result *convoso.Result[convoso.CallbackSearchResponse]) {
				t.Helper()
				require.NotNil(t, result.Data.Data)
				require.Len(t, result.Data.Data.Results, 1)
				assert.Equal(t, "system", result.Data.Data.Results[0].Class)
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.CallbackSearchResponse], error) {
		return c.Callbacks().Search(ctx, &convoso.CallbackSearchParams{Stage: convoso.StagePending, Limit: intPtr(9999)})
	})
}

//nolint:funlen
func TestCampaignsClient(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []TestEndpointOperation[convoso.CampaignStatusResponse]{
		{
			Name:          "activates campaign",
			ExpectedPath:  "/campaigns/status",
			ExpectedQuery: map[string]string{"campaign_id": "12", "status": "1"},
			Response:      map[string]interface{}{"success": true},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.CampaignStatusResponse], error) {
		return c.Campaigns().Status(ctx, &convoso.CampaignStatusParams{CampaignID: "12", Status: convoso.CampaignActivate})
	})

	RunEndpointTests(t, []TestEndpointOperation[convoso.CampaignSearchResponse]{
		{
			Name:         "lists campaigns",
			ExpectedPath: "/campaigns/search",
			Response: map[string]interface{}{
				"success": true,
				"data": []interface{}{
					map[string]interface{}{
						"id": 12, "name": "Spring", "status": "Y",
						"last_call_date": map[string]interface{}{"date": "2024-05-01 10:00:00.000000", "timezone_type": 3, "timezone": "UTC"},
					},
				},
			},
			Check: func(t *testing.T, result *convoso.Result[convoso.CampaignSearchResponse]) {
				t.Helper()
				require.Len(t, result.Data.Data, 1)
				assert.Equal(t, convoso.Yes, result.Data.Data[0].Status)
				require.NotNil(t, result.Data.Data[0].LastCallDate)
				assert.Equal(t, "UTC", result.Data.Data[0].LastCallDate.Timezone)
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.CampaignSearchResponse], error) {
		return c.Campaigns().Search(ctx)
	})

	legacy := []struct {
		name     string
		path     string
		call     func(context.Context, *Client) (map[string]interface{}, error)
		wantBody map[string]interface{}
	}{
		{
			name: "list",
			path: "/campaigns/list",
			call: func(ctx context.Context, c *Client) (map[string]interface{}, error) {
				return c.Campaigns().List(ctx, map[string]interface{}{"status": "active"})
			},
			wantBody: map[string]interface{}{"status": "active"},
		},
		{
			name: "get",
			path: "/campaigns/get",
			call: func(ctx context.Context, c *Client) (map[string]interface{}, error) {
				return c.Campaigns().Get(ctx, "12")
			},
			wantBody: map[string]interface{}{"campaign_id": "12"},
		},
		{
			name: "create",
			path: "/campaigns",
			call: func(ctx context.Context, c *Client) (map[string]interface{}, error) {
				return c.Campaigns().Create(ctx, map[string]interface{}{"name": "Summer"})
			},
			wantBody: map[string]interface{}{"name": "Summer"},
		},
		{
			name: "update",
			path: "/campaigns/update",
			call: func(ctx context.Context, c *Client) (map[string]interface{}, error) {
				return c.Campaigns().Update(ctx, map[string]interface{}{"campaign_id": "12", "name": "Fall"})
			},
			wantBody: map[string]interface{}{"campaign_id": "12", "name": "Fall"},
		},
	}

	for _, tt := range legacy {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got map[string]interface{}

			server := newPostServer(t, tt.path, &got, http.StatusOK, `{"success":true}`)
			defer server.Close()

			out, err := tt.call(context.Background(), NewTestClient(server.URL))
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, got)
			assert.Equal(t, true, out["success"])
		})
	}
}

func TestRevenueClient_Update(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []TestEndpointOperation[convoso.RevenueUpdateResponse]{
		{
			Name:          "sends floats",
			ExpectedPath:  "/revenue/update",
			ExpectedQuery: map[string]string{"call_log_id": "77", "revenue": "125.5"},
			AbsentQuery:   []string{"return"},
			Response:      map[string]interface{}{"success": true, "data": map[string]interface{}{"call_log_id": "77"}},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.RevenueUpdateResponse], error) {
		return c.Revenue().Update(ctx, &convoso.RevenueUpdateParams{CallLogID: "77", Revenue: floatPtr(125.5)})
	})
}

//nolint:funlen
func TestStatusesClient(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []TestEndpointOperation[convoso.StatusesInsertResponse]{
		{
			Name:         "strips the hex color prefix",
			ExpectedPath: "/statuses/insert",
			ExpectedQuery: map[string]string{
				"status":    "HOT",
				"hex_color": "6711d1",
				"final":     "N",
				"dnc":       "N",
				"success":   "Y",
			},
			Response: map[string]interface{}{
				"success": true,
				"code":    200,
				"data":    map[string]interface{}{"new": "HOT", "status": "Hot lead"},
			},
			Check: func(t *testing.T, result *convoso.Result[convoso.StatusesInsertResponse]) {
				t.Helper()
				assert.Equal(t, "HOT", result.Data.Data.New)
			},
		},
		{
			Name:         "invalid hex color",
			ExpectedPath: "/statuses/insert",
			Response:     failureBody(6078, "HEX color defined is invalid"),
			WantFailure:  6078,
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.StatusesInsertResponse], error) {
		return c.Statuses().Insert(ctx, &convoso.StatusesInsertParams{
			Status:    "HOT",
			Name:      "Hot lead",
			HexColor:  "#6711d1",
			Final:     convoso.No,
			Reached:   convoso.Yes,
			Success:   convoso.Yes,
			DNC:       convoso.No,
			Callback:  convoso.No,
			Contact:   convoso.Yes,
			Voicemail: convoso.No,
		})
	})

	RunEndpointTests(t, []TestEndpointOperation[convoso.StatusesUpdateResponse]{
		{
			Name:          "omits unset flags",
			ExpectedPath:  "/statuses/update",
			ExpectedQuery: map[string]string{"status": "HOT", "reached": "N"},
			AbsentQuery:   []string{"final", "dnc", "hex_color", "name"},
			Response:      map[string]interface{}{"success": true, "data": map[string]interface{}{"status": "HOT"}},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.StatusesUpdateResponse], error) {
		return c.Statuses().Update(ctx, &convoso.StatusesUpdateParams{Status: "HOT", Reached: convoso.No})
	})

	RunEndpointTests(t, []TestEndpointOperation[convoso.StatusesSearchResponse]{
		{
			Name:          "searches statuses",
			ExpectedPath:  "/statuses/search",
			ExpectedQuery: map[string]string{"query": "HOT"},
			Response: map[string]interface{}{
				"success": true,
				"data": []interface{}{
					map[string]interface{}{"status": "HOT", "name": "Hot lead", "workflow_dispositon_event_option": 2},
				},
			},
			Check: func(t *testing.T, result *convoso.Result[convoso.StatusesSearchResponse]) {
				t.Helper()
				require.Len(t, result.Data.Data, 1)
				assert.Equal(t, 2, result.Data.Data[0].WorkflowDispositionEventOption)
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.StatusesSearchResponse], error) {
		return c.Statuses().Search(ctx, &convoso.StatusesSearchParams{Query: "HOT"})
	})
}
