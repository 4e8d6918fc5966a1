package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/convoso-client/pkg/convoso"
)

// newPostServer serves one legacy POST endpoint, decoding the request body
// into got and answering with response.
func newPostServer(t *testing.T, wantPath string, got *map[string]interface{}, status int, response string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, wantPath, request.URL.Path)
		assert.Equal(t, TestAPIKey, request.URL.Query().Get("auth_token"))
		assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

		if got != nil {
			assert.NoError(t, json.NewDecoder(request.Body).Decode(got))
		}

		if response != "" {
			writer.Header().Set("Content-Type", "application/json")
		}

		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(response))
	}))
}

//nolint:funlen
func TestDNCClient(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []TestEndpointOperation[convoso.DNCInsertResponse]{
		{
			Name:          "inserts entry",
			ExpectedPath:  "/dnc/insert",
			ExpectedQuery: map[string]string{"phone_number": "5550001111", "phone_code": "1", "campaign_id": "0"},
			AbsentQuery:   []string{"purpose", "reason"},
			Response:      map[string]interface{}{"success": true},
		},
		{
			Name:         "rejected",
			ExpectedPath: "/dnc/insert",
			Response:     failureBody(6009, "The phone number already exists"),
			WantFailure:  6009,
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.DNCInsertResponse], error) {
		return c.DNC().Insert(ctx, &convoso.DNCInsertParams{PhoneNumber: "5550001111", PhoneCode: "1", CampaignID: "0"})
	})

	RunEndpointTests(t, []TestEndpointOperation[convoso.DNCUpdateResponse]{
		{
			Name:          "updates entry",
			ExpectedPath:  "/dnc/update",
			ExpectedQuery: map[string]string{"id": "17", "campaign_id": "3", "reason": "asked"},
			Response:      map[string]interface{}{"success": true, "id": 17},
			Check: func(t *testing.T, result *convoso.Result[convoso.DNCUpdateResponse]) {
				t.Helper()
				assert.Equal(t, 17, result.Data.ID)
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.DNCUpdateResponse], error) {
		return c.DNC().Update(ctx, &convoso.DNCUpdateParams{ID: 17, CampaignID: intPtr(3), Reason: "asked"})
	})

	RunEndpointTests(t, []TestEndpointOperation[convoso.DNCDeleteResponse]{
		{
			Name:          "deletes entry",
			ExpectedPath:  "/dnc/delete",
			ExpectedQuery: map[string]string{"phone_number": "5550001111", "lead_status": "NEW"},
			Response:      map[string]interface{}{"success": true},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.DNCDeleteResponse], error) {
		return c.DNC().Delete(ctx, &convoso.DNCDeleteParams{
			PhoneNumber: "5550001111",
			PhoneCode:   "1",
			CampaignID:  "0",
			LeadStatus:  "NEW",
		})
	})

	RunEndpointTests(t, []TestEndpointOperation[convoso.DNCSearchResponse]{
		{
			Name:          "uses the extended offset ceiling",
			ExpectedPath:  "/dnc/search",
			ExpectedQuery: map[string]string{"offset": "100000", "limit": "1000"},
			Response: map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"offset": 100000, "limit": 1000, "total": 1,
					"entries": []interface{}{map[string]interface{}{"id": "4", "phone_number": "5550001111"}},
				},
			},
			Check: func(t *testing.T, result *convoso.Result[convoso.DNCSearchResponse]) {
				t.Helper()
				require.NotNil(t, result.Data.Data)
				require.Len(t, result.Data.Data.Entries, 1)
				assert.Equal(t, "5550001111", result.Data.Data.Entries[0].PhoneNumber)
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.DNCSearchResponse], error) {
		return c.DNC().Search(ctx, &convoso.DNCSearchParams{Offset: intPtr(250000), Limit: intPtr(20000)})
	})
}

//nolint:funlen
func TestDNCClient_LegacyPost(t *testing.T) {
	t.Parallel()

	t.Run("Add sends the body as JSON", func(t *testing.T) {
		t.Parallel()

		var got map[string]interface{}

		server := newPostServer(t, "/dnc/add", &got, http.StatusOK, `{"success":true,"id":9}`)
		defer server.Close()

		out, err := NewTestClient(server.URL).DNC().Add(context.Background(), map[string]interface{}{
			"phone_number": "5550001111",
		})
		require.NoError(t, err)

		assert.Equal(t, "5550001111", got["phone_number"])
		assert.Equal(t, true, out["success"])
		assert.InDelta(t, 9, out["id"], 0)
	})

	t.Run("Remove with empty answer", func(t *testing.T) {
		t.Parallel()

		server := newPostServer(t, "/dnc/remove", nil, http.StatusNoContent, "")
		defer server.Close()

		out, err := NewTestClient(server.URL).DNC().Remove(context.Background(), map[string]interface{}{"id": 9})
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("Remove server error", func(t *testing.T) {
		t.Parallel()

		server := newPostServer(t, "/dnc/remove", nil, http.StatusBadGateway, `{"message":"upstream down"}`)
		defer server.Close()

		out, err := NewTestClient(server.URL).DNC().Remove(context.Background(), map[string]interface{}{"id": 9})
		require.Error(t, err)
		assert.Nil(t, out)
		assert.Contains(t, err.Error(), "removing DNC entry: upstream down")
		assert.True(t, convoso.IsServerError(err))
	})
}

//nolint:funlen
func TestSMSOptOutClient(t *testing.T) {
	t.Parallel()

	RunEndpointTests(t, []TestEndpointOperation[convoso.SMSOptOutInsertResponse]{
		{
			Name:          "inserts opt-out",
			ExpectedPath:  "/sms-opt-out/insert",
			ExpectedQuery: map[string]string{"phone_number": "5550002222", "reason": "STOP"},
			AbsentQuery:   []string{"purpose"},
			Response:      map[string]interface{}{"success": true},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.SMSOptOutInsertResponse], error) {
		return c.SMSOptOut().Insert(ctx, &convoso.SMSOptOutInsertParams{
			PhoneNumber: "5550002222",
			PhoneCode:   "1",
			CampaignID:  "0",
			Reason:      "STOP",
		})
	})

	RunEndpointTests(t, []TestEndpointOperation[convoso.SMSOptOutUpdateResponse]{
		{
			Name:          "updates opt-out",
			ExpectedPath:  "/sms-opt-out/update",
			ExpectedQuery: map[string]string{"id": "12"},
			Response:      map[string]interface{}{"success": true, "data": map[string]interface{}{"id": "12"}},
			Check: func(t *testing.T, result *convoso.Result[convoso.SMSOptOutUpdateResponse]) {
				t.Helper()
				assert.Equal(t, "12", result.Data.Data.ID)
			},
		},
		{
			Name:         "unknown record",
			ExpectedPath: "/sms-opt-out/update",
			Response:     failureBody(4001, "Record not found"),
			WantFailure:  4001,
			Check: func(t *testing.T, result *convoso.Result[convoso.SMSOptOutUpdateResponse]) {
				t.Helper()
				assert.True(t, convoso.SMSOptOutUpdateErrors.Contains(result.Failure))
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.SMSOptOutUpdateResponse], error) {
		return c.SMSOptOut().Update(ctx, &convoso.SMSOptOutUpdateParams{ID: 12})
	})

	RunEndpointTests(t, []TestEndpointOperation[convoso.SMSOptOutSearchResponse]{
		{
			Name:          "sends capitalised reason and purpose",
			ExpectedPath:  "/sms-opt-out/search",
			ExpectedQuery: map[string]string{"Reason": "STOP", "Purpose": "marketing", "offset": "100000"},
			AbsentQuery:   []string{"reason", "purpose", "limit"},
			Response: map[string]interface{}{
				"success": true,
				"data": map[string]interface{}{
					"entries": []interface{}{map[string]interface{}{"id": "1", "Purpose": "marketing"}},
				},
			},
			Check: func(t *testing.T, result *convoso.Result[convoso.SMSOptOutSearchResponse]) {
				t.Helper()
				require.NotNil(t, result.Data.Data)
				require.Len(t, result.Data.Data.Entries, 1)
				assert.Equal(t, "marketing", result.Data.Data.Entries[0].Purpose)
			},
		},
	}, func(ctx context.Context, c *Client) (*convoso.Result[convoso.SMSOptOutSearchResponse], error) {
		return c.SMSOptOut().Search(ctx, &convoso.SMSOptOutSearchParams{
			Reason:  "STOP",
			Purpose: "marketing",
			Offset:  intPtr(100001),
		})
	})
}
