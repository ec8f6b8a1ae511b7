package steadfast_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpClient "github.com/chokka/chokka-api/libs/go/client/http"
	"github.com/chokka/chokka-api/libs/go/client/steadfast"
	"github.com/chokka/chokka-api/libs/go/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *steadfast.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return steadfast.NewClient("api-key", "secret-key",
		steadfast.WithBaseURL(server.URL),
		steadfast.WithHTTPOptions(httpClient.WithRetryConfig(nil)),
	)
}

func TestClient_CreateOrder(t *testing.T) {
	var gotBody map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create_order", r.URL.Path)
		assert.Equal(t, "api-key", r.Header.Get("Api-Key"))
		assert.Equal(t, "secret-key", r.Header.Get("Secret-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = io.WriteString(w, `{"status":200,"message":"Consignment has been created successfully.","consignment":{"consignment_id":1424107,"invoice":"INV-42","tracking_code":"15BAEB8A","status":"in_review"}}`)
	})

	resp, err := client.CreateOrder(context.Background(), steadfast.CreateOrderRequest{
		Invoice:          "INV-42",
		RecipientName:    "Rahim",
		RecipientPhone:   "01711111111",
		RecipientAddress: "Mirpur 10, Dhaka",
		CODAmount:        steadfast.NewAmount(decimal.NewFromInt(440)),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Consignment)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, "15BAEB8A", resp.Consignment.TrackingCode)
	assert.Equal(t, int64(1424107), resp.Consignment.ConsignmentID)
	assert.Equal(t, "None", gotBody["note"])
	assert.Equal(t, float64(440), gotBody["cod_amount"])
}

func TestClient_CreateOrder_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"status":422,"errors":{"recipient_phone":["The recipient phone must be 11 characters."]}}`)
	})

	_, err := client.CreateOrder(context.Background(), steadfast.CreateOrderRequest{Invoice: "INV-1"})
	require.Error(t, err)

	var apiErr *steadfast.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "recipient_phone")
}

func TestClient_CreateBulkOrders(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		wantAccepted bool
		wantArray    bool
		wantResults  int
	}{
		{
			name:         "array response",
			response:     `[{"invoice":"INV-1","tracking_code":"AAA","consignment_id":1,"status":"success"},{"invoice":"INV-2","tracking_code":"BBB","consignment_id":2,"status":"success"}]`,
			wantAccepted: true,
			wantArray:    true,
			wantResults:  2,
		},
		{
			name:         "object response with status 200",
			response:     `{"status":200,"data":[{"invoice":"INV-1","tracking_code":"AAA","consignment_id":1,"status":"success"}]}`,
			wantAccepted: true,
			wantResults:  1,
		},
		{
			name:         "object response rejected",
			response:     `{"status":400,"message":"Invalid data"}`,
			wantAccepted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Data string `json:"data"`
			}
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/create_order/bulk-order", r.URL.Path)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				_, _ = io.WriteString(w, tt.response)
			})

			resp, err := client.CreateBulkOrders(context.Background(), []steadfast.CreateOrderRequest{
				{Invoice: "INV-1", RecipientName: "A", RecipientPhone: "01711111111", RecipientAddress: "Dhaka", CODAmount: steadfast.NewAmount(decimal.NewFromInt(440)), Note: steadfast.BulkOrderNote},
				{Invoice: "INV-2", RecipientName: "B", RecipientPhone: "01811111111", RecipientAddress: "Sylhet", CODAmount: steadfast.NewAmount(decimal.NewFromInt(510)), Note: steadfast.BulkOrderNote},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccepted, resp.Accepted)
			assert.Equal(t, tt.wantArray, resp.IsArray)
			assert.Len(t, resp.Results, tt.wantResults)

			var items []map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(payload.Data), &items))
			require.Len(t, items, 2)
			assert.Equal(t, "Handle with care", items[0]["note"])
		})
	}
}

func TestClient_GetStatusByTrackingCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status_by_trackingcode/15BAEB8A", r.URL.Path)
		_, _ = io.WriteString(w, `{"status":200,"delivery_status":"delivered_approval_pending"}`)
	})

	resp, err := client.GetStatusByTrackingCode(context.Background(), "15BAEB8A")
	require.NoError(t, err)
	assert.Equal(t, "delivered_approval_pending", resp.DeliveryStatus)
}

func TestClient_NotConfigured(t *testing.T) {
	client := steadfast.NewClient("", "")

	_, err := client.GetStatusByTrackingCode(context.Background(), "X")
	assert.ErrorIs(t, err, steadfast.ErrNotConfigured)

	_, err = client.CreateOrder(context.Background(), steadfast.CreateOrderRequest{})
	assert.ErrorIs(t, err, steadfast.ErrNotConfigured)
}
