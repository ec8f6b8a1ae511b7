package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/chokka/chokka-api/libs/go/client/steadfast"
	"github.com/chokka/chokka-api/libs/go/mocks"
	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/api/responses"
	"github.com/chokka/chokka-api/libs/go/types/business"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func courierRouter(svc *mocks.MockCourierService) http.Handler {
	h := NewCourierHandler(svc, nil)
	router := newTestRouter()
	router.POST("/api/steadfast/create", h.CreateShipment)
	router.POST("/api/steadfast/bulk-create", h.CreateBulkShipments)
	router.GET("/api/steadfast/status/:trackingCode", h.GetDeliveryStatus)
	router.POST("/api/steadfast/sync/:orderId", h.SyncOrder)
	router.POST("/api/steadfast/sync-all", h.SyncAll)
	return router
}

func TestCourierHandler_CreateShipment(t *testing.T) {
	body := map[string]interface{}{
		"order_id":          12,
		"invoice":           "INV-12",
		"recipient_name":    "Rahim",
		"recipient_phone":   "01712345678",
		"recipient_address": "Mirpur 10",
		"cod_amount":        440,
	}

	t.Run("consignment created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockCourierService(ctrl)
		svc.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, p params.CreateShipmentParams) (*steadfast.CreateOrderResponse, error) {
				require.NotNil(t, p.OrderID)
				assert.Equal(t, int64(12), *p.OrderID)
				assert.True(t, p.CODAmount.Equal(decimal.NewFromInt(440)))
				return &steadfast.CreateOrderResponse{
					Status:      200,
					Message:     "Consignment has been created successfully.",
					Consignment: &steadfast.Consignment{ConsignmentID: 1424107, TrackingCode: "15BAEB8A"},
				}, nil
			})

		w := performRequest(t, courierRouter(svc), http.MethodPost, "/api/steadfast/create", body)
		require.Equal(t, http.StatusOK, w.Code)
		var resp steadfast.CreateOrderResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, 200, resp.Status)
		require.NotNil(t, resp.Consignment)
		assert.Equal(t, "15BAEB8A", resp.Consignment.TrackingCode)
	})

	t.Run("courier rejection is a bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockCourierService(ctrl)
		svc.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
			Return(nil, &steadfast.APIError{StatusCode: 422, Message: "The recipient phone must be 11 digits."})

		w := performRequest(t, courierRouter(svc), http.MethodPost, "/api/steadfast/create", body)
		assert.Equal(t, http.StatusBadGateway, w.Code)
		var resp ErrorResponse
		decodeJSON(t, w, &resp)
		assert.Contains(t, resp.Error, "Steadfast Rejected: The recipient phone must be 11 digits.")
	})

	t.Run("missing credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockCourierService(ctrl)
		svc.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).Return(nil, steadfast.ErrNotConfigured)

		w := performRequest(t, courierRouter(svc), http.MethodPost, "/api/steadfast/create", body)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestCourierHandler_CreateShipment_AdminPanelFields(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
		check      func(t *testing.T, p params.CreateShipmentParams)
	}{
		{
			name: "short field names",
			body: map[string]interface{}{
				"invoice": "CHK-12",
				"name":    "Rahim",
				"address": "Mirpur 10, Dhaka",
				"phone":   "01712345678",
				"amount":  "440",
				"note":    "Call before delivery",
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, p params.CreateShipmentParams) {
				assert.Equal(t, "CHK-12", p.Invoice)
				assert.Equal(t, "Rahim", p.RecipientName)
				assert.Equal(t, "01712345678", p.RecipientPhone)
				assert.Equal(t, "Mirpur 10, Dhaka", p.RecipientAddress)
				assert.True(t, p.CODAmount.Equal(decimal.NewFromInt(440)))
				assert.Equal(t, "Call before delivery", p.Note)
			},
		},
		{
			name: "recipient fields win over short names",
			body: map[string]interface{}{
				"invoice":        "CHK-13",
				"recipient_name": "Karim",
				"name":           "Rahim",
				"phone":          "01712345678",
				"address":        "Uttara",
				"cod_amount":     0,
				"amount":         500,
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, p params.CreateShipmentParams) {
				assert.Equal(t, "Karim", p.RecipientName)
				assert.True(t, p.CODAmount.IsZero())
			},
		},
		{
			name:       "missing amount",
			body:       map[string]interface{}{"invoice": "CHK-14", "name": "Rahim", "phone": "01712345678", "address": "Uttara"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing phone",
			body:       map[string]interface{}{"invoice": "CHK-15", "name": "Rahim", "address": "Uttara", "amount": 100},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockCourierService(ctrl)
			if tt.check != nil {
				svc.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p params.CreateShipmentParams) (*steadfast.CreateOrderResponse, error) {
						tt.check(t, p)
						return &steadfast.CreateOrderResponse{Status: 200}, nil
					})
			}

			w := performRequest(t, courierRouter(svc), http.MethodPost, "/api/steadfast/create", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCourierHandler_CreateBulkShipments(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCourierService(ctrl)
	svc.EXPECT().CreateBulkShipments(gomock.Any(), []int64{3, 4}).Return(&business.BulkShipmentResult{
		OrderIDs:      []int64{3, 4},
		TrackingCodes: map[int64]string{3: "TRK3"},
	}, nil)

	router := courierRouter(svc)

	w := performRequest(t, router, http.MethodPost, "/api/steadfast/bulk-create", map[string]interface{}{"order_ids": []int64{3, 4}})
	require.Equal(t, http.StatusOK, w.Code)
	var resp responses.BulkShipmentResponse
	decodeJSON(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "TRK3", resp.TrackingCodes[3])

	w = performRequest(t, router, http.MethodPost, "/api/steadfast/bulk-create", map[string]interface{}{"order_ids": []int64{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourierHandler_StatusAndSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockCourierService(ctrl)
	svc.EXPECT().GetDeliveryStatus(gomock.Any(), "15BAEB8A").Return("delivered", nil)
	svc.EXPECT().SyncOrder(gomock.Any(), int64(12)).Return(&business.SyncResult{
		OrderID:        12,
		OldStatus:      "Steadfast_Posted",
		NewStatus:      "Delivered",
		DeliveryStatus: "delivered",
		Updated:        true,
	}, nil)
	svc.EXPECT().SyncOrder(gomock.Any(), int64(13)).Return(nil, services.ErrMissingTracking)
	svc.EXPECT().SyncAll(gomock.Any()).Return(&business.SyncSummary{
		Updated: 1,
		Total:   3,
		Errors:  []business.SyncError{{OrderID: 9, Error: "timeout"}},
	}, nil)

	router := courierRouter(svc)

	w := performRequest(t, router, http.MethodGet, "/api/steadfast/status/15BAEB8A", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"delivery_status":"delivered"}`, w.Body.String())

	w = performRequest(t, router, http.MethodPost, "/api/steadfast/sync/12", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var synced map[string]interface{}
	decodeJSON(t, w, &synced)
	assert.Equal(t, true, synced["success"])
	assert.Equal(t, "Steadfast_Posted", synced["old_status"])
	assert.Equal(t, "Delivered", synced["new_status"])
	assert.Equal(t, true, synced["updated"])

	w = performRequest(t, router, http.MethodPost, "/api/steadfast/sync/13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, router, http.MethodPost, "/api/steadfast/sync-all", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summary responses.SyncAllResponse
	decodeJSON(t, w, &summary)
	assert.True(t, summary.Success)
	assert.Equal(t, 3, summary.Total)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, int64(9), summary.Errors[0].OrderID)
}
