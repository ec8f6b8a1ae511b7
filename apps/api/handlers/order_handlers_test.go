package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/chokka/chokka-api/libs/go/db"
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

func orderRouter(svc *mocks.MockOrderService) http.Handler {
	h := NewOrderHandler(svc, nil, nil)
	router := newTestRouter()
	router.POST("/api/create-order", h.CreateOrder)
	router.POST("/api/checkout/quote", h.Quote)
	router.GET("/api/orders", h.ListOrders)
	router.GET("/api/orders/:id", h.GetOrder)
	router.PUT("/api/orders/:id", h.UpdateOrder)
	router.PUT("/api/orders/:id/status", h.UpdateOrderStatus)
	router.PUT("/api/orders/:id/details", h.UpdateOrderDetails)
	router.DELETE("/api/orders/:id", h.DeleteOrder)
	return router
}

func validCheckout() map[string]interface{} {
	return map[string]interface{}{
		"customer_name":    "Rahim Uddin",
		"customer_phone":   "01712345678",
		"customer_address": "House 12, Road 5, Mirpur",
		"city":             "Dhaka",
		"product_id":       1,
		"quantity":         1,
		"total_price":      440,
	}
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		setup      func(m *mocks.MockOrderService)
		wantStatus int
		wantError  string
	}{
		{
			name: "order placed",
			body: validCheckout(),
			setup: func(m *mocks.MockOrderService) {
				m.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, p params.CreateOrderParams) (*db.Order, *business.Quote, error) {
						assert.Equal(t, "Rahim Uddin", p.CustomerName)
						assert.Equal(t, int64(1), p.ProductID)
						require.NotNil(t, p.ClientTotal)
						assert.True(t, p.ClientTotal.Equal(decimal.NewFromInt(440)))
						order := sampleOrder(42)
						return &order, &business.Quote{Total: decimal.NewFromInt(440)}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing required fields",
			body:       map[string]interface{}{"customer_name": "Rahim"},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
		{
			name:       "malformed json",
			body:       `{"customer_name":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
		{
			name: "invalid coupon",
			body: validCheckout(),
			setup: func(m *mocks.MockOrderService) {
				m.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, nil, services.ErrInvalidCoupon)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid Coupon",
		},
		{
			name: "database failure",
			body: validCheckout(),
			setup: func(m *mocks.MockOrderService) {
				m.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to place order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockOrderService(ctrl)
			if tt.setup != nil {
				tt.setup(svc)
			}

			w := performRequest(t, orderRouter(svc), http.MethodPost, "/api/create-order", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var resp responses.CreateOrderResponse
				decodeJSON(t, w, &resp)
				assert.True(t, resp.Success)
				assert.Equal(t, int64(42), resp.OrderID)
				assert.True(t, resp.Total.Equal(decimal.NewFromInt(440)))
				assert.Contains(t, w.Body.String(), `"orderId":42`)
				return
			}

			var resp ErrorResponse
			decodeJSON(t, w, &resp)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantError, resp.Error)
			assert.NotEmpty(t, resp.CorrelationID)
		})
	}
}

func TestOrderHandler_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockOrderService(ctrl)
	svc.EXPECT().Quote(gomock.Any(), params.QuoteParams{ProductID: 1, Quantity: 2, City: "Sylhet", CouponCode: "EID50"}).
		Return(
			&business.Quote{Total: decimal.NewFromInt(820)},
			&business.Upsell{BundleID: 3, BundlePrice: decimal.NewFromInt(650), ExtraCost: decimal.NewFromInt(290), Savings: decimal.NewFromInt(70)},
			nil,
		)

	w := performRequest(t, orderRouter(svc), http.MethodPost, "/api/checkout/quote",
		map[string]interface{}{"product_id": 1, "quantity": 2, "city": "Sylhet", "coupon_code": "EID50"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp responses.QuoteResponse
	decodeJSON(t, w, &resp)
	assert.True(t, resp.Success)
	assert.True(t, resp.Quote.Total.Equal(decimal.NewFromInt(820)))
	require.NotNil(t, resp.Upsell)
	assert.Equal(t, int64(3), resp.Upsell.BundleID)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockOrderService(ctrl)
	svc.EXPECT().ListOrders(gomock.Any(), params.ListOrdersParams{Status: "Pending", Limit: 20, Offset: 40}).
		Return([]db.Order{sampleOrder(2), sampleOrder(1)}, nil)

	w := performRequest(t, orderRouter(svc), http.MethodGet, "/api/orders?status=Pending&limit=20&offset=40", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []responses.OrderResponse
	decodeJSON(t, w, &resp)
	require.Len(t, resp, 2)
	assert.Equal(t, int64(2), resp[0].ID)
	assert.Equal(t, "The Syndicate", resp[0].ProductName)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(m *mocks.MockOrderService)
		wantStatus int
	}{
		{
			name: "found",
			path: "/api/orders/7",
			setup: func(m *mocks.MockOrderService) {
				order := sampleOrder(7)
				m.EXPECT().GetOrder(gomock.Any(), int64(7)).Return(&order, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/orders/8",
			setup: func(m *mocks.MockOrderService) {
				m.EXPECT().GetOrder(gomock.Any(), int64(8)).Return(nil, services.ErrOrderNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{name: "non numeric id", path: "/api/orders/abc", wantStatus: http.StatusBadRequest},
		{name: "zero id", path: "/api/orders/0", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockOrderService(ctrl)
			if tt.setup != nil {
				tt.setup(svc)
			}
			w := performRequest(t, orderRouter(svc), http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockOrderService(ctrl)

	tracking := "SFR123"
	gomock.InOrder(
		svc.EXPECT().UpdateStatus(gomock.Any(), params.UpdateOrderStatusParams{ID: 5, Status: "Shipped"}).
			DoAndReturn(func(_ interface{}, p params.UpdateOrderStatusParams) (*db.Order, error) {
				order := sampleOrder(5)
				order.Status = p.Status
				return &order, nil
			}),
		svc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, p params.UpdateOrderStatusParams) (*db.Order, error) {
				require.NotNil(t, p.TrackingCode)
				assert.Equal(t, tracking, *p.TrackingCode)
				order := sampleOrder(5)
				order.Status = p.Status
				return &order, nil
			}),
	)

	router := orderRouter(svc)

	w := performRequest(t, router, http.MethodPut, "/api/orders/5", map[string]string{"status": "Shipped"})
	require.Equal(t, http.StatusOK, w.Code)
	var resp responses.OrderResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Shipped", resp.Status)

	w = performRequest(t, router, http.MethodPut, "/api/orders/5/status",
		map[string]string{"status": "Steadfast_Posted", "tracking_code": tracking})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, router, http.MethodPut, "/api/orders/5", map[string]string{"status": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_UpdateDetailsAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockOrderService(ctrl)

	svc.EXPECT().UpdateDetails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p params.UpdateOrderDetailsParams) (*db.Order, error) {
			assert.Equal(t, int64(9), p.ID)
			assert.True(t, p.TotalPrice.Equal(decimal.NewFromInt(500)))
			order := sampleOrder(9)
			order.CustomerName = p.CustomerName
			return &order, nil
		})
	svc.EXPECT().DeleteOrder(gomock.Any(), int64(9)).Return(nil)
	svc.EXPECT().DeleteOrder(gomock.Any(), int64(10)).Return(services.ErrOrderNotFound)

	router := orderRouter(svc)

	w := performRequest(t, router, http.MethodPut, "/api/orders/9/details", map[string]interface{}{
		"customer_name":    "Karim",
		"customer_phone":   "01812345678",
		"customer_address": "Agrabad",
		"total_price":      500,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(t, router, http.MethodDelete, "/api/orders/9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ok SuccessResponse
	decodeJSON(t, w, &ok)
	assert.True(t, ok.Success)

	w = performRequest(t, router, http.MethodDelete, "/api/orders/10", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
