package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chokka/chokka-api/apps/api/handlers"
	"github.com/chokka/chokka-api/libs/go/client/steadfast"
	"github.com/chokka/chokka-api/libs/go/config"
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/mocks"
	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/chokka/chokka-api/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router    *gin.Engine
	products  *mocks.MockProductService
	orders    *mocks.MockOrderService
	dashboard *mocks.MockDashboardService
	courier   *mocks.MockCourierService
	auth      *mocks.MockAuthService
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	ts := &testServer{
		router:    gin.New(),
		products:  mocks.NewMockProductService(ctrl),
		orders:    mocks.NewMockOrderService(ctrl),
		dashboard: mocks.NewMockDashboardService(ctrl),
		courier:   mocks.NewMockCourierService(ctrl),
		auth:      mocks.NewMockAuthService(ctrl),
	}

	factory := handlers.NewHandlerFactory(handlers.HandlerFactoryConfig{
		OrderService:     ts.orders,
		CourierService:   ts.courier,
		ProductService:   ts.products,
		CouponService:    mocks.NewMockCouponService(ctrl),
		ReviewService:    mocks.NewMockReviewService(ctrl),
		GalleryService:   mocks.NewMockGalleryService(ctrl),
		InventoryService: mocks.NewMockInventoryService(ctrl),
		ExpenseService:   mocks.NewMockExpenseService(ctrl),
		PayoutService:    mocks.NewMockPayoutService(ctrl),
		DashboardService: ts.dashboard,
		AuthService:      ts.auth,
		Logger:           zap.NewNop(),
	})

	cfg := &config.Config{
		Stage:              "test",
		CORSAllowedOrigins: []string{"https://chokka.shop"},
		CORSAllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type", "Authorization"},
		CORSAllowCreds:     true,
	}
	stop := RegisterRoutes(ts.router, Dependencies{Factory: factory, Validator: ts.auth, Config: cfg})
	t.Cleanup(stop)
	return ts
}

func (ts *testServer) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func adminClaims() *business.AdminClaims {
	return &business.AdminClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"}}
}

func TestRoutes_PublicEndpointsNeedNoToken(t *testing.T) {
	ts := newTestServer(t)
	ts.products.EXPECT().ListProducts(gomock.Any()).Return([]db.Product{}, nil)

	w := ts.do(http.MethodGet, "/api/products", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRoutes_AdminEndpointsRequireToken(t *testing.T) {
	adminRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/orders"},
		{http.MethodDelete, "/api/orders/1"},
		{http.MethodPost, "/api/steadfast/sync-all"},
		{http.MethodGet, "/api/coupons"},
		{http.MethodPut, "/api/products/1"},
		{http.MethodPost, "/api/gallery/upload"},
		{http.MethodGet, "/api/inventory/low-stock"},
		{http.MethodGet, "/api/expenses/totals"},
		{http.MethodGet, "/api/payouts/total"},
		{http.MethodGet, "/api/dashboard/summary"},
	}

	for _, r := range adminRoutes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			ts := newTestServer(t)
			w := ts.do(r.method, r.path, "")
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")
		})
	}
}

func TestRoutes_AdminEndpointWithToken(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.EXPECT().ValidateToken("good").Return(adminClaims(), nil)
	ts.auth.EXPECT().ValidateToken("forged").Return(nil, services.ErrInvalidToken)
	ts.dashboard.EXPECT().GetSummary(gomock.Any()).Return(&business.DashboardSummary{}, nil)

	w := ts.do(http.MethodGet, "/api/dashboard/summary", "good")
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodGet, "/api/dashboard/summary", "forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_ValidationRunsBeforeHandler(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/create-order", nil)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoutes_CORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/create-order", nil)
	req.Header.Set("Origin", "https://chokka.shop")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://chokka.shop", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodOptions, "/api/create-order", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRoutes_AdminPanelRequestShapes(t *testing.T) {
	t.Run("order details under both paths", func(t *testing.T) {
		for _, path := range []string{"/api/orders/9/details", "/api/orders/9/update-details"} {
			ts := newTestServer(t)
			ts.auth.EXPECT().ValidateToken("good").Return(adminClaims(), nil)
			ts.orders.EXPECT().UpdateDetails(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p params.UpdateOrderDetailsParams) (*db.Order, error) {
					assert.Equal(t, int64(9), p.ID)
					assert.Equal(t, "Karim", p.CustomerName)
					return &db.Order{ID: 9, CustomerName: p.CustomerName}, nil
				})

			w := ts.doJSON(t, http.MethodPut, path, "good", map[string]interface{}{
				"customer_name":    "Karim",
				"customer_phone":   "01812345678",
				"customer_address": "Agrabad",
				"total_price":      500,
			})
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("steadfast create with short field names", func(t *testing.T) {
		ts := newTestServer(t)
		ts.auth.EXPECT().ValidateToken("good").Return(adminClaims(), nil)
		ts.courier.EXPECT().CreateShipment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p params.CreateShipmentParams) (*steadfast.CreateOrderResponse, error) {
				assert.Equal(t, "CHK-12", p.Invoice)
				assert.Equal(t, "Rahim", p.RecipientName)
				assert.Equal(t, "01712345678", p.RecipientPhone)
				assert.Equal(t, "Mirpur 10", p.RecipientAddress)
				assert.True(t, p.CODAmount.Equal(decimal.NewFromInt(440)))
				return &steadfast.CreateOrderResponse{Status: 200}, nil
			})

		w := ts.doJSON(t, http.MethodPost, "/api/steadfast/create", "good", map[string]interface{}{
			"invoice": "CHK-12",
			"name":    "Rahim",
			"address": "Mirpur 10",
			"phone":   "01712345678",
			"amount":  440,
			"note":    "",
		})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
