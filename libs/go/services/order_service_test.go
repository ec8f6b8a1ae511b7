package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chokka/chokka-api/libs/go/client/events"
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/mocks"
	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func bundleProduct() db.Product {
	return db.Product{ID: 3, Title: "Chokka Bundle", Price: num(650), DeliveryDhaka: num(80), DeliveryOutside: num(150)}
}

func checkoutParams() params.CreateOrderParams {
	return params.CreateOrderParams{
		CustomerName:    " Rahim Uddin ",
		CustomerPhone:   "+88 01711-111111",
		CustomerAddress: "House 1, Road 2, Dhanmondi",
		City:            "Dhaka",
		ProductID:       3,
		Quantity:        1,
		CouponCode:      "save50",
	}
}

type orderFixture struct {
	querier   *mocks.MockQuerier
	publisher *mocks.MockEventPublisher
	notifier  *mocks.MockNotificationService
	tx        *fakeTx
}

func newOrderFixture(t *testing.T) *orderFixture {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	return &orderFixture{
		querier:   q,
		publisher: mocks.NewMockEventPublisher(ctrl),
		notifier:  mocks.NewMockNotificationService(ctrl),
		tx:        &fakeTx{q: q},
	}
}

func (f *orderFixture) expectCheckout(t *testing.T, wantTotal int64) {
	f.querier.EXPECT().GetProduct(gomock.Any(), int64(3)).Return(bundleProduct(), nil)
	f.querier.EXPECT().GetCouponByCode(gomock.Any(), "SAVE50").
		Return(db.Coupon{ID: 1, Code: "SAVE50", Discount: num(50), IsActive: true}, nil)
	f.querier.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateOrderParams) (db.Order, error) {
			assert.Equal(t, "Rahim Uddin", arg.CustomerName)
			assert.Equal(t, "+8801711111111", arg.CustomerPhone)
			assert.Equal(t, "Pending", arg.Status)
			assert.Equal(t, "SAVE50", arg.CouponCode.String)
			assert.True(t, helpers.NumericToDecimal(arg.Subtotal).Equal(decimal.NewFromInt(650)))
			assert.True(t, helpers.NumericToDecimal(arg.ShippingFee).Equal(decimal.NewFromInt(80)))
			assert.True(t, helpers.NumericToDecimal(arg.Discount).Equal(decimal.NewFromInt(50)))
			assert.True(t, helpers.NumericToDecimal(arg.TotalPrice).Equal(decimal.NewFromInt(wantTotal)))
			return db.Order{
				ID:              101,
				CustomerName:    arg.CustomerName,
				CustomerPhone:   arg.CustomerPhone,
				CustomerAddress: arg.CustomerAddress,
				City:            arg.City,
				ProductID:       arg.ProductID,
				Quantity:        arg.Quantity,
				TotalPrice:      arg.TotalPrice,
				CouponCode:      arg.CouponCode,
				Status:          arg.Status,
			}, nil
		})
	f.querier.EXPECT().DeductInventoryStock(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(6)
}

func TestOrderService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("prices on the server, deducts both games and publishes", func(t *testing.T) {
		f := newOrderFixture(t)
		svc := services.NewOrderService(f.querier, f.tx, nil, f.publisher, f.notifier)

		f.expectCheckout(t, 680)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e events.OrderEvent) error {
				assert.Equal(t, "order.created", e.Type)
				assert.Equal(t, int64(101), e.OrderID)
				assert.Equal(t, "Chokka Bundle", e.ProductName)
				assert.True(t, e.Total.Equal(decimal.NewFromInt(680)))
				return nil
			})

		p := checkoutParams()
		clientTotal := decimal.NewFromInt(730)
		p.ClientTotal = &clientTotal

		order, quote, err := svc.CreateOrder(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, int64(101), order.ID)
		assert.True(t, quote.Total.Equal(decimal.NewFromInt(680)))
		assert.Equal(t, 1, f.tx.calls)
	})

	t.Run("falls back to inline notification when publishing fails", func(t *testing.T) {
		f := newOrderFixture(t)
		svc := services.NewOrderService(f.querier, f.tx, nil, f.publisher, f.notifier)

		f.expectCheckout(t, 680)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("queue down"))
		f.notifier.EXPECT().NotifyOrderCreated(gomock.Any(), gomock.Any()).Return(nil)

		_, _, err := svc.CreateOrder(ctx, checkoutParams())
		require.NoError(t, err)
	})

	t.Run("notification failure does not fail checkout", func(t *testing.T) {
		f := newOrderFixture(t)
		svc := services.NewOrderService(f.querier, f.tx, nil, nil, f.notifier)

		f.expectCheckout(t, 680)
		f.notifier.EXPECT().NotifyOrderCreated(gomock.Any(), gomock.Any()).Return(errors.New("telegram down"))

		order, _, err := svc.CreateOrder(ctx, checkoutParams())
		require.NoError(t, err)
		assert.Equal(t, int64(101), order.ID)
	})

	t.Run("missing inventory rows are tolerated", func(t *testing.T) {
		f := newOrderFixture(t)
		svc := services.NewOrderService(f.querier, f.tx, nil, nil, nil)

		p := checkoutParams()
		p.CouponCode = ""
		p.ProductID = 1
		p.Quantity = 2
		p.City = "Sylhet"

		f.querier.EXPECT().GetProduct(gomock.Any(), int64(1)).
			Return(db.Product{ID: 1, Price: num(360), DeliveryDhaka: num(80), DeliveryOutside: num(150)}, nil)
		f.querier.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateOrderParams) (db.Order, error) {
				assert.Equal(t, int32(2), arg.Quantity)
				assert.False(t, arg.CouponCode.Valid)
				assert.True(t, helpers.NumericToDecimal(arg.TotalPrice).Equal(decimal.NewFromInt(870)))
				return db.Order{ID: 7, ProductID: 1, Quantity: 2}, nil
			})
		f.querier.EXPECT().DeductInventoryStock(gomock.Any(), db.DeductInventoryStockParams{
			Quantity:  2,
			ProductID: helpers.Int64ToNullableInt8(1),
			ItemType:  helpers.StringToNullableText("card_set"),
		}).Return(int64(0), nil)
		f.querier.EXPECT().DeductInventoryStock(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)

		order, quote, err := svc.CreateOrder(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, int64(7), order.ID)
		assert.True(t, quote.Shipping.Equal(decimal.NewFromInt(150)))
	})

	validation := []struct {
		name    string
		mutate  func(p *params.CreateOrderParams)
		wantErr error
	}{
		{"invalid phone", func(p *params.CreateOrderParams) { p.CustomerPhone = "12345" }, services.ErrInvalidPhone},
		{"missing name", func(p *params.CreateOrderParams) { p.CustomerName = "  " }, services.ErrInvalidInput},
		{"missing city", func(p *params.CreateOrderParams) { p.City = "" }, services.ErrInvalidInput},
		{"missing product", func(p *params.CreateOrderParams) { p.ProductID = 0 }, services.ErrUnknownProduct},
		{"quantity too large", func(p *params.CreateOrderParams) { p.Quantity = 51 }, services.ErrInvalidInput},
	}
	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			svc := services.NewOrderService(f.querier, f.tx, nil, nil, nil)

			p := checkoutParams()
			tt.mutate(&p)
			_, _, err := svc.CreateOrder(ctx, p)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, f.tx.calls)
		})
	}

	t.Run("unknown product", func(t *testing.T) {
		f := newOrderFixture(t)
		svc := services.NewOrderService(f.querier, f.tx, nil, nil, nil)
		f.querier.EXPECT().GetProduct(gomock.Any(), int64(3)).Return(db.Product{}, pgx.ErrNoRows)

		_, _, err := svc.CreateOrder(ctx, checkoutParams())
		assert.ErrorIs(t, err, services.ErrUnknownProduct)
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("inactive coupon", func(t *testing.T) {
		f := newOrderFixture(t)
		svc := services.NewOrderService(f.querier, f.tx, nil, nil, nil)
		f.querier.EXPECT().GetProduct(gomock.Any(), int64(3)).Return(bundleProduct(), nil)
		f.querier.EXPECT().GetCouponByCode(gomock.Any(), "SAVE50").
			Return(db.Coupon{Code: "SAVE50", Discount: num(50), IsActive: false}, nil)

		_, _, err := svc.CreateOrder(ctx, checkoutParams())
		assert.ErrorIs(t, err, services.ErrCouponExpired)
	})

	t.Run("unknown coupon", func(t *testing.T) {
		f := newOrderFixture(t)
		svc := services.NewOrderService(f.querier, f.tx, nil, nil, nil)
		f.querier.EXPECT().GetProduct(gomock.Any(), int64(3)).Return(bundleProduct(), nil)
		f.querier.EXPECT().GetCouponByCode(gomock.Any(), "SAVE50").Return(db.Coupon{}, pgx.ErrNoRows)

		_, _, err := svc.CreateOrder(ctx, checkoutParams())
		assert.ErrorIs(t, err, services.ErrInvalidCoupon)
	})

	t.Run("deduction failure rolls back", func(t *testing.T) {
		f := newOrderFixture(t)
		svc := services.NewOrderService(f.querier, f.tx, nil, f.publisher, nil)
		p := checkoutParams()
		p.CouponCode = ""

		f.querier.EXPECT().GetProduct(gomock.Any(), int64(3)).Return(bundleProduct(), nil)
		f.querier.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(db.Order{ID: 9}, nil)
		f.querier.EXPECT().DeductInventoryStock(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("deadlock"))

		_, _, err := svc.CreateOrder(ctx, p)
		assert.ErrorContains(t, err, "failed to deduct card_set")
	})
}

func TestOrderService_Quote(t *testing.T) {
	ctx := context.Background()
	products := []db.Product{
		{ID: 1, Price: num(360), DeliveryDhaka: num(80), DeliveryOutside: num(150)},
		{ID: 2, Price: num(360), DeliveryDhaka: num(80), DeliveryOutside: num(150)},
		bundleProduct(),
	}

	t.Run("single game includes upsell", func(t *testing.T) {
		f := newOrderFixture(t)
		svc := services.NewOrderService(f.querier, f.tx, nil, nil, nil)
		f.querier.EXPECT().ListProducts(ctx).Return(products, nil)

		quote, upsell, err := svc.Quote(ctx, params.QuoteParams{ProductID: 2, Quantity: 1, City: "Barishal"})
		require.NoError(t, err)
		assert.True(t, quote.Total.Equal(decimal.NewFromInt(510)))
		require.NotNil(t, upsell)
		assert.True(t, upsell.Savings.Equal(decimal.NewFromInt(70)))
		assert.Equal(t, 0, f.tx.calls)
	})

	t.Run("bundle has no upsell and coupon applies", func(t *testing.T) {
		f := newOrderFixture(t)
		svc := services.NewOrderService(f.querier, f.tx, nil, nil, nil)
		f.querier.EXPECT().ListProducts(ctx).Return(products, nil)
		f.querier.EXPECT().GetCouponByCode(ctx, "EID").Return(db.Coupon{Code: "EID", Discount: num(100), IsActive: true}, nil)

		quote, upsell, err := svc.Quote(ctx, params.QuoteParams{ProductID: 3, City: "dhaka", CouponCode: " eid "})
		require.NoError(t, err)
		assert.Nil(t, upsell)
		assert.True(t, quote.Total.Equal(decimal.NewFromInt(630)))
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newOrderFixture(t)
		svc := services.NewOrderService(f.querier, f.tx, nil, nil, nil)
		f.querier.EXPECT().ListProducts(ctx).Return(products, nil)

		_, _, err := svc.Quote(ctx, params.QuoteParams{ProductID: 12})
		assert.ErrorIs(t, err, services.ErrUnknownProduct)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	svc := services.NewOrderService(f.querier, f.tx, nil, nil, nil)

	f.querier.EXPECT().ListOrders(ctx, db.ListOrdersParams{Limit: 200, Offset: 0}).Return([]db.Order{{ID: 2}, {ID: 1}}, nil)
	orders, err := svc.ListOrders(ctx, params.ListOrdersParams{})
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	f.querier.EXPECT().ListOrdersByStatus(ctx, db.ListOrdersByStatusParams{Status: "Hold", Limit: 500, Offset: 10}).Return(nil, nil)
	_, err = svc.ListOrders(ctx, params.ListOrdersParams{Status: " Hold ", Limit: 9000, Offset: 10})
	require.NoError(t, err)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		params     params.UpdateOrderStatusParams
		setupMocks func(q *mocks.MockQuerier)
		wantErr    error
	}{
		{
			name:   "manual status",
			params: params.UpdateOrderStatusParams{ID: 5, Status: "Shipped"},
			setupMocks: func(q *mocks.MockQuerier) {
				q.EXPECT().UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{ID: 5, Status: "Shipped"}).
					Return(db.Order{ID: 5, Status: "Shipped"}, nil)
			},
		},
		{
			name:   "status with tracking code",
			params: params.UpdateOrderStatusParams{ID: 5, Status: "Pickup Pending", TrackingCode: ptrString(" SF123 ")},
			setupMocks: func(q *mocks.MockQuerier) {
				q.EXPECT().UpdateOrderCourierInfo(ctx, db.UpdateOrderCourierInfoParams{
					Status:       "Pickup Pending",
					TrackingCode: helpers.StringToNullableText("SF123"),
					ID:           5,
				}).Return(db.Order{ID: 5}, nil)
			},
		},
		{
			name:       "empty status",
			params:     params.UpdateOrderStatusParams{ID: 5, Status: "  "},
			setupMocks: func(q *mocks.MockQuerier) {},
			wantErr:    services.ErrInvalidInput,
		},
		{
			name:   "missing order",
			params: params.UpdateOrderStatusParams{ID: 6, Status: "Hold"},
			setupMocks: func(q *mocks.MockQuerier) {
				q.EXPECT().UpdateOrderStatus(ctx, gomock.Any()).Return(db.Order{}, pgx.ErrNoRows)
			},
			wantErr: services.ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newOrderFixture(t)
			svc := services.NewOrderService(f.querier, f.tx, nil, nil, nil)
			tt.setupMocks(f.querier)

			_, err := svc.UpdateStatus(ctx, tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_UpdateDetailsAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	svc := services.NewOrderService(f.querier, f.tx, nil, nil, nil)

	_, err := svc.UpdateDetails(ctx, params.UpdateOrderDetailsParams{ID: 1, CustomerName: "A", CustomerPhone: "", CustomerAddress: "B"})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	f.querier.EXPECT().UpdateOrderDetails(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateOrderDetailsParams) (db.Order, error) {
			assert.Equal(t, "01811111111", arg.CustomerPhone)
			return db.Order{ID: arg.ID, CustomerPhone: arg.CustomerPhone}, nil
		})
	order, err := svc.UpdateDetails(ctx, params.UpdateOrderDetailsParams{
		ID: 1, CustomerName: "Karim", CustomerPhone: "018-1111-1111", CustomerAddress: "Mirpur", TotalPrice: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.Equal(t, "01811111111", order.CustomerPhone)

	f.querier.EXPECT().DeleteOrder(ctx, int64(1)).Return(int64(1), nil)
	assert.NoError(t, svc.DeleteOrder(ctx, 1))

	f.querier.EXPECT().DeleteOrder(ctx, int64(2)).Return(int64(0), nil)
	assert.ErrorIs(t, svc.DeleteOrder(ctx, 2), services.ErrOrderNotFound)
}
