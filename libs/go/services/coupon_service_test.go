package services_test

import (
	"context"
	"testing"

	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/mocks"
	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCouponService_VerifyCoupon(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		setupMock func(q *mocks.MockQuerier)
		want      int64
		wantErr   error
		wantMsg   string
	}{
		{
			name: "active coupon",
			code: " save50 ",
			setupMock: func(q *mocks.MockQuerier) {
				q.EXPECT().GetCouponByCode(gomock.Any(), "SAVE50").
					Return(db.Coupon{Code: "SAVE50", Discount: num(50), IsActive: true}, nil)
			},
			want: 50,
		},
		{
			name: "unknown coupon",
			code: "nope",
			setupMock: func(q *mocks.MockQuerier) {
				q.EXPECT().GetCouponByCode(gomock.Any(), "NOPE").Return(db.Coupon{}, pgx.ErrNoRows)
			},
			wantErr: services.ErrInvalidCoupon,
			wantMsg: "Invalid Coupon",
		},
		{
			name: "inactive coupon",
			code: "OLD",
			setupMock: func(q *mocks.MockQuerier) {
				q.EXPECT().GetCouponByCode(gomock.Any(), "OLD").
					Return(db.Coupon{Code: "OLD", Discount: num(20), IsActive: false}, nil)
			},
			wantErr: services.ErrCouponExpired,
			wantMsg: "Coupon Expired",
		},
		{
			name:      "blank code",
			code:      "   ",
			setupMock: func(*mocks.MockQuerier) {},
			wantErr:   services.ErrInvalidCoupon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := mocks.NewMockQuerier(ctrl)
			tt.setupMock(q)

			got, err := services.NewCouponService(q).VerifyCoupon(context.Background(), tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, services.ErrInvalidInput)
				if tt.wantMsg != "" {
					assert.Contains(t, err.Error(), tt.wantMsg)
				}
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)))
		})
	}
}

func TestCouponService_CreateCoupon(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	svc := services.NewCouponService(q)

	q.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateCouponParams) (db.Coupon, error) {
			assert.Equal(t, "EID25", arg.Code)
			assert.True(t, arg.IsActive)
			return db.Coupon{ID: 1, Code: arg.Code, Discount: arg.Discount, IsActive: arg.IsActive}, nil
		})
	coupon, err := svc.CreateCoupon(context.Background(), params.CreateCouponParams{
		Code: "eid25", Discount: decimal.NewFromInt(25), IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "EID25", coupon.Code)

	q.EXPECT().CreateCoupon(gomock.Any(), gomock.Any()).
		Return(db.Coupon{}, &pgconn.PgError{Code: "23505"})
	_, err = svc.CreateCoupon(context.Background(), params.CreateCouponParams{Code: "EID25"})
	assert.ErrorIs(t, err, services.ErrDuplicateCoupon)

	_, err = svc.CreateCoupon(context.Background(), params.CreateCouponParams{Code: " "})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.CreateCoupon(context.Background(), params.CreateCouponParams{Code: "X", Discount: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestCouponService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	svc := services.NewCouponService(q)

	q.EXPECT().UpdateCoupon(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateCouponParams) (db.Coupon, error) {
			assert.Equal(t, "NEWCODE", arg.Code.String)
			assert.True(t, arg.IsActive.Valid)
			assert.False(t, arg.IsActive.Bool)
			assert.False(t, arg.Discount.Valid)
			return db.Coupon{ID: arg.ID, Code: arg.Code.String}, nil
		})
	coupon, err := svc.UpdateCoupon(context.Background(), params.UpdateCouponParams{
		ID: 4, Code: ptrString("newcode"), IsActive: ptrBool(false),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), coupon.ID)

	q.EXPECT().DeleteCoupon(gomock.Any(), int64(4)).Return(int64(1), nil)
	require.NoError(t, svc.DeleteCoupon(context.Background(), 4))

	q.EXPECT().DeleteCoupon(gomock.Any(), int64(5)).Return(int64(0), nil)
	assert.ErrorIs(t, svc.DeleteCoupon(context.Background(), 5), services.ErrCouponNotFound)
}
