package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/mocks"
	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPayoutService_CreatePayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	svc := services.NewPayoutService(q)

	q.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreatePayoutParams) (db.Payout, error) {
			assert.Equal(t, "2024-06-01", arg.Date.Time.Format(time.DateOnly))
			assert.Equal(t, "SF-1001", arg.InvoiceNo.String)
			assert.False(t, arg.Note.Valid)
			return db.Payout{ID: 3, Date: arg.Date, InvoiceNo: arg.InvoiceNo, Amount: arg.Amount}, nil
		})

	payout, err := svc.CreatePayout(context.Background(), params.CreatePayoutParams{
		Date:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		InvoiceNo: " SF-1001 ",
		Amount:    decimal.NewFromInt(5400),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), payout.ID)

	_, err = svc.CreatePayout(context.Background(), params.CreatePayoutParams{Amount: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestPayoutService_GetTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	svc := services.NewPayoutService(q)

	q.EXPECT().GetPayoutTotal(gomock.Any()).Return(num(12650), nil)
	total, err := svc.GetTotal(context.Background())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(12650)))

	q.EXPECT().GetPayoutTotal(gomock.Any()).Return(pgtype.Numeric{}, nil)
	total, err = svc.GetTotal(context.Background())
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	q.EXPECT().GetPayoutTotal(gomock.Any()).Return(pgtype.Numeric{}, errors.New("timeout"))
	_, err = svc.GetTotal(context.Background())
	require.Error(t, err)
}

func TestPayoutService_UpdateAndDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	svc := services.NewPayoutService(q)

	q.EXPECT().UpdatePayout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdatePayoutParams) (db.Payout, error) {
			assert.Equal(t, "late", arg.Note.String)
			assert.False(t, arg.Amount.Valid)
			return db.Payout{}, pgx.ErrNoRows
		})
	_, err := svc.UpdatePayout(context.Background(), params.UpdatePayoutParams{ID: 8, Note: ptrString("late")})
	assert.ErrorIs(t, err, services.ErrPayoutNotFound)

	q.EXPECT().DeletePayout(gomock.Any(), int64(8)).Return(int64(1), nil)
	require.NoError(t, svc.DeletePayout(context.Background(), 8))
}
