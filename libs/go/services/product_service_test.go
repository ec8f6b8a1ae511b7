package services_test

import (
	"context"
	"errors"
	"testing"

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

func TestProductService_GetProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	svc := services.NewProductService(q)

	q.EXPECT().GetProduct(gomock.Any(), int64(1)).Return(db.Product{ID: 1, Title: "The Syndicate"}, nil)
	product, err := svc.GetProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "The Syndicate", product.Title)

	q.EXPECT().GetProduct(gomock.Any(), int64(9)).Return(db.Product{}, pgx.ErrNoRows)
	_, err = svc.GetProduct(context.Background(), 9)
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	assert.ErrorIs(t, err, services.ErrNotFound)

	q.EXPECT().GetFirstProduct(gomock.Any()).Return(db.Product{}, errors.New("conn reset"))
	_, err = svc.GetFirstProduct(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrNotFound)
}

func TestProductService_UpdateProduct(t *testing.T) {
	tests := []struct {
		name      string
		params    params.UpdateProductParams
		setupMock func(q *mocks.MockQuerier)
		wantErr   error
	}{
		{
			name:   "updates only the given fields",
			params: params.UpdateProductParams{ID: 1, Price: ptrDec(400), Stock: ptrInt32(25)},
			setupMock: func(q *mocks.MockQuerier) {
				q.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.UpdateProductParams) (db.Product, error) {
						assert.Equal(t, int64(1), arg.ID)
						assert.True(t, helpers.NumericToDecimal(arg.Price).Equal(decimal.NewFromInt(400)))
						assert.False(t, arg.Cost.Valid)
						assert.Equal(t, int32(25), arg.Stock.Int32)
						assert.False(t, arg.DeliveryDhaka.Valid)
						return db.Product{ID: 1, Price: arg.Price, Stock: 25}, nil
					})
			},
		},
		{
			name:      "negative price",
			params:    params.UpdateProductParams{ID: 1, Price: ptrDec(-1)},
			setupMock: func(*mocks.MockQuerier) {},
			wantErr:   services.ErrInvalidInput,
		},
		{
			name:      "negative stock",
			params:    params.UpdateProductParams{ID: 1, Stock: ptrInt32(-3)},
			setupMock: func(*mocks.MockQuerier) {},
			wantErr:   services.ErrInvalidInput,
		},
		{
			name:   "missing product",
			params: params.UpdateProductParams{ID: 7, Cost: ptrDec(10)},
			setupMock: func(q *mocks.MockQuerier) {
				q.EXPECT().UpdateProduct(gomock.Any(), gomock.Any()).Return(db.Product{}, pgx.ErrNoRows)
			},
			wantErr: services.ErrProductNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := mocks.NewMockQuerier(ctrl)
			tt.setupMock(q)

			product, err := services.NewProductService(q).UpdateProduct(context.Background(), tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, product)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.params.ID, product.ID)
		})
	}
}
