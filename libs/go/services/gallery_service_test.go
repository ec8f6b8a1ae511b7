package services_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chokka/chokka-api/libs/go/client/storage"
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/mocks"
	"github.com/chokka/chokka-api/libs/go/services"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func uploadParams() params.UploadGalleryImageParams {
	return params.UploadGalleryImageParams{
		Filename:    "table.png",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("\x89PNG"),
		Caption:     " Game night ",
		ProductID:   2,
	}
}

func TestGalleryService_UploadImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	store := mocks.NewMockObjectStorage(ctrl)
	svc := services.NewGalleryService(q, store)

	store.EXPECT().Put(gomock.Any(), gomock.Any(), storage.PutInput{Filename: "table.png", ContentType: "image/png", Size: 4}).
		DoAndReturn(func(_ context.Context, r io.Reader, _ storage.PutInput) (storage.PutResult, error) {
			body, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, "\x89PNG", string(body))
			return storage.PutResult{Key: "gallery/abc.png", URL: "https://cdn.example/gallery/abc.png"}, nil
		})
	q.EXPECT().CreateGalleryImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateGalleryImageParams) (db.Gallery, error) {
			assert.Equal(t, "https://cdn.example/gallery/abc.png", arg.ImageUrl)
			assert.Equal(t, "Game night", arg.Caption.String)
			assert.Equal(t, int64(2), arg.ProductID)
			return db.Gallery{ID: 5, ImageUrl: arg.ImageUrl, ProductID: arg.ProductID}, nil
		})

	image, err := svc.UploadImage(context.Background(), uploadParams())
	require.NoError(t, err)
	assert.Equal(t, int64(5), image.ID)
}

func TestGalleryService_UploadImage_RemovesOrphanOnInsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	store := mocks.NewMockObjectStorage(ctrl)
	svc := services.NewGalleryService(q, store)

	store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(storage.PutResult{Key: "gallery/abc.png", URL: "https://cdn.example/gallery/abc.png"}, nil)
	q.EXPECT().CreateGalleryImage(gomock.Any(), gomock.Any()).Return(db.Gallery{}, errors.New("insert failed"))
	store.EXPECT().Delete(gomock.Any(), "gallery/abc.png").Return(nil)

	_, err := svc.UploadImage(context.Background(), uploadParams())
	require.Error(t, err)
}

func TestGalleryService_UploadImage_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *params.UploadGalleryImageParams)
	}{
		{name: "unsupported type", mutate: func(p *params.UploadGalleryImageParams) { p.ContentType = "application/pdf" }},
		{name: "too large", mutate: func(p *params.UploadGalleryImageParams) { p.Size = services.MaxImageSize + 1 }},
		{name: "no body", mutate: func(p *params.UploadGalleryImageParams) { p.Body = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := services.NewGalleryService(mocks.NewMockQuerier(ctrl), mocks.NewMockObjectStorage(ctrl))

			p := uploadParams()
			tt.mutate(&p)
			_, err := svc.UploadImage(context.Background(), p)
			assert.ErrorIs(t, err, services.ErrInvalidInput)
		})
	}
}

func TestGalleryService_CreateImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	svc := services.NewGalleryService(q, nil)

	q.EXPECT().CreateGalleryImage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateGalleryImageParams) (db.Gallery, error) {
			assert.Equal(t, int64(1), arg.ProductID)
			assert.False(t, arg.Caption.Valid)
			return db.Gallery{ID: 1, ImageUrl: arg.ImageUrl, ProductID: 1}, nil
		})
	_, err := svc.CreateImage(context.Background(), params.CreateGalleryImageParams{ImageURL: "https://img/x.jpg"})
	require.NoError(t, err)

	_, err = svc.CreateImage(context.Background(), params.CreateGalleryImageParams{})
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, err = svc.UploadImage(context.Background(), uploadParams())
	require.Error(t, err)

	q.EXPECT().DeleteGalleryImage(gomock.Any(), int64(9)).Return(int64(0), nil)
	assert.ErrorIs(t, svc.DeleteImage(context.Background(), 9), services.ErrImageNotFound)
}
