package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/chokka/chokka-api/libs/go/client/storage"
	"github.com/chokka/chokka-api/libs/go/constants"
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"go.uber.org/zap"
)

// MaxImageSize is the largest gallery upload accepted
const MaxImageSize int64 = 10 << 20

// GalleryService handles gallery images
type GalleryService struct {
	queries db.Querier
	storage interfaces.ObjectStorage
	logger  *zap.Logger
}

// NewGalleryService creates a new gallery service. storage may be nil, in
// which case uploads are rejected.
func NewGalleryService(queries db.Querier, store interfaces.ObjectStorage) *GalleryService {
	return &GalleryService{
		queries: queries,
		storage: store,
		logger:  logger.Log,
	}
}

// ListImages returns gallery images newest first, optionally for one product
func (s *GalleryService) ListImages(ctx context.Context, productID *int64) ([]db.Gallery, error) {
	var (
		images []db.Gallery
		err    error
	)
	if productID != nil {
		images, err = s.queries.ListGalleryImagesByProduct(ctx, *productID)
	} else {
		images, err = s.queries.ListGalleryImages(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}

// CreateImage registers an image that is already hosted
func (s *GalleryService) CreateImage(ctx context.Context, p params.CreateGalleryImageParams) (*db.Gallery, error) {
	url := strings.TrimSpace(p.ImageURL)
	if url == "" {
		return nil, invalidf("image_url is required")
	}
	return s.insert(ctx, url, p.Caption, p.ProductID)
}

// UploadImage stores the file in object storage and registers its public
// URL. The stored object is removed again if the row cannot be written.
func (s *GalleryService) UploadImage(ctx context.Context, p params.UploadGalleryImageParams) (*db.Gallery, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("image storage is not configured")
	}
	if p.Body == nil {
		return nil, invalidf("file is required")
	}
	if _, ok := storage.AllowedImageTypes[p.ContentType]; !ok {
		return nil, invalidf("unsupported image type %q", p.ContentType)
	}
	if p.Size > MaxImageSize {
		return nil, invalidf("image exceeds %d bytes", MaxImageSize)
	}

	stored, err := s.storage.Put(ctx, p.Body, storage.PutInput{
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	image, err := s.insert(ctx, stored.URL, p.Caption, p.ProductID)
	if err != nil {
		if delErr := s.storage.Delete(ctx, stored.Key); delErr != nil {
			s.logger.Warn("Failed to remove orphaned upload",
				zap.String("key", stored.Key),
				zap.Error(delErr))
		}
		return nil, err
	}

	s.logger.Info("Gallery image uploaded",
		zap.Int64("image_id", image.ID),
		zap.String("key", stored.Key))
	return image, nil
}

// DeleteImage removes the gallery row. Stored objects are left in place.
func (s *GalleryService) DeleteImage(ctx context.Context, id int64) error {
	rows, err := s.queries.DeleteGalleryImage(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	if rows == 0 {
		return ErrImageNotFound
	}
	return nil
}

func (s *GalleryService) insert(ctx context.Context, url, caption string, productID int64) (*db.Gallery, error) {
	if productID <= 0 {
		productID = constants.ProductSyndicate
	}
	image, err := s.queries.CreateGalleryImage(ctx, db.CreateGalleryImageParams{
		ImageUrl:  url,
		Caption:   helpers.StringToNullableText(strings.TrimSpace(caption)),
		ProductID: productID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery image: %w", err)
	}
	return &image, nil
}
