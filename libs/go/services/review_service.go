package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/chokka/chokka-api/libs/go/constants"
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"go.uber.org/zap"
)

const (
	minRating int32 = 1
	maxRating int32 = 5
)

// ReviewService handles customer reviews
type ReviewService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewReviewService creates a new review service
func NewReviewService(queries db.Querier) *ReviewService {
	return &ReviewService{
		queries: queries,
		logger:  logger.Log,
	}
}

// ListReviews returns reviews newest first, optionally for one product
func (s *ReviewService) ListReviews(ctx context.Context, productID *int64) ([]db.Review, error) {
	var (
		reviews []db.Review
		err     error
	)
	if productID != nil {
		reviews, err = s.queries.ListReviewsByProduct(ctx, *productID)
	} else {
		reviews, err = s.queries.ListReviews(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview stores an approved review. The product defaults to the
// first game.
func (s *ReviewService) CreateReview(ctx context.Context, p params.CreateReviewParams) (*db.Review, error) {
	name := strings.TrimSpace(p.CustomerName)
	if name == "" {
		return nil, invalidf("customer_name is required")
	}
	if p.Rating < minRating || p.Rating > maxRating {
		return nil, invalidf("rating must be between %d and %d", minRating, maxRating)
	}
	productID := p.ProductID
	if productID <= 0 {
		productID = constants.ProductSyndicate
	}

	review, err := s.queries.CreateReview(ctx, db.CreateReviewParams{
		CustomerName: name,
		Rating:       p.Rating,
		Comment:      strings.TrimSpace(p.Comment),
		ImageUrl:     helpers.StringToNullableText(strings.TrimSpace(p.ImageURL)),
		ProductID:    productID,
		IsApproved:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.logger.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("product_id", review.ProductID))
	return &review, nil
}

// DeleteReview removes a review
func (s *ReviewService) DeleteReview(ctx context.Context, id int64) error {
	rows, err := s.queries.DeleteReview(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if rows == 0 {
		return ErrReviewNotFound
	}
	return nil
}
