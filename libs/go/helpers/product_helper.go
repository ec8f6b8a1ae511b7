package helpers

import (
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/types/api/responses"
)

// ToProductResponse converts database product model to API response
func ToProductResponse(p db.Product) responses.ProductResponse {
	return responses.ProductResponse{
		ID:              p.ID,
		Title:           p.Title,
		Price:           NumericToDecimal(p.Price),
		Cost:            NumericToDecimal(p.Cost),
		Stock:           p.Stock,
		DeliveryDhaka:   NumericToDecimal(p.DeliveryDhaka),
		DeliveryOutside: NumericToDecimal(p.DeliveryOutside),
		UpdatedAt:       p.UpdatedAt.Time,
	}
}

// ToProductResponses converts a list of products
func ToProductResponses(products []db.Product) []responses.ProductResponse {
	out := make([]responses.ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p)
	}
	return out
}

// ToCouponResponse converts database coupon model to API response
func ToCouponResponse(c db.Coupon) responses.CouponResponse {
	return responses.CouponResponse{
		ID:        c.ID,
		Code:      c.Code,
		Discount:  NumericToDecimal(c.Discount),
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt.Time,
	}
}

// ToCouponResponses converts a list of coupons
func ToCouponResponses(coupons []db.Coupon) []responses.CouponResponse {
	out := make([]responses.CouponResponse, len(coupons))
	for i, c := range coupons {
		out[i] = ToCouponResponse(c)
	}
	return out
}

// ToReviewResponse converts database review model to API response
func ToReviewResponse(r db.Review) responses.ReviewResponse {
	return responses.ReviewResponse{
		ID:           r.ID,
		CustomerName: r.CustomerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		ImageURL:     NullableTextToString(r.ImageUrl),
		ProductID:    r.ProductID,
		IsApproved:   r.IsApproved,
		CreatedAt:    r.CreatedAt.Time,
	}
}

// ToReviewResponses converts a list of reviews
func ToReviewResponses(reviews []db.Review) []responses.ReviewResponse {
	out := make([]responses.ReviewResponse, len(reviews))
	for i, r := range reviews {
		out[i] = ToReviewResponse(r)
	}
	return out
}

// ToGalleryImageResponse converts database gallery model to API response
func ToGalleryImageResponse(g db.Gallery) responses.GalleryImageResponse {
	return responses.GalleryImageResponse{
		ID:        g.ID,
		ImageURL:  g.ImageUrl,
		Caption:   NullableTextToString(g.Caption),
		ProductID: g.ProductID,
		CreatedAt: g.CreatedAt.Time,
	}
}

// ToGalleryImageResponses converts a list of gallery images
func ToGalleryImageResponses(images []db.Gallery) []responses.GalleryImageResponse {
	out := make([]responses.GalleryImageResponse, len(images))
	for i, g := range images {
		out[i] = ToGalleryImageResponse(g)
	}
	return out
}
