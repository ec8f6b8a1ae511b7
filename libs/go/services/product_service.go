package services

import (
	"context"
	"fmt"

	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/types/api/params"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductService handles business logic for product operations
type ProductService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(queries db.Querier) *ProductService {
	return &ProductService{
		queries: queries,
		logger:  logger.Log,
	}
}

// ListProducts returns every product ordered by id
func (s *ProductService) ListProducts(ctx context.Context) ([]db.Product, error) {
	products, err := s.queries.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id int64) (*db.Product, error) {
	product, err := s.queries.GetProduct(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound, "failed to get product")
	}
	return &product, nil
}

// GetFirstProduct returns the lowest-id product, used by the storefront
// landing page.
func (s *ProductService) GetFirstProduct(ctx context.Context) (*db.Product, error) {
	product, err := s.queries.GetFirstProduct(ctx)
	if err != nil {
		return nil, notFound(err, ErrProductNotFound, "failed to get product")
	}
	return &product, nil
}

// UpdateProduct applies a partial update. Amounts and stock may not be
// negative.
func (s *ProductService) UpdateProduct(ctx context.Context, p params.UpdateProductParams) (*db.Product, error) {
	amounts := map[string]*decimal.Decimal{
		"price":            p.Price,
		"cost":             p.Cost,
		"delivery_dhaka":   p.DeliveryDhaka,
		"delivery_outside": p.DeliveryOutside,
	}
	for field, v := range amounts {
		if v != nil && v.IsNegative() {
			return nil, invalidf("%s must not be negative", field)
		}
	}
	if p.Stock != nil && *p.Stock < 0 {
		return nil, invalidf("stock must not be negative")
	}

	product, err := s.queries.UpdateProduct(ctx, db.UpdateProductParams{
		ID:              p.ID,
		Price:           helpers.DecimalPtrToNumeric(p.Price),
		Cost:            helpers.DecimalPtrToNumeric(p.Cost),
		Stock:           helpers.Int32PtrToNullableInt4(p.Stock),
		DeliveryDhaka:   helpers.DecimalPtrToNumeric(p.DeliveryDhaka),
		DeliveryOutside: helpers.DecimalPtrToNumeric(p.DeliveryOutside),
	})
	if err != nil {
		return nil, notFound(err, ErrProductNotFound, "failed to update product")
	}

	s.logger.Info("Product updated", zap.Int64("product_id", product.ID))
	return &product, nil
}
