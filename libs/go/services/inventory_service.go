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

const defaultInventoryCategory = "general"

// InventoryService handles stock of packaging and game components
type InventoryService struct {
	queries db.Querier
	tx      helpers.TxRunner
	logger  *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(queries db.Querier, tx helpers.TxRunner) *InventoryService {
	return &InventoryService{
		queries: queries,
		tx:      tx,
		logger:  logger.Log,
	}
}

// ListItems returns inventory ordered by category then name
func (s *InventoryService) ListItems(ctx context.Context) ([]db.Inventory, error) {
	items, err := s.queries.ListInventoryItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	return items, nil
}

// CreateItem adds an inventory row. Rows tied to a product and item type
// take part in checkout deductions.
func (s *InventoryService) CreateItem(ctx context.Context, p params.CreateInventoryItemParams) (*db.Inventory, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, invalidf("name is required")
	}
	if p.Stock < 0 {
		return nil, invalidf("stock must not be negative")
	}
	if p.UnitCost != nil && p.UnitCost.IsNegative() {
		return nil, invalidf("unit_cost must not be negative")
	}
	category := strings.TrimSpace(p.Category)
	if category == "" {
		category = defaultInventoryCategory
	}
	reorder := constants.DefaultReorderLevel
	if p.ReorderLevel != nil {
		if *p.ReorderLevel < 0 {
			return nil, invalidf("reorder_level must not be negative")
		}
		reorder = *p.ReorderLevel
	}

	arg := db.CreateInventoryItemParams{
		Name:         name,
		Category:     category,
		ItemType:     helpers.StringToNullableText(strings.TrimSpace(p.ItemType)),
		Stock:        p.Stock,
		ReorderLevel: reorder,
		UnitCost:     helpers.DecimalPtrToNumeric(p.UnitCost),
	}
	if p.ProductID != nil {
		arg.ProductID = helpers.Int64ToNullableInt8(*p.ProductID)
	}

	item, err := s.queries.CreateInventoryItem(ctx, arg)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, invalidf("an item for this product and type already exists")
		}
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.logger.Info("Inventory item created",
		zap.Int64("item_id", item.ID),
		zap.String("name", item.Name))
	return &item, nil
}

// UpdateItem applies a partial update
func (s *InventoryService) UpdateItem(ctx context.Context, p params.UpdateInventoryItemParams) (*db.Inventory, error) {
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		return nil, invalidf("name must not be empty")
	}
	if p.Stock != nil && *p.Stock < 0 {
		return nil, invalidf("stock must not be negative")
	}
	if p.ReorderLevel != nil && *p.ReorderLevel < 0 {
		return nil, invalidf("reorder_level must not be negative")
	}
	if p.UnitCost != nil && p.UnitCost.IsNegative() {
		return nil, invalidf("unit_cost must not be negative")
	}

	item, err := s.queries.UpdateInventoryItem(ctx, db.UpdateInventoryItemParams{
		ID:           p.ID,
		Name:         helpers.StringPtrToNullableText(p.Name),
		Category:     helpers.StringPtrToNullableText(p.Category),
		Stock:        helpers.Int32PtrToNullableInt4(p.Stock),
		ReorderLevel: helpers.Int32PtrToNullableInt4(p.ReorderLevel),
		UnitCost:     helpers.DecimalPtrToNumeric(p.UnitCost),
	})
	if err != nil {
		return nil, notFound(err, ErrInventoryNotFound, "failed to update inventory item")
	}
	return &item, nil
}

// DeleteItem removes an inventory row
func (s *InventoryService) DeleteItem(ctx context.Context, id int64) error {
	rows, err := s.queries.DeleteInventoryItem(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if rows == 0 {
		return ErrInventoryNotFound
	}
	return nil
}

// ListLowStock returns rows whose stock is at or below the reorder level
func (s *InventoryService) ListLowStock(ctx context.Context) ([]db.Inventory, error) {
	items, err := s.queries.ListLowStockItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}
	return items, nil
}

// Restock adds stock to several rows atomically. Either every row is
// updated or none is.
func (s *InventoryService) Restock(ctx context.Context, items []params.RestockItem) ([]db.Inventory, error) {
	if len(items) == 0 {
		return nil, invalidf("items are required")
	}
	for _, it := range items {
		if it.ID <= 0 {
			return nil, invalidf("item id must be positive")
		}
		if it.AddQuantity <= 0 {
			return nil, invalidf("add_quantity for item %d must be greater than zero", it.ID)
		}
	}

	updated := make([]db.Inventory, 0, len(items))
	err := s.tx.RunInTx(ctx, func(q db.Querier) error {
		updated = updated[:0]
		for _, it := range items {
			row, err := q.RestockInventoryItem(ctx, db.RestockInventoryItemParams{
				ID:          it.ID,
				AddQuantity: it.AddQuantity,
			})
			if err != nil {
				return notFound(err, fmt.Errorf("%w: id %d", ErrInventoryNotFound, it.ID), "failed to restock item")
			}
			updated = append(updated, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Inventory restocked", zap.Int("items", len(updated)))
	return updated, nil
}
