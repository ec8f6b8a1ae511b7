package processor

import (
	"context"
	"fmt"

	"github.com/chokka/chokka-api/libs/go/interfaces"
	"github.com/chokka/chokka-api/libs/go/types/business"

	"go.uber.org/zap"
)

// CourierSyncProcessor reconciles open shipments with the courier on a schedule
type CourierSyncProcessor struct {
	courier interfaces.CourierService
	logger  *zap.Logger
}

// NewCourierSyncProcessor creates a new courier sync processor
func NewCourierSyncProcessor(courier interfaces.CourierService, logger *zap.Logger) *CourierSyncProcessor {
	return &CourierSyncProcessor{
		courier: courier,
		logger:  logger,
	}
}

// HandleRequest runs one sync pass. Per-order failures are logged and
// reported in the summary; only a failure to run the pass is an error.
func (p *CourierSyncProcessor) HandleRequest(ctx context.Context) (*business.SyncSummary, error) {
	p.logger.Info("Starting courier status sync")

	summary, err := p.courier.SyncAll(ctx)
	if err != nil {
		p.logger.Error("Courier sync failed", zap.Error(err))
		return nil, fmt.Errorf("error syncing courier statuses: %w", err)
	}

	for _, e := range summary.Errors {
		p.logger.Warn("Order could not be synced",
			zap.Int64("order_id", e.OrderID),
			zap.String("error", e.Error))
	}

	p.logger.Info("Courier sync results",
		zap.Int("total", summary.Total),
		zap.Int("updated", summary.Updated),
		zap.Int("failed", len(summary.Errors)))

	return summary, nil
}
