package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chokka/chokka-api/libs/go/constants"
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/helpers"
	"github.com/chokka/chokka-api/libs/go/logger"
	"github.com/chokka/chokka-api/libs/go/types/business"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const chartDays = 7

// DashboardService aggregates figures for the admin landing page
type DashboardService struct {
	queries db.Querier
	now     func() time.Time
	logger  *zap.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(queries db.Querier) *DashboardService {
	return NewDashboardServiceWithClock(queries, time.Now)
}

// NewDashboardServiceWithClock creates a dashboard service with a fixed
// notion of "now"
func NewDashboardServiceWithClock(queries db.Querier, now func() time.Time) *DashboardService {
	return &DashboardService{
		queries: queries,
		now:     now,
		logger:  logger.Log,
	}
}

// GetSummary returns today's activity plus stock and money totals. "Today"
// is the calendar day in the store's timezone.
func (s *DashboardService) GetSummary(ctx context.Context) (*business.DashboardSummary, error) {
	start := helpers.StartOfStoreDay(s.now())
	end := start.AddDate(0, 0, 1)

	var (
		today    []db.Order
		pending  int64
		lowStock []db.Inventory
		expenses db.GetExpenseTotalsRow
		payouts  decimal.Decimal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		today, err = s.queries.ListOrdersCreatedBetween(gctx, db.ListOrdersCreatedBetweenParams{
			StartTime: helpers.TimeToNullableTimestamptz(start),
			EndTime:   helpers.TimeToNullableTimestamptz(end),
		})
		if err != nil {
			return fmt.Errorf("failed to list today's orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if pending, err = s.queries.CountPendingOrders(gctx); err != nil {
			return fmt.Errorf("failed to count pending orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if lowStock, err = s.queries.ListLowStockItems(gctx); err != nil {
			return fmt.Errorf("failed to list low stock items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if expenses, err = s.queries.GetExpenseTotals(gctx); err != nil {
			return fmt.Errorf("failed to get expense totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		total, err := s.queries.GetPayoutTotal(gctx)
		if err != nil {
			return fmt.Errorf("failed to get payout total: %w", err)
		}
		payouts = helpers.NumericToDecimal(total)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &business.DashboardSummary{
		TodayOrders:   len(today),
		TodayRevenue:  decimal.Zero,
		PendingOrders: pending,
		LowStockCount: len(lowStock),
		LowStockItems: make([]business.LowStockItem, 0, len(lowStock)),
		TotalExpenses: helpers.NumericToDecimal(expenses.Total),
		TotalPayouts:  payouts,
	}
	for _, o := range today {
		if !IsCancelledStatus(o.Status) {
			summary.TodayRevenue = summary.TodayRevenue.Add(helpers.NumericToDecimal(o.TotalPrice))
		}
		if strings.EqualFold(o.Status, constants.OrderStatusDelivered) {
			summary.DeliveredToday++
		}
	}
	for _, item := range lowStock {
		summary.LowStockItems = append(summary.LowStockItems, business.LowStockItem{
			ID:           item.ID,
			Name:         item.Name,
			Category:     item.Category,
			Stock:        item.Stock,
			ReorderLevel: item.ReorderLevel,
		})
	}

	return summary, nil
}

// GetStats returns the profit overview and a seven day order chart ending
// today. Sales and cost use the product's current price and cost.
func (s *DashboardService) GetStats(ctx context.Context) (*business.DashboardStats, error) {
	rows, err := s.queries.ListOrderFinancials(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list order financials: %w", err)
	}
	expenses, err := s.queries.GetExpenseTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense totals: %w", err)
	}

	stats := &business.DashboardStats{
		TotalOrders: len(rows),
		TotalSales:  decimal.Zero,
		TotalCost:   decimal.Zero,
		Expenses:    helpers.NumericToDecimal(expenses.Total),
	}

	today := helpers.StartOfStoreDay(s.now())
	first := today.AddDate(0, 0, -(chartDays - 1))
	counts := make(map[string]int, chartDays)

	for _, r := range rows {
		switch {
		case IsPendingStatus(r.Status):
			stats.Pending++
		case !IsCancelledStatus(r.Status):
			stats.Shipped++
		}

		if !IsCancelledStatus(r.Status) {
			qty := decimal.NewFromInt32(r.Quantity)
			stats.TotalSales = stats.TotalSales.Add(helpers.NumericToDecimal(r.UnitPrice).Mul(qty))
			stats.TotalCost = stats.TotalCost.Add(helpers.NumericToDecimal(r.UnitCost).Mul(qty))
		}

		if r.CreatedAt.Valid {
			created := r.CreatedAt.Time.In(helpers.StoreLocation)
			if !created.Before(first) {
				counts[created.Format(time.DateOnly)]++
			}
		}
	}

	stats.GrossProfit = stats.TotalSales.Sub(stats.TotalCost)
	stats.NetProfit = stats.GrossProfit.Sub(stats.Expenses)

	stats.Chart = make([]business.DailyOrders, 0, chartDays)
	for i := 0; i < chartDays; i++ {
		day := first.AddDate(0, 0, i).Format(time.DateOnly)
		stats.Chart = append(stats.Chart, business.DailyOrders{Date: day, Orders: counts[day]})
	}

	return stats, nil
}
