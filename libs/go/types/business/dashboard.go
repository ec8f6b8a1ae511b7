package business

import "github.com/shopspring/decimal"

// LowStockItem is an inventory row at or below its reorder level
type LowStockItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Stock        int32  `json:"stock"`
	ReorderLevel int32  `json:"reorder_level"`
}

// DashboardSummary is the admin landing page
type DashboardSummary struct {
	TodayOrders    int             `json:"todayOrders"`
	TodayRevenue   decimal.Decimal `json:"todayRevenue"`
	PendingOrders  int64           `json:"pendingOrders"`
	DeliveredToday int             `json:"deliveredToday"`
	LowStockCount  int             `json:"lowStockCount"`
	LowStockItems  []LowStockItem  `json:"lowStockItems"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	TotalPayouts   decimal.Decimal `json:"totalPayouts"`
}

// DailyOrders is one point of the seven day chart
type DailyOrders struct {
	Date   string `json:"date"`
	Orders int    `json:"orders"`
}

// DashboardStats is the profit overview
type DashboardStats struct {
	TotalOrders int             `json:"totalOrders"`
	Pending     int             `json:"pending"`
	Shipped     int             `json:"shipped"`
	TotalSales  decimal.Decimal `json:"totalSales"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	GrossProfit decimal.Decimal `json:"grossProfit"`
	Expenses    decimal.Decimal `json:"expenses"`
	NetProfit   decimal.Decimal `json:"netProfit"`
	Chart       []DailyOrders   `json:"chart"`
}

// ExpenseTotals groups expense amounts by category
type ExpenseTotals struct {
	Print         decimal.Decimal `json:"print"`
	Cutting       decimal.Decimal `json:"cutting"`
	Packaging     decimal.Decimal `json:"packaging"`
	Miscellaneous decimal.Decimal `json:"miscellaneous"`
	Total         decimal.Decimal `json:"total"`
}
