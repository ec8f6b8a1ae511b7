package helpers

import (
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/types/api/responses"
)

// ToInventoryItemResponse converts database inventory model to API response
func ToInventoryItemResponse(i db.Inventory) responses.InventoryItemResponse {
	resp := responses.InventoryItemResponse{
		ID:           i.ID,
		Name:         i.Name,
		Category:     i.Category,
		ItemType:     NullableTextToString(i.ItemType),
		Stock:        i.Stock,
		ReorderLevel: i.ReorderLevel,
		UpdatedAt:    i.UpdatedAt.Time,
	}
	if i.ProductID.Valid {
		id := i.ProductID.Int64
		resp.ProductID = &id
	}
	if i.UnitCost.Valid {
		cost := NumericToDecimal(i.UnitCost)
		resp.UnitCost = &cost
	}
	return resp
}

// ToInventoryItemResponses converts a list of inventory rows
func ToInventoryItemResponses(items []db.Inventory) []responses.InventoryItemResponse {
	out := make([]responses.InventoryItemResponse, len(items))
	for i, item := range items {
		out[i] = ToInventoryItemResponse(item)
	}
	return out
}

// ToExpenseResponse converts database expense model to API response
func ToExpenseResponse(e db.Expense) responses.ExpenseResponse {
	return responses.ExpenseResponse{
		ID:          e.ID,
		Date:        DateToString(e.Date),
		Category:    e.Category,
		Description: NullableTextToString(e.Description),
		Amount:      NumericToDecimal(e.Amount),
		CreatedAt:   e.CreatedAt.Time,
	}
}

// ToExpenseResponses converts a list of expenses
func ToExpenseResponses(expenses []db.Expense) []responses.ExpenseResponse {
	out := make([]responses.ExpenseResponse, len(expenses))
	for i, e := range expenses {
		out[i] = ToExpenseResponse(e)
	}
	return out
}

// ToPayoutResponse converts database payout model to API response
func ToPayoutResponse(p db.Payout) responses.PayoutResponse {
	return responses.PayoutResponse{
		ID:        p.ID,
		Date:      DateToString(p.Date),
		InvoiceNo: NullableTextToString(p.InvoiceNo),
		Amount:    NumericToDecimal(p.Amount),
		Note:      NullableTextToString(p.Note),
		CreatedAt: p.CreatedAt.Time,
	}
}

// ToPayoutResponses converts a list of payouts
func ToPayoutResponses(payouts []db.Payout) []responses.PayoutResponse {
	out := make([]responses.PayoutResponse, len(payouts))
	for i, p := range payouts {
		out[i] = ToPayoutResponse(p)
	}
	return out
}
