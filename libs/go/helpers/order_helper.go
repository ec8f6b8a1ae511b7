package helpers

import (
	"github.com/chokka/chokka-api/libs/go/db"
	"github.com/chokka/chokka-api/libs/go/types/api/responses"
)

// ToOrderResponse converts database order model to API response.
// productName resolves the display name of the ordered product.
func ToOrderResponse(o db.Order, productName func(int64) string) responses.OrderResponse {
	resp := responses.OrderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		CustomerEmail:   NullableTextToString(o.CustomerEmail),
		City:            o.City,
		ProductID:       o.ProductID,
		Quantity:        o.Quantity,
		Subtotal:        NumericToDecimal(o.Subtotal),
		ShippingFee:     NumericToDecimal(o.ShippingFee),
		Discount:        NumericToDecimal(o.Discount),
		TotalPrice:      NumericToDecimal(o.TotalPrice),
		CouponCode:      NullableTextToString(o.CouponCode),
		Note:            NullableTextToString(o.Note),
		Status:          o.Status,
		TrackingCode:    NullableTextToString(o.TrackingCode),
		ConsignmentID:   NullableTextToString(o.ConsignmentID),
		CreatedAt:       o.CreatedAt.Time,
		UpdatedAt:       o.UpdatedAt.Time,
	}
	if productName != nil {
		resp.ProductName = productName(o.ProductID)
	}
	return resp
}

// ToOrderResponses converts a list of orders
func ToOrderResponses(orders []db.Order, productName func(int64) string) []responses.OrderResponse {
	out := make([]responses.OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = ToOrderResponse(o, productName)
	}
	return out
}
