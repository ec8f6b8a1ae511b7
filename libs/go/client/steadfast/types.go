package steadfast

import (
	"github.com/shopspring/decimal"
)

// Amount is a decimal that always encodes as a bare JSON number
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps d
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// MarshalJSON implements json.Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// CreateOrderRequest is a single consignment as accepted by /create_order
// and, inside the bulk payload, by /create_order/bulk-order.
type CreateOrderRequest struct {
	Invoice          string `json:"invoice"`
	RecipientName    string `json:"recipient_name"`
	RecipientPhone   string `json:"recipient_phone"`
	RecipientAddress string `json:"recipient_address"`
	CODAmount        Amount `json:"cod_amount"`
	Note             string `json:"note,omitempty"`
}

// Consignment is the courier's record of a created parcel
type Consignment struct {
	ConsignmentID    int64           `json:"consignment_id"`
	Invoice          string          `json:"invoice"`
	TrackingCode     string          `json:"tracking_code"`
	RecipientName    string          `json:"recipient_name"`
	RecipientPhone   string          `json:"recipient_phone"`
	RecipientAddress string          `json:"recipient_address"`
	CODAmount        decimal.Decimal `json:"cod_amount"`
	Status           string          `json:"status"`
	Note             string          `json:"note"`
	CreatedAt        string          `json:"created_at"`
	UpdatedAt        string          `json:"updated_at"`
}

// CreateOrderResponse is returned by /create_order
type CreateOrderResponse struct {
	Status      int          `json:"status"`
	Message     string       `json:"message"`
	Consignment *Consignment `json:"consignment,omitempty"`
}

// BulkOrderResult is one line of a bulk order response
type BulkOrderResult struct {
	Invoice          string          `json:"invoice"`
	RecipientName    string          `json:"recipient_name"`
	RecipientPhone   string          `json:"recipient_phone"`
	RecipientAddress string          `json:"recipient_address"`
	CODAmount        decimal.Decimal `json:"cod_amount"`
	Note             string          `json:"note"`
	ConsignmentID    int64           `json:"consignment_id"`
	TrackingCode     string          `json:"tracking_code"`
	Status           string          `json:"status"`
	Error            string          `json:"error,omitempty"`
}

// BulkOrderResponse normalises the two shapes the bulk endpoint answers
// with: a bare array of results, or an object with status and data.
type BulkOrderResponse struct {
	Status   int               `json:"status"`
	Message  string            `json:"message,omitempty"`
	Results  []BulkOrderResult `json:"data"`
	IsArray  bool              `json:"-"`
	Accepted bool              `json:"-"`
}

// StatusResponse is returned by /status_by_trackingcode/{code}
type StatusResponse struct {
	Status         int    `json:"status"`
	DeliveryStatus string `json:"delivery_status"`
}
