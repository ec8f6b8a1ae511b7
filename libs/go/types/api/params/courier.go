package params

import "github.com/shopspring/decimal"

// CreateShipmentParams creates one Steadfast consignment. When OrderID is
// set the order row is updated with the tracking information.
type CreateShipmentParams struct {
	OrderID          *int64
	Invoice          string
	RecipientName    string
	RecipientPhone   string
	RecipientAddress string
	CODAmount        decimal.Decimal
	Note             string
}
