package requests

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CreateShipmentRequest represents one Steadfast consignment. The admin panel
// posts name, phone, address and amount; those are accepted as aliases of the
// recipient fields.
type CreateShipmentRequest struct {
	OrderID          *int64           `json:"order_id,omitempty"`
	Invoice          string           `json:"invoice" binding:"required"`
	RecipientName    string           `json:"recipient_name,omitempty"`
	RecipientPhone   string           `json:"recipient_phone,omitempty"`
	RecipientAddress string           `json:"recipient_address,omitempty"`
	CODAmount        *decimal.Decimal `json:"cod_amount,omitempty"`
	Note             string           `json:"note,omitempty"`

	Name    string           `json:"name,omitempty"`
	Phone   string           `json:"phone,omitempty"`
	Address string           `json:"address,omitempty"`
	Amount  *decimal.Decimal `json:"amount,omitempty"`
}

// Normalize fills empty recipient fields from their aliases
func (r *CreateShipmentRequest) Normalize() {
	if r.RecipientName == "" {
		r.RecipientName = r.Name
	}
	if r.RecipientPhone == "" {
		r.RecipientPhone = r.Phone
	}
	if r.RecipientAddress == "" {
		r.RecipientAddress = r.Address
	}
	if r.CODAmount == nil {
		r.CODAmount = r.Amount
	}
}

// Validate reports the first recipient field missing after Normalize
func (r *CreateShipmentRequest) Validate() error {
	switch {
	case r.RecipientName == "":
		return errors.New("recipient_name (or name) is required")
	case r.RecipientPhone == "":
		return errors.New("recipient_phone (or phone) is required")
	case r.RecipientAddress == "":
		return errors.New("recipient_address (or address) is required")
	case r.CODAmount == nil:
		return errors.New("cod_amount (or amount) is required")
	}
	return nil
}

// BulkShipmentRequest lists the orders to send to the courier at once
type BulkShipmentRequest struct {
	OrderIDs []int64 `json:"order_ids" binding:"required,min=1,max=500"`
}
