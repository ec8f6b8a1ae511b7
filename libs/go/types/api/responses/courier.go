package responses

import "github.com/chokka/chokka-api/libs/go/types/business"

// DeliveryStatusResponse carries the courier's raw delivery status
type DeliveryStatusResponse struct {
	DeliveryStatus string `json:"delivery_status"`
}

// SyncOrderResponse is the result of syncing a single order
type SyncOrderResponse struct {
	Success bool `json:"success"`
	business.SyncResult
}

// SyncAllResponse is the result of syncing every open shipment
type SyncAllResponse struct {
	Success bool `json:"success"`
	business.SyncSummary
}

// BulkShipmentResponse is the result of a bulk consignment request
type BulkShipmentResponse struct {
	Success bool `json:"success"`
	business.BulkShipmentResult
}
