package business

// SyncResult reports the outcome of reconciling one order with the courier
type SyncResult struct {
	OrderID        int64  `json:"order_id"`
	OldStatus      string `json:"old_status"`
	NewStatus      string `json:"new_status"`
	DeliveryStatus string `json:"delivery_status"`
	Updated        bool   `json:"updated"`
}

// SyncError names an order whose status could not be synced
type SyncError struct {
	OrderID int64  `json:"order_id"`
	Error   string `json:"error"`
}

// SyncSummary is the result of a sync-all pass
type SyncSummary struct {
	Updated int         `json:"updated"`
	Total   int         `json:"total"`
	Errors  []SyncError `json:"errors"`
}

// BulkShipmentResult is the outcome of a bulk consignment request
type BulkShipmentResult struct {
	OrderIDs      []int64          `json:"order_ids"`
	TrackingCodes map[int64]string `json:"tracking_codes"`
	Message       string           `json:"message,omitempty"`
}
