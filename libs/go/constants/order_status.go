package constants

// Internal order statuses
const (
	OrderStatusPending         = "Pending"
	OrderStatusPickupPending   = "Pickup Pending"
	OrderStatusSteadfastPosted = "Steadfast_Posted"
	OrderStatusUnassigned      = "Unassigned"
	OrderStatusAssigned        = "Assigned"
	OrderStatusShipped         = "Shipped"
	OrderStatusDelivered       = "Delivered"
	OrderStatusPartial         = "Partial Delivered"
	OrderStatusCancelled       = "Cancelled"
	OrderStatusHold            = "Hold"

	OrderStatusDeliveredApproval = "Delivered (Pending Approval)"
	OrderStatusPartialApproval   = "Partial (Pending Approval)"
	OrderStatusCancelledApproval = "Cancelled (Pending Approval)"
	OrderStatusUnknownApproval   = "Unknown (Pending Approval)"
)

// Steadfast delivery_status values
const (
	CourierStatusInReview                 = "in_review"
	CourierStatusPending                  = "pending"
	CourierStatusDelivered                = "delivered"
	CourierStatusPartialDelivered         = "partial_delivered"
	CourierStatusCancelled                = "cancelled"
	CourierStatusHold                     = "hold"
	CourierStatusDeliveredApprovalPending = "delivered_approval_pending"
	CourierStatusPartialApprovalPending   = "partial_delivered_approval_pending"
	CourierStatusCancelledApprovalPending = "cancelled_approval_pending"
	CourierStatusUnknownApprovalPending   = "unknown_approval_pending"
	CourierStatusUnknown                  = "unknown"
)
