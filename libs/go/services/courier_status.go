package services

import (
	"strings"

	"github.com/chokka/chokka-api/libs/go/constants"
)

var courierStatusMap = map[string]string{
	constants.CourierStatusInReview:                 constants.OrderStatusUnassigned,
	constants.CourierStatusPending:                  constants.OrderStatusAssigned,
	constants.CourierStatusDelivered:                constants.OrderStatusDelivered,
	constants.CourierStatusPartialDelivered:         constants.OrderStatusPartial,
	constants.CourierStatusCancelled:                constants.OrderStatusCancelled,
	constants.CourierStatusHold:                     constants.OrderStatusHold,
	constants.CourierStatusDeliveredApprovalPending: constants.OrderStatusDeliveredApproval,
	constants.CourierStatusPartialApprovalPending:   constants.OrderStatusPartialApproval,
	constants.CourierStatusCancelledApprovalPending: constants.OrderStatusCancelledApproval,
	constants.CourierStatusUnknownApprovalPending:   constants.OrderStatusUnknownApproval,
}

// MapCourierStatus translates a Steadfast delivery_status into the internal
// order status. Unrecognised values, including "unknown", keep current.
// The boolean reports whether the returned status differs from current.
func MapCourierStatus(deliveryStatus, current string) (string, bool) {
	mapped, ok := courierStatusMap[strings.ToLower(strings.TrimSpace(deliveryStatus))]
	if !ok {
		return current, false
	}
	return mapped, mapped != current
}

// IsTerminalStatus reports whether an order is finished from the courier's
// point of view. Terminal orders are skipped by status sync.
func IsTerminalStatus(status string) bool {
	s := strings.ToLower(status)
	return strings.Contains(s, "delivered") || strings.Contains(s, "cancelled")
}

// IsPendingStatus reports whether an order has not been handed to the courier
func IsPendingStatus(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "", "pending", "pickup pending":
		return true
	}
	return false
}

// IsCancelledStatus reports whether an order was cancelled in any form
func IsCancelledStatus(status string) bool {
	return strings.Contains(strings.ToLower(status), "cancel")
}
