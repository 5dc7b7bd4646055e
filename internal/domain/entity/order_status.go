package entity

import (
	"strings"

	domainerrors "restaurant/internal/domain/errors"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusReady     OrderStatus = "Ready"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// allowedTransitions is the full transition table; terminal states map to nothing.
var allowedTransitions = map[OrderStatus]map[OrderStatus]bool{
	OrderStatusPending:   {OrderStatusPreparing: true, OrderStatusCancelled: true},
	OrderStatusPreparing: {OrderStatusReady: true, OrderStatusCancelled: true},
	OrderStatusReady:     {OrderStatusDelivered: true, OrderStatusCancelled: true},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// ParseOrderStatus matches s case-insensitively against the known statuses.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	trimmed := strings.TrimSpace(s)
	for _, status := range OrderStatuses {
		if strings.EqualFold(trimmed, string(status)) {
			return status, true
		}
	}

	return "", false
}

// IsValid reports whether s is one of the known statuses.
func (s OrderStatus) IsValid() bool {
	_, ok := allowedTransitions[s]

	return ok
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return s.IsValid() && len(allowedTransitions[s]) == 0
}

// CanTransition checks if from->to is allowed.
func CanTransition(from, to OrderStatus) bool {
	nexts := allowedTransitions[from]

	return nexts != nil && nexts[to]
}

// ValidateTransition returns an InvalidTransitionError unless from->to is allowed.
func ValidateTransition(from, to OrderStatus) error {
	if !CanTransition(from, to) {
		return &domainerrors.InvalidTransitionError{From: string(from), To: string(to)}
	}

	return nil
}
