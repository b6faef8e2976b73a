package valueobjects

import "fmt"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

var validOrderStatuses = map[OrderStatus]bool{
	StatusPending:   true,
	StatusPreparing: true,
	StatusDelivered: true,
	StatusCancelled: true,
}

var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending: {
		StatusPreparing,
		StatusCancelled,
	},
	StatusPreparing: {
		StatusDelivered,
		StatusCancelled,
	},
	StatusDelivered: {},
	StatusCancelled: {},
}

// NewOrderStatus validates and returns an order status
func NewOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !validOrderStatuses[status] {
		return "", fmt.Errorf("invalid order status: %s", s)
	}
	return status, nil
}

// IsValid reports whether the status is a known value
func (s OrderStatus) IsValid() bool {
	return validOrderStatuses[s]
}

// CanTransitionTo reports whether the status may move to target
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range orderStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed
func (s OrderStatus) IsTerminal() bool {
	return len(orderStatusTransitions[s]) == 0
}

func (s OrderStatus) String() string {
	return string(s)
}
