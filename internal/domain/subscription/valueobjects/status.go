package valueobjects

import "fmt"

type SubscriptionStatus string

const (
	StatusPending   SubscriptionStatus = "pending"
	StatusTrial     SubscriptionStatus = "trial"
	StatusActive    SubscriptionStatus = "active"
	StatusExpired   SubscriptionStatus = "expired"
	StatusCancelled SubscriptionStatus = "cancelled"
)

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusPending:   true,
	StatusTrial:     true,
	StatusActive:    true,
	StatusExpired:   true,
	StatusCancelled: true,
}

var statusTransitions = map[SubscriptionStatus][]SubscriptionStatus{
	StatusPending: {
		StatusActive,
		StatusCancelled,
	},
	StatusTrial: {
		StatusActive,
		StatusExpired,
		StatusCancelled,
	},
	StatusActive: {
		StatusExpired,
		StatusCancelled,
	},
	StatusExpired: {
		StatusActive,
	},
	StatusCancelled: {},
}

// NewSubscriptionStatus validates and returns a subscription status
func NewSubscriptionStatus(s string) (SubscriptionStatus, error) {
	status := SubscriptionStatus(s)
	if !ValidStatuses[status] {
		return "", fmt.Errorf("invalid subscription status: %s", s)
	}
	return status, nil
}

// CanTransitionTo reports whether the status may move to target
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsUsable reports whether the subscription grants access to paid features
func (s SubscriptionStatus) IsUsable() bool {
	return s == StatusTrial || s == StatusActive
}

func (s SubscriptionStatus) String() string {
	return string(s)
}
