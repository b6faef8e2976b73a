package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	},
	StatusInProgress: {
		StatusResolved,
		StatusClosed,
	},
	StatusResolved: {
		StatusClosed,
		StatusOpen,
	},
	StatusClosed: {
		StatusOpen,
	},
}

// NewTicketStatus validates and returns a ticket status
func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(s)
	if !validTicketStatuses[status] {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}

// CanTransitionTo reports whether the status may move to target
func (s TicketStatus) CanTransitionTo(target TicketStatus) bool {
	for _, allowed := range ticketStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s TicketStatus) String() string {
	return string(s)
}
