package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

// NewPriority validates and returns a ticket priority
func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !validPriorities[p] {
		return "", fmt.Errorf("invalid ticket priority: %s", s)
	}
	return p, nil
}

func (p Priority) String() string {
	return string(p)
}
