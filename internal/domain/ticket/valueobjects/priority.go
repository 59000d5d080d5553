package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

const DefaultPriority = PriorityMedium

// PriorityOrder runs from least to most urgent.
var PriorityOrder = []Priority{
	PriorityLow,
	PriorityMedium,
	PriorityHigh,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return rankOf(PriorityOrder, p) >= 0
}

func (p Priority) Rank() int {
	return rankOf(PriorityOrder, p)
}

func NewPriority(s string) (Priority, error) {
	p := Priority(canonical(s))
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

func PriorityOrDefault(s string) (Priority, error) {
	if s == "" {
		return DefaultPriority, nil
	}
	return NewPriority(s)
}
