package valueobjects

import "fmt"

type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusPending    Status = "Pending"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

// DefaultStatus is applied when a ticket or draft is saved without one.
const DefaultStatus = StatusOpen

// StatusOrder is the declared order, used when sorting by status.
var StatusOrder = []Status{
	StatusOpen,
	StatusInProgress,
	StatusPending,
	StatusResolved,
	StatusClosed,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return rankOf(StatusOrder, s) >= 0
}

// Rank is the zero-based position in StatusOrder, -1 when invalid.
func (s Status) Rank() int {
	return rankOf(StatusOrder, s)
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

// NewStatus parses a client supplied status, accepting the display form as well
// as snake or kebab case spellings.
func NewStatus(s string) (Status, error) {
	status := Status(canonical(s))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}

// StatusOrDefault parses s, falling back to DefaultStatus when s is empty.
func StatusOrDefault(s string) (Status, error) {
	if s == "" {
		return DefaultStatus, nil
	}
	return NewStatus(s)
}
