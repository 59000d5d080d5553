package valueobjects

import "fmt"

type TicketType string

const (
	TypeQuestion       TicketType = "Question"
	TypeIncident       TicketType = "Incident"
	TypeProblem        TicketType = "Problem"
	TypeFeatureRequest TicketType = "Feature Request"
	TypeUnspecified    TicketType = "Unspecified"
)

const DefaultTicketType = TypeQuestion

var TicketTypeOrder = []TicketType{
	TypeQuestion,
	TypeIncident,
	TypeProblem,
	TypeFeatureRequest,
	TypeUnspecified,
}

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) IsValid() bool {
	return rankOf(TicketTypeOrder, t) >= 0
}

func NewTicketType(s string) (TicketType, error) {
	t := TicketType(canonical(s))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}

func TicketTypeOrDefault(s string) (TicketType, error) {
	if s == "" {
		return DefaultTicketType, nil
	}
	return NewTicketType(s)
}
