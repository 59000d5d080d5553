package ticket

import "strings"

type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByUpdatedAt SortField = "updated_at"
	SortBySubject   SortField = "subject"
	SortByStatus    SortField = "status"
	SortByPriority  SortField = "priority"
)

var sortFields = map[SortField]bool{
	SortByCreatedAt: true,
	SortByUpdatedAt: true,
	SortBySubject:   true,
	SortByStatus:    true,
	SortByPriority:  true,
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListFilter is always normalized; build it with NewListFilter.
type ListFilter struct {
	Offset    int
	Limit     int
	SortBy    SortField
	SortOrder SortOrder
}

// NewListFilter normalizes listing input. Unknown sort fields silently fall
// back to created_at, unknown directions to descending. A limit of
// zero or less means defaultLimit; larger limits are not capped.
func NewListFilter(offset, limit int, sortBy, sortOrder string, defaultLimit int) ListFilter {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	order := SortOrder(strings.ToLower(strings.TrimSpace(sortOrder)))
	if order != SortAsc {
		order = SortDesc
	}

	field := SortField(strings.ToLower(strings.TrimSpace(sortBy)))
	if !sortFields[field] {
		field = SortByCreatedAt
	}

	return ListFilter{
		Offset:    offset,
		Limit:     limit,
		SortBy:    field,
		SortOrder: order,
	}
}
