package ticket

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	// GetByID and GetByUUID return nil, nil when no ticket matches.
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByUUID(ctx context.Context, uuid string) (*Ticket, error)
	List(ctx context.Context, filter ListFilter) ([]*Ticket, int64, error)
	Count(ctx context.Context) (int64, error)
}
