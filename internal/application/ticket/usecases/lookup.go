package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/application/ticket/dto"
	"github.com/ticketdesk/ticketdesk/internal/domain/ticket"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/mapper"
)

// TicketRef addresses a ticket by internal id or by uuid. Exactly one should
// be set; UUID wins when both are.
type TicketRef struct {
	ID   uint
	UUID string
}

func findTicket(ctx context.Context, repo ticket.Repository, ref TicketRef) (*ticket.Ticket, error) {
	var (
		t   *ticket.Ticket
		err error
	)
	switch {
	case ref.UUID != "":
		t, err = repo.GetByUUID(ctx, ref.UUID)
	case ref.ID != 0:
		t, err = repo.GetByID(ctx, ref.ID)
	default:
		return nil, errors.NewValidationError("ticket id or uuid is required")
	}
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Ticket not found")
	}
	return t, nil
}

// viewBuilder loads voice notes and projects tickets for clients.
type viewBuilder struct {
	voiceNotes voicenote.Repository
	opts       dto.ViewOptions
}

func (b viewBuilder) one(ctx context.Context, t *ticket.Ticket) (*dto.TicketDTO, error) {
	notes, err := b.voiceNotes.ListByTicketID(ctx, t.ID())
	if err != nil {
		return nil, err
	}
	return dto.ToTicketDTO(t, notes, b.opts), nil
}

func (b viewBuilder) many(ctx context.Context, tickets []*ticket.Ticket) ([]*dto.TicketDTO, error) {
	ids := mapper.MapSlice(tickets, (*ticket.Ticket).ID)

	notes, err := b.voiceNotes.ListByTicketIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, dto.ToTicketDTO(t, notes[t.ID()], b.opts))
	}
	return out, nil
}
