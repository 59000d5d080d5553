package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/application/ticket/dto"
	vdto "github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type UpdateTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*dto.TicketDTO, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}

// VoiceNoteAttacher is the part of the attachment service the ticket write
// paths need.
type VoiceNoteAttacher interface {
	AttachToTicket(ctx context.Context, ticketID uint, inputs []vdto.VoiceNoteInput) error
	ReleaseFiles(ctx context.Context, filenames []string)
}
