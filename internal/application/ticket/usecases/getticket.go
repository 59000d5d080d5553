package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/application/ticket/dto"
	"github.com/ticketdesk/ticketdesk/internal/domain/ticket"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketRef
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	view       viewBuilder
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	voiceNoteRepo voicenote.Repository,
	opts dto.ViewOptions,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		view:       viewBuilder{voiceNotes: voiceNoteRepo, opts: opts},
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	uc.logger.Debugw("executing get ticket use case", "ticket_id", query.ID, "uuid", query.UUID)

	t, err := findTicket(ctx, uc.ticketRepo, query.TicketRef)
	if err != nil {
		return nil, err
	}

	return uc.view.one(ctx, t)
}
