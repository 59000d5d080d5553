package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/application/ticket/dto"
	"github.com/ticketdesk/ticketdesk/internal/domain/ticket"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/constants"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Offset    int
	Limit     int
	SortBy    string
	SortOrder string
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int64
	Offset  int
	Limit   int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	view       viewBuilder
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	voiceNoteRepo voicenote.Repository,
	opts dto.ViewOptions,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		view:       viewBuilder{voiceNotes: voiceNoteRepo, opts: opts},
		logger:     logger,
	}
}

// Execute never fails on sort input; unknown values fall back to defaults.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.NewListFilter(query.Offset, query.Limit, query.SortBy, query.SortOrder, constants.DefaultLimit)

	uc.logger.Debugw("executing list tickets use case",
		"offset", filter.Offset,
		"limit", filter.Limit,
		"sort_by", filter.SortBy,
		"sort_order", filter.SortOrder,
	)

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	items, err := uc.view.many(ctx, tickets)
	if err != nil {
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: items,
		Total:   total,
		Offset:  filter.Offset,
		Limit:   filter.Limit,
	}, nil
}
