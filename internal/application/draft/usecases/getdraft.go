package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/application/draft/dto"
	tdto "github.com/ticketdesk/ticketdesk/internal/application/ticket/dto"
	"github.com/ticketdesk/ticketdesk/internal/domain/draft"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

type GetDraftQuery struct {
	OwnerID uint
}

type GetDraftUseCase struct {
	draftRepo     draft.Repository
	voiceNoteRepo voicenote.Repository
	opts          tdto.ViewOptions
	logger        logger.Interface
}

func NewGetDraftUseCase(
	draftRepo draft.Repository,
	voiceNoteRepo voicenote.Repository,
	opts tdto.ViewOptions,
	logger logger.Interface,
) *GetDraftUseCase {
	return &GetDraftUseCase{
		draftRepo:     draftRepo,
		voiceNoteRepo: voiceNoteRepo,
		opts:          opts,
		logger:        logger,
	}
}

// Execute returns nil, nil when the owner has no draft.
func (uc *GetDraftUseCase) Execute(ctx context.Context, query GetDraftQuery) (*dto.DraftDTO, error) {
	uc.logger.Debugw("executing get draft use case", "owner_id", query.OwnerID)

	d, err := uc.draftRepo.GetLatestByUserID(ctx, query.OwnerID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}

	notes, err := uc.voiceNoteRepo.ListByDraftID(ctx, d.ID())
	if err != nil {
		return nil, err
	}
	return dto.ToDraftDTO(d, notes, uc.opts), nil
}
