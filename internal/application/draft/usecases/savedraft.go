package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/application/draft/dto"
	tdto "github.com/ticketdesk/ticketdesk/internal/application/ticket/dto"
	vdto "github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
	"github.com/ticketdesk/ticketdesk/internal/domain/draft"
	vo "github.com/ticketdesk/ticketdesk/internal/domain/ticket/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/db"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

type SaveDraftCommand struct {
	OwnerID     uint
	Subject     string
	Description string
	Status      string
	Priority    string
	Type        string
	VoiceNotes  []vdto.VoiceNoteInput
}

type SaveDraftUseCase struct {
	draftRepo     draft.Repository
	voiceNoteRepo voicenote.Repository
	attacher      VoiceNoteAttacher
	txManager     db.Transactor
	opts          tdto.ViewOptions
	logger        logger.Interface
}

func NewSaveDraftUseCase(
	draftRepo draft.Repository,
	voiceNoteRepo voicenote.Repository,
	attacher VoiceNoteAttacher,
	txManager db.Transactor,
	opts tdto.ViewOptions,
	logger logger.Interface,
) *SaveDraftUseCase {
	return &SaveDraftUseCase{
		draftRepo:     draftRepo,
		voiceNoteRepo: voiceNoteRepo,
		attacher:      attacher,
		txManager:     txManager,
		opts:          opts,
		logger:        logger,
	}
}

// Execute replaces whatever draft the owner had with the payload. Nothing of
// the previous draft survives, including its voice notes.
func (uc *SaveDraftUseCase) Execute(ctx context.Context, cmd SaveDraftCommand) (*dto.DraftDTO, error) {
	uc.logger.Infow("executing save draft use case",
		"owner_id", cmd.OwnerID,
		"voice_notes", len(cmd.VoiceNotes),
	)

	status, err := vo.StatusOrDefault(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.PriorityOrDefault(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	ticketType, err := vo.TicketTypeOrDefault(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newDraft, err := draft.NewDraft(cmd.Subject, cmd.Description, status, priority, ticketType, cmd.OwnerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var released []string
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		removed, names, err := clearDrafts(txCtx, uc.draftRepo, uc.voiceNoteRepo, cmd.OwnerID)
		if err != nil {
			return err
		}
		if removed > 0 {
			uc.logger.Debugw("replacing previous drafts", "owner_id", cmd.OwnerID, "count", removed)
		}
		released = names

		if err := uc.draftRepo.Create(txCtx, newDraft); err != nil {
			return err
		}
		return uc.attacher.AttachToDraft(txCtx, newDraft.ID(), cmd.VoiceNotes)
	})
	if err != nil {
		uc.logger.Errorw("failed to save draft", "owner_id", cmd.OwnerID, "error", err)
		return nil, err
	}

	uc.attacher.ReleaseFiles(ctx, released)

	notes, err := uc.voiceNoteRepo.ListByDraftID(ctx, newDraft.ID())
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("draft saved successfully", "draft_id", newDraft.ID(), "owner_id", cmd.OwnerID)
	return dto.ToDraftDTO(newDraft, notes, uc.opts), nil
}
