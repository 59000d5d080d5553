package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/domain/draft"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/db"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

type DeleteDraftCommand struct {
	OwnerID uint
}

type DeleteDraftResult struct {
	RemovedDrafts     int `json:"removed_drafts"`
	RemovedVoiceNotes int `json:"removed_voice_notes"`
}

type DeleteDraftUseCase struct {
	draftRepo     draft.Repository
	voiceNoteRepo voicenote.Repository
	attacher      VoiceNoteAttacher
	txManager     db.Transactor
	logger        logger.Interface
}

func NewDeleteDraftUseCase(
	draftRepo draft.Repository,
	voiceNoteRepo voicenote.Repository,
	attacher VoiceNoteAttacher,
	txManager db.Transactor,
	logger logger.Interface,
) *DeleteDraftUseCase {
	return &DeleteDraftUseCase{
		draftRepo:     draftRepo,
		voiceNoteRepo: voiceNoteRepo,
		attacher:      attacher,
		txManager:     txManager,
		logger:        logger,
	}
}

func (uc *DeleteDraftUseCase) Execute(ctx context.Context, cmd DeleteDraftCommand) (*DeleteDraftResult, error) {
	uc.logger.Infow("executing delete draft use case", "owner_id", cmd.OwnerID)

	var (
		result   DeleteDraftResult
		released []string
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		removed, names, err := clearDrafts(txCtx, uc.draftRepo, uc.voiceNoteRepo, cmd.OwnerID)
		if err != nil {
			return err
		}
		if removed == 0 {
			return errors.NewNotFoundError("No draft found")
		}
		released = names
		result = DeleteDraftResult{RemovedDrafts: removed, RemovedVoiceNotes: len(names)}
		return nil
	})
	if err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete draft", "owner_id", cmd.OwnerID, "error", err)
		}
		return nil, err
	}

	uc.attacher.ReleaseFiles(ctx, released)

	uc.logger.Infow("draft deleted successfully", "owner_id", cmd.OwnerID, "removed_voice_notes", result.RemovedVoiceNotes)
	return &result, nil
}
