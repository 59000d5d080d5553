package usecases

import (
	"context"
	stderrors "errors"

	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

type DeleteVoiceNoteCommand struct {
	Filename string
}

type DeleteVoiceNoteResult struct {
	Filename       string `json:"filename"`
	RemovedRecords int64  `json:"removed_records"`
}

type DeleteVoiceNoteUseCase struct {
	repo   voicenote.Repository
	files  voicenote.FileStore
	logger logger.Interface
}

func NewDeleteVoiceNoteUseCase(
	repo voicenote.Repository,
	files voicenote.FileStore,
	logger logger.Interface,
) *DeleteVoiceNoteUseCase {
	return &DeleteVoiceNoteUseCase{
		repo:   repo,
		files:  files,
		logger: logger,
	}
}

// Execute removes the stored file and any standalone records for it. Records
// owned by tickets or drafts are left in place.
func (uc *DeleteVoiceNoteUseCase) Execute(ctx context.Context, cmd DeleteVoiceNoteCommand) (*DeleteVoiceNoteResult, error) {
	uc.logger.Infow("executing delete voice note use case", "filename", cmd.Filename)

	if err := voicenote.ValidateFilename(cmd.Filename); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.files.Exists(ctx, cmd.Filename)
	if err != nil {
		uc.logger.Errorw("failed to check voice note file", "filename", cmd.Filename, "error", err)
		return nil, errors.NewStorageError("failed to delete voice note")
	}
	if !exists {
		return nil, errors.NewNotFoundError("Voice note not found")
	}

	if err := uc.files.Delete(ctx, cmd.Filename); err != nil {
		if stderrors.Is(err, voicenote.ErrFileNotFound) {
			return nil, errors.NewNotFoundError("Voice note not found")
		}
		uc.logger.Errorw("failed to delete voice note file", "filename", cmd.Filename, "error", err)
		return nil, errors.NewStorageError("failed to delete voice note")
	}

	removed, err := uc.repo.DeleteStandaloneByFilename(ctx, cmd.Filename)
	if err != nil {
		uc.logger.Errorw("failed to delete voice note records", "filename", cmd.Filename, "error", err)
		return nil, err
	}

	uc.logger.Infow("voice note deleted successfully", "filename", cmd.Filename, "removed_records", removed)

	return &DeleteVoiceNoteResult{
		Filename:       cmd.Filename,
		RemovedRecords: removed,
	}, nil
}
