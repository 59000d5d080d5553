package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
)

type UploadVoiceNoteExecutor interface {
	Execute(ctx context.Context, cmd UploadVoiceNoteCommand) (*dto.UploadResultDTO, error)
}

type DeleteVoiceNoteExecutor interface {
	Execute(ctx context.Context, cmd DeleteVoiceNoteCommand) (*DeleteVoiceNoteResult, error)
}
