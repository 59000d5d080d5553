package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/application/draft/dto"
	vdto "github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
)

type SaveDraftExecutor interface {
	Execute(ctx context.Context, cmd SaveDraftCommand) (*dto.DraftDTO, error)
}

type GetDraftExecutor interface {
	Execute(ctx context.Context, query GetDraftQuery) (*dto.DraftDTO, error)
}

type DeleteDraftExecutor interface {
	Execute(ctx context.Context, cmd DeleteDraftCommand) (*DeleteDraftResult, error)
}

// VoiceNoteAttacher is the part of the attachment service the draft write
// paths need.
type VoiceNoteAttacher interface {
	AttachToDraft(ctx context.Context, draftID uint, inputs []vdto.VoiceNoteInput) error
	ReleaseFiles(ctx context.Context, filenames []string)
}
