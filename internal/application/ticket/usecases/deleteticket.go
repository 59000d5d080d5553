package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/domain/ticket"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/db"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketRef
}

type DeleteTicketResult struct {
	ID                uint   `json:"id"`
	UUID              string `json:"uuid"`
	RemovedVoiceNotes int    `json:"removed_voice_notes"`
}

type DeleteTicketUseCase struct {
	ticketRepo    ticket.Repository
	voiceNoteRepo voicenote.Repository
	attacher      VoiceNoteAttacher
	txManager     db.Transactor
	logger        logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	voiceNoteRepo voicenote.Repository,
	attacher VoiceNoteAttacher,
	txManager db.Transactor,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:    ticketRepo,
		voiceNoteRepo: voiceNoteRepo,
		attacher:      attacher,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute removes the ticket and its voice note records together; stored
// files nothing else references are removed after commit.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.ID, "uuid", cmd.UUID)

	var (
		result   DeleteTicketResult
		released []string
	)
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := findTicket(txCtx, uc.ticketRepo, cmd.TicketRef)
		if err != nil {
			return err
		}

		released, err = uc.voiceNoteRepo.DeleteByTicketID(txCtx, t.ID())
		if err != nil {
			return err
		}
		if err := uc.ticketRepo.Delete(txCtx, t.ID()); err != nil {
			return err
		}

		result = DeleteTicketResult{ID: t.ID(), UUID: t.UUID(), RemovedVoiceNotes: len(released)}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.ID, "uuid", cmd.UUID, "error", err)
		return nil, err
	}

	uc.attacher.ReleaseFiles(ctx, released)

	uc.logger.Infow("ticket deleted successfully", "ticket_id", result.ID, "removed_voice_notes", result.RemovedVoiceNotes)
	return &result, nil
}
