package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/application/ticket/dto"
	vdto "github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
	"github.com/ticketdesk/ticketdesk/internal/domain/ticket"
	vo "github.com/ticketdesk/ticketdesk/internal/domain/ticket/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/db"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

// UpdateTicketCommand applies only non-nil fields. A non-empty VoiceNotes
// list replaces every note the ticket owns; an empty one leaves them alone.
type UpdateTicketCommand struct {
	TicketRef
	Subject     *string
	Description *string
	Status      *string
	Priority    *string
	Type        *string
	VoiceNotes  []vdto.VoiceNoteInput
}

type UpdateTicketUseCase struct {
	ticketRepo    ticket.Repository
	voiceNoteRepo voicenote.Repository
	attacher      VoiceNoteAttacher
	txManager     db.Transactor
	view          viewBuilder
	logger        logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	voiceNoteRepo voicenote.Repository,
	attacher VoiceNoteAttacher,
	txManager db.Transactor,
	opts dto.ViewOptions,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:    ticketRepo,
		voiceNoteRepo: voiceNoteRepo,
		attacher:      attacher,
		txManager:     txManager,
		view:          viewBuilder{voiceNotes: voiceNoteRepo, opts: opts},
		logger:        logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case",
		"ticket_id", cmd.ID,
		"uuid", cmd.UUID,
		"voice_notes", len(cmd.VoiceNotes),
	)

	patch, err := buildPatch(cmd)
	if err != nil {
		return nil, err
	}

	var (
		updated  *ticket.Ticket
		released []string
	)
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := findTicket(txCtx, uc.ticketRepo, cmd.TicketRef)
		if err != nil {
			return err
		}

		if err := t.Apply(patch); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		if len(cmd.VoiceNotes) > 0 {
			released, err = uc.voiceNoteRepo.DeleteByTicketID(txCtx, t.ID())
			if err != nil {
				return err
			}
			if err := uc.attacher.AttachToTicket(txCtx, t.ID(), cmd.VoiceNotes); err != nil {
				return err
			}
		}

		updated = t
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.ID, "uuid", cmd.UUID, "error", err)
		return nil, err
	}

	uc.attacher.ReleaseFiles(ctx, released)

	uc.logger.Infow("ticket updated successfully", "ticket_id", updated.ID())

	return uc.view.one(ctx, updated)
}

func buildPatch(cmd UpdateTicketCommand) (ticket.Patch, error) {
	patch := ticket.Patch{
		Subject:     cmd.Subject,
		Description: cmd.Description,
	}

	if cmd.Status != nil {
		s, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return patch, errors.NewValidationError(err.Error())
		}
		patch.Status = &s
	}
	if cmd.Priority != nil {
		p, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return patch, errors.NewValidationError(err.Error())
		}
		patch.Priority = &p
	}
	if cmd.Type != nil {
		t, err := vo.NewTicketType(*cmd.Type)
		if err != nil {
			return patch, errors.NewValidationError(err.Error())
		}
		patch.Type = &t
	}
	return patch, nil
}
