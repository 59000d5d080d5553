package usecases

import (
	"context"

	"github.com/ticketdesk/ticketdesk/internal/application/ticket/dto"
	"github.com/ticketdesk/ticketdesk/internal/domain/ticket"
	vo "github.com/ticketdesk/ticketdesk/internal/domain/ticket/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/db"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

type UpdateTicketStatusCommand struct {
	TicketRef
	Status string
}

type UpdateTicketStatusUseCase struct {
	ticketRepo ticket.Repository
	txManager  db.Transactor
	view       viewBuilder
	logger     logger.Interface
}

func NewUpdateTicketStatusUseCase(
	ticketRepo ticket.Repository,
	voiceNoteRepo voicenote.Repository,
	txManager db.Transactor,
	opts dto.ViewOptions,
	logger logger.Interface,
) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{
		ticketRepo: ticketRepo,
		txManager:  txManager,
		view:       viewBuilder{voiceNotes: voiceNoteRepo, opts: opts},
		logger:     logger,
	}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, cmd UpdateTicketStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket status use case",
		"ticket_id", cmd.ID,
		"uuid", cmd.UUID,
		"status", cmd.Status,
	)

	if cmd.Status == "" {
		return nil, errors.NewValidationError("status is required")
	}
	status, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var updated *ticket.Ticket
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := findTicket(txCtx, uc.ticketRepo, cmd.TicketRef)
		if err != nil {
			return err
		}
		if err := t.ChangeStatus(status); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket status", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket status updated", "ticket_id", updated.ID(), "status", status)

	return uc.view.one(ctx, updated)
}
