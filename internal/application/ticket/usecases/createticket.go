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

type CreateTicketCommand struct {
	OwnerID     uint
	Subject     string
	Description string
	// Empty enum fields take their defaults.
	Status     string
	Priority   string
	Type       string
	VoiceNotes []vdto.VoiceNoteInput
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	attacher   VoiceNoteAttacher
	txManager  db.Transactor
	view       viewBuilder
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	voiceNoteRepo voicenote.Repository,
	attacher VoiceNoteAttacher,
	txManager db.Transactor,
	opts dto.ViewOptions,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		attacher:   attacher,
		txManager:  txManager,
		view:       viewBuilder{voiceNotes: voiceNoteRepo, opts: opts},
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case",
		"subject", cmd.Subject,
		"owner_id", cmd.OwnerID,
		"voice_notes", len(cmd.VoiceNotes),
	)

	status, priority, ticketType, err := parseEnums(cmd.Status, cmd.Priority, cmd.Type)
	if err != nil {
		return nil, err
	}

	newTicket, err := ticket.NewTicket(cmd.Subject, cmd.Description, status, priority, ticketType, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Create(txCtx, newTicket); err != nil {
			return err
		}
		return uc.attacher.AttachToTicket(txCtx, newTicket.ID(), cmd.VoiceNotes)
	})
	if err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "uuid", newTicket.UUID())

	return uc.view.one(ctx, newTicket)
}

func parseEnums(status, priority, ticketType string) (vo.Status, vo.Priority, vo.TicketType, error) {
	s, err := vo.StatusOrDefault(status)
	if err != nil {
		return "", "", "", errors.NewValidationError(err.Error())
	}
	p, err := vo.PriorityOrDefault(priority)
	if err != nil {
		return "", "", "", errors.NewValidationError(err.Error())
	}
	t, err := vo.TicketTypeOrDefault(ticketType)
	if err != nil {
		return "", "", "", errors.NewValidationError(err.Error())
	}
	return s, p, t, nil
}
