package http

import (
	draftUsecases "github.com/ticketdesk/ticketdesk/internal/application/draft/usecases"
	systemUsecases "github.com/ticketdesk/ticketdesk/internal/application/system/usecases"
	ticketdto "github.com/ticketdesk/ticketdesk/internal/application/ticket/dto"
	ticketUsecases "github.com/ticketdesk/ticketdesk/internal/application/ticket/usecases"
	userUsecases "github.com/ticketdesk/ticketdesk/internal/application/user/usecases"
	voiceNoteServices "github.com/ticketdesk/ticketdesk/internal/application/voicenote/services"
	voiceNoteUsecases "github.com/ticketdesk/ticketdesk/internal/application/voicenote/usecases"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/database"
	"github.com/ticketdesk/ticketdesk/internal/shared/db"
	"github.com/ticketdesk/ticketdesk/internal/shared/services/markdown"
	"github.com/ticketdesk/ticketdesk/internal/shared/version"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Ticket
	createTicketUC       *ticketUsecases.CreateTicketUseCase
	getTicketUC          *ticketUsecases.GetTicketUseCase
	listTicketsUC        *ticketUsecases.ListTicketsUseCase
	updateTicketUC       *ticketUsecases.UpdateTicketUseCase
	updateTicketStatusUC *ticketUsecases.UpdateTicketStatusUseCase
	deleteTicketUC       *ticketUsecases.DeleteTicketUseCase

	// Draft
	saveDraftUC   *draftUsecases.SaveDraftUseCase
	getDraftUC    *draftUsecases.GetDraftUseCase
	deleteDraftUC *draftUsecases.DeleteDraftUseCase

	// Voice notes
	uploadVoiceNoteUC *voiceNoteUsecases.UploadVoiceNoteUseCase
	deleteVoiceNoteUC *voiceNoteUsecases.DeleteVoiceNoteUseCase

	// User / System
	ensureUserUC *userUsecases.EnsureUserUseCase
	getHealthUC  *systemUsecases.GetHealthUseCase
}

func (c *Container) initUseCases() {
	r := c.repos
	txManager := db.NewTransactionManager(c.db)
	attachments := voiceNoteServices.NewAttachmentService(r.voiceNoteRepo, c.files, c.cfg.Storage.UploadDir, c.cfg.Storage.MaxFileSize, c.log)
	view := ticketdto.ViewOptions{
		PublicPrefix: c.cfg.Storage.PublicPrefix,
		Renderer:     markdown.NewRenderer(),
	}

	c.ucs = &allUseCases{
		createTicketUC:       ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, r.voiceNoteRepo, attachments, txManager, view, c.log),
		getTicketUC:          ticketUsecases.NewGetTicketUseCase(r.ticketRepo, r.voiceNoteRepo, view, c.log),
		listTicketsUC:        ticketUsecases.NewListTicketsUseCase(r.ticketRepo, r.voiceNoteRepo, view, c.log),
		updateTicketUC:       ticketUsecases.NewUpdateTicketUseCase(r.ticketRepo, r.voiceNoteRepo, attachments, txManager, view, c.log),
		updateTicketStatusUC: ticketUsecases.NewUpdateTicketStatusUseCase(r.ticketRepo, r.voiceNoteRepo, txManager, view, c.log),
		deleteTicketUC:       ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, r.voiceNoteRepo, attachments, txManager, c.log),

		saveDraftUC:   draftUsecases.NewSaveDraftUseCase(r.draftRepo, r.voiceNoteRepo, attachments, txManager, view, c.log),
		getDraftUC:    draftUsecases.NewGetDraftUseCase(r.draftRepo, r.voiceNoteRepo, view, c.log),
		deleteDraftUC: draftUsecases.NewDeleteDraftUseCase(r.draftRepo, r.voiceNoteRepo, attachments, txManager, c.log),

		uploadVoiceNoteUC: voiceNoteUsecases.NewUploadVoiceNoteUseCase(r.voiceNoteRepo, c.files, voiceNoteUsecases.UploadPolicy{
			MaxFileSize:         c.cfg.Storage.MaxFileSize,
			AllowedContentTypes: c.cfg.Storage.AllowedContentTypes,
			PublicPrefix:        c.cfg.Storage.PublicPrefix,
		}, c.log),
		deleteVoiceNoteUC: voiceNoteUsecases.NewDeleteVoiceNoteUseCase(r.voiceNoteRepo, c.files, c.log),

		ensureUserUC: userUsecases.NewEnsureUserUseCase(r.userRepo, c.log),
		getHealthUC: systemUsecases.NewGetHealthUseCase(
			database.NewPinger(c.db), r.userRepo, r.ticketRepo, r.draftRepo, r.voiceNoteRepo,
			version.Current(), c.log,
		),
	}
}
