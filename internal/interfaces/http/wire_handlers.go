package http

import (
	draftHandlers "github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/draft"
	systemHandlers "github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/system"
	ticketHandlers "github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/ticket"
	voiceNoteHandlers "github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/version"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	ticketHandler    *ticketHandlers.TicketHandler
	draftHandler     *draftHandlers.Handler
	voiceNoteHandler *voiceNoteHandlers.Handler
	systemHandler    *systemHandlers.Handler
}

func (c *Container) initHandlers() {
	u := c.ucs
	c.hdlrs = &allHandlers{
		ticketHandler: ticketHandlers.NewTicketHandler(
			u.createTicketUC, u.getTicketUC, u.listTicketsUC,
			u.updateTicketUC, u.updateTicketStatusUC, u.deleteTicketUC,
			c.log,
		),
		draftHandler:     draftHandlers.NewHandler(u.saveDraftUC, u.getDraftUC, u.deleteDraftUC, c.log),
		voiceNoteHandler: voiceNoteHandlers.NewHandler(u.uploadVoiceNoteUC, u.deleteVoiceNoteUC, c.cfg.Storage.MaxFileSize, c.log),
		systemHandler:    systemHandlers.NewHandler(u.getHealthUC, version.Current(), c.log),
	}
}
