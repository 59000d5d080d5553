package http

import (
	"github.com/ticketdesk/ticketdesk/internal/domain/draft"
	"github.com/ticketdesk/ticketdesk/internal/domain/ticket"
	"github.com/ticketdesk/ticketdesk/internal/domain/user"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo      user.Repository
	ticketRepo    ticket.Repository
	draftRepo     draft.Repository
	voiceNoteRepo voicenote.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:      repository.NewUserRepositoryDDD(c.db, c.log),
		ticketRepo:    repository.NewTicketRepository(c.db),
		draftRepo:     repository.NewDraftRepository(c.db),
		voiceNoteRepo: repository.NewVoiceNoteRepository(c.db),
	}
}
