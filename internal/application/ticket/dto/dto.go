package dto

import (
	"time"

	vdto "github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
	"github.com/ticketdesk/ticketdesk/internal/domain/ticket"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/services/markdown"
)

type TicketDTO struct {
	ID              uint                `json:"id"`
	UUID            string              `json:"uuid"`
	Subject         string              `json:"subject"`
	Description     string              `json:"description"`
	DescriptionHTML string              `json:"description_html,omitempty"`
	Status          string              `json:"status"`
	Priority        string              `json:"priority"`
	Type            string              `json:"type"`
	CreatedBy       uint                `json:"created_by"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	VoiceNotes      []vdto.VoiceNoteDTO `json:"voice_notes"`
}

// ViewOptions controls how aggregates are projected for clients.
type ViewOptions struct {
	PublicPrefix string
	// Renderer is optional; without it description_html is omitted.
	Renderer markdown.Renderer
}

// RenderHTML returns "" when no renderer is configured or rendering fails.
func (o ViewOptions) RenderHTML(source string) string {
	if o.Renderer == nil {
		return ""
	}
	html, err := o.Renderer.Render(source)
	if err != nil {
		return ""
	}
	return html
}

// ToTicketDTO expects notes already ordered newest first.
func ToTicketDTO(t *ticket.Ticket, notes []*voicenote.VoiceNote, opts ViewOptions) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:              t.ID(),
		UUID:            t.UUID(),
		Subject:         t.Subject(),
		Description:     t.Description(),
		DescriptionHTML: opts.RenderHTML(t.Description()),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		Type:            t.Type().String(),
		CreatedBy:       t.CreatedBy(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
		VoiceNotes:      vdto.ToVoiceNoteDTOs(notes, opts.PublicPrefix),
	}
}
