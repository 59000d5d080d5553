package dto

import (
	"time"

	tdto "github.com/ticketdesk/ticketdesk/internal/application/ticket/dto"
	vdto "github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
	"github.com/ticketdesk/ticketdesk/internal/domain/draft"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
)

type DraftDTO struct {
	ID              uint                `json:"id"`
	UUID            string              `json:"uuid"`
	Subject         string              `json:"subject"`
	Description     string              `json:"description"`
	DescriptionHTML string              `json:"description_html,omitempty"`
	Status          string              `json:"status"`
	Priority        string              `json:"priority"`
	Type            string              `json:"type"`
	UserID          uint                `json:"user_id"`
	SavedAt         time.Time           `json:"saved_at"`
	VoiceNotes      []vdto.VoiceNoteDTO `json:"voice_notes"`
}

// ToDraftDTO expects notes already ordered newest first.
func ToDraftDTO(d *draft.Draft, notes []*voicenote.VoiceNote, opts tdto.ViewOptions) *DraftDTO {
	if d == nil {
		return nil
	}

	return &DraftDTO{
		ID:              d.ID(),
		UUID:            d.UUID(),
		Subject:         d.Subject(),
		Description:     d.Description(),
		DescriptionHTML: opts.RenderHTML(d.Description()),
		Status:          d.Status().String(),
		Priority:        d.Priority().String(),
		Type:            d.Type().String(),
		UserID:          d.UserID(),
		SavedAt:         d.SavedAt(),
		VoiceNotes:      vdto.ToVoiceNoteDTOs(notes, opts.PublicPrefix),
	}
}
