package ticket

import (
	"github.com/ticketdesk/ticketdesk/internal/application/ticket/usecases"
	"github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/voicenote"
)

// CreateTicketRequest leaves enum fields empty to take their defaults.
type CreateTicketRequest struct {
	Subject     string                       `json:"subject" validate:"max=500"`
	Description string                       `json:"description"`
	Status      string                       `json:"status"`
	Priority    string                       `json:"priority"`
	Type        string                       `json:"type"`
	VoiceNotes  []voicenote.VoiceNoteRequest `json:"voice_notes" validate:"omitempty,dive"`
}

func (r *CreateTicketRequest) ToCommand(ownerID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		OwnerID:     ownerID,
		Subject:     r.Subject,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Type:        r.Type,
		VoiceNotes:  voicenote.ToInputs(r.VoiceNotes),
	}
}

// UpdateTicketRequest applies only the fields present in the body. A non-empty
// voice_notes list replaces every note on the ticket.
type UpdateTicketRequest struct {
	Subject     *string                      `json:"subject" validate:"omitempty,max=500"`
	Description *string                      `json:"description"`
	Status      *string                      `json:"status"`
	Priority    *string                      `json:"priority"`
	Type        *string                      `json:"type"`
	VoiceNotes  []voicenote.VoiceNoteRequest `json:"voice_notes" validate:"omitempty,dive"`
}

func (r *UpdateTicketRequest) ToCommand(ref usecases.TicketRef) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketRef:   ref,
		Subject:     r.Subject,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Type:        r.Type,
		VoiceNotes:  voicenote.ToInputs(r.VoiceNotes),
	}
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status"`
}
