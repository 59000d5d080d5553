package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/ticketdesk/ticketdesk/internal/domain/ticket/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/biztime"
	"github.com/ticketdesk/ticketdesk/internal/shared/id"
)

const MaxSubjectLength = 255

type Ticket struct {
	id          uint
	uuid        string
	subject     string
	description string
	status      vo.Status
	priority    vo.Priority
	ticketType  vo.TicketType
	createdBy   uint
	createdAt   time.Time
	updatedAt   time.Time
	voiceNotes  []*voicenote.VoiceNote
}

// Patch carries a partial update; nil fields are left unchanged.
type Patch struct {
	Subject     *string
	Description *string
	Status      *vo.Status
	Priority    *vo.Priority
	Type        *vo.TicketType
}

func NewTicket(
	subject string,
	description string,
	status vo.Status,
	priority vo.Priority,
	ticketType vo.TicketType,
	createdBy uint,
) (*Ticket, error) {
	if err := validateSubject(subject); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()

	return &Ticket{
		uuid:        id.New(),
		subject:     strings.TrimSpace(subject),
		description: description,
		status:      status,
		priority:    priority,
		ticketType:  ticketType,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
		voiceNotes:  []*voicenote.VoiceNote{},
	}, nil
}

func ReconstructTicket(
	ticketID uint,
	uuid string,
	subject string,
	description string,
	status vo.Status,
	priority vo.Priority,
	ticketType vo.TicketType,
	createdBy uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if uuid == "" {
		return nil, fmt.Errorf("ticket UUID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type: %s", ticketType)
	}

	return &Ticket{
		id:          ticketID,
		uuid:        uuid,
		subject:     subject,
		description: description,
		status:      status,
		priority:    priority,
		ticketType:  ticketType,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		voiceNotes:  []*voicenote.VoiceNote{},
	}, nil
}

func validateSubject(subject string) error {
	trimmed := strings.TrimSpace(subject)
	if trimmed == "" {
		return fmt.Errorf("subject is required")
	}
	if len(trimmed) > MaxSubjectLength {
		return fmt.Errorf("subject exceeds maximum length of %d characters", MaxSubjectLength)
	}
	return nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) UUID() string {
	return t.uuid
}

func (t *Ticket) Subject() string {
	return t.subject
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) Type() vo.TicketType {
	return t.ticketType
}

func (t *Ticket) CreatedBy() uint {
	return t.createdBy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

// VoiceNotes returns the attached notes in the order they were attached.
func (t *Ticket) VoiceNotes() []*voicenote.VoiceNote {
	notes := make([]*voicenote.VoiceNote, len(t.voiceNotes))
	copy(notes, t.voiceNotes)
	return notes
}

func (t *Ticket) SetID(ticketID uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = ticketID
	return nil
}

// Apply sets every non-nil field of p and refreshes updatedAt, even when
// nothing actually changed value.
func (t *Ticket) Apply(p Patch) error {
	if p.Subject != nil {
		if err := validateSubject(*p.Subject); err != nil {
			return err
		}
	}
	if p.Status != nil && !p.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", *p.Status)
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", *p.Priority)
	}
	if p.Type != nil && !p.Type.IsValid() {
		return fmt.Errorf("invalid ticket type: %s", *p.Type)
	}

	if p.Subject != nil {
		t.subject = strings.TrimSpace(*p.Subject)
	}
	if p.Description != nil {
		t.description = *p.Description
	}
	if p.Status != nil {
		t.status = *p.Status
	}
	if p.Priority != nil {
		t.priority = *p.Priority
	}
	if p.Type != nil {
		t.ticketType = *p.Type
	}

	t.Touch()
	return nil
}

// ChangeStatus sets the status and refreshes updatedAt.
func (t *Ticket) ChangeStatus(status vo.Status) error {
	return t.Apply(Patch{Status: &status})
}

// Touch moves updatedAt strictly forward.
func (t *Ticket) Touch() {
	t.updatedAt = biztime.Next(t.updatedAt)
}

// AttachVoiceNote records a note owned by this ticket for presentation.
// The note must already be assigned to the ticket.
func (t *Ticket) AttachVoiceNote(note *voicenote.VoiceNote) error {
	if note == nil {
		return fmt.Errorf("voice note cannot be nil")
	}
	if note.TicketID() == nil || *note.TicketID() != t.id {
		return fmt.Errorf("voice note %s does not belong to ticket %d", note.Filename(), t.id)
	}
	t.voiceNotes = append(t.voiceNotes, note)
	return nil
}

// ReplaceVoiceNotes swaps the attached set, used after a full replace.
func (t *Ticket) ReplaceVoiceNotes(notes []*voicenote.VoiceNote) error {
	t.voiceNotes = []*voicenote.VoiceNote{}
	for _, note := range notes {
		if err := t.AttachVoiceNote(note); err != nil {
			return err
		}
	}
	return nil
}
