// Package draft models the single in-progress ticket a user may keep. Saving
// a draft replaces the previous one wholesale; fields are never merged.
package draft

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

type Draft struct {
	id          uint
	uuid        string
	subject     string
	description string
	status      vo.Status
	priority    vo.Priority
	ticketType  vo.TicketType
	userID      uint
	savedAt     time.Time
	voiceNotes  []*voicenote.VoiceNote
}

// NewDraft builds an unsaved draft. Unlike a ticket, the subject may be empty.
func NewDraft(
	subject string,
	description string,
	status vo.Status,
	priority vo.Priority,
	ticketType vo.TicketType,
	userID uint,
) (*Draft, error) {
	subject = strings.TrimSpace(subject)
	if len(subject) > MaxSubjectLength {
		return nil, fmt.Errorf("subject exceeds maximum length of %d characters", MaxSubjectLength)
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
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Draft{
		uuid:        id.New(),
		subject:     subject,
		description: description,
		status:      status,
		priority:    priority,
		ticketType:  ticketType,
		userID:      userID,
		savedAt:     biztime.NowUTC(),
		voiceNotes:  []*voicenote.VoiceNote{},
	}, nil
}

func ReconstructDraft(
	draftID uint,
	uuid string,
	subject string,
	description string,
	status vo.Status,
	priority vo.Priority,
	ticketType vo.TicketType,
	userID uint,
	savedAt time.Time,
) (*Draft, error) {
	if draftID == 0 {
		return nil, fmt.Errorf("draft ID cannot be zero")
	}
	if uuid == "" {
		return nil, fmt.Errorf("draft UUID is required")
	}
	if !status.IsValid() || !priority.IsValid() || !ticketType.IsValid() {
		return nil, fmt.Errorf("draft %d has invalid enum values", draftID)
	}

	return &Draft{
		id:          draftID,
		uuid:        uuid,
		subject:     subject,
		description: description,
		status:      status,
		priority:    priority,
		ticketType:  ticketType,
		userID:      userID,
		savedAt:     savedAt,
		voiceNotes:  []*voicenote.VoiceNote{},
	}, nil
}

func (d *Draft) ID() uint {
	return d.id
}

func (d *Draft) UUID() string {
	return d.uuid
}

func (d *Draft) Subject() string {
	return d.subject
}

func (d *Draft) Description() string {
	return d.description
}

func (d *Draft) Status() vo.Status {
	return d.status
}

func (d *Draft) Priority() vo.Priority {
	return d.priority
}

func (d *Draft) Type() vo.TicketType {
	return d.ticketType
}

func (d *Draft) UserID() uint {
	return d.userID
}

func (d *Draft) SavedAt() time.Time {
	return d.savedAt
}

func (d *Draft) VoiceNotes() []*voicenote.VoiceNote {
	notes := make([]*voicenote.VoiceNote, len(d.voiceNotes))
	copy(notes, d.voiceNotes)
	return notes
}

func (d *Draft) SetID(draftID uint) error {
	if d.id != 0 {
		return fmt.Errorf("draft ID is already set")
	}
	if draftID == 0 {
		return fmt.Errorf("draft ID cannot be zero")
	}
	d.id = draftID
	return nil
}

func (d *Draft) AttachVoiceNote(note *voicenote.VoiceNote) error {
	if note == nil {
		return fmt.Errorf("voice note cannot be nil")
	}
	if note.DraftID() == nil || *note.DraftID() != d.id {
		return fmt.Errorf("voice note %s does not belong to draft %d", note.Filename(), d.id)
	}
	d.voiceNotes = append(d.voiceNotes, note)
	return nil
}
