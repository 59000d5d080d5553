// Package voicenote models uploaded audio metadata. A note is owned by at most
// one of a ticket or a draft; a note owned by neither is standalone and waits
// to be claimed by a later ticket or draft write.
package voicenote

import (
	"fmt"
	"strings"
	"time"

	"github.com/ticketdesk/ticketdesk/internal/shared/biztime"
	"github.com/ticketdesk/ticketdesk/internal/shared/id"
)

type VoiceNote struct {
	id           uint
	uuid         string
	filename     string
	originalName string
	filePath     string
	duration     float64
	size         int64
	contentType  string
	ticketID     *uint
	draftID      *uint
	createdAt    time.Time
}

func NewVoiceNote(
	filename string,
	originalName string,
	filePath string,
	contentType string,
	size int64,
	duration float64,
) (*VoiceNote, error) {
	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, fmt.Errorf("size cannot be negative")
	}
	if duration < 0 {
		return nil, fmt.Errorf("duration cannot be negative")
	}
	if originalName == "" {
		originalName = filename
	}

	return &VoiceNote{
		uuid:         id.New(),
		filename:     filename,
		originalName: originalName,
		filePath:     filePath,
		duration:     duration,
		size:         size,
		contentType:  contentType,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructVoiceNote(
	noteID uint,
	uuid string,
	filename string,
	originalName string,
	filePath string,
	duration float64,
	size int64,
	contentType string,
	ticketID *uint,
	draftID *uint,
	createdAt time.Time,
) (*VoiceNote, error) {
	if noteID == 0 {
		return nil, fmt.Errorf("voice note ID cannot be zero")
	}
	if uuid == "" {
		return nil, fmt.Errorf("voice note UUID is required")
	}
	if ticketID != nil && draftID != nil {
		return nil, fmt.Errorf("voice note %d is owned by both a ticket and a draft", noteID)
	}

	return &VoiceNote{
		id:           noteID,
		uuid:         uuid,
		filename:     filename,
		originalName: originalName,
		filePath:     filePath,
		duration:     duration,
		size:         size,
		contentType:  contentType,
		ticketID:     ticketID,
		draftID:      draftID,
		createdAt:    createdAt,
	}, nil
}

// ValidateFilename rejects names that could escape the upload directory.
func ValidateFilename(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename is required")
	}
	if filename == "." || filename == ".." || strings.ContainsAny(filename, `/\`) {
		return fmt.Errorf("invalid filename: %s", filename)
	}
	return nil
}

func (v *VoiceNote) ID() uint {
	return v.id
}

func (v *VoiceNote) UUID() string {
	return v.uuid
}

func (v *VoiceNote) Filename() string {
	return v.filename
}

func (v *VoiceNote) OriginalName() string {
	return v.originalName
}

func (v *VoiceNote) FilePath() string {
	return v.filePath
}

func (v *VoiceNote) Duration() float64 {
	return v.duration
}

func (v *VoiceNote) Size() int64 {
	return v.size
}

func (v *VoiceNote) ContentType() string {
	return v.contentType
}

func (v *VoiceNote) TicketID() *uint {
	return v.ticketID
}

func (v *VoiceNote) DraftID() *uint {
	return v.draftID
}

func (v *VoiceNote) CreatedAt() time.Time {
	return v.createdAt
}

func (v *VoiceNote) IsStandalone() bool {
	return v.ticketID == nil && v.draftID == nil
}

func (v *VoiceNote) SetID(noteID uint) error {
	if v.id != 0 {
		return fmt.Errorf("voice note ID is already set")
	}
	if noteID == 0 {
		return fmt.Errorf("voice note ID cannot be zero")
	}
	v.id = noteID
	return nil
}

// AssignToTicket gives ownership to a ticket. Only standalone notes, or notes
// already owned by the same ticket, can be assigned.
func (v *VoiceNote) AssignToTicket(ticketID uint) error {
	if ticketID == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	if v.draftID != nil {
		return fmt.Errorf("voice note %s already belongs to draft %d", v.filename, *v.draftID)
	}
	if v.ticketID != nil && *v.ticketID != ticketID {
		return fmt.Errorf("voice note %s already belongs to ticket %d", v.filename, *v.ticketID)
	}
	v.ticketID = &ticketID
	return nil
}

// AssignToDraft gives ownership to a draft under the same rules as AssignToTicket.
func (v *VoiceNote) AssignToDraft(draftID uint) error {
	if draftID == 0 {
		return fmt.Errorf("draft ID cannot be zero")
	}
	if v.ticketID != nil {
		return fmt.Errorf("voice note %s already belongs to ticket %d", v.filename, *v.ticketID)
	}
	if v.draftID != nil && *v.draftID != draftID {
		return fmt.Errorf("voice note %s already belongs to draft %d", v.filename, *v.draftID)
	}
	v.draftID = &draftID
	return nil
}

// RecordDuration stores the client reported length. Uploads do not inspect
// audio, so the duration only becomes known when the note is attached.
func (v *VoiceNote) RecordDuration(seconds float64) error {
	if seconds < 0 {
		return fmt.Errorf("duration cannot be negative")
	}
	v.duration = seconds
	return nil
}
