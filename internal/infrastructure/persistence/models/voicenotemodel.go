package models

import "github.com/ticketdesk/ticketdesk/internal/shared/constants"

// VoiceNoteModel has at most one of TicketID and DraftID set. Several rows may
// reference the same stored file.
type VoiceNoteModel struct {
	ID           uint    `gorm:"primaryKey"`
	UUID         string  `gorm:"column:uuid;uniqueIndex;size:36;not null"`
	Filename     string  `gorm:"size:255;not null;index"`
	OriginalName string  `gorm:"size:255"`
	FilePath     string  `gorm:"size:512;not null"`
	Duration     float64 `gorm:"not null;default:0"`
	Size         int64   `gorm:"not null;default:0"`
	ContentType  string  `gorm:"size:100"`
	TicketID     *uint   `gorm:"index"`
	DraftID      *uint   `gorm:"index"`
	CreatedAt    int64   `gorm:"not null"`
}

func (VoiceNoteModel) TableName() string {
	return constants.TableVoiceNotes
}
