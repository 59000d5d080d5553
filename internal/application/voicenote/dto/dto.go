package dto

import (
	"strings"

	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/biztime"
)

// VoiceNoteDTO is the response view of an attached voice note.
type VoiceNoteDTO struct {
	ID           uint    `json:"id"`
	UUID         string  `json:"uuid"`
	Filename     string  `json:"filename"`
	OriginalName string  `json:"original_name"`
	URL          string  `json:"url"`
	Duration     float64 `json:"duration"`
	Size         int64   `json:"size"`
	Timestamp    string  `json:"timestamp"`
}

type UploadResultDTO struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
	UUID         string `json:"uuid"`
	ContentType  string `json:"content_type"`
}

// VoiceNoteInput references an uploaded file from a ticket or draft payload.
type VoiceNoteInput struct {
	Filename     string
	OriginalName string
	Duration     float64
	Size         int64
}

// URLFor derives the retrieval URL of a stored file.
func URLFor(publicPrefix, filename string) string {
	return strings.TrimRight(publicPrefix, "/") + "/" + filename
}

func ToVoiceNoteDTO(note *voicenote.VoiceNote, publicPrefix string) VoiceNoteDTO {
	return VoiceNoteDTO{
		ID:           note.ID(),
		UUID:         note.UUID(),
		Filename:     note.Filename(),
		OriginalName: note.OriginalName(),
		URL:          URLFor(publicPrefix, note.Filename()),
		Duration:     note.Duration(),
		Size:         note.Size(),
		Timestamp:    biztime.FormatTimestamp(note.CreatedAt()),
	}
}

// ToVoiceNoteDTOs keeps the input order and never returns nil.
func ToVoiceNoteDTOs(notes []*voicenote.VoiceNote, publicPrefix string) []VoiceNoteDTO {
	out := make([]VoiceNoteDTO, 0, len(notes))
	for _, note := range notes {
		out = append(out, ToVoiceNoteDTO(note, publicPrefix))
	}
	return out
}
