package voicenote

import (
	vdto "github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
	"github.com/ticketdesk/ticketdesk/internal/shared/mapper"
)

// VoiceNoteRequest references an uploaded file from a ticket or draft body.
// id and timestamp are echoed back by some clients and ignored.
type VoiceNoteRequest struct {
	ID           *uint   `json:"id,omitempty"`
	Filename     string  `json:"filename" validate:"required,max=255"`
	OriginalName string  `json:"original_name" validate:"max=255"`
	Duration     float64 `json:"duration" validate:"gte=0"`
	Size         int64   `json:"size" validate:"gte=0"`
	Timestamp    string  `json:"timestamp,omitempty"`
}

func ToInputs(reqs []VoiceNoteRequest) []vdto.VoiceNoteInput {
	if len(reqs) == 0 {
		return nil
	}
	return mapper.MapSlice(reqs, func(r VoiceNoteRequest) vdto.VoiceNoteInput {
		return vdto.VoiceNoteInput{
			Filename:     r.Filename,
			OriginalName: r.OriginalName,
			Duration:     r.Duration,
			Size:         r.Size,
		}
	})
}
