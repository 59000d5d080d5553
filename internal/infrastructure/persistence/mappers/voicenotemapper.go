package mappers

import (
	"fmt"

	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/persistence/models"
	"github.com/ticketdesk/ticketdesk/internal/shared/biztime"
)

type VoiceNoteMapper interface {
	ToModel(v *voicenote.VoiceNote) *models.VoiceNoteModel
	ToDomain(model *models.VoiceNoteModel) (*voicenote.VoiceNote, error)
}

type VoiceNoteMapperImpl struct{}

func NewVoiceNoteMapper() VoiceNoteMapper {
	return &VoiceNoteMapperImpl{}
}

func (m *VoiceNoteMapperImpl) ToModel(v *voicenote.VoiceNote) *models.VoiceNoteModel {
	return &models.VoiceNoteModel{
		ID:           v.ID(),
		UUID:         v.UUID(),
		Filename:     v.Filename(),
		OriginalName: v.OriginalName(),
		FilePath:     v.FilePath(),
		Duration:     v.Duration(),
		Size:         v.Size(),
		ContentType:  v.ContentType(),
		TicketID:     v.TicketID(),
		DraftID:      v.DraftID(),
		CreatedAt:    v.CreatedAt().UnixMilli(),
	}
}

func (m *VoiceNoteMapperImpl) ToDomain(model *models.VoiceNoteModel) (*voicenote.VoiceNote, error) {
	if model == nil {
		return nil, nil
	}

	v, err := voicenote.ReconstructVoiceNote(
		model.ID,
		model.UUID,
		model.Filename,
		model.OriginalName,
		model.FilePath,
		model.Duration,
		model.Size,
		model.ContentType,
		model.TicketID,
		model.DraftID,
		biztime.FromMillis(model.CreatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct voice note %d: %w", model.ID, err)
	}
	return v, nil
}
