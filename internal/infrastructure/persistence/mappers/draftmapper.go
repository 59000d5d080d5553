package mappers

import (
	"fmt"

	"github.com/ticketdesk/ticketdesk/internal/domain/draft"
	vo "github.com/ticketdesk/ticketdesk/internal/domain/ticket/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/persistence/models"
	"github.com/ticketdesk/ticketdesk/internal/shared/biztime"
)

type DraftMapper interface {
	ToModel(d *draft.Draft) *models.DraftModel
	ToDomain(model *models.DraftModel) (*draft.Draft, error)
}

type DraftMapperImpl struct{}

func NewDraftMapper() DraftMapper {
	return &DraftMapperImpl{}
}

func (m *DraftMapperImpl) ToModel(d *draft.Draft) *models.DraftModel {
	return &models.DraftModel{
		ID:          d.ID(),
		UUID:        d.UUID(),
		Subject:     d.Subject(),
		Description: d.Description(),
		Status:      d.Status().String(),
		Priority:    d.Priority().String(),
		Type:        d.Type().String(),
		UserID:      d.UserID(),
		SavedAt:     d.SavedAt().UnixMilli(),
	}
}

func (m *DraftMapperImpl) ToDomain(model *models.DraftModel) (*draft.Draft, error) {
	if model == nil {
		return nil, nil
	}

	d, err := draft.ReconstructDraft(
		model.ID,
		model.UUID,
		model.Subject,
		model.Description,
		vo.Status(model.Status),
		vo.Priority(model.Priority),
		vo.TicketType(model.Type),
		model.UserID,
		biztime.FromMillis(model.SavedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct draft %d: %w", model.ID, err)
	}
	return d, nil
}
