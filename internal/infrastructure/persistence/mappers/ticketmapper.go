package mappers

import (
	"fmt"

	"github.com/ticketdesk/ticketdesk/internal/domain/ticket"
	vo "github.com/ticketdesk/ticketdesk/internal/domain/ticket/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/persistence/models"
	"github.com/ticketdesk/ticketdesk/internal/shared/biztime"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		UUID:        t.UUID(),
		Subject:     t.Subject(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		Type:        t.Type().String(),
		CreatedBy:   t.CreatedBy(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	t, err := ticket.ReconstructTicket(
		model.ID,
		model.UUID,
		model.Subject,
		model.Description,
		vo.Status(model.Status),
		vo.Priority(model.Priority),
		vo.TicketType(model.Type),
		model.CreatedBy,
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket %d: %w", model.ID, err)
	}
	return t, nil
}
