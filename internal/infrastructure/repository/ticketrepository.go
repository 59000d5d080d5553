package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ticketdesk/ticketdesk/internal/domain/ticket"
	vo "github.com/ticketdesk/ticketdesk/internal/domain/ticket/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/persistence/mappers"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/persistence/models"
	"github.com/ticketdesk/ticketdesk/internal/shared/db"
	"github.com/ticketdesk/ticketdesk/internal/shared/mapper"
)

// Enum columns sort by declared order rather than alphabetically. The CASE
// bodies are built from domain constants only.
var (
	statusRankSQL   = rankCase("status", vo.StatusOrder)
	priorityRankSQL = rankCase("priority", vo.PriorityOrder)
)

func rankCase[T ~string](column string, order []T) string {
	var b strings.Builder
	b.WriteString("CASE ")
	b.WriteString(column)
	for i, v := range order {
		fmt.Fprintf(&b, " WHEN '%s' THEN %d", string(v), i)
	}
	fmt.Fprintf(&b, " ELSE %d END", len(order))
	return b.String()
}

func orderExpr(field ticket.SortField) string {
	switch field {
	case ticket.SortByStatus:
		return statusRankSQL
	case ticket.SortByPriority:
		return priorityRankSQL
	case ticket.SortBySubject:
		return "subject"
	case ticket.SortByUpdatedAt:
		return "updated_at"
	default:
		return "created_at"
	}
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// Update writes every mutable column, zero values included.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"subject":     model.Subject,
			"description": model.Description,
			"status":      model.Status,
			"priority":    model.Priority,
			"type":        model.Type,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket %d not found", model.ID)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket %d not found", ticketID)
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return r.first(ctx, "id = ?", ticketID)
}

func (r *TicketRepository) GetByUUID(ctx context.Context, uuid string) (*ticket.Ticket, error) {
	return r.first(ctx, "uuid = ?", uuid)
}

func (r *TicketRepository) first(ctx context.Context, query string, arg any) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where(query, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List returns one page of tickets plus the total count. Rows with equal sort
// keys are ordered by id in the same direction so pages are stable.
func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.TicketModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	direction := "DESC"
	if filter.SortOrder == ticket.SortAsc {
		direction = "ASC"
	}

	var ticketModels []models.TicketModel
	err := tx.Model(&models.TicketModel{}).
		Order(orderExpr(filter.SortBy) + " " + direction).
		Order("id " + direction).
		Scopes(db.Paginate(filter.Offset, filter.Limit)).
		Find(&ticketModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := mapper.MapSliceWithError(ticketModels, func(m models.TicketModel) (*ticket.Ticket, error) {
		return r.mapper.ToDomain(&m)
	})
	if err != nil {
		return nil, 0, err
	}

	return tickets, total, nil
}

func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return total, nil
}
