package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ticketdesk/ticketdesk/internal/domain/draft"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/persistence/mappers"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/persistence/models"
	"github.com/ticketdesk/ticketdesk/internal/shared/db"
)

type DraftRepository struct {
	db     *gorm.DB
	mapper mappers.DraftMapper
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{
		db:     db,
		mapper: mappers.NewDraftMapper(),
	}
}

func (r *DraftRepository) Create(ctx context.Context, d *draft.Draft) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}

	return d.SetID(model.ID)
}

func (r *DraftRepository) GetLatestByUserID(ctx context.Context, userID uint) (*draft.Draft, error) {
	var model models.DraftModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("user_id = ?", userID).
		Order("saved_at DESC").
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find draft: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DraftRepository) ListIDsByUserID(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.DraftModel{}).Where("user_id = ?", userID).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	return ids, nil
}

func (r *DraftRepository) DeleteByIDs(ctx context.Context, draftIDs []uint) error {
	if len(draftIDs) == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", draftIDs).Delete(&models.DraftModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete drafts: %w", err)
	}
	return nil
}

func (r *DraftRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.DraftModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count drafts: %w", err)
	}
	return total, nil
}
