package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/persistence/mappers"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/persistence/models"
	"github.com/ticketdesk/ticketdesk/internal/shared/db"
)

const standaloneCondition = "ticket_id IS NULL AND draft_id IS NULL"

type VoiceNoteRepository struct {
	db     *gorm.DB
	mapper mappers.VoiceNoteMapper
}

func NewVoiceNoteRepository(db *gorm.DB) *VoiceNoteRepository {
	return &VoiceNoteRepository{
		db:     db,
		mapper: mappers.NewVoiceNoteMapper(),
	}
}

func (r *VoiceNoteRepository) Create(ctx context.Context, note *voicenote.VoiceNote) error {
	model := r.mapper.ToModel(note)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create voice note: %w", err)
	}

	return note.SetID(model.ID)
}

func (r *VoiceNoteRepository) UpdateOwner(ctx context.Context, note *voicenote.VoiceNote) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.VoiceNoteModel{}).
		Where("id = ?", note.ID()).
		Updates(map[string]any{
			"ticket_id": note.TicketID(),
			"draft_id":  note.DraftID(),
			"duration":  note.Duration(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update voice note owner: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("voice note %d not found", note.ID())
	}
	return nil
}

func (r *VoiceNoteRepository) GetByID(ctx context.Context, noteID uint) (*voicenote.VoiceNote, error) {
	var model models.VoiceNoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, noteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find voice note: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *VoiceNoteRepository) FindStandaloneByFilename(ctx context.Context, filename string) (*voicenote.VoiceNote, error) {
	var model models.VoiceNoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("filename = ?", filename).
		Where(standaloneCondition).
		Order("id ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find standalone voice note: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *VoiceNoteRepository) FindLatestByFilename(ctx context.Context, filename string) (*voicenote.VoiceNote, error) {
	var model models.VoiceNoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("filename = ?", filename).
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find voice note by filename: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *VoiceNoteRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*voicenote.VoiceNote, error) {
	return r.list(ctx, "ticket_id = ?", ticketID)
}

func (r *VoiceNoteRepository) ListByDraftID(ctx context.Context, draftID uint) ([]*voicenote.VoiceNote, error) {
	return r.list(ctx, "draft_id = ?", draftID)
}

// ListByTicketIDs groups notes per ticket, each group newest first. Tickets
// without notes are absent from the map.
func (r *VoiceNoteRepository) ListByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint][]*voicenote.VoiceNote, error) {
	result := make(map[uint][]*voicenote.VoiceNote)
	if len(ticketIDs) == 0 {
		return result, nil
	}

	notes, err := r.list(ctx, "ticket_id IN ?", ticketIDs)
	if err != nil {
		return nil, err
	}
	for _, note := range notes {
		ticketID := *note.TicketID()
		result[ticketID] = append(result[ticketID], note)
	}
	return result, nil
}

func (r *VoiceNoteRepository) list(ctx context.Context, query string, arg any) ([]*voicenote.VoiceNote, error) {
	var noteModels []models.VoiceNoteModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where(query, arg).
		Order("created_at DESC").
		Order("id DESC").
		Find(&noteModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list voice notes: %w", err)
	}

	notes := make([]*voicenote.VoiceNote, 0, len(noteModels))
	for i := range noteModels {
		note, err := r.mapper.ToDomain(&noteModels[i])
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func (r *VoiceNoteRepository) DeleteByTicketID(ctx context.Context, ticketID uint) ([]string, error) {
	return r.deleteWhere(ctx, "ticket_id = ?", ticketID)
}

func (r *VoiceNoteRepository) DeleteByDraftID(ctx context.Context, draftID uint) ([]string, error) {
	return r.deleteWhere(ctx, "draft_id = ?", draftID)
}

func (r *VoiceNoteRepository) deleteWhere(ctx context.Context, query string, arg any) ([]string, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var filenames []string
	if err := tx.Model(&models.VoiceNoteModel{}).Where(query, arg).Pluck("filename", &filenames).Error; err != nil {
		return nil, fmt.Errorf("failed to collect voice note files: %w", err)
	}
	if len(filenames) == 0 {
		return nil, nil
	}

	if err := tx.Where(query, arg).Delete(&models.VoiceNoteModel{}).Error; err != nil {
		return nil, fmt.Errorf("failed to delete voice notes: %w", err)
	}
	return filenames, nil
}

func (r *VoiceNoteRepository) DeleteStandaloneByFilename(ctx context.Context, filename string) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Where("filename = ?", filename).Where(standaloneCondition).Delete(&models.VoiceNoteModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete standalone voice notes: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *VoiceNoteRepository) CountByFilename(ctx context.Context, filename string) (int64, error) {
	return r.count(ctx, "filename = ?", filename)
}

func (r *VoiceNoteRepository) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, "1 = 1")
}

func (r *VoiceNoteRepository) CountStandalone(ctx context.Context) (int64, error) {
	return r.count(ctx, standaloneCondition)
}

func (r *VoiceNoteRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var total int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.VoiceNoteModel{}).Where(query, args...).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count voice notes: %w", err)
	}
	return total, nil
}
