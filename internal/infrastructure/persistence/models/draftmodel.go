package models

import "github.com/ticketdesk/ticketdesk/internal/shared/constants"

type DraftModel struct {
	ID          uint   `gorm:"primaryKey"`
	UUID        string `gorm:"column:uuid;uniqueIndex;size:36;not null"`
	Subject     string `gorm:"size:255"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:20;not null"`
	Priority    string `gorm:"size:20;not null"`
	Type        string `gorm:"column:type;size:30;not null"`
	UserID      uint   `gorm:"not null;index"`
	SavedAt     int64  `gorm:"not null"`
}

func (DraftModel) TableName() string {
	return constants.TableDrafts
}
