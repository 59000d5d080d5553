package models

import "github.com/ticketdesk/ticketdesk/internal/shared/constants"

// TicketModel timestamps are unix milliseconds set by the domain, not by GORM,
// so updated_at keeps the aggregate's strictly increasing value.
type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	UUID        string `gorm:"column:uuid;uniqueIndex;size:36;not null"`
	Subject     string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"size:20;not null;index"`
	Priority    string `gorm:"size:20;not null;index"`
	Type        string `gorm:"column:type;size:30;not null"`
	CreatedBy   uint   `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"not null;index"`
	UpdatedAt   int64  `gorm:"not null"`

	// No foreign keys; ownership is maintained by the application.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}
