package models

import "github.com/ticketdesk/ticketdesk/internal/shared/constants"

// UserModel represents the database persistence model for users.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	UUID      string `gorm:"column:uuid;uniqueIndex;size:36;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Username  string `gorm:"uniqueIndex;size:100;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt int64  `gorm:"not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
