package mappers

import (
	"fmt"

	"github.com/ticketdesk/ticketdesk/internal/domain/user"
	vo "github.com/ticketdesk/ticketdesk/internal/domain/user/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/infrastructure/persistence/models"
	"github.com/ticketdesk/ticketdesk/internal/shared/biztime"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	return user.ReconstructUser(
		model.ID,
		model.UUID,
		email,
		model.Username,
		model.IsActive,
		biztime.FromMillis(model.CreatedAt),
	)
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        entity.ID(),
		UUID:      entity.UUID(),
		Email:     entity.Email().String(),
		Username:  entity.Username(),
		IsActive:  entity.IsActive(),
		CreatedAt: entity.CreatedAt().UnixMilli(),
	}
}
