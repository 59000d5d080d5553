package usecases

import (
	"context"
	"fmt"

	"github.com/ticketdesk/ticketdesk/internal/application/user/dto"
	domainUser "github.com/ticketdesk/ticketdesk/internal/domain/user"
	vo "github.com/ticketdesk/ticketdesk/internal/domain/user/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
	"github.com/ticketdesk/ticketdesk/internal/shared/utils"
)

type EnsureUserExecutor interface {
	Execute(ctx context.Context, request dto.EnsureUserRequest) (*dto.UserResponse, error)
}

// EnsureUserUseCase returns the user with the requested email, creating it on
// first use. Every request acts as this user since there is no login.
type EnsureUserUseCase struct {
	userRepo domainUser.Repository
	logger   logger.Interface
}

func NewEnsureUserUseCase(
	userRepo domainUser.Repository,
	logger logger.Interface,
) *EnsureUserUseCase {
	return &EnsureUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *EnsureUserUseCase) Execute(ctx context.Context, request dto.EnsureUserRequest) (*dto.UserResponse, error) {
	uc.logger.Debugw("executing ensure user use case", "email", utils.MaskEmail(request.Email))

	email, err := vo.NewEmail(request.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid email", err.Error())
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("database error while checking for existing user", "email", utils.MaskEmail(request.Email), "error", err)
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return dto.ToUserResponse(existing), nil
	}

	userEntity, err := domainUser.NewUser(email, request.Username)
	if err != nil {
		return nil, errors.NewValidationError("invalid user", err.Error())
	}

	if err := uc.userRepo.Create(ctx, userEntity); err != nil {
		// Another process may have created it between the lookup and insert.
		if errors.IsDuplicateError(err) {
			existing, getErr := uc.userRepo.GetByEmail(ctx, email.String())
			if getErr == nil && existing != nil {
				return dto.ToUserResponse(existing), nil
			}
		}
		uc.logger.Errorw("failed to persist user", "error", err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	uc.logger.Infow("user created successfully", "id", userEntity.ID(), "email", utils.MaskEmail(email.String()))
	return dto.ToUserResponse(userEntity), nil
}
