package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketdesk/ticketdesk/internal/application/testutil"
	"github.com/ticketdesk/ticketdesk/internal/application/user/dto"
	domainUser "github.com/ticketdesk/ticketdesk/internal/domain/user"
	vo "github.com/ticketdesk/ticketdesk/internal/domain/user/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

func TestEnsureUser_CreatesOnce(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	uc := NewEnsureUserUseCase(repo, logger.NewNopLogger())
	req := dto.EnsureUserRequest{Email: "Admin@Example.com", Username: "admin"}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "admin@example.com", first.Email)
	assert.True(t, first.IsActive)
	count, _ := repo.Count(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestEnsureUser_ConcurrentInsertReturnsWinner(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	email, err := vo.NewEmail("admin@example.com")
	require.NoError(t, err)
	winner, err := domainUser.NewUser(email, "admin")
	require.NoError(t, err)

	repo.BeforeCreate = func() {
		repo.Put(winner)
		repo.CreateErr = stderrors.New("UNIQUE constraint failed: users.email")
	}

	uc := NewEnsureUserUseCase(repo, logger.NewNopLogger())
	got, err := uc.Execute(context.Background(), dto.EnsureUserRequest{Email: "admin@example.com", Username: "admin"})
	require.NoError(t, err)
	assert.Equal(t, winner.ID(), got.ID)
	assert.Equal(t, winner.UUID(), got.UUID)
}

func TestEnsureUser_Errors(t *testing.T) {
	repo := testutil.NewMockUserRepository()
	uc := NewEnsureUserUseCase(repo, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), dto.EnsureUserRequest{Email: "not-an-email", Username: "admin"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), dto.EnsureUserRequest{Email: "a@example.com", Username: " "})
	assert.True(t, errors.IsValidationError(err))

	repo.GetErr = stderrors.New("db down")
	_, err = uc.Execute(context.Background(), dto.EnsureUserRequest{Email: "a@example.com", Username: "admin"})
	require.Error(t, err)
	assert.False(t, errors.IsAppError(err))
}
