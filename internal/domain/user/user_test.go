package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/ticketdesk/ticketdesk/internal/domain/user/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/shared/id"
)

func mustEmail(t *testing.T, s string) *vo.Email {
	t.Helper()
	email, err := vo.NewEmail(s)
	require.NoError(t, err)
	return email
}

func TestNewUser(t *testing.T) {
	u, err := NewUser(mustEmail(t, "admin@example.com"), " admin ")
	require.NoError(t, err)

	assert.Zero(t, u.ID())
	assert.True(t, id.IsValid(u.UUID()))
	assert.Equal(t, "admin", u.Username())
	assert.Equal(t, "admin@example.com", u.Email().String())
	assert.True(t, u.IsActive())
	assert.False(t, u.CreatedAt().IsZero())

	_, err = NewUser(nil, "admin")
	assert.Error(t, err)

	_, err = NewUser(mustEmail(t, "admin@example.com"), "  ")
	assert.Error(t, err)
}

func TestReconstructUser(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	u, err := ReconstructUser(7, "uuid-7", mustEmail(t, "x@example.com"), "x", false, created)
	require.NoError(t, err)
	assert.Equal(t, uint(7), u.ID())
	assert.False(t, u.IsActive())
	assert.Equal(t, created, u.CreatedAt())

	_, err = ReconstructUser(0, "uuid", mustEmail(t, "x@example.com"), "x", true, created)
	assert.Error(t, err)
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser(mustEmail(t, "admin@example.com"), "admin")
	require.NoError(t, err)

	assert.Error(t, u.SetID(0))
	require.NoError(t, u.SetID(1))
	assert.Error(t, u.SetID(2))
}
