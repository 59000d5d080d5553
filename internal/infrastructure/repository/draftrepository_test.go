package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketdesk/ticketdesk/internal/domain/draft"
	vo "github.com/ticketdesk/ticketdesk/internal/domain/ticket/valueobjects"
	"github.com/ticketdesk/ticketdesk/internal/shared/biztime"
)

func TestDraftRepository(t *testing.T) {
	clock := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	restore := biztime.SetClock(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})
	defer restore()

	repo := NewDraftRepository(setupTestDB(t))

	none, err := repo.GetLatestByUserID(ctx(), 1)
	require.NoError(t, err)
	assert.Nil(t, none)

	older, err := draft.NewDraft("older", "", vo.StatusOpen, vo.PriorityLow, vo.TypeQuestion, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx(), older))

	newer, err := draft.NewDraft("newer", "body", vo.StatusPending, vo.PriorityHigh, vo.TypeIncident, 1)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx(), newer))

	other, err := draft.NewDraft("other user", "", vo.StatusOpen, vo.PriorityLow, vo.TypeQuestion, 2)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx(), other))

	latest, err := repo.GetLatestByUserID(ctx(), 1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, newer.ID(), latest.ID())
	assert.Equal(t, "body", latest.Description())
	assert.Equal(t, vo.TypeIncident, latest.Type())

	ids, err := repo.ListIDsByUserID(ctx(), 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{older.ID(), newer.ID()}, ids)

	require.NoError(t, repo.DeleteByIDs(ctx(), ids))
	require.NoError(t, repo.DeleteByIDs(ctx(), nil))

	count, err := repo.Count(ctx())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
