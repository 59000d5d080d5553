package draft

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	draftdto "github.com/ticketdesk/ticketdesk/internal/application/draft/dto"
	"github.com/ticketdesk/ticketdesk/internal/application/draft/usecases"
	"github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/testutil"
	"github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

type mockSaveDraftUC struct {
	result *draftdto.DraftDTO
	err    error
	got    usecases.SaveDraftCommand
}

func (m *mockSaveDraftUC) Execute(_ context.Context, cmd usecases.SaveDraftCommand) (*draftdto.DraftDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetDraftUC struct {
	result *draftdto.DraftDTO
	err    error
	got    usecases.GetDraftQuery
}

func (m *mockGetDraftUC) Execute(_ context.Context, q usecases.GetDraftQuery) (*draftdto.DraftDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockDeleteDraftUC struct {
	result *usecases.DeleteDraftResult
	err    error
}

func (m *mockDeleteDraftUC) Execute(_ context.Context, _ usecases.DeleteDraftCommand) (*usecases.DeleteDraftResult, error) {
	return m.result, m.err
}

func sampleDraft() *draftdto.DraftDTO {
	return &draftdto.DraftDTO{
		ID:       1,
		UUID:     "3f0e2a56-5d0f-4c8e-a5c2-1c2b3d4e5f60",
		Subject:  "half written",
		Status:   "Open",
		Priority: "Medium",
		Type:     "Question",
		UserID:   4,
		SavedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestHandler_SaveDraft(t *testing.T) {
	save := &mockSaveDraftUC{result: sampleDraft()}
	h := NewHandler(save, &mockGetDraftUC{}, &mockDeleteDraftUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/drafts", SaveDraftRequest{
		Subject:    "half written",
		Type:       "Incident",
		VoiceNotes: []voicenote.VoiceNoteRequest{{Filename: "n.webm", Size: 4}},
	})
	testutil.SetUserContext(c, 4)

	h.SaveDraft(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(4), save.got.OwnerID)
	assert.Equal(t, "Incident", save.got.Type)
	require.Len(t, save.got.VoiceNotes, 1)
	assert.Equal(t, "n.webm", save.got.VoiceNotes[0].Filename)
}

func TestHandler_SaveDraft_InvalidEnum(t *testing.T) {
	save := &mockSaveDraftUC{err: errors.NewValidationError("Invalid priority: Urgent")}
	h := NewHandler(save, &mockGetDraftUC{}, &mockDeleteDraftUC{}, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/drafts", SaveDraftRequest{Priority: "Urgent"})
	testutil.SetUserContext(c, 4)

	h.SaveDraft(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetDraft(t *testing.T) {
	t.Run("returns the draft", func(t *testing.T) {
		get := &mockGetDraftUC{result: sampleDraft()}
		h := NewHandler(&mockSaveDraftUC{}, get, &mockDeleteDraftUC{}, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/drafts", nil)
		testutil.SetUserContext(c, 4)

		h.GetDraft(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(4), get.got.OwnerID)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, string(resp.Data), `"subject":"half written"`)
	})

	t.Run("no draft is an empty success", func(t *testing.T) {
		h := NewHandler(&mockSaveDraftUC{}, &mockGetDraftUC{}, &mockDeleteDraftUC{}, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/drafts", nil)
		testutil.SetUserContext(c, 4)

		h.GetDraft(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"data":null,"message":"No draft found"}`, w.Body.String())
	})
}

func TestHandler_DeleteDraft(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		del := &mockDeleteDraftUC{result: &usecases.DeleteDraftResult{RemovedDrafts: 1, RemovedVoiceNotes: 2}}
		h := NewHandler(&mockSaveDraftUC{}, &mockGetDraftUC{}, del, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/drafts", nil)
		testutil.SetUserContext(c, 4)

		h.DeleteDraft(c)

		require.Equal(t, http.StatusOK, w.Code)

		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.JSONEq(t, `{"removed_drafts":1,"removed_voice_notes":2}`, string(resp.Data))
	})

	t.Run("nothing to delete", func(t *testing.T) {
		del := &mockDeleteDraftUC{err: errors.NewNotFoundError("No draft found")}
		h := NewHandler(&mockSaveDraftUC{}, &mockGetDraftUC{}, del, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/drafts", nil)
		testutil.SetUserContext(c, 4)

		h.DeleteDraft(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
