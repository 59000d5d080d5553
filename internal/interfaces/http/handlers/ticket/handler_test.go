package ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "github.com/ticketdesk/ticketdesk/internal/application/ticket/dto"
	"github.com/ticketdesk/ticketdesk/internal/application/ticket/usecases"
	"github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/testutil"
	"github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
	got    usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*ticketdto.TicketDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
	got    usecases.GetTicketQuery
}

func (m *mockGetTicketUC) Execute(_ context.Context, q usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	m.got = q
	return m.result, m.err
}

type mockListTicketsUC struct {
	result *usecases.ListTicketsResult
	err    error
	got    usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(_ context.Context, q usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.got = q
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
	got    usecases.UpdateTicketCommand
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, cmd usecases.UpdateTicketCommand) (*ticketdto.TicketDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdateStatusUC struct {
	result *ticketdto.TicketDTO
	err    error
	got    usecases.UpdateTicketStatusCommand
	called bool
}

func (m *mockUpdateStatusUC) Execute(_ context.Context, cmd usecases.UpdateTicketStatusCommand) (*ticketdto.TicketDTO, error) {
	m.got = cmd
	m.called = true
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	result *usecases.DeleteTicketResult
	err    error
	got    usecases.DeleteTicketCommand
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, cmd usecases.DeleteTicketCommand) (*usecases.DeleteTicketResult, error) {
	m.got = cmd
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	updateStatusUC usecases.UpdateTicketStatusExecutor
	deleteTicketUC usecases.DeleteTicketExecutor
}

func newTestTicketHandler(deps testDeps) *TicketHandler {
	return NewTicketHandler(
		deps.createTicketUC,
		deps.getTicketUC,
		deps.listTicketsUC,
		deps.updateTicketUC,
		deps.updateStatusUC,
		deps.deleteTicketUC,
		logger.NewNopLogger(),
	)
}

const testUUID = "0b5e1c0e-8a43-4d47-9d2b-6f1f3e9a0c11"

func sampleTicket() *ticketdto.TicketDTO {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	return &ticketdto.TicketDTO{
		ID:        1,
		UUID:      testUUID,
		Subject:   "Printer on fire",
		Status:    "Open",
		Priority:  "Medium",
		Type:      "Question",
		CreatedBy: 1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// =====================================================================
// CreateTicket
// =====================================================================

func TestTicketHandler_CreateTicket_Success(t *testing.T) {
	mockUC := &mockCreateTicketUC{result: sampleTicket()}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	reqBody := CreateTicketRequest{
		Subject:     "Printer on fire",
		Description: "Smoke everywhere",
		Priority:    "High",
		VoiceNotes: []voicenote.VoiceNoteRequest{
			{Filename: "a.wav", OriginalName: "first.wav", Duration: 3, Size: 10},
		},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetUserContext(c, 7)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	assert.Equal(t, uint(7), mockUC.got.OwnerID)
	assert.Equal(t, "High", mockUC.got.Priority)
	assert.Empty(t, mockUC.got.Status)
	require.Len(t, mockUC.got.VoiceNotes, 1)
	assert.Equal(t, "a.wav", mockUC.got.VoiceNotes[0].Filename)
}

func TestTicketHandler_CreateTicket_MalformedBody(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	c, w := testutil.NewRawContext(http.MethodPost, "/tickets", `{"subject":`)
	testutil.SetUserContext(c, 1)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "validation_error", resp.Error.Type)
}

func TestTicketHandler_CreateTicket_VoiceNoteWithoutFilename(t *testing.T) {
	handler := newTestTicketHandler(testDeps{})

	reqBody := map[string]any{
		"subject":     "x",
		"voice_notes": []map[string]any{{"original_name": "a.wav"}},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", reqBody)
	testutil.SetUserContext(c, 1)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_CreateTicket_MissingUserContext(t *testing.T) {
	handler := newTestTicketHandler(testDeps{createTicketUC: &mockCreateTicketUC{}})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", CreateTicketRequest{Subject: "x"})

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestTicketHandler_CreateTicket_UseCaseError(t *testing.T) {
	mockUC := &mockCreateTicketUC{err: errors.NewValidationError("Subject is required")}
	handler := newTestTicketHandler(testDeps{createTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tickets", CreateTicketRequest{Subject: "  "})
	testutil.SetUserContext(c, 1)

	handler.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Subject is required", resp.Error.Message)
}

// =====================================================================
// GetTicket
// =====================================================================

func TestTicketHandler_GetTicket(t *testing.T) {
	tests := []struct {
		name       string
		param      string
		value      string
		wantStatus int
		wantRef    usecases.TicketRef
	}{
		{"by id", "id", "1", http.StatusOK, usecases.TicketRef{ID: 1}},
		{"by uuid", "uuid", testUUID, http.StatusOK, usecases.TicketRef{UUID: testUUID}},
		{"non numeric id", "id", "abc", http.StatusBadRequest, usecases.TicketRef{}},
		{"zero id", "id", "0", http.StatusBadRequest, usecases.TicketRef{}},
		{"malformed uuid", "uuid", "not-a-uuid", http.StatusBadRequest, usecases.TicketRef{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockGetTicketUC{result: sampleTicket()}
			handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

			c, w := testutil.NewTestContext(http.MethodGet, "/tickets/"+tt.value, nil)
			testutil.SetURLParam(c, tt.param, tt.value)

			handler.GetTicket(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantRef, mockUC.got.TicketRef)
		})
	}
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	mockUC := &mockGetTicketUC{err: errors.NewNotFoundError("Ticket not found")}
	handler := newTestTicketHandler(testDeps{getTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets/99", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "not_found", resp.Error.Type)
}

// =====================================================================
// ListTickets
// =====================================================================

func TestTicketHandler_ListTickets_PassesQuery(t *testing.T) {
	mockUC := &mockListTicketsUC{result: &usecases.ListTicketsResult{
		Tickets: []*ticketdto.TicketDTO{sampleTicket()},
		Total:   1,
		Offset:  5,
		Limit:   10,
	}}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{
		"skip":       "5",
		"limit":      "10",
		"sort_by":    "priority",
		"sort_order": "asc",
	})

	handler.ListTickets(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListTicketsQuery{Offset: 5, Limit: 10, SortBy: "priority", SortOrder: "asc"}, mockUC.got)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var list struct {
		Items []ticketdto.TicketDTO `json:"items"`
		Total int64                 `json:"total"`
		Skip  int                   `json:"skip"`
		Limit int                   `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Len(t, list.Items, 1)
	assert.EqualValues(t, 1, list.Total)
	assert.Equal(t, 5, list.Skip)
	assert.Equal(t, 10, list.Limit)
}

func TestTicketHandler_ListTickets_Defaults(t *testing.T) {
	mockUC := &mockListTicketsUC{result: &usecases.ListTicketsResult{Limit: 100}}
	handler := newTestTicketHandler(testDeps{listTicketsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)

	handler.ListTickets(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, mockUC.got.Offset)
	assert.Equal(t, 100, mockUC.got.Limit)
}

func TestTicketHandler_ListTickets_InvalidSkip(t *testing.T) {
	handler := newTestTicketHandler(testDeps{listTicketsUC: &mockListTicketsUC{}})

	c, w := testutil.NewTestContext(http.MethodGet, "/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"skip": "-1"})

	handler.ListTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// UpdateTicket
// =====================================================================

func TestTicketHandler_UpdateTicket_OnlyPresentFields(t *testing.T) {
	mockUC := &mockUpdateTicketUC{result: sampleTicket()}
	handler := newTestTicketHandler(testDeps{updateTicketUC: mockUC})

	c, w := testutil.NewRawContext(http.MethodPut, "/tickets/uuid/"+testUUID, `{"priority":"Low"}`)
	testutil.SetURLParam(c, "uuid", testUUID)

	handler.UpdateTicket(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testUUID, mockUC.got.UUID)
	require.NotNil(t, mockUC.got.Priority)
	assert.Equal(t, "Low", *mockUC.got.Priority)
	assert.Nil(t, mockUC.got.Subject)
	assert.Nil(t, mockUC.got.Description)
	assert.Empty(t, mockUC.got.VoiceNotes)
}

func TestTicketHandler_UpdateTicket_NotFound(t *testing.T) {
	mockUC := &mockUpdateTicketUC{err: errors.NewNotFoundError("Ticket not found")}
	handler := newTestTicketHandler(testDeps{updateTicketUC: mockUC})

	c, w := testutil.NewRawContext(http.MethodPut, "/tickets/5", `{"subject":"new"}`)
	testutil.SetURLParam(c, "id", "5")

	handler.UpdateTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// UpdateTicketStatus
// =====================================================================

func TestTicketHandler_UpdateTicketStatus(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		body       string
		wantStatus int
		wantValue  string
	}{
		{"from query", "Resolved", "", http.StatusOK, "Resolved"},
		{"from json body", "", `{"status":"Closed"}`, http.StatusOK, "Closed"},
		{"query wins over body", "Pending", `{"status":"Closed"}`, http.StatusOK, "Pending"},
		{"missing", "", "", http.StatusBadRequest, ""},
		{"malformed body", "", `{"status":`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockUpdateStatusUC{result: sampleTicket()}
			handler := newTestTicketHandler(testDeps{updateStatusUC: mockUC})

			c, w := testutil.NewRawContext(http.MethodPut, "/tickets/1/status", tt.body)
			testutil.SetURLParam(c, "id", "1")
			if tt.query != "" {
				testutil.SetQueryParams(c, map[string]string{"status": tt.query})
			}

			handler.UpdateTicketStatus(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantValue != "" {
				assert.Equal(t, tt.wantValue, mockUC.got.Status)
				assert.Equal(t, uint(1), mockUC.got.ID)
			} else {
				assert.False(t, mockUC.called)
			}
		})
	}
}

func TestTicketHandler_UpdateTicketStatus_InvalidValue(t *testing.T) {
	mockUC := &mockUpdateStatusUC{err: errors.NewValidationError("Invalid status: Bogus")}
	handler := newTestTicketHandler(testDeps{updateStatusUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPut, "/tickets/1/status", nil)
	testutil.SetURLParam(c, "id", "1")
	testutil.SetQueryParams(c, map[string]string{"status": "Bogus"})

	handler.UpdateTicketStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// DeleteTicket
// =====================================================================

func TestTicketHandler_DeleteTicket(t *testing.T) {
	mockUC := &mockDeleteTicketUC{result: &usecases.DeleteTicketResult{ID: 3, UUID: testUUID, RemovedVoiceNotes: 2}}
	handler := newTestTicketHandler(testDeps{deleteTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tickets/3", nil)
	testutil.SetURLParam(c, "id", "3")

	handler.DeleteTicket(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), mockUC.got.ID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.JSONEq(t, `{"id":3,"uuid":"`+testUUID+`","removed_voice_notes":2}`, string(resp.Data))
}

func TestTicketHandler_DeleteTicket_NotFound(t *testing.T) {
	mockUC := &mockDeleteTicketUC{err: errors.NewNotFoundError("Ticket not found")}
	handler := newTestTicketHandler(testDeps{deleteTicketUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tickets/uuid/"+testUUID, nil)
	testutil.SetURLParam(c, "uuid", testUUID)

	handler.DeleteTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, testUUID, mockUC.got.UUID)
}
