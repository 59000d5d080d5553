package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vdto "github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/services/markdown"
)

func TestCreateTicket_AppliesDefaults(t *testing.T) {
	f := newFixture()

	result, err := f.create.Execute(context.Background(), CreateTicketCommand{
		OwnerID:     1,
		Subject:     "Cannot print",
		Description: "Printer says PC LOAD LETTER",
	})
	require.NoError(t, err)

	assert.NotZero(t, result.ID)
	assert.NotEmpty(t, result.UUID)
	assert.Equal(t, "Open", result.Status)
	assert.Equal(t, "Medium", result.Priority)
	assert.Equal(t, "Question", result.Type)
	assert.Equal(t, uint(1), result.CreatedBy)
	assert.Equal(t, result.CreatedAt, result.UpdatedAt)
	assert.NotNil(t, result.VoiceNotes)
	assert.Empty(t, result.VoiceNotes)
	assert.Empty(t, result.DescriptionHTML)
	assert.Equal(t, 1, f.tx.Calls)
}

func TestCreateTicket_NormalizesEnumSpellings(t *testing.T) {
	f := newFixture()

	result, err := f.create.Execute(context.Background(), CreateTicketCommand{
		OwnerID:  1,
		Subject:  "s",
		Status:   "in_progress",
		Priority: "HIGH",
		Type:     "feature-request",
	})
	require.NoError(t, err)

	assert.Equal(t, "In Progress", result.Status)
	assert.Equal(t, "High", result.Priority)
	assert.Equal(t, "Feature Request", result.Type)
}

func TestCreateTicket_AttachesVoiceNotes(t *testing.T) {
	f := newFixture()

	result := f.createTicket(t, "With audio", "a.wav", "b.wav")

	assert.Equal(t, []string{"b.wav", "a.wav"}, noteNames(result.VoiceNotes))
	assert.Equal(t, "/uploads/a.wav", result.VoiceNotes[1].URL)
	standalone, _ := f.voiceNotes.CountStandalone(context.Background())
	assert.Zero(t, standalone)
}

func TestCreateTicket_RendersDescription(t *testing.T) {
	f := newFixture()
	f.create = NewCreateTicketUseCase(f.tickets, f.voiceNotes, f.attacher, f.tx,
		dtoOptsWithRenderer(markdown.NewRenderer()), f.log)

	result, err := f.create.Execute(context.Background(), CreateTicketCommand{
		OwnerID:     1,
		Subject:     "s",
		Description: "**urgent**",
	})
	require.NoError(t, err)
	assert.Equal(t, "**urgent**", result.Description)
	assert.Contains(t, result.DescriptionHTML, "<strong>urgent</strong>")
}

func TestCreateTicket_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{"empty subject", CreateTicketCommand{OwnerID: 1, Subject: ""}},
		{"blank subject", CreateTicketCommand{OwnerID: 1, Subject: "   "}},
		{"bad status", CreateTicketCommand{OwnerID: 1, Subject: "s", Status: "Frozen"}},
		{"bad priority", CreateTicketCommand{OwnerID: 1, Subject: "s", Priority: "Urgent"}},
		{"bad type", CreateTicketCommand{OwnerID: 1, Subject: "s", Type: "Chore"}},
		{"bad voice note filename", CreateTicketCommand{OwnerID: 1, Subject: "s", VoiceNotes: []vdto.VoiceNoteInput{{Filename: "../../x"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.create.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err), err.Error())
		})
	}
}

func TestCreateTicket_TransactionFailure(t *testing.T) {
	f := newFixture()
	f.tx.Err = stderrors.New("connection reset")

	_, err := f.create.Execute(context.Background(), CreateTicketCommand{OwnerID: 1, Subject: "s"})
	require.Error(t, err)

	count, _ := f.tickets.Count(context.Background())
	assert.Zero(t, count)
}
