package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ticketdesk/ticketdesk/internal/application/testutil"
	"github.com/ticketdesk/ticketdesk/internal/application/ticket/dto"
	vdto "github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
	"github.com/ticketdesk/ticketdesk/internal/application/voicenote/services"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

type fixture struct {
	tickets    *testutil.MockTicketRepository
	voiceNotes *testutil.MockVoiceNoteRepository
	files      *testutil.MockFileStore
	tx         *testutil.MockTransactor
	attacher   *services.AttachmentService
	opts       dto.ViewOptions
	log        logger.Interface

	create *CreateTicketUseCase
	get    *GetTicketUseCase
	list   *ListTicketsUseCase
	update *UpdateTicketUseCase
	status *UpdateTicketStatusUseCase
	delete *DeleteTicketUseCase
}

func newFixture() *fixture {
	f := &fixture{
		tickets:    testutil.NewMockTicketRepository(),
		voiceNotes: testutil.NewMockVoiceNoteRepository(),
		files:      testutil.NewMockFileStore(),
		tx:         &testutil.MockTransactor{},
		opts:       dto.ViewOptions{PublicPrefix: "/uploads"},
		log:        logger.NewNopLogger(),
	}
	f.attacher = services.NewAttachmentService(f.voiceNotes, f.files, "uploads", 1<<20, f.log)

	f.create = NewCreateTicketUseCase(f.tickets, f.voiceNotes, f.attacher, f.tx, f.opts, f.log)
	f.get = NewGetTicketUseCase(f.tickets, f.voiceNotes, f.opts, f.log)
	f.list = NewListTicketsUseCase(f.tickets, f.voiceNotes, f.opts, f.log)
	f.update = NewUpdateTicketUseCase(f.tickets, f.voiceNotes, f.attacher, f.tx, f.opts, f.log)
	f.status = NewUpdateTicketStatusUseCase(f.tickets, f.voiceNotes, f.tx, f.opts, f.log)
	f.delete = NewDeleteTicketUseCase(f.tickets, f.voiceNotes, f.attacher, f.tx, f.log)
	return f
}

// upload stores a file and its standalone record, as the upload endpoint would.
func (f *fixture) upload(t *testing.T, filename string) {
	t.Helper()
	ctx := context.Background()
	_, err := f.files.Write(ctx, filename, []byte(filename))
	require.NoError(t, err)
	note, err := voicenote.NewVoiceNote(filename, filename, "uploads/"+filename, "audio/wav", int64(len(filename)), 0)
	require.NoError(t, err)
	require.NoError(t, f.voiceNotes.Create(ctx, note))
}

func (f *fixture) createTicket(t *testing.T, subject string, notes ...string) *dto.TicketDTO {
	t.Helper()
	inputs := make([]vdto.VoiceNoteInput, 0, len(notes))
	for _, n := range notes {
		f.upload(t, n)
		inputs = append(inputs, vdto.VoiceNoteInput{Filename: n})
	}
	result, err := f.create.Execute(context.Background(), CreateTicketCommand{
		OwnerID:    1,
		Subject:    subject,
		VoiceNotes: inputs,
	})
	require.NoError(t, err)
	return result
}

func noteNames(notes []vdto.VoiceNoteDTO) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Filename)
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}
