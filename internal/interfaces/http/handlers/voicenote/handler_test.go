package voicenote

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vdto "github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
	"github.com/ticketdesk/ticketdesk/internal/application/voicenote/usecases"
	"github.com/ticketdesk/ticketdesk/internal/interfaces/http/handlers/testutil"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

type mockUploadUC struct {
	result *vdto.UploadResultDTO
	err    error
	got    usecases.UploadVoiceNoteCommand
	called bool
}

func (m *mockUploadUC) Execute(_ context.Context, cmd usecases.UploadVoiceNoteCommand) (*vdto.UploadResultDTO, error) {
	m.got = cmd
	m.called = true
	return m.result, m.err
}

type mockDeleteUC struct {
	result *usecases.DeleteVoiceNoteResult
	err    error
	got    usecases.DeleteVoiceNoteCommand
}

func (m *mockDeleteUC) Execute(_ context.Context, cmd usecases.DeleteVoiceNoteCommand) (*usecases.DeleteVoiceNoteResult, error) {
	m.got = cmd
	return m.result, m.err
}

func TestHandler_Upload(t *testing.T) {
	upload := &mockUploadUC{result: &vdto.UploadResultDTO{Filename: "x.wav", Size: 5}}
	h := NewHandler(upload, &mockDeleteUC{}, 1024, logger.NewNopLogger())

	c, w := testutil.NewUploadContext("/voice-notes/upload", "memo.wav", "audio/wav", []byte("RIFF!"))

	h.Upload(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "memo.wav", upload.got.Filename)
	assert.Equal(t, "audio/wav", upload.got.ContentType)
	assert.Equal(t, []byte("RIFF!"), upload.got.Data)
}

func TestHandler_Upload_ReadsOnePastTheCap(t *testing.T) {
	upload := &mockUploadUC{err: errors.NewPayloadTooLargeError("too large")}
	h := NewHandler(upload, &mockDeleteUC{}, 8, logger.NewNopLogger())

	c, w := testutil.NewUploadContext("/voice-notes/upload", "memo.wav", "audio/wav", bytes.Repeat([]byte("a"), 64))

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, upload.got.Data, 9)
}

func TestHandler_Upload_RejectedType(t *testing.T) {
	upload := &mockUploadUC{err: errors.NewUnsupportedMediaTypeError("File type video/mp4 not allowed")}
	h := NewHandler(upload, &mockDeleteUC{}, 1024, logger.NewNopLogger())

	c, w := testutil.NewUploadContext("/voice-notes/upload", "clip.mp4", "video/mp4", []byte("...."))

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "unsupported_media_type", resp.Error.Type)
}

func TestHandler_Upload_MissingFile(t *testing.T) {
	upload := &mockUploadUC{}
	h := NewHandler(upload, &mockDeleteUC{}, 1024, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/voice-notes/upload", map[string]string{"file": "nope"})

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, upload.called)
}

func TestHandler_Delete(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		del := &mockDeleteUC{result: &usecases.DeleteVoiceNoteResult{Filename: "x.wav", RemovedRecords: 1}}
		h := NewHandler(&mockUploadUC{}, del, 1024, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/voice-notes/x.wav", nil)
		testutil.SetURLParam(c, "filename", "x.wav")

		h.Delete(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "x.wav", del.got.Filename)
	})

	t.Run("missing file", func(t *testing.T) {
		del := &mockDeleteUC{err: errors.NewNotFoundError("File not found")}
		h := NewHandler(&mockUploadUC{}, del, 1024, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodDelete, "/voice-notes/gone.wav", nil)
		testutil.SetURLParam(c, "filename", "gone.wav")

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestToInputs(t *testing.T) {
	assert.Nil(t, ToInputs(nil))

	id := uint(9)
	inputs := ToInputs([]VoiceNoteRequest{{ID: &id, Filename: "a.wav", OriginalName: "a", Duration: 1.5, Size: 3, Timestamp: "ignored"}})
	assert.Equal(t, []vdto.VoiceNoteInput{{Filename: "a.wav", OriginalName: "a", Duration: 1.5, Size: 3}}, inputs)
}
