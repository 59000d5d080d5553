package usecases

import (
	"context"
	"fmt"
	"mime"
	"path"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/constants"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/id"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

// UploadPolicy bounds what Upload accepts.
type UploadPolicy struct {
	MaxFileSize         int64
	AllowedContentTypes []string
	PublicPrefix        string
}

type UploadVoiceNoteCommand struct {
	Filename    string
	ContentType string
	Data        []byte
}

type UploadVoiceNoteUseCase struct {
	repo   voicenote.Repository
	files  voicenote.FileStore
	policy UploadPolicy
	logger logger.Interface
}

func NewUploadVoiceNoteUseCase(
	repo voicenote.Repository,
	files voicenote.FileStore,
	policy UploadPolicy,
	logger logger.Interface,
) *UploadVoiceNoteUseCase {
	if policy.MaxFileSize <= 0 {
		policy.MaxFileSize = constants.DefaultMaxFileSize
	}
	if len(policy.AllowedContentTypes) == 0 {
		policy.AllowedContentTypes = constants.DefaultAllowedContentTypes
	}
	if policy.PublicPrefix == "" {
		policy.PublicPrefix = constants.DefaultPublicPrefix
	}
	return &UploadVoiceNoteUseCase{
		repo:   repo,
		files:  files,
		policy: policy,
		logger: logger,
	}
}

// Execute stores the bytes, then inserts a standalone record. The file is
// removed again if the insert fails.
func (uc *UploadVoiceNoteUseCase) Execute(ctx context.Context, cmd UploadVoiceNoteCommand) (*dto.UploadResultDTO, error) {
	uc.logger.Infow("executing upload voice note use case",
		"filename", cmd.Filename,
		"content_type", cmd.ContentType,
		"size", len(cmd.Data),
	)

	contentType := normalizeContentType(cmd.ContentType)
	if !slices.Contains(uc.policy.AllowedContentTypes, contentType) {
		return nil, errors.NewUnsupportedMediaTypeError(
			fmt.Sprintf("File type %s not allowed. Allowed types: %s",
				cmd.ContentType, strings.Join(uc.policy.AllowedContentTypes, ", ")),
		)
	}

	size := int64(len(cmd.Data))
	if size > uc.policy.MaxFileSize {
		return nil, errors.NewPayloadTooLargeError(
			fmt.Sprintf("File size exceeds maximum allowed size of %d bytes", uc.policy.MaxFileSize),
		)
	}

	originalName := cleanOriginalName(cmd.Filename)
	storedName := id.StoredFilename(originalName, extensionFor(contentType))

	if detected := mimetype.Detect(cmd.Data); !detected.Is(contentType) {
		uc.logger.Debugw("declared content type differs from detected",
			"declared", contentType,
			"detected", detected.String(),
		)
	}

	filePath, err := uc.files.Write(ctx, storedName, cmd.Data)
	if err != nil {
		uc.logger.Errorw("failed to write voice note file", "filename", storedName, "error", err)
		return nil, errors.NewStorageError("failed to store voice note")
	}

	note, err := voicenote.NewVoiceNote(storedName, originalName, filePath, contentType, size, 0)
	if err != nil {
		uc.removeFile(ctx, storedName)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, note); err != nil {
		uc.logger.Errorw("failed to save voice note metadata", "filename", storedName, "error", err)
		uc.removeFile(ctx, storedName)
		return nil, errors.NewStorageError("failed to save voice note metadata")
	}

	uc.logger.Infow("voice note uploaded successfully", "voice_note_id", note.ID(), "filename", storedName)

	return &dto.UploadResultDTO{
		Filename:     note.Filename(),
		OriginalName: note.OriginalName(),
		URL:          dto.URLFor(uc.policy.PublicPrefix, note.Filename()),
		Size:         note.Size(),
		UUID:         note.UUID(),
		ContentType:  note.ContentType(),
	}, nil
}

func (uc *UploadVoiceNoteUseCase) removeFile(ctx context.Context, filename string) {
	if err := uc.files.Delete(ctx, filename); err != nil {
		uc.logger.Warnw("failed to remove voice note file after failed upload", "filename", filename, "error", err)
	}
}

// normalizeContentType drops parameters such as codecs=opus.
func normalizeContentType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

func cleanOriginalName(filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), `\`, "/"))
	if name == "." || name == "/" || name == ".." || name == "" {
		return constants.DefaultVoiceNoteFilename
	}
	return name
}

// extensionFor is used when the client filename carries no extension.
func extensionFor(contentType string) string {
	if m := mimetype.Lookup(contentType); m != nil && m.Extension() != "" {
		return m.Extension()
	}
	return constants.DefaultVoiceNoteExt
}
