// Package services holds voice note logic shared by the ticket and draft
// write paths.
package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/ticketdesk/ticketdesk/internal/application/voicenote/dto"
	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
	"github.com/ticketdesk/ticketdesk/internal/shared/constants"
	"github.com/ticketdesk/ticketdesk/internal/shared/errors"
	"github.com/ticketdesk/ticketdesk/internal/shared/logger"
)

// AttachmentService associates uploaded files with tickets and drafts and
// removes files nothing references anymore.
type AttachmentService struct {
	repo        voicenote.Repository
	files       voicenote.FileStore
	uploadDir   string
	maxFileSize int64
	logger      logger.Interface
}

func NewAttachmentService(
	repo voicenote.Repository,
	files voicenote.FileStore,
	uploadDir string,
	maxFileSize int64,
	logger logger.Interface,
) *AttachmentService {
	if maxFileSize <= 0 {
		maxFileSize = constants.DefaultMaxFileSize
	}
	return &AttachmentService{
		repo:        repo,
		files:       files,
		uploadDir:   uploadDir,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// AttachToTicket must run inside the caller's write transaction.
func (s *AttachmentService) AttachToTicket(ctx context.Context, ticketID uint, inputs []dto.VoiceNoteInput) error {
	return s.attach(ctx, inputs, func(note *voicenote.VoiceNote) error {
		return note.AssignToTicket(ticketID)
	})
}

// AttachToDraft must run inside the caller's write transaction.
func (s *AttachmentService) AttachToDraft(ctx context.Context, draftID uint, inputs []dto.VoiceNoteInput) error {
	return s.attach(ctx, inputs, func(note *voicenote.VoiceNote) error {
		return note.AssignToDraft(draftID)
	})
}

// attach claims the oldest standalone record for each filename, or creates a
// new owned record pointing at the same stored file.
func (s *AttachmentService) attach(ctx context.Context, inputs []dto.VoiceNoteInput, assign func(*voicenote.VoiceNote) error) error {
	for _, in := range inputs {
		if err := voicenote.ValidateFilename(in.Filename); err != nil {
			return errors.NewValidationError(err.Error())
		}

		note, err := s.repo.FindStandaloneByFilename(ctx, in.Filename)
		if err != nil {
			return err
		}

		if note != nil {
			if err := assign(note); err != nil {
				return errors.NewConflictError(err.Error())
			}
			if in.Duration > 0 {
				if err := note.RecordDuration(in.Duration); err != nil {
					return errors.NewValidationError(err.Error())
				}
			}
			if err := s.repo.UpdateOwner(ctx, note); err != nil {
				return err
			}
			s.logger.Debugw("claimed standalone voice note", "voice_note_id", note.ID(), "filename", note.Filename())
			continue
		}

		note, err = s.newRecord(ctx, in)
		if err != nil {
			return err
		}
		if err := assign(note); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := s.repo.Create(ctx, note); err != nil {
			return fmt.Errorf("failed to create voice note record: %w", err)
		}
	}
	return nil
}

// newRecord builds an unowned record for a file that is already stored. Size
// and content type come from an existing record of the same file when there
// is one; otherwise the client supplied size must fit the upload limit.
func (s *AttachmentService) newRecord(ctx context.Context, in dto.VoiceNoteInput) (*voicenote.VoiceNote, error) {
	exists, err := s.files.Exists(ctx, in.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to check voice note file: %w", err)
	}
	if !exists {
		return nil, errors.NewNotFoundError(fmt.Sprintf("Voice note file %s not found", in.Filename))
	}

	size := in.Size
	contentType := constants.DefaultVoiceNoteType
	originalName := in.OriginalName

	existing, err := s.repo.FindLatestByFilename(ctx, in.Filename)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		size = existing.Size()
		contentType = existing.ContentType()
		if originalName == "" {
			originalName = existing.OriginalName()
		}
	}
	if size > s.maxFileSize {
		return nil, errors.NewPayloadTooLargeError(
			fmt.Sprintf("Voice note %s exceeds the maximum size of %d bytes", in.Filename, s.maxFileSize),
		)
	}

	note, err := voicenote.NewVoiceNote(
		in.Filename,
		originalName,
		filepath.Join(s.uploadDir, in.Filename),
		contentType,
		size,
		in.Duration,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	return note, nil
}

// ReleaseFiles deletes stored files that no voice note record references.
// It runs after the metadata change has committed, so failures are logged
// and never returned.
func (s *AttachmentService) ReleaseFiles(ctx context.Context, filenames []string) {
	seen := make(map[string]struct{}, len(filenames))
	for _, name := range filenames {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		refs, err := s.repo.CountByFilename(ctx, name)
		if err != nil {
			s.logger.Warnw("failed to count voice note references", "filename", name, "error", err)
			continue
		}
		if refs > 0 {
			continue
		}

		if err := s.files.Delete(ctx, name); err != nil {
			if stderrors.Is(err, voicenote.ErrFileNotFound) {
				continue
			}
			s.logger.Warnw("failed to remove unreferenced voice note file", "filename", name, "error", err)
			continue
		}
		s.logger.Infow("removed unreferenced voice note file", "filename", name)
	}
}
