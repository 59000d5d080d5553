package voicenote

import "context"

type Repository interface {
	Create(ctx context.Context, note *VoiceNote) error
	// UpdateOwner persists the ticket/draft ownership and duration of an
	// existing note.
	UpdateOwner(ctx context.Context, note *VoiceNote) error
	GetByID(ctx context.Context, noteID uint) (*VoiceNote, error)
	// FindStandaloneByFilename returns the oldest unowned note stored under
	// filename, or nil.
	FindStandaloneByFilename(ctx context.Context, filename string) (*VoiceNote, error)
	// FindLatestByFilename returns the newest note of any owner stored under
	// filename, or nil.
	FindLatestByFilename(ctx context.Context, filename string) (*VoiceNote, error)
	// ListByTicketID and ListByDraftID return notes newest first.
	ListByTicketID(ctx context.Context, ticketID uint) ([]*VoiceNote, error)
	ListByTicketIDs(ctx context.Context, ticketIDs []uint) (map[uint][]*VoiceNote, error)
	ListByDraftID(ctx context.Context, draftID uint) ([]*VoiceNote, error)
	// Delete* remove metadata rows and return the filenames they referenced.
	DeleteByTicketID(ctx context.Context, ticketID uint) ([]string, error)
	DeleteByDraftID(ctx context.Context, draftID uint) ([]string, error)
	DeleteStandaloneByFilename(ctx context.Context, filename string) (int64, error)
	// CountByFilename counts every record, owned or not, referencing filename.
	CountByFilename(ctx context.Context, filename string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountStandalone(ctx context.Context) (int64, error)
}
