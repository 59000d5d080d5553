package voicenote

import (
	"context"
	"errors"
)

// ErrFileNotFound is returned by FileStore.Delete when nothing is stored under the name.
var ErrFileNotFound = errors.New("voice note file not found")

// FileStore holds the audio bytes behind voice note records.
type FileStore interface {
	// Write stores data under filename and returns the path recorded in metadata.
	Write(ctx context.Context, filename string, data []byte) (string, error)
	Delete(ctx context.Context, filename string) error
	Exists(ctx context.Context, filename string) (bool, error)
}
