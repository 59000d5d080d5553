// Package storage keeps uploaded voice note bytes on an afero filesystem.
// Production uses the OS filesystem rooted at the configured upload
// directory; tests use an in-memory one.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/ticketdesk/ticketdesk/internal/domain/voicenote"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileStore implements voicenote.FileStore.
type FileStore struct {
	fs  afero.Fs
	dir string
}

var _ voicenote.FileStore = (*FileStore)(nil)

// NewFileStore creates dir on fs if needed.
func NewFileStore(fs afero.Fs, dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := fs.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &FileStore{fs: fs, dir: dir}, nil
}

// NewOSFileStore stores files on the local disk.
func NewOSFileStore(dir string) (*FileStore, error) {
	return NewFileStore(afero.NewOsFs(), dir)
}

func (s *FileStore) path(filename string) (string, error) {
	if err := voicenote.ValidateFilename(filename); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, filename), nil
}

// Write refuses to overwrite an existing file.
func (s *FileStore) Write(_ context.Context, filename string, data []byte) (string, error) {
	path, err := s.path(filename)
	if err != nil {
		return "", err
	}

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = s.fs.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove(path)
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}

func (s *FileStore) Delete(_ context.Context, filename string) error {
	path, err := s.path(filename)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return voicenote.ErrFileNotFound
		}
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) Exists(_ context.Context, filename string) (bool, error) {
	path, err := s.path(filename)
	if err != nil {
		return false, err
	}

	info, err := s.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return !info.IsDir(), nil
}

// HTTPFileSystem serves the upload directory read-only.
func (s *FileStore) HTTPFileSystem() http.FileSystem {
	return afero.NewHttpFs(afero.NewReadOnlyFs(s.fs)).Dir(s.dir)
}
