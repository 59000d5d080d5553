// Package id generates the external identifiers exposed to API clients and the
// collision-free names under which uploaded files are stored.
package id

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// New returns a random RFC 4122 version 4 identifier in canonical form.
func New() string {
	return uuid.NewString()
}

// IsValid reports whether s is a canonical UUID string.
func IsValid(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// StoredFilename derives a storage name from a fresh UUID and the extension of
// original. fallbackExt is used when original has none.
func StoredFilename(original, fallbackExt string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" || ext == "." {
		ext = fallbackExt
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return uuid.NewString() + ext
}
