package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_UniqueAndValid(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		v := New()
		assert.True(t, IsValid(v), v)
		_, dup := seen[v]
		assert.False(t, dup)
		seen[v] = struct{}{}
	}
}

func TestIsValid(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("123"))
	assert.False(t, IsValid("urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	assert.True(t, IsValid("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
}

func TestStoredFilename(t *testing.T) {
	tests := []struct {
		name     string
		original string
		fallback string
		wantExt  string
	}{
		{"keeps original extension", "memo.MP3", ".wav", ".mp3"},
		{"fallback when missing", "recording", ".wav", ".wav"},
		{"fallback without dot", "blob", "ogg", ".ogg"},
		{"directory parts ignored", "../../etc/memo.webm", ".wav", ".webm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StoredFilename(tt.original, tt.fallback)
			assert.True(t, strings.HasSuffix(got, tt.wantExt), got)
			assert.True(t, IsValid(strings.TrimSuffix(got, tt.wantExt)), got)
			assert.NotContains(t, got, "/")
		})
	}
}
