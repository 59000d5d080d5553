package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticketdesk/ticketdesk/internal/shared/config"
)

func TestConditionalSourceHandler_SourceOnlyForConfiguredLevels(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		levels     []slog.Level
		wantSource bool
	}{
		{"info not configured", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn configured", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error configured", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"debug mode shows info", slog.LevelInfo, []slog.Level{slog.LevelDebug, slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewConditionalSourceHandler(base, tt.levels...))

			log.Log(context.Background(), tt.level, "ticket saved")

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestConditionalSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).
		With("ticket_id", 7).
		WithGroup("request")

	log.Info("listing", "path", "/tickets")

	out := buf.String()
	assert.Contains(t, out, "ticket_id=7")
	assert.Contains(t, out, "request.path=/tickets")
	assert.NotContains(t, out, "source=")
}

func TestConditionalSourceHandler_Enabled(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler := NewConditionalSourceHandler(base, slog.LevelError)

	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInit_JSONFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	prev := Logger
	t.Cleanup(func() {
		Logger = prev
		slog.SetDefault(Get())
	})

	err := Init(&config.LoggerConfig{Level: "info", Format: "json", OutputPath: path}, "release")
	require.NoError(t, err)

	NewLogger().Infow("draft saved", "draft_id", 3)
	NewLogger().Debugw("hidden")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(raw), &entry))
	assert.Equal(t, "draft saved", entry["msg"])
	assert.EqualValues(t, 3, entry["draft_id"])
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger().Named("test").With("k", "v")
	assert.NotPanics(t, func() {
		log.Infow("ignored", "a", 1)
		log.Errorw("ignored")
	})
}
