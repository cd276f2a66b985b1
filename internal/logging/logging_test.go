package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"info":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	} {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")
	l.Info("hidden")
	l.Warn("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown k=1")
}

func TestOpen_Fallback(t *testing.T) {
	var buf bytes.Buffer
	l, closeFn, err := Open("", "info", &buf)
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, closeFn())
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "run.log")
	l, closeFn, err := Open(path, "debug", nil)
	require.NoError(t, err)
	l.Debug("to file")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=\"to file\"")
}
