package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNewWithWriterFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Warn("shown", "list", "Period 3")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `msg=shown list="Period 3"`)
}

func TestNewAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", FileName)

	log, closer, err := New(Options{Level: "debug", Path: path})
	require.NoError(t, err)
	log.Debug("first")
	require.NoError(t, closer.Close())

	log, closer, err = New(Options{Level: "debug", Path: path})
	require.NoError(t, err)
	log.Debug("second")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "msg=first")
	require.Contains(t, string(data), "msg=second")
}
