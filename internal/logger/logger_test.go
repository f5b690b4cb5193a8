package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want zerolog.Level
	}{
		{raw: "DEBUG", want: zerolog.DebugLevel},
		{raw: "info", want: zerolog.InfoLevel},
		{raw: " warning ", want: zerolog.WarnLevel},
		{raw: "ERROR", want: zerolog.ErrorLevel},
		{raw: "CRITICAL", want: zerolog.FatalLevel},
		{raw: "bogus", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.raw), "level %q", tt.raw)
	}
}

func TestNewPersistWritesHeaderAndEntries(t *testing.T) {
	dir := t.TempDir()

	log, closeFn, err := New(Options{
		Level:   "DEBUG",
		Persist: true,
		AppName: "demo",
		Dir:     dir,
	})
	require.NoError(t, err)

	log.Info().Str("component", "test").Msg("hello")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "LOG FILE for demo")
	assert.Contains(t, content, "hello")
}

func TestNewPersistAppendsAcrossSessions(t *testing.T) {
	dir := t.TempDir()
	opts := Options{Level: "INFO", Persist: true, AppName: "demo", Dir: dir}

	log, closeFn, err := New(opts)
	require.NoError(t, err)
	log.Info().Msg("first session")
	require.NoError(t, closeFn())

	log, closeFn, err = New(opts)
	require.NoError(t, err)
	log.Info().Msg("second session")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "first session")
	assert.Contains(t, content, "second session")
}

func TestNewNoOutputsIsSilent(t *testing.T) {
	log, closeFn, err := New(Options{Level: "INFO"})
	require.NoError(t, err)
	defer closeFn()

	// Must not panic and must not create a file.
	log.Info().Msg("dropped")
	assert.NoFileExists(t, FileName)
}
