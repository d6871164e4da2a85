package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug": zerolog.DebugLevel,
		"WARN":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"off":   zerolog.Disabled,
		"":      zerolog.InfoLevel,
		"loud":  zerolog.InfoLevel,
	}
	for name, want := range cases {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", nil, &buf)
	log.Info().Msg("hidden")
	log.Warn().Str("component", "test").Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "component=test")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.log")
	log, closer, err := OpenFile("info", path)
	require.NoError(t, err)
	log.Info().Msg("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")

	_, closer, err = OpenFile("info", "")
	require.NoError(t, err)
	assert.NoError(t, closer.Close())

	_, _, err = OpenFile("info", filepath.Join(t.TempDir(), "no", "such", "dir.log"))
	assert.Error(t, err)
}

func TestOpenFallsBackToConsole(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := Open("info", &buf, filepath.Join(t.TempDir(), "no", "such", "dir.log"))
	require.Error(t, err)
	log.Info().Msg("still here")
	assert.Contains(t, buf.String(), "still here")
}
