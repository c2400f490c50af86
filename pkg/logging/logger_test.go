package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initBuffer(t *testing.T, level LogLevel, format string) *bytes.Buffer {
	t.Helper()
	require.NoError(t, Close())

	var buf bytes.Buffer
	require.NoError(t, Init(Config{Level: level, Format: format, Writer: &buf}))
	t.Cleanup(func() { _ = Close() })
	return &buf
}

func TestInit_RespectsLevel(t *testing.T) {
	buf := initBuffer(t, LevelWarn, "text")

	Info("hidden")
	Warn("shown", "k", "v")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")
}

func TestInit_JSONFormat(t *testing.T) {
	buf := initBuffer(t, LevelDebug, "json")

	WithStatement("INSERT").Debug("row appended", "id", 1)

	assert.Contains(t, buf.String(), `"statement":"INSERT"`)
	assert.Contains(t, buf.String(), `"id":1`)
}

func TestInit_Twice(t *testing.T) {
	initBuffer(t, LevelInfo, "text")

	assert.Error(t, Init(Config{Level: LevelInfo}))
}

func TestContextHelpers(t *testing.T) {
	buf := initBuffer(t, LevelDebug, "text")

	WithComponent("repl").Info("started")
	WithError(errors.New("boom")).Error("failed")

	assert.Contains(t, buf.String(), "component=repl")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestGetLogger_LazyDefault(t *testing.T) {
	require.NoError(t, Close())
	t.Cleanup(func() { _ = Close() })

	assert.NotNil(t, GetLogger())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"Error":   LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
