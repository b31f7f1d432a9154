package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLoggerTo_RoleField verifies that every log entry produced by a
// logger created with NewLoggerTo contains the expected "role" field.
func TestNewLoggerTo_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "test-role")

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "func")
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestWithLevel_FiltersLowerLevels verifies that entries below the parsed
// level are dropped.
func TestWithLevel_FiltersLowerLevels(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewLoggerTo(&buf, "lvl").WithLevel("warn")
	require.NoError(t, err)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

// TestWithLevel_InvalidLevel verifies that an unknown level name is rejected.
func TestWithLevel_InvalidLevel(t *testing.T) {
	l, err := Nop().WithLevel("loud")
	require.Error(t, err)
	assert.Nil(t, l)
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerTo(&buf, "inherited-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

// TestFromContext_ReturnsAttachedLogger verifies the WithContext/FromContext
// round trip.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()}
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)

	got.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}
