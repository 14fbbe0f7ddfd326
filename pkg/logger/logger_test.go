package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) Logger {
	return NewWithConfig(Config{
		Name:   "test",
		Format: FormatJSON,
		Level:  slog.LevelDebug,
		Writer: buf,
	})
}

func TestLoggerErrReturnsOriginalError(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	original := assert.AnError
	returned := log.Err("something failed", original, "key", "value")

	assert.Equal(t, original, returned)
	assert.Contains(t, buf.String(), "something failed")
}

func TestLoggerErrorCreatesError(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	err := log.Error("invalid state", "count", 3)
	require.Error(t, err)
	assert.Equal(t, "invalid state", err.Error())
}

func TestLoggerFunctionAddsAttribute(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.Function("Resolve").Info("resolved entity")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Resolve", entry["function"])
	assert.Equal(t, "test", entry["package"])
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := ContextWithTraceID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", TraceIDFromContext(ctx))

	var buf bytes.Buffer
	log := newBufferLogger(&buf)
	log.TraceFromContext(ctx).Info("with trace")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc-123", entry["traceID"])
}

func TestTraceFromContextWithoutID(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf)

	log.TraceFromContext(context.Background()).Info("no trace")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, ok := entry["traceID"]
	assert.False(t, ok)
}
