package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "go-posts-server")

	l.Info().Msg("started")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "go-posts-server", entry["role"])
	assert.Equal(t, "started", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryFields")
}

func TestNewLogger_ResetsGlobalLevel(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	require.NotNil(t, NewLogger("server"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	require.NotNil(t, NewClientLogger("client"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger().WithContext(context.Background())

		FromContext(ctx).Info().Msg("from context")

		assert.Equal(t, "t-1", decodeEntry(t, &buf)["trace_id"])
	})

	t.Run("nothing attached", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "t-2").Logger().WithContext(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/posts", nil).WithContext(ctx)

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "t-2", decodeEntry(t, &buf)["trace_id"])
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	require.NoError(t, SetLevel("WARN"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.Error(t, SetLevel("loud"))
}

func TestWithTraceID_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf)}

	l.WithTraceID("abc-123").Info().Msg("traced")

	assert.Equal(t, "abc-123", decodeEntry(t, &buf)["trace_id"])
}
