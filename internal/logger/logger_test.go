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

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNop_ProducesNoOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// A nop logger is disabled at every level.
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("parent-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	child.Info().Msg("from child")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parent-role", entry["role"])
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx-role")
	l.Logger = l.Output(&buf)

	ctx := l.WithContext(context.Background())
	extracted := FromContext(ctx)
	extracted.Info().Msg("via context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-role", entry["role"])
}

func TestFromRequest_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("req-role")
	l.Logger = l.Output(&buf)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	extracted := FromRequest(req)
	extracted.Info().Msg("via request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-role", entry["role"])
}
