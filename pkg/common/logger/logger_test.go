package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLogger_WritesServiceAndTraceID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	traceIDFn := func(ctx context.Context) string { return "abc123" }
	log := New(&buf, LevelInfo, "nxtypes", traceIDFn)

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "lookup", "group", "priority")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "lookup", lines[0]["msg"])
	assert.Equal(t, "nxtypes", lines[0]["service"])
	assert.Equal(t, "priority", lines[0]["group"])
	assert.Equal(t, "abc123", lines[0]["trace_id"])
	assert.Contains(t, lines[0]["file"], "logger_test.go")
}

func TestLogger_With(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, LevelDebug, "svc", nil).With("component", "render")
	log.Warn(context.Background(), "unsupported format")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "render", lines[0]["component"])
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.NotContains(t, lines[0], "trace_id")
}

func TestNewWithMetadata_FiresEvents(t *testing.T) {
	t.Parallel()

	var (
		buf      bytes.Buffer
		captured []Record
	)
	events := Events{
		Error: func(ctx context.Context, r Record) { captured = append(captured, r) },
	}
	log := NewWithMetadata(&buf, LevelDebug, "svc", nil, events, map[string]string{"hostname": "leaf1"})

	log.Info(context.Background(), "fine")
	log.Error(context.Background(), "broken", "err", "boom")

	require.Len(t, captured, 1)
	assert.Equal(t, "broken", captured[0].Message)
	assert.Equal(t, LevelError, captured[0].Level)
	assert.Equal(t, "boom", captured[0].Attributes["err"])

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "leaf1", lines[1]["hostname"])
}

func TestLoggerContext_Add(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lc := NewLoggerContext(New(&buf, LevelDebug, "svc", nil))
	lc.Add("profile", "route-watcher")
	lc.Info(context.Background(), "validated")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "route-watcher", lines[0]["profile"])
}

func TestNoop(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Noop().Error(context.Background(), "dropped")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: "", want: LevelInfo},
		{input: "warning", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "trace", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	assert.Equal(t, "warn", LevelWarn.String())
}
