package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer, level Level, jsonOutput bool) *DefaultLogger {
	l := New(LoggerConfig{Level: level, JSONOutput: jsonOutput, Stderr: buf})
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "WARN", WarnLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		args []interface{}
		want string
	}{
		{"no args", "hello", nil, "hello"},
		{"pairs", "computed", []interface{}{"n", 10, "exact", true}, "computed n=10 exact=true"},
		{"odd leading value", "computed", []interface{}{"first", "n", 3}, "computed first n=3"},
		{"non-string key skipped", "computed", []interface{}{1, 2}, "computed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatMessage(tt.msg, tt.args...))
		})
	}
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, InfoLevel, false)

	l.Warn("results truncated", "n", 5)

	assert.Equal(t, "[2026-01-02 03:04:05] WARN: results truncated n=5\n", buf.String())
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, WarnLevel, false)

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	l.Error("shown too")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)

	buf.Reset()
	l.SetLevel(DebugLevel)
	l.Debug("now visible")
	assert.Contains(t, buf.String(), "DEBUG: now visible")
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, DebugLevel, true)

	l.Warn("result truncated", "n", 1000)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "result truncated", entry["message"])
	assert.Equal(t, float64(1000), entry["n"])
	assert.Equal(t, "2026-01-02 03:04:05", entry["timestamp"])
}

func TestNoColorForBuffers(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	var buf bytes.Buffer
	l := newTestLogger(&buf, InfoLevel, false)
	l.Error("plain")
	assert.NotContains(t, buf.String(), "\033[")
}
