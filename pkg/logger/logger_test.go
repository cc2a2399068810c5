package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 9, 1, 8, 30, 0, 0, time.UTC)
}

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	l := New(Options{Output: buf, Level: level, Format: format})
	l.now = fixedClock
	return l
}

func TestLogger_JSONEntry(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelDebug, FormatJSON).With(RecordID("r-1"))

	l.Warn("grade out of range", SubjectName("Math"), GradeValue(7))

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry.Level)
	assert.Equal(t, "grade out of range", entry.Message)
	assert.Equal(t, "2024-09-01T08:30:00Z", entry.Timestamp)
	assert.Equal(t, "r-1", entry.Fields["record_id"])
	assert.Equal(t, "Math", entry.Fields["subject"])
	assert.EqualValues(t, 7, entry.Fields["grade"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelWarn, FormatJSON)

	l.Debug("dropped")
	l.Info("dropped too")
	assert.Zero(t, buf.Len())

	l.Error("kept")
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelInfo, FormatText)

	l.Error("subject not found", SubjectName("Art"), Err(errors.New("boom")))

	assert.Equal(t,
		"2024-09-01T08:30:00Z ERROR subject not found error=boom subject=Art\n",
		buf.String())
}

func TestLogger_WithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newTestLogger(&buf, LevelInfo, FormatText)
	_ = parent.With(Component("loader"))

	parent.Info("plain")
	assert.False(t, strings.Contains(buf.String(), "component="))
}

func TestNop_WritesNothing(t *testing.T) {
	l := Nop()
	assert.False(t, l.Enabled(LevelFatal))
	l.Error("ignored")
}

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelDebug, ParseLevel(" debug "))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, FormatText, ParseFormat("TEXT"))
	assert.Equal(t, FormatJSON, ParseFormat(""))
}

func TestContextPropagation(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, LevelInfo, FormatJSON)

	ctx := WithContext(context.Background(), l)
	assert.Same(t, l, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}
