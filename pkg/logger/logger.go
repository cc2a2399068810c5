// Package logger provides structured logging for the student record utility.
// It supports log levels, structured fields, JSON and text output, and context
// propagation. Configuration is explicit: callers build a Logger and pass it down.
package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for general operational information.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
	// LevelFatal is for fatal errors that require program termination.
	LevelFatal

	levelOff
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level. Unknown values fall back to INFO.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "FATAL":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Format selects how entries are encoded.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat parses a string into a Format. Unknown values fall back to JSON.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatText)) {
		return FormatText
	}
	return FormatJSON
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value any
}

// Common field constructors for convenience.
func String(key, value string) Field          { return Field{Key: key, Value: value} }
func Int(key string, value int) Field         { return Field{Key: key, Value: value} }
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }
func Any(key string, value any) Field         { return Field{Key: key, Value: value} }

// Err creates an error field.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

// Student record logging helpers.
func RecordID(id string) Field       { return String("record_id", id) }
func StudentName(name string) Field  { return String("student_name", name) }
func SubjectName(name string) Field  { return String("subject", name) }
func GradeValue(grade int) Field     { return Int("grade", grade) }
func TestScoreValue(score int) Field { return Int("test_score", score) }
func Component(name string) Field    { return String("component", name) }
func Source(kind string) Field       { return String("source", kind) }

// LogEntry represents a single log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Caller    string         `json:"caller,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Logger writes leveled entries to a single output.
// Child loggers created by With share the parent's output and lock.
type Logger struct {
	mu        *sync.Mutex
	output    io.Writer
	level     Level
	format    Format
	fields    []Field
	addCaller bool
	now       func() time.Time
}

// Options configures the logger.
type Options struct {
	Output    io.Writer
	Level     Level
	Format    Format
	AddCaller bool
}

// New creates a new Logger with the given options.
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	return &Logger{
		mu:        &sync.Mutex{},
		output:    opts.Output,
		level:     opts.Level,
		format:    opts.Format,
		addCaller: opts.AddCaller,
		now:       time.Now,
	}
}

// Nop returns a logger that discards every entry.
func Nop() *Logger {
	return New(Options{Output: io.Discard, Level: levelOff})
}

// OpenFile opens path for appending log entries, creating it if needed.
// The caller owns the returned file and must close it.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: open %s: %w", path, err)
	}
	return f, nil
}

// With returns a new Logger with the given fields added.
func (l *Logger) With(fields ...Field) *Logger {
	child := *l
	child.fields = make([]Field, 0, len(l.fields)+len(fields))
	child.fields = append(child.fields, l.fields...)
	child.fields = append(child.fields, fields...)
	return &child
}

// Enabled reports whether entries at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

func (l *Logger) log(level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	entry := LogEntry{
		Timestamp: l.now().UTC().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
	}

	if l.addCaller {
		if _, file, line, ok := runtime.Caller(2); ok {
			if idx := strings.LastIndex(file, "/"); idx >= 0 {
				file = file[idx+1:]
			}
			entry.Caller = fmt.Sprintf("%s:%d", file, line)
		}
	}

	if n := len(l.fields) + len(fields); n > 0 {
		entry.Fields = make(map[string]any, n)
		for _, f := range l.fields {
			entry.Fields[f.Key] = f.Value
		}
		for _, f := range fields {
			entry.Fields[f.Key] = f.Value
		}
	}

	var line []byte
	if l.format == FormatText {
		line = encodeText(entry)
	} else {
		data, err := json.Marshal(entry)
		if err != nil {
			data = []byte(fmt.Sprintf("%s [%s] %s", entry.Timestamp, entry.Level, msg))
		}
		line = append(data, '\n')
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.output.Write(line)
}

// encodeText renders "timestamp LEVEL message key=value ..." with keys sorted.
func encodeText(entry LogEntry) []byte {
	var b strings.Builder
	b.WriteString(entry.Timestamp)
	b.WriteByte(' ')
	b.WriteString(entry.Level)
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}
	if entry.Caller != "" {
		b.WriteString(" caller=")
		b.WriteString(entry.Caller)
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

type ctxKey struct{}

// WithContext returns a new context with the logger attached.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context, or a Nop logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return Nop()
}
