package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level is a log severity.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the level name used in log output.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch s {
	case "DEBUG", "debug":
		return DebugLevel
	case "WARN", "warn", "WARNING", "warning":
		return WarnLevel
	case "ERROR", "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Field is one key-value pair of structured context.
type Field struct {
	Key   string
	Value any
}

// Logger is the structured logging surface used across the engine.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type entry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// JSONLogger writes one JSON object per line.
type JSONLogger struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	preset []Field
}

// NewJSONLogger creates a JSON logger writing to w at the given level.
func NewJSONLogger(w io.Writer, level Level) *JSONLogger {
	return &JSONLogger{w: w, level: level}
}

// NewDefaultLogger creates a logger writing to stderr. The level comes
// from the NETPATH_LOG_LEVEL environment variable, defaulting to info.
func NewDefaultLogger() *JSONLogger {
	return NewJSONLogger(os.Stderr, ParseLevel(os.Getenv("NETPATH_LOG_LEVEL")))
}

func (l *JSONLogger) emit(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	e := entry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
	}
	if len(l.preset)+len(fields) > 0 {
		e.Fields = make(map[string]any, len(l.preset)+len(fields))
		for _, f := range l.preset {
			e.Fields[f.Key] = f.Value
		}
		for _, f := range fields {
			e.Fields[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(e)
	if err != nil {
		fmt.Fprintf(l.w, "{\"level\":\"ERROR\",\"msg\":\"log marshal failed: %v\"}\n", err)
		return
	}
	l.w.Write(data)
	l.w.Write([]byte{'\n'})
}

func (l *JSONLogger) Debug(msg string, fields ...Field) { l.emit(DebugLevel, msg, fields) }
func (l *JSONLogger) Info(msg string, fields ...Field)  { l.emit(InfoLevel, msg, fields) }
func (l *JSONLogger) Warn(msg string, fields ...Field)  { l.emit(WarnLevel, msg, fields) }
func (l *JSONLogger) Error(msg string, fields ...Field) { l.emit(ErrorLevel, msg, fields) }

// With returns a child logger carrying the given fields on every entry.
func (l *JSONLogger) With(fields ...Field) Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	preset := make([]Field, 0, len(l.preset)+len(fields))
	preset = append(preset, l.preset...)
	preset = append(preset, fields...)
	return &JSONLogger{w: l.w, level: l.level, preset: preset}
}

// NopLogger discards everything; the default inside library code when
// the caller does not supply a logger.
type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}

func (n NopLogger) With(...Field) Logger { return n }

// NewNopLogger returns a logger that discards all output.
func NewNopLogger() Logger { return NopLogger{} }
