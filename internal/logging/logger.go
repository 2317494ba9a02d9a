package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rs/zerolog"
)

// Field is a structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Err creates an error field under the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the unified logging interface used across the application.
// It decouples components from the underlying logging backend.
type Logger interface {
	// Debug logs a message at debug level with optional structured fields.
	Debug(msg string, fields ...Field)
	// Info logs a message at info level with optional structured fields.
	Info(msg string, fields ...Field)
	// Error logs a message at error level with an associated error and
	// optional structured fields.
	Error(msg string, err error, fields ...Field)
	// Printf logs a formatted message at info level (log.Printf compatible).
	Printf(format string, args ...any)
	// Println logs its arguments at info level (log.Println compatible).
	Println(args ...any)
}

// ZerologAdapter adapts a zerolog.Logger to the Logger interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewDefaultLogger creates a Logger writing human-readable output to stderr.
func NewDefaultLogger() Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return &ZerologAdapter{logger: zerolog.New(writer).With().Timestamp().Logger()}
}

// NewLogger creates a Logger writing JSON to w, tagged with a component name.
func NewLogger(w io.Writer, component string) Logger {
	return &ZerologAdapter{
		logger: zerolog.New(w).With().Timestamp().Str("component", component).Logger(),
	}
}

// applyFields attaches structured fields to a zerolog event, dispatching on
// the dynamic type of each value.
func applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

// Debug logs a message at debug level.
func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(z.logger.Debug(), fields).Msg(msg)
}

// Info logs a message at info level.
func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(z.logger.Info(), fields).Msg(msg)
}

// Error logs a message at error level with an associated error.
func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}

// Printf logs a formatted message at info level.
func (z *ZerologAdapter) Printf(format string, args ...any) {
	z.logger.Info().Msg(fmt.Sprintf(format, args...))
}

// Println logs its arguments at info level.
func (z *ZerologAdapter) Println(args ...any) {
	z.logger.Info().Msg(fmt.Sprintln(args...))
}

// StdLoggerAdapter adapts the standard library log.Logger to the Logger
// interface, for contexts where zerolog is not wanted (tests, bootstrap).
type StdLoggerAdapter struct {
	logger *log.Logger
}

// NewStdLoggerAdapter wraps a standard library logger.
func NewStdLoggerAdapter(logger *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{logger: logger}
}

// formatFields renders structured fields as trailing key=value pairs.
func formatFields(fields []Field) string {
	out := ""
	for _, f := range fields {
		out += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	return out
}

// Debug logs a message at debug level.
func (s *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	s.logger.Printf("DEBUG %s%s", msg, formatFields(fields))
}

// Info logs a message at info level.
func (s *StdLoggerAdapter) Info(msg string, fields ...Field) {
	s.logger.Printf("INFO %s%s", msg, formatFields(fields))
}

// Error logs a message at error level with an associated error.
func (s *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if err != nil {
		s.logger.Printf("ERROR %s error=%v%s", msg, err, formatFields(fields))
		return
	}
	s.logger.Printf("ERROR %s%s", msg, formatFields(fields))
}

// Printf logs a formatted message.
func (s *StdLoggerAdapter) Printf(format string, args ...any) {
	s.logger.Printf(format, args...)
}

// Println logs its arguments.
func (s *StdLoggerAdapter) Println(args ...any) {
	s.logger.Println(args...)
}
