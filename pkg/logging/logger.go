// Package logging is the structured logger shared by the engine and the CLI.
// Two backends implement Logger: JSONLogger, a dependency-free line writer,
// and ZapLogger, which forwards to go.uber.org/zap.
package logging

import (
	"os"
	"sync"
)

// Field is one structured key/value pair.
type Field struct {
	Key   string
	Value any
}

// Logger is implemented by every backend.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	// With returns a child that prepends fields to every entry and shares
	// the parent's level.
	With(fields ...Field) Logger
	SetLevel(level Level)
	GetLevel() Level
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
func (nopLogger) With(...Field) Logger   { return nopLogger{} }
func (nopLogger) SetLevel(Level)         {}
func (nopLogger) GetLevel() Level        { return InfoLevel }

// NewNopLogger returns a Logger that drops everything.
func NewNopLogger() Logger {
	return nopLogger{}
}

var (
	defaultOnce   sync.Once
	defaultMu     sync.RWMutex
	defaultLogger Logger
)

// DefaultLogger returns the process-wide logger. Until SetDefaultLogger is
// called it is a JSONLogger on stdout at the LOG_LEVEL level.
func DefaultLogger() Logger {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		if defaultLogger == nil {
			defaultLogger = NewJSONLogger(os.Stdout, ParseLevel(os.Getenv("LOG_LEVEL")))
		}
		defaultMu.Unlock()
	})
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultLogger == nil {
		return nopLogger{}
	}
	return defaultLogger
}

// SetDefaultLogger replaces the process-wide logger. nil silences it.
func SetDefaultLogger(logger Logger) {
	defaultOnce.Do(func() {})
	defaultMu.Lock()
	defaultLogger = logger
	defaultMu.Unlock()
}
