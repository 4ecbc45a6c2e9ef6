package logging

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap/zapcore"
)

// Level orders log severities from DebugLevel up.
type Level int32

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

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
	}
	return "UNKNOWN"
}

// ParseLevel accepts debug, info, warn, warning and error in any case.
// Anything else is InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	}
	return InfoLevel
}

func (l Level) zap() zapcore.Level {
	switch l {
	case DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}

// sharedLevel is the threshold a logger and all of its With children read.
type sharedLevel struct{ v atomic.Int32 }

func newSharedLevel(l Level) *sharedLevel {
	s := &sharedLevel{}
	s.v.Store(int32(l))
	return s
}

func (s *sharedLevel) Load() Level          { return Level(s.v.Load()) }
func (s *sharedLevel) Store(l Level)        { s.v.Store(int32(l)) }
func (s *sharedLevel) Enabled(l Level) bool { return l >= s.Load() }
