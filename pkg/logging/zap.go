package logging

import "go.uber.org/zap"

// ZapLogger forwards to a *zap.Logger. Entries below the logger's Level are
// dropped before they reach zap, so SetLevel also works on cores built
// elsewhere.
type ZapLogger struct {
	base  *zap.Logger
	level *sharedLevel
	// atom is the core's own level when this package built the core.
	atom *zap.AtomicLevel
}

// NewZapLogger wraps base at InfoLevel.
func NewZapLogger(base *zap.Logger) *ZapLogger {
	return &ZapLogger{base: base, level: newSharedLevel(InfoLevel)}
}

// NewProductionZapLogger builds zap's production JSON logger at level,
// without stack traces.
func NewProductionZapLogger(level Level) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level.zap())
	cfg.DisableStacktrace = true
	base, err := cfg.Build(zap.AddCallerSkip(2))
	if err != nil {
		return nil, err
	}
	return &ZapLogger{base: base, level: newSharedLevel(level), atom: &cfg.Level}, nil
}

func toZap(fields []Field) []zap.Field {
	zf := make([]zap.Field, len(fields))
	for i, f := range fields {
		zf[i] = zap.Any(f.Key, f.Value)
	}
	return zf
}

func (l *ZapLogger) write(level Level, msg string, fields []Field) {
	if !l.level.Enabled(level) {
		return
	}
	if ce := l.base.Check(level.zap(), msg); ce != nil {
		ce.Write(toZap(fields)...)
	}
}

func (l *ZapLogger) Debug(msg string, fields ...Field) { l.write(DebugLevel, msg, fields) }
func (l *ZapLogger) Info(msg string, fields ...Field)  { l.write(InfoLevel, msg, fields) }
func (l *ZapLogger) Warn(msg string, fields ...Field)  { l.write(WarnLevel, msg, fields) }
func (l *ZapLogger) Error(msg string, fields ...Field) { l.write(ErrorLevel, msg, fields) }

// With returns a child sharing this logger's level.
func (l *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{base: l.base.With(toZap(fields)...), level: l.level, atom: l.atom}
}

// SetLevel changes the threshold for this logger and its children.
func (l *ZapLogger) SetLevel(level Level) {
	l.level.Store(level)
	if l.atom != nil {
		l.atom.SetLevel(level.zap())
	}
}

func (l *ZapLogger) GetLevel() Level { return l.level.Load() }

// Sync flushes buffered output.
func (l *ZapLogger) Sync() error { return l.base.Sync() }
