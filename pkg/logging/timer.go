package logging

import "time"

// Timer logs one operation when it ends, appending its latency.
type Timer struct {
	logger Logger
	msg    string
	start  time.Time
	fields []Field
}

// StartTimer starts timing msg. fields are logged with the final entry.
func StartTimer(logger Logger, msg string, fields ...Field) *Timer {
	return &Timer{logger: logger, msg: msg, start: time.Now(), fields: fields}
}

// Elapsed reports the time since StartTimer.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

func (t *Timer) entry(extra []Field) []Field {
	out := make([]Field, 0, len(t.fields)+len(extra)+1)
	out = append(append(out, t.fields...), extra...)
	return append(out, Latency(t.Elapsed()))
}

// End logs at info level.
func (t *Timer) End(extra ...Field) { t.logger.Info(t.msg, t.entry(extra)...) }

// EndDebug logs at debug level.
func (t *Timer) EndDebug(extra ...Field) { t.logger.Debug(t.msg, t.entry(extra)...) }

// EndError logs at error level with err attached.
func (t *Timer) EndError(err error, extra ...Field) {
	t.logger.Error(t.msg, t.entry(append(extra, Error(err)))...)
}
