package logging

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"sync"
	"time"
)

// JSONLogger writes one flat JSON object per entry:
//
//	{"time":"...","level":"INFO","msg":"graph loaded","component":"analysis","node_count":4}
//
// Fields follow the three fixed keys in the order they were first given;
// a repeated key keeps its position and takes the latest value. Fields named
// time, level or msg are written as field.time and so on.
type JSONLogger struct {
	out    *lockedWriter
	level  *sharedLevel
	preset []Field
}

// lockedWriter serialises writes from a logger and all of its children.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) write(p []byte) {
	lw.mu.Lock()
	_, _ = lw.w.Write(p)
	lw.mu.Unlock()
}

// NewJSONLogger writes entries at or above level to w.
func NewJSONLogger(w io.Writer, level Level) *JSONLogger {
	return &JSONLogger{
		out:   &lockedWriter{w: w},
		level: newSharedLevel(level),
	}
}

var bufPool = sync.Pool{New: func() any { return new(bytes.Buffer) }}

func (l *JSONLogger) emit(level Level, msg string, fields []Field) {
	if !l.level.Enabled(level) {
		return
	}

	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bufPool.Put(buf)

	buf.WriteString(`{"time":`)
	buf.WriteString(strconv.Quote(time.Now().UTC().Format(time.RFC3339Nano)))
	buf.WriteString(`,"level":"`)
	buf.WriteString(level.String())
	buf.WriteString(`","msg":`)
	writeJSON(buf, msg)
	for _, f := range mergeFields(l.preset, fields) {
		buf.WriteByte(',')
		writeJSON(buf, entryKey(f.Key))
		buf.WriteByte(':')
		writeJSON(buf, f.Value)
	}
	buf.WriteString("}\n")
	l.out.write(buf.Bytes())
}

func entryKey(k string) string {
	switch k {
	case "time", "level", "msg":
		return "field." + k
	}
	return k
}

func writeJSON(buf *bytes.Buffer, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		data, _ = json.Marshal("!marshal: " + err.Error())
	}
	buf.Write(data)
}

// mergeFields concatenates preset and call-site fields, collapsing repeated
// keys onto their first position.
func mergeFields(preset, call []Field) []Field {
	if len(call) == 0 {
		return preset
	}
	if len(preset) == 0 && len(call) == 1 {
		return call
	}
	merged := make([]Field, 0, len(preset)+len(call))
	at := make(map[string]int, len(preset)+len(call))
	for _, group := range [2][]Field{preset, call} {
		for _, f := range group {
			if i, ok := at[f.Key]; ok {
				merged[i].Value = f.Value
				continue
			}
			at[f.Key] = len(merged)
			merged = append(merged, f)
		}
	}
	return merged
}

func (l *JSONLogger) Debug(msg string, fields ...Field) { l.emit(DebugLevel, msg, fields) }
func (l *JSONLogger) Info(msg string, fields ...Field)  { l.emit(InfoLevel, msg, fields) }
func (l *JSONLogger) Warn(msg string, fields ...Field)  { l.emit(WarnLevel, msg, fields) }
func (l *JSONLogger) Error(msg string, fields ...Field) { l.emit(ErrorLevel, msg, fields) }

// With returns a child writing to the same output under the same level.
func (l *JSONLogger) With(fields ...Field) Logger {
	return &JSONLogger{
		out:    l.out,
		level:  l.level,
		preset: mergeFields(l.preset, fields),
	}
}

func (l *JSONLogger) SetLevel(level Level) { l.level.Store(level) }
func (l *JSONLogger) GetLevel() Level      { return l.level.Load() }
