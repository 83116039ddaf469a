package fakejson

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
	"time"
)

// LogLevel is the severity of a log line. Higher levels are more verbose.
type LogLevel int

const (
	LevelError LogLevel = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var levelNames = [...]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
}

func (l LogLevel) String() string {
	if l < LevelError || l > LevelDebug {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLogLevel parses a level name, case-insensitively. "warning" is
// accepted for LevelWarn.
func ParseLogLevel(s string) (LogLevel, error) {
	name := strings.ToUpper(s)
	if name == "WARNING" {
		return LevelWarn, nil
	}
	if i := slices.Index(levelNames[:], name); i >= 0 {
		return LogLevel(i), nil
	}
	return LevelWarn, fmt.Errorf("unknown log level %q, expected error, warn, info or debug", s)
}

// Logger receives the diagnostics of sessions, batches and the OpenAPI
// loader.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// With returns a child logger that appends fields to every line.
	With(fields map[string]any) Logger
}

// lineLogger writes one line per message:
//
//	[LEVEL] 2006-01-02T15:04:05.999Z message key=value ...
type lineLogger struct {
	w     io.Writer
	mu    *sync.Mutex // shared with children
	level LogLevel
	now   func() time.Time

	fields map[string]any
	suffix string // fields rendered once, in key order
}

// NewLogger returns a Logger writing lines at or below level to w
// (os.Stderr when nil). It is safe for concurrent use.
func NewLogger(level LogLevel, w io.Writer) Logger {
	if w == nil {
		w = os.Stderr
	}
	return &lineLogger{w: w, mu: new(sync.Mutex), level: level, now: time.Now}
}

func (l *lineLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	child := *l
	child.fields = make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		child.fields[k] = v
	}
	for k, v := range fields {
		child.fields[k] = v
	}
	child.suffix = renderFields(child.fields)
	return &child
}

func (l *lineLogger) Debugf(format string, args ...any) { l.printf(LevelDebug, format, args) }
func (l *lineLogger) Infof(format string, args ...any)  { l.printf(LevelInfo, format, args) }
func (l *lineLogger) Warnf(format string, args ...any)  { l.printf(LevelWarn, format, args) }
func (l *lineLogger) Errorf(format string, args ...any) { l.printf(LevelError, format, args) }

func (l *lineLogger) printf(level LogLevel, format string, args []any) {
	if level > l.level {
		return
	}
	line := fmt.Sprintf("[%s] %s %s%s\n",
		level, l.now().UTC().Format(time.RFC3339Nano), fmt.Sprintf(format, args...), l.suffix)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, line)
}

func renderFields(fields map[string]any) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, fieldText(fields[k]))
	}
	return b.String()
}

// fieldText quotes strings that would otherwise break the key=value layout.
func fieldText(v any) string {
	s, ok := v.(string)
	if !ok {
		return fmt.Sprint(v)
	}
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r <= ' ' || r == '"' || r == '=' }) {
		return fmt.Sprintf("%q", s)
	}
	return s
}

type discardLogger struct{}

func (discardLogger) Debugf(string, ...any)        {}
func (discardLogger) Infof(string, ...any)         {}
func (discardLogger) Warnf(string, ...any)         {}
func (discardLogger) Errorf(string, ...any)        {}
func (d discardLogger) With(map[string]any) Logger { return d }

// NopLogger returns a Logger that discards everything.
func NopLogger() Logger {
	return discardLogger{}
}
