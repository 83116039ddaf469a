package fakejson

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"Warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
	}
	for in, want := range tests {
		got, err := ParseLogLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLogLevel(%q) = %s, %v, want %s", in, got, err, want)
		}
	}

	if _, err := ParseLogLevel("bogus"); err == nil {
		t.Error("ParseLogLevel(bogus) should fail")
	}
	if got := LogLevel(9).String(); got != "UNKNOWN" {
		t.Errorf("LogLevel(9).String() = %q", got)
	}
}

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelInfo, &buf)

	logger.Debugf("hidden %d", 1)
	logger.Infof("shown %d", 2)
	logger.Errorf("failed")

	logs := buf.String()
	if strings.Contains(logs, "hidden") {
		t.Errorf("debug line logged at info level:\n%s", logs)
	}
	if !strings.Contains(logs, "[INFO] ") || !strings.Contains(logs, "shown 2") {
		t.Errorf("missing info line:\n%s", logs)
	}
	if !strings.Contains(logs, "[ERROR] ") {
		t.Errorf("missing error line:\n%s", logs)
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelDebug, &buf).With(map[string]any{"doc": 3, "schema": "users file.json"})

	logger.Debugf("walking")

	line := buf.String()
	if !strings.HasSuffix(line, "walking doc=3 schema=\"users file.json\"\n") {
		t.Errorf("unexpected line %q", line)
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LevelWarn, &buf).(*lineLogger)
	logger.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	child := logger.With(map[string]any{"key": "a=b", "empty": ""})
	child.Warnf("slow %s", "walk")
	logger.Warnf("parent")

	want := "[WARN] 2024-05-01T12:00:00Z slow walk empty=\"\" key=\"a=b\"\n" +
		"[WARN] 2024-05-01T12:00:00Z parent\n"
	if got := buf.String(); got != want {
		t.Errorf("log lines = %q, want %q", got, want)
	}
}

func TestNopLogger(t *testing.T) {
	l := NopLogger()
	l.Errorf("dropped")
	if l.With(map[string]any{"a": 1}) != l {
		t.Error("With on the no-op logger should return itself")
	}
}

func TestSession_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSessionWith(t, 1, func(o *Options) {
		o.Logger = NewLogger(LevelDebug, &buf)
		o.NullProbability = 1
	})

	mustGenerate(t, s, "Letter[r]")
	mustGenerate(t, s, "Letter[r]")
	if _, _, err := s.Generate("Letter?"); err != nil {
		t.Fatal(err)
	}

	logs := buf.String()
	for _, want := range []string{`reference "r" stored String value`, `reference "r" hit`, `omitted nullable value for "Letter?"`} {
		if !strings.Contains(logs, want) {
			t.Errorf("logs missing %q:\n%s", want, logs)
		}
	}
}
