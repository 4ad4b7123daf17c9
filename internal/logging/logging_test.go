package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf, Enabled: true})

	l.Info("hidden")
	l.Warn("shown", "filter", "fps")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "filter=fps") {
		t.Errorf("warn message missing or without attrs: %q", out)
	}
}

func TestDisabledLoggerDiscards(t *testing.T) {
	l := New(Config{Enabled: false})
	// Must not panic or write anywhere.
	l.Error("nothing")
}

func TestGlobalInit(t *testing.T) {
	prev := Global()
	defer SetGlobal(prev)

	var buf bytes.Buffer
	Init(LevelDebug, &buf)
	Debug("dropped key", "key", "speed")

	if !strings.Contains(buf.String(), "key=speed") {
		t.Errorf("global debug not written: %q", buf.String())
	}
}

func TestSetupNoLog(t *testing.T) {
	l, err := Setup(t.TempDir(), false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l != nil {
		t.Fatal("expected nil logger when logging is disabled")
	}

	// nil receivers are no-ops
	l.Info("x")
	l.Debug("x")
	if l.FilePath() != "" {
		t.Error("nil logger should have empty path")
	}
	if l.Writer() != io.Discard {
		t.Error("nil logger should write to io.Discard")
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close on nil logger: %v", err)
	}
}

func TestSetupWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	l, err := Setup(dir, false, false)
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}

	l.Info("rendered %d filters", 2)
	l.Debug("should not appear")
	l.Warn("careful")
	_, _ = io.WriteString(l.Writer(), "frame=  10 time=00:00:01.00\n")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(l.FilePath()), "ffgraph_run_") {
		t.Errorf("unexpected log filename %s", l.FilePath())
	}

	data, err := os.ReadFile(l.FilePath())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "[INFO] rendered 2 filters") {
		t.Errorf("missing info line: %q", content)
	}
	if strings.Contains(content, "should not appear") {
		t.Errorf("debug line written without verbose: %q", content)
	}
	if !strings.Contains(content, "[WARN] careful") {
		t.Errorf("missing warn line: %q", content)
	}
	if !strings.Contains(content, "frame=  10 time=00:00:01.00\n") {
		t.Errorf("Writer output missing: %q", content)
	}
}
