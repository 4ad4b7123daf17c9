package reporter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func decodeEvents(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var events []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var ev map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			t.Fatalf("invalid NDJSON line %q: %v", scanner.Text(), err)
		}
		events = append(events, ev)
	}
	return events
}

func TestJSONReporterEvents(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporterWithWriter(&buf)

	r.GraphBuilt(GraphSummary{
		JobID:   "job-1",
		Policy:  "truthy",
		Filters: []FilterLine{{Name: "fps", Rendered: "fps=fps=30"}},
		Video:   "fps=fps=30",
	})
	r.RunStarted(RunInfo{Input: "in.mkv", Output: "out.mkv", Duration: 10})
	r.Warning("careful")
	r.RunComplete(RunOutcome{Output: "out.mkv", InputSize: 100, OutputSize: 25, TotalTime: 3 * time.Second})

	events := decodeEvents(t, &buf)
	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}

	wantTypes := []string{"graph_built", "run_started", "warning", "run_complete"}
	for i, want := range wantTypes {
		if events[i]["type"] != want {
			t.Errorf("event %d type = %v, want %s", i, events[i]["type"], want)
		}
		if events[i]["job_id"] != "job-1" {
			t.Errorf("event %d job_id = %v", i, events[i]["job_id"])
		}
		if _, ok := events[i]["timestamp"]; !ok {
			t.Errorf("event %d has no timestamp", i)
		}
	}

	if events[0]["video_chain"] != "fps=fps=30" {
		t.Errorf("video_chain = %v", events[0]["video_chain"])
	}
	if events[3]["size_reduction_percent"] != 75.0 {
		t.Errorf("size_reduction_percent = %v", events[3]["size_reduction_percent"])
	}
}

func TestJSONReporterThrottlesProgress(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporterWithWriter(&buf)

	r.RunStarted(RunInfo{})
	r.RunProgress(ProgressSnapshot{Percent: 10.1})
	r.RunProgress(ProgressSnapshot{Percent: 10.5}) // same bucket, within interval
	r.RunProgress(ProgressSnapshot{Percent: 11.0})
	r.RunProgress(ProgressSnapshot{Percent: 99.5})

	var progress int
	for _, ev := range decodeEvents(t, &buf) {
		if ev["type"] == "run_progress" {
			progress++
		}
	}
	if progress != 3 {
		t.Errorf("got %d progress events, want 3", progress)
	}
}

func TestTerminalReporterGraph(t *testing.T) {
	color.NoColor = true
	var out, errOut bytes.Buffer
	r := NewTerminalReporterWithWriters(&out, &errOut, false)

	r.GraphBuilt(GraphSummary{
		Source: "graph.yaml",
		Policy: "truthy",
		Filters: []FilterLine{
			{Name: "fps", Rendered: "fps=fps=30:round=up"},
			{Name: "equalizer", Rendered: "equalizer=gain=-3"},
		},
		Video: "fps=fps=30:round=up",
		Audio: "equalizer=gain=-3",
	})
	r.Warning("input has no audio stream")
	r.Verbose("hidden")

	got := out.String()
	for _, want := range []string{"GRAPH", "graph.yaml", " 1. fps=fps=30:round=up", " 2. equalizer=gain=-3", "-vf", "-af"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "-filter_complex") {
		t.Error("empty complex chain should not be printed")
	}
	if strings.Contains(got, "hidden") {
		t.Error("verbose message printed without verbose mode")
	}
	if !strings.Contains(errOut.String(), "WARN: input has no audio stream") {
		t.Errorf("warning missing from stderr: %q", errOut.String())
	}
}

func TestTerminalReporterError(t *testing.T) {
	color.NoColor = true
	var out, errOut bytes.Buffer
	r := NewTerminalReporterWithWriters(&out, &errOut, true)

	r.Error(ReporterError{Title: "Unknown filter", Message: "no filter registered as \"scale\"", Suggestion: "run ffgraph filters"})
	r.Verbose("shown")

	if !strings.Contains(errOut.String(), "ERROR Unknown filter") || !strings.Contains(errOut.String(), "Suggestion: run ffgraph filters") {
		t.Errorf("unexpected stderr: %q", errOut.String())
	}
	if !strings.Contains(out.String(), "shown") {
		t.Error("verbose message missing in verbose mode")
	}
}

func TestCompositeReporterFansOut(t *testing.T) {
	var a, b bytes.Buffer
	r := NewCompositeReporter(NewJSONReporterWithWriter(&a), NullReporter{}, NewJSONReporterWithWriter(&b))

	r.OperationComplete("done")

	if len(decodeEvents(t, &a)) != 1 || len(decodeEvents(t, &b)) != 1 {
		t.Error("every reporter should receive the event")
	}
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) add(level, format string, args ...any) {
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Debug(format string, args ...any) { l.add("DEBUG", format, args...) }
func (l *recordingLogger) Info(format string, args ...any)  { l.add("INFO", format, args...) }
func (l *recordingLogger) Warn(format string, args ...any)  { l.add("WARN", format, args...) }
func (l *recordingLogger) Error(format string, args ...any) { l.add("ERROR", format, args...) }

func TestLogReporterProgressInterval(t *testing.T) {
	log := &recordingLogger{}
	r := NewLogReporter(log, 25)

	r.RunStarted(RunInfo{Output: "out.mkv", Duration: 100, Args: []string{"-i", "in.mkv"}})
	for _, p := range []float32{3, 10, 26, 30, 49.9, 50, 99, 100} {
		r.RunProgress(ProgressSnapshot{Percent: p, Speed: 2})
	}

	var progress []string
	for _, line := range log.lines {
		if strings.HasPrefix(line, "INFO progress") {
			progress = append(progress, line)
		}
	}
	want := []string{"25%", "50%", "75%", "100%"}
	if len(progress) != len(want) {
		t.Fatalf("got progress lines %q, want %d", progress, len(want))
	}
	for i, pct := range want {
		if !strings.Contains(progress[i], "progress "+pct) {
			t.Errorf("line %d = %q, want %s", i, progress[i], pct)
		}
	}
	if !strings.Contains(log.lines[0], "(source filter) -> out.mkv") {
		t.Errorf("run start line = %q", log.lines[0])
	}
	if log.lines[1] != "DEBUG ffmpeg args: -i in.mkv" {
		t.Errorf("args line = %q", log.lines[1])
	}
}

func TestLogReporterLevels(t *testing.T) {
	log := &recordingLogger{}
	r := NewLogReporter(log, 5)

	r.GraphBuilt(GraphSummary{JobID: "job-1", Source: "g.yaml", Policy: "truthy",
		Filters: []FilterLine{{Name: "fps", Rendered: "fps=fps=30"}}})
	r.Warning("careful")
	r.Error(ReporterError{Title: "Render error", Message: "bad value", Context: "g.yaml"})
	r.Verbose("detail")
	r.OperationComplete("done")

	want := []string{
		"INFO job job-1: graph g.yaml, policy truthy, 1 filters",
		"DEBUG filter fps=fps=30",
		"WARN careful",
		"ERROR Render error: bad value (g.yaml)",
		"DEBUG detail",
		"INFO done",
	}
	if strings.Join(log.lines, "\n") != strings.Join(want, "\n") {
		t.Errorf("got\n%s\nwant\n%s", strings.Join(log.lines, "\n"), strings.Join(want, "\n"))
	}
}
