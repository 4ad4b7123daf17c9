package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/five82/ffgraph/internal/util"
)

// JSONReporter outputs NDJSON events, one object per line.
type JSONReporter struct {
	writer             io.Writer
	mu                 sync.Mutex
	jobID              string
	lastProgressBucket int
	lastProgressTime   time.Time
}

// NewJSONReporter creates a new JSON reporter that writes to stdout.
func NewJSONReporter() *JSONReporter {
	return NewJSONReporterWithWriter(os.Stdout)
}

// NewJSONReporterWithWriter creates a JSON reporter with a custom writer.
func NewJSONReporterWithWriter(w io.Writer) *JSONReporter {
	return &JSONReporter{
		writer:             w,
		lastProgressBucket: -1,
	}
}

func (r *JSONReporter) timestamp() int64 {
	return time.Now().Unix()
}

func (r *JSONReporter) write(event map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := event["job_id"]; !ok && r.jobID != "" {
		event["job_id"] = r.jobID
	}
	event["timestamp"] = r.timestamp()

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(r.writer, string(data))
}

func (r *JSONReporter) setJob(id string) {
	if id == "" {
		return
	}
	r.mu.Lock()
	r.jobID = id
	r.mu.Unlock()
}

func (r *JSONReporter) GraphBuilt(summary GraphSummary) {
	r.setJob(summary.JobID)

	filters := make([]map[string]string, len(summary.Filters))
	for i, f := range summary.Filters {
		filters[i] = map[string]string{"name": f.Name, "rendered": f.Rendered}
	}

	r.write(map[string]any{
		"type":           "graph_built",
		"job_id":         summary.JobID,
		"source":         summary.Source,
		"policy":         summary.Policy,
		"filters":        filters,
		"video_chain":    summary.Video,
		"audio_chain":    summary.Audio,
		"complex_filter": summary.Complex,
	})
}

func (r *JSONReporter) RunStarted(info RunInfo) {
	r.setJob(info.JobID)

	r.mu.Lock()
	r.lastProgressBucket = -1
	r.lastProgressTime = time.Time{}
	r.mu.Unlock()

	r.write(map[string]any{
		"type":             "run_started",
		"input_file":       info.Input,
		"output_file":      info.Output,
		"duration_seconds": info.Duration,
		"args":             info.Args,
	})
}

func (r *JSONReporter) RunProgress(progress ProgressSnapshot) {
	const minInterval = 5 * time.Second

	bucket := int(progress.Percent)
	now := time.Now()

	r.mu.Lock()
	intervalElapsed := r.lastProgressTime.IsZero() || now.Sub(r.lastProgressTime) >= minInterval
	shouldEmit := bucket > r.lastProgressBucket || intervalElapsed || progress.Percent >= 99.0

	if !shouldEmit {
		r.mu.Unlock()
		return
	}

	if bucket > r.lastProgressBucket {
		r.lastProgressBucket = bucket
	}
	r.lastProgressTime = now
	r.mu.Unlock()

	r.write(map[string]any{
		"type":            "run_progress",
		"current_frame":   progress.CurrentFrame,
		"percent":         progress.Percent,
		"speed":           progress.Speed,
		"fps":             progress.FPS,
		"eta_seconds":     int64(progress.ETA.Seconds()),
		"bitrate":         progress.Bitrate,
		"elapsed_seconds": progress.ElapsedSecs,
	})
}

func (r *JSONReporter) RunComplete(outcome RunOutcome) {
	r.write(map[string]any{
		"type":                   "run_complete",
		"input_file":             outcome.Input,
		"output_file":            outcome.Output,
		"input_size":             outcome.InputSize,
		"output_size":            outcome.OutputSize,
		"size_reduction_percent": util.CalculateSizeReduction(outcome.InputSize, outcome.OutputSize),
		"average_speed":          outcome.AverageSpeed,
		"duration_seconds":       int64(outcome.TotalTime.Seconds()),
	})
}

func (r *JSONReporter) Warning(message string) {
	r.write(map[string]any{
		"type":    "warning",
		"message": message,
	})
}

func (r *JSONReporter) Error(err ReporterError) {
	r.write(map[string]any{
		"type":       "error",
		"title":      err.Title,
		"message":    err.Message,
		"context":    err.Context,
		"suggestion": err.Suggestion,
	})
}

func (r *JSONReporter) OperationComplete(message string) {
	r.write(map[string]any{
		"type":    "operation_complete",
		"message": message,
	})
}

func (r *JSONReporter) Verbose(message string) {
	r.write(map[string]any{
		"type":    "verbose",
		"message": message,
	})
}
