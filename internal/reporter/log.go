package reporter

import (
	"strings"
	"sync"

	"github.com/five82/ffgraph/internal/util"
)

// Logger is the printf-style log a LogReporter writes to.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// LogReporter writes run events to a plain-text log. Progress is logged each
// time the percent crosses another multiple of the interval.
type LogReporter struct {
	log      Logger
	interval int

	mu         sync.Mutex
	lastLogged int
}

// NewLogReporter creates a LogReporter logging progress every intervalPercent.
func NewLogReporter(log Logger, intervalPercent uint8) *LogReporter {
	interval := int(intervalPercent)
	if interval == 0 {
		interval = 1
	}
	return &LogReporter{log: log, interval: interval}
}

func (r *LogReporter) GraphBuilt(summary GraphSummary) {
	r.log.Info("job %s: graph %s, policy %s, %d filters", summary.JobID, summary.Source, summary.Policy, len(summary.Filters))
	for _, f := range summary.Filters {
		r.log.Debug("filter %s", f.Rendered)
	}
}

func (r *LogReporter) RunStarted(info RunInfo) {
	r.mu.Lock()
	r.lastLogged = 0
	r.mu.Unlock()

	input := info.Input
	if input == "" {
		input = "(source filter)"
	}
	r.log.Info("running ffmpeg: %s -> %s, duration %s", input, info.Output, util.FormatDuration(info.Duration))
	r.log.Debug("ffmpeg args: %s", strings.Join(info.Args, " "))
}

func (r *LogReporter) RunProgress(progress ProgressSnapshot) {
	step := int(progress.Percent) / r.interval * r.interval

	r.mu.Lock()
	if step <= r.lastLogged {
		r.mu.Unlock()
		return
	}
	r.lastLogged = step
	r.mu.Unlock()

	r.log.Info("progress %d%%: %s at %.2fx, eta %s",
		step, util.FormatDuration(progress.ElapsedSecs), progress.Speed, util.FormatElapsed(progress.ETA))
}

func (r *LogReporter) RunComplete(outcome RunOutcome) {
	r.log.Info("finished in %s at %.2fx: %s (%s)", util.FormatElapsed(outcome.TotalTime), outcome.AverageSpeed,
		outcome.Output, util.FormatBytes(outcome.OutputSize))
}

func (r *LogReporter) Warning(message string) {
	r.log.Warn("%s", message)
}

func (r *LogReporter) Error(err ReporterError) {
	if err.Context != "" {
		r.log.Error("%s: %s (%s)", err.Title, err.Message, err.Context)
		return
	}
	r.log.Error("%s: %s", err.Title, err.Message)
}

func (r *LogReporter) OperationComplete(message string) {
	r.log.Info("%s", message)
}

func (r *LogReporter) Verbose(message string) {
	r.log.Debug("%s", message)
}
