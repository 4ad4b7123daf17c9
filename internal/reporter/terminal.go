package reporter

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/five82/ffgraph/internal/util"
)

// TerminalReporter outputs human-friendly text to the terminal.
type TerminalReporter struct {
	mu         sync.Mutex
	out        io.Writer
	errOut     io.Writer
	verbose    bool
	progress   *progressbar.ProgressBar
	maxPercent float32
	cyan       *color.Color
	green      *color.Color
	yellow     *color.Color
	red        *color.Color
	magenta    *color.Color
	bold       *color.Color
	faint      *color.Color
}

// NewTerminalReporter creates a terminal reporter writing to stdout and stderr.
func NewTerminalReporter(verbose bool) *TerminalReporter {
	return NewTerminalReporterWithWriters(os.Stdout, os.Stderr, verbose)
}

// NewTerminalReporterWithWriters creates a terminal reporter with custom writers.
func NewTerminalReporterWithWriters(out, errOut io.Writer, verbose bool) *TerminalReporter {
	return &TerminalReporter{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
		cyan:    color.New(color.FgCyan, color.Bold),
		green:   color.New(color.FgGreen, color.Bold),
		yellow:  color.New(color.FgYellow, color.Bold),
		red:     color.New(color.FgRed, color.Bold),
		magenta: color.New(color.FgMagenta),
		bold:    color.New(color.Bold),
		faint:   color.New(color.Faint),
	}
}

func (r *TerminalReporter) finishProgress() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}
	r.maxPercent = 0
}

// printLabel prints a bold label with fixed width padding followed by a value.
// Width is applied to the plain text before styling to keep alignment.
func (r *TerminalReporter) printLabel(width int, label, value string) {
	if value == "" {
		return
	}
	paddedLabel := fmt.Sprintf("%-*s", width, label)
	fmt.Fprintf(r.out, "  %s %s\n", r.bold.Sprint(paddedLabel), value)
}

func (r *TerminalReporter) GraphBuilt(summary GraphSummary) {
	fmt.Fprintln(r.out)
	_, _ = r.cyan.Fprintln(r.out, "GRAPH")
	r.printLabel(8, "File:", summary.Source)
	r.printLabel(8, "Policy:", summary.Policy)
	if r.verbose {
		r.printLabel(8, "Job:", summary.JobID)
	}

	for i, f := range summary.Filters {
		fmt.Fprintf(r.out, "  %s %s\n", r.magenta.Sprintf("%2d.", i+1), f.Rendered)
	}
	if len(summary.Filters) == 0 {
		fmt.Fprintf(r.out, "  %s\n", r.faint.Sprint("no filters"))
	}

	fmt.Fprintln(r.out)
	r.printLabel(16, "-vf", summary.Video)
	r.printLabel(16, "-af", summary.Audio)
	r.printLabel(16, "-filter_complex", summary.Complex)
}

func (r *TerminalReporter) RunStarted(info RunInfo) {
	fmt.Fprintln(r.out)
	_, _ = r.cyan.Fprintln(r.out, "RUN")
	r.printLabel(9, "Input:", info.Input)
	r.printLabel(9, "Output:", info.Output)
	if info.Duration > 0 {
		r.printLabel(9, "Duration:", util.FormatDuration(info.Duration))
	}

	r.finishProgress()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.progress = progressbar.NewOptions64(
		100,
		progressbar.OptionSetDescription(""),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(r.errOut),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionShowDescriptionAtLineEnd(),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "Filtering [",
			BarEnd:        "]",
		}),
	)
}

func (r *TerminalReporter) RunProgress(progress ProgressSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.progress == nil {
		return
	}

	clamped := min(max(progress.Percent, 0), 100)
	if clamped >= r.maxPercent {
		r.maxPercent = clamped
		_ = r.progress.Set64(int64(clamped))
	}

	desc := fmt.Sprintf("frame %d, speed %.1fx, fps %.1f, eta %s",
		progress.CurrentFrame, progress.Speed, progress.FPS, util.FormatElapsed(progress.ETA))
	r.progress.Describe(desc)
}

func (r *TerminalReporter) RunComplete(outcome RunOutcome) {
	r.finishProgress()

	fmt.Fprintln(r.out)
	_, _ = r.cyan.Fprintln(r.out, "RESULTS")
	r.printLabel(7, "Output:", outcome.Output)
	if outcome.InputSize > 0 {
		reduction := util.CalculateSizeReduction(outcome.InputSize, outcome.OutputSize)
		r.printLabel(7, "Size:", fmt.Sprintf("%s -> %s (%.1f%% smaller)",
			util.FormatBytes(outcome.InputSize), util.FormatBytes(outcome.OutputSize), reduction))
	} else {
		r.printLabel(7, "Size:", util.FormatBytes(outcome.OutputSize))
	}
	r.printLabel(7, "Time:", fmt.Sprintf("%s (avg speed %.1fx)",
		util.FormatElapsed(outcome.TotalTime), outcome.AverageSpeed))
}

func (r *TerminalReporter) Warning(message string) {
	_, _ = r.yellow.Fprintf(r.errOut, "WARN: %s\n", message)
}

func (r *TerminalReporter) Error(err ReporterError) {
	r.finishProgress()

	fmt.Fprintln(r.errOut)
	_, _ = r.red.Fprintf(r.errOut, "ERROR %s\n", err.Title)
	fmt.Fprintf(r.errOut, "  %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(r.errOut, "  Context: %s\n", err.Context)
	}
	if err.Suggestion != "" {
		fmt.Fprintf(r.errOut, "  Suggestion: %s\n", err.Suggestion)
	}
}

func (r *TerminalReporter) OperationComplete(message string) {
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s %s\n", r.green.Sprint("✓"), r.bold.Sprint(message))
}

func (r *TerminalReporter) Verbose(message string) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.out, "  %s\n", r.faint.Sprint(message))
}
