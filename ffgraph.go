// Package ffgraph builds ffmpeg filter graphs with fluent per-filter builders
// and runs ffmpeg with the result.
//
// A Command holds the ordered list of filter descriptors for one job and the
// table of filters that can be added to it. Builders copy the options that
// were set into a descriptor when Build is called:
//
//	cmd := ffgraph.New()
//	filters.NewFps(cmd).Fps(30).Round("up").Build()
//
//	b, _ := cmd.Use("gblur")
//	b.Set("sigma", 2).Set("steps", 0).Build()
//
//	chains, err := ffgraph.Render(cmd)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(chains.Video) // fps=fps=30:round=up,gblur=sigma=2
//
// By default an option whose value is zero, false, empty or nil is left out,
// exactly as if it had never been set. Use WithExplicitOptions to keep every
// value that was set.
package ffgraph

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/five82/ffgraph/filters"
	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/ffmpeg"
	"github.com/five82/ffgraph/internal/ffprobe"
	"github.com/five82/ffgraph/internal/graph"
	"github.com/five82/ffgraph/internal/graphfile"
	"github.com/five82/ffgraph/internal/logging"
	"github.com/five82/ffgraph/internal/reporter"
	"github.com/five82/ffgraph/internal/util"
	"github.com/five82/ffgraph/internal/validation"
)

// Re-exported graph and reporting types.
type (
	Command          = graph.Command
	Builder          = graph.Builder
	Factory          = graph.Factory
	Descriptor       = graph.Descriptor
	InclusionPolicy  = graph.InclusionPolicy
	Chains           = ffmpeg.Chains
	Progress         = ffmpeg.Progress
	Reporter         = reporter.Reporter
	GraphSummary     = reporter.GraphSummary
	FilterLine       = reporter.FilterLine
	RunInfo          = reporter.RunInfo
	RunOutcome       = reporter.RunOutcome
	ReporterError    = reporter.ReporterError
	NullReporter     = reporter.NullReporter
	ProgressSnapshot = reporter.ProgressSnapshot
	Validation       = validation.Result
)

const (
	PolicyTruthy   = graph.PolicyTruthy
	PolicyExplicit = graph.PolicyExplicit
)

// ParsePolicy converts "truthy" or "explicit" (case-insensitive) to a policy.
func ParsePolicy(s string) (InclusionPolicy, error) {
	return graph.ParsePolicy(s)
}

// Truthy reports whether v counts as set under PolicyTruthy.
func Truthy(v any) bool {
	return graph.Truthy(v)
}

type settings struct {
	policy      graph.InclusionPolicy
	id          string
	noFilters   bool
	policyIsSet bool
}

// Option configures a Command created by New or LoadGraph.
type Option func(*settings)

// WithPolicy sets the option inclusion policy.
func WithPolicy(p InclusionPolicy) Option {
	return func(s *settings) {
		s.policy = p
		s.policyIsSet = true
	}
}

// WithExplicitOptions keeps every option value that was set, including zero
// values. Only nil is treated as unset.
func WithExplicitOptions() Option {
	return WithPolicy(PolicyExplicit)
}

// WithID sets the job id instead of generating one.
func WithID(id string) Option {
	return func(s *settings) {
		s.id = id
	}
}

// WithoutFilters creates the Command with no filters registered.
func WithoutFilters() Option {
	return func(s *settings) {
		s.noFilters = true
	}
}

func newSettings(opts []Option) *settings {
	s := &settings{policy: PolicyTruthy}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *settings) commandOptions() []graph.CommandOption {
	opts := []graph.CommandOption{graph.WithPolicy(s.policy)}
	if s.id != "" {
		opts = append(opts, graph.WithID(s.id))
	}
	return opts
}

// New creates a Command with every catalogued filter registered.
func New(opts ...Option) *Command {
	s := newSettings(opts)
	cmd := graph.NewCommand(s.commandOptions()...)
	if !s.noFilters {
		filters.RegisterAll(cmd)
	}
	return cmd
}

// LoadGraph reads a graph file and returns the Command it describes. A policy
// given with WithPolicy overrides the file's own.
func LoadGraph(path string, opts ...Option) (*Command, error) {
	f, err := graphfile.Load(path)
	if err != nil {
		return nil, err
	}

	s := newSettings(opts)
	var cmdOpts []graph.CommandOption
	if s.policyIsSet {
		cmdOpts = append(cmdOpts, graph.WithPolicy(s.policy))
	}
	if s.id != "" {
		cmdOpts = append(cmdOpts, graph.WithID(s.id))
	}
	return f.Command(cmdOpts...)
}

// Render renders the Command's filters into ffmpeg filter chains.
func Render(cmd *Command) (Chains, error) {
	return filters.Chains(cmd)
}

// Summarize renders cmd into the summary reporters print for a built graph.
func Summarize(cmd *Command, source string) (GraphSummary, error) {
	chains, err := Render(cmd)
	if err != nil {
		return GraphSummary{}, err
	}

	summary := GraphSummary{
		JobID:   cmd.ID(),
		Source:  source,
		Policy:  cmd.Policy().String(),
		Video:   chains.Video,
		Audio:   chains.Audio,
		Complex: chains.Complex,
	}
	for _, d := range cmd.Filters() {
		rendered, err := ffmpeg.FormatDescriptor(d)
		if err != nil {
			return GraphSummary{}, err
		}
		summary.Filters = append(summary.Filters, FilterLine{Name: d.Name, Rendered: rendered})
	}
	return summary, nil
}

// FormatDescriptor renders one descriptor as "name=k=v:k=v".
func FormatDescriptor(d Descriptor) (string, error) {
	return ffmpeg.FormatDescriptor(d)
}

// Result contains the result of running ffmpeg on a Command.
type Result struct {
	JobID                string
	OutputFile           string
	InputSize            uint64
	OutputSize           uint64
	SizeReductionPercent float64
	Elapsed              time.Duration
	AverageSpeed         float32
	Stderr               string
	Validation           *Validation // nil unless WithVerify was given
}

type runSettings struct {
	ffmpegPath  string
	ffprobePath string
	overwrite   bool
	duration    float64
	verify      bool
	size        *[2]int64
	stderrLog   io.Writer
	reporter    reporter.Reporter
}

// RunOption configures Run.
type RunOption func(*runSettings)

// WithFFmpegPath sets the ffmpeg executable.
func WithFFmpegPath(path string) RunOption {
	return func(s *runSettings) { s.ffmpegPath = path }
}

// WithFFprobePath sets the ffprobe executable used to find the input duration.
func WithFFprobePath(path string) RunOption {
	return func(s *runSettings) { s.ffprobePath = path }
}

// WithOverwrite lets ffmpeg replace an existing output file.
func WithOverwrite() RunOption {
	return func(s *runSettings) { s.overwrite = true }
}

// WithDuration sets the input duration in seconds for progress reporting,
// skipping the ffprobe call.
func WithDuration(seconds float64) RunOption {
	return func(s *runSettings) { s.duration = seconds }
}

// WithVerify analyzes the output after a successful run and checks that it has
// the streams the graph filtered and, for -vf/-af graphs, the input duration.
func WithVerify() RunOption {
	return func(s *runSettings) { s.verify = true }
}

// WithExpectedSize makes verification also check the output video is
// width x height. It implies WithVerify.
func WithExpectedSize(width, height int64) RunOption {
	return func(s *runSettings) {
		s.verify = true
		s.size = &[2]int64{width, height}
	}
}

// WithStderrLog copies ffmpeg's stderr to w as it is read.
func WithStderrLog(w io.Writer) RunOption {
	return func(s *runSettings) { s.stderrLog = w }
}

// WithReporter sends run events to r.
func WithReporter(r Reporter) RunOption {
	return func(s *runSettings) { s.reporter = r }
}

// Run renders cmd and runs ffmpeg from input to output. input may be empty
// when the graph starts from a source filter.
func Run(ctx context.Context, cmd *Command, input, output string, opts ...RunOption) (*Result, error) {
	s := &runSettings{reporter: reporter.NullReporter{}}
	for _, opt := range opts {
		opt(s)
	}

	chains, err := Render(cmd)
	if err != nil {
		return nil, err
	}
	if chains.IsEmpty() {
		s.reporter.Warning("graph has no filters; ffmpeg will copy the input through its default encoders")
	}

	var inputSize uint64
	if input != "" {
		if !util.FileExists(input) {
			return nil, ferrors.NewPathError(fmt.Sprintf("input file %s does not exist", input))
		}
		inputSize, _ = util.GetFileSize(input)
		if s.duration == 0 {
			inspectInput(ctx, s, input, chains)
		}
	}

	params := &ffmpeg.RunParams{
		FFmpegPath: s.ffmpegPath,
		Input:      input,
		Output:     output,
		Overwrite:  s.overwrite,
		Chains:     chains,
		Duration:   s.duration,
		StderrLog:  s.stderrLog,
	}

	s.reporter.RunStarted(reporter.RunInfo{
		JobID:    cmd.ID(),
		Input:    input,
		Output:   output,
		Duration: s.duration,
		Args:     ffmpeg.BuildArgs(params),
	})

	var lastSpeed float32
	res := ffmpeg.Run(ctx, params, func(p ffmpeg.Progress) {
		if p.Speed > 0 {
			lastSpeed = p.Speed
		}
		s.reporter.RunProgress(reporter.ProgressSnapshot{
			CurrentFrame: p.CurrentFrame,
			Percent:      p.Percent,
			Speed:        p.Speed,
			FPS:          p.FPS,
			ETA:          p.ETA,
			Bitrate:      p.Bitrate,
			ElapsedSecs:  p.ElapsedSecs,
		})
	})
	if res.Error != nil {
		logging.Debug("ffmpeg stderr", "job", cmd.ID(), "stderr", res.Stderr)
		return nil, res.Error
	}

	outputSize, err := util.GetFileSize(output)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg reported success but output is missing: %w", err)
	}

	result := &Result{
		JobID:                cmd.ID(),
		OutputFile:           output,
		InputSize:            inputSize,
		OutputSize:           outputSize,
		SizeReductionPercent: util.CalculateSizeReduction(inputSize, outputSize),
		Elapsed:              res.Elapsed,
		AverageSpeed:         lastSpeed,
		Stderr:               res.Stderr,
	}

	if s.verify {
		result.Validation = verifyOutput(ctx, s, output, chains)
	}

	s.reporter.RunComplete(reporter.RunOutcome{
		JobID:        result.JobID,
		Input:        input,
		Output:       output,
		InputSize:    inputSize,
		OutputSize:   outputSize,
		TotalTime:    result.Elapsed,
		AverageSpeed: lastSpeed,
	})
	return result, nil
}

// inspectInput fills in the duration and warns when the graph filters a stream
// the input does not have. ffprobe failures are not fatal.
func inspectInput(ctx context.Context, s *runSettings, input string, chains Chains) {
	info, err := ffprobe.Inspect(ctx, s.ffprobePath, input)
	if err != nil {
		logging.Warn("ffprobe failed, progress percent unavailable", "input", input, "error", err)
		return
	}
	s.duration = info.Duration
	if chains.Video != "" && !info.HasVideo {
		s.reporter.Warning(fmt.Sprintf("%s has no video stream for the -vf chain", input))
	}
	if chains.Audio != "" && !info.HasAudio {
		s.reporter.Warning(fmt.Sprintf("%s has no audio stream for the -af chain", input))
	}
}

// verifyOutput checks the output and reports every step. Analysis failures
// are reported as warnings and leave the result nil.
func verifyOutput(ctx context.Context, s *runSettings, output string, chains Chains) *Validation {
	exp := validation.Expectations{
		Video: chains.Video != "",
		Audio: chains.Audio != "",
	}
	if chains.Complex == "" {
		exp.Duration = s.duration
	}
	exp.Dimensions = s.size

	res, err := validation.Validate(ctx, validation.NewFFprobeAnalyzer(s.ffprobePath), output, exp)
	if err != nil {
		s.reporter.Warning(fmt.Sprintf("output verification skipped: %v", err))
		return nil
	}
	for _, step := range res.Steps {
		if step.Passed {
			s.reporter.Verbose(fmt.Sprintf("%s: %s", step.Name, step.Details))
		} else {
			s.reporter.Warning(fmt.Sprintf("%s: %s", step.Name, step.Details))
		}
	}
	return res
}
