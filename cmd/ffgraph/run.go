package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/ffgraph"
	"github.com/five82/ffgraph/filters"
	"github.com/five82/ffgraph/internal/config"
	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/logging"
	"github.com/five82/ffgraph/internal/reporter"
	"github.com/five82/ffgraph/internal/schema"
	"github.com/five82/ffgraph/internal/util"
)

type runFlags struct {
	graph       string
	input       string
	output      string
	ffmpegPath  string
	ffprobePath string
	policy      string
	logDir      string
	expectSize  string
	duration    float64
	overwrite   bool
	verify      bool
	noLog       bool
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run ffmpeg with the filters from a graph file",
		Long: `Run loads a graph file, renders it and runs ffmpeg from the input to the
output file, reporting progress as it goes. The input may be left out when
the graph starts from a source filter such as life or cellauto.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, g, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.graph, "graph", "g", "", "Graph file (required)")
	flags.StringVarP(&f.input, "input", "i", "", "Input media file")
	flags.StringVarP(&f.output, "output", "o", "", "Output media file (required)")
	flags.StringVar(&f.ffmpegPath, "ffmpeg", config.DefaultFFmpegPath, "ffmpeg executable")
	flags.StringVar(&f.ffprobePath, "ffprobe", config.DefaultFFprobePath, "ffprobe executable")
	flags.StringVar(&f.policy, "policy", "", "Override the graph file's inclusion policy: truthy or explicit")
	flags.StringVarP(&f.logDir, "log-dir", "l", "", "Log directory (defaults to logs next to the output)")
	flags.Float64Var(&f.duration, "duration", 0, "Input duration in seconds; skips ffprobe")
	flags.BoolVarP(&f.overwrite, "overwrite", "y", false, "Overwrite the output file if it exists")
	flags.BoolVar(&f.verify, "verify", false, "Analyze the output and check its streams and duration")
	flags.StringVar(&f.expectSize, "expect-size", "", "Also check the output video is WIDTHxHEIGHT; implies --verify")
	flags.BoolVar(&f.noLog, "no-log", false, "Disable the run log file")
	_ = cmd.MarkFlagRequired("graph")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runRun(cmd *cobra.Command, g *globalFlags, f *runFlags) error {
	cfg := config.NewConfig(f.graph)
	cfg.Input = f.input
	cfg.Output = f.output
	cfg.FFmpegPath = f.ffmpegPath
	cfg.FFprobePath = f.ffprobePath
	cfg.LogDir = f.logDir
	cfg.Duration = f.duration
	cfg.Overwrite = f.overwrite
	cfg.Verify = f.verify
	cfg.NoLog = f.noLog
	cfg.Verbose = g.verbose
	cfg.Format = config.Format(g.format)
	if f.policy != "" {
		p, err := config.ParsePolicy(f.policy)
		if err != nil {
			return ferrors.NewConfigError("invalid arguments", err)
		}
		cfg.Policy = p
		cfg.PolicySet = true
	}
	if f.expectSize != "" {
		w, h, err := config.ParseSize(f.expectSize)
		if err != nil {
			return ferrors.NewConfigError("invalid arguments", err)
		}
		cfg.ExpectWidth, cfg.ExpectHeight = w, h
	}
	if err := cfg.Validate(); err != nil {
		return ferrors.NewConfigError("invalid arguments", err)
	}

	rep, err := newReporter(g.format, g.verbose, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var opts []ffgraph.Option
	if cfg.PolicySet {
		opts = append(opts, ffgraph.WithPolicy(cfg.Policy))
	}
	c, err := ffgraph.LoadGraph(cfg.GraphFile, opts...)
	if err != nil {
		reportError(rep, err, cfg.GraphFile)
		return err
	}
	cfg.AllowNoInput = startsWithSource(c)
	if err := cfg.ValidateRun(); err != nil {
		return ferrors.NewConfigError("invalid arguments", err)
	}

	runLog, err := logging.Setup(cfg.GetLogDir(), cfg.Verbose, cfg.NoLog)
	if err != nil {
		return err
	}
	defer func() { _ = runLog.Close() }()
	if runLog != nil {
		rep.Verbose(fmt.Sprintf("run log: %s", runLog.FilePath()))
		rep = reporter.NewCompositeReporter(rep, reporter.NewLogReporter(runLog, config.ProgressLogIntervalPercent))
	}

	summary, err := ffgraph.Summarize(c, cfg.GraphFile)
	if err != nil {
		reportError(rep, err, cfg.GraphFile)
		return err
	}
	rep.GraphBuilt(summary)

	runOpts := []ffgraph.RunOption{
		ffgraph.WithFFmpegPath(cfg.GetFFmpegPath()),
		ffgraph.WithFFprobePath(cfg.FFprobePath),
		ffgraph.WithReporter(rep),
	}
	if runLog != nil {
		runOpts = append(runOpts, ffgraph.WithStderrLog(runLog.Writer()))
	}
	if cfg.Overwrite {
		runOpts = append(runOpts, ffgraph.WithOverwrite())
	}
	if cfg.Verify {
		runOpts = append(runOpts, ffgraph.WithVerify())
	}
	if cfg.ExpectWidth > 0 {
		runOpts = append(runOpts, ffgraph.WithExpectedSize(cfg.ExpectWidth, cfg.ExpectHeight))
	}
	if cfg.Duration > 0 {
		runOpts = append(runOpts, ffgraph.WithDuration(cfg.Duration))
	}

	result, err := ffgraph.Run(cmd.Context(), c, cfg.Input, cfg.Output, runOpts...)
	if err != nil {
		reportError(rep, err, cfg.Output)
		return err
	}

	rep.OperationComplete(fmt.Sprintf("Filtered %s in %s", util.GetFileStem(result.OutputFile), util.FormatElapsed(result.Elapsed)))
	return nil
}

// startsWithSource reports whether the first filter generates its own input.
func startsWithSource(c *ffgraph.Command) bool {
	descriptors := c.Filters()
	if len(descriptors) == 0 {
		return false
	}
	f, ok := filters.Catalog().Lookup(descriptors[0].Name)
	return ok && f.Media == schema.MediaSource
}
