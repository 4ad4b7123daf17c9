package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/ffgraph"
	"github.com/five82/ffgraph/internal/config"
	"github.com/five82/ffgraph/internal/discovery"
	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/graphfile"
	"github.com/five82/ffgraph/internal/reporter"
)

type renderFlags struct {
	graph  string
	policy string
	watch  bool
}

func newRenderCmd(g *globalFlags) *cobra.Command {
	f := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the ffmpeg filter chains a graph file describes",
		Long: `Render loads a graph file, or every graph file in a directory, and prints
the -vf/-af chains or the -filter_complex graph ffmpeg would be given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, g, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.graph, "graph", "g", "", "Graph file or directory of graph files (required)")
	flags.StringVar(&f.policy, "policy", "", "Override the graph file's inclusion policy: truthy or explicit")
	flags.BoolVarP(&f.watch, "watch", "w", false, "Render again every time the graph file changes")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

func runRender(cmd *cobra.Command, g *globalFlags, f *renderFlags) error {
	cfg := config.NewConfig(f.graph)
	cfg.Format = config.Format(g.format)
	cfg.Verbose = g.verbose
	cfg.Watch = f.watch
	if f.policy != "" {
		p, err := config.ParsePolicy(f.policy)
		if err != nil {
			return ferrors.NewConfigError("invalid arguments", err)
		}
		cfg.Policy = p
		cfg.PolicySet = true
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

	found, err := discovery.FindGraphFiles(cfg.GraphFile)
	if err != nil {
		return err
	}

	if cfg.Watch {
		if len(found.Files) != 1 {
			return fmt.Errorf("--watch needs a single graph file, %s has %d", cfg.GraphFile, len(found.Files))
		}
		return watchGraph(cmd, rep, found.Files[0], opts)
	}

	var failed int
	for _, path := range found.Files {
		if err := renderGraph(rep, path, opts); err != nil {
			reportError(rep, err, path)
			failed++
		}
	}
	if failed > 0 {
		return ferrors.NewOperationFailedError(fmt.Sprintf("%d of %d graph files failed to render", failed, len(found.Files)), nil)
	}
	if len(found.Files) > 1 {
		rep.OperationComplete(fmt.Sprintf("Rendered %d graph files", len(found.Files)))
	}
	return nil
}

func renderGraph(rep reporter.Reporter, path string, opts []ffgraph.Option) error {
	c, err := ffgraph.LoadGraph(path, opts...)
	if err != nil {
		return err
	}
	summary, err := ffgraph.Summarize(c, path)
	if err != nil {
		return err
	}
	rep.GraphBuilt(summary)
	return nil
}

// watchGraph re-renders path on every change until the command's context is
// cancelled. Broken edits are reported and the watch carries on.
func watchGraph(cmd *cobra.Command, rep reporter.Reporter, path string, opts []ffgraph.Option) error {
	rep.Verbose(fmt.Sprintf("watching %s, press Ctrl+C to stop", path))
	return graphfile.Watch(cmd.Context(), path, func(_ *graphfile.File, err error) {
		if err == nil {
			err = renderGraph(rep, path, opts)
		}
		if err != nil {
			reportError(rep, err, path)
		}
	})
}
