// Package main provides the CLI entry point for ffgraph.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/logging"
)

const (
	appName    = "ffgraph"
	appVersion = "0.1.0"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	format  string
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if ferrors.IsCancelled(err) {
			fmt.Fprintln(os.Stderr, "Cancelled")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Build ffmpeg filter graphs from YAML and run them",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logging.DefaultConfig().Level
			if g.verbose {
				level = logging.LevelDebug
			}
			logging.Init(level, os.Stderr)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("%s version {{.Version}}\n", appName))

	pf := root.PersistentFlags()
	pf.StringVar(&g.format, "format", "auto", "Output format: auto, terminal or json")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose output for troubleshooting")

	root.AddCommand(
		newFiltersCmd(),
		newRenderCmd(g),
		newRunCmd(g),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, appVersion)
		},
	}
}
