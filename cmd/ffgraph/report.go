package main

import (
	"io"
	"os"

	"github.com/five82/ffgraph/internal/config"
	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/reporter"
	"github.com/five82/ffgraph/internal/util"
)

// newReporter picks the reporter for format. Auto uses the terminal reporter
// when stdout is a terminal and NDJSON otherwise.
func newReporter(format string, verbose bool, out, errOut io.Writer) (reporter.Reporter, error) {
	f, err := config.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	if f == config.FormatAuto {
		f = config.FormatJSON
		if out == os.Stdout && util.IsTerminal(os.Stdout) {
			f = config.FormatTerminal
		}
	}

	if f == config.FormatJSON {
		return reporter.NewJSONReporterWithWriter(out), nil
	}
	return reporter.NewTerminalReporterWithWriters(out, errOut, verbose), nil
}

// reportError sends err to rep with a title taken from its kind.
func reportError(rep reporter.Reporter, err error, context string) {
	title := "Error"
	var suggestion string
	switch {
	case ferrors.IsKind(err, ferrors.KindUnknownFilter):
		title = ferrors.KindUnknownFilter.String()
		suggestion = "run 'ffgraph filters' for the supported filters"
	case ferrors.IsKind(err, ferrors.KindUnknownOption):
		title = ferrors.KindUnknownOption.String()
		suggestion = "run 'ffgraph filters NAME' for the options of a filter"
	case ferrors.IsKind(err, ferrors.KindGraphFile):
		title = ferrors.KindGraphFile.String()
	case ferrors.IsKind(err, ferrors.KindRender):
		title = ferrors.KindRender.String()
	case ferrors.IsKind(err, ferrors.KindCommand), ferrors.IsKind(err, ferrors.KindFFmpeg):
		title = ferrors.KindFFmpeg.String()
		suggestion = "check the ffmpeg output in the run log"
	case ferrors.IsKind(err, ferrors.KindPath):
		title = ferrors.KindPath.String()
	}
	rep.Error(reporter.ReporterError{
		Title:      title,
		Message:    err.Error(),
		Context:    context,
		Suggestion: suggestion,
	})
}
