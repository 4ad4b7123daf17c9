// Package validation checks the output of a filter run.
package validation

import (
	"context"

	"github.com/five82/ffgraph/internal/ffprobe"
)

// MediaAnalyzer inspects a media file. It lets the checks be tested without
// ffprobe installed.
type MediaAnalyzer interface {
	Analyze(ctx context.Context, path string) (*ffprobe.MediaInfo, error)
}

// FFprobeAnalyzer implements MediaAnalyzer with the ffprobe executable.
type FFprobeAnalyzer struct {
	Binary string
}

// NewFFprobeAnalyzer creates an analyzer that runs binary, or ffprobe from
// PATH when binary is empty.
func NewFFprobeAnalyzer(binary string) *FFprobeAnalyzer {
	return &FFprobeAnalyzer{Binary: binary}
}

// Analyze runs ffprobe on path.
func (a *FFprobeAnalyzer) Analyze(ctx context.Context, path string) (*ffprobe.MediaInfo, error) {
	return ffprobe.Inspect(ctx, a.Binary, path)
}
