package filters

import (
	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/ffmpeg"
	"github.com/five82/ffgraph/internal/graph"
	"github.com/five82/ffgraph/internal/logging"
	"github.com/five82/ffgraph/internal/schema"
)

var catalog = schema.MustLoad()

// Catalog returns the filter catalogue the builders were generated from.
func Catalog() *schema.Catalog {
	return catalog
}

// RegisterAll registers every catalogued filter on cmd.
func RegisterAll(cmd *graph.Command) *graph.Command {
	for _, r := range registrations {
		r.register(cmd)
	}
	return cmd
}

// Names returns the names of all generated builders.
func Names() []string {
	names := make([]string, len(registrations))
	for i, r := range registrations {
		names[i] = r.name
	}
	return names
}

// Validate checks d against the catalogue: the filter must be known and
// every option key must be one it defines.
func Validate(d graph.Descriptor) error {
	f, ok := catalog.Lookup(d.Name)
	if !ok {
		return ferrors.NewUnknownFilterError(d.Name)
	}
	for key := range d.Options {
		if !f.HasOption(key) {
			return ferrors.NewUnknownOptionError(d.Name, key)
		}
	}
	return nil
}

// Chains renders the Command's filters for ffmpeg. Video and audio filters go
// to -vf and -af in order. If any filter is a source, changes media type or
// takes several inputs, the whole graph is rendered as one -filter_complex
// chain instead.
func Chains(cmd *graph.Command) (ffmpeg.Chains, error) {
	video, audio, all := ffmpeg.NewFilterChain(), ffmpeg.NewFilterChain(), ffmpeg.NewFilterChain()
	complexGraph := false

	for _, d := range cmd.Filters() {
		chain := video
		if f, ok := catalog.Lookup(d.Name); ok {
			if !f.SimpleChain() {
				complexGraph = true
			}
			if f.Media == schema.MediaAudio {
				chain = audio
			}
		} else {
			logging.Debug("filter not in catalogue, assuming video", "job", cmd.ID(), "filter", d.Name)
		}

		rendered, err := ffmpeg.FormatDescriptor(d)
		if err != nil {
			return ffmpeg.Chains{}, err
		}
		all.AddFilter(rendered)
		chain.AddFilter(rendered)
	}

	if complexGraph {
		return ffmpeg.Chains{Complex: all.Build()}, nil
	}
	return ffmpeg.Chains{Video: video.Build(), Audio: audio.Build()}, nil
}
