// Package filters provides a typed builder for every catalogued ffmpeg
// filter. Each builder wraps a graph.OptionBuilder; RegisterXxx attaches it
// to a graph.Command so it can also be reached by name through Command.Use.
//
//	cmd := filters.RegisterAll(graph.NewCommand())
//	filters.NewFps(cmd).Fps(30).Round("up").Build()
package filters

//go:generate go run ../cmd/ffgraph-gen -o zz_filters.go
