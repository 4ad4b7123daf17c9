// Package graphfile reads filter graphs from YAML files:
//
//	policy: truthy
//	filters:
//	  - name: fps
//	    options: {fps: 30, round: up}
//	  - name: vstack
//	    options: {inputs: 3, shortest: 1}
package graphfile

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/five82/ffgraph/filters"
	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/graph"
)

// Entry is one filter invocation in a graph file.
type Entry struct {
	Name    string         `yaml:"name"`
	Options map[string]any `yaml:"options"`
}

// File is a parsed graph file.
type File struct {
	Path    string  `yaml:"-"`
	Policy  string  `yaml:"policy"`
	Filters []Entry `yaml:"filters"`

	policy graph.InclusionPolicy
}

// Load reads and parses the graph file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ferrors.NewGraphFileError(fmt.Sprintf("cannot read %s", path), err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	f.Path = path
	return f, nil
}

// Parse decodes a graph file and checks every entry against the filter
// catalogue.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, ferrors.NewGraphFileError("invalid graph file", err)
	}

	policy, err := graph.ParsePolicy(f.Policy)
	if err != nil {
		return nil, ferrors.NewGraphFileError("invalid policy", err)
	}
	f.policy = policy

	if len(f.Filters) == 0 {
		return nil, ferrors.NewGraphFileError("graph file lists no filters", nil)
	}
	for i, e := range f.Filters {
		if e.Name == "" {
			return nil, ferrors.NewGraphFileError(fmt.Sprintf("filter %d has no name", i+1), nil)
		}
		if err := filters.Validate(graph.Descriptor{Name: e.Name, Options: e.Options}); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

// InclusionPolicy returns the parsed policy.
func (f *File) InclusionPolicy() graph.InclusionPolicy {
	return f.policy
}

// Apply builds every entry on cmd in file order. cmd must have the entries'
// filters registered.
func (f *File) Apply(cmd *graph.Command) error {
	for _, e := range f.Filters {
		b, err := cmd.Use(e.Name)
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(e.Options))
		for k := range e.Options {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			b.Set(k, e.Options[k])
		}
		b.Build()
	}
	return nil
}

// Command returns a new Command using the file's policy, with every
// catalogued filter registered and the file's entries applied.
func (f *File) Command(opts ...graph.CommandOption) (*graph.Command, error) {
	opts = append([]graph.CommandOption{graph.WithPolicy(f.policy)}, opts...)
	cmd := filters.RegisterAll(graph.NewCommand(opts...))
	if err := f.Apply(cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}
