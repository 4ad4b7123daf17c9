package graph

import (
	"slices"

	"github.com/google/uuid"

	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/logging"
)

// Factory creates a fresh builder bound to cmd.
type Factory func(cmd *Command) Builder

// Command is one media job under construction. It owns the ordered filter
// graph and the name-to-factory table filters are registered in.
//
// A Command is not safe for concurrent mutation; it is meant to be assembled
// by a single goroutine and then handed off read-only.
type Command struct {
	id        string
	policy    InclusionPolicy
	factories map[string]Factory
	filters   []Descriptor
}

// CommandOption configures a Command.
type CommandOption func(*Command)

// WithPolicy sets the option inclusion policy used by builders bound to the Command.
func WithPolicy(p InclusionPolicy) CommandOption {
	return func(c *Command) {
		c.policy = p
	}
}

// WithID sets the job id instead of generating one.
func WithID(id string) CommandOption {
	return func(c *Command) {
		c.id = id
	}
}

// NewCommand creates an empty Command with no registered filters.
func NewCommand(opts ...CommandOption) *Command {
	c := &Command{
		policy:    PolicyTruthy,
		factories: make(map[string]Factory),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
	return c
}

// ID returns the job id.
func (c *Command) ID() string {
	return c.id
}

// Policy returns the option inclusion policy.
func (c *Command) Policy() InclusionPolicy {
	return c.policy
}

// Register binds name to factory. Registering a name again replaces the
// previous factory; the name itself is not validated. A nil factory removes
// the name, so Use reports it as unknown.
func (c *Command) Register(name string, factory Factory) *Command {
	if factory == nil {
		delete(c.factories, name)
		return c
	}
	if _, ok := c.factories[name]; ok {
		logging.Debug("filter factory replaced", "job", c.id, "filter", name)
	}
	c.factories[name] = factory
	return c
}

// Registered reports whether a factory is bound to name.
func (c *Command) Registered(name string) bool {
	_, ok := c.factories[name]
	return ok
}

// Names returns the registered filter names in sorted order.
func (c *Command) Names() []string {
	names := make([]string, 0, len(c.factories))
	for name := range c.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Use invokes the factory registered under name and returns a new builder
// bound to c.
func (c *Command) Use(name string) (Builder, error) {
	factory, ok := c.factories[name]
	if !ok {
		return nil, ferrors.NewUnknownFilterError(name)
	}
	return factory(c), nil
}

// AddFilter appends d to the filter graph and returns c. The option map is
// copied, so the caller may reuse it. A descriptor without a name is dropped.
func (c *Command) AddFilter(d Descriptor) *Command {
	if d.Name == "" {
		logging.Warn("dropping filter descriptor without a name", "job", c.id)
		return c
	}
	c.filters = append(c.filters, d.Clone())
	return c
}

// Filters returns copies of the appended descriptors in insertion order.
func (c *Command) Filters() []Descriptor {
	out := make([]Descriptor, len(c.filters))
	for i, d := range c.filters {
		out[i] = d.Clone()
	}
	return out
}

// Len returns the number of descriptors in the graph.
func (c *Command) Len() int {
	return len(c.filters)
}
