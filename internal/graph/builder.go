package graph

import (
	"slices"

	"github.com/five82/ffgraph/internal/logging"
)

// Builder accumulates the options of one filter invocation and appends the
// resulting descriptor to its Command on Build.
type Builder interface {
	// Name returns the ffmpeg filter name.
	Name() string
	// Keys returns the option keys the filter defines, in documentation order.
	Keys() []string
	// Set stores value under key; a nil value clears it.
	Set(key string, value any) Builder
	// Build appends a descriptor built from the current values and returns the Command.
	Build() *Command
}

// OptionBuilder is the generic Builder: a filter name, its ordered option
// keys and the values set so far.
type OptionBuilder struct {
	cmd    *Command
	name   string
	keys   []string
	values map[string]any
}

// NewOptionBuilder creates a builder for filter name bound to cmd.
func NewOptionBuilder(cmd *Command, name string, keys ...string) *OptionBuilder {
	return &OptionBuilder{
		cmd:    cmd,
		name:   name,
		keys:   keys,
		values: make(map[string]any, len(keys)),
	}
}

// Name returns the ffmpeg filter name.
func (b *OptionBuilder) Name() string {
	return b.name
}

// Keys returns a copy of the option keys.
func (b *OptionBuilder) Keys() []string {
	return slices.Clone(b.keys)
}

// Set stores value under key. Values are not type checked.
func (b *OptionBuilder) Set(key string, value any) Builder {
	if value == nil {
		delete(b.values, key)
		return b
	}
	b.values[key] = value
	return b
}

// Value returns the stored value for key.
func (b *OptionBuilder) Value(key string) (any, bool) {
	v, ok := b.values[key]
	return v, ok
}

// Descriptor returns the descriptor Build would append right now.
func (b *OptionBuilder) Descriptor() Descriptor {
	d := NewDescriptor(b.name)
	policy := b.cmd.Policy()
	for _, key := range b.keys {
		v, ok := b.values[key]
		if ok && policy.Includes(v) {
			d.Options[key] = v
		}
	}
	return d
}

// Build appends a snapshot of the current options to the Command and returns
// it. Build may be called again; each call appends a new descriptor.
func (b *OptionBuilder) Build() *Command {
	for key := range b.values {
		if !slices.Contains(b.keys, key) {
			logging.Warn("dropping unknown filter option", "job", b.cmd.ID(), "filter", b.name, "key", key)
		}
	}
	return b.cmd.AddFilter(b.Descriptor())
}
