package ffmpeg

import (
	"strings"

	"github.com/five82/ffgraph/internal/graph"
)

// FilterChain builds filter chains.
type FilterChain struct {
	filters []string
}

// NewFilterChain creates a new empty filter chain.
func NewFilterChain() *FilterChain {
	return &FilterChain{}
}

// AddDescriptor renders d and adds it to the chain.
func (c *FilterChain) AddDescriptor(d graph.Descriptor) error {
	s, err := FormatDescriptor(d)
	if err != nil {
		return err
	}
	c.filters = append(c.filters, s)
	return nil
}

// AddFilter adds an already rendered filter to the chain.
func (c *FilterChain) AddFilter(filter string) *FilterChain {
	if filter != "" {
		c.filters = append(c.filters, filter)
	}
	return c
}

// Build builds the filter chain into a single filter string.
// Returns empty string if no filters are present.
func (c *FilterChain) Build() string {
	if len(c.filters) == 0 {
		return ""
	}
	return strings.Join(c.filters, ",")
}

// IsEmpty returns true if no filters are present.
func (c *FilterChain) IsEmpty() bool {
	return len(c.filters) == 0
}

// Len returns the number of filters in the chain.
func (c *FilterChain) Len() int {
	return len(c.filters)
}

// Chains holds the rendered filter strings for one ffmpeg invocation.
// Complex is set instead of Video and Audio when the graph needs
// -filter_complex.
type Chains struct {
	Video   string
	Audio   string
	Complex string
}

// IsEmpty reports whether no chain has any filter.
func (c Chains) IsEmpty() bool {
	return c.Video == "" && c.Audio == "" && c.Complex == ""
}
