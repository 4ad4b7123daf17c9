// Package schema loads the filter catalogue: every supported ffmpeg filter,
// the kind of stream it works on and its option keys in documentation order.
package schema

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/token"
	"slices"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	ferrors "github.com/five82/ffgraph/internal/errors"
)

//go:embed filters.yaml
var catalogueYAML []byte

// Media describes which stream a filter consumes.
type Media string

const (
	MediaVideo      Media = "video"
	MediaAudio      Media = "audio"
	MediaMultimedia Media = "multimedia" // audio in, video out
	MediaSource     Media = "source"     // no input
)

// Valid reports whether m is a known media kind.
func (m Media) Valid() bool {
	switch m {
	case MediaVideo, MediaAudio, MediaMultimedia, MediaSource:
		return true
	}
	return false
}

// Option is one documented filter option.
type Option struct {
	Key         string `yaml:"key"`
	Description string `yaml:"description"`
}

// Method returns the name of the generated setter for the option.
func (o Option) Method() string {
	return ExportName(o.Key)
}

// builderMethods are the methods every generated builder already has.
var builderMethods = []string{"Name", "Keys", "Set", "Descriptor", "Build"}

// ExportName turns a filter or option name into an exported identifier:
// "start_time" -> "StartTime", "sigmaV" -> "SigmaV".
func ExportName(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		r := []rune(part)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	return b.String()
}

// Filter is one catalogue entry.
type Filter struct {
	Name        string   `yaml:"name"`
	Media       Media    `yaml:"media"`
	MultiInput  bool     `yaml:"multi_input"`
	Description string   `yaml:"description"`
	Options     []Option `yaml:"options"`
}

// Keys returns the option keys in documentation order.
func (f *Filter) Keys() []string {
	keys := make([]string, len(f.Options))
	for i, o := range f.Options {
		keys[i] = o.Key
	}
	return keys
}

// HasOption reports whether key is one of the filter's options.
func (f *Filter) HasOption(key string) bool {
	return slices.ContainsFunc(f.Options, func(o Option) bool { return o.Key == key })
}

// SimpleChain reports whether the filter fits in a plain -vf or -af chain.
func (f *Filter) SimpleChain() bool {
	return !f.MultiInput && (f.Media == MediaVideo || f.Media == MediaAudio)
}

// Catalog is the loaded set of filters, sorted by name.
type Catalog struct {
	Filters []Filter `yaml:"filters"`

	byName map[string]int
}

// Load parses the embedded catalogue.
func Load() (*Catalog, error) {
	return Parse(catalogueYAML)
}

// MustLoad is Load for package initialisation; the embedded catalogue is
// covered by tests, so a failure here is a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a catalogue document.
func Parse(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, ferrors.NewSchemaError("failed to parse filter catalogue", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	slices.SortFunc(c.Filters, func(a, b Filter) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	c.byName = make(map[string]int, len(c.Filters))
	for i, f := range c.Filters {
		c.byName[f.Name] = i
	}
	return &c, nil
}

// Validate rejects unnamed filters, duplicate names, unknown media, names
// that cannot be turned into distinct Go identifiers and duplicate, empty or
// clashing option keys.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Filters))
	types := make(map[string]string, len(c.Filters))
	for i, f := range c.Filters {
		if f.Name == "" {
			return ferrors.NewSchemaError(fmt.Sprintf("filter %d has no name", i), nil)
		}
		if seen[f.Name] {
			return ferrors.NewSchemaError(fmt.Sprintf("filter %s is listed twice", f.Name), nil)
		}
		seen[f.Name] = true

		if !f.Media.Valid() {
			return ferrors.NewSchemaError(fmt.Sprintf("filter %s has unknown media %q", f.Name, f.Media), nil)
		}

		ident := ExportName(f.Name)
		if !token.IsIdentifier(ident) {
			return ferrors.NewSchemaError(fmt.Sprintf("filter %s does not make a Go identifier", f.Name), nil)
		}
		if other, ok := types[ident]; ok {
			return ferrors.NewSchemaError(fmt.Sprintf("filters %s and %s both generate %sFilter", other, f.Name, ident), nil)
		}
		types[ident] = f.Name

		if err := f.validateOptions(); err != nil {
			return err
		}
	}
	return nil
}

// validateOptions rejects empty or duplicate keys and keys whose generated
// setter or With alias would clash with another method of the builder.
func (f *Filter) validateOptions() error {
	keys := make(map[string]bool, len(f.Options))
	methods := make(map[string]string, 2*len(f.Options)+len(builderMethods))
	for _, m := range builderMethods {
		methods[m] = m
	}

	for _, o := range f.Options {
		if o.Key == "" {
			return ferrors.NewSchemaError(fmt.Sprintf("filter %s has an option without a key", f.Name), nil)
		}
		if keys[o.Key] {
			return ferrors.NewSchemaError(fmt.Sprintf("filter %s lists option %s twice", f.Name, o.Key), nil)
		}
		keys[o.Key] = true

		m := o.Method()
		if !token.IsIdentifier(m) {
			return ferrors.NewSchemaError(fmt.Sprintf("filter %s option %s does not make a Go identifier", f.Name, o.Key), nil)
		}
		for _, name := range []string{m, "With" + m} {
			if other, ok := methods[name]; ok {
				return ferrors.NewSchemaError(fmt.Sprintf("filter %s option %s generates method %s, already used by %s", f.Name, o.Key, name, other), nil)
			}
			methods[name] = o.Key
		}
	}
	return nil
}

// Lookup returns the named filter.
func (c *Catalog) Lookup(name string) (*Filter, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return &c.Filters[i], true
}

// Names returns the filter names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Filters))
	for i, f := range c.Filters {
		names[i] = f.Name
	}
	return names
}
