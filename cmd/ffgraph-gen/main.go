// Package main generates the typed filter builders in package filters from
// the filter catalogue.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
	"unicode"

	"github.com/spf13/pflag"

	"github.com/five82/ffgraph/internal/schema"
)

func main() {
	out := pflag.StringP("output", "o", "zz_filters.go", "file to write")
	pkg := pflag.String("package", "filters", "package name of the generated file")
	pflag.Parse()

	if err := run(*out, *pkg); err != nil {
		fmt.Fprintf(os.Stderr, "ffgraph-gen: %v\n", err)
		os.Exit(1)
	}
}

func run(out, pkg string) error {
	catalog, err := schema.Load()
	if err != nil {
		return err
	}

	src, err := generate(catalog, pkg)
	if err != nil {
		return err
	}
	return os.WriteFile(out, src, 0o644)
}

type filterData struct {
	schema.Filter
	Type  string
	Const string
}

type optionData struct {
	schema.Option
	Method string
}

func generate(catalog *schema.Catalog, pkg string) ([]byte, error) {
	filters := make([]filterData, len(catalog.Filters))
	for i, f := range catalog.Filters {
		ident := schema.ExportName(f.Name)
		filters[i] = filterData{Filter: f, Type: ident + "Filter", Const: "Filter" + ident}
	}

	tmpl, err := template.New("filters").Funcs(template.FuncMap{
		"export":  schema.ExportName,
		"lower":   lowerFirst,
		"options": options,
		"comment": comment,
	}).Parse(fileTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{"Package": pkg, "Filters": filters}); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

func options(f filterData) []optionData {
	opts := make([]optionData, len(f.Options))
	for i, o := range f.Options {
		opts[i] = optionData{Option: o, Method: o.Method()}
	}
	return opts
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

// comment lower-cases the first letter of a catalogue description so it
// reads as the tail of a doc sentence.
func comment(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 1 && unicode.IsUpper(rune(s[0])) && !unicode.IsUpper(rune(s[1])) {
		s = lowerFirst(s)
	}
	return strings.TrimSuffix(s, ".")
}

const fileTemplate = `// Code generated by ffgraph-gen. DO NOT EDIT.

package {{.Package}}

import "github.com/five82/ffgraph/internal/graph"

// Filter names.
const (
{{- range .Filters}}
	{{.Const}} = "{{.Name}}"
{{- end}}
)

// registrations maps every catalogued filter to its Register function.
var registrations = []struct {
	name     string
	register func(*graph.Command) *graph.Command
}{
{{- range .Filters}}
	{ {{.Const}}, Register{{export .Name}} },
{{- end}}
}
{{range $f := .Filters}}
{{- $keys := printf "%sKeys" (lower .Type)}}
var {{$keys}} = []string{ {{- range $i, $o := .Options}}{{if $i}}, {{end}}"{{$o.Key}}"{{end -}} }

// {{.Type}} builds the {{.Name}} filter: {{comment .Description}}.
type {{.Type}} struct {
	b *graph.OptionBuilder
}

// New{{export .Name}} returns the {{.Name}} builder bound to cmd.
func New{{export .Name}}(cmd *graph.Command) *{{.Type}} {
	return &{{.Type}}{b: graph.NewOptionBuilder(cmd, {{.Const}}, {{$keys}}...)}
}

// Register{{export .Name}} registers the {{.Name}} builder on cmd.
func Register{{export .Name}}(cmd *graph.Command) *graph.Command {
	return cmd.Register({{.Const}}, func(c *graph.Command) graph.Builder { return New{{export .Name}}(c) })
}
{{range options $f}}
// {{.Method}} sets {{.Key}}: {{comment .Description}}.
func (f *{{$f.Type}}) {{.Method}}(v any) *{{$f.Type}} {
	f.b.Set("{{.Key}}", v)
	return f
}

// With{{.Method}} is an alias for {{.Method}}.
func (f *{{$f.Type}}) With{{.Method}}(v any) *{{$f.Type}} {
	return f.{{.Method}}(v)
}
{{end}}
// Name returns "{{.Name}}".
func (f *{{.Type}}) Name() string { return f.b.Name() }

// Keys returns the {{.Name}} option keys.
func (f *{{.Type}}) Keys() []string { return f.b.Keys() }

// Set stores an option by key.
func (f *{{.Type}}) Set(key string, v any) graph.Builder {
	f.b.Set(key, v)
	return f
}

// Descriptor returns the descriptor Build would append.
func (f *{{.Type}}) Descriptor() graph.Descriptor { return f.b.Descriptor() }

// Build appends the filter to its Command.
func (f *{{.Type}}) Build() *graph.Command { return f.b.Build() }
{{end}}`
