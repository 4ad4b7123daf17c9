// Package ffmpeg renders filter descriptors into ffmpeg filtergraph syntax and
// runs ffmpeg with the result.
package ffmpeg

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/graph"
)

// OptionListBuilder builds a filter's option list with method chaining.
type OptionListBuilder struct {
	params []paramKV
}

type paramKV struct {
	key   string
	value string
}

// NewOptionListBuilder creates a new option list builder.
func NewOptionListBuilder() *OptionListBuilder {
	return &OptionListBuilder{}
}

// Add adds an already rendered option value.
func (b *OptionListBuilder) Add(key, value string) *OptionListBuilder {
	b.params = append(b.params, paramKV{key, value})
	return b
}

// WithFlag adds a boolean option as 1 or 0.
func (b *OptionListBuilder) WithFlag(key string, enabled bool) *OptionListBuilder {
	val := "0"
	if enabled {
		val = "1"
	}
	return b.Add(key, val)
}

// Len returns the number of options added.
func (b *OptionListBuilder) Len() int {
	return len(b.params)
}

// Build builds the options into a colon-separated string.
func (b *OptionListBuilder) Build() string {
	parts := make([]string, 0, len(b.params))
	for _, p := range b.params {
		parts = append(parts, p.key+"="+p.value)
	}
	return strings.Join(parts, ":")
}

// FormatDescriptor renders d as "name" or "name=k1=v1:k2=v2" with keys sorted.
func FormatDescriptor(d graph.Descriptor) (string, error) {
	if d.Name == "" {
		return "", ferrors.NewRenderError("descriptor has no filter name")
	}

	keys := make([]string, 0, len(d.Options))
	for k := range d.Options {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	opts := NewOptionListBuilder()
	for _, k := range keys {
		v := d.Options[k]
		if b, ok := v.(bool); ok {
			opts.WithFlag(k, b)
			continue
		}
		s, err := FormatValue(v)
		if err != nil {
			return "", ferrors.NewRenderError(fmt.Sprintf("%s option %s: %v", d.Name, k, err))
		}
		opts.Add(k, s)
	}

	if opts.Len() == 0 {
		return d.Name, nil
	}
	return d.Name + "=" + opts.Build(), nil
}

// FormatValue renders a single option value. Strings are escaped for
// filtergraph syntax, slices become ffmpeg "|" lists.
func FormatValue(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return Escape(x), nil
	case bool:
		if x {
			return "1", nil
		}
		return "0", nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return formatFloat(x, 64), nil
	case float32:
		return formatFloat(float64(x), 32), nil
	case fmt.Stringer:
		return Escape(x.String()), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return formatFloat(rv.Float(), 32), nil
	case reflect.Float64:
		return formatFloat(rv.Float(), 64), nil
	case reflect.String:
		return Escape(rv.String()), nil
	case reflect.Bool:
		return FormatValue(rv.Bool())
	case reflect.Pointer:
		if rv.IsNil() {
			return "", nil
		}
		return FormatValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			s, err := FormatValue(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return strings.Join(parts, "|"), nil
	case reflect.Map, reflect.Struct, reflect.Func, reflect.Chan:
		return "", fmt.Errorf("cannot render %T", v)
	}
	return Escape(fmt.Sprint(v)), nil
}

func formatFloat(f float64, bits int) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// optionEscaper quotes a value for the filter's own option parser.
var optionEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`:`, `\:`,
)

// graphEscaper quotes the option string again for the filtergraph parser,
// which strips one level of backslashes before the filter sees it.
var graphEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`,`, `\,`,
	`;`, `\;`,
	`[`, `\[`,
	`]`, `\]`,
)

// Escape quotes s at both levels ffmpeg unescapes, so "00:00:05" becomes
// `00\\:00\\:05` and reaches the filter unchanged.
func Escape(s string) string {
	return graphEscaper.Replace(optionEscaper.Replace(s))
}
