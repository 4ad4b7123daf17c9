package ffmpeg

import (
	"math"
	"strings"
	"testing"
	"time"

	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/graph"
)

func TestOptionListBuilder(t *testing.T) {
	tests := []struct {
		name  string
		build func() string
		want  string
	}{
		{
			name:  "empty",
			build: func() string { return NewOptionListBuilder().Build() },
			want:  "",
		},
		{
			name: "values in insertion order",
			build: func() string {
				return NewOptionListBuilder().
					Add("inputs", "3").
					Add("shortest", "1").
					Build()
			},
			want: "inputs=3:shortest=1",
		},
		{
			name: "flags",
			build: func() string {
				return NewOptionListBuilder().
					WithFlag("opencl", true).
					WithFlag("stitch", false).
					Build()
			},
			want: "opencl=1:stitch=0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

type mode int

func TestFormatValue(t *testing.T) {
	three := 3
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"int", 30, "30"},
		{"negative", -2, "-2"},
		{"int64", int64(1 << 40), "1099511627776"},
		{"uint8", uint8(7), "7"},
		{"named int", mode(2), "2"},
		{"float", 1.5, "1.5"},
		{"float without fraction", 2.0, "2"},
		{"float32", float32(0.1), "0.1"},
		{"true", true, "1"},
		{"false", false, "0"},
		{"plain string", "up", "up"},
		{"expression", "iw/2", "iw/2"},
		{"timestamp", "00:00:05", `00\\:00\\:05`},
		{"equals untouched", "a=b", "a=b"},
		{"windows path", `C:\tmp`, `C\\:\\\\tmp`},
		{"slice", []string{"red", "green"}, "red|green"},
		{"int slice", []int{1, 2, 3}, "1|2|3"},
		{"pointer", &three, "3"},
		{"nil pointer", (*int)(nil), ""},
		{"duration", 1500 * time.Millisecond, "1.5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatValue(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		char string
		want string
	}{
		{`\`, `\\\\`},
		{`'`, `\\\'`},
		{`:`, `\\:`},
		{`,`, `\,`},
		{`;`, `\;`},
		{`[`, `\[`},
		{`]`, `\]`},
	}

	for _, tt := range tests {
		t.Run(tt.char, func(t *testing.T) {
			if got := Escape("a" + tt.char + "b"); got != "a"+tt.want+"b" {
				t.Errorf("Escape(%q) = %q, want %q", "a"+tt.char+"b", got, "a"+tt.want+"b")
			}
		})
	}
}

func TestFormatDescriptorTimestamp(t *testing.T) {
	got, err := FormatDescriptor(graph.Descriptor{Name: "fps", Options: map[string]any{"start_time": "00:00:05"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `fps=start_time=00\\:00\\:05`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatValueRejectsMaps(t *testing.T) {
	if _, err := FormatValue(map[string]int{"a": 1}); err == nil {
		t.Fatal("expected error for map value")
	}
}

func TestFormatValueInfinity(t *testing.T) {
	got, _ := FormatValue(math.Inf(1))
	if got != "+Inf" {
		t.Errorf("got %q", got)
	}
}

func TestFormatDescriptor(t *testing.T) {
	tests := []struct {
		name string
		d    graph.Descriptor
		want string
	}{
		{
			name: "no options",
			d:    graph.NewDescriptor("vstack"),
			want: "vstack",
		},
		{
			name: "fps example",
			d:    graph.Descriptor{Name: "fps", Options: map[string]any{"fps": 30, "round": "up"}},
			want: "fps=fps=30:round=up",
		},
		{
			name: "keys sorted",
			d:    graph.Descriptor{Name: "vstack", Options: map[string]any{"shortest": 1, "inputs": 3}},
			want: "vstack=inputs=3:shortest=1",
		},
		{
			name: "escaped value",
			d:    graph.Descriptor{Name: "pad", Options: map[string]any{"color": "black@0.5", "eval": "frame", "width": "iw+2*max(10,iw/4)"}},
			want: `pad=color=black@0.5:eval=frame:width=iw+2*max(10\,iw/4)`,
		},
		{
			name: "bool option",
			d:    graph.Descriptor{Name: "unsharp", Options: map[string]any{"opencl": true}},
			want: "unsharp=opencl=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatDescriptor(tt.d)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDescriptorErrors(t *testing.T) {
	tests := []struct {
		name string
		d    graph.Descriptor
	}{
		{"no name", graph.Descriptor{Options: map[string]any{"x": 1}}},
		{"map value", graph.Descriptor{Name: "ladspa", Options: map[string]any{"controls": map[string]int{"c0": 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FormatDescriptor(tt.d)
			if !ferrors.IsKind(err, ferrors.KindRender) {
				t.Errorf("expected render error, got %v", err)
			}
		})
	}
}

func TestFilterChain(t *testing.T) {
	tests := []struct {
		name  string
		build func() string
		want  string
	}{
		{
			name:  "empty chain",
			build: func() string { return NewFilterChain().Build() },
			want:  "",
		},
		{
			name: "rendered filters",
			build: func() string {
				return NewFilterChain().
					AddFilter("fps=fps=30").
					AddFilter("gblur=sigma=2").
					Build()
			},
			want: "fps=fps=30,gblur=sigma=2",
		},
		{
			name: "empty filters ignored",
			build: func() string {
				return NewFilterChain().
					AddFilter("").
					AddFilter("deflate").
					Build()
			},
			want: "deflate",
		},
		{
			name: "descriptors",
			build: func() string {
				c := NewFilterChain()
				_ = c.AddDescriptor(graph.Descriptor{Name: "fps", Options: map[string]any{"fps": 24}})
				_ = c.AddDescriptor(graph.NewDescriptor("showinfo"))
				return c.Build()
			},
			want: "fps=fps=24,showinfo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterChainAddDescriptorError(t *testing.T) {
	c := NewFilterChain()
	if err := c.AddDescriptor(graph.Descriptor{}); err == nil {
		t.Fatal("expected error")
	}
	if !c.IsEmpty() || c.Len() != 0 {
		t.Error("failed descriptor must not be added")
	}
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		p    RunParams
		want string
	}{
		{
			name: "video and audio",
			p: RunParams{
				Input:  "in.mkv",
				Output: "out.mkv",
				Chains: Chains{Video: "fps=fps=30", Audio: "aemphasis=mode=production"},
			},
			want: "-hide_banner -nostdin -n -i in.mkv -vf fps=fps=30 -af aemphasis=mode=production out.mkv",
		},
		{
			name: "overwrite video only",
			p:    RunParams{Input: "in.mp4", Output: "out.mp4", Overwrite: true, Chains: Chains{Video: "deflate"}},
			want: "-hide_banner -nostdin -y -i in.mp4 -vf deflate out.mp4",
		},
		{
			name: "complex graph",
			p:    RunParams{Input: "in.wav", Output: "scope.mp4", Chains: Chains{Complex: "abitscope=rate=25"}},
			want: "-hide_banner -nostdin -n -i in.wav -filter_complex abitscope=rate=25 scope.mp4",
		},
		{
			name: "source without input",
			p:    RunParams{Output: "life.mp4", Chains: Chains{Complex: "life=rate=25"}},
			want: "-hide_banner -nostdin -n -filter_complex life=rate=25 life.mp4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Join(BuildArgs(&tt.p), " ")
			if got != tt.want {
				t.Errorf("got  %q\nwant %q", got, tt.want)
			}
		})
	}
}

func TestRunParamsBinary(t *testing.T) {
	if got := (&RunParams{}).Binary(); got != "ffmpeg" {
		t.Errorf("got %q", got)
	}
	if got := (&RunParams{FFmpegPath: "/opt/ffmpeg"}).Binary(); got != "/opt/ffmpeg" {
		t.Errorf("got %q", got)
	}
}

func TestChainsIsEmpty(t *testing.T) {
	if !(Chains{}).IsEmpty() {
		t.Error("zero Chains should be empty")
	}
	if (Chains{Audio: "biquad"}).IsEmpty() {
		t.Error("audio chain should not be empty")
	}
}
