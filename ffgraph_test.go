package ffgraph

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/ffgraph/filters"
	ferrors "github.com/five82/ffgraph/internal/errors"
)

func TestNewRegistersCatalogue(t *testing.T) {
	cmd := New(WithID("job-1"))

	assert.Equal(t, "job-1", cmd.ID())
	assert.Equal(t, PolicyTruthy, cmd.Policy())
	assert.Equal(t, filters.Catalog().Names(), cmd.Names())
}

func TestNewWithoutFilters(t *testing.T) {
	cmd := New(WithoutFilters())

	_, err := cmd.Use("fps")
	assert.True(t, ferrors.IsUnknownFilter(err))
}

func TestWithExplicitOptions(t *testing.T) {
	cmd := New(WithExplicitOptions())

	filters.NewFps(cmd).Fps(0).Build()

	assert.Equal(t, PolicyExplicit, cmd.Policy())
	assert.Equal(t, map[string]any{"fps": 0}, cmd.Filters()[0].Options)
}

func TestRenderExample(t *testing.T) {
	cmd := New()
	filters.NewFps(cmd).Fps(30).Round("up").Build()
	b, err := cmd.Use("gblur")
	require.NoError(t, err)
	b.Set("sigma", 2).Set("steps", 0).Build()

	chains, err := Render(cmd)
	require.NoError(t, err)

	assert.Equal(t, "fps=fps=30:round=up,gblur=sigma=2", chains.Video)
	assert.Empty(t, chains.Audio)
}

func TestSummarize(t *testing.T) {
	cmd := New(WithID("job-2"))
	filters.NewVstack(cmd).Inputs(3).Shortest(1).Build()

	summary, err := Summarize(cmd, "stack.yaml")
	require.NoError(t, err)

	assert.Equal(t, "job-2", summary.JobID)
	assert.Equal(t, "stack.yaml", summary.Source)
	assert.Equal(t, "truthy", summary.Policy)
	assert.Equal(t, []FilterLine{{Name: "vstack", Rendered: "vstack=inputs=3:shortest=1"}}, summary.Filters)
	assert.Equal(t, "vstack=inputs=3:shortest=1", summary.Complex)
}

func TestLoadGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	doc := "policy: explicit\nfilters:\n  - name: fps\n    options: {fps: 0, round: up}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cmd, err := LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, PolicyExplicit, cmd.Policy())
	assert.Equal(t, map[string]any{"fps": 0, "round": "up"}, cmd.Filters()[0].Options)

	cmd, err = LoadGraph(path, WithPolicy(PolicyTruthy))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"round": "up"}, cmd.Filters()[0].Options)

	cmd, err = LoadGraph(path, WithID("job-9"))
	require.NoError(t, err)
	assert.Equal(t, "job-9", cmd.ID())
	assert.Equal(t, PolicyExplicit, cmd.Policy())
}

func TestParsePolicyAndTruthy(t *testing.T) {
	p, err := ParsePolicy("Explicit")
	require.NoError(t, err)
	assert.Equal(t, PolicyExplicit, p)

	assert.False(t, Truthy(0))
	assert.True(t, Truthy("0"))
}

func TestRunMissingFFmpeg(t *testing.T) {
	cmd := New()
	filters.NewLife(cmd).Rate(25).Build()

	_, err := Run(context.Background(), cmd, "", filepath.Join(t.TempDir(), "life.mp4"),
		WithFFmpegPath("/nonexistent/ffmpeg-binary"), WithOverwrite())

	assert.True(t, ferrors.IsKind(err, ferrors.KindCommand), "got %v", err)
}

func TestRunMissingInput(t *testing.T) {
	cmd := New()
	filters.NewFps(cmd).Fps(30).Build()

	_, err := Run(context.Background(), cmd, filepath.Join(t.TempDir(), "missing.mkv"), "out.mkv",
		WithFFmpegPath("/nonexistent/ffmpeg-binary"))

	assert.True(t, ferrors.IsKind(err, ferrors.KindPath), "got %v", err)
}

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestRunVerifiesExpectedSize(t *testing.T) {
	dir := t.TempDir()
	ffmpeg := writeScript(t, dir, "ffmpeg", `for last; do :; done
printf 'frame=   25 fps=25 q=-0.0 size=       1kB time=00:00:01.00 bitrate=   8.0kbits/s speed=1x\n' >&2
printf 'x' > "$last"
`)
	ffprobe := writeScript(t, dir, "ffprobe", `cat <<'JSON'
{"format": {"duration": "1.0"}, "streams": [{"codec_type": "video", "width": 320, "height": 240}]}
JSON
`)

	cmd := New()
	filters.NewLife(cmd).Rate(25).Size("320x240").Build()

	var stderr bytes.Buffer
	res, err := Run(context.Background(), cmd, "", filepath.Join(dir, "life.mkv"),
		WithFFmpegPath(ffmpeg), WithFFprobePath(ffprobe),
		WithExpectedSize(640, 480), WithStderrLog(&stderr))
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), "time=00:00:01.00")
	assert.Equal(t, uint64(1), res.OutputSize)
	require.NotNil(t, res.Validation)
	assert.False(t, res.Validation.IsValid())
	failed := res.Validation.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "Dimensions", failed[0].Name)
}
