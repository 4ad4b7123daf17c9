package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/ffgraph/internal/schema"
)

func TestGenerateMatchesCommittedFile(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("..", "..", "filters", "zz_filters.go"))
	require.NoError(t, err)

	got, err := generate(schema.MustLoad(), "filters")
	require.NoError(t, err)

	assert.Equal(t, string(want), string(got), "filters/zz_filters.go is stale; run go generate ./filters")
}

func TestGenerateSingleFilter(t *testing.T) {
	c, err := schema.Parse([]byte("filters:\n  - name: start_fade\n    media: video\n    description: Fades in.\n    options:\n      - key: start_time\n        description: When to start.\n"))
	require.NoError(t, err)

	src, err := generate(c, "fx")
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "package fx")
	assert.Contains(t, out, "type StartFadeFilter struct")
	assert.Contains(t, out, "// StartFadeFilter builds the start_fade filter: fades in.")
	assert.Contains(t, out, "// NewStartFade returns the start_fade builder bound to cmd.")
	assert.Contains(t, out, "func (f *StartFadeFilter) StartTime(v any) *StartFadeFilter")
	assert.Contains(t, out, "func (f *StartFadeFilter) WithStartTime(v any) *StartFadeFilter")
}

func TestRunWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "zz_filters.go")

	require.NoError(t, run(out, "filters"))

	want, err := os.ReadFile(filepath.Join("..", "..", "filters", "zz_filters.go"))
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
