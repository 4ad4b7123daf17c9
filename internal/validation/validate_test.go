package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/ffprobe"
)

type mockAnalyzer struct {
	info *ffprobe.MediaInfo
	err  error
}

func (m *mockAnalyzer) Analyze(ctx context.Context, path string) (*ffprobe.MediaInfo, error) {
	return m.info, m.err
}

func TestValidate(t *testing.T) {
	full := &ffprobe.MediaInfo{Duration: 120.4, HasVideo: true, HasAudio: true, Width: 1280, Height: 720, AudioChannels: []int{2}}

	tests := []struct {
		name       string
		info       *ffprobe.MediaInfo
		exp        Expectations
		wantValid  bool
		wantFailed []string
	}{
		{
			name:      "everything matches",
			info:      full,
			exp:       Expectations{Video: true, Audio: true, Duration: 120, Dimensions: &[2]int64{1280, 720}},
			wantValid: true,
		},
		{
			name:      "no expectations",
			info:      full,
			wantValid: true,
		},
		{
			name:       "missing audio",
			info:       &ffprobe.MediaInfo{Duration: 10, HasVideo: true},
			exp:        Expectations{Video: true, Audio: true},
			wantFailed: []string{"Audio stream"},
		},
		{
			name:       "duration drift",
			info:       full,
			exp:        Expectations{Duration: 100},
			wantFailed: []string{"Duration"},
		},
		{
			name:       "wrong size",
			info:       full,
			exp:        Expectations{Dimensions: &[2]int64{1920, 1080}},
			wantFailed: []string{"Dimensions"},
		},
		{
			name:       "size expected on audio-only output",
			info:       &ffprobe.MediaInfo{Duration: 10, HasAudio: true, AudioChannels: []int{2}},
			exp:        Expectations{Dimensions: &[2]int64{320, 240}},
			wantFailed: []string{"Dimensions"},
		},
		{
			name:       "empty output",
			info:       &ffprobe.MediaInfo{},
			exp:        Expectations{Video: true},
			wantFailed: []string{"Streams"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(context.Background(), &mockAnalyzer{info: tt.info}, "out.mkv", tt.exp)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.IsValid())

			var failed []string
			for _, s := range result.Failed() {
				failed = append(failed, s.Name)
			}
			assert.Equal(t, tt.wantFailed, failed)
		})
	}
}

func TestValidateAnalyzerError(t *testing.T) {
	_, err := Validate(context.Background(), &mockAnalyzer{err: errors.New("boom")}, "out.mkv", Expectations{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out.mkv")

	_, err = Validate(context.Background(), &mockAnalyzer{err: ferrors.NewCancelledError()}, "out.mkv", Expectations{})
	assert.True(t, ferrors.IsCancelled(err))
}

func TestValidateDuration(t *testing.T) {
	ok, msg := validateDuration(60.5, 60)
	assert.True(t, ok)
	assert.Equal(t, "Duration matches input (60.5s)", msg)

	ok, msg = validateDuration(58, 60)
	assert.False(t, ok)
	assert.Contains(t, msg, "diff: 2.0s")
}
