package ffprobe

import (
	"context"
	"testing"

	ferrors "github.com/five82/ffgraph/internal/errors"
)

const videoWithStereo = `{
  "streams": [
    {"codec_type": "video", "codec_name": "h264", "width": 1920, "height": 1080},
    {"codec_type": "audio", "codec_name": "aac", "channels": 2},
    {"codec_type": "subtitle", "codec_name": "subrip"}
  ],
  "format": {"duration": "120.500000"}
}`

const audioOnlyStreamDuration = `{
  "streams": [
    {"codec_type": "audio", "codec_name": "flac", "channels": 6, "duration": "42.000000"}
  ],
  "format": {"duration": "N/A"}
}`

func TestExtractMediaInfo(t *testing.T) {
	tests := []struct {
		name         string
		json         string
		wantDuration float64
		wantVideo    bool
		wantAudio    bool
		wantWidth    int64
		wantChannels []int
	}{
		{"video with stereo", videoWithStereo, 120.5, true, true, 1920, []int{2}},
		{"audio only", audioOnlyStreamDuration, 42, false, true, 0, []int{6}},
		{"no streams", `{"format": {}}`, 0, false, false, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseFFprobeOutput([]byte(tt.json))
			if err != nil {
				t.Fatalf("parseFFprobeOutput() error = %v", err)
			}
			info := extractMediaInfo(parsed)

			if info.Duration != tt.wantDuration {
				t.Errorf("Duration = %v, want %v", info.Duration, tt.wantDuration)
			}
			if info.HasVideo != tt.wantVideo || info.HasAudio != tt.wantAudio {
				t.Errorf("HasVideo/HasAudio = %v/%v, want %v/%v", info.HasVideo, info.HasAudio, tt.wantVideo, tt.wantAudio)
			}
			if info.Width != tt.wantWidth {
				t.Errorf("Width = %d, want %d", info.Width, tt.wantWidth)
			}
			if len(info.AudioChannels) != len(tt.wantChannels) {
				t.Fatalf("AudioChannels = %v, want %v", info.AudioChannels, tt.wantChannels)
			}
			for i := range tt.wantChannels {
				if info.AudioChannels[i] != tt.wantChannels[i] {
					t.Errorf("AudioChannels[%d] = %d, want %d", i, info.AudioChannels[i], tt.wantChannels[i])
				}
			}
		})
	}
}

func TestParseFFprobeOutputMalformedJSON(t *testing.T) {
	_, err := parseFFprobeOutput([]byte(`{"streams": [`))
	if !ferrors.IsKind(err, ferrors.KindFFmpeg) {
		t.Errorf("expected ffmpeg error, got %v", err)
	}
}

func TestParseSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"N/A", 0},
		{"-3", 0},
		{"junk", 0},
		{"1.25", 1.25},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseSeconds(tt.in); got != tt.want {
				t.Errorf("parseSeconds(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestProbeMissingBinary(t *testing.T) {
	_, err := Inspect(context.Background(), "/nonexistent/ffprobe-binary", "in.mkv")
	if !ferrors.IsKind(err, ferrors.KindCommand) {
		t.Errorf("expected command error, got %v", err)
	}
}
