// Package ffprobe extracts the stream layout and duration of an input with ffprobe.
package ffprobe

import (
	"context"
	"encoding/json"
	"os/exec"
	"strconv"

	ferrors "github.com/five82/ffgraph/internal/errors"
)

// DefaultBinary is the ffprobe executable looked up on PATH.
const DefaultBinary = "ffprobe"

// MediaInfo contains what a filter run needs to know about its input.
type MediaInfo struct {
	Duration      float64
	HasVideo      bool
	HasAudio      bool
	Width         int64
	Height        int64
	AudioChannels []int
}

// ffprobeOutput represents the JSON output from ffprobe.
type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
}

type ffprobeStream struct {
	CodecType string `json:"codec_type"`
	CodecName string `json:"codec_name"`
	Width     int64  `json:"width"`
	Height    int64  `json:"height"`
	Channels  int    `json:"channels"`
	Duration  string `json:"duration"`
}

// Inspect runs ffprobe on inputPath. An empty binary means DefaultBinary.
func Inspect(ctx context.Context, binary, inputPath string) (*MediaInfo, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	cmd := exec.CommandContext(ctx, binary,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		inputPath,
	)

	output, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ferrors.NewCancelledError()
		}
		var stderr string
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = string(exitErr.Stderr)
		}
		return nil, ferrors.WrapExecError(binary, err, stderr)
	}

	parsed, err := parseFFprobeOutput(output)
	if err != nil {
		return nil, err
	}
	return extractMediaInfo(parsed), nil
}

func parseFFprobeOutput(data []byte) (*ffprobeOutput, error) {
	var result ffprobeOutput
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, ferrors.NewFFmpegError("failed to parse ffprobe output: " + err.Error())
	}
	return &result, nil
}

func extractMediaInfo(out *ffprobeOutput) *MediaInfo {
	info := &MediaInfo{Duration: parseSeconds(out.Format.Duration)}

	for _, s := range out.Streams {
		switch s.CodecType {
		case "video":
			if !info.HasVideo {
				info.Width, info.Height = s.Width, s.Height
			}
			info.HasVideo = true
		case "audio":
			info.HasAudio = true
			info.AudioChannels = append(info.AudioChannels, s.Channels)
		}
		// Some containers only report duration per stream.
		if info.Duration == 0 {
			info.Duration = parseSeconds(s.Duration)
		}
	}
	return info
}

func parseSeconds(s string) float64 {
	if s == "" || s == "N/A" {
		return 0
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil || d < 0 {
		return 0
	}
	return d
}
