package validation

import (
	"context"
	"fmt"
	"math"

	ferrors "github.com/five82/ffgraph/internal/errors"
)

// durationToleranceSecs is the maximum allowed difference in duration between input and output.
const durationToleranceSecs = 1.0

// Expectations describes what the output of a run should contain. Zero
// fields are not checked.
type Expectations struct {
	Video      bool      // a video stream, because a -vf chain was applied
	Audio      bool      // an audio stream, because an -af chain was applied
	Duration   float64   // seconds; only for graphs that keep the input timing
	Dimensions *[2]int64 // width and height of the video stream
}

// Validate analyzes outputPath and checks it against exp.
func Validate(ctx context.Context, analyzer MediaAnalyzer, outputPath string, exp Expectations) (*Result, error) {
	info, err := analyzer.Analyze(ctx, outputPath)
	if err != nil {
		if ferrors.IsCancelled(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to analyze output %s: %w", outputPath, err)
	}

	result := &Result{}
	if !info.HasVideo && !info.HasAudio {
		result.add("Streams", false, "Output has no audio or video streams")
		return result, nil
	}

	if exp.Video {
		if info.HasVideo {
			result.add("Video stream", true, fmt.Sprintf("Video stream present (%dx%d)", info.Width, info.Height))
		} else {
			result.add("Video stream", false, "Video filters were applied but the output has no video stream")
		}
	}
	if exp.Audio {
		if info.HasAudio {
			result.add("Audio stream", true, fmt.Sprintf("%d audio stream(s)", len(info.AudioChannels)))
		} else {
			result.add("Audio stream", false, "Audio filters were applied but the output has no audio stream")
		}
	}

	if exp.Dimensions != nil {
		if info.HasVideo {
			passed, msg := validateDimensions(info.Width, info.Height, exp.Dimensions[0], exp.Dimensions[1])
			result.add("Dimensions", passed, msg)
		} else {
			result.add("Dimensions", false, fmt.Sprintf("Expected %dx%d video but the output has no video stream",
				exp.Dimensions[0], exp.Dimensions[1]))
		}
	}

	if exp.Duration > 0 {
		passed, msg := validateDuration(info.Duration, exp.Duration)
		result.add("Duration", passed, msg)
	}

	return result, nil
}

// validateDimensions checks that dimensions match expected values.
func validateDimensions(actualW, actualH, expectedW, expectedH int64) (bool, string) {
	if actualW == expectedW && actualH == expectedH {
		return true, fmt.Sprintf("Dimensions match: %dx%d", actualW, actualH)
	}
	return false, fmt.Sprintf("Dimension mismatch: got %dx%d, expected %dx%d",
		actualW, actualH, expectedW, expectedH)
}

// validateDuration checks that duration is within acceptable tolerance.
func validateDuration(actual, expected float64) (bool, string) {
	diff := math.Abs(actual - expected)
	if diff <= durationToleranceSecs {
		return true, fmt.Sprintf("Duration matches input (%.1fs)", actual)
	}
	return false, fmt.Sprintf("Duration mismatch: got %.1fs, expected %.1fs (diff: %.1fs)",
		actual, expected, diff)
}
