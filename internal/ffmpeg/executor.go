package ffmpeg

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/logging"
	"github.com/five82/ffgraph/internal/util"
)

// Progress represents ffmpeg progress information.
type Progress struct {
	CurrentFrame uint64
	Percent      float32
	Speed        float32
	FPS          float32
	ETA          time.Duration
	Bitrate      string
	ElapsedSecs  float64
}

// ProgressCallback is called with progress updates while ffmpeg runs.
type ProgressCallback func(Progress)

// Result contains the result of an ffmpeg run.
type Result struct {
	Success bool
	Error   error
	Stderr  string
	Elapsed time.Duration
}

var timeRegex = regexp.MustCompile(`time=(\d{2}:\d{2}:\d{2}\.?\d*)`)

// Run executes ffmpeg with the filter chains in p, reporting progress parsed
// from stderr.
func Run(ctx context.Context, p *RunParams, callback ProgressCallback) Result {
	start := time.Now()
	bin := p.Binary()
	args := BuildArgs(p)
	logging.Debug("running ffmpeg", "binary", bin, "args", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, bin, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return Result{Error: ferrors.NewIOError("failed to get stderr pipe", err)}
	}

	if err := cmd.Start(); err != nil {
		return Result{Error: ferrors.NewCommandStartError(bin, err)}
	}

	var src io.Reader = stderr
	if p.StderrLog != nil {
		src = io.TeeReader(stderr, p.StderrLog)
	}

	var stderrBuilder strings.Builder
	parseProgress(src, &stderrBuilder, p.Duration, callback)

	err = cmd.Wait()
	stderrStr := stderrBuilder.String()
	elapsed := time.Since(start)

	if err != nil {
		if ctx.Err() != nil {
			return Result{Error: ferrors.NewCancelledError(), Stderr: stderrStr, Elapsed: elapsed}
		}
		if msg := knownFailure(stderrStr); msg != "" {
			return Result{Error: ferrors.NewFFmpegError(msg), Stderr: stderrStr, Elapsed: elapsed}
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{Error: ferrors.NewCommandWaitError(bin, err), Stderr: stderrStr, Elapsed: elapsed}
		}
		return Result{Error: ferrors.WrapExecError(bin, err, lastLines(stderrStr, 5)), Stderr: stderrStr, Elapsed: elapsed}
	}

	return Result{Success: true, Stderr: stderrStr, Elapsed: elapsed}
}

// knownFailure maps common ffmpeg diagnostics to a short message.
func knownFailure(stderr string) string {
	switch {
	case strings.Contains(stderr, "No such filter"):
		return "ffmpeg does not know one of the filters in the graph"
	case strings.Contains(stderr, "Error parsing a filter description"),
		strings.Contains(stderr, "Error parsing filterchain"):
		return "ffmpeg could not parse the filter graph"
	case strings.Contains(stderr, "Option not found"):
		return "ffmpeg rejected a filter option"
	case strings.Contains(stderr, "No streams found"):
		return "no streams found in input file"
	case strings.Contains(stderr, "already exists. Exiting"):
		return "output file already exists"
	}
	return ""
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// parseProgress reads ffmpeg stderr and parses progress updates.
func parseProgress(stderr io.Reader, stderrBuilder *strings.Builder, duration float64, callback ProgressCallback) {
	reader := bufio.NewReader(stderr)
	var lineBuf strings.Builder

	for {
		b, err := reader.ReadByte()
		if err != nil {
			if err != io.EOF {
				logging.Warn("error reading ffmpeg stderr", "error", err)
			}
			break
		}

		stderrBuilder.WriteByte(b)

		// Progress lines end with \r or \n
		if b == '\r' || b == '\n' {
			line := lineBuf.String()
			lineBuf.Reset()

			if callback != nil && isProgressLine(line) {
				if progress := parseProgressLine(line, duration); progress != nil {
					callback(*progress)
				}
			}
		} else {
			lineBuf.WriteByte(b)
		}
	}
}

// isProgressLine reports whether line is an ffmpeg status line. Audio-only
// runs print size= instead of frame=.
func isProgressLine(line string) bool {
	return strings.Contains(line, "time=") &&
		(strings.Contains(line, "frame=") || strings.Contains(line, "size="))
}

// field returns the value following key in an ffmpeg progress line.
func field(line, key string) string {
	idx := strings.Index(line, key)
	if idx < 0 {
		return ""
	}
	remaining := strings.TrimLeft(line[idx+len(key):], " ")
	if end := strings.IndexAny(remaining, " \t\r\n"); end >= 0 {
		remaining = remaining[:end]
	}
	return remaining
}

// parseProgressLine extracts progress information from an ffmpeg progress line.
func parseProgressLine(line string, duration float64) *Progress {
	var elapsedSecs float64
	if matches := timeRegex.FindStringSubmatch(line); len(matches) >= 2 {
		if secs, ok := util.ParseFFmpegTime(matches[1]); ok {
			elapsedSecs = secs
		}
	}

	var frame uint64
	var fps, speed float32

	if f, err := strconv.ParseUint(field(line, "frame="), 10, 64); err == nil {
		frame = f
	}
	if f, err := strconv.ParseFloat(field(line, "fps="), 32); err == nil {
		fps = float32(f)
	}
	bitrate := field(line, "bitrate=")
	if s, err := strconv.ParseFloat(strings.TrimSuffix(field(line, "speed="), "x"), 32); err == nil {
		speed = float32(s)
	}

	var percent float32
	if duration > 0 {
		percent = float32((elapsedSecs / duration) * 100)
		if percent > 100 {
			percent = 100
		}
	}

	var eta time.Duration
	if speed > 0 && duration > 0 && elapsedSecs < duration {
		etaSeconds := (duration - elapsedSecs) / float64(speed)
		eta = time.Duration(etaSeconds) * time.Second
	}

	return &Progress{
		CurrentFrame: frame,
		Percent:      percent,
		Speed:        speed,
		FPS:          fps,
		ETA:          eta,
		Bitrate:      bitrate,
		ElapsedSecs:  elapsedSecs,
	}
}
