package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	ferrors "github.com/five82/ffgraph/internal/errors"
)

func TestParseProgressLine(t *testing.T) {
	line := "frame=  240 fps= 48 q=-0.0 size=    1024kB time=00:00:10.00 bitrate= 838.9kbits/s speed=2.00x"

	p := parseProgressLine(line, 40)

	if p.CurrentFrame != 240 {
		t.Errorf("frame = %d", p.CurrentFrame)
	}
	if p.FPS != 48 {
		t.Errorf("fps = %v", p.FPS)
	}
	if p.ElapsedSecs != 10 {
		t.Errorf("elapsed = %v", p.ElapsedSecs)
	}
	if p.Percent != 25 {
		t.Errorf("percent = %v", p.Percent)
	}
	if p.Speed != 2 {
		t.Errorf("speed = %v", p.Speed)
	}
	if p.Bitrate != "838.9kbits/s" {
		t.Errorf("bitrate = %q", p.Bitrate)
	}
	if p.ETA != 15*time.Second {
		t.Errorf("eta = %v", p.ETA)
	}
}

func TestParseProgressLineWithoutDuration(t *testing.T) {
	p := parseProgressLine("frame=10 fps=0.0 time=00:00:01.00 speed=1x", 0)

	if p.Percent != 0 || p.ETA != 0 {
		t.Errorf("expected no percent or eta, got %v %v", p.Percent, p.ETA)
	}
	if p.Speed != 1 {
		t.Errorf("speed = %v", p.Speed)
	}
}

func TestParseProgressCallsBack(t *testing.T) {
	stderr := "Input #0, matroska\r\nframe=1 fps=0 time=00:00:01.00 speed=1x\rframe=2 fps=0 time=00:00:02.00 speed=1x\n"

	var got []Progress
	var sb strings.Builder
	parseProgress(strings.NewReader(stderr), &sb, 4, func(p Progress) { got = append(got, p) })

	if sb.String() != stderr {
		t.Error("stderr was not captured verbatim")
	}
	if len(got) != 2 {
		t.Fatalf("got %d updates, want 2", len(got))
	}
	if got[1].Percent != 50 {
		t.Errorf("percent = %v", got[1].Percent)
	}
}

func TestParseProgressAudioOnly(t *testing.T) {
	stderr := "Stream mapping:\n  Stream #0:0 -> #0:0 (pcm_s16le (native) -> flac (native))\n" +
		"size=    1024kB time=00:00:10.00 bitrate= 838.9kbits/s speed=20.1x\r" +
		"size=    2048kB time=00:00:30.00 bitrate= 838.9kbits/s speed=20.1x\r"

	var got []Progress
	var sb strings.Builder
	parseProgress(strings.NewReader(stderr), &sb, 60, func(p Progress) { got = append(got, p) })

	if len(got) != 2 {
		t.Fatalf("got %d updates, want 2", len(got))
	}
	if got[0].CurrentFrame != 0 {
		t.Errorf("frame = %d", got[0].CurrentFrame)
	}
	if got[1].Percent != 50 {
		t.Errorf("percent = %v", got[1].Percent)
	}
	if got[1].Speed != float32(20.1) {
		t.Errorf("speed = %v", got[1].Speed)
	}
	if got[1].Bitrate != "838.9kbits/s" {
		t.Errorf("bitrate = %q", got[1].Bitrate)
	}
}

func TestIsProgressLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"frame=  240 fps= 48 q=-0.0 size=    1024kB time=00:00:10.00 speed=2.00x", true},
		{"size=    1024kB time=00:00:10.00 bitrate= 838.9kbits/s speed=20.1x", true},
		{"  Duration: 00:01:00.00, start: 0.000000, bitrate: 1411 kb/s", false},
		{"Input #0, wav, from 'in.wav':", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := isProgressLine(tt.line); got != tt.want {
				t.Errorf("isProgressLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestKnownFailure(t *testing.T) {
	tests := []struct {
		stderr string
		want   bool
	}{
		{"[AVFilterGraph] No such filter: 'fsp'", true},
		{"Error parsing a filter description around: x", true},
		{"File 'out.mkv' already exists. Exiting.", true},
		{"Conversion failed!", false},
	}

	for _, tt := range tests {
		t.Run(tt.stderr, func(t *testing.T) {
			if got := knownFailure(tt.stderr) != ""; got != tt.want {
				t.Errorf("knownFailure = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLastLines(t *testing.T) {
	if got := lastLines("a\nb\nc\n", 2); got != "b\nc" {
		t.Errorf("got %q", got)
	}
}

func TestRunMissingBinary(t *testing.T) {
	res := Run(context.Background(), &RunParams{FFmpegPath: "/nonexistent/ffmpeg-binary", Output: "out.mkv"}, nil)

	if res.Success {
		t.Fatal("expected failure")
	}
	if !ferrors.IsKind(res.Error, ferrors.KindCommand) {
		t.Errorf("expected command error, got %v", res.Error)
	}
}

// fakeFFmpeg writes a shell script that prints stderr and exits with code.
func fakeFFmpeg(t *testing.T, stderr string, code int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "ffmpeg")
	script := "#!/bin/sh\nprintf '%s' '" + stderr + "' >&2\nexit " + strconv.Itoa(code) + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCopiesStderrToLog(t *testing.T) {
	line := "size=     256kB time=00:00:05.00 bitrate= 419.4kbits/s speed=10x\n"
	var log bytes.Buffer
	var calls int

	res := Run(context.Background(), &RunParams{
		FFmpegPath: fakeFFmpeg(t, line, 0),
		Output:     "out.mka",
		Duration:   10,
		StderrLog:  &log,
	}, func(p Progress) {
		calls++
		if p.Percent != 50 {
			t.Errorf("Percent = %v, want 50", p.Percent)
		}
	})

	if !res.Success {
		t.Fatalf("unexpected failure: %v", res.Error)
	}
	if log.String() != line {
		t.Errorf("stderr log = %q, want %q", log.String(), line)
	}
	if res.Stderr != line {
		t.Errorf("Stderr = %q, want %q", res.Stderr, line)
	}
	if calls != 1 {
		t.Errorf("got %d progress callbacks, want 1", calls)
	}
}

func TestRunExitCode(t *testing.T) {
	res := Run(context.Background(), &RunParams{
		FFmpegPath: fakeFFmpeg(t, "something broke\n", 3),
		Output:     "out.mkv",
	}, nil)

	if res.Success {
		t.Fatal("expected failure")
	}
	var cmdErr *ferrors.CommandError
	if !errors.As(res.Error, &cmdErr) {
		t.Fatalf("expected CommandError, got %v", res.Error)
	}
	if cmdErr.Kind != ferrors.CommandFailed || cmdErr.ExitCode != 3 {
		t.Errorf("got kind %v exit %d, want CommandFailed exit 3", cmdErr.Kind, cmdErr.ExitCode)
	}
	if !strings.Contains(cmdErr.Stderr, "something broke") {
		t.Errorf("Stderr = %q", cmdErr.Stderr)
	}
}
