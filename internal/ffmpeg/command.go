package ffmpeg

import "io"

// DefaultBinary is the ffmpeg executable looked up on PATH.
const DefaultBinary = "ffmpeg"

// RunParams describes one ffmpeg invocation.
type RunParams struct {
	FFmpegPath string
	Input      string
	Output     string
	Overwrite  bool
	Chains     Chains
	// Duration of the input in seconds, used for progress percent. Zero disables it.
	Duration float64
	// StderrLog receives a copy of ffmpeg's stderr when set.
	StderrLog io.Writer
}

// Binary returns the ffmpeg executable to run.
func (p *RunParams) Binary() string {
	if p.FFmpegPath == "" {
		return DefaultBinary
	}
	return p.FFmpegPath
}

// BuildArgs assembles the ffmpeg argument list.
func BuildArgs(p *RunParams) []string {
	args := []string{"-hide_banner", "-nostdin"}

	if p.Overwrite {
		args = append(args, "-y")
	} else {
		args = append(args, "-n")
	}

	if p.Input != "" {
		args = append(args, "-i", p.Input)
	}

	switch {
	case p.Chains.Complex != "":
		args = append(args, "-filter_complex", p.Chains.Complex)
	default:
		if p.Chains.Video != "" {
			args = append(args, "-vf", p.Chains.Video)
		}
		if p.Chains.Audio != "" {
			args = append(args, "-af", p.Chains.Audio)
		}
	}

	return append(args, p.Output)
}
