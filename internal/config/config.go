package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/five82/ffgraph/internal/graph"
)

// Default constants
const (
	// DefaultFFmpegPath is the ffmpeg executable looked up on PATH.
	DefaultFFmpegPath = "ffmpeg"

	// DefaultFFprobePath is the ffprobe executable looked up on PATH.
	DefaultFFprobePath = "ffprobe"

	// DefaultPolicy is the option inclusion policy graph files use when they
	// name none.
	DefaultPolicy = graph.PolicyTruthy

	// DefaultLogDirName is the log directory created next to the output file.
	DefaultLogDirName = "logs"

	// ProgressLogIntervalPercent is the progress logging interval.
	ProgressLogIntervalPercent uint8 = 5
)

// Format selects how results are reported.
type Format string

const (
	FormatAuto     Format = "auto"
	FormatTerminal Format = "terminal"
	FormatJSON     Format = "json"
)

// ParseFormat parses a string into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "terminal", "text":
		return FormatTerminal, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: '%s', valid options: auto, terminal, json", ErrInvalidFormat, s)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ParsePolicy parses a policy name, wrapping failures in ErrInvalidPolicy.
func ParsePolicy(s string) (graph.InclusionPolicy, error) {
	p, err := graph.ParsePolicy(s)
	if err != nil {
		return p, fmt.Errorf("%w: '%s', valid options: truthy, explicit", ErrInvalidPolicy, s)
	}
	return p, nil
}

// ParseSize parses a WIDTHxHEIGHT video size such as 1280x720.
func ParseSize(s string) (width, height int64, err error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if ok {
		width, err = strconv.ParseInt(w, 10, 64)
		if err == nil {
			height, err = strconv.ParseInt(h, 10, 64)
		}
	}
	if !ok || err != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: '%s', expected WIDTHxHEIGHT", ErrInvalidSize, s)
	}
	return width, height, nil
}

// Config holds the configuration for one ffgraph invocation.
type Config struct {
	// Paths
	FFmpegPath  string
	FFprobePath string
	GraphFile   string
	Input       string
	Output      string
	LogDir      string // Optional, defaults to <output dir>/logs

	// Graph options
	Policy       graph.InclusionPolicy
	PolicySet    bool // Policy overrides the graph file's own policy
	AllowNoInput bool // The graph starts from a source filter

	// Run options
	Overwrite    bool
	Verify       bool    // Analyze the output after the run
	Duration     float64 // Input duration in seconds; zero means ask ffprobe
	ExpectWidth  int64   // Expected output video size; zero skips the check
	ExpectHeight int64

	// Output options
	Format  Format
	NoLog   bool
	Verbose bool
	Watch   bool
}

// NewConfig creates a new Config with default values.
func NewConfig(graphFile string) *Config {
	return &Config{
		FFmpegPath:  DefaultFFmpegPath,
		FFprobePath: DefaultFFprobePath,
		GraphFile:   graphFile,
		Policy:      DefaultPolicy,
		Format:      FormatAuto,
	}
}

// Validate checks the settings shared by every command.
func (c *Config) Validate() error {
	if c.GraphFile == "" {
		return ErrMissingGraph
	}
	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if c.Policy != graph.PolicyTruthy && c.Policy != graph.PolicyExplicit {
		return fmt.Errorf("%w: %s", ErrInvalidPolicy, c.Policy)
	}
	if c.Duration < 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidDuration, c.Duration)
	}
	if c.ExpectWidth < 0 || c.ExpectHeight < 0 || (c.ExpectWidth == 0) != (c.ExpectHeight == 0) {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.ExpectWidth, c.ExpectHeight)
	}
	return nil
}

// ValidateRun checks the settings needed to execute ffmpeg.
func (c *Config) ValidateRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Input == "" && !c.AllowNoInput {
		return ErrMissingInput
	}
	if c.Output == "" {
		return ErrMissingOutput
	}
	return nil
}

// GetLogDir returns the log directory, falling back to a logs directory
// next to the output file.
func (c *Config) GetLogDir() string {
	if c.LogDir != "" {
		return c.LogDir
	}
	return filepath.Join(filepath.Dir(c.Output), DefaultLogDirName)
}

// GetFFmpegPath returns the ffmpeg executable.
func (c *Config) GetFFmpegPath() string {
	if c.FFmpegPath == "" {
		return DefaultFFmpegPath
	}
	return c.FFmpegPath
}
