// Package reporter provides progress reporting interfaces and implementations.
package reporter

import "time"

// FilterLine is one rendered filter of a graph.
type FilterLine struct {
	Name     string
	Rendered string
}

// GraphSummary describes a built filter graph.
type GraphSummary struct {
	JobID   string
	Source  string // Graph file the graph was read from
	Policy  string
	Filters []FilterLine
	Video   string
	Audio   string
	Complex string
}

// RunInfo describes an ffmpeg run about to start.
type RunInfo struct {
	JobID    string
	Input    string
	Output   string
	Duration float64 // Seconds, zero when unknown
	Args     []string
}

// ProgressSnapshot contains ffmpeg progress information.
type ProgressSnapshot struct {
	CurrentFrame uint64
	Percent      float32
	Speed        float32
	FPS          float32
	ETA          time.Duration
	Bitrate      string
	ElapsedSecs  float64
}

// RunOutcome contains final run results.
type RunOutcome struct {
	JobID        string
	Input        string
	Output       string
	InputSize    uint64
	OutputSize   uint64
	TotalTime    time.Duration
	AverageSpeed float32
}

// ReporterError contains error information.
type ReporterError struct {
	Title      string
	Message    string
	Context    string
	Suggestion string
}
