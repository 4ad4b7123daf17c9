// Package config provides configuration types and defaults for ffgraph.
package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidFormat indicates an unknown output format was requested.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidPolicy indicates an unknown option inclusion policy.
	ErrInvalidPolicy = errors.New("invalid inclusion policy")

	// ErrMissingGraph indicates no graph file was given.
	ErrMissingGraph = errors.New("graph file is required")

	// ErrMissingInput indicates a run without an input file.
	ErrMissingInput = errors.New("input file is required")

	// ErrMissingOutput indicates a run without an output file.
	ErrMissingOutput = errors.New("output file is required")

	// ErrInvalidSize indicates an expected size that is not WIDTHxHEIGHT.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidDuration indicates a negative input duration.
	ErrInvalidDuration = errors.New("duration must not be negative")
)
