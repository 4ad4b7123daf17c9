package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/five82/ffgraph/internal/graph"
)

func TestNewConfig(t *testing.T) {
	cfg := NewConfig("graph.yaml")

	if cfg.GraphFile != "graph.yaml" {
		t.Errorf("expected GraphFile=graph.yaml, got %s", cfg.GraphFile)
	}
	if cfg.FFmpegPath != DefaultFFmpegPath {
		t.Errorf("expected FFmpegPath=%s, got %s", DefaultFFmpegPath, cfg.FFmpegPath)
	}
	if cfg.Policy != graph.PolicyTruthy {
		t.Errorf("expected truthy policy, got %s", cfg.Policy)
	}
	if cfg.Format != FormatAuto {
		t.Errorf("expected auto format, got %s", cfg.Format)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name         string
		modify       func(*Config)
		wantErr      bool
		wantSentinel error
	}{
		{
			name:    "default config is valid",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:         "missing graph",
			modify:       func(c *Config) { c.GraphFile = "" },
			wantErr:      true,
			wantSentinel: ErrMissingGraph,
		},
		{
			name:         "bad format",
			modify:       func(c *Config) { c.Format = "xml" },
			wantErr:      true,
			wantSentinel: ErrInvalidFormat,
		},
		{
			name:         "bad policy",
			modify:       func(c *Config) { c.Policy = graph.InclusionPolicy(9) },
			wantErr:      true,
			wantSentinel: ErrInvalidPolicy,
		},
		{
			name:         "negative duration",
			modify:       func(c *Config) { c.Duration = -1 },
			wantErr:      true,
			wantSentinel: ErrInvalidDuration,
		},
		{
			name:         "half an expected size",
			modify:       func(c *Config) { c.ExpectWidth = 1280 },
			wantErr:      true,
			wantSentinel: ErrInvalidSize,
		},
		{
			name:    "expected size",
			modify:  func(c *Config) { c.ExpectWidth, c.ExpectHeight = 1280, 720 },
			wantErr: false,
		},
		{
			name:    "explicit policy",
			modify:  func(c *Config) { c.Policy = graph.PolicyExplicit },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig("graph.yaml")
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantSentinel != nil && !errors.Is(err, tt.wantSentinel) {
				t.Errorf("expected error wrapping %v, got %v", tt.wantSentinel, err)
			}
		})
	}
}

func TestConfigValidateRun(t *testing.T) {
	tests := []struct {
		name         string
		modify       func(*Config)
		wantSentinel error
	}{
		{"complete", func(c *Config) {}, nil},
		{"missing input", func(c *Config) { c.Input = "" }, ErrMissingInput},
		{"source graph needs no input", func(c *Config) { c.Input = ""; c.AllowNoInput = true }, nil},
		{"missing output", func(c *Config) { c.Output = "" }, ErrMissingOutput},
		{"missing graph wins", func(c *Config) { c.GraphFile = "" }, ErrMissingGraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig("graph.yaml")
			cfg.Input = "in.mkv"
			cfg.Output = "out/out.mkv"
			tt.modify(cfg)

			err := cfg.ValidateRun()
			if tt.wantSentinel == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantSentinel) {
				t.Errorf("expected %v, got %v", tt.wantSentinel, err)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"JSON", FormatJSON, false},
		{"terminal", FormatTerminal, false},
		{"text", FormatTerminal, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.input, err)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFormat) {
					t.Errorf("expected ErrInvalidFormat, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy("explicit"); err != nil || p != graph.PolicyExplicit {
		t.Errorf("got %v, %v", p, err)
	}
	if _, err := ParsePolicy("loose"); !errors.Is(err, ErrInvalidPolicy) {
		t.Errorf("expected ErrInvalidPolicy, got %v", err)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		w, h    int64
		wantErr bool
	}{
		{"1280x720", 1280, 720, false},
		{" 320X240 ", 320, 240, false},
		{"1280", 0, 0, true},
		{"0x720", 0, 0, true},
		{"-2x720", 0, 0, true},
		{"wide x tall", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, h, err := ParseSize(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidSize) {
					t.Errorf("expected ErrInvalidSize, got %v", err)
				}
				return
			}
			if err != nil || w != tt.w || h != tt.h {
				t.Errorf("ParseSize(%q) = %d, %d, %v", tt.input, w, h, err)
			}
		})
	}
}

func TestGetLogDir(t *testing.T) {
	cfg := NewConfig("graph.yaml")
	cfg.Output = filepath.Join("out", "video.mkv")

	if got := cfg.GetLogDir(); got != filepath.Join("out", "logs") {
		t.Errorf("got %s", got)
	}

	cfg.LogDir = "/var/log/ffgraph"
	if got := cfg.GetLogDir(); got != "/var/log/ffgraph" {
		t.Errorf("got %s", got)
	}
}

func TestGetFFmpegPath(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetFFmpegPath(); got != "ffmpeg" {
		t.Errorf("got %s", got)
	}
}
