package config

import (
	"bytes"
	"errors"
	"runtime"
	"testing"

	chesserrors "github.com/lgbarn/mailbox-chess/internal/errors"
)

// TestPerftConfig_Defaults verifies PerftConfig has sensible defaults
func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 4 {
		t.Errorf("Depth = %d, want 4", cfg.Depth)
	}
	if cfg.FEN == "" {
		t.Error("FEN should default to the starting position")
	}
	if cfg.Divide {
		t.Error("Divide should be false by default")
	}
	if cfg.Workers != 1 || cfg.Parallel() {
		t.Errorf("Workers = %d, want 1 and serial", cfg.Workers)
	}
}

// TestPerftConfig_Validate verifies enumeration settings validation
func TestPerftConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     PerftConfig
		wantErr bool
	}{
		{
			name: "defaults are valid",
			cfg:  *NewPerftConfig(),
		},
		{
			name: "depth zero counts the root",
			cfg:  PerftConfig{Depth: 0, FEN: "k7/8/8/8/8/8/8/K7", Workers: 1},
		},
		{
			name:    "negative depth",
			cfg:     PerftConfig{Depth: -1, FEN: "k7/8/8/8/8/8/8/K7", Workers: 1},
			wantErr: true,
		},
		{
			name:    "depth too large",
			cfg:     PerftConfig{Depth: MaxDepth + 1, FEN: "k7/8/8/8/8/8/8/K7", Workers: 1},
			wantErr: true,
		},
		{
			name:    "zero workers",
			cfg:     PerftConfig{Depth: 3, FEN: "k7/8/8/8/8/8/8/K7"},
			wantErr: true,
		},
		{
			name:    "too many workers",
			cfg:     PerftConfig{Depth: 3, FEN: "k7/8/8/8/8/8/8/K7", Workers: 4*runtime.NumCPU() + 1},
			wantErr: true,
		},
		{
			name:    "divide at depth zero",
			cfg:     PerftConfig{Depth: 0, FEN: "k7/8/8/8/8/8/8/K7", Workers: 1, Divide: true},
			wantErr: true,
		},
		{
			name:    "empty position",
			cfg:     PerftConfig{Depth: 3, Workers: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestCacheConfig verifies cache defaults and validation
func TestCacheConfig(t *testing.T) {
	cfg := NewCacheConfig()
	if cfg.Enabled {
		t.Error("cache should be disabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	cfg.Capacity = -1
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}
}

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != Text {
		t.Errorf("Format = %v, want %v", cfg.Format, Text)
	}
	if cfg.ShowNotation {
		t.Error("ShowNotation should be false by default")
	}
	if !cfg.ShowTiming {
		t.Error("ShowTiming should be true by default")
	}
}

func TestOutputFormatString(t *testing.T) {
	if Text.String() != "text" || JSON.String() != "json" {
		t.Errorf("String() = %q, %q", Text.String(), JSON.String())
	}
}

// TestConfig_Validate verifies that every section is checked
func TestConfig_Validate(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	cfg.Cache.Capacity = -5
	if err := cfg.Validate(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}
	logBuf := &bytes.Buffer{}

	cfg.SetOutput(buf)
	cfg.SetLog(logBuf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != logBuf {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithDepth(5).
		WithFEN("k7/8/8/8/8/8/8/K7 w - - 0 1").
		WithDivide(true).
		WithWorkers(2).
		WithCache(1024).
		WithJSONOutput(true).
		WithNotation(true).
		WithTiming(false).
		WithOutput(buf).
		WithVerbosity(2).
		Build()

	if cfg.Perft.Depth != 5 {
		t.Errorf("Depth = %d, want 5", cfg.Perft.Depth)
	}
	if cfg.Perft.FEN != "k7/8/8/8/8/8/8/K7 w - - 0 1" {
		t.Errorf("FEN = %q", cfg.Perft.FEN)
	}
	if !cfg.Perft.Divide {
		t.Error("Divide should be true")
	}
	if !cfg.Perft.Parallel() {
		t.Error("two workers should run in parallel")
	}
	if !cfg.Cache.Enabled || cfg.Cache.Capacity != 1024 {
		t.Errorf("Cache = %+v, want enabled with capacity 1024", *cfg.Cache)
	}
	if cfg.Output.Format != JSON {
		t.Errorf("Format = %v, want JSON", cfg.Output.Format)
	}
	if !cfg.Output.ShowNotation || cfg.Output.ShowTiming {
		t.Errorf("Output = %+v", *cfg.Output)
	}
	if cfg.OutputFile != buf {
		t.Error("WithOutput did not set OutputFile")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}

	text := NewConfigBuilder().WithOutputFormat(JSON).WithJSONOutput(false).Build()
	if text.Output.Format != Text {
		t.Errorf("WithJSONOutput(false) left Format = %v", text.Output.Format)
	}
}
