// Package config provides configuration for the perft command.
package config

import (
	"io"
	"os"
)

// OutputFormat selects how the enumeration report is written.
type OutputFormat int

const (
	Text OutputFormat = iota // Human readable lines
	JSON                     // A single JSON document
)

// String returns the format name as accepted on the command line.
func (f OutputFormat) String() string {
	if f == JSON {
		return "json"
	}
	return "text"
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summary, 2=per root move progress

	Perft  *PerftConfig
	Cache  *CacheConfig
	Output *OutputConfig

	// File handling
	OutputFilename string
	LogFilename    string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Perft:      NewPerftConfig(),
		Cache:      NewCacheConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.Cache.Validate()
}
