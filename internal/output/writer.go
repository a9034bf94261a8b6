package output

import (
	"io"

	"github.com/lgbarn/mailbox-chess/internal/config"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for the configured format.
// JSON reports are written one document per report.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.Format == config.JSON {
		return NewJSONWriterSingle(w, cfg)
	}
	return NewTextWriter(w, cfg)
}
