package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/mailbox-chess/internal/config"
)

// LineWriter handles word output with line length control.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewLineWriter creates a new line writer.
func NewLineWriter(w io.Writer, maxLineLength int) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, adding a space separator or a line break if needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line if anything was written on it.
func (o *LineWriter) NewLine() {
	if o.lineLength > 0 {
		fmt.Fprintln(o.w)
	}
	o.lineLength = 0
	o.needsSpace = false
}

// TextWriter writes reports as plain text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteReport writes the report immediately.
func (tw *TextWriter) WriteReport(r *Report) error {
	var sb strings.Builder
	opts := tw.cfg.Output

	if opts.ShowBoard && r.Board != nil {
		sb.WriteString(r.Board.String())
		fmt.Fprintf(&sb, "FEN: %s\n", r.FEN)
		fmt.Fprintf(&sb, "Status: %s\n", r.Status)
		if len(r.Moves) > 0 {
			sb.WriteString("Moves:\n")
			lw := NewLineWriter(&sb, 80)
			for _, m := range r.Moves {
				lw.Write(m)
			}
			lw.NewLine()
		}
		sb.WriteByte('\n')
	}

	for _, e := range r.Divide {
		if opts.ShowNotation {
			fmt.Fprintf(&sb, "%s (%s): %d\n", e.UCI, e.Notation, e.Nodes)
		} else {
			fmt.Fprintf(&sb, "%s: %d\n", e.UCI, e.Nodes)
		}
	}
	if len(r.Divide) > 0 {
		sb.WriteByte('\n')
	}

	fmt.Fprintf(&sb, "Depth: %d\n", r.Depth)
	fmt.Fprintf(&sb, "Nodes: %d\n", r.Nodes)
	if r.CacheEnabled {
		fmt.Fprintf(&sb, "Cache: %d entries, %d hits, %d misses (%.1f%%)\n",
			r.CacheEntries, r.CacheHits, r.CacheMisses, 100*r.HitRate())
	}
	if opts.ShowTiming {
		fmt.Fprintf(&sb, "Time: %s (%d nps, %d workers)\n", r.Elapsed, r.NodesPerSecond(), r.Workers)
	}

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush is a no-op; text reports are written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
