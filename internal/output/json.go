package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/mailbox-chess/internal/config"
)

// JSONReport represents a report in JSON format.
type JSONReport struct {
	FEN       string      `json:"fen"`
	Depth     int         `json:"depth"`
	Nodes     uint64      `json:"nodes"`
	Status    string      `json:"status"`
	Divide    []JSONEntry `json:"divide,omitempty"`
	Workers   int         `json:"workers"`
	ElapsedMS int64       `json:"elapsedMs,omitempty"`
	NPS       uint64      `json:"nps,omitempty"`
	Cache     *JSONCache  `json:"cache,omitempty"`
}

// JSONEntry is the node count below one root move.
type JSONEntry struct {
	UCI   string `json:"uci"`
	SAN   string `json:"san,omitempty"`
	Nodes uint64 `json:"nodes"`
}

// JSONCache holds node-count cache statistics.
type JSONCache struct {
	Entries int `json:"entries"`
	Hits    int `json:"hits"`
	Misses  int `json:"misses"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []*JSONReport `json:"reports"`
}

// ReportToJSON converts a report to its JSON form.
func ReportToJSON(r *Report, cfg *config.Config) *JSONReport {
	jr := &JSONReport{
		FEN:     r.FEN,
		Depth:   r.Depth,
		Nodes:   r.Nodes,
		Status:  r.Status.String(),
		Workers: r.Workers,
	}
	for _, e := range r.Divide {
		entry := JSONEntry{UCI: e.UCI, Nodes: e.Nodes}
		if cfg.Output.ShowNotation {
			entry.SAN = e.Notation
		}
		jr.Divide = append(jr.Divide, entry)
	}
	if cfg.Output.ShowTiming {
		jr.ElapsedMS = r.Elapsed.Milliseconds()
		jr.NPS = r.NodesPerSecond()
	}
	if r.CacheEnabled {
		jr.Cache = &JSONCache{Entries: r.CacheEntries, Hits: r.CacheHits, Misses: r.CacheMisses}
	}
	return jr
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		reports: make([]*Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(ReportToJSON(r, jw.cfg))
	}

	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	out := &JSONOutput{
		Reports: make([]*JSONReport, 0, len(jw.reports)),
	}
	for _, r := range jw.reports {
		out.Reports = append(out.Reports, ReportToJSON(r, jw.cfg))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
