// Package delimited reads generic CSV and TSV logbook exports. The
// delimiter is sniffed from the header line.
package delimited

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"caai_logbook/internal/readers"
)

// Reader parses comma, tab and semicolon separated files.
type Reader struct{}

func init() {
	readers.Register(&Reader{})
}

func (r *Reader) Name() string          { return "delimited" }
func (r *Reader) Extensions() []string  { return []string{".csv", ".tsv", ".txt"} }
func (r *Reader) Priority() int         { return 90 } // Catch-all for tabular text.

// Sniff accepts any text whose first line contains a plausible delimiter.
func (r *Reader) Sniff(head []byte) bool {
	return detectDelimiter(head) != 0
}

// detectDelimiter returns the most frequent candidate delimiter in the
// header line, or 0 when none appears.
func detectDelimiter(head []byte) rune {
	line := head
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		line = head[:i]
	}
	best, bestCount := rune(0), 0
	for _, d := range []rune{'\t', ',', ';'} {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func (r *Reader) Read(data []byte) (*readers.Table, error) {
	delim := detectDelimiter(data)
	if delim == 0 {
		return nil, fmt.Errorf("no delimiter found in header line")
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing delimited data: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	table := &readers.Table{Headers: headers}
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		table.Rows = append(table.Rows, rec)
	}
	return table, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
