package tables

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// PlainWriter renders kubectl-style plain output without box-drawing
// characters. This format is optimized for:
//   - Easy copy/paste operations
//   - Piping to grep, awk, cut and other command-line tools
//   - Terminal-agnostic rendering (no Unicode issues)
type PlainWriter struct {
	// headers contains the column header names, uppercased
	headers []string
	// rows contains the table data rows
	rows [][]string
	// columnWidths tracks the maximum rune width of each column
	columnWidths []int
	// minPadding is the minimum space between columns
	minPadding int
	// showHeaders controls whether to display the header row
	showHeaders bool
	// output is the writer to render to
	output io.Writer
}

// NewPlainWriter creates a plain writer. Headers are shown by default; use
// SetNoHeaders(true) to suppress them.
func NewPlainWriter(output io.Writer) *PlainWriter {
	return &PlainWriter{
		headers:      []string{},
		rows:         [][]string{},
		columnWidths: []int{},
		minPadding:   3,
		showHeaders:  true,
		output:       output,
	}
}

// SetHeaders sets the column headers. Headers render in uppercase.
func (w *PlainWriter) SetHeaders(headers []string) {
	w.headers = make([]string, len(headers))
	w.columnWidths = make([]int, len(headers))
	for i, h := range headers {
		upper := strings.ToUpper(h)
		w.headers[i] = upper
		w.columnWidths[i] = utf8.RuneCountInString(upper)
	}
}

// SetNoHeaders controls whether to suppress the header row.
func (w *PlainWriter) SetNoHeaders(noHeaders bool) {
	w.showHeaders = !noHeaders
}

// AppendRow adds a row. Rows are padded or clipped to the header count.
func (w *PlainWriter) AppendRow(row []string) {
	normalized := make([]string, len(w.headers))
	for i := range w.headers {
		if i < len(row) {
			normalized[i] = row[i]
			if width := utf8.RuneCountInString(row[i]); width > w.columnWidths[i] {
				w.columnWidths[i] = width
			}
		}
	}
	w.rows = append(w.rows, normalized)
}

// Render writes the table to the output writer.
func (w *PlainWriter) Render() {
	if len(w.headers) == 0 {
		return
	}
	if len(w.rows) == 0 && !w.showHeaders {
		return
	}

	if w.showHeaders {
		w.printRow(w.headers)
	}
	for _, row := range w.rows {
		w.printRow(row)
	}
}

// printRow prints a single row with column alignment and without trailing
// whitespace.
func (w *PlainWriter) printRow(row []string) {
	var sb strings.Builder
	for i, cell := range row {
		sb.WriteString(cell)
		if i < len(row)-1 {
			gap := w.columnWidths[i] + w.minPadding - utf8.RuneCountInString(cell)
			sb.WriteString(strings.Repeat(" ", gap))
		}
	}
	fmt.Fprintln(w.output, strings.TrimRight(sb.String(), " "))
}
