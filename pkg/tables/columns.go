package tables

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Record exposes the shape of one row for projection and rendering. All
// instances of a record type must report the same field names in the same
// order, and Fields must align positionally with Headers.
type Record interface {
	// Headers returns the ordered field names.
	Headers() []string
	// Fields returns the stringified field values, one per header.
	Fields() []string
}

// ParseColumns parses a comma-separated column list into a normalized
// selector: entries are trimmed, lowercased, and dropped when empty.
// Order and duplicates are preserved.
func ParseColumns(input string) []string {
	parts := strings.Split(input, ",")
	columns := make([]string, 0, len(parts))
	for _, part := range parts {
		col := strings.ToLower(strings.TrimSpace(part))
		if col == "" {
			continue
		}
		columns = append(columns, col)
	}
	return columns
}

// ProjectColumns filters and reorders a grid according to a selector.
//
// Each selector entry is matched case-insensitively against the first
// header with that name; entries that match nothing are dropped silently.
// Duplicate entries each resolve to the same header independently. The
// returned header row carries the selector spellings (already lowercase)
// in selector order, and every returned data row lists the matched cells
// in that same order. Cells beyond a short row's length come back empty.
func ProjectColumns(headers []string, rows [][]string, columns []string) ([]string, [][]string) {
	lowered := make([]string, len(headers))
	for i, h := range headers {
		lowered[i] = strings.ToLower(h)
	}

	indexes := make([]int, 0, len(columns))
	outHeaders := make([]string, 0, len(columns))
	for _, col := range columns {
		for i, h := range lowered {
			if h == col {
				indexes = append(indexes, i)
				outHeaders = append(outHeaders, col)
				break
			}
		}
	}

	outRows := make([][]string, len(rows))
	for ri, row := range rows {
		projected := make([]string, len(indexes))
		for pi, idx := range indexes {
			if idx < len(row) {
				projected[pi] = row[idx]
			}
		}
		outRows[ri] = projected
	}

	return outHeaders, outRows
}

// BuildTableWithColumns renders records with only the selected columns.
//
// The selector is typically the output of ParseColumns. Column matching is
// case-insensitive and unknown names are ignored; when nothing matches (or
// data is empty) the result is the empty string. The grid renders in the
// ASCII style; use StyledTable for styled output.
func BuildTableWithColumns[T Record](data []T, columns []string) string {
	headers, rows := recordGrid(data)
	outHeaders, outRows := ProjectColumns(headers, rows, columns)
	if len(outHeaders) == 0 {
		return ""
	}

	w := table.NewWriter()
	w.SetStyle(StyleAscii.pretty())
	w.AppendHeader(stringRow(outHeaders))
	for _, r := range outRows {
		w.AppendRow(stringRow(r))
	}
	return w.Render()
}

// RenderRecords renders records with a StyledTable without requiring the
// caller to convert concrete slices to []Record.
func RenderRecords[T Record](t *StyledTable, data []T) string {
	headers, rows := recordGrid(data)
	return t.Render(headers, rows)
}

func recordGrid[T Record](data []T) ([]string, [][]string) {
	if len(data) == 0 {
		return nil, nil
	}
	headers := data[0].Headers()
	rows := make([][]string, 0, len(data))
	for _, item := range data {
		rows = append(rows, item.Fields())
	}
	return headers, rows
}

func stringRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
