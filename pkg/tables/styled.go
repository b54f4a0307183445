package tables

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// StyledTable builds richly formatted tables. Options are independently
// toggleable and applied in a fixed order: style, padding, header-row
// removal, panel header, newline replacement, column wrap, max-width
// truncation. Panel insertion happens after header removal so removing the
// column headers never strips the panel, and the width cap is enforced
// after wrapping so wrapped cells are not truncated twice.
type StyledTable struct {
	style        Style
	title        string
	hasTitle     bool
	removeHeader bool
	padLeft      int
	padRight     int
	hasPadding   bool
	newlineRepl  string
	hasRepl      bool
	wrapIndex    int
	wrapWidth    int
	hasWrap      bool
	maxWidth     int
}

// NewStyledTable creates a table builder with the default style and no
// options set.
func NewStyledTable() *StyledTable {
	return &StyledTable{style: StyleModern}
}

// Style sets the border style.
func (t *StyledTable) Style(s Style) *StyledTable {
	t.style = s
	return t
}

// Header sets a panel title rendered above the table.
func (t *StyledTable) Header(title string) *StyledTable {
	t.title = title
	t.hasTitle = true
	return t
}

// RemoveHeaderRow omits the column-header row from the output.
//
// Useful for non-interactive/scriptable output where headers are noise.
func (t *StyledTable) RemoveHeaderRow() *StyledTable {
	t.removeHeader = true
	return t
}

// Padding sets the number of spaces rendered on each side of every cell.
func (t *StyledTable) Padding(left, right int) *StyledTable {
	t.padLeft = left
	t.padRight = right
	t.hasPadding = true
	return t
}

// ReplaceNewlines replaces newlines in cell content with the given string.
//
// Useful for non-interactive output where newlines would break parsing.
// A common replacement is "," to turn multi-line values into
// comma-separated lists.
func (t *StyledTable) ReplaceNewlines(replacement string) *StyledTable {
	t.newlineRepl = replacement
	t.hasRepl = true
	return t
}

// WrapColumn wraps the content of one column at the given width.
// The column index is 0-based.
func (t *StyledTable) WrapColumn(index, width int) *StyledTable {
	t.wrapIndex = index
	t.wrapWidth = width
	t.hasWrap = true
	return t
}

// MaxWidth caps the rendered width of the whole table, truncating lines
// that would exceed it. Enables responsive layouts together with
// ResponsiveWidth.
func (t *StyledTable) MaxWidth(width int) *StyledTable {
	t.maxWidth = width
	return t
}

// Render builds the final table from the provided headers and rows.
func (t *StyledTable) Render(headers []string, rows [][]string) string {
	w := table.NewWriter()
	w.SetStyle(t.style.pretty())

	if t.hasPadding {
		w.Style().Box.PaddingLeft = strings.Repeat(" ", t.padLeft)
		w.Style().Box.PaddingRight = strings.Repeat(" ", t.padRight)
	}

	if t.hasTitle {
		w.SetTitle("%s", t.replace(t.title))
	}

	if !t.removeHeader && len(headers) > 0 {
		w.AppendHeader(t.row(headers))
	}
	for _, r := range rows {
		w.AppendRow(t.row(r))
	}

	if t.hasWrap {
		w.SetColumnConfigs([]table.ColumnConfig{
			{Number: t.wrapIndex + 1, WidthMax: t.wrapWidth},
		})
	}

	if t.maxWidth > 0 {
		w.Style().Size.WidthMax = t.maxWidth
	}

	if t.style == StyleMarkdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}

// RenderRecords renders records through their Record capability.
func (t *StyledTable) RenderRecords(data []Record) string {
	headers, rows := recordGrid(data)
	return t.Render(headers, rows)
}

func (t *StyledTable) replace(s string) string {
	if !t.hasRepl {
		return s
	}
	return strings.ReplaceAll(s, "\n", t.newlineRepl)
}

func (t *StyledTable) row(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = t.replace(c)
	}
	return row
}
