// Package tables provides table construction and styling for CLI output.
//
// The package covers three layers that commands typically combine:
//
//   - Column selection: ParseColumns turns a raw --columns flag value into a
//     normalized selector, and ProjectColumns applies a selector to a grid of
//     headers and rows, reordering and filtering columns case-insensitively.
//   - Styled rendering: StyledTable is a builder over a rich table renderer
//     with a fixed set of border styles (Style), an optional panel header,
//     cell padding, newline handling, per-column wrapping, and a maximum
//     render width.
//   - Plain rendering: PlainWriter produces kubectl-style space-separated
//     output without box-drawing characters, for piping to grep, awk, cut
//     and friends.
//
// Records expose their shape through the Record interface (ordered field
// names plus positionally aligned string values), which keeps the projection
// logic independent of any concrete row type.
//
// Width helpers (TerminalWidth, ResponsiveWidth) support responsive layouts
// that adapt to the current terminal.
package tables
