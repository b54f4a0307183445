package tables

import (
	"os"

	"golang.org/x/term"
)

// DefaultTerminalWidth is used when terminal width detection fails, for
// example when output is piped or the process has no controlling terminal.
const DefaultTerminalWidth = 120

// TerminalWidth returns the current terminal width in columns, falling
// back to DefaultTerminalWidth when detection fails.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}

// ResponsiveWidth returns a target table width based on the terminal size.
//
// The utilization factor is clamped to [0.0, 1.0]; a common value is 0.85
// to leave some margin at the right edge.
func ResponsiveWidth(utilization float64) int {
	if utilization < 0 {
		utilization = 0
	}
	if utilization > 1 {
		utilization = 1
	}
	return int(float64(TerminalWidth()) * utilization)
}
