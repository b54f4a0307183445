// Package output provides consistent, colored console output for CLI
// applications.
//
// Print functions write complete status lines with a role symbol (check,
// cross, exclamation, arrow); Format functions colorize a single value for
// embedding in larger strings. Color is applied per stream: stdout and
// stderr are checked independently, honoring NO_COLOR, CLICOLOR_FORCE, and
// TERM=dumb before falling back to terminal detection.
package output

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Environment variables controlling colorization.
const (
	// NoColorEnvVar disables all color output when set to any value.
	NoColorEnvVar = "NO_COLOR"
	// ForceColorEnvVar forces color output when set to anything but "0",
	// even when the stream is not a terminal.
	ForceColorEnvVar = "CLICOLOR_FORCE"
)

// ShouldColorize reports whether stdout output should be colored.
func ShouldColorize() bool {
	return shouldColorize(os.Stdout)
}

// ShouldColorizeStderr reports whether stderr output should be colored.
func ShouldColorizeStderr() bool {
	return shouldColorize(os.Stderr)
}

func shouldColorize(f *os.File) bool {
	if os.Getenv(NoColorEnvVar) != "" {
		return false
	}
	if force := os.Getenv(ForceColorEnvVar); force != "" && force != "0" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// PrintSuccess prints a success message with a green checkmark prefix.
func PrintSuccess(message any) {
	fmt.Printf("%s %v\n", sprint(ShouldColorize(), "✓", color.FgGreen, color.Bold), message)
}

// PrintError prints an error message to stderr with a red cross prefix.
func PrintError(message any) {
	fmt.Fprintf(os.Stderr, "%s %v\n", sprint(ShouldColorizeStderr(), "✗", color.FgRed, color.Bold), message)
}

// PrintWarning prints a warning message with a yellow exclamation prefix.
func PrintWarning(message any) {
	fmt.Printf("%s %v\n", sprint(ShouldColorize(), "!", color.FgYellow, color.Bold), message)
}

// PrintInfo prints an info message with a blue arrow prefix.
func PrintInfo(message any) {
	fmt.Printf("%s %v\n", sprint(ShouldColorize(), "→", color.FgBlue, color.Bold), message)
}

// PrintDimmed prints a dimmed/muted message.
//
// Useful for secondary information or hints.
func PrintDimmed(message any) {
	fmt.Println(sprint(ShouldColorize(), fmt.Sprint(message), color.Faint))
}

// FormatSuccess formats a value as success (green).
func FormatSuccess(value any) string {
	return sprint(ShouldColorize(), fmt.Sprint(value), color.FgGreen)
}

// FormatError formats a value as error (red).
func FormatError(value any) string {
	return sprint(ShouldColorize(), fmt.Sprint(value), color.FgRed)
}

// FormatWarning formats a value as warning (yellow).
func FormatWarning(value any) string {
	return sprint(ShouldColorize(), fmt.Sprint(value), color.FgYellow)
}

// FormatInfo formats a value as info (blue).
func FormatInfo(value any) string {
	return sprint(ShouldColorize(), fmt.Sprint(value), color.FgBlue)
}

// FormatDimmed formats a value as dimmed/muted.
func FormatDimmed(value any) string {
	return sprint(ShouldColorize(), fmt.Sprint(value), color.Faint)
}

// FormatBold formats a value as bold.
func FormatBold(value any) string {
	return sprint(ShouldColorize(), fmt.Sprint(value), color.Bold)
}

// sprint renders s with the given attributes when enabled, bypassing the
// color library's global state so each stream keeps its own decision.
func sprint(enabled bool, s string, attrs ...color.Attribute) string {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}
