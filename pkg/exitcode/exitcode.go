// Package exitcode maps errors onto semantic process exit codes.
//
// The constants follow the BSD sysexits convention, which gives scripts and
// automation stable codes to branch on instead of a blanket exit 1. Error
// types opt in by implementing Coder; FromError finds the first Coder in an
// error chain and everything else maps to Software.
//
// A typical main stays one line:
//
//	func main() {
//		exitcode.Exit(rootCmd.Execute)
//	}
package exitcode

import (
	"errors"
	"fmt"
	"os"
)

// Code is a process exit code.
type Code int

const (
	// Ok indicates successful execution.
	Ok Code = 0
	// Usage indicates the command was used incorrectly.
	Usage Code = 64
	// DataErr indicates incorrect input data.
	DataErr Code = 65
	// NoInput indicates an input file did not exist or was not readable.
	NoInput Code = 66
	// Unavailable indicates a required service is unavailable.
	Unavailable Code = 69
	// Software indicates an internal software error.
	Software Code = 70
	// OsErr indicates an operating system error.
	OsErr Code = 71
	// IoErr indicates an error while doing I/O.
	IoErr Code = 74
	// TempFail indicates a temporary failure; the user is invited to retry.
	TempFail Code = 75
	// Protocol indicates a remote system replied with something that does
	// not conform to the protocol.
	Protocol Code = 76
	// NoPerm indicates insufficient permission to perform the operation.
	NoPerm Code = 77
	// Config indicates a configuration error.
	Config Code = 78
)

// String names the exit code category.
func (c Code) String() string {
	switch c {
	case Ok:
		return "ok"
	case Usage:
		return "usage"
	case DataErr:
		return "data error"
	case NoInput:
		return "no input"
	case Unavailable:
		return "unavailable"
	case Software:
		return "software error"
	case OsErr:
		return "os error"
	case IoErr:
		return "io error"
	case TempFail:
		return "temporary failure"
	case Protocol:
		return "protocol error"
	case NoPerm:
		return "permission denied"
	case Config:
		return "configuration error"
	default:
		return fmt.Sprintf("exit code %d", int(c))
	}
}

// Coder is implemented by error types that know which exit code they map
// to.
type Coder interface {
	error
	ExitCode() Code
}

// FromError determines the exit code for an error. A nil error is Ok, an
// error chain carrying a Coder uses that code, and anything else maps to
// Software.
func FromError(err error) Code {
	if err == nil {
		return Ok
	}

	var coder Coder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}

	return Software
}

// Run invokes fn and translates its result into an exit code. Errors are
// printed to stderr in the same "Error: ..." form cobra uses.
func Run(fn func() error) int {
	err := fn()
	if err == nil {
		return int(Ok)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return int(FromError(err))
}

// Exit invokes fn and terminates the process with the mapped exit code.
func Exit(fn func() error) {
	os.Exit(Run(fn))
}
