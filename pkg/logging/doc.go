// Package logging provides structured logging setup for CLI binaries with
// level filtering derived from the conventional verbosity flags.
//
// This package is a thin layer over Go's standard slog package. It exists
// for the binaries that consume this module: the library packages render to
// the terminal themselves and do not log, since log lines interleaved with
// rendered tables or progress bars would corrupt the output.
//
// # Architecture
//
// The logging system is built around these core concepts:
//
// ## Log Levels
//   - **Debug**: Detailed information for debugging and development
//   - **Info**: General informational messages about application operation
//   - **Warn**: Warning messages that indicate potential issues
//   - **Error**: Error messages for failures and exceptional conditions
//
// ## Flag Mapping
// LevelFromFlags converts the usual CLI verbosity flags into a level:
// --debug enables everything, --verbose enables Info and up, --quiet
// restricts output to errors, and the default shows warnings and errors.
//
// # Usage Examples
//
// ## Initialization
//
//	import "github.com/giantswarm/clikit/pkg/logging"
//
//	// Initialize from the usual verbosity flags, logging to stderr so
//	// rendered output on stdout stays machine-readable
//	logging.InitForCLI(logging.LevelFromFlags(quiet, verbose, debug), os.Stderr)
//
//	// Log messages
//	logging.Info("sync", "Starting synchronization")
//	logging.Debug("config", "Loaded configuration from %s", configPath)
//	logging.Error("registry", err, "Failed to reach registry")
//
// ## Subsystem Loggers
//
//	// For returns a *slog.Logger tagged with the subsystem, for code that
//	// prefers carrying a logger over calling package-level functions
//	log := logging.For("sync")
//	log.Info("starting", "items", len(items))
//
// # Integration with slog
//
// InitForCLI installs the configured handler via slog.SetDefault, so both
// the helpers in this package and direct slog calls end up on the same
// writer with the same level filter.
//
// # Thread Safety
//
// The logging system is fully thread-safe:
//   - Safe concurrent logging from multiple goroutines
//   - Level filtering happens in the handler, with no allocation for
//     filtered-out messages
package logging
