// Package progress provides progress reporting for multi-item CLI
// operations.
//
// The Reporter interface covers batch operations with a known item count:
// Start opens the batch, Progress advances it, Success/Skip/Failure record
// per-item outcomes, and Finish closes it with a summary line. Three
// implementations are selected by Select based on output mode:
//
//   - InteractiveReporter renders a live progress bar and prints a summary
//     reflecting the failure count.
//   - NonInteractiveReporter prints plain progress lines suitable for CI
//     logs and pipes, where live redraws would produce garbage.
//   - QuietReporter suppresses all output.
//
// Two standalone reporters cover other shapes of work: SpinnerReporter for
// indeterminate operations (no known total) and DownloadReporter for byte
// transfers with rate display. Both tolerate calls in any order, so a
// caller can unconditionally defer FinishAndClear.
//
// All reporters are single-owner handles: methods are meant to be called
// from one goroutine, matching the way CLI commands drive them.
package progress
