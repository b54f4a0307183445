package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Reporter reports progress during multi-item operations.
type Reporter interface {
	// Start is called when starting a batch operation.
	Start(total int, operation string)
	// Progress is called to report progress on an individual item.
	Progress(current, total int, item string)
	// Success is called when an item succeeds.
	Success(item string)
	// Skip is called when an item is skipped.
	Skip(item, reason string)
	// Failure is called when an item fails.
	Failure(item, err string)
	// Finish is called when the batch operation finishes.
	Finish(total int)
}

// Select returns a progress reporter based on mode flags. Quiet takes
// precedence over non-interactive.
func Select(quiet, nonInteractive bool) Reporter {
	switch {
	case quiet:
		return NewQuiet()
	case nonInteractive:
		return NewNonInteractive()
	default:
		return NewInteractive()
	}
}

// InteractiveReporter renders a live progress bar and tracks failures for
// the final summary.
type InteractiveReporter struct {
	writer   progress.Writer
	tracker  *progress.Tracker
	failures int
	out      io.Writer
}

// NewInteractive creates a reporter with an interactive progress bar.
func NewInteractive() *InteractiveReporter {
	return &InteractiveReporter{out: os.Stdout}
}

// Start begins the batch and launches the bar renderer.
func (r *InteractiveReporter) Start(total int, operation string) {
	pw := progress.NewWriter()
	pw.SetOutputWriter(r.out)
	pw.SetTrackerLength(40)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	pw.Style().Colors.Tracker = text.Colors{text.FgGreen}
	pw.Style().Visibility.ETA = false
	pw.Style().Visibility.Time = true

	tracker := &progress.Tracker{Message: operation, Total: int64(total)}
	pw.AppendTracker(tracker)
	go pw.Render()

	r.writer = pw
	r.tracker = tracker
	r.failures = 0
}

// Progress advances the bar by one item.
func (r *InteractiveReporter) Progress(current, total int, item string) {
	if r.tracker != nil {
		r.tracker.Increment(1)
	}
}

// Success records a successful item.
func (r *InteractiveReporter) Success(item string) {}

// Skip records a skipped item.
func (r *InteractiveReporter) Skip(item, reason string) {}

// Failure records a failed item for the final summary.
func (r *InteractiveReporter) Failure(item, err string) {
	r.failures++
}

// Finish stops the bar and prints a summary reflecting the failure count.
func (r *InteractiveReporter) Finish(total int) {
	if r.writer == nil {
		return
	}

	r.tracker.MarkAsDone()
	stopRenderer(r.writer)
	fmt.Fprintln(r.out, summaryLine(total, r.failures))

	r.writer = nil
	r.tracker = nil
}

// stopRenderer shuts down a progress writer started with go Render(). It
// waits for the render goroutine to pick up before stopping it, so that a
// Start immediately followed by Finish does not leave the renderer running,
// then waits for the final frame so no escape sequences land after the
// summary line.
func stopRenderer(pw progress.Writer) {
	for i := 0; i < 100 && !pw.IsRenderInProgress(); i++ {
		time.Sleep(time.Millisecond)
	}
	pw.Stop()
	for pw.IsRenderInProgress() {
		time.Sleep(5 * time.Millisecond)
	}
}

// summaryLine formats the batch outcome. Successes are derived from the
// failure count and clamped at zero in case callers report more failures
// than the stated total.
func summaryLine(total, failures int) string {
	successes := total - failures
	if successes < 0 {
		successes = 0
	}
	switch {
	case failures == 0:
		return fmt.Sprintf("Completed: %d items processed successfully", total)
	case successes == 0:
		return fmt.Sprintf("Failed: all %d items failed", total)
	default:
		return fmt.Sprintf("Completed with failures: %d succeeded, %d failed of %d total",
			successes, failures, total)
	}
}

// NonInteractiveReporter prints plain progress lines without live redraws,
// for CI logs and piped output.
type NonInteractiveReporter struct {
	out       io.Writer
	operation string
	started   bool
}

// NewNonInteractive creates a reporter that prints plain progress lines.
func NewNonInteractive() *NonInteractiveReporter {
	return &NonInteractiveReporter{out: os.Stdout}
}

// Start begins the batch.
func (r *NonInteractiveReporter) Start(total int, operation string) {
	r.operation = operation
	r.started = true
}

// Progress prints one line per reported item.
func (r *NonInteractiveReporter) Progress(current, total int, item string) {
	if !r.started {
		return
	}
	fmt.Fprintf(r.out, "%s: %d/%d\n", r.operation, current, total)
}

// Success records a successful item.
func (r *NonInteractiveReporter) Success(item string) {}

// Skip records a skipped item.
func (r *NonInteractiveReporter) Skip(item, reason string) {}

// Failure records a failed item.
func (r *NonInteractiveReporter) Failure(item, err string) {}

// Finish prints the completion line.
func (r *NonInteractiveReporter) Finish(total int) {
	if !r.started {
		return
	}
	fmt.Fprintf(r.out, "Completed: %d items processed\n", total)
	r.started = false
}

// QuietReporter produces no output.
type QuietReporter struct{}

// NewQuiet creates a reporter that discards everything.
func NewQuiet() *QuietReporter {
	return &QuietReporter{}
}

// Start implements Reporter.
func (r *QuietReporter) Start(total int, operation string) {}

// Progress implements Reporter.
func (r *QuietReporter) Progress(current, total int, item string) {}

// Success implements Reporter.
func (r *QuietReporter) Success(item string) {}

// Skip implements Reporter.
func (r *QuietReporter) Skip(item, reason string) {}

// Failure implements Reporter.
func (r *QuietReporter) Failure(item, err string) {}

// Finish implements Reporter.
func (r *QuietReporter) Finish(total int) {}

var _ Reporter = (*InteractiveReporter)(nil)
var _ Reporter = (*NonInteractiveReporter)(nil)
var _ Reporter = (*QuietReporter)(nil)
