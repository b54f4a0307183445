package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DownloadReporter renders a byte-count progress bar with transfer speed,
// for downloads and other sized transfers. Methods are safe to call in any
// order; calls before Start or after Finish are no-ops.
type DownloadReporter struct {
	writer  progress.Writer
	tracker *progress.Tracker
	out     io.Writer
}

// NewDownload creates a download progress reporter.
func NewDownload() *DownloadReporter {
	return &DownloadReporter{out: os.Stdout}
}

// Start begins the transfer with a known total size in bytes.
func (d *DownloadReporter) Start(totalBytes uint64, message string) {
	pw := progress.NewWriter()
	pw.SetOutputWriter(d.out)
	pw.SetTrackerLength(40)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	pw.Style().Colors.Tracker = text.Colors{text.FgCyan}
	pw.Style().Visibility.ETA = true
	pw.Style().Visibility.Speed = true

	tracker := &progress.Tracker{
		Message: message,
		Total:   int64(totalBytes),
		Units:   progress.UnitsBytes,
	}
	pw.AppendTracker(tracker)
	go pw.Render()

	d.writer = pw
	d.tracker = tracker
}

// AddBytes advances the transfer position by n bytes.
func (d *DownloadReporter) AddBytes(n uint64) {
	if d.tracker != nil {
		d.tracker.Increment(int64(n))
	}
}

// SetPosition sets the absolute transfer position in bytes.
func (d *DownloadReporter) SetPosition(bytes uint64) {
	if d.tracker != nil {
		d.tracker.SetValue(int64(bytes))
	}
}

// SetMessage updates the message next to the bar.
func (d *DownloadReporter) SetMessage(message string) {
	if d.tracker != nil {
		d.tracker.UpdateMessage(message)
	}
}

// Finish stops the bar and prints the message with the transferred size.
func (d *DownloadReporter) Finish(message string) {
	if d.writer == nil {
		return
	}

	total := d.tracker.Value()
	d.tracker.MarkAsDone()
	stopRenderer(d.writer)
	fmt.Fprintf(d.out, "%s (%s)\n", message, humanize.Bytes(uint64(total)))

	d.writer = nil
	d.tracker = nil
}

// FinishAndClear stops the bar without printing a completion line.
func (d *DownloadReporter) FinishAndClear() {
	if d.writer == nil {
		return
	}

	d.tracker.MarkAsDone()
	stopRenderer(d.writer)

	d.writer = nil
	d.tracker = nil
}
