package progress

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// BrailleTickChars is the default spinner animation, a braille pattern that
// renders cleanly in most terminal fonts. It matches spinner.CharSets[14].
var BrailleTickChars = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerReporter shows an animated spinner for operations of unknown
// duration. Methods are safe to call in any order; calls before Start or
// after Finish are no-ops.
type SpinnerReporter struct {
	spinner      *spinner.Spinner
	tickChars    []string
	tickInterval time.Duration
	out          io.Writer
}

// NewSpinner creates a spinner reporter with the default animation.
func NewSpinner() *SpinnerReporter {
	return &SpinnerReporter{tickInterval: 100 * time.Millisecond}
}

// WithTickChars overrides the animation frames.
func (s *SpinnerReporter) WithTickChars(chars []string) *SpinnerReporter {
	s.tickChars = chars
	return s
}

// WithTickInterval overrides the time between animation frames.
func (s *SpinnerReporter) WithTickInterval(interval time.Duration) *SpinnerReporter {
	s.tickInterval = interval
	return s
}

// Start begins the spinner animation with the given message.
func (s *SpinnerReporter) Start(message string) {
	chars := s.tickChars
	if len(chars) == 0 {
		chars = BrailleTickChars
	}
	var opts []spinner.Option
	if s.out != nil {
		opts = append(opts, spinner.WithWriter(s.out))
	}
	sp := spinner.New(chars, s.tickInterval, opts...)
	sp.Suffix = " " + message
	sp.Start()
	s.spinner = sp
}

// SetMessage updates the message next to the spinner.
func (s *SpinnerReporter) SetMessage(message string) {
	if s.spinner != nil {
		s.spinner.Suffix = " " + message
	}
}

// Finish stops the spinner and leaves the final message on screen.
func (s *SpinnerReporter) Finish(message string) {
	if s.spinner == nil {
		return
	}
	s.spinner.FinalMSG = message + "\n"
	s.spinner.Stop()
	s.spinner = nil
}

// FinishAndClear stops the spinner and erases it without a final message.
func (s *SpinnerReporter) FinishAndClear() {
	if s.spinner == nil {
		return
	}
	s.spinner.Stop()
	s.spinner = nil
}
