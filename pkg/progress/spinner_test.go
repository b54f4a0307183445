package progress

import (
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/stretchr/testify/assert"
)

func TestBrailleTickChars(t *testing.T) {
	assert.Len(t, BrailleTickChars, 10)
	assert.Equal(t, "⠋", BrailleTickChars[0])
	assert.Equal(t, spinner.CharSets[14], BrailleTickChars)
}

func TestSpinnerReporter(t *testing.T) {
	t.Run("finish leaves the final message", func(t *testing.T) {
		out := &syncBuffer{}
		s := NewSpinner()
		s.out = out

		s.Start("Resolving dependencies")
		s.SetMessage("Fetching manifests")
		s.Finish("Dependencies resolved")

		assert.Contains(t, out.String(), "Dependencies resolved")
	})

	t.Run("finish and clear leaves no message", func(t *testing.T) {
		out := &syncBuffer{}
		s := NewSpinner()
		s.out = out

		s.Start("Resolving dependencies")
		s.FinishAndClear()

		assert.NotContains(t, out.String(), "Resolving dependencies\n")
	})

	t.Run("calls before start do not panic", func(t *testing.T) {
		s := NewSpinner()

		assert.NotPanics(t, func() {
			s.SetMessage("too early")
			s.Finish("done")
			s.FinishAndClear()
		})
	})

	t.Run("finish is idempotent", func(t *testing.T) {
		out := &syncBuffer{}
		s := NewSpinner()
		s.out = out

		s.Start("working")
		s.Finish("done")

		assert.NotPanics(t, func() {
			s.Finish("done again")
			s.FinishAndClear()
		})
	})

	t.Run("options chain", func(t *testing.T) {
		s := NewSpinner()
		chained := s.WithTickChars([]string{"-", "\\", "|", "/"}).WithTickInterval(50 * time.Millisecond)

		assert.Same(t, s, chained)
		assert.Equal(t, 50*time.Millisecond, s.tickInterval)
		assert.Equal(t, []string{"-", "\\", "|", "/"}, s.tickChars)
	})
}
