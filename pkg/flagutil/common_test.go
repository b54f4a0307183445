package flagutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/clikit/pkg/progress"
)

func TestCommonFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var flags CommonFlags
		fs := newFlagSet()
		flags.Register(fs)
		require.NoError(t, fs.Parse(nil))

		assert.Equal(t, "table", flags.Output)
		assert.False(t, flags.NoHeaders)
		assert.False(t, flags.Quiet)
		assert.False(t, flags.NonInteractive)
	})

	t.Run("long flags", func(t *testing.T) {
		var flags CommonFlags
		fs := newFlagSet()
		flags.Register(fs)
		require.NoError(t, fs.Parse([]string{
			"--output", "json",
			"--no-headers",
			"--quiet",
			"--non-interactive",
		}))

		assert.Equal(t, "json", flags.Output)
		assert.True(t, flags.NoHeaders)
		assert.True(t, flags.Quiet)
		assert.True(t, flags.NonInteractive)
	})

	t.Run("shorthands", func(t *testing.T) {
		var flags CommonFlags
		fs := newFlagSet()
		flags.Register(fs)
		require.NoError(t, fs.Parse([]string{"-o", "yaml", "-q"}))

		assert.Equal(t, "yaml", flags.Output)
		assert.True(t, flags.Quiet)
	})
}

func TestCommonFlagsReporter(t *testing.T) {
	t.Run("default is interactive", func(t *testing.T) {
		flags := CommonFlags{}
		assert.IsType(t, &progress.InteractiveReporter{}, flags.Reporter())
	})

	t.Run("non-interactive", func(t *testing.T) {
		flags := CommonFlags{NonInteractive: true}
		assert.IsType(t, &progress.NonInteractiveReporter{}, flags.Reporter())
	})

	t.Run("quiet wins", func(t *testing.T) {
		flags := CommonFlags{Quiet: true, NonInteractive: true}
		assert.IsType(t, &progress.QuietReporter{}, flags.Reporter())
	})
}
