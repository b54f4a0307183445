package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldColorize_NoColorWins(t *testing.T) {
	t.Setenv(NoColorEnvVar, "1")
	t.Setenv(ForceColorEnvVar, "1")

	assert.False(t, ShouldColorize())
	assert.False(t, ShouldColorizeStderr())
}

func TestShouldColorize_ForceEnables(t *testing.T) {
	t.Setenv(NoColorEnvVar, "")
	t.Setenv(ForceColorEnvVar, "1")

	assert.True(t, ShouldColorize())
	assert.True(t, ShouldColorizeStderr())
}

func TestShouldColorize_ForceZeroDoesNotEnable(t *testing.T) {
	t.Setenv(NoColorEnvVar, "")
	t.Setenv(ForceColorEnvVar, "0")
	t.Setenv("TERM", "dumb")

	assert.False(t, ShouldColorize())
}

func TestShouldColorize_DumbTerminal(t *testing.T) {
	t.Setenv(NoColorEnvVar, "")
	t.Setenv(ForceColorEnvVar, "")
	t.Setenv("TERM", "dumb")

	assert.False(t, ShouldColorize())
	assert.False(t, ShouldColorizeStderr())
}

func TestFormatFunctions_PreserveContent(t *testing.T) {
	formatters := map[string]func(any) string{
		"success": FormatSuccess,
		"error":   FormatError,
		"warning": FormatWarning,
		"info":    FormatInfo,
		"dimmed":  FormatDimmed,
		"bold":    FormatBold,
	}

	for name, format := range formatters {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, format("test"), "test")
		})
	}
}

func TestFormatFunctions_ColorWhenForced(t *testing.T) {
	t.Setenv(NoColorEnvVar, "")
	t.Setenv(ForceColorEnvVar, "1")

	result := FormatSuccess("ok")

	assert.Contains(t, result, "ok")
	assert.Contains(t, result, "\x1b[")
}

func TestFormatFunctions_PlainWhenDisabled(t *testing.T) {
	t.Setenv(NoColorEnvVar, "1")

	assert.Equal(t, "ok", FormatSuccess("ok"))
	assert.Equal(t, "err", FormatError("err"))
	assert.Equal(t, "warn", FormatWarning("warn"))
	assert.Equal(t, "info", FormatInfo("info"))
	assert.Equal(t, "dim", FormatDimmed("dim"))
	assert.Equal(t, "bold", FormatBold("bold"))
}

func TestFormatFunctions_NonStringValues(t *testing.T) {
	t.Setenv(NoColorEnvVar, "1")

	assert.Equal(t, "42", FormatSuccess(42))
	assert.Equal(t, "3.14", FormatInfo(3.14))
}
