package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestShellString(t *testing.T) {
	tests := []struct {
		shell Shell
		want  string
	}{
		{Bash, "bash"},
		{Zsh, "zsh"},
		{Fish, "fish"},
		{Elvish, "elvish"},
		{Nushell, "nushell"},
		{PowerShell, "powershell"},
		{Shell(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shell.String())
		})
	}
}

func TestParseShell(t *testing.T) {
	t.Run("round trips every shell", func(t *testing.T) {
		for _, shell := range AllShells() {
			parsed, err := ParseShell(shell.String())
			require.NoError(t, err)
			assert.Equal(t, shell, parsed)
		}
	})

	t.Run("accepts abbreviations", func(t *testing.T) {
		parsed, err := ParseShell("nu")
		require.NoError(t, err)
		assert.Equal(t, Nushell, parsed)

		parsed, err = ParseShell("pwsh")
		require.NoError(t, err)
		assert.Equal(t, PowerShell, parsed)
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		parsed, err := ParseShell("Bash")
		require.NoError(t, err)
		assert.Equal(t, Bash, parsed)

		parsed, err = ParseShell("POWERSHELL")
		require.NoError(t, err)
		assert.Equal(t, PowerShell, parsed)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := ParseShell("tcsh")
		require.Error(t, err)

		var parseErr *ParseShellError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "tcsh", parseErr.Input)
		assert.Equal(t, "unknown shell: tcsh", err.Error())
	})
}

func TestShellZeroValue(t *testing.T) {
	var shell Shell
	assert.Equal(t, Bash, shell)
}

func TestAllShells(t *testing.T) {
	shells := AllShells()
	assert.Len(t, shells, 6)
	assert.Equal(t, Bash, shells[0])
	assert.Equal(t, PowerShell, shells[5])
}

func TestShellPflagValue(t *testing.T) {
	t.Run("set updates the value", func(t *testing.T) {
		var shell Shell
		require.NoError(t, shell.Set("fish"))
		assert.Equal(t, Fish, shell)
	})

	t.Run("failed set leaves the value alone", func(t *testing.T) {
		shell := Zsh
		require.Error(t, shell.Set("tcsh"))
		assert.Equal(t, Zsh, shell)
	})

	t.Run("type names the flag kind", func(t *testing.T) {
		var shell Shell
		assert.Equal(t, "shell", shell.Type())
	})
}

func TestShellYAML(t *testing.T) {
	t.Run("marshals as name", func(t *testing.T) {
		out, err := yaml.Marshal(Nushell)
		require.NoError(t, err)
		assert.Equal(t, "nushell\n", string(out))
	})

	t.Run("unmarshals from name", func(t *testing.T) {
		var shell Shell
		require.NoError(t, yaml.Unmarshal([]byte("elvish"), &shell))
		assert.Equal(t, Elvish, shell)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		var shell Shell
		assert.Error(t, yaml.Unmarshal([]byte("tcsh"), &shell))
	})
}

func TestDetect(t *testing.T) {
	clearDetectionEnv := func(t *testing.T) {
		t.Helper()
		for _, name := range DetectionEnvVars {
			t.Setenv(name, "")
		}
	}

	t.Run("defaults to bash with no environment", func(t *testing.T) {
		clearDetectionEnv(t)
		assert.Equal(t, Bash, Detect())
	})

	t.Run("NU_VERSION wins over SHELL", func(t *testing.T) {
		clearDetectionEnv(t)
		t.Setenv("NU_VERSION", "0.99.1")
		t.Setenv("SHELL", "/bin/zsh")
		assert.Equal(t, Nushell, Detect())
	})

	t.Run("uses the basename of SHELL", func(t *testing.T) {
		tests := []struct {
			path string
			want Shell
		}{
			{"/bin/bash", Bash},
			{"/bin/zsh", Zsh},
			{"/usr/local/bin/fish", Fish},
			{"/usr/bin/elvish", Elvish},
			{"/opt/homebrew/bin/nu", Nushell},
			{"/usr/bin/pwsh", PowerShell},
		}

		for _, tt := range tests {
			t.Run(tt.path, func(t *testing.T) {
				clearDetectionEnv(t)
				t.Setenv("SHELL", tt.path)
				assert.Equal(t, tt.want, Detect())
			})
		}
	})

	t.Run("unknown shells fall back to bash", func(t *testing.T) {
		clearDetectionEnv(t)
		t.Setenv("SHELL", "/bin/tcsh")
		assert.Equal(t, Bash, Detect())
	})
}
