package completion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Shell identifies a login shell that completions can be generated for. The
// set is closed; ParseShell rejects anything else.
type Shell int

const (
	// Bash is the GNU Bourne-Again Shell. Default.
	Bash Shell = iota
	// Zsh is the Z shell.
	Zsh
	// Fish is the friendly interactive shell.
	Fish
	// Elvish is the Elvish shell.
	Elvish
	// Nushell is the Nu shell.
	Nushell
	// PowerShell is Microsoft PowerShell.
	PowerShell
)

// AllShells returns every supported shell, in declaration order.
func AllShells() []Shell {
	return []Shell{
		Bash,
		Zsh,
		Fish,
		Elvish,
		Nushell,
		PowerShell,
	}
}

// String makes Shell satisfy the fmt.Stringer interface.
func (s Shell) String() string {
	switch s {
	case Bash:
		return "bash"
	case Zsh:
		return "zsh"
	case Fish:
		return "fish"
	case Elvish:
		return "elvish"
	case Nushell:
		return "nushell"
	case PowerShell:
		return "powershell"
	default:
		return "unknown"
	}
}

// ParseShellError is returned when a shell name is not recognized.
type ParseShellError struct {
	// Input is the rejected shell name.
	Input string
}

// Error implements the error interface.
func (e *ParseShellError) Error() string {
	return fmt.Sprintf("unknown shell: %s", e.Input)
}

// ParseShell converts a shell name into a Shell. Matching is
// case-insensitive; besides the canonical lowercase names, the common
// abbreviations "nu" and "pwsh" are accepted.
func ParseShell(name string) (Shell, error) {
	switch strings.ToLower(name) {
	case "bash":
		return Bash, nil
	case "zsh":
		return Zsh, nil
	case "fish":
		return Fish, nil
	case "elvish":
		return Elvish, nil
	case "nushell", "nu":
		return Nushell, nil
	case "powershell", "pwsh":
		return PowerShell, nil
	default:
		return Bash, &ParseShellError{Input: name}
	}
}

// Set implements pflag.Value, so a Shell can back a command-line flag
// directly.
func (s *Shell) Set(value string) error {
	parsed, err := ParseShell(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s Shell) Type() string {
	return "shell"
}

// MarshalYAML serializes the shell as its lowercase name.
func (s Shell) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML parses a shell from its lowercase name.
func (s *Shell) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseShell(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// DetectionEnvVars lists the environment variables Detect consults. Tests
// blank these out to make detection deterministic.
var DetectionEnvVars = []string{"SHELL", "NU_VERSION"}

// Detect returns the shell the current user appears to be running. Nushell
// does not export SHELL, so NU_VERSION is checked first; after that the
// basename of SHELL decides. Unknown or empty values fall back to Bash
// rather than erroring, since a wrong guess only affects a default.
func Detect() Shell {
	if os.Getenv("NU_VERSION") != "" {
		return Nushell
	}
	if shell, err := ParseShell(filepath.Base(os.Getenv("SHELL"))); err == nil {
		return shell
	}
	return Bash
}
