package completion

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/cobra"
)

//go:embed templates/elvish.elv.tmpl
var elvishTemplate string

//go:embed templates/nushell.nu.tmpl
var nushellTemplate string

var (
	elvishTmpl  = template.Must(template.New("elvish").Funcs(sprig.TxtFuncMap()).Parse(elvishTemplate))
	nushellTmpl = template.Must(template.New("nushell").Funcs(sprig.TxtFuncMap()).Parse(nushellTemplate))
)

// Generate writes a completion script for the given shell to w. The script
// is always generated for the root of the passed command, since that is the
// name the user types. Bash, zsh, fish and PowerShell use the generators
// built into cobra; elvish and nushell use bridge scripts over the hidden
// __complete command.
func Generate(shell Shell, cmd *cobra.Command, w io.Writer) error {
	root := cmd.Root()
	switch shell {
	case Bash:
		return root.GenBashCompletionV2(w, true)
	case Zsh:
		return root.GenZshCompletion(w)
	case Fish:
		return root.GenFishCompletion(w, true)
	case Elvish:
		return renderBridge(elvishTmpl, root.Name(), w)
	case Nushell:
		return renderBridge(nushellTmpl, root.Name(), w)
	case PowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("no completion generator for shell %d", int(shell))
	}
}

// GenerateToStdout writes a completion script for the given shell to stdout.
func GenerateToStdout(shell Shell, cmd *cobra.Command) error {
	return Generate(shell, cmd, os.Stdout)
}

func renderBridge(tmpl *template.Template, binaryName string, w io.Writer) error {
	data := map[string]string{"Name": binaryName}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render %s completion script: %w", tmpl.Name(), err)
	}
	return nil
}
