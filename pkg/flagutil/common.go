package flagutil

import (
	"github.com/spf13/pflag"

	"github.com/giantswarm/clikit/pkg/progress"
)

// CommonFlags holds the flag values shared by most commands that list or
// act on collections of items. This consolidates the repetitive flag
// pattern so every command registers the same names with the same
// descriptions.
type CommonFlags struct {
	// Output specifies the desired output format (table, json, yaml)
	Output string
	// NoHeaders suppresses the header row in table output
	NoHeaders bool
	// Quiet suppresses progress indicators and non-essential output
	Quiet bool
	// NonInteractive replaces live progress rendering with plain lines
	NonInteractive bool
}

// Register wires the common flags into a flag set. Pass cmd.Flags() for a
// single command or cmd.PersistentFlags() to cover a whole subtree.
//
// The registered flags are:
//   - --output/-o: Output format (table, json, yaml), default: "table"
//   - --no-headers: Suppress header row in table output
//   - --quiet/-q: Suppress non-essential output
//   - --non-interactive: Plain progress output for CI logs and pipes
func (f *CommonFlags) Register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.Output, "output", "o", "table", "Output format (table, json, yaml)")
	fs.BoolVar(&f.NoHeaders, "no-headers", false, "Suppress header row in table output")
	fs.BoolVarP(&f.Quiet, "quiet", "q", false, "Suppress non-essential output")
	fs.BoolVar(&f.NonInteractive, "non-interactive", false, "Plain progress output for CI logs and pipes")
}

// Reporter selects the progress reporter matching the quiet and
// non-interactive flags.
func (f *CommonFlags) Reporter() progress.Reporter {
	return progress.Select(f.Quiet, f.NonInteractive)
}
