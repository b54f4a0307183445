// Package completion generates shell completion scripts for cobra-based
// commands and detects the shell of the current user.
//
// Bash, zsh, fish and PowerShell scripts come straight from the generators
// built into cobra. Elvish and Nushell have no cobra generator, so for those
// the package renders bridge scripts that query the hidden __complete
// command cobra adds to every root command. The bridges resolve candidates
// at completion time, so they never go stale when the binary gains new
// subcommands or flags.
//
// The Shell type is a closed enumeration. It implements pflag.Value and the
// YAML marshal interfaces, so a shell can back a --shell flag or a config
// file field directly:
//
//	shell := completion.Detect()
//	cmd.Flags().Var(&shell, "shell", "shell to generate completions for")
package completion
