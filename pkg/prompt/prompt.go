// Package prompt provides small interactive prompts for CLI commands:
// free-form lines and yes/no confirmations. Input goes through readline,
// so users get line editing and sensible interrupt behavior for free.
package prompt

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
)

// newReadline builds the readline instance behind every prompt. Tests swap
// it out to script input.
var newReadline = func(promptText string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          promptText,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// Line reads a single line of input with line editing. Interrupt (Ctrl+C)
// and EOF (Ctrl+D) are returned as errors for the caller to translate.
func Line(promptText string) (string, error) {
	rl, err := newReadline(promptText)
	if err != nil {
		return "", fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	return rl.Readline()
}

// Confirm asks a yes/no question, defaulting to no. Only "y" and "yes"
// (case-insensitive) count as confirmation; anything else, including an
// empty line, declines.
func Confirm(question string) (bool, error) {
	return ConfirmDefault(question, false)
}

// ConfirmDefault asks a yes/no question where an empty line picks def. The
// prompt suffix advertises the default: [Y/n] when def is true, [y/N] when
// it is false.
func ConfirmDefault(question string, def bool) (bool, error) {
	answer, err := Line(question + confirmSuffix(def))
	if err != nil {
		return false, err
	}

	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return def, nil
	}
	return isYes(trimmed), nil
}

func confirmSuffix(def bool) string {
	if def {
		return " [Y/n]: "
	}
	return " [y/N]: "
}

func isYes(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
