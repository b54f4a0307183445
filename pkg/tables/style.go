package tables

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Style selects the border and separator characters used when rendering a
// styled table. The set is closed; ParseStyle rejects anything else.
type Style int

const (
	// StyleModern uses rounded corners with box-drawing characters. Default.
	StyleModern Style = iota
	// StyleBorderless separates columns with spaces only.
	StyleBorderless
	// StyleMarkdown renders a markdown pipe table.
	StyleMarkdown
	// StyleSharp uses sharp corners with box-drawing characters.
	StyleSharp
	// StyleAscii uses ASCII-only characters.
	StyleAscii
	// StylePsql mimics psql output: bare columns with a dashed header rule.
	StylePsql
	// StyleDots draws borders with dots and colons.
	StyleDots
)

// AllStyles returns every supported style, in declaration order.
func AllStyles() []Style {
	return []Style{
		StyleModern,
		StyleBorderless,
		StyleMarkdown,
		StyleSharp,
		StyleAscii,
		StylePsql,
		StyleDots,
	}
}

// String makes Style satisfy the fmt.Stringer interface.
func (s Style) String() string {
	switch s {
	case StyleModern:
		return "modern"
	case StyleBorderless:
		return "borderless"
	case StyleMarkdown:
		return "markdown"
	case StyleSharp:
		return "sharp"
	case StyleAscii:
		return "ascii"
	case StylePsql:
		return "psql"
	case StyleDots:
		return "dots"
	default:
		return "unknown"
	}
}

// ParseStyleError is returned when a style name is not recognized.
type ParseStyleError struct {
	// Input is the rejected style name.
	Input string
}

// Error implements the error interface.
func (e *ParseStyleError) Error() string {
	return fmt.Sprintf("unknown table style: %s", e.Input)
}

// ParseStyle converts a style name into a Style. Matching is
// case-insensitive; the canonical names are the lowercase forms listed by
// AllStyles.
func ParseStyle(name string) (Style, error) {
	lowered := strings.ToLower(name)
	for _, s := range AllStyles() {
		if s.String() == lowered {
			return s, nil
		}
	}
	return StyleModern, &ParseStyleError{Input: name}
}

// Set implements pflag.Value, so a Style can back a command-line flag
// directly.
func (s *Style) Set(value string) error {
	parsed, err := ParseStyle(value)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s Style) Type() string {
	return "style"
}

// MarshalYAML serializes the style as its lowercase name.
func (s Style) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML parses a style from its lowercase name.
func (s *Style) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseStyle(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// pretty maps a Style onto the renderer's style definition. Header cells
// keep their original case so that projected column names render verbatim.
func (s Style) pretty() table.Style {
	var base table.Style
	switch s {
	case StyleBorderless:
		base = borderlessStyle()
	case StyleSharp:
		base = table.StyleLight
	case StylePsql:
		base = psqlStyle()
	case StyleDots:
		base = dotsStyle()
	case StyleAscii, StyleMarkdown:
		base = table.StyleDefault
	default:
		base = table.StyleRounded
	}
	base.Format.Header = text.FormatDefault
	return base
}

func borderlessStyle() table.Style {
	s := table.StyleDefault
	s.Name = "borderless"
	s.Box.PaddingLeft = ""
	s.Box.PaddingRight = " "
	s.Box.MiddleVertical = " "
	s.Options.DrawBorder = false
	s.Options.SeparateColumns = true
	s.Options.SeparateHeader = false
	s.Options.SeparateRows = false
	return s
}

func psqlStyle() table.Style {
	s := table.StyleDefault
	s.Name = "psql"
	s.Options.DrawBorder = false
	s.Options.SeparateColumns = true
	s.Options.SeparateHeader = true
	s.Options.SeparateRows = false
	return s
}

func dotsStyle() table.Style {
	s := table.StyleDefault
	s.Name = "dots"
	s.Box.BottomLeft = ":"
	s.Box.BottomRight = ":"
	s.Box.BottomSeparator = ":"
	s.Box.Left = ":"
	s.Box.LeftSeparator = ":"
	s.Box.MiddleHorizontal = "."
	s.Box.MiddleSeparator = ":"
	s.Box.MiddleVertical = ":"
	s.Box.Right = ":"
	s.Box.RightSeparator = ":"
	s.Box.TopLeft = "."
	s.Box.TopRight = "."
	s.Box.TopSeparator = "."
	return s
}
