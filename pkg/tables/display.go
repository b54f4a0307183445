package tables

import "fmt"

// DisplayOption formats an optional value for rendering in a table cell.
// Nil renders as the empty string.
func DisplayOption[T any](v *T) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(*v)
}

// DisplayOptionOr formats an optional value with a fallback for nil.
func DisplayOptionOr[T any](v *T, def string) string {
	if v == nil {
		return def
	}
	return fmt.Sprint(*v)
}
