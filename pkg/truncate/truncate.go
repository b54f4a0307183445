package truncate

// DefaultSuffix is appended to strings shortened by String.
// This constant is shared across packages to ensure consistent truncation behavior.
const DefaultSuffix = "..."

// String truncates a string to a maximum number of characters, appending
// "..." when the input had to be shortened.
//
// Equivalent to WithSuffix(s, maxChars, DefaultSuffix).
func String(s string, maxChars int) string {
	return WithSuffix(s, maxChars, DefaultSuffix)
}

// WithSuffix truncates a string to a maximum number of characters with a
// custom suffix.
//
// The function counts runes rather than bytes, preventing truncation in the
// middle of multi-byte characters. If the input fits within maxChars it is
// returned unchanged. Otherwise the result keeps the first
// maxChars-len(suffix) characters and appends the suffix in full.
//
// The suffix is never shortened: when maxChars is smaller than the suffix
// itself the result is just the suffix (so maxChars of 0 with a non-empty
// suffix yields the bare suffix). Callers that need a hard cap below the
// suffix length should use Middle instead.
//
// Args:
//   - s: The string to truncate
//   - maxChars: Maximum length of the result in characters (including the suffix)
//   - suffix: Marker appended when truncation happens
//
// Returns:
//   - The original string, or its truncated form ending in suffix
func WithSuffix(s string, maxChars int, suffix string) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}

	keep := maxChars - len([]rune(suffix))
	if keep < 0 {
		keep = 0
	}

	return string(runes[:keep]) + suffix
}

// Middle truncates a string in the middle, keeping both ends.
//
// Useful for file paths or long identifiers where the start and the end
// both carry identifying information. The marker is always "...". When the
// input is longer than maxChars the result is exactly maxChars characters:
// ceil((maxChars-3)/2) from the front, the marker, and floor((maxChars-3)/2)
// from the back. The extra character on odd splits goes to the front.
//
// maxChars of 3 or less returns that many characters of the marker and none
// of the input. Negative limits behave like 0.
func Middle(s string, maxChars int) string {
	// Clamp to zero to prevent a negative slice index on the marker.
	if maxChars < 0 {
		maxChars = 0
	}

	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}

	const marker = "..."
	if maxChars <= len(marker) {
		return marker[:maxChars]
	}

	available := maxChars - len(marker)
	startLen := (available + 1) / 2
	endLen := available / 2

	return string(runes[:startLen]) + marker + string(runes[len(runes)-endLen:])
}
