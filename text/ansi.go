package text

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StripANSI removes ANSI escape codes from a string.
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// Width returns the visible display width of a string (excluding ANSI codes).
func Width(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// Truncate cuts s to at most w visible cells, appending "…" when cut.
// ANSI-free input is assumed; callers truncate before styling.
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}

// PadRight pads s with spaces to exactly w visible cells.
// Strings wider than w are returned unchanged.
func PadRight(s string, w int) string {
	gap := w - Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
