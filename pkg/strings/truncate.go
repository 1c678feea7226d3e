package strings

import (
	"strings"
)

// DefaultTitleMaxLen is the default maximum length for suite titles in
// formatted output. Shared across packages so truncation is consistent.
const DefaultTitleMaxLen = 60

// MinTruncateLen is the minimum maxLen value for TruncateTitle. Values
// smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// TruncateTitle truncates a string to maxLen characters and ensures
// single-line output: newlines and repeated whitespace collapse to single
// spaces, and "..." is appended if the string was cut.
//
// The function operates on runes rather than bytes, so multi-byte
// characters are never split. maxLen values below MinTruncateLen are
// clamped to it.
func TruncateTitle(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
