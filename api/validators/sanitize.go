package validators

import "strings"

// SanitizeString trims surrounding whitespace and truncates to maxLen bytes.
// A non-positive maxLen disables truncation.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 && len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}
