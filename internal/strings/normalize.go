// Package strings holds the small text helpers shared by the command line,
// the shell and the renderers.
package strings

import "strings"

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// IsBlank reports whether value is empty or only whitespace.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// FirstNonBlank returns the first value that is not blank, trimmed, or "".
func FirstNonBlank(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// NormalizeWhitespace joins the words of value with single spaces.
func NormalizeWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// NormalizeNewlines rewrites CRLF and lone CR line endings as LF.
func NormalizeNewlines(value string) string {
	return lineEndings.Replace(value)
}

// TrimTrailingNewlines drops any CR or LF at the end of value.
func TrimTrailingNewlines(value string) string {
	return strings.TrimRight(value, "\r\n")
}

// TrimTrailingSlash drops any '/' at the end of value.
func TrimTrailingSlash(value string) string {
	return strings.TrimRight(value, "/")
}
