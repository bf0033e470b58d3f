package sanitizer

import (
	"html"
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lower converts the string to lowercase.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Upper converts the string to uppercase.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// CollapseWhitespace replaces every run of whitespace with a single
// space and trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SingleLine removes line breaks so the value cannot span lines.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return CollapseWhitespace(s)
}

// EscapeHTML escapes HTML special characters.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// StripControl removes non-printable control characters, keeping tabs.
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' || !unicode.IsControl(r) {
			return r
		}
		return -1
	}, s)
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeURL trims the value and strips a trailing slash from the path.
func NormalizeURL(s string) string {
	s = strings.TrimSpace(s)
	if strings.Count(s, "/") > 2 {
		s = strings.TrimRight(s, "/")
	}
	return s
}
