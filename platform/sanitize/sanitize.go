// Package sanitize provides text sanitization for user-supplied and imported text.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// StripHTML removes all HTML tags from a string, making it safe for text-only display.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = strings.ReplaceAll(result, "&lt;", "<")
	result = strings.ReplaceAll(result, "&gt;", ">")
	result = strings.ReplaceAll(result, "&amp;", "&")
	result = strings.ReplaceAll(result, "&quot;", "\"")
	result = strings.ReplaceAll(result, "&#39;", "'")
	// Re-strip after entity decode to catch encoded tags
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// Text sanitizes free text such as about blurbs and notes.
func Text(s string) string {
	return StripHTML(s)
}

// Line sanitizes a single-line field (names, cities) and collapses inner whitespace.
func Line(s string) string {
	return whitespaceRegex.ReplaceAllString(StripHTML(s), " ")
}

// TextPtr is a helper for optional string pointers
func TextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	result := Text(*s)
	return &result
}
