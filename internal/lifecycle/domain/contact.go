package domain

import "strings"

// SplitContactName splits a free-text name on whitespace: the first token is
// the first name and the remainder is the last name.
func SplitContactName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
