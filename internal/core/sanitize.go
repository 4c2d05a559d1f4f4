package core

import "strings"

// sanitizeLine strips the line terminator and reports whether anything
// remains once whitespace is ignored. Blank input is a silent no-op:
// no error, no prompt redraw.
func sanitizeLine(raw string) (string, bool) {
	line := strings.TrimSuffix(raw, "\n")
	line = strings.TrimSuffix(line, "\r")
	if isBlank(line) {
		return "", false
	}
	return line, true
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n', '\v', '\f':
		default:
			return false
		}
	}
	return true
}

// validName reports whether s is non-empty and ASCII letters/digits
// only. Usernames and room names share this rule.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// printableASCII reports whether every byte of s is in the 0x20-0x7E
// range. Applied to all post-login input before dispatch.
func printableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}
	return true
}
