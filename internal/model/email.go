package model

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// LooksLikeEmail reports whether s has the rough shape local@domain.tld.
// It is a syntactic check only.
func LooksLikeEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return emailPattern.MatchString(s)
}
