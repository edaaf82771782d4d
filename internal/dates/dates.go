// Package dates validates the date and year strings stored in records.
//
// Records keep dates as text and collections are ordered by comparing that
// text, so only zero-padded YYYY-MM-DD dates and four-digit years sort
// chronologically.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	yearRegex = regexp.MustCompile(`^\d{4}$`)
)

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !IsValidDate(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.Parse("2006-01-02", s)
}

// IsValidYear checks if a string is a four-digit year.
func IsValidYear(s string) bool {
	return yearRegex.MatchString(s)
}

// Sortable reports whether a date field sorts correctly as text.
// Empty values are sortable; they fall back to a sentinel.
func Sortable(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || IsValidDate(s)
}
