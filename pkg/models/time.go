package models

import (
	"strings"
	"time"
)

// TerminalTimeLayout is how the terminal formats timestamps, in server time.
const TerminalTimeLayout = "2006.01.02 15:04:05"

// ParseTerminalTime parses a terminal timestamp. Empty strings report false.
// The terminal omits seconds in some fields, so "2006.01.02 15:04" is accepted too.
func ParseTerminalTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{TerminalTimeLayout, "2006.01.02 15:04", "2006.01.02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatTerminalTime renders t in TerminalTimeLayout.
func FormatTerminalTime(t time.Time) string {
	return t.Format(TerminalTimeLayout)
}
