// Package fold provides Unicode case-insensitive string matching.
package fold

import (
	"strings"

	"golang.org/x/text/cases"
)

// String returns the case-folded form of s.
func String(s string) string {
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Fold().String(s)
}

// Contains reports whether substr is within s, ignoring case.
func Contains(s, substr string) bool {
	return strings.Contains(String(s), String(substr))
}

// ContainsAny reports whether any of the substrings is within s, ignoring
// case.
func ContainsAny(s string, substrs ...string) bool {
	folded := String(s)
	for _, sub := range substrs {
		if strings.Contains(folded, String(sub)) {
			return true
		}
	}
	return false
}

// Equal reports whether a and b are equal under case folding.
func Equal(a, b string) bool {
	return String(a) == String(b)
}
