package utils

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"strings"
)

// IndexOfString returns the position of targetString in sliceOfStrings ignoring case and
// surrounding whitespace. If the string is not found -1 is returned
func IndexOfString(targetString string, sliceOfStrings []string) int {
	target := NormalizeString(targetString)
	for i := range sliceOfStrings {
		if NormalizeString(sliceOfStrings[i]) == target {
			return i
		}
	}
	return -1
}

// ContainsString returns true if targetString is in sliceOfStrings. The comparison ignores case
func ContainsString(targetString string, sliceOfStrings []string) bool {
	return IndexOfString(targetString, sliceOfStrings) != -1
}

// NormalizeString lowercases s and removes its leading and trailing whitespace
func NormalizeString(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DisplayName returns s with the first letter of each word in uppercase, e.g. "New York City"
func DisplayName(s string) string {
	return cases.Title(language.English).String(s)
}
