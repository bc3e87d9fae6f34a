package words

import (
	"fmt"
	"regexp"
)

// Placeholders stand in for purged words until a real replacement is
// found. They are deliberately non-alphabetic so a leftover one can never
// pass final verification.

var placeholderRE = regexp.MustCompile(`^_missing_[a-z]+_$`)

// Placeholder builds the marker recorded when word is purged without an
// immediate replacement.
func Placeholder(word string) string {
	return fmt.Sprintf("_missing_%s_", Normalize(word))
}

// IsPlaceholder reports whether s matches the placeholder pattern.
func IsPlaceholder(s string) bool {
	return placeholderRE.MatchString(s)
}

// PlaceholderWord extracts the purged word a placeholder stands for, or ""
// when s is not a placeholder.
func PlaceholderWord(s string) string {
	if !IsPlaceholder(s) {
		return ""
	}
	return s[len("_missing_") : len(s)-1]
}
