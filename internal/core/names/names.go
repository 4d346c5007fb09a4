// Package names flags likely auto-generated or generic reviewer names
package names

import (
	"regexp"
	"strings"
)

// generic placeholders matched case-insensitively as substrings.
// "unknown" is the normalizer's default for records that arrived with no
// reviewer name, so a missing name stays suspicious after normalization
var placeholders = []string{
	"amazon customer",
	"unknown",
}

// a fixed literal word followed by 4+ digits, e.g. user938475
var userDigits = regexp.MustCompile(`user\d{4,}`)

// 8+ alphanumeric characters with no whitespace, e.g. a83k29f2
var gibberish = regexp.MustCompile(`^[a-z0-9]{8,}$`)

// IsSuspicious reports whether a reviewer name looks auto-generated or generic.
// Rules are evaluated in order; any match wins
func IsSuspicious(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return true
	}

	lower := strings.ToLower(trimmed)

	for _, p := range placeholders {
		if strings.Contains(lower, p) {
			return true
		}
	}

	if userDigits.MatchString(lower) {
		return true
	}

	return gibberish.MatchString(lower)
}

// History returns the categorical reviewer status derived from name plausibility
func History(name string) string {
	if IsSuspicious(name) {
		return "suspicious"
	}
	return "regular"
}
