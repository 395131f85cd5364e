package common

import (
	"strings"
)

// Institution codes are compared case-insensitively everywhere, PUL == pul.
func NormalizeInstitution(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func SameInstitution(a string, b string) bool {
	return NormalizeInstitution(a) == NormalizeInstitution(b)
}

// Pick returns the first non-blank value.
func Pick(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
