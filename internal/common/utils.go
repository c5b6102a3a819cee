package common

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CanonicalCity normalizes user input such as "  pune " or "ICHALKARANJI"
// to the title-cased form used by the city table.
func CanonicalCity(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
