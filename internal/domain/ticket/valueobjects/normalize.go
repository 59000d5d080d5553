package valueobjects

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// canonical turns client spellings such as "in_progress", "IN-PROGRESS" or
// "feature request" into the display form used for storage ("In Progress").
func canonical(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(s))
	// Casers keep state, so each call gets its own.
	return cases.Title(language.English).String(strings.Join(strings.Fields(s), " "))
}

// rankOf returns the position of v in order, or -1.
func rankOf[T comparable](order []T, v T) int {
	for i, candidate := range order {
		if candidate == v {
			return i
		}
	}
	return -1
}
