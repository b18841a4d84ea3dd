package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxCityQueryLength = 100

// City names: letters first, then letters, spaces and the punctuation real names use
// ("St. John's", "Winston-Salem", "Washington, D.C.")
var cityQueryRegex = regexp.MustCompile(`^[\p{L}\p{M}][\p{L}\p{M}\s.,'-]*$`)

// IsValidCityQuery reports whether s can be sent upstream as a city lookup
func IsValidCityQuery(s string) bool {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || utf8.RuneCountInString(trimmed) > maxCityQueryLength {
		return false
	}
	return cityQueryRegex.MatchString(trimmed)
}
