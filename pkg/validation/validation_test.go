package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCityQuery(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"SimpleName", "Toronto", true},
		{"WithSpaces", "New York", true},
		{"Apostrophe", "St. John's", true},
		{"Hyphen", "Winston-Salem", true},
		{"Unicode", "Zürich", true},
		{"Cyrillic", "Київ", true},
		{"SurroundingSpaces", "  Paris  ", true},
		{"Empty", "", false},
		{"WhitespaceOnly", "   ", false},
		{"Digits", "123", false},
		{"LeadingPunctuation", "-Paris", false},
		{"QueryInjection", "Paris&appid=x", false},
		{"TooLong", strings.Repeat("a", 101), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidCityQuery(tt.input))
		})
	}
}
