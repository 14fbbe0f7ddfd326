package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArtistName(t *testing.T) {
	testCases := []struct {
		name            string
		input           string
		expectedFirst   string
		expectedLast    string
		expectedDisplay string
	}{
		{"single token stage name", "Bjork", "Bjork", "Bjork", "Bjork"},
		{"two tokens", "John Doe", "John", "Doe", "John Doe"},
		{"three tokens", "Mary Jane Watson", "Mary", "Jane Watson", "Mary Jane Watson"},
		{"surrounding whitespace", "  John Doe  ", "John", "Doe", "John Doe"},
		{"internal whitespace run collapsed in last name", "John  van  Doe", "John", "van Doe", "John  van  Doe"},
		{"blank", "   ", "", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parts := ParseArtistName(tc.input)

			assert.Equal(t, tc.expectedFirst, parts.FirstName)
			assert.Equal(t, tc.expectedLast, parts.LastName)
			assert.Equal(t, tc.expectedDisplay, parts.DisplayName)
		})
	}
}

func TestCleanUTF8(t *testing.T) {
	testCases := []struct {
		name            string
		input           string
		expected        string
		expectedCleaned bool
	}{
		{"plain ascii untouched", "Blue Monday", "Blue Monday", false},
		{"multibyte untouched", "Sigur Rós", "Sigur Rós", false},
		{"null byte stripped", "Blue\x00Monday", "BlueMonday", true},
		{"invalid sequence stripped", "Blue\xffMonday", "BlueMonday", true},
		{"empty", "", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cleaned, wasCleaned := CleanUTF8(tc.input)

			assert.Equal(t, tc.expected, cleaned)
			assert.Equal(t, tc.expectedCleaned, wasCleaned)
		})
	}
}

func TestEqualFold(t *testing.T) {
	assert.True(t, EqualFold("The Beatles", "the beatles"))
	assert.True(t, EqualFold("  The Beatles ", "THE BEATLES"))
	assert.False(t, EqualFold("The Beatles", "The Rolling Stones"))
	assert.True(t, EqualFold("", "   "))
}
