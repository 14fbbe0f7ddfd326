package utils

import (
	"strings"
	"unicode/utf8"
)

// CleanUTF8 removes or replaces invalid UTF8 characters from a string
// Returns the cleaned string and a boolean indicating if cleaning was needed
func CleanUTF8(input string) (string, bool) {
	needsCleaning := strings.Contains(input, "\x00") || !utf8.ValidString(input)

	if !needsCleaning {
		return input, false
	}

	cleaned := strings.ToValidUTF8(input, "")
	cleaned = strings.ReplaceAll(cleaned, "\x00", "")

	return cleaned, true
}

// ArtistNameParts is a free-text artist name split for entity creation.
type ArtistNameParts struct {
	FirstName   string
	LastName    string
	DisplayName string
}

// ParseArtistName splits a free-text name on whitespace. Single-token names
// (stage names) use the token for both first and last name; multi-token names
// take the first token as first name and the remainder, rejoined with single
// spaces, as last name. DisplayName is the trimmed original, case preserved.
func ParseArtistName(name string) ArtistNameParts {
	display := strings.TrimSpace(name)
	tokens := strings.Fields(display)

	parts := ArtistNameParts{DisplayName: display}

	switch len(tokens) {
	case 0:
		// blank input; callers validate before parsing
	case 1:
		parts.FirstName = tokens[0]
		parts.LastName = tokens[0]
	default:
		parts.FirstName = tokens[0]
		parts.LastName = strings.Join(tokens[1:], " ")
	}

	return parts
}

// EqualFold reports whether two names are the same after trimming, ignoring
// case. Both the pre-pass and the per-item phase compare names with this.
func EqualFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
