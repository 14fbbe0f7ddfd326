package utils

import (
	"time"
)

// Earliest plausible release year; recorded music predates nothing older.
const minReleaseYear = 1860

var releaseDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"02-01-2006",
	"January 2, 2006",
}

// ParseReleaseDate parses a full release date string against the supported
// layouts. Returns the zero time when the input is empty or unparseable.
func ParseReleaseDate(input string) time.Time {
	if input == "" {
		return time.Time{}
	}

	for _, layout := range releaseDateLayouts {
		if parsed, err := time.Parse(layout, input); err == nil {
			return parsed
		}
	}

	return time.Time{}
}

// IsPlausibleReleaseYear reports whether year falls in a reasonable calendar
// window: no earlier than the dawn of recorded music, no later than next year.
func IsPlausibleReleaseYear(year int, now time.Time) bool {
	return year >= minReleaseYear && year <= now.Year()+1
}

// ResolveReleaseDate picks the release date for a new Release: the parsed
// full date when valid, else January 1 of a plausible year, else now.
func ResolveReleaseDate(fullDate string, year int, now time.Time) time.Time {
	if parsed := ParseReleaseDate(fullDate); !parsed.IsZero() {
		return parsed
	}

	if IsPlausibleReleaseYear(year, now) {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}

	return now
}
