package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseReleaseDate(t *testing.T) {
	testCases := []struct {
		input    string
		expected time.Time
	}{
		{"2021-06-15", time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{"2021/06/15", time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{"15-06-2021", time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{"June 15, 2021", time.Date(2021, time.June, 15, 0, 0, 0, 0, time.UTC)},
		{"2021-06-15T10:30:00Z", time.Date(2021, time.June, 15, 10, 30, 0, 0, time.UTC)},
		{"not a date", time.Time{}},
		{"", time.Time{}},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.True(t, ParseReleaseDate(tc.input).Equal(tc.expected))
		})
	}
}

func TestIsPlausibleReleaseYear(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsPlausibleReleaseYear(1999, now))
	assert.True(t, IsPlausibleReleaseYear(1860, now))
	assert.True(t, IsPlausibleReleaseYear(2025, now), "next year is allowed for pre-releases")
	assert.False(t, IsPlausibleReleaseYear(1859, now))
	assert.False(t, IsPlausibleReleaseYear(2026, now))
	assert.False(t, IsPlausibleReleaseYear(0, now))
}

func TestResolveReleaseDate(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("full date wins over year", func(t *testing.T) {
		resolved := ResolveReleaseDate("1997-05-21", 2001, now)
		assert.Equal(t, time.Date(1997, time.May, 21, 0, 0, 0, 0, time.UTC), resolved)
	})

	t.Run("plausible year falls back to january first", func(t *testing.T) {
		resolved := ResolveReleaseDate("", 2001, now)
		assert.Equal(t, time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC), resolved)
	})

	t.Run("unparseable date with plausible year uses the year", func(t *testing.T) {
		resolved := ResolveReleaseDate("sometime in spring", 2001, now)
		assert.Equal(t, time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC), resolved)
	})

	t.Run("implausible year falls back to now", func(t *testing.T) {
		resolved := ResolveReleaseDate("", 123, now)
		assert.Equal(t, now, resolved)
	})

	t.Run("nothing supplied falls back to now", func(t *testing.T) {
		resolved := ResolveReleaseDate("", 0, now)
		assert.Equal(t, now, resolved)
	})
}
