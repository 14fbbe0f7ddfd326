package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"melodex/pkg/logger"

	"github.com/gosimple/unidecode"
)

// maxSlugAttempts bounds collision probing before giving up.
const maxSlugAttempts = 100

var slugStripPattern = regexp.MustCompile(`[^a-z0-9\s-]+`)

type SlugService struct {
	log logger.Logger
}

func NewSlugService() *SlugService {
	return &SlugService{
		log: logger.New("SlugService"),
	}
}

// BaseSlug derives the deterministic slug for a name: transliterate to ASCII,
// lowercase, strip everything outside [a-z0-9\s-], collapse whitespace runs to
// single hyphens, trim leading/trailing hyphens.
func (s *SlugService) BaseSlug(name string) string {
	slug := unidecode.Unidecode(name)
	slug = strings.ToLower(strings.TrimSpace(slug))
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = strings.Join(strings.Fields(slug), "-")
	slug = strings.Trim(slug, "-")
	return slug
}

// GenerateUniqueSlug produces a slug not reported taken by existsFn, appending
// -1, -2, ... on collision. Fails definitively after the attempt bound rather
// than silently falling back.
func (s *SlugService) GenerateUniqueSlug(
	ctx context.Context,
	name string,
	existsFn func(ctx context.Context, slug string) (bool, error),
) (string, error) {
	log := s.log.Function("GenerateUniqueSlug")

	base := s.BaseSlug(name)
	if base == "" {
		return "", NewValidationError("cannot derive a slug from a blank name")
	}

	candidate := base
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		taken, err := existsFn(ctx, candidate)
		if err != nil {
			return "", log.Err("slug existence check failed", err, "slug", candidate)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}

	return "", log.Err("failed to generate unique slug", ErrSlugExhausted,
		"base", base, "attempts", maxSlugAttempts)
}
