package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugService_BaseSlug(t *testing.T) {
	service := NewSlugService()

	testCases := []struct {
		input    string
		expected string
	}{
		{"John Doe", "john-doe"},
		{"  John   Doe  ", "john-doe"},
		{"Sigur Rós", "sigur-ros"},
		{"AC/DC", "acdc"},
		{"Mötley Crüe", "motley-crue"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, service.BaseSlug(tc.input))
		})
	}
}

func TestSlugService_GenerateUniqueSlug(t *testing.T) {
	ctx := context.Background()
	service := NewSlugService()

	t.Run("free slug returned unchanged", func(t *testing.T) {
		slug, err := service.GenerateUniqueSlug(ctx, "John Doe", func(_ context.Context, _ string) (bool, error) {
			return false, nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "john-doe", slug)
	})

	t.Run("collision appends numeric suffix", func(t *testing.T) {
		taken := map[string]bool{"john-doe": true}
		slug, err := service.GenerateUniqueSlug(ctx, "John Doe", func(_ context.Context, candidate string) (bool, error) {
			return taken[candidate], nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "john-doe-1", slug)
	})

	t.Run("suffix counts past multiple collisions", func(t *testing.T) {
		taken := map[string]bool{"john-doe": true, "john-doe-1": true, "john-doe-2": true}
		slug, err := service.GenerateUniqueSlug(ctx, "John Doe", func(_ context.Context, candidate string) (bool, error) {
			return taken[candidate], nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "john-doe-3", slug)
	})

	t.Run("exhaustion is definitive", func(t *testing.T) {
		slug, err := service.GenerateUniqueSlug(ctx, "John Doe", func(_ context.Context, _ string) (bool, error) {
			return true, nil
		})

		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrSlugExhausted)
		assert.Empty(t, slug)
	})

	t.Run("existence check error propagates", func(t *testing.T) {
		checkErr := errors.New("connection refused")
		_, err := service.GenerateUniqueSlug(ctx, "John Doe", func(_ context.Context, _ string) (bool, error) {
			return false, checkErr
		})

		assert.ErrorIs(t, err, checkErr)
	})

	t.Run("blank name is a validation error", func(t *testing.T) {
		_, err := service.GenerateUniqueSlug(ctx, "   ", func(_ context.Context, _ string) (bool, error) {
			return false, nil
		})

		assert.True(t, IsValidationError(err))
	})
}
