package services

import (
	"context"
	"errors"
	"testing"

	. "melodex/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newGroupResolverFixture() (*GroupResolverService, *fakeGroupRepo, *fakeAssociationRepo) {
	groups := &fakeGroupRepo{}
	associations := newFakeAssociationRepo()
	return NewGroupResolverService(groups, associations), groups, associations
}

func TestGroupResolver_CreatesMissingGroup(t *testing.T) {
	resolver, groups, _ := newGroupResolverFixture()
	cache := NewResolutionCache()

	resolution, err := resolver.Resolve(context.Background(), "The Does", ResolveGroupOptions{}, cache)

	assert.NoError(t, err)
	assert.True(t, resolution.Created)
	assert.Equal(t, "The Does", resolution.DisplayName)
	assert.Len(t, groups.groups, 1)
	assert.Equal(t, "The Does", groups.groups[0].Name)

	cached, ok := cache.Group("the does")
	assert.True(t, ok)
	assert.Equal(t, resolution.ID, cached.ID)
}

func TestGroupResolver_MatchesNameOrDisplayName(t *testing.T) {
	resolver, groups, _ := newGroupResolverFixture()
	existing := &Group{Name: "the-does", DisplayName: "The Does"}
	existing.ID = uuid.New()
	groups.groups = append(groups.groups, existing)

	resolution, err := resolver.Resolve(context.Background(), "THE DOES", ResolveGroupOptions{}, NewResolutionCache())

	assert.NoError(t, err)
	assert.False(t, resolution.Created)
	assert.Equal(t, existing.ID, resolution.ID)
	assert.Zero(t, groups.createCalls)
}

func TestGroupResolver_CacheHitSkipsStore(t *testing.T) {
	resolver, groups, _ := newGroupResolverFixture()
	cache := NewResolutionCache()
	cachedID := uuid.New()
	cache.SetGroup("The Does", ResolvedEntity{ID: cachedID, DisplayName: "The Does"})

	resolution, err := resolver.Resolve(context.Background(), "the does", ResolveGroupOptions{}, cache)

	assert.NoError(t, err)
	assert.Equal(t, cachedID, resolution.ID)
	assert.Zero(t, groups.findCalls)
}

func TestGroupResolver_LinksArtist(t *testing.T) {
	resolver, _, associations := newGroupResolverFixture()
	cache := NewResolutionCache()
	artistID := uuid.New()

	resolution, err := resolver.Resolve(context.Background(), "The Does",
		ResolveGroupOptions{ArtistID: &artistID}, cache)

	assert.NoError(t, err)
	assert.True(t, resolution.ArtistLinked)
	assert.Equal(t, []associationKey{{AssociationArtistGroup, artistID, resolution.ID}}, associations.created)

	// Resolving again with the same artist reuses the existing row.
	resolution, err = resolver.Resolve(context.Background(), "The Does",
		ResolveGroupOptions{ArtistID: &artistID}, cache)

	assert.NoError(t, err)
	assert.False(t, resolution.ArtistLinked)
	assert.Len(t, associations.created, 1)
}

func TestGroupResolver_BlankNameIsValidationError(t *testing.T) {
	resolver, _, _ := newGroupResolverFixture()

	_, err := resolver.Resolve(context.Background(), "", ResolveGroupOptions{}, NewResolutionCache())

	assert.True(t, IsValidationError(err))
}

func TestGroupResolver_StoreErrorsPropagate(t *testing.T) {
	resolver, groups, _ := newGroupResolverFixture()
	storeErr := errors.New("connection refused")
	groups.createErr = storeErr

	_, err := resolver.Resolve(context.Background(), "The Does", ResolveGroupOptions{}, NewResolutionCache())

	assert.ErrorIs(t, err, storeErr)
}
