package services

import (
	"strings"

	"melodex/internal/utils"

	"github.com/google/uuid"
)

// ResolvedEntity is a cache entry for one canonical entity resolved during a
// batch.
type ResolvedEntity struct {
	ID          uuid.UUID
	DisplayName string
	WasCreated  bool
}

// ResolutionCache is the batch-scoped dedup arena: lowercased trimmed name to
// resolved entity, one map per entity kind. It is created at the start of one
// ingestion call, passed by reference through the resolvers, and discarded at
// the end. Not safe for concurrent use; batches are processed sequentially.
type ResolutionCache struct {
	artists  map[string]ResolvedEntity
	groups   map[string]ResolvedEntity
	releases map[string]ResolvedEntity
}

func NewResolutionCache() *ResolutionCache {
	return &ResolutionCache{
		artists:  make(map[string]ResolvedEntity),
		groups:   make(map[string]ResolvedEntity),
		releases: make(map[string]ResolvedEntity),
	}
}

func cacheKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (c *ResolutionCache) Artist(name string) (ResolvedEntity, bool) {
	entity, ok := c.artists[cacheKey(name)]
	return entity, ok
}

func (c *ResolutionCache) SetArtist(name string, entity ResolvedEntity) {
	c.artists[cacheKey(name)] = entity
}

func (c *ResolutionCache) Group(name string) (ResolvedEntity, bool) {
	entity, ok := c.groups[cacheKey(name)]
	return entity, ok
}

func (c *ResolutionCache) SetGroup(name string, entity ResolvedEntity) {
	c.groups[cacheKey(name)] = entity
}

func (c *ResolutionCache) Release(title string) (ResolvedEntity, bool) {
	entity, ok := c.releases[cacheKey(title)]
	return entity, ok
}

func (c *ResolutionCache) SetRelease(title string, entity ResolvedEntity) {
	c.releases[cacheKey(title)] = entity
}

// Entries returns all resolved entities grouped by kind, for audit emission.
func (c *ResolutionCache) Entries() map[string][]ResolvedEntity {
	entries := make(map[string][]ResolvedEntity, 3)
	for _, entity := range c.artists {
		entries["artist"] = append(entries["artist"], entity)
	}
	for _, entity := range c.groups {
		entries["group"] = append(entries["group"], entity)
	}
	for _, entity := range c.releases {
		entries["release"] = append(entries["release"], entity)
	}
	return entries
}

// ArtistGroupDecision says which artist-side entities a descriptor needs.
type ArtistGroupDecision struct {
	// GroupName is resolved as a Group when non-empty.
	GroupName string
	// ArtistName is resolved as an individual Artist when non-empty.
	ArtistName string
	// LinkArtistToGroup creates an Artist-Group association between the two.
	LinkArtistToGroup bool
}

// DecideArtistGroup is the pure rule mapping (artist, albumArtist) descriptor
// fields to resolver invocations. An albumArtist is always a Group. An artist
// that differs from the albumArtist (case-insensitive) is additionally an
// individual Artist linked to that Group; an artist equal to the albumArtist
// stays Group-only. Without an albumArtist, a bare artist is the legacy
// single-performer path. The pre-pass and the per-item phase both evaluate
// this rule with identical semantics.
func DecideArtistGroup(artist, albumArtist string) ArtistGroupDecision {
	artist = strings.TrimSpace(artist)
	albumArtist = strings.TrimSpace(albumArtist)

	if albumArtist != "" {
		decision := ArtistGroupDecision{GroupName: albumArtist}
		if artist != "" && !utils.EqualFold(artist, albumArtist) {
			decision.ArtistName = artist
			decision.LinkArtistToGroup = true
		}
		return decision
	}

	if artist != "" {
		return ArtistGroupDecision{ArtistName: artist}
	}

	return ArtistGroupDecision{}
}
