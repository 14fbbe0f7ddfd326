package services

import (
	"context"
	"strings"
	"time"

	. "melodex/internal/models"
	"melodex/internal/types"

	"github.com/google/uuid"
)

// In-memory repository fakes shared by the resolver and ingestion tests.

type fakeArtistRepo struct {
	artists     []*Artist
	slugs       map[string]bool
	findErr     error
	createErr   error
	slugErr     error
	findCalls   int
	createCalls int
}

func newFakeArtistRepo() *fakeArtistRepo {
	return &fakeArtistRepo{slugs: map[string]bool{}}
}

func (f *fakeArtistRepo) GetByID(_ context.Context, id uuid.UUID) (*Artist, error) {
	for _, artist := range f.artists {
		if artist.ID == id {
			return artist, nil
		}
	}
	return nil, nil
}

func (f *fakeArtistRepo) FindByNameCaseInsensitive(_ context.Context, name string) (*Artist, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	target := strings.ToLower(strings.TrimSpace(name))
	for _, artist := range f.artists {
		if strings.ToLower(artist.DisplayName) == target {
			return artist, nil
		}
	}
	return nil, nil
}

func (f *fakeArtistRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	if f.slugErr != nil {
		return false, f.slugErr
	}
	return f.slugs[slug], nil
}

func (f *fakeArtistRepo) Create(_ context.Context, artist *Artist) (*Artist, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	artist.ID = uuid.New()
	f.artists = append(f.artists, artist)
	f.slugs[artist.Slug] = true
	return artist, nil
}

type fakeGroupRepo struct {
	groups      []*Group
	findErr     error
	createErr   error
	findCalls   int
	createCalls int
}

func (f *fakeGroupRepo) FindByNameCaseInsensitive(_ context.Context, name string) (*Group, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	target := strings.ToLower(strings.TrimSpace(name))
	for _, group := range f.groups {
		if strings.ToLower(group.Name) == target || strings.ToLower(group.DisplayName) == target {
			return group, nil
		}
	}
	return nil, nil
}

func (f *fakeGroupRepo) Create(_ context.Context, group *Group) (*Group, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	group.ID = uuid.New()
	if group.DisplayName == "" {
		group.DisplayName = group.Name
	}
	f.groups = append(f.groups, group)
	return group, nil
}

type fakeReleaseRepo struct {
	releases    []*Release
	findErr     error
	createErr   error
	findCalls   int
	createCalls int
}

func (f *fakeReleaseRepo) FindByTitleCaseInsensitive(_ context.Context, title string) (*Release, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	target := strings.ToLower(strings.TrimSpace(title))
	for _, release := range f.releases {
		if strings.ToLower(strings.TrimSpace(release.Title)) == target {
			return release, nil
		}
	}
	return nil, nil
}

func (f *fakeReleaseRepo) Create(_ context.Context, release *Release) (*Release, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	release.ID = uuid.New()
	f.releases = append(f.releases, release)
	return release, nil
}

type fakeTrackRepo struct {
	tracks        []*Track
	createErr     error
	failOnTitle   map[string]error
	abandonCutoff time.Time
	abandonCount  int64
	abandonErr    error
}

func (f *fakeTrackRepo) Create(_ context.Context, track *Track) (*Track, error) {
	if err, ok := f.failOnTitle[track.Title]; ok {
		return nil, err
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	track.ID = uuid.New()
	f.tracks = append(f.tracks, track)
	return track, nil
}

func (f *fakeTrackRepo) AbandonStalePendingUploads(_ context.Context, olderThan time.Time) (int64, error) {
	f.abandonCutoff = olderThan
	if f.abandonErr != nil {
		return 0, f.abandonErr
	}
	return f.abandonCount, nil
}

type associationKey struct {
	kind AssociationKind
	idA  uuid.UUID
	idB  uuid.UUID
}

type fakeAssociationRepo struct {
	rows      map[associationKey]bool
	created   []associationKey
	existsErr error
	createErr error
}

func newFakeAssociationRepo() *fakeAssociationRepo {
	return &fakeAssociationRepo{rows: map[associationKey]bool{}}
}

func (f *fakeAssociationRepo) Exists(_ context.Context, kind AssociationKind, idA, idB uuid.UUID) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.rows[associationKey{kind, idA, idB}], nil
}

func (f *fakeAssociationRepo) Create(_ context.Context, kind AssociationKind, idA, idB uuid.UUID) error {
	if f.createErr != nil {
		return f.createErr
	}
	key := associationKey{kind, idA, idB}
	f.rows[key] = true
	f.created = append(f.created, key)
	return nil
}

func (f *fakeAssociationRepo) countCreated(kind AssociationKind) int {
	count := 0
	for _, key := range f.created {
		if key.kind == kind {
			count++
		}
	}
	return count
}

// fakeTransaction runs the function directly on the caller's context.
type fakeTransaction struct {
	calls int
	err   error
}

func (f *fakeTransaction) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type recordingAudit struct {
	entities map[string][]ResolvedEntity
	batches  []types.BatchResult
}

func (r *recordingAudit) EntityResolved(kind string, entity ResolvedEntity) {
	if r.entities == nil {
		r.entities = map[string][]ResolvedEntity{}
	}
	r.entities[kind] = append(r.entities[kind], entity)
}

func (r *recordingAudit) BatchCompleted(result types.BatchResult) {
	r.batches = append(r.batches, result)
}

type recordingInvalidation struct {
	paths [][]string
}

func (r *recordingInvalidation) Invalidate(paths []string) {
	r.paths = append(r.paths, paths)
}
