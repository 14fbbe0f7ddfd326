package services

import (
	"context"
	"strings"
	"time"

	. "melodex/internal/models"
	"melodex/internal/repositories"
	"melodex/internal/types"
	"melodex/internal/utils"
	"melodex/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxBatchSize bounds one ingestion call.
const MaxBatchSize = 100

const (
	msgNoTracks        = "No tracks provided"
	msgTooManyTracks   = "Too many tracks provided (max 100)"
	msgTitleRequired   = "Track title is required"
	msgDurationInvalid = "Track duration must be greater than zero"
	msgAudioRequired   = "Audio file location is required"
	msgDuplicateTrack  = "A track with this title already exists"
	msgCreateFailed    = "Failed to create track"
	msgPrePassFailed   = "Failed to prepare shared resources"
)

type transactionExecutor interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

type auditSink interface {
	EntityResolved(kind string, entity ResolvedEntity)
	BatchCompleted(result types.BatchResult)
}

type invalidationSignal interface {
	Invalidate(paths []string)
}

// IngestService materializes batches of track descriptors into the canonical
// entity graph. Processing is strictly sequential; the resolution cache is not
// built for concurrent mutation and sequential items are what prevent two
// descriptors from racing to create "the same" new artist.
type IngestService struct {
	tx           transactionExecutor
	artists      *ArtistResolverService
	groups       *GroupResolverService
	releases     *ReleaseResolverService
	tracks       repositories.TrackRepository
	associations repositories.AssociationRepository
	audit        auditSink
	invalidation invalidationSignal
	validate     *validator.Validate
	now          func() time.Time
	log          logger.Logger
}

func NewIngestService(
	tx transactionExecutor,
	artists *ArtistResolverService,
	groups *GroupResolverService,
	releases *ReleaseResolverService,
	tracks repositories.TrackRepository,
	associations repositories.AssociationRepository,
	audit auditSink,
	invalidation invalidationSignal,
) *IngestService {
	return &IngestService{
		tx:           tx,
		artists:      artists,
		groups:       groups,
		releases:     releases,
		tracks:       tracks,
		associations: associations,
		audit:        audit,
		invalidation: invalidation,
		validate:     validator.New(),
		now:          time.Now,
		log:          logger.New("IngestService"),
	}
}

// releaseRef is the pre-pass outcome for one distinct album.
type releaseRef struct {
	ID      uuid.UUID
	Title   string
	Created bool
}

// IngestBatch validates the batch, pre-resolves shared resources (releases
// and album-artist groups), then processes each descriptor inside its own
// transaction. Per-item failures never abort the batch; a pre-pass failure
// always does. The caller always receives a well-formed BatchResult.
func (s *IngestService) IngestBatch(
	ctx context.Context,
	descriptors []types.TrackDescriptor,
	options types.IngestOptions,
) types.BatchResult {
	log := s.log.Function("IngestBatch").TraceFromContext(ctx)
	defer log.Timer("batch ingestion")()

	if len(descriptors) == 0 {
		return types.BatchResult{
			Success: false,
			Results: []types.ItemResult{},
			Error:   msgNoTracks,
		}
	}

	if len(descriptors) > MaxBatchSize {
		log.Warn("Rejected oversized batch", "count", len(descriptors))
		return types.BatchResult{
			Success:     false,
			FailedCount: len(descriptors),
			Results:     []types.ItemResult{},
			Error:       msgTooManyTracks,
		}
	}

	cache := NewResolutionCache()

	releaseRefs, err := s.preResolveSharedResources(ctx, descriptors, options, cache)
	if err != nil {
		message := err.Error()
		if message == "" {
			message = msgPrePassFailed
		}
		log.Er("shared-resource pre-pass failed, aborting batch", err)
		return types.BatchResult{
			Success:     false,
			FailedCount: len(descriptors),
			Results:     []types.ItemResult{},
			Error:       message,
		}
	}

	results := make([]types.ItemResult, 0, len(descriptors))
	for index, descriptor := range descriptors {
		results = append(results, s.processItem(ctx, index, descriptor, options, cache, releaseRefs))
	}

	result := aggregate(results)

	s.emitAudit(cache, result)
	s.signalInvalidation(cache, result)

	log.Info("Batch ingestion completed",
		"total", len(descriptors),
		"succeeded", result.SuccessCount,
		"failed", result.FailedCount,
	)

	return result
}

// preResolveSharedResources resolves each distinct album once (first seen
// wins, case-insensitive) and eagerly warms the group cache from album
// artists. Releases and groups created here are deliberately outside any
// per-item transaction: a later item failure must not roll back a release an
// earlier item already used. Any error here fails the whole batch.
func (s *IngestService) preResolveSharedResources(
	ctx context.Context,
	descriptors []types.TrackDescriptor,
	options types.IngestOptions,
	cache *ResolutionCache,
) (map[string]releaseRef, error) {
	refs := make(map[string]releaseRef)

	if !options.AutoCreateRelease {
		return refs, nil
	}

	for _, descriptor := range descriptors {
		album := strings.TrimSpace(descriptor.Album)
		if album == "" {
			continue
		}

		key := strings.ToLower(album)
		if _, seen := refs[key]; !seen {
			resolution, err := s.releases.Resolve(ctx, ReleaseMetadata{
				Album:         album,
				ReleaseDate:   descriptor.ReleaseDate,
				ReleaseYear:   descriptor.ReleaseYear,
				Label:         descriptor.Label,
				CatalogNumber: descriptor.CatalogNumber,
				CoverArtURL:   descriptor.CoverArtURL,
			})
			if err != nil {
				return nil, err
			}

			refs[key] = releaseRef{
				ID:      resolution.ID,
				Title:   resolution.Title,
				Created: resolution.Created,
			}
			cache.SetRelease(album, ResolvedEntity{
				ID:          resolution.ID,
				DisplayName: resolution.Title,
				WasCreated:  resolution.Created,
			})
		}

		decision := DecideArtistGroup(descriptor.Artist, descriptor.AlbumArtist)
		if decision.GroupName != "" {
			if _, err := s.groups.Resolve(ctx, decision.GroupName, ResolveGroupOptions{}, cache); err != nil {
				return nil, err
			}
		}
	}

	return refs, nil
}

// processItem validates one descriptor and, when valid, creates its track and
// associations inside a single transaction. Returns a failed result instead
// of an error; the batch loop always continues.
func (s *IngestService) processItem(
	ctx context.Context,
	index int,
	descriptor types.TrackDescriptor,
	options types.IngestOptions,
	cache *ResolutionCache,
	releaseRefs map[string]releaseRef,
) types.ItemResult {
	log := s.log.Function("processItem")

	result := types.ItemResult{
		Index: index,
		Title: strings.TrimSpace(descriptor.Title),
	}

	if message, ok := s.validateDescriptor(descriptor, options); !ok {
		result.Error = message
		return result
	}

	var release *releaseRef
	if album := strings.TrimSpace(descriptor.Album); album != "" && options.AutoCreateRelease {
		if ref, ok := releaseRefs[strings.ToLower(album)]; ok {
			release = &ref
			result.ReleaseID = ref.ID.String()
			result.ReleaseTitle = ref.Title
			result.ReleaseCreated = ref.Created
		}
	}

	decision := DecideArtistGroup(descriptor.Artist, descriptor.AlbumArtist)

	var trackID uuid.UUID
	err := s.tx.Execute(ctx, func(txCtx context.Context) error {
		var artistID *uuid.UUID

		if decision.ArtistName != "" {
			artistOpts := ResolveArtistOptions{}
			if release != nil {
				artistOpts.ReleaseID = &release.ID
			}

			artistResolution, err := s.artists.Resolve(txCtx, decision.ArtistName, artistOpts, cache)
			if err != nil {
				return err
			}
			artistID = &artistResolution.ID
		}

		if decision.GroupName != "" {
			groupOpts := ResolveGroupOptions{}
			if decision.LinkArtistToGroup {
				groupOpts.ArtistID = artistID
			}

			if _, err := s.groups.Resolve(txCtx, decision.GroupName, groupOpts, cache); err != nil {
				return err
			}
		}

		track, err := s.createTrack(txCtx, descriptor, options)
		if err != nil {
			return err
		}
		trackID = track.ID

		if release != nil {
			if err := s.reconcileAssociation(txCtx, AssociationReleaseTrack, release.ID, track.ID); err != nil {
				return err
			}
		}

		if artistID != nil {
			if err := s.reconcileAssociation(txCtx, AssociationTrackArtist, track.ID, *artistID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		result.Error = classifyItemError(err)
		log.Er("failed to ingest track", err, "index", index, "title", result.Title)
		return result
	}

	result.Success = true
	result.TrackID = trackID.String()
	return result
}

// validateDescriptor runs field validation only; it never touches storage.
func (s *IngestService) validateDescriptor(
	descriptor types.TrackDescriptor,
	options types.IngestOptions,
) (string, bool) {
	if strings.TrimSpace(descriptor.Title) == "" {
		return msgTitleRequired, false
	}

	if err := s.validate.Struct(descriptor); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldError := range fieldErrors {
				switch fieldError.Field() {
				case "Title":
					return msgTitleRequired, false
				case "DurationSeconds":
					return msgDurationInvalid, false
				}
			}
		}
		return msgCreateFailed, false
	}

	if strings.TrimSpace(descriptor.AudioURL) == "" && !options.DeferAudioUpload {
		return msgAudioRequired, false
	}

	return "", true
}

func (s *IngestService) createTrack(
	ctx context.Context,
	descriptor types.TrackDescriptor,
	options types.IngestOptions,
) (*Track, error) {
	title, _ := utils.CleanUTF8(strings.TrimSpace(descriptor.Title))

	track := &Track{
		Title:           title,
		DurationSeconds: descriptor.DurationSeconds,
		AudioURL:        strings.TrimSpace(descriptor.AudioURL),
		Position:        descriptor.Position,
		UploadStatus:    UploadStatusComplete,
	}

	if descriptor.CoverArtURL != "" {
		coverArtURL := descriptor.CoverArtURL
		track.CoverArtURL = &coverArtURL
	}

	if descriptor.ContentHash != "" {
		contentHash := descriptor.ContentHash
		track.ContentHash = &contentHash
	}

	if options.DeferAudioUpload {
		track.UploadStatus = UploadStatusPending
	}

	if options.PublishImmediately {
		publishedOn := s.now()
		track.PublishedOn = &publishedOn
	}

	return s.tracks.Create(ctx, track)
}

func (s *IngestService) reconcileAssociation(
	ctx context.Context,
	kind AssociationKind,
	idA, idB uuid.UUID,
) error {
	exists, err := s.associations.Exists(ctx, kind, idA, idB)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.associations.Create(ctx, kind, idA, idB)
}

// classifyItemError rewrites per-item transaction errors for the caller.
// Validation messages pass through; duplicate violations get a friendly
// conflict message; everything else collapses to a generic failure so store
// internals never leak.
func classifyItemError(err error) string {
	if IsValidationError(err) {
		return err.Error()
	}
	if IsConflictError(err) {
		return msgDuplicateTrack
	}
	return msgCreateFailed
}

// aggregate folds per-item outcomes into the batch result, preserving input
// order. Never reorders, never deduplicates.
func aggregate(results []types.ItemResult) types.BatchResult {
	batch := types.BatchResult{Results: results}

	for _, result := range results {
		if result.Success {
			batch.SuccessCount++
		} else {
			batch.FailedCount++
		}
	}

	batch.Success = batch.FailedCount == 0
	return batch
}

func (s *IngestService) emitAudit(cache *ResolutionCache, result types.BatchResult) {
	if s.audit == nil {
		return
	}

	for kind, entities := range cache.Entries() {
		for _, entity := range entities {
			s.audit.EntityResolved(kind, entity)
		}
	}
	s.audit.BatchCompleted(result)
}

// signalInvalidation notifies the cache layer about every resource surface a
// batch may have touched. Emitted regardless of partial failure: any single
// committed item already invalidates the listings.
func (s *IngestService) signalInvalidation(cache *ResolutionCache, result types.BatchResult) {
	if s.invalidation == nil {
		return
	}

	paths := []string{"/api/tracks"}
	entries := cache.Entries()
	if len(entries["artist"]) > 0 {
		paths = append(paths, "/api/artists")
	}
	if len(entries["group"]) > 0 {
		paths = append(paths, "/api/groups")
	}
	if len(entries["release"]) > 0 {
		paths = append(paths, "/api/releases")
	}

	s.invalidation.Invalidate(paths)
}
