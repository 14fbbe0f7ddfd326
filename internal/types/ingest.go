package types

// TrackDescriptor is one loosely-structured track to ingest, typically built
// from audio file tags. It is consumed once per batch item and never
// persisted as-is.
type TrackDescriptor struct {
	Title           string `json:"title"            validate:"required"`
	DurationSeconds int    `json:"durationSeconds"  validate:"required,gt=0"`
	AudioURL        string `json:"audioUrl"`
	Position        *int   `json:"position,omitempty"`
	CoverArtURL     string `json:"coverArtUrl,omitempty"`
	Album           string `json:"album,omitempty"`
	ReleaseYear     int    `json:"releaseYear,omitempty"`
	ReleaseDate     string `json:"releaseDate,omitempty"`
	Label           string `json:"label,omitempty"`
	CatalogNumber   string `json:"catalogNumber,omitempty"`
	AlbumArtist     string `json:"albumArtist,omitempty"`
	Artist          string `json:"artist,omitempty"`
	Lossless        bool   `json:"lossless,omitempty"`
	ContentHash     string `json:"contentHash,omitempty"`
}

// IngestOptions control batch-wide behavior.
type IngestOptions struct {
	AutoCreateRelease  bool `json:"autoCreateRelease"`
	PublishImmediately bool `json:"publishImmediately"`
	DeferAudioUpload   bool `json:"deferAudioUpload"`
}

// DefaultIngestOptions returns the option defaults for a batch.
func DefaultIngestOptions() IngestOptions {
	return IngestOptions{
		AutoCreateRelease:  true,
		PublishImmediately: false,
		DeferAudioUpload:   false,
	}
}

// ItemResult is the outcome for one descriptor, preserving its input index.
type ItemResult struct {
	Index          int    `json:"index"`
	Success        bool   `json:"success"`
	TrackID        string `json:"trackId,omitempty"`
	Title          string `json:"title"`
	Error          string `json:"error,omitempty"`
	ReleaseID      string `json:"releaseId,omitempty"`
	ReleaseTitle   string `json:"releaseTitle,omitempty"`
	ReleaseCreated bool   `json:"releaseCreated,omitempty"`
}

// BatchResult is the aggregate outcome of one ingestion call. Success is true
// only when every item succeeded. Error carries batch-level failures
// (rejected batch or shared-resource pre-pass failure); per-item failures ride
// in Results.
type BatchResult struct {
	Success      bool         `json:"success"`
	SuccessCount int          `json:"successCount"`
	FailedCount  int          `json:"failedCount"`
	Results      []ItemResult `json:"results"`
	Error        string       `json:"error,omitempty"`
}
