package handlers

import (
	"melodex/internal/app"
	"melodex/internal/types"
	"melodex/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

type IngestHandler struct {
	app    app.App
	router fiber.Router
	log    logger.Logger
}

func NewIngestHandler(app app.App, router fiber.Router) *IngestHandler {
	return &IngestHandler{
		app:    app,
		router: router,
		log:    logger.New("ingestHandler"),
	}
}

func (h *IngestHandler) Register() {
	tracks := h.router.Group("/tracks")
	tracks.Post("/batch", h.ingestBatch)
}

// ingestBatchRequest is the wire shape for one batch submission. Options are
// optional; omitted options take their defaults.
type ingestBatchRequest struct {
	Tracks  []types.TrackDescriptor `json:"tracks"`
	Options *types.IngestOptions    `json:"options,omitempty"`
}

func (h *IngestHandler) ingestBatch(c *fiber.Ctx) error {
	log := h.log.Function("ingestBatch").TraceFromContext(c.UserContext())

	var request ingestBatchRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse batch request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	options := types.DefaultIngestOptions()
	if request.Options != nil {
		options = *request.Options
	}

	result := h.app.IngestService.IngestBatch(c.UserContext(), request.Tracks, options)

	return c.Status(statusForBatchResult(result)).JSON(result)
}

// statusForBatchResult maps a batch outcome to its HTTP status. Rejections and
// pre-pass failures carry a batch-level error and no per-item results;
// everything else is a processed batch, fully or partially successful.
func statusForBatchResult(result types.BatchResult) int {
	switch {
	case result.Error != "" && len(result.Results) == 0:
		return fiber.StatusBadRequest
	case result.Success:
		return fiber.StatusCreated
	default:
		return fiber.StatusMultiStatus
	}
}
