package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	jobmetrics "github.com/glamour-aluminium/catalogue/internal/jobs"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskMediaCleanup is the task type for removing orphaned image blobs.
	TaskMediaCleanup = "media:cleanup"
)

// MediaCleanupPayload names the blob to remove.
type MediaCleanupPayload struct {
	Key string `json:"key"`
}

// NewMediaCleanupTask constructs an Asynq task.
func NewMediaCleanupTask(payload MediaCleanupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskMediaCleanup, data), nil
}

// BlobRemover deletes a stored object by key.
type BlobRemover interface {
	Delete(ctx context.Context, key string) error
}

// CleanupHandler processes TaskMediaCleanup tasks.
type CleanupHandler struct {
	media   BlobRemover
	metrics *jobmetrics.Metrics
	logger  *slog.Logger
}

// NewCleanupHandler constructs a CleanupHandler. metrics may be nil.
func NewCleanupHandler(media BlobRemover, metrics *jobmetrics.Metrics, logger *slog.Logger) *CleanupHandler {
	return &CleanupHandler{media: media, metrics: metrics, logger: logger}
}

// HandleMediaCleanup removes the named blob. Failures other than a bad
// payload are returned so Asynq retries them.
func (h *CleanupHandler) HandleMediaCleanup(ctx context.Context, t *asynq.Task) error {
	tracker := h.metrics.Track(TaskMediaCleanup)
	var payload MediaCleanupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return tracker.End(asynq.SkipRetry)
	}
	if payload.Key == "" {
		return tracker.End(asynq.SkipRetry)
	}
	if err := h.media.Delete(ctx, payload.Key); err != nil {
		h.logger.Warn("media cleanup", slog.String("key", payload.Key), slog.Any("error", err))
		return tracker.End(err)
	}
	h.logger.Info("media cleanup done", slog.String("key", payload.Key))
	return tracker.End(nil)
}
