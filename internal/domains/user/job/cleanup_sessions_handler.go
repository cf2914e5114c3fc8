package job

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"bookhub-backend/internal/domains/user"
	"bookhub-backend/pkg/logger"
)

// CleanupSessionsHandler purges expired refresh sessions.
// Scheduled nightly; safe to run concurrently.
type CleanupSessionsHandler struct {
	repo user.Repository
}

func NewCleanupSessionsHandler(repo user.Repository) *CleanupSessionsHandler {
	return &CleanupSessionsHandler{repo: repo}
}

func (h *CleanupSessionsHandler) ProcessTask(ctx context.Context, _ *asynq.Task) error {
	deleted, err := h.repo.DeleteExpiredSessions(ctx, time.Now())
	if err != nil {
		return err
	}

	logger.Info().Int64("deleted", deleted).Msg("Expired refresh sessions purged")
	return nil
}
