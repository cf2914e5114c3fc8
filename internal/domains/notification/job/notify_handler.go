package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"bookhub-backend/internal/domains/notification"
	"bookhub-backend/internal/shared"
	"bookhub-backend/pkg/logger"
)

// NotifyHandler materializes queued social events (follow, like,
// comment) into notification rows. One handler serves all three task
// types since the payload shape is identical.
type NotifyHandler struct {
	service notification.Service
}

func NewNotifyHandler(service notification.Service) *NotifyHandler {
	return &NotifyHandler{service: service}
}

func (h *NotifyHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.NotificationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal notification payload: %w", err)
	}

	created, err := h.service.CreateFromPayload(ctx, payload)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	logger.Debug().
		Str("notification_id", created.ID.String()).
		Str("recipient_id", payload.RecipientID.String()).
		Str("verb", payload.Verb).
		Msg("Notification created")

	return nil
}
