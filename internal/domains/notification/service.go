package notification

import (
	"context"

	"github.com/google/uuid"

	"bookhub-backend/internal/shared"
)

// Service defines business logic for notifications
type Service interface {
	// CreateFromPayload persists a queued notification task; worker-only
	CreateFromPayload(ctx context.Context, payload shared.NotificationPayload) (*Notification, error)

	// GetForUser lists the user's notifications newest first
	GetForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Notification, int64, error)

	// CountUnread returns the unread badge count
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks one of the user's notifications as read
	// Errors: ErrNotificationNotFound
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead marks all of the user's notifications as read
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
