package notification

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines Notification data access operations
type Repository interface {
	// Create inserts a notification row; called from the worker
	Create(ctx context.Context, n *Notification) (*Notification, error)

	// GetByRecipient lists a user's notifications newest first,
	// plus the total count
	GetByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]Notification, int64, error)

	// CountUnread returns the number of unread notifications
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// MarkRead marks a single notification as read; scoped to the
	// recipient so users cannot touch each other's rows.
	// Errors: ErrNotificationNotFound.
	MarkRead(ctx context.Context, id, recipientID uuid.UUID) error

	// MarkAllRead marks every unread notification for the recipient,
	// returning the number of rows updated
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
