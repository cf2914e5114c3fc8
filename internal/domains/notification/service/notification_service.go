package service

import (
	"context"

	"github.com/google/uuid"

	"bookhub-backend/internal/domains/notification"
	"bookhub-backend/internal/shared"
	"bookhub-backend/internal/shared/utils"
)

type notificationService struct {
	repo notification.Repository
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo notification.Repository) notification.Service {
	return &notificationService{repo: repo}
}

func (s *notificationService) CreateFromPayload(ctx context.Context, payload shared.NotificationPayload) (*notification.Notification, error) {
	return s.repo.Create(ctx, &notification.Notification{
		RecipientID: payload.RecipientID,
		ActorID:     payload.ActorID,
		Verb:        payload.Verb,
		TargetType:  payload.TargetType,
		TargetID:    payload.TargetID,
	})
}

func (s *notificationService) GetForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]notification.Notification, int64, error) {
	if limit <= 0 {
		limit = utils.DefaultLimit
	}
	if limit > utils.MaxLimit {
		limit = utils.MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.GetByRecipient(ctx, userID, limit, offset)
}

func (s *notificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	return s.repo.MarkAllRead(ctx, userID)
}
