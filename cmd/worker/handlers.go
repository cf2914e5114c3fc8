package main

import (
	"github.com/hibiken/asynq"

	notificationJob "bookhub-backend/internal/domains/notification/job"
	userJob "bookhub-backend/internal/domains/user/job"
	"bookhub-backend/internal/shared"
	"bookhub-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Social notification fan-out
	notify *notificationJob.NotifyHandler

	// Avatar processing
	processAvatar *userJob.ProcessAvatarHandler

	// Maintenance
	cleanupSessions *userJob.CleanupSessionsHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		notify:          notificationJob.NewNotifyHandler(c.NotificationService),
		processAvatar:   userJob.NewProcessAvatarHandler(c.UserRepo, c.Storage),
		cleanupSessions: userJob.NewCleanupSessionsHandler(c.UserRepo),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Social notifications - one handler for all three verbs
	mux.HandleFunc(shared.TypeNotifyFollow, h.notify.ProcessTask)
	mux.HandleFunc(shared.TypeNotifyLike, h.notify.ProcessTask)
	mux.HandleFunc(shared.TypeNotifyComment, h.notify.ProcessTask)

	// Avatar processing
	mux.HandleFunc(shared.TypeProcessAvatar, h.processAvatar.ProcessTask)

	// Maintenance
	mux.HandleFunc(shared.TypeCleanupSessions, h.cleanupSessions.ProcessTask)
}
