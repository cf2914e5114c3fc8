package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookhub-backend/internal/domains/notification"
	"bookhub-backend/internal/shared/middleware"
	"bookhub-backend/internal/shared/response"
	"bookhub-backend/internal/shared/utils"
)

type NotificationHandler struct {
	service notification.Service
}

func NewNotificationHandler(service notification.Service) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications handles GET /api/notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	limit, offset := utils.ParsePagination(c)

	notifications, total, err := h.service.GetForUser(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, notifications, &response.Meta{
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// UnreadCount handles GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	count, err := h.service.CountUnread(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"unread": count})
}

// MarkRead handles POST /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid notification ID")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id, userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"read": true})
}

// MarkAllRead handles POST /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	updated, err := h.service.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

func (h *NotificationHandler) handleError(c *gin.Context, err error) {
	response.ErrorResponse(c, notification.ToHTTPStatus(err), notification.ToErrorCode(err), err.Error())
}
