package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookhub-backend/internal/domains/comment"
	"bookhub-backend/internal/domains/post"
	"bookhub-backend/internal/shared/middleware"
	"bookhub-backend/internal/shared/response"
	"bookhub-backend/internal/shared/utils"
)

type CommentHandler struct {
	service comment.Service
}

func NewCommentHandler(service comment.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListComments handles GET /api/posts/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	limit, offset := utils.ParsePagination(c)

	comments, total, err := h.service.GetByPost(c.Request.Context(), postID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	items := make([]comment.CommentResponse, 0, len(comments))
	for _, cm := range comments {
		items = append(items, cm.ToResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// CreateComment handles POST /api/posts/:id/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	var req comment.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), postID, userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// UpdateComment handles PUT /api/comments/:id - author only
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	var req comment.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// DeleteComment handles DELETE /api/comments/:id - author only
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid comment ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
		return
	}

	// Comment operations surface post-domain errors when the parent
	// post is missing
	if errors.Is(err, post.ErrPostNotFound) {
		response.ErrorResponse(c, post.ToHTTPStatus(err), post.ToErrorCode(err), err.Error())
		return
	}

	response.ErrorResponse(c, comment.ToHTTPStatus(err), comment.ToErrorCode(err), err.Error())
}
