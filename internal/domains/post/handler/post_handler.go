package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookhub-backend/internal/domains/post"
	"bookhub-backend/internal/shared/middleware"
	"bookhub-backend/internal/shared/response"
	"bookhub-backend/internal/shared/utils"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(service post.Service) *PostHandler {
	return &PostHandler{service: service}
}

// ListPosts handles GET /api/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	var filter post.PostFilter
	filter.Search = c.Query("search")
	filter.Tag = c.Query("tag")
	if v := c.Query("author"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid author ID")
			return
		}
		filter.Author = &id
	}
	filter.Limit, filter.Offset = utils.ParsePagination(c)

	posts, total, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, toResponses(posts), &response.Meta{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetFeed handles GET /api/feed - posts from followed users, newest first
func (h *PostHandler) GetFeed(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	limit, offset := utils.ParsePagination(c)

	posts, total, err := h.service.GetFeed(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, toResponses(posts), &response.Meta{
		Total:  total,
		Limit:  limit,
		Offset: offset,
	})
}

// GetPost handles GET /api/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p.ToResponse())
}

// CreatePost handles POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req post.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// UpdatePost handles PUT/PATCH /api/posts/:id - author only
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	var req post.UpdatePostRequest
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

// DeletePost handles DELETE /api/posts/:id - author only
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LikePost handles POST /api/posts/:id/like
func (h *PostHandler) LikePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	if err := h.service.Like(c.Request.Context(), id, userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"liked": true})
}

// UnlikePost handles DELETE /api/posts/:id/like
func (h *PostHandler) UnlikePost(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid post ID")
		return
	}

	if err := h.service.Unlike(c.Request.Context(), id, userID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"liked": false})
}

func toResponses(posts []post.Post) []post.PostResponse {
	items := make([]post.PostResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, p.ToResponse())
	}
	return items
}

func (h *PostHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
		return
	}

	response.ErrorResponse(c, post.ToHTTPStatus(err), post.ToErrorCode(err), err.Error())
}
