package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookhub-backend/internal/domains/author"
	"bookhub-backend/internal/shared/response"
	"bookhub-backend/internal/shared/utils"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(service author.Service) *AuthorHandler {
	return &AuthorHandler{service: service}
}

// ListAuthors handles GET /api/authors
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	var filter author.AuthorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	filter.Limit, filter.Offset = utils.ParsePagination(c)

	authors, total, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	items := make([]author.AuthorResponse, 0, len(authors))
	for _, a := range authors {
		items = append(items, a.ToResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetAuthor handles GET /api/authors/:id - returns the author with nested books
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author ID")
		return
	}

	detail, err := h.service.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// CreateAuthor handles POST /api/authors
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created.ToResponse())
}

// UpdateAuthor handles PUT /api/authors/:id
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author ID")
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated.ToResponse())
}

// DeleteAuthor handles DELETE /api/authors/:id
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthorHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
		return
	}

	response.ErrorResponse(c, author.ToHTTPStatus(err), author.ToErrorCode(err), err.Error())
}
