package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookhub-backend/internal/domains/library"
	"bookhub-backend/internal/shared/response"
)

type LibraryHandler struct {
	service library.Service
}

func NewLibraryHandler(service library.Service) *LibraryHandler {
	return &LibraryHandler{service: service}
}

// ListLibraries handles GET /api/library/libraries
func (h *LibraryHandler) ListLibraries(c *gin.Context) {
	libraries, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, libraries)
}

// GetLibrary handles GET /api/library/libraries/:id
func (h *LibraryHandler) GetLibrary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid library ID")
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, l)
}

// CreateLibrary handles POST /api/library/libraries
func (h *LibraryHandler) CreateLibrary(c *gin.Context) {
	var req library.CreateLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// UpdateLibrary handles PUT /api/library/libraries/:id
func (h *LibraryHandler) UpdateLibrary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid library ID")
		return
	}

	var req library.UpdateLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// DeleteLibrary handles DELETE /api/library/libraries/:id
func (h *LibraryHandler) DeleteLibrary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid library ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBooks handles GET /api/library/libraries/:id/books
func (h *LibraryHandler) ListBooks(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid library ID")
		return
	}

	books, err := h.service.GetBooks(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, books)
}

// AddBook handles POST /api/library/libraries/:id/books/:bookID
func (h *LibraryHandler) AddBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid library ID")
		return
	}

	bookID, err := uuid.Parse(c.Param("bookID"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	if err := h.service.AddBook(c.Request.Context(), id, bookID); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"added": true})
}

// RemoveBook handles DELETE /api/library/libraries/:id/books/:bookID
func (h *LibraryHandler) RemoveBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid library ID")
		return
	}

	bookID, err := uuid.Parse(c.Param("bookID"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	if err := h.service.RemoveBook(c.Request.Context(), id, bookID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignLibrarian handles PUT /api/library/libraries/:id/librarian
func (h *LibraryHandler) AssignLibrarian(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid library ID")
		return
	}

	var req library.AssignLibrarianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	librarian, err := h.service.AssignLibrarian(c.Request.Context(), id, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, librarian)
}

func (h *LibraryHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
		return
	}

	response.ErrorResponse(c, library.ToHTTPStatus(err), library.ToErrorCode(err), err.Error())
}
