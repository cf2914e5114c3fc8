package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookhub-backend/internal/domains/book"
	"bookhub-backend/internal/shared/response"
	"bookhub-backend/internal/shared/utils"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{service: service}
}

// parseFilter reads the list/export query params:
// author, publication_year, search, ordering, limit, offset
func parseFilter(c *gin.Context) (book.BookFilter, error) {
	var filter book.BookFilter

	if v := c.Query("author"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, fmt.Errorf("invalid author id")
		}
		filter.AuthorID = &id
	}
	if v := c.Query("publication_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return filter, fmt.Errorf("invalid publication year")
		}
		filter.PublicationYear = &year
	}
	filter.Search = c.Query("search")
	filter.Ordering = c.Query("ordering")
	filter.Limit, filter.Offset = utils.ParsePagination(c)

	return filter, nil
}

// ListBooks handles GET /api/books
func (h *BookHandler) ListBooks(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	books, total, err := h.service.GetAll(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	items := make([]book.BookResponse, 0, len(books))
	for _, b := range books {
		items = append(items, b.ToResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, items, &response.Meta{
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	})
}

// GetBook handles GET /api/books/:id
func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, b.ToResponse())
}

// CreateBook handles POST /api/books
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req book.CreateBookRequest
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

// UpdateBook handles PUT/PATCH /api/books/:id
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	var req book.UpdateBookRequest
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

// DeleteBook handles DELETE /api/books/:id
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportBooks handles GET /api/books/export - streams the filtered
// catalog as an xlsx attachment
func (h *BookHandler) ExportBooks(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	f, err := h.service.Export(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("books_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		response.InternalServerError(c, "Failed to write export")
		return
	}
}

func (h *BookHandler) handleError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErrs)
		return
	}

	response.ErrorResponse(c, book.ToHTTPStatus(err), book.ToErrorCode(err), err.Error())
}
