package book

import (
	"context"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// Service defines business logic for the Book domain
type Service interface {
	// Create validates the request (title, non-future year) and checks
	// the author exists before inserting.
	// Errors: validation.Errors, ErrAuthorNotFound.
	Create(ctx context.Context, req *CreateBookRequest) (*Book, error)

	// GetByID retrieves a single book
	// Errors: ErrBookNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetAll lists books with filtering, search, ordering and pagination
	GetAll(ctx context.Context, filter BookFilter) ([]Book, int64, error)

	// Update applies a partial update to a book
	// Errors: validation.Errors, ErrBookNotFound, ErrAuthorNotFound
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*Book, error)

	// Delete removes a book
	// Errors: ErrBookNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	// Export builds an xlsx workbook of the filtered catalog
	Export(ctx context.Context, filter BookFilter) (*excelize.File, error)
}
