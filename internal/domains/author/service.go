package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the Author domain
type Service interface {
	// Create validates the request and inserts the author
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID retrieves a single author
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetDetail retrieves an author together with their books,
	// the nested representation of GET /api/authors/:id
	GetDetail(ctx context.Context, id uuid.UUID) (*AuthorDetailResponse, error)

	// GetAll lists authors with filtering and pagination.
	// Defaults: sort by name ascending, limit 20.
	GetAll(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Update renames an author
	// Errors: ErrAuthorNotFound
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes an author and cascades to their books
	// Errors: ErrAuthorNotFound
	Delete(ctx context.Context, id uuid.UUID) error
}
