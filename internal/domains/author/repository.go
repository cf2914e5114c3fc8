package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines Author data access operations.
// Abstracted behind an interface for testing with fakes.
type Repository interface {
	// Create inserts a new author and returns it with ID and timestamps
	Create(ctx context.Context, author *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound if the author does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll retrieves a paginated list with optional name search and sorting.
	// Returns authors plus the total count for pagination.
	GetAll(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Update renames an author.
	// Returns ErrAuthorNotFound if the author does not exist.
	Update(ctx context.Context, author *Author) (*Author, error)

	// Delete removes an author; their books go with them (cascade).
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID is a lightweight existence check used by the book service
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// GetBooks returns the nested book summaries for the detail response
	GetBooks(ctx context.Context, authorID uuid.UUID) ([]BookSummary, error)
}
