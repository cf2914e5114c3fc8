package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines Book data access operations
type Repository interface {
	// Create inserts a new book.
	// Returns ErrAuthorNotFound when the author FK is violated.
	Create(ctx context.Context, book *Book) (*Book, error)

	// GetByID returns a book with its author name resolved.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetAll retrieves a filtered, ordered, paginated list plus total count
	GetAll(ctx context.Context, filter BookFilter) ([]Book, int64, error)

	// Update applies a partial update.
	// Errors: ErrBookNotFound, ErrAuthorNotFound.
	Update(ctx context.Context, book *Book) (*Book, error)

	// Delete removes a book.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
