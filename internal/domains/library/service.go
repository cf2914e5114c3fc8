package library

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the Library domain.
// Authorization happens in the route layer via permission middleware,
// so the service only enforces data rules.
type Service interface {
	// Create validates and inserts a library
	Create(ctx context.Context, req *CreateLibraryRequest) (*Library, error)

	// GetByID retrieves a single library
	// Errors: ErrLibraryNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Library, error)

	// GetAll lists all libraries
	GetAll(ctx context.Context) ([]Library, error)

	// Update applies partial name/location changes
	// Errors: validation.Errors, ErrLibraryNotFound
	Update(ctx context.Context, id uuid.UUID, req *UpdateLibraryRequest) (*Library, error)

	// Delete removes a library
	// Errors: ErrLibraryNotFound
	Delete(ctx context.Context, id uuid.UUID) error

	// AddBook places a catalog book in the library
	// Errors: ErrLibraryNotFound, ErrBookNotFound, ErrBookAlreadyAdded
	AddBook(ctx context.Context, libraryID, bookID uuid.UUID) error

	// RemoveBook takes a book out of the library
	// Errors: ErrLibraryNotFound, ErrBookNotInLibrary
	RemoveBook(ctx context.Context, libraryID, bookID uuid.UUID) error

	// GetBooks lists the library's holdings
	// Errors: ErrLibraryNotFound
	GetBooks(ctx context.Context, libraryID uuid.UUID) ([]LibraryBook, error)

	// AssignLibrarian sets or replaces the library's librarian
	// Errors: validation.Errors, ErrLibraryNotFound
	AssignLibrarian(ctx context.Context, libraryID uuid.UUID, req *AssignLibrarianRequest) (*Librarian, error)
}
