package library

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines Library data access operations
type Repository interface {
	// Create inserts a new library
	Create(ctx context.Context, library *Library) (*Library, error)

	// GetByID returns a library with its librarian and book count.
	// Errors: ErrLibraryNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Library, error)

	// GetAll lists all libraries with librarians and book counts
	GetAll(ctx context.Context) ([]Library, error)

	// Update persists name/location changes.
	// Errors: ErrLibraryNotFound.
	Update(ctx context.Context, library *Library) (*Library, error)

	// Delete removes a library; membership rows cascade.
	// Errors: ErrLibraryNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddBook places a catalog book in the library.
	// Errors: ErrBookAlreadyAdded, ErrBookNotFound, ErrLibraryNotFound.
	AddBook(ctx context.Context, libraryID, bookID uuid.UUID) error

	// RemoveBook takes a book out of the library.
	// Errors: ErrBookNotInLibrary.
	RemoveBook(ctx context.Context, libraryID, bookID uuid.UUID) error

	// GetBooks lists the library's books with author names resolved
	GetBooks(ctx context.Context, libraryID uuid.UUID) ([]LibraryBook, error)

	// AssignLibrarian sets or replaces the library's librarian
	AssignLibrarian(ctx context.Context, libraryID uuid.UUID, name string) (*Librarian, error)
}
