package library

import (
	"time"

	"github.com/google/uuid"
)

// Library holds a collection of catalog books.
// All library routes are gated by group permissions.
type Library struct {
	ID       uuid.UUID `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"` // Required, max 100 chars
	Location string    `json:"location" db:"location"`

	// Librarian is the one-to-one manager, nil when unassigned
	Librarian *Librarian `json:"librarian,omitempty"`

	BookCount int64 `json:"book_count" db:"book_count"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Librarian manages exactly one library
type Librarian struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	LibraryID uuid.UUID `json:"library_id" db:"library_id"` // Unique
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// LibraryBook is a catalog book held by a library
type LibraryBook struct {
	BookID          uuid.UUID `json:"book_id" db:"book_id"`
	Title           string    `json:"title" db:"title"`
	PublicationYear int       `json:"publication_year" db:"publication_year"`
	AuthorName      string    `json:"author_name" db:"author_name"`
	AddedAt         time.Time `json:"added_at" db:"added_at"`
}
