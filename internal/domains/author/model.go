package author

import (
	"time"

	"github.com/google/uuid"
)

// Author is the domain entity, one author owns many books.
// Deleting an author cascades to their books (FK ON DELETE CASCADE).
type Author struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"` // Required, max 100 chars

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BookSummary is the nested book representation embedded in the author
// detail response. Scanned directly from the books table by the author
// repository so the author package does not depend on the book domain.
type BookSummary struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	PublicationYear int       `json:"publication_year" db:"publication_year"`
}
