package book

import (
	"time"

	"github.com/google/uuid"
)

// Book is the catalog entity. Every book belongs to exactly one author.
type Book struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"` // Required, max 200 chars
	PublicationYear int       `json:"publication_year" db:"publication_year"`
	AuthorID        uuid.UUID `json:"author_id" db:"author_id"`

	// AuthorName is denormalized from the authors join for list/detail reads
	AuthorName string `json:"author_name,omitempty" db:"author_name"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
