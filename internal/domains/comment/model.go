package comment

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to a post. Only its author may modify or delete it.
type Comment struct {
	ID       uuid.UUID `json:"id" db:"id"`
	PostID   uuid.UUID `json:"post_id" db:"post_id"`
	AuthorID uuid.UUID `json:"author_id" db:"author_id"`
	Content  string    `json:"content" db:"content"`

	AuthorUsername string `json:"author_username,omitempty" db:"author_username"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
