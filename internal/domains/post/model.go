package post

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Post is a social post. Only the author may modify or delete it.
type Post struct {
	ID       uuid.UUID      `json:"id" db:"id"`
	AuthorID uuid.UUID      `json:"author_id" db:"author_id"`
	Title    string         `json:"title" db:"title"` // Required, max 200 chars
	Content  string         `json:"content" db:"content"`
	Tags     pq.StringArray `json:"tags" db:"tags"` // text[] column

	// Denormalized on reads
	AuthorUsername string `json:"author_username,omitempty" db:"author_username"`
	LikeCount      int64  `json:"like_count" db:"like_count"`
	CommentCount   int64  `json:"comment_count" db:"comment_count"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
