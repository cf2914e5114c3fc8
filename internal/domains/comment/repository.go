package comment

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines Comment data access operations
type Repository interface {
	// Create inserts a new comment
	Create(ctx context.Context, comment *Comment) (*Comment, error)

	// GetByID returns a comment with the author's username resolved.
	// Errors: ErrCommentNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Comment, error)

	// GetByPost lists a post's comments oldest first, plus the total count
	GetByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]Comment, int64, error)

	// Update persists a content change.
	// Errors: ErrCommentNotFound.
	Update(ctx context.Context, comment *Comment) (*Comment, error)

	// Delete removes a comment.
	// Errors: ErrCommentNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
