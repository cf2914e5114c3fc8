package comment

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the Comment domain
type Service interface {
	// Create adds a comment to a post and notifies the post's author.
	// Errors: validation.Errors, post.ErrPostNotFound.
	Create(ctx context.Context, postID, authorID uuid.UUID, req *CreateCommentRequest) (*Comment, error)

	// GetByPost lists a post's comments oldest first.
	// Errors: post.ErrPostNotFound.
	GetByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]Comment, int64, error)

	// Update edits a comment; only the author may edit.
	// Errors: validation.Errors, ErrCommentNotFound, ErrNotOwner.
	Update(ctx context.Context, id, userID uuid.UUID, req *UpdateCommentRequest) (*Comment, error)

	// Delete removes a comment; only the author may delete.
	// Errors: ErrCommentNotFound, ErrNotOwner.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
