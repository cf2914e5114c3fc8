package post

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for the Post domain.
// Mutations enforce ownership; reads are public.
type Service interface {
	// Create validates and inserts a post for the author
	Create(ctx context.Context, authorID uuid.UUID, req *CreatePostRequest) (*Post, error)

	// GetByID retrieves a single post
	// Errors: ErrPostNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// GetAll lists posts with filtering and pagination, newest first
	GetAll(ctx context.Context, filter PostFilter) ([]Post, int64, error)

	// GetFeed lists posts from users the caller follows, newest first
	GetFeed(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Post, int64, error)

	// Update applies a partial update; only the author may update.
	// Errors: validation.Errors, ErrPostNotFound, ErrNotOwner.
	Update(ctx context.Context, id, userID uuid.UUID, req *UpdatePostRequest) (*Post, error)

	// Delete removes a post; only the author may delete.
	// Errors: ErrPostNotFound, ErrNotOwner.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// Like records a like and notifies the post author.
	// Errors: ErrPostNotFound, ErrAlreadyLiked.
	Like(ctx context.Context, postID, userID uuid.UUID) error

	// Unlike removes a like.
	// Errors: ErrPostNotFound, ErrNotLiked.
	Unlike(ctx context.Context, postID, userID uuid.UUID) error
}
