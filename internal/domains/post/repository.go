package post

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines Post data access operations
type Repository interface {
	// Create inserts a new post
	Create(ctx context.Context, post *Post) (*Post, error)

	// GetByID returns a post with author and counts resolved.
	// Errors: ErrPostNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)

	// GetAll lists posts newest first with optional search/author/tag
	// filters, plus the total count.
	GetAll(ctx context.Context, filter PostFilter) ([]Post, int64, error)

	// GetFeed lists posts by users the given user follows, newest first
	GetFeed(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Post, int64, error)

	// Update persists title/content/tags changes.
	// Errors: ErrPostNotFound.
	Update(ctx context.Context, post *Post) (*Post, error)

	// Delete removes a post.
	// Errors: ErrPostNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// Like records a like.
	// Errors: ErrAlreadyLiked, ErrPostNotFound.
	Like(ctx context.Context, postID, userID uuid.UUID) error

	// Unlike removes a like.
	// Errors: ErrNotLiked.
	Unlike(ctx context.Context, postID, userID uuid.UUID) error
}
