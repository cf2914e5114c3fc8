package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines User data access operations
type Repository interface {
	// Create inserts a new user.
	// Errors: ErrUsernameTaken, ErrEmailTaken on unique violations.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByID returns a user with follower/following counts resolved.
	// Errors: ErrUserNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByUsername is used by login; counts are not resolved.
	// Errors: ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByID is a lightweight existence check
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// UpdateProfile persists email/bio changes.
	// Errors: ErrUserNotFound, ErrEmailTaken.
	UpdateProfile(ctx context.Context, user *User) (*User, error)

	// SetAvatarURL updates only the avatar URL; used by the API after
	// upload and by the worker after thumbnail generation.
	SetAvatarURL(ctx context.Context, userID uuid.UUID, url string) error

	// Follow creates a follow edge.
	// Errors: ErrAlreadyFollowing, ErrUserNotFound.
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// Unfollow removes a follow edge.
	// Errors: ErrNotFollowing.
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// IsFollowing reports whether the edge follower->followee exists
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// GetFollowers lists users following the given user
	GetFollowers(ctx context.Context, userID uuid.UUID) ([]FollowerResponse, error)

	// GetFollowing lists users the given user follows
	GetFollowing(ctx context.Context, userID uuid.UUID) ([]FollowerResponse, error)

	// CreateRefreshSession records an issued refresh token hash
	CreateRefreshSession(ctx context.Context, session *RefreshSession) error

	// DeleteRefreshSession revokes a live session by its token hash.
	// Errors: ErrInvalidRefreshToken when no live session matches.
	DeleteRefreshSession(ctx context.Context, tokenHash string) error

	// DeleteExpiredSessions purges refresh sessions past their expiry,
	// returning the number of rows removed. Called by the nightly job.
	DeleteExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}
