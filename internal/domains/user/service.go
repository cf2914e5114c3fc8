package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic for accounts and the social graph
type Service interface {
	// Register creates an account and returns tokens plus the profile.
	// Errors: validation.Errors, ErrUsernameTaken, ErrEmailTaken.
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)

	// Login verifies credentials and issues tokens.
	// Errors: ErrInvalidCredentials.
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)

	// Refresh redeems a refresh token for a new token pair. The old
	// session is revoked, so each refresh token works exactly once.
	// Errors: ErrInvalidRefreshToken.
	Refresh(ctx context.Context, req *RefreshRequest) (*AuthResponse, error)

	// Logout revokes the session behind a refresh token.
	// Errors: ErrInvalidRefreshToken.
	Logout(ctx context.Context, req *RefreshRequest) error

	// IsFollowing reports whether followerID follows followeeID
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)

	// GetProfile returns a user's public profile with counts.
	// Errors: ErrUserNotFound.
	GetProfile(ctx context.Context, id uuid.UUID) (*User, error)

	// UpdateProfile applies partial email/bio changes.
	// Errors: validation.Errors, ErrUserNotFound, ErrEmailTaken.
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateProfileRequest) (*User, error)

	// Follow makes followerID follow followeeID and notifies the followee.
	// Errors: ErrSelfFollow, ErrUserNotFound, ErrAlreadyFollowing.
	Follow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// Unfollow removes the edge.
	// Errors: ErrUserNotFound, ErrNotFollowing.
	Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error

	// GetFollowers lists users following the given user
	GetFollowers(ctx context.Context, id uuid.UUID) ([]FollowerResponse, error)

	// GetFollowing lists users the given user follows
	GetFollowing(ctx context.Context, id uuid.UUID) ([]FollowerResponse, error)

	// UploadAvatar stores the original image and schedules thumbnail
	// generation. Returns the URL of the uploaded original.
	// Errors: ErrInvalidAvatar, ErrAvatarTooLarge.
	UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error)
}
