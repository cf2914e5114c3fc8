package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account entity. Authentication is username + password,
// social graph edges (follows) hang off this table.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"` // Unique, max 30 chars
	Email        string    `json:"email" db:"email"`       // Unique
	PasswordHash string    `json:"-" db:"password_hash"`   // bcrypt
	Bio          string    `json:"bio" db:"bio"`
	AvatarURL    *string   `json:"avatar_url" db:"avatar_url"`

	// Denormalized counts from the follows table, populated on reads
	FollowerCount  int64 `json:"follower_count" db:"follower_count"`
	FollowingCount int64 `json:"following_count" db:"following_count"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RefreshSession tracks issued refresh tokens so they can be revoked
// and expired ones purged by the nightly cleanup job.
// Only the SHA-256 hash of the token is stored.
type RefreshSession struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	TokenHash string    `json:"-" db:"token_hash"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
