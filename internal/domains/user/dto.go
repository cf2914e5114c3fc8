package user

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
	MinPasswordLength = 8
	MaxBioLength      = 500
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// RegisterRequest - POST /api/auth/register
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Bio      string `json:"bio"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(MinUsernameLength, MaxUsernameLength),
			validation.Match(usernamePattern).Error("username may only contain letters, digits and underscores"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("must be a valid email address"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(MinPasswordLength, 0).Error("password must be at least 8 characters"),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength),
		),
	)
}

// LoginRequest - POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// RefreshRequest - POST /api/auth/refresh and /api/auth/logout
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required.Error("refresh token is required")),
	)
}

// UpdateProfileRequest - PATCH /api/users/me
type UpdateProfileRequest struct {
	Email *string `json:"email"`
	Bio   *string `json:"bio"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.NilOrNotEmpty.Error("email cannot be empty"),
			is.Email.Error("must be a valid email address"),
		),
		validation.Field(&r.Bio,
			validation.Length(0, MaxBioLength),
		),
	)
}

// UserResponse - public profile representation
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Bio            string    `json:"bio"`
	AvatarURL      *string   `json:"avatar_url"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// FollowerResponse - entry in follower/following lists
type FollowerResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	AvatarURL *string   `json:"avatar_url"`
}

// AuthResponse - returned by register and login
type AuthResponse struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// ToResponse converts User entity to UserResponse DTO
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Bio:            u.Bio,
		AvatarURL:      u.AvatarURL,
		FollowerCount:  u.FollowerCount,
		FollowingCount: u.FollowingCount,
		CreatedAt:      u.CreatedAt,
	}
}
