package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrEmailTaken          = errors.New("email is already registered")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrInvalidRefreshToken = errors.New("invalid or revoked refresh token")
	ErrSelfFollow          = errors.New("cannot follow yourself")
	ErrAlreadyFollowing    = errors.New("already following this user")
	ErrNotFollowing        = errors.New("not following this user")
	ErrInvalidAvatar       = errors.New("avatar must be an image")
	ErrAvatarTooLarge      = errors.New("avatar exceeds the maximum size")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrUserNotFound:
		return "USER_NOT_FOUND"
	case ErrUsernameTaken:
		return "USERNAME_TAKEN"
	case ErrEmailTaken:
		return "EMAIL_TAKEN"
	case ErrInvalidCredentials:
		return "INVALID_CREDENTIALS"
	case ErrInvalidRefreshToken:
		return "INVALID_REFRESH_TOKEN"
	case ErrSelfFollow:
		return "SELF_FOLLOW"
	case ErrAlreadyFollowing:
		return "ALREADY_FOLLOWING"
	case ErrNotFollowing:
		return "NOT_FOLLOWING"
	case ErrInvalidAvatar:
		return "INVALID_AVATAR"
	case ErrAvatarTooLarge:
		return "AVATAR_TOO_LARGE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrUserNotFound:
		return 404
	case ErrUsernameTaken, ErrEmailTaken:
		return 409
	case ErrInvalidCredentials, ErrInvalidRefreshToken:
		return 401
	case ErrSelfFollow, ErrAlreadyFollowing, ErrNotFollowing, ErrInvalidAvatar:
		return 400
	case ErrAvatarTooLarge:
		return 413
	default:
		return 500
	}
}
