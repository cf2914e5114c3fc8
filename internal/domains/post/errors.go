package post

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNotOwner     = errors.New("you do not own this post")
	ErrAlreadyLiked = errors.New("you have already liked this post")
	ErrNotLiked     = errors.New("you have not liked this post")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrPostNotFound:
		return "POST_NOT_FOUND"
	case ErrNotOwner:
		return "NOT_OWNER"
	case ErrAlreadyLiked:
		return "ALREADY_LIKED"
	case ErrNotLiked:
		return "NOT_LIKED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrPostNotFound:
		return 404
	case ErrNotOwner:
		return 403
	case ErrAlreadyLiked, ErrNotLiked:
		return 400
	default:
		return 500
	}
}
