package comment

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotOwner        = errors.New("you do not own this comment")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrCommentNotFound:
		return "COMMENT_NOT_FOUND"
	case ErrNotOwner:
		return "NOT_OWNER"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrCommentNotFound:
		return 404
	case ErrNotOwner:
		return 403
	default:
		return 500
	}
}
