package accesscontrol

import "errors"

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrAlreadyMember = errors.New("user is already a member of this group")
	ErrNotMember     = errors.New("user is not a member of this group")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrGroupNotFound:
		return "GROUP_NOT_FOUND"
	case ErrUserNotFound:
		return "USER_NOT_FOUND"
	case ErrAlreadyMember:
		return "ALREADY_MEMBER"
	case ErrNotMember:
		return "NOT_MEMBER"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrGroupNotFound, ErrUserNotFound:
		return 404
	case ErrAlreadyMember, ErrNotMember:
		return 400
	default:
		return 500
	}
}
