package book

import "errors"

var (
	ErrBookNotFound   = errors.New("book not found")
	ErrAuthorNotFound = errors.New("author does not exist")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrBookNotFound:
		return "BOOK_NOT_FOUND"
	case ErrAuthorNotFound:
		return "AUTHOR_NOT_FOUND"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code.
// A missing author on create/update is a client error, not a 404.
func ToHTTPStatus(err error) int {
	switch err {
	case ErrBookNotFound:
		return 404
	case ErrAuthorNotFound:
		return 400
	default:
		return 500
	}
}
