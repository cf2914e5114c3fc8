package library

import "errors"

var (
	ErrLibraryNotFound  = errors.New("library not found")
	ErrBookNotFound     = errors.New("book not found")
	ErrBookNotInLibrary = errors.New("book is not in this library")
	ErrBookAlreadyAdded = errors.New("book is already in this library")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrLibraryNotFound:
		return "LIBRARY_NOT_FOUND"
	case ErrBookNotFound:
		return "BOOK_NOT_FOUND"
	case ErrBookNotInLibrary:
		return "BOOK_NOT_IN_LIBRARY"
	case ErrBookAlreadyAdded:
		return "BOOK_ALREADY_ADDED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrLibraryNotFound, ErrBookNotFound:
		return 404
	case ErrBookNotInLibrary, ErrBookAlreadyAdded:
		return 400
	default:
		return 500
	}
}
