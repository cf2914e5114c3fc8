package notification

import "errors"

var ErrNotificationNotFound = errors.New("notification not found")

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	if err == ErrNotificationNotFound {
		return "NOTIFICATION_NOT_FOUND"
	}
	return "INTERNAL_ERROR"
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	if err == ErrNotificationNotFound {
		return 404
	}
	return 500
}
