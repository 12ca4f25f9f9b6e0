package errors

import (
	"errors"
	"net/http"
)

type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// Message returns the client-facing message of the first Exception in err's
// chain, or fallback when there is none.
func Message(err error, fallback string) string {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return fallback
}
