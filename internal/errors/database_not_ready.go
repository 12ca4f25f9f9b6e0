package errors

import "net/http"

var ErrDatabaseNotReady = &Exception{
	Message:    "Database tables may not be set up. Please run: activity-tracker migrate",
	StatusCode: http.StatusInternalServerError,
}
