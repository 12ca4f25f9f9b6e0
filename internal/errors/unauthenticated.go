package errors

import "net/http"

var ErrUnauthenticated = &Exception{
	Message:    "not authenticated",
	StatusCode: http.StatusUnauthorized,
}

var ErrInvalidCredentials = &Exception{
	Message:    "invalid email or password",
	StatusCode: http.StatusUnauthorized,
}
