package middleware

import (
	"github.com/labstack/echo/v4"

	"activity-tracker.com/activity-tracker/internal/services"
)

const (
	SessionCookie  = "authToken"
	sessionUserKey = "sessionUserID"
)

// Session decodes the auth cookie, when present, and records the user id on
// the request context. It never rejects a request.
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
				if userID, err := services.DecodeSessionToken(cookie.Value); err == nil {
					c.Set(sessionUserKey, userID)
				}
			}
			return next(c)
		}
	}
}

// SessionUserID returns the user id decoded by Session, or "".
func SessionUserID(c echo.Context) string {
	userID, _ := c.Get(sessionUserKey).(string)
	return userID
}
