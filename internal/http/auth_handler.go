package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "activity-tracker.com/activity-tracker/internal/data_models"
	apperrors "activity-tracker.com/activity-tracker/internal/errors"
	middleware "activity-tracker.com/activity-tracker/internal/http/middlewares"
	"activity-tracker.com/activity-tracker/internal/services"
)

func (h *Handler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}

	session, err := h.authService.Signup(c.Request().Context(), req.Email, req.Name, req.Password)
	if err != nil {
		return h.fail(c, err, "Signup failed")
	}

	h.setSessionCookie(c, session.Token)
	return c.JSON(http.StatusOK, session)
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.fail(c, err, "Login failed")
	}

	h.setSessionCookie(c, session.Token)
	return c.JSON(http.StatusOK, session)
}

func (h *Handler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out"})
}

// Session reports the user behind the auth cookie. An absent or undecodable
// cookie yields 401 with a null body.
func (h *Handler) Session(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookie)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusUnauthorized, nil)
	}

	userID, err := services.DecodeSessionToken(cookie.Value)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, nil)
	}

	return c.JSON(http.StatusOK, services.Session{UserID: userID, Token: cookie.Value})
}

func (h *Handler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
