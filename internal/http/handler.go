package http

import (
	"net/http"
	"time"

	charmLog "github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	apperrors "activity-tracker.com/activity-tracker/internal/errors"
	middleware "activity-tracker.com/activity-tracker/internal/http/middlewares"
	"activity-tracker.com/activity-tracker/internal/services"
)

type Handler struct {
	activityService *services.ActivityService
	userService     *services.UserService
	projectService  *services.ProjectService
	authService     *services.AuthService
	logger          *charmLog.Logger
	cookieSecure    bool
	sessionMaxAge   time.Duration
}

type HandlerOptions struct {
	CookieSecure  bool
	SessionMaxAge time.Duration
}

func NewHandler(
	activityService *services.ActivityService,
	userService *services.UserService,
	projectService *services.ProjectService,
	authService *services.AuthService,
	logger *charmLog.Logger,
	opts HandlerOptions,
) *Handler {
	return &Handler{
		activityService: activityService,
		userService:     userService,
		projectService:  projectService,
		authService:     authService,
		logger:          logger,
		cookieSecure:    opts.CookieSecure,
		sessionMaxAge:   opts.SessionMaxAge,
	}
}

// fail converts a service error into an HTTP error. Server-side failures are
// logged and reported with the generic action message; client errors carry
// their own message.
func (h *Handler) fail(c echo.Context, err error, action string) error {
	code := apperrors.StatusCode(err)
	if code < http.StatusInternalServerError {
		return echo.NewHTTPError(code, apperrors.Message(err, action))
	}

	h.logger.Error(action, "method", c.Request().Method, "path", c.Path(), "err", err)

	body := echo.Map{"error": action}
	if msg := apperrors.Message(err, ""); msg != "" {
		body["message"] = msg
	}
	return echo.NewHTTPError(code, body)
}

// actorID resolves the acting user: the id named in the body, or else the
// user of the current session.
func actorID(c echo.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return middleware.SessionUserID(c)
}
