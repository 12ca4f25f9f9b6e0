package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "activity-tracker.com/activity-tracker/internal/http/middlewares"
	"activity-tracker.com/activity-tracker/internal/limiter"
)

func Register(e *echo.Echo, h *Handler, store limiter.Store, rateLimitPerMinute int) {
	e.HTTPErrorHandler = ErrorHandler(h.logger)

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(h.logger))
	e.Use(middleware.RateLimiter(store, rateLimitPerMinute, time.Minute, h.logger))
	e.Use(middleware.Session())

	e.GET("/activities", h.ListActivities)
	e.GET("/activities/stats", h.ActivityStats)
	e.POST("/activities", h.CreateActivity)
	e.GET("/activities/:id", h.GetActivity)
	e.PUT("/activities/:id", h.UpdateActivity)
	e.DELETE("/activities/:id", h.DeleteActivity)
	e.PUT("/activities/:id/members", h.ReplaceMembership)
	e.POST("/activities/:id/status", h.TransitionStatus)
	e.GET("/activities/:id/status", h.StatusHistory)

	e.GET("/users", h.ListUsers)
	e.POST("/users", h.CreateUser)
	e.GET("/projects", h.ListProjects)
	e.POST("/projects", h.CreateProject)

	e.POST("/auth/signup", h.Signup)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout)
	e.GET("/auth/session", h.Session)
}
