package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "activity-tracker.com/activity-tracker/internal/data_models"
	apperrors "activity-tracker.com/activity-tracker/internal/errors"
)

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "Failed to fetch users")
	}
	return c.JSON(http.StatusOK, users)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}

	user, err := h.userService.CreateUser(c.Request().Context(), req.Email, req.Name)
	if err != nil {
		return h.fail(c, err, "Failed to create user")
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.ListProjects(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "Failed to fetch projects")
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *Handler) CreateProject(c echo.Context) error {
	var req dto.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), req.Name, req.Description, req.OwnerID)
	if err != nil {
		return h.fail(c, err, "Failed to create project")
	}
	return c.JSON(http.StatusCreated, project)
}
