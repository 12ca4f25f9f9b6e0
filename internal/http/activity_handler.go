package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	dto "activity-tracker.com/activity-tracker/internal/data_models"
	apperrors "activity-tracker.com/activity-tracker/internal/errors"
	"activity-tracker.com/activity-tracker/internal/http/validators"
	"activity-tracker.com/activity-tracker/internal/services"
)

func activityID(c echo.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrActivityIDRequired.Message)
	}
	return id, nil
}

func activityQuery(c echo.Context) dto.ActivityQuery {
	params := c.QueryParams()
	return dto.ActivityQuery{
		DateFrom:   params.Get("dateFrom"),
		DateTo:     params.Get("dateTo"),
		ProjectIDs: slices.Concat(params["projectIds[]"], params["projectIds"]),
		PersonIDs:  slices.Concat(params["personIds[]"], params["personIds"]),
		Status:     params.Get("status"),
		Type:       params.Get("type"),
		NoProject:  params.Get("noProject"),
	}
}

func (h *Handler) ListActivities(c echo.Context) error {
	filter, err := validators.ValidateActivityQuery(activityQuery(c))
	if err != nil {
		return h.fail(c, err, "Invalid filter")
	}

	activities, err := h.activityService.ListActivities(c.Request().Context(), filter)
	if err != nil {
		return h.fail(c, err, "Failed to fetch activities")
	}

	return c.JSON(http.StatusOK, activities)
}

func (h *Handler) ActivityStats(c echo.Context) error {
	filter, err := validators.ValidateActivityQuery(activityQuery(c))
	if err != nil {
		return h.fail(c, err, "Invalid filter")
	}

	stats, err := h.activityService.ActivityStats(c.Request().Context(), filter)
	if err != nil {
		return h.fail(c, err, "Failed to compute activity stats")
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetActivity(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		return err
	}

	activity, err := h.activityService.GetActivity(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to fetch activity")
	}

	return c.JSON(http.StatusOK, activity)
}

func (h *Handler) CreateActivity(c echo.Context) error {
	var req dto.CreateActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}
	in, err := validators.ValidateCreateActivityRequest(&req)
	if err != nil {
		return h.fail(c, err, "Invalid activity")
	}

	createdBy := actorID(c, strings.TrimSpace(req.CreatedByID))
	if createdBy == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrCreatedByRequired.Message)
	}

	activity, err := h.activityService.CreateActivity(c.Request().Context(), createdBy, in)
	if err != nil {
		return h.fail(c, err, "Failed to create activity")
	}

	return c.JSON(http.StatusCreated, activity)
}

func (h *Handler) UpdateActivity(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateActivityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}
	in, err := validators.ValidateUpdateActivityRequest(&req)
	if err != nil {
		return h.fail(c, err, "Invalid activity")
	}

	activity, err := h.activityService.UpdateActivity(c.Request().Context(), id, in)
	if err != nil {
		return h.fail(c, err, "Failed to update activity")
	}

	return c.JSON(http.StatusOK, activity)
}

func (h *Handler) ReplaceMembership(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		return err
	}

	var req dto.MembershipRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}

	activity, err := h.activityService.ReplaceMembership(c.Request().Context(), id, services.Membership{
		ProjectIDs: req.ProjectIDs,
		PersonIDs:  req.PersonIDs,
	})
	if err != nil {
		return h.fail(c, err, "Failed to update activity members")
	}

	return c.JSON(http.StatusOK, activity)
}

func (h *Handler) DeleteActivity(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		return err
	}

	if err := h.activityService.DeleteActivity(c.Request().Context(), id); err != nil {
		return h.fail(c, err, "Failed to delete activity")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) TransitionStatus(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		return err
	}

	var req dto.StatusChangeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}
	change, err := validators.ValidateStatusChangeRequest(&req, actorID(c, strings.TrimSpace(req.ChangedByID)))
	if err != nil {
		return h.fail(c, err, "Invalid status change")
	}

	activity, err := h.activityService.TransitionStatus(c.Request().Context(), id, change)
	if err != nil {
		return h.fail(c, err, "Failed to update activity status")
	}

	return c.JSON(http.StatusOK, activity)
}

func (h *Handler) StatusHistory(c echo.Context) error {
	id, err := activityID(c)
	if err != nil {
		return err
	}

	history, err := h.activityService.GetStatusHistory(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "Failed to fetch status history")
	}

	return c.JSON(http.StatusOK, history)
}
