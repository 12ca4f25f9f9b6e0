package validators

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"activity-tracker.com/activity-tracker/internal/constants"
	dto "activity-tracker.com/activity-tracker/internal/data_models"
	apperrors "activity-tracker.com/activity-tracker/internal/errors"
	repository "activity-tracker.com/activity-tracker/internal/repositories"
	"activity-tracker.com/activity-tracker/internal/services"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps or plain calendar dates and returns UTC.
func ParseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, v)
}

func ValidateCreateActivityRequest(r *dto.CreateActivityRequest) (services.ActivityInput, error) {
	if strings.TrimSpace(r.Description) == "" {
		return services.ActivityInput{}, apperrors.ErrDescriptionRequired
	}
	if strings.TrimSpace(r.Type) == "" {
		return services.ActivityInput{}, apperrors.ErrTypeRequired
	}
	if strings.TrimSpace(r.DueDate) == "" {
		return services.ActivityInput{}, apperrors.ErrDueDateRequired
	}

	in := services.ActivityInput{
		Description: r.Description,
		ProjectIDs:  r.ProjectIDs,
		PersonIDs:   r.PersonIDs,
	}

	var err error
	if in.Type, err = parseType(r.Type); err != nil {
		return services.ActivityInput{}, err
	}
	if strings.TrimSpace(r.Status) != "" {
		if in.Status, err = parseStatus(r.Status); err != nil {
			return services.ActivityInput{}, err
		}
	}
	if in.DueDate, err = ParseDate(r.DueDate); err != nil {
		return services.ActivityInput{}, err
	}
	return in, nil
}

func ValidateUpdateActivityRequest(r *dto.UpdateActivityRequest) (services.ActivityInput, error) {
	if strings.TrimSpace(r.Description) == "" {
		return services.ActivityInput{}, apperrors.ErrDescriptionRequired
	}
	if strings.TrimSpace(r.Type) == "" {
		return services.ActivityInput{}, apperrors.ErrTypeRequired
	}
	if strings.TrimSpace(r.Status) == "" {
		return services.ActivityInput{}, apperrors.ErrStatusRequired
	}
	if strings.TrimSpace(r.DueDate) == "" {
		return services.ActivityInput{}, apperrors.ErrDueDateRequired
	}

	in := services.ActivityInput{
		Description: r.Description,
		ProjectIDs:  nonNil(r.ProjectIDs),
		PersonIDs:   nonNil(r.PersonIDs),
	}

	var err error
	if in.Type, err = parseType(r.Type); err != nil {
		return services.ActivityInput{}, err
	}
	if in.Status, err = parseStatus(r.Status); err != nil {
		return services.ActivityInput{}, err
	}
	if in.DueDate, err = ParseDate(r.DueDate); err != nil {
		return services.ActivityInput{}, err
	}
	if r.CompletionDate != nil && strings.TrimSpace(*r.CompletionDate) != "" {
		completed, err := ParseDate(*r.CompletionDate)
		if err != nil {
			return services.ActivityInput{}, err
		}
		in.CompletionDate = &completed
	}
	return in, nil
}

// ValidateStatusChangeRequest checks the body of a transition. actorID is the
// acting user resolved by the handler.
func ValidateStatusChangeRequest(r *dto.StatusChangeRequest, actorID string) (services.StatusChange, error) {
	if strings.TrimSpace(r.Status) == "" {
		return services.StatusChange{}, apperrors.ErrStatusRequired
	}
	status, err := parseStatus(r.Status)
	if err != nil {
		return services.StatusChange{}, err
	}
	if actorID == "" {
		return services.StatusChange{}, apperrors.ErrChangedByRequired
	}

	return services.StatusChange{
		Status:      status,
		Remarks:     r.Remarks,
		ChangedByID: actorID,
	}, nil
}

// ValidateActivityQuery turns query parameters into a typed filter. The value
// "all" disables the status and type dimensions.
func ValidateActivityQuery(q dto.ActivityQuery) (repository.ActivityFilter, error) {
	var filter repository.ActivityFilter

	if v := strings.TrimSpace(q.DateFrom); v != "" {
		from, err := ParseDate(v)
		if err != nil {
			return repository.ActivityFilter{}, err
		}
		filter.DateFrom = &from
	}
	if v := strings.TrimSpace(q.DateTo); v != "" {
		to, err := ParseDate(v)
		if err != nil {
			return repository.ActivityFilter{}, err
		}
		filter.DateTo = &to
	}
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateFrom.After(repository.EndOfDay(*filter.DateTo)) {
		return repository.ActivityFilter{}, fmt.Errorf("%w: dateFrom is after dateTo", apperrors.ErrInvalidFilter)
	}

	filter.ProjectIDs = splitIDs(q.ProjectIDs)
	filter.PersonIDs = splitIDs(q.PersonIDs)

	if v := strings.TrimSpace(q.Status); v != "" && v != constants.FilterAll {
		status, err := parseStatus(v)
		if err != nil {
			return repository.ActivityFilter{}, err
		}
		filter.Status = &status
	}
	if v := strings.TrimSpace(q.Type); v != "" && v != constants.FilterAll {
		activityType, err := parseType(v)
		if err != nil {
			return repository.ActivityFilter{}, err
		}
		filter.Type = &activityType
	}
	if v := strings.TrimSpace(q.NoProject); v != "" {
		noProject, err := strconv.ParseBool(v)
		if err != nil {
			return repository.ActivityFilter{}, fmt.Errorf("%w: noProject must be a boolean", apperrors.ErrInvalidFilter)
		}
		filter.WithoutProject = noProject
	}

	return filter, nil
}

func parseStatus(v string) (constants.ActivityStatus, error) {
	status, ok := constants.ParseActivityStatus(v)
	if !ok {
		return "", apperrors.ErrInvalidStatus
	}
	return status, nil
}

func parseType(v string) (constants.ActivityType, error) {
	activityType, ok := constants.ParseActivityType(v)
	if !ok {
		return "", apperrors.ErrInvalidType
	}
	return activityType, nil
}

// splitIDs accepts both repeated parameters and comma separated values.
func splitIDs(values []string) []string {
	var ids []string
	for _, v := range values {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
