package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"activity-tracker.com/activity-tracker/internal/constants"
	apperrors "activity-tracker.com/activity-tracker/internal/errors"
	model "activity-tracker.com/activity-tracker/internal/models"
	repository "activity-tracker.com/activity-tracker/internal/repositories"
)

type ActivityService struct {
	repo *repository.ActivityRepository
	now  func() time.Time
}

func NewActivityService(repo *repository.ActivityRepository) *ActivityService {
	return &ActivityService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// ActivityInput carries the editable fields of an activity. ProjectIDs and
// PersonIDs are always the complete desired membership.
type ActivityInput struct {
	Description    string
	Type           constants.ActivityType
	Status         constants.ActivityStatus
	DueDate        time.Time
	CompletionDate *time.Time
	ProjectIDs     []string
	PersonIDs      []string
}

// Membership is the full set of projects and assignees of an activity.
type Membership struct {
	ProjectIDs []string
	PersonIDs  []string
}

// StatusChange is one requested transition. ChangedByID is the acting user
// and must be supplied by the caller.
type StatusChange struct {
	Status      constants.ActivityStatus
	Remarks     *string
	ChangedByID string
}

type ActivityStats struct {
	Total    int64                   `json:"total"`
	ByStatus []repository.GroupCount `json:"byStatus"`
	ByType   []repository.GroupCount `json:"byType"`
}

func (s *ActivityService) CreateActivity(ctx context.Context, createdByID string, in ActivityInput) (*model.Activity, error) {
	if in.Status == "" {
		in.Status = constants.StatusCreated
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if strings.TrimSpace(createdByID) == "" {
		return nil, apperrors.ErrCreatedByRequired
	}

	activity := &model.Activity{
		ID:             uuid.NewString(),
		Description:    strings.TrimSpace(in.Description),
		Type:           in.Type,
		Status:         in.Status,
		DueDate:        in.DueDate.UTC(),
		CompletionDate: utcPtr(in.CompletionDate),
		CreatedByID:    createdByID,
	}
	membership := Membership{ProjectIDs: in.ProjectIDs, PersonIDs: in.PersonIDs}

	var created *model.Activity
	err := s.repo.Transaction(ctx, func(tx *repository.ActivityRepository) error {
		if err := checkUsers(ctx, tx, createdByID); err != nil {
			return err
		}
		if err := tx.Create(ctx, activity); err != nil {
			return err
		}
		if err := replaceMembership(ctx, tx, activity.ID, membership); err != nil {
			return err
		}

		var err error
		created, err = tx.FindByID(ctx, activity.ID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	return created, nil
}

func (s *ActivityService) GetActivity(ctx context.Context, id string) (*model.Activity, error) {
	activity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get activity %s: %w", id, notFound(err))
	}
	return activity, nil
}

// UpdateActivity overwrites the activity's fields and replaces its full
// project and assignee membership in one transaction.
func (s *ActivityService) UpdateActivity(ctx context.Context, id string, in ActivityInput) (*model.Activity, error) {
	if in.Status == "" {
		return nil, apperrors.ErrStatusRequired
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	activity := &model.Activity{
		ID:             id,
		Description:    strings.TrimSpace(in.Description),
		Type:           in.Type,
		Status:         in.Status,
		DueDate:        in.DueDate.UTC(),
		CompletionDate: utcPtr(in.CompletionDate),
	}
	membership := Membership{ProjectIDs: in.ProjectIDs, PersonIDs: in.PersonIDs}

	var updated *model.Activity
	err := s.repo.Transaction(ctx, func(tx *repository.ActivityRepository) error {
		if err := tx.UpdateFields(ctx, activity); err != nil {
			return notFound(err)
		}
		if err := replaceMembership(ctx, tx, id, membership); err != nil {
			return err
		}

		var err error
		updated, err = tx.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update activity %s: %w", id, err)
	}

	return updated, nil
}

// ReplaceMembership makes m the complete project and assignee sets of the
// activity. Omitted ids are unlinked; an empty set removes every link.
func (s *ActivityService) ReplaceMembership(ctx context.Context, id string, m Membership) (*model.Activity, error) {
	var updated *model.Activity
	err := s.repo.Transaction(ctx, func(tx *repository.ActivityRepository) error {
		exists, err := tx.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrActivityNotFound
		}
		if err := replaceMembership(ctx, tx, id, m); err != nil {
			return err
		}

		updated, err = tx.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("replace membership of %s: %w", id, err)
	}

	return updated, nil
}

func (s *ActivityService) DeleteActivity(ctx context.Context, id string) error {
	err := s.repo.Transaction(ctx, func(tx *repository.ActivityRepository) error {
		return notFound(tx.Delete(ctx, id))
	})
	if err != nil {
		return fmt.Errorf("delete activity %s: %w", id, err)
	}
	return nil
}

// TransitionStatus moves the activity to change.Status and appends exactly one
// history row. Both writes commit together or not at all. Reaching Completed
// stamps the completion date; leaving Completed keeps it.
func (s *ActivityService) TransitionStatus(ctx context.Context, id string, change StatusChange) (*model.Activity, error) {
	if change.Status == "" {
		return nil, apperrors.ErrStatusRequired
	}
	if !change.Status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if strings.TrimSpace(change.ChangedByID) == "" {
		return nil, apperrors.ErrChangedByRequired
	}

	var updated *model.Activity
	err := s.repo.Transaction(ctx, func(tx *repository.ActivityRepository) error {
		if err := checkUsers(ctx, tx, change.ChangedByID); err != nil {
			return err
		}

		exists, err := tx.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrActivityNotFound
		}

		changedAt, err := s.nextChangeTime(ctx, tx, id)
		if err != nil {
			return err
		}

		var completedAt *time.Time
		if change.Status == constants.StatusCompleted {
			completedAt = &changedAt
		}
		if err := tx.UpdateStatus(ctx, id, change.Status, completedAt); err != nil {
			return notFound(err)
		}

		historyID, err := uuid.NewV7()
		if err != nil {
			return err
		}
		if err := tx.AppendHistory(ctx, &model.StatusHistory{
			ID:          historyID.String(),
			ActivityID:  id,
			Status:      change.Status,
			Remarks:     normalizeRemarks(change.Remarks),
			ChangedByID: change.ChangedByID,
			ChangedAt:   changedAt,
		}); err != nil {
			return err
		}

		updated, err = tx.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("transition activity %s to %s: %w", id, change.Status, err)
	}

	return updated, nil
}

// nextChangeTime keeps changedAt strictly increasing per activity even when
// the clock does not advance between two transitions.
func (s *ActivityService) nextChangeTime(ctx context.Context, tx *repository.ActivityRepository, id string) (time.Time, error) {
	now := s.now()
	latest, err := tx.LatestHistoryAt(ctx, id)
	if err != nil {
		return time.Time{}, err
	}
	if !latest.IsZero() && !now.After(latest) {
		now = latest.Add(time.Microsecond)
	}
	return now, nil
}

// GetStatusHistory returns the activity's transitions, newest first.
func (s *ActivityService) GetStatusHistory(ctx context.Context, id string) ([]model.StatusHistory, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("status history of %s: %w", id, err)
	}
	if !exists {
		return nil, apperrors.ErrActivityNotFound
	}

	history, err := s.repo.ListHistory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("status history of %s: %w", id, err)
	}
	return history, nil
}

func (s *ActivityService) ListActivities(ctx context.Context, filter repository.ActivityFilter) ([]model.Activity, error) {
	activities, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", schemaErr(err))
	}
	return activities, nil
}

func (s *ActivityService) ActivityStats(ctx context.Context, filter repository.ActivityFilter) (*ActivityStats, error) {
	byStatus, err := s.repo.CountBy(ctx, filter, "status")
	if err != nil {
		return nil, fmt.Errorf("activity stats: %w", schemaErr(err))
	}
	byType, err := s.repo.CountBy(ctx, filter, "type")
	if err != nil {
		return nil, fmt.Errorf("activity stats: %w", schemaErr(err))
	}

	stats := &ActivityStats{ByStatus: byStatus, ByType: byType}
	for _, row := range byStatus {
		stats.Total += row.Count
	}
	return stats, nil
}

func validateInput(in ActivityInput) error {
	if strings.TrimSpace(in.Description) == "" {
		return apperrors.ErrDescriptionRequired
	}
	if in.Type == "" {
		return apperrors.ErrTypeRequired
	}
	if !in.Type.Valid() {
		return apperrors.ErrInvalidType
	}
	if !in.Status.Valid() {
		return apperrors.ErrInvalidStatus
	}
	if in.DueDate.IsZero() {
		return apperrors.ErrDueDateRequired
	}
	return nil
}

func replaceMembership(ctx context.Context, tx *repository.ActivityRepository, id string, m Membership) error {
	projectIDs := uniqueIDs(m.ProjectIDs)
	personIDs := uniqueIDs(m.PersonIDs)

	missing, err := tx.MissingProjects(ctx, projectIDs)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownProject, strings.Join(missing, ", "))
	}
	if err := checkUsers(ctx, tx, personIDs...); err != nil {
		return err
	}

	return tx.ReplaceMembership(ctx, id, projectIDs, personIDs)
}

func checkUsers(ctx context.Context, tx *repository.ActivityRepository, ids ...string) error {
	missing, err := tx.MissingUsers(ctx, ids)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownUser, strings.Join(missing, ", "))
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func normalizeRemarks(remarks *string) *string {
	if remarks == nil || strings.TrimSpace(*remarks) == "" {
		return nil
	}
	return remarks
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrActivityNotFound
	}
	return err
}

func schemaErr(err error) error {
	if errors.Is(err, repository.ErrSchemaMissing) {
		return fmt.Errorf("%w: %v", apperrors.ErrDatabaseNotReady, err)
	}
	return err
}
