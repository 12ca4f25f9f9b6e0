package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"activity-tracker.com/activity-tracker/internal/constants"
	model "activity-tracker.com/activity-tracker/internal/models"
)

type ActivityRepository struct {
	db *gorm.DB
}

// ErrSchemaMissing reports that the activity tables have not been provisioned.
var ErrSchemaMissing = errors.New("activity schema is not provisioned")

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Transaction runs fn against a repository bound to a single database
// transaction. Any error returned by fn rolls back every write made through it.
func (r *ActivityRepository) Transaction(ctx context.Context, fn func(tx *ActivityRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ActivityRepository{db: tx})
	})
}

func selectUserSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}

func selectProjectSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("CreatedBy", selectUserSummary).
		Preload("Projects.Project", selectProjectSummary).
		Preload("AssignedPersons.User", selectUserSummary)
}

// FindByID returns the activity with its creator, projects and assignees, or
// gorm.ErrRecordNotFound.
func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*model.Activity, error) {
	var activity model.Activity
	err := r.db.WithContext(ctx).Scopes(withRelations).First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Activity{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Create inserts the activity row only; memberships go through ReplaceMembership.
func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Omit("CreatedBy", "Projects", "AssignedPersons").Create(activity).Error
}

// UpdateFields overwrites the editable columns of an activity. A nil
// completion date clears the column.
func (r *ActivityRepository) UpdateFields(ctx context.Context, activity *model.Activity) error {
	res := r.db.WithContext(ctx).Model(&model.Activity{}).
		Where("id = ?", activity.ID).
		Updates(map[string]interface{}{
			"description":     activity.Description,
			"type":            activity.Type,
			"status":          activity.Status,
			"due_date":        activity.DueDate,
			"completion_date": activity.CompletionDate,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateStatus sets the status and, when completedAt is non-nil, the
// completion date. It never clears an existing completion date.
func (r *ActivityRepository) UpdateStatus(ctx context.Context, id string, status constants.ActivityStatus, completedAt *time.Time) error {
	values := map[string]interface{}{"status": status}
	if completedAt != nil {
		values["completion_date"] = *completedAt
	}

	res := r.db.WithContext(ctx).Model(&model.Activity{}).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceMembership makes projectIDs and personIDs the complete project and
// assignee sets of the activity. Existing links not listed are removed.
func (r *ActivityRepository) ReplaceMembership(ctx context.Context, activityID string, projectIDs, personIDs []string) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("activity_id = ?", activityID).Delete(&model.ActivityProject{}).Error; err != nil {
		return err
	}
	if err := db.Where("activity_id = ?", activityID).Delete(&model.ActivityPerson{}).Error; err != nil {
		return err
	}

	if len(projectIDs) > 0 {
		links := make([]model.ActivityProject, 0, len(projectIDs))
		for _, projectID := range projectIDs {
			links = append(links, model.ActivityProject{ActivityID: activityID, ProjectID: projectID})
		}
		if err := db.Omit("Project").Create(&links).Error; err != nil {
			return err
		}
	}

	if len(personIDs) > 0 {
		links := make([]model.ActivityPerson, 0, len(personIDs))
		for _, userID := range personIDs {
			links = append(links, model.ActivityPerson{ActivityID: activityID, UserID: userID})
		}
		if err := db.Omit("User").Create(&links).Error; err != nil {
			return err
		}
	}

	return nil
}

// Delete removes the activity together with its links and history.
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)

	if err := db.Where("activity_id = ?", id).Delete(&model.StatusHistory{}).Error; err != nil {
		return err
	}
	if err := db.Where("activity_id = ?", id).Delete(&model.ActivityProject{}).Error; err != nil {
		return err
	}
	if err := db.Where("activity_id = ?", id).Delete(&model.ActivityPerson{}).Error; err != nil {
		return err
	}

	res := db.Where("id = ?", id).Delete(&model.Activity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ActivityRepository) AppendHistory(ctx context.Context, entry *model.StatusHistory) error {
	return r.db.WithContext(ctx).Omit("ChangedBy").Create(entry).Error
}

// LatestHistoryAt returns the newest changedAt recorded for the activity, or
// the zero time when it has no history.
func (r *ActivityRepository) LatestHistoryAt(ctx context.Context, activityID string) (time.Time, error) {
	var entry model.StatusHistory
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("changed_at desc").
		Limit(1).
		Find(&entry).Error
	if err != nil {
		return time.Time{}, err
	}
	return entry.ChangedAt, nil
}

// ListHistory returns the activity's history, newest first.
func (r *ActivityRepository) ListHistory(ctx context.Context, activityID string) ([]model.StatusHistory, error) {
	history := []model.StatusHistory{}
	err := r.db.WithContext(ctx).
		Preload("ChangedBy", selectUserSummary).
		Where("activity_id = ?", activityID).
		Order("changed_at desc").
		Order("id desc").
		Find(&history).Error
	return history, err
}

// MissingUsers returns the ids that do not reference a stored user.
func (r *ActivityRepository) MissingUsers(ctx context.Context, ids []string) ([]string, error) {
	return r.missing(ctx, &model.User{}, ids)
}

// MissingProjects returns the ids that do not reference a stored project.
func (r *ActivityRepository) MissingProjects(ctx context.Context, ids []string) ([]string, error) {
	return r.missing(ctx, &model.Project{}, ids)
}

func (r *ActivityRepository) missing(ctx context.Context, table interface{}, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []string
	if err := r.db.WithContext(ctx).Model(table).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	known := make(map[string]struct{}, len(found))
	for _, id := range found {
		known[id] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
