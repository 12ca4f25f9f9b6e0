package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"activity-tracker.com/activity-tracker/internal/constants"
	model "activity-tracker.com/activity-tracker/internal/models"
)

// ActivityFilter selects activities. Every set field must match (AND); the
// id sets match when any listed id is linked (OR).
type ActivityFilter struct {
	// DateFrom is an inclusive lower bound on the due date.
	DateFrom *time.Time
	// DateTo is a calendar date; activities due any time that day still match.
	DateTo         *time.Time
	ProjectIDs     []string
	PersonIDs      []string
	Status         *constants.ActivityStatus
	Type           *constants.ActivityType
	WithoutProject bool
}

// EndOfDay returns the last millisecond of t's calendar day in UTC.
func EndOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), time.UTC)
}

func (f ActivityFilter) scope(db *gorm.DB) *gorm.DB {
	if f.DateFrom != nil {
		db = db.Where("activities.due_date >= ?", f.DateFrom.UTC())
	}
	if f.DateTo != nil {
		db = db.Where("activities.due_date <= ?", EndOfDay(*f.DateTo))
	}
	if len(f.ProjectIDs) > 0 {
		db = db.Where(
			"EXISTS (SELECT 1 FROM activity_projects ap WHERE ap.activity_id = activities.id AND ap.project_id IN ?)",
			f.ProjectIDs,
		)
	}
	if f.WithoutProject {
		db = db.Where("NOT EXISTS (SELECT 1 FROM activity_projects ap WHERE ap.activity_id = activities.id)")
	}
	if len(f.PersonIDs) > 0 {
		db = db.Where(
			"EXISTS (SELECT 1 FROM activity_persons apn WHERE apn.activity_id = activities.id AND apn.user_id IN ?)",
			f.PersonIDs,
		)
	}
	if f.Status != nil {
		db = db.Where("activities.status = ?", *f.Status)
	}
	if f.Type != nil {
		db = db.Where("activities.type = ?", *f.Type)
	}
	return db
}

// List returns the matching activities with relationships, earliest due date first.
func (r *ActivityRepository) List(ctx context.Context, filter ActivityFilter) ([]model.Activity, error) {
	activities := []model.Activity{}
	err := r.db.WithContext(ctx).
		Scopes(filter.scope, withRelations).
		Order("activities.due_date asc").
		Order("activities.created_at asc").
		Find(&activities).Error
	if err != nil {
		return nil, r.classify(err)
	}
	return activities, nil
}

type GroupCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// CountBy groups the matching activities by column ("status" or "type").
func (r *ActivityRepository) CountBy(ctx context.Context, filter ActivityFilter, column string) ([]GroupCount, error) {
	if column != "status" && column != "type" {
		return nil, fmt.Errorf("cannot group activities by %q", column)
	}

	rows := []GroupCount{}
	err := r.db.WithContext(ctx).
		Model(&model.Activity{}).
		Scopes(filter.scope).
		Select(fmt.Sprintf("activities.%s AS label, COUNT(*) AS count", column)).
		Group("activities." + column).
		Order("label").
		Scan(&rows).Error
	if err != nil {
		return nil, r.classify(err)
	}
	return rows, nil
}

func (r *ActivityRepository) classify(err error) error {
	migrator := r.db.Migrator()
	for _, table := range model.All() {
		if !migrator.HasTable(table) {
			return fmt.Errorf("%w: %v", ErrSchemaMissing, err)
		}
	}
	return err
}
