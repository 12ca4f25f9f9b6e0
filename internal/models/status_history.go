package model

import (
	"time"

	"activity-tracker.com/activity-tracker/internal/constants"
)

// StatusHistory is one append-only audit entry written by a status transition.
// Rows are never updated and only disappear with their activity.
type StatusHistory struct {
	ID          string                   `gorm:"primaryKey;size:36" json:"id"`
	ActivityID  string                   `gorm:"size:36;not null;index" json:"activityId"`
	Status      constants.ActivityStatus `gorm:"type:varchar(20);not null" json:"status"`
	Remarks     *string                  `json:"remarks"`
	ChangedByID string                   `gorm:"size:36;not null" json:"changedById"`
	ChangedAt   time.Time                `gorm:"not null;index" json:"changedAt"`

	ChangedBy *User `gorm:"foreignKey:ChangedByID" json:"changedBy,omitempty"`
}

func (StatusHistory) TableName() string {
	return "activity_status_history"
}
