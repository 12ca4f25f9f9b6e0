package model

import (
	"time"

	"activity-tracker.com/activity-tracker/internal/constants"
)

type Activity struct {
	ID             string                   `gorm:"primaryKey;size:36" json:"id"`
	Description    string                   `gorm:"not null" json:"description"`
	Type           constants.ActivityType   `gorm:"type:varchar(20);not null" json:"type"`
	Status         constants.ActivityStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	DueDate        time.Time                `gorm:"not null;index" json:"dueDate"`
	CompletionDate *time.Time               `json:"completionDate"`
	CreatedByID    string                   `gorm:"size:36;not null;index" json:"createdById"`
	CreatedAt      time.Time                `json:"createdAt"`
	UpdatedAt      time.Time                `json:"updatedAt"`

	CreatedBy       *User             `gorm:"foreignKey:CreatedByID" json:"createdBy,omitempty"`
	Projects        []ActivityProject `gorm:"foreignKey:ActivityID" json:"projects"`
	AssignedPersons []ActivityPerson  `gorm:"foreignKey:ActivityID" json:"assignedPersons"`
}

func (Activity) TableName() string {
	return "activities"
}

// ActivityProject links an activity to a project.
type ActivityProject struct {
	ActivityID string   `gorm:"primaryKey;size:36" json:"activityId"`
	ProjectID  string   `gorm:"primaryKey;size:36;index" json:"projectId"`
	Project    *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (ActivityProject) TableName() string {
	return "activity_projects"
}

// ActivityPerson assigns a user to an activity.
type ActivityPerson struct {
	ActivityID string `gorm:"primaryKey;size:36" json:"activityId"`
	UserID     string `gorm:"primaryKey;size:36;index" json:"userId"`
	User       *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (ActivityPerson) TableName() string {
	return "activity_persons"
}
