package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "activity-tracker.com/activity-tracker/internal/models"
)

func CreateUser(t testing.TB, db *gorm.DB, email, name string) *model.User {
	t.Helper()

	user := &model.User{ID: uuid.NewString(), Email: email, Name: name}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", email, err)
	}
	return user
}

func CreateProject(t testing.TB, db *gorm.DB, name string) *model.Project {
	t.Helper()

	project := &model.Project{ID: uuid.NewString(), Name: name}
	if err := db.Create(project).Error; err != nil {
		t.Fatalf("failed to create project %s: %v", name, err)
	}
	return project
}
