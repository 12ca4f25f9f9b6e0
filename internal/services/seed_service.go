package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "activity-tracker.com/activity-tracker/internal/models"
	repository "activity-tracker.com/activity-tracker/internal/repositories"
)

var demoUsers = []model.User{
	{Email: "alice@example.com", Name: "Alice Martin"},
	{Email: "bob@example.com", Name: "Bob Chen"},
	{Email: "carol@example.com", Name: "Carol Diaz"},
}

var demoProjects = []model.Project{
	{Name: "Website Redesign", Description: "New marketing site"},
	{Name: "Mobile App", Description: "iOS and Android client"},
	{Name: "Internal Tools", Description: "Back-office automation"},
}

type SeedResult struct {
	UsersCreated    int
	ProjectsCreated int
}

type SeedService struct {
	users    *repository.UserRepository
	projects *repository.ProjectRepository
}

func NewSeedService(users *repository.UserRepository, projects *repository.ProjectRepository) *SeedService {
	return &SeedService{users: users, projects: projects}
}

// Seed inserts the demo users and projects that are not stored yet. Running it
// again creates nothing.
func (s *SeedService) Seed(ctx context.Context) (SeedResult, error) {
	var result SeedResult

	for _, demo := range demoUsers {
		_, err := s.users.FindByEmail(ctx, demo.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return result, fmt.Errorf("look up user %s: %w", demo.Email, err)
		}

		user := demo
		user.ID = uuid.NewString()
		if err := s.users.Create(ctx, &user); err != nil {
			return result, fmt.Errorf("seed user %s: %w", demo.Email, err)
		}
		result.UsersCreated++
	}

	for _, demo := range demoProjects {
		_, err := s.projects.FindByName(ctx, demo.Name)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return result, fmt.Errorf("look up project %s: %w", demo.Name, err)
		}

		project := demo
		project.ID = uuid.NewString()
		if err := s.projects.Create(ctx, &project); err != nil {
			return result, fmt.Errorf("seed project %s: %w", demo.Name, err)
		}
		result.ProjectsCreated++
	}

	return result, nil
}
