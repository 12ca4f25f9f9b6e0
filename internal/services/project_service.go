package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	apperrors "activity-tracker.com/activity-tracker/internal/errors"
	model "activity-tracker.com/activity-tracker/internal/models"
	repository "activity-tracker.com/activity-tracker/internal/repositories"
)

type ProjectService struct {
	repo *repository.ProjectRepository
}

func NewProjectService(repo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, name, description string, ownerID *string) (*model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrProjectNameRequired
	}
	if ownerID != nil && strings.TrimSpace(*ownerID) == "" {
		ownerID = nil
	}

	project := &model.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		OwnerID:     ownerID,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return project, nil
}
