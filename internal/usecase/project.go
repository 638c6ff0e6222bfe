package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"protein-optimizer-service/internal/domain"
)

type ProjectUseCase struct {
	repo domain.ProjectRepository
}

func NewProjectUseCase(repo domain.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (uc *ProjectUseCase) Create(ctx context.Context, ownerID, name, description string) (*domain.Project, error) {
	if name == "" {
		return nil, domain.ErrProjectNameRequired
	}

	project := &domain.Project{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
	}
	if err := uc.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (uc *ProjectUseCase) List(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	return uc.repo.ListByOwner(ctx, ownerID)
}
