package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/paveiq/bidmaster/internal/domain/entities"
	"github.com/paveiq/bidmaster/internal/usecase/interfaces"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidProjectID = errors.New("invalid project id")
	ErrInvalidStatus    = errors.New("invalid project status")
)

// IProjectUseCase exposes the admin review operations over persisted
// projects. The estimation pipeline never touches a record after creation;
// status transitions happen only here.

type IProjectUseCase interface {
	List(ctx context.Context, statusFilter string) ([]entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Accept(ctx context.Context, id string) (entities.Project, error)
	Reject(ctx context.Context, id string) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

// List returns projects filtered by review status. The filter defaults to
// "pending"; "all" disables it.
func (u *ProjectUseCase) List(ctx context.Context, statusFilter string) ([]entities.Project, error) {
	statusFilter = strings.TrimSpace(strings.ToLower(statusFilter))
	if statusFilter == "" {
		statusFilter = string(entities.ProjectStatusPending)
	}
	if statusFilter == "all" {
		return u.repo.ListAll(ctx)
	}

	switch entities.ProjectStatus(statusFilter) {
	case entities.ProjectStatusPending, entities.ProjectStatusAccepted, entities.ProjectStatusRejected:
	default:
		return nil, ErrInvalidStatus
	}
	return u.repo.ListByStatus(ctx, entities.ProjectStatus(statusFilter))
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) Accept(ctx context.Context, id string) (entities.Project, error) {
	return u.updateStatus(ctx, id, entities.ProjectStatusAccepted)
}

func (u *ProjectUseCase) Reject(ctx context.Context, id string) (entities.Project, error) {
	return u.updateStatus(ctx, id, entities.ProjectStatusRejected)
}

func (u *ProjectUseCase) updateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.DeleteByID(ctx, id)
}
