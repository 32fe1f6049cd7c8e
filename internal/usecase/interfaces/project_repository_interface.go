package interfaces

import (
	"context"

	"github.com/paveiq/bidmaster/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for Project records.
//
// Lookups that find nothing return a zero Project (empty ID) with a nil
// error; callers translate that to their own not-found sentinel.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByStatus(ctx context.Context, status entities.ProjectStatus) ([]entities.Project, error)
	ListAll(ctx context.Context) ([]entities.Project, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	DeleteByID(ctx context.Context, id string) error
}
