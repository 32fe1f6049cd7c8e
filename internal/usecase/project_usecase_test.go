package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/paveiq/bidmaster/internal/domain/entities"
	mock_interfaces "github.com/paveiq/bidmaster/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_List(t *testing.T) {
	t.Run("defaults to pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().ListByStatus(gomock.Any(), entities.ProjectStatusPending).Return([]entities.Project{{ID: "p-1"}}, nil)

		got, err := uc.List(context.Background(), "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "p-1" {
			t.Fatalf("unexpected projects: %+v", got)
		}
	})

	t.Run("all bypasses the filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		if _, err := uc.List(context.Background(), "ALL"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("accepted filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().ListByStatus(gomock.Any(), entities.ProjectStatusAccepted).Return(nil, nil)

		if _, err := uc.List(context.Background(), "accepted"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		uc := NewProjectUseCase(nil)

		_, err := uc.List(context.Background(), "archived")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})
}

func TestProjectUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-404").Return(entities.Project{}, nil)

		_, err := uc.GetByID(context.Background(), "p-404")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Name: "Route 7"}, nil)

		p, err := uc.GetByID(context.Background(), " p-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Route 7" {
			t.Fatalf("unexpected project: %+v", p)
		}
	})
}

func TestProjectUseCase_AcceptReject(t *testing.T) {
	t.Run("accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "p-1", entities.ProjectStatusAccepted).
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusAccepted}, nil)

		p, err := uc.Accept(context.Background(), "p-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.ProjectStatusAccepted {
			t.Fatalf("expected accepted, got %q", p.Status)
		}
	})

	t.Run("reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "p-1", entities.ProjectStatusRejected).
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusRejected}, nil)

		if _, err := uc.Reject(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().UpdateStatusByID(gomock.Any(), "p-404", entities.ProjectStatusAccepted).Return(entities.Project{}, nil)

		_, err := uc.Accept(context.Background(), "p-404")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		if _, err := uc.Accept(context.Background(), ""); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})
}

func TestProjectUseCase_Delete(t *testing.T) {
	t.Run("deletes after existence check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)
		repo.EXPECT().DeleteByID(gomock.Any(), "p-1").Return(nil)

		if err := uc.Delete(context.Background(), "p-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found skips delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-404").Return(entities.Project{}, nil)

		err := uc.Delete(context.Background(), "p-404")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})
}
