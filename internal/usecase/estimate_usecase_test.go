package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/paveiq/bidmaster/internal/domain/entities"
	"github.com/paveiq/bidmaster/internal/domain/estimating"
	mock_interfaces "github.com/paveiq/bidmaster/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

func TestEstimateUseCase_Estimate(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, estimating.NewEngine(estimating.DefaultConstants()))
		uc.now = fixedClock

		_, err := uc.Estimate(context.Background(), estimating.Input{})
		if !errors.Is(err, ErrInvalidEstimateInput) {
			t.Fatalf("expected ErrInvalidEstimateInput, got %v", err)
		}
	})

	t.Run("persist failure returns no id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewEstimateUseCase(repo, estimating.NewEngine(estimating.DefaultConstants()))
		uc.now = fixedClock

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).Return(entities.Project{}, errors.New("db"))

		res, err := uc.Estimate(context.Background(), estimating.Input{AreaSqft: "20000"})
		if !errors.Is(err, ErrPersistProject) {
			t.Fatalf("expected ErrPersistProject, got %v", err)
		}
		if res.ProjectID != "" {
			t.Fatalf("expected empty project id on failure, got %q", res.ProjectID)
		}
	})

	t.Run("full pipeline success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewEstimateUseCase(repo, estimating.NewEngine(estimating.DefaultConstants()))
		uc.now = fixedClock

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Project{})).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID == "" {
					t.Fatalf("expected generated project id")
				}
				if p.Status != entities.ProjectStatusPending {
					t.Fatalf("expected pending status, got %q", p.Status)
				}
				if p.Area != 20000 || p.Material != "Asphalt" {
					t.Fatalf("unexpected project: %+v", p)
				}
				if p.Submitted != fixedClock() {
					t.Fatalf("expected injected clock, got %v", p.Submitted)
				}
				return p, nil
			},
		)

		res, err := uc.Estimate(context.Background(), estimating.Input{
			ProjectName:  "Route 7 Resurfacing",
			ProjectType:  "road",
			AreaSqft:     "20000",
			MaterialType: "asphalt",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProjectID == "" {
			t.Fatalf("expected project id")
		}
		if res.MaterialEstimates["asphalt_tons"] != 478.5 {
			t.Fatalf("expected 478.5 asphalt tons, got %v", res.MaterialEstimates["asphalt_tons"])
		}
		if res.LaborEstimates.TotalHours != 100 {
			t.Fatalf("expected 100 crew-hours, got %d", res.LaborEstimates.TotalHours)
		}
		if res.ProjectSummary.MaterialType != "Asphalt" || res.ProjectSummary.ProjectType != "Road" {
			t.Fatalf("unexpected summary: %+v", res.ProjectSummary)
		}
		if res.SuccessProbability != "80%" {
			t.Fatalf("expected 80%% probability, got %q", res.SuccessProbability)
		}
	})

	t.Run("tonnage hint recorded on project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewEstimateUseCase(repo, estimating.NewEngine(estimating.DefaultConstants()))
		uc.now = fixedClock

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Tonnage != 500 {
					t.Fatalf("expected stated tonnage 500, got %v", p.Tonnage)
				}
				return p, nil
			},
		)

		res, err := uc.Estimate(context.Background(), estimating.Input{AreaSqft: "20000", Tonnage: "500"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MaterialEstimates["asphalt_tons"] != 500 {
			t.Fatalf("expected hint to drive the takeoff, got %v", res.MaterialEstimates["asphalt_tons"])
		}
	})

	t.Run("computed tonnage recorded when none stated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewEstimateUseCase(repo, estimating.NewEngine(estimating.DefaultConstants()))
		uc.now = fixedClock

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.Tonnage != 478.5 {
					t.Fatalf("expected computed tonnage 478.5, got %v", p.Tonnage)
				}
				return p, nil
			},
		)

		if _, err := uc.Estimate(context.Background(), estimating.Input{AreaSqft: "20000"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
