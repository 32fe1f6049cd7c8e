package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/paveiq/bidmaster/internal/domain/entities"
	"github.com/paveiq/bidmaster/internal/domain/estimating"
	"github.com/paveiq/bidmaster/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidEstimateInput = errors.New("invalid estimate input")
	ErrPersistProject       = errors.New("project persistence failed")
)

// ProjectSummary is the resolved-input section of an estimate result.
type ProjectSummary struct {
	ProjectName    string
	ProjectType    string
	Location       string
	CompletionDate string
	DurationWeeks  float64
	AreaSqft       float64
	MaterialType   string
	LandMile       float64
	Width          float64
	Tonnage        float64
}

// EstimateResult is the full output of one estimate run, persisted as a
// Project and handed to the report layer verbatim.
type EstimateResult struct {
	ProjectSummary     ProjectSummary
	MaterialEstimates  entities.MaterialEstimate
	LaborEstimates     entities.LaborEstimate
	EquipmentEstimates entities.EquipmentEstimate
	FinancialSummary   entities.FinancialSummary
	SuccessProbability string
	ProjectID          string
}

// IEstimateUseCase runs the estimation pipeline end to end: normalize the
// loose input, run the calculators, assemble and persist the project record.

type IEstimateUseCase interface {
	Estimate(ctx context.Context, in estimating.Input) (EstimateResult, error)
}

type EstimateUseCase struct {
	repo   interfaces.IProjectRepository
	engine *estimating.Engine
	now    func() time.Time
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IProjectRepository, engine *estimating.Engine) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, engine: engine, now: time.Now}
}

// Estimate sequences the calculators in strict order. Materials, labor and
// equipment depend only on the normalized input; financials consume all
// three. The record is written exactly once, after every computation
// succeeded, or not at all.
func (u *EstimateUseCase) Estimate(ctx context.Context, in estimating.Input) (EstimateResult, error) {
	now := u.now()

	n, err := estimating.Normalize(in, now)
	if err != nil {
		log.Printf("[estimate][usecase] input rejected: %v", err)
		return EstimateResult{}, fmt.Errorf("%w: %v", ErrInvalidEstimateInput, err)
	}

	materials := u.engine.ComputeMaterials(n.AreaSqft, n.MaterialType, n.Tonnage)
	labor := u.engine.ComputeLabor(n.AreaSqft, n.DurationWeeks, n.ProjectType, n.MaterialType, n.WidthFt)
	equipment := u.engine.ComputeEquipment(n.AreaSqft, n.DurationWeeks)
	financials := u.engine.ComputeFinancials(materials, labor, equipment, n.AreaSqft, n.DurationWeeks, n.MaterialType)
	probability := u.engine.ComputeSuccessProbability(n.ProjectType, n.AreaSqft, n.DurationWeeks)

	recordTonnage := n.Tonnage
	if recordTonnage <= 0 {
		recordTonnage = u.engine.PrimaryQuantity(n.MaterialType, materials)
	}

	cost := fmt.Sprintf("$%.0f", financials.TotalCost)
	project := entities.Project{
		ID:                 uuid.NewString(),
		Name:               n.ProjectName,
		Type:               capitalize(n.ProjectType),
		Location:           n.Location,
		Submitted:          now,
		Status:             entities.ProjectStatusPending,
		Cost:               cost,
		CompletionDate:     n.CompletionDate,
		DurationWeeks:      n.DurationWeeks,
		LandMile:           n.LandMile,
		Width:              n.WidthFt,
		Area:               n.AreaSqft,
		Material:           capitalize(string(n.MaterialType)),
		Tonnage:            recordTonnage,
		Scope:              n.Scope,
		Requirements:       n.Requirements,
		EstimatedCost:      cost,
		ProfitMargin:       financials.ProfitMargin,
		SuccessProbability: probability,
		Materials:          materials,
		Labor:              labor,
		Equipment:          equipment,
		Financials:         financials,
	}

	created, err := u.repo.Create(ctx, project)
	if err != nil {
		log.Printf("[estimate][usecase] persist failed project=%q err=%v", n.ProjectName, err)
		return EstimateResult{}, fmt.Errorf("%w: %v", ErrPersistProject, err)
	}
	log.Printf("[estimate][usecase] project persisted id=%s area=%.0f material=%s total=%s",
		created.ID, n.AreaSqft, n.MaterialType, cost)

	return EstimateResult{
		ProjectSummary: ProjectSummary{
			ProjectName:    n.ProjectName,
			ProjectType:    capitalize(n.ProjectType),
			Location:       n.Location,
			CompletionDate: n.CompletionDate.Format("2006-01-02"),
			DurationWeeks:  n.DurationWeeks,
			AreaSqft:       math.Round(n.AreaSqft),
			MaterialType:   capitalize(string(n.MaterialType)),
			LandMile:       n.LandMile,
			Width:          n.WidthFt,
			Tonnage:        n.Tonnage,
		},
		MaterialEstimates:  materials,
		LaborEstimates:     labor,
		EquipmentEstimates: equipment,
		FinancialSummary:   financials,
		SuccessProbability: probability,
		ProjectID:          created.ID,
	}, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}
