package response

import (
	"github.com/paveiq/bidmaster/internal/domain/entities"
	"github.com/paveiq/bidmaster/internal/usecase"
)

// ProjectSummaryResponse is the resolved-input section of an estimate result.
type ProjectSummaryResponse struct {
	ProjectName    string  `json:"project_name"`
	ProjectType    string  `json:"project_type"`
	Location       string  `json:"location"`
	CompletionDate string  `json:"completion_date"`
	DurationWeeks  float64 `json:"duration_weeks"`
	AreaSqft       float64 `json:"area_sqft"`
	MaterialType   string  `json:"material_type"`
	LandMile       float64 `json:"land_mile"`
	Width          float64 `json:"width"`
	Tonnage        float64 `json:"tonnage"`
}

// EstimateResponse is the wire shape the report collaborators consume; field
// names are part of the contract.
type EstimateResponse struct {
	ProjectSummary     ProjectSummaryResponse     `json:"project_summary"`
	MaterialEstimates  map[string]float64         `json:"material_estimates"`
	LaborEstimates     entities.LaborEstimate     `json:"labor_estimates"`
	EquipmentEstimates entities.EquipmentEstimate `json:"equipment_estimates"`
	FinancialSummary   entities.FinancialSummary  `json:"financial_summary"`
	SuccessProbability string                     `json:"success_probability"`
	ProjectID          string                     `json:"project_id"`
}

func FromEstimateResult(r usecase.EstimateResult) EstimateResponse {
	return EstimateResponse{
		ProjectSummary: ProjectSummaryResponse{
			ProjectName:    r.ProjectSummary.ProjectName,
			ProjectType:    r.ProjectSummary.ProjectType,
			Location:       r.ProjectSummary.Location,
			CompletionDate: r.ProjectSummary.CompletionDate,
			DurationWeeks:  r.ProjectSummary.DurationWeeks,
			AreaSqft:       r.ProjectSummary.AreaSqft,
			MaterialType:   r.ProjectSummary.MaterialType,
			LandMile:       r.ProjectSummary.LandMile,
			Width:          r.ProjectSummary.Width,
			Tonnage:        r.ProjectSummary.Tonnage,
		},
		MaterialEstimates:  r.MaterialEstimates,
		LaborEstimates:     r.LaborEstimates,
		EquipmentEstimates: r.EquipmentEstimates,
		FinancialSummary:   r.FinancialSummary,
		SuccessProbability: r.SuccessProbability,
		ProjectID:          r.ProjectID,
	}
}
