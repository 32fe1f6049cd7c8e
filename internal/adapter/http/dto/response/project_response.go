package response

import (
	"github.com/paveiq/bidmaster/internal/domain/entities"
)

// ProjectListItemResponse is the compact row shown on the review dashboard.
type ProjectListItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Location  string `json:"location"`
	Submitted string `json:"submitted"`
	Status    string `json:"status"`
	Cost      string `json:"cost"`
}

// ProjectDetailsResponse carries the full derived-estimate fields.
type ProjectDetailsResponse struct {
	CompletionDate     string             `json:"completion_date"`
	DurationWeeks      float64            `json:"duration_weeks"`
	LandMile           float64            `json:"land_mile"`
	Width              float64            `json:"width"`
	Area               float64            `json:"area"`
	Material           string             `json:"material"`
	Tonnage            float64            `json:"tonnage"`
	Scope              string             `json:"scope"`
	Requirements       string             `json:"requirements"`
	EstimatedCost      string             `json:"estimated_cost"`
	ProfitMargin       string             `json:"profit_margin"`
	SuccessProbability string             `json:"success_probability"`
	Materials          map[string]float64 `json:"materials"`
	ManagementHours    int                `json:"management_hours"`
	PrepHours          int                `json:"prep_hours"`
	PavingHours        int                `json:"paving_hours"`
	FinishingHours     int                `json:"finishing_hours"`
}

// ProjectDetailResponse is a list row plus its details block.
type ProjectDetailResponse struct {
	ProjectListItemResponse
	Details ProjectDetailsResponse `json:"details"`
}

func FromProject(p entities.Project) ProjectListItemResponse {
	return ProjectListItemResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      p.Type,
		Location:  p.Location,
		Submitted: p.Submitted.Format("2006-01-02"),
		Status:    string(p.Status),
		Cost:      p.Cost,
	}
}

func FromProjectDetail(p entities.Project) ProjectDetailResponse {
	return ProjectDetailResponse{
		ProjectListItemResponse: FromProject(p),
		Details: ProjectDetailsResponse{
			CompletionDate:     p.CompletionDate.Format("2006-01-02"),
			DurationWeeks:      p.DurationWeeks,
			LandMile:           p.LandMile,
			Width:              p.Width,
			Area:               p.Area,
			Material:           p.Material,
			Tonnage:            p.Tonnage,
			Scope:              p.Scope,
			Requirements:       p.Requirements,
			EstimatedCost:      p.EstimatedCost,
			ProfitMargin:       p.ProfitMargin,
			SuccessProbability: p.SuccessProbability,
			Materials:          p.Materials,
			ManagementHours:    p.Labor.ManagementHours,
			PrepHours:          p.Labor.PrepHours,
			PavingHours:        p.Labor.PavingHours,
			FinishingHours:     p.Labor.FinishingHours,
		},
	}
}

func FromProjects(projects []entities.Project) []ProjectListItemResponse {
	out := make([]ProjectListItemResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
