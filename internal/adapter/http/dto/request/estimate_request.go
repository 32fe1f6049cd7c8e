package request

import (
	"fmt"
	"strconv"

	"github.com/paveiq/bidmaster/internal/domain/entities"
	"github.com/paveiq/bidmaster/internal/domain/estimating"
)

// QuantityLineRequest is one extracted material/quantity/unit line item.
type QuantityLineRequest struct {
	Material string  `json:"material"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// EstimateRequest is the loose estimate payload. Clients range from the
// manual form to upstream extraction pipelines, so every numeric field may
// arrive as a JSON number, a string with junk in it, or not at all; nothing
// here is validated beyond JSON well-formedness. The engine's normalization
// pass owns all coercion and defaulting.
type EstimateRequest struct {
	ProjectName         string                `json:"project_name"`
	ProjectType         string                `json:"project_type"`
	ProjectLocation     string                `json:"project_location"`
	CompletionDate      string                `json:"completion_date"`
	ProjectDuration     any                   `json:"project_duration"`
	LandMile            any                   `json:"land_mile"`
	Width               any                   `json:"width"`
	ProjectArea         any                   `json:"project_area"`
	MaterialType        string                `json:"material_type"`
	Tonnage             any                   `json:"tonnage"`
	ProjectScope        string                `json:"project_scope"`
	ProjectRequirements string                `json:"project_requirements"`
	Quantities          []QuantityLineRequest `json:"quantities"`
}

// ToInput flattens the payload into the engine's field dictionary.
func (r EstimateRequest) ToInput() estimating.Input {
	quantities := make([]entities.QuantityLine, 0, len(r.Quantities))
	for _, q := range r.Quantities {
		quantities = append(quantities, entities.QuantityLine{
			Material: q.Material,
			Quantity: q.Quantity,
			Unit:     q.Unit,
		})
	}

	return estimating.Input{
		ProjectName:    r.ProjectName,
		ProjectType:    r.ProjectType,
		Location:       r.ProjectLocation,
		Scope:          r.ProjectScope,
		Requirements:   r.ProjectRequirements,
		MaterialType:   r.MaterialType,
		Tonnage:        asString(r.Tonnage),
		LandMile:       asString(r.LandMile),
		WidthFt:        asString(r.Width),
		AreaSqft:       asString(r.ProjectArea),
		CompletionDate: r.CompletionDate,
		DurationWeeks:  asString(r.ProjectDuration),
		Quantities:     quantities,
	}
}

// asString keeps whatever representation the client sent; coercion happens in
// one place, downstream.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
