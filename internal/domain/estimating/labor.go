package estimating

import (
	"math"
	"strings"

	"github.com/paveiq/bidmaster/internal/domain/entities"
)

// Crew productivity in sq ft per crew-hour, by project type keyword.
const (
	rateRoad           = 200
	rateNarrowConcrete = 300
	rateSidewalk       = 150
	rateGeneral        = 120
)

// narrowWidthFt marks footpath-class work: a positive width of 3 ft or less.
const narrowWidthFt = 3

// ComputeLabor allocates crew-hours for the standard crew and splits them
// across the management/prep/paving/finishing phases. Phase hours are rounded
// independently, so they may sum to total +/- 1.
func (e *Engine) ComputeLabor(areaSqft, durationWeeks float64, projectType string, kind entities.MaterialKind, widthFt float64) entities.LaborEstimate {
	isNarrow := widthFt > 0 && widthFt <= narrowWidthFt

	var sqftPerCrewHour float64
	switch {
	case strings.Contains(strings.ToLower(projectType), "road"):
		if isNarrow && strings.Contains(string(kind), "concrete") {
			sqftPerCrewHour = rateNarrowConcrete
		} else {
			sqftPerCrewHour = rateRoad
		}
	case strings.Contains(strings.ToLower(projectType), "sidewalk"):
		sqftPerCrewHour = rateSidewalk
	default:
		sqftPerCrewHour = rateGeneral
	}

	totalCrewHours := areaSqft / sqftPerCrewHour

	if durationWeeks > 0 {
		maxTotal := float64(e.constants.CrewSize*e.constants.HoursPerWorkerWeek) * durationWeeks
		totalCrewHours = math.Min(totalCrewHours, maxTotal)
	}
	// One full crew-day floor for small jobs.
	totalCrewHours = math.Max(totalCrewHours, float64(e.constants.CrewSize)*8)

	managementPct, prepPct, pavingPct, finishingPct := 0.10, 0.30, 0.50, 0.10
	if isNarrow {
		managementPct, prepPct, pavingPct, finishingPct = 0.10, 0.20, 0.65, 0.05
	}

	return entities.LaborEstimate{
		ManagementHours: int(math.Round(totalCrewHours * managementPct)),
		PrepHours:       int(math.Round(totalCrewHours * prepPct)),
		PavingHours:     int(math.Round(totalCrewHours * pavingPct)),
		FinishingHours:  int(math.Round(totalCrewHours * finishingPct)),
		TotalHours:      int(math.Round(totalCrewHours)),
	}
}
