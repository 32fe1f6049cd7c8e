package estimating

import (
	"math"

	"github.com/paveiq/bidmaster/internal/domain/entities"
)

// Per-unit coverage thresholds (sq ft) and weekly rental rates ($/week),
// Virginia rental market 2025.
const (
	paverCoverage     = 120000
	rollerCoverage    = 60000
	excavatorCoverage = 150000
	truckCoverage     = 50000

	paverWeeklyRate     = 2500
	rollerWeeklyRate    = 1000
	excavatorWeeklyRate = 2000
	truckWeeklyRate     = 900
)

// ComputeEquipment sizes the rental fleet for the area and prices it over the
// project duration. Counts never drop below one unit, or two for trucks.
func (e *Engine) ComputeEquipment(areaSqft, durationWeeks float64) entities.EquipmentEstimate {
	pavers := unitsFor(areaSqft, paverCoverage, 1)
	rollers := unitsFor(areaSqft, rollerCoverage, 1)
	excavators := unitsFor(areaSqft, excavatorCoverage, 1)
	trucks := unitsFor(areaSqft, truckCoverage, 2)

	return entities.EquipmentEstimate{
		Pavers:        pavers,
		Rollers:       rollers,
		Excavators:    excavators,
		Trucks:        trucks,
		PaverCost:     math.Round(float64(pavers) * paverWeeklyRate * durationWeeks),
		RollerCost:    math.Round(float64(rollers) * rollerWeeklyRate * durationWeeks),
		ExcavatorCost: math.Round(float64(excavators) * excavatorWeeklyRate * durationWeeks),
		TruckCost:     math.Round(float64(trucks) * truckWeeklyRate * durationWeeks),
	}
}

func unitsFor(areaSqft float64, coverage float64, min int) int {
	n := int(math.Ceil(areaSqft / coverage))
	if n < min {
		return min
	}
	return n
}
