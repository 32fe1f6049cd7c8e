package estimating

import (
	"fmt"
	"math"

	"github.com/paveiq/bidmaster/internal/domain/entities"
)

// ComputeFinancials rolls material, labor and equipment costs up into the
// marked-up project total. Monetary outputs are rounded to whole currency
// units; cost per square foot keeps 2 decimals.
func (e *Engine) ComputeFinancials(
	materials entities.MaterialEstimate,
	labor entities.LaborEstimate,
	equipment entities.EquipmentEstimate,
	areaSqft, durationWeeks float64,
	kind entities.MaterialKind,
) entities.FinancialSummary {
	_, spec := resolveMaterial(kind)

	var materialCosts float64
	for _, item := range spec.costs {
		materialCosts += materials[item.quantityKey] * e.constants.unitCost(item.priceKey) * e.constants.MaterialMarkup
	}

	laborHours := float64(labor.TotalHours)
	if laborHours <= 0 {
		// Never let labor silently be zero on a real area; assume 10 crew
		// hours per 100 sq ft.
		laborHours = areaSqft / 100 * 10
	}
	laborCosts := laborHours * e.constants.LaborRate

	equipmentCosts := (equipment.PaverCost + equipment.RollerCost + equipment.ExcavatorCost + equipment.TruckCost) *
		e.constants.EquipmentRateMultiplier

	subtotal := materialCosts + laborCosts + equipmentCosts
	overhead := subtotal * e.constants.OverheadRate
	profit := subtotal * e.constants.ProfitMargin
	totalCost := subtotal + overhead + profit

	costPerSqft := 0.0
	if areaSqft > 0 {
		costPerSqft = totalCost / areaSqft
	}

	return entities.FinancialSummary{
		TotalCost:    math.Round(totalCost),
		CostPerSqft:  math.Round(costPerSqft*100) / 100,
		ProfitMargin: fmt.Sprintf("%.0f%%", e.constants.ProfitMargin*100),
		CostBreakdown: entities.CostBreakdown{
			Materials: math.Round(materialCosts),
			Labor:     math.Round(laborCosts),
			Equipment: math.Round(equipmentCosts),
			Overhead:  math.Round(overhead),
			Profit:    math.Round(profit),
		},
	}
}
