package estimating

import (
	"testing"

	"github.com/paveiq/bidmaster/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestComputeFinancials_Rollup(t *testing.T) {
	e := NewEngine(DefaultConstants())

	area, weeks := 20000.0, 8.0
	kind := entities.MaterialAsphalt
	materials := e.ComputeMaterials(area, kind, 0)
	labor := e.ComputeLabor(area, weeks, "road", kind, 0)
	equipment := e.ComputeEquipment(area, weeks)

	fin := e.ComputeFinancials(materials, labor, equipment, area, weeks, kind)

	// (478.5*110 + 574.2*42) * 1.15
	require.Equal(t, 88264.0, fin.CostBreakdown.Materials)
	// 100 crew-hours * 62.50
	require.Equal(t, 6250.0, fin.CostBreakdown.Labor)
	// (20000+8000+16000+14400) * 1.12
	require.Equal(t, 65408.0, fin.CostBreakdown.Equipment)

	subtotal := 88264.11 + 6250 + 65408
	require.InDelta(t, subtotal*0.12, fin.CostBreakdown.Overhead, 1)
	require.InDelta(t, subtotal*0.10, fin.CostBreakdown.Profit, 1)
	require.InDelta(t, subtotal*1.22, fin.TotalCost, 1)
	require.InDelta(t, fin.TotalCost/area, fin.CostPerSqft, 0.01)
	require.Equal(t, "10%", fin.ProfitMargin)
}

func TestComputeFinancials_LaborFallback(t *testing.T) {
	e := NewEngine(DefaultConstants())

	// Zero labor hours never means free labor: 20000/100*10 = 2000 hours.
	fin := e.ComputeFinancials(entities.MaterialEstimate{}, entities.LaborEstimate{}, entities.EquipmentEstimate{}, 20000, 8, entities.MaterialAsphalt)
	require.Equal(t, 125000.0, fin.CostBreakdown.Labor) // 2000 * 62.50
}

func TestComputeFinancials_ZeroAreaCostPerSqft(t *testing.T) {
	e := NewEngine(DefaultConstants())

	fin := e.ComputeFinancials(entities.MaterialEstimate{}, entities.LaborEstimate{TotalHours: 10}, entities.EquipmentEstimate{}, 0, 8, entities.MaterialAsphalt)
	require.Equal(t, 0.0, fin.CostPerSqft)
}

func TestComputeFinancials_MonotoneInArea(t *testing.T) {
	e := NewEngine(DefaultConstants())

	prev := -1.0
	for _, area := range []float64{1000, 20000, 52800, 150000, 600000} {
		kind := entities.MaterialAsphalt
		materials := e.ComputeMaterials(area, kind, 0)
		labor := e.ComputeLabor(area, 8, "road", kind, 0)
		equipment := e.ComputeEquipment(area, 8)
		fin := e.ComputeFinancials(materials, labor, equipment, area, 8, kind)

		require.Greater(t, fin.TotalCost, prev, "area %.0f", area)
		prev = fin.TotalCost
	}
}
