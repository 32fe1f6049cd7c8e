package estimating

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeEquipment_MinimumFleet(t *testing.T) {
	e := NewEngine(DefaultConstants())

	eq := e.ComputeEquipment(1000, 8)
	require.Equal(t, 1, eq.Pavers)
	require.Equal(t, 1, eq.Rollers)
	require.Equal(t, 1, eq.Excavators)
	require.Equal(t, 2, eq.Trucks)
}

func TestComputeEquipment_CountsScaleWithArea(t *testing.T) {
	e := NewEngine(DefaultConstants())

	eq := e.ComputeEquipment(250000, 8)
	require.Equal(t, 3, eq.Pavers)     // ceil(250000/120000)
	require.Equal(t, 5, eq.Rollers)    // ceil(250000/60000)
	require.Equal(t, 2, eq.Excavators) // ceil(250000/150000)
	require.Equal(t, 5, eq.Trucks)     // ceil(250000/50000)
}

func TestComputeEquipment_CostsFollowDuration(t *testing.T) {
	e := NewEngine(DefaultConstants())

	eq := e.ComputeEquipment(20000, 8)
	require.Equal(t, 20000.0, eq.PaverCost)     // 1 * 2500 * 8
	require.Equal(t, 8000.0, eq.RollerCost)     // 1 * 1000 * 8
	require.Equal(t, 16000.0, eq.ExcavatorCost) // 1 * 2000 * 8
	require.Equal(t, 14400.0, eq.TruckCost)     // 2 * 900 * 8
}

func TestComputeEquipment_MonotoneInArea(t *testing.T) {
	e := NewEngine(DefaultConstants())

	prev := e.ComputeEquipment(10000, 8)
	for _, area := range []float64{50000, 120000, 250000, 600000} {
		cur := e.ComputeEquipment(area, 8)
		require.GreaterOrEqual(t, cur.Pavers, prev.Pavers)
		require.GreaterOrEqual(t, cur.Rollers, prev.Rollers)
		require.GreaterOrEqual(t, cur.Excavators, prev.Excavators)
		require.GreaterOrEqual(t, cur.Trucks, prev.Trucks)
		require.GreaterOrEqual(t, cur.TruckCost, prev.TruckCost)
		prev = cur
	}
}
