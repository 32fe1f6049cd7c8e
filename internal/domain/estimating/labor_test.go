package estimating

import (
	"testing"

	"github.com/paveiq/bidmaster/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestComputeLabor_RoadSplit(t *testing.T) {
	e := NewEngine(DefaultConstants())

	// 20000 / 200 = 100 crew-hours, under the 8-week cap of 2240.
	labor := e.ComputeLabor(20000, 8, "road", entities.MaterialAsphalt, 0)
	require.Equal(t, 100, labor.TotalHours)
	require.Equal(t, 10, labor.ManagementHours)
	require.Equal(t, 30, labor.PrepHours)
	require.Equal(t, 50, labor.PavingHours)
	require.Equal(t, 10, labor.FinishingHours)
}

func TestComputeLabor_ProductivityRates(t *testing.T) {
	e := NewEngine(DefaultConstants())

	cases := []struct {
		name        string
		projectType string
		kind        entities.MaterialKind
		widthFt     float64
		wantTotal   int
	}{
		{"road", "road", entities.MaterialAsphalt, 0, 300},                  // 60000/200
		{"narrow concrete road", "road", entities.MaterialConcrete, 3, 200}, // 60000/300
		{"narrow asphalt road stays standard", "road", entities.MaterialAsphalt, 3, 300},
		{"sidewalk", "sidewalk", entities.MaterialConcrete, 0, 400},      // 60000/150
		{"parking lot", "parking lot", entities.MaterialAsphalt, 0, 500}, // 60000/120
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			labor := e.ComputeLabor(60000, 8, tc.projectType, tc.kind, tc.widthFt)
			require.Equal(t, tc.wantTotal, labor.TotalHours)
		})
	}
}

func TestComputeLabor_NarrowPhaseSplit(t *testing.T) {
	e := NewEngine(DefaultConstants())

	// Narrow concrete: 60000/300 = 200 hours split 10/20/65/5.
	labor := e.ComputeLabor(60000, 8, "road", entities.MaterialConcrete, 3)
	require.Equal(t, 200, labor.TotalHours)
	require.Equal(t, 20, labor.ManagementHours)
	require.Equal(t, 40, labor.PrepHours)
	require.Equal(t, 130, labor.PavingHours)
	require.Equal(t, 10, labor.FinishingHours)
}

func TestComputeLabor_DurationCap(t *testing.T) {
	e := NewEngine(DefaultConstants())

	// 600000/200 = 3000 hours, capped at 7*40*1 = 280 for one week.
	labor := e.ComputeLabor(600000, 1, "road", entities.MaterialAsphalt, 0)
	require.Equal(t, 280, labor.TotalHours)
}

func TestComputeLabor_CrewDayFloor(t *testing.T) {
	e := NewEngine(DefaultConstants())

	// 2000/200 = 10 hours, floored at one crew-day of 56.
	labor := e.ComputeLabor(2000, 8, "road", entities.MaterialAsphalt, 0)
	require.Equal(t, 56, labor.TotalHours)
}

func TestComputeLabor_PhaseSumNearTotal(t *testing.T) {
	e := NewEngine(DefaultConstants())

	// Phases round independently; their sum stays within 1 of the total.
	for _, area := range []float64{2000, 11111, 20000, 52800, 123456, 600000} {
		for _, width := range []float64{0, 3, 12} {
			labor := e.ComputeLabor(area, 8, "road", entities.MaterialConcrete, width)
			sum := labor.ManagementHours + labor.PrepHours + labor.PavingHours + labor.FinishingHours
			diff := sum - labor.TotalHours
			if diff < 0 {
				diff = -diff
			}
			require.LessOrEqual(t, diff, 1, "area %.0f width %.0f", area, width)
		}
	}
}
