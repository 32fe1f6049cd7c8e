package estimating

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeSuccessProbability(t *testing.T) {
	e := NewEngine(DefaultConstants())

	cases := []struct {
		name        string
		projectType string
		areaSqft    float64
		weeks       float64
		want        string
	}{
		{"baseline road", "road", 50000, 8, "80%"},
		{"small quick road", "road", 10000, 4, "90%"},
		{"huge slow renovation", "renovation", 200000, 30, "60%"}, // 75-5-8-7=55, clamped
		{"unknown type", "parking lot", 50000, 8, "75%"},
		{"large road", "road", 200000, 8, "72%"},
		{"slow road", "road", 50000, 30, "73%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, e.ComputeSuccessProbability(tc.projectType, tc.areaSqft, tc.weeks))
		})
	}
}

func TestComputeSuccessProbability_Bounds(t *testing.T) {
	e := NewEngine(DefaultConstants())

	types := []string{"road", "renovation", "sidewalk", ""}
	areas := []float64{1000, 15000, 50000, 150001, 500000}
	weeks := []float64{1, 5.9, 8, 24.1, 52}
	for _, pt := range types {
		for _, a := range areas {
			for _, w := range weeks {
				got := e.ComputeSuccessProbability(pt, a, w)
				require.Regexp(t, `^\d{2}%$`, got)
				require.GreaterOrEqual(t, got, "60%")
				require.LessOrEqual(t, got, "95%")
			}
		}
	}
}
