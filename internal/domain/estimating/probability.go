package estimating

import (
	"fmt"
	"strings"
)

// ComputeSuccessProbability scores the bid's chance of winning from project
// type, area and duration. Adjustments are additive and independent; the
// result is clamped to [60, 95] and formatted as "NN%".
func (e *Engine) ComputeSuccessProbability(projectType string, areaSqft, durationWeeks float64) string {
	prob := 75

	switch strings.ToLower(projectType) {
	case "road":
		prob += 5
	case "renovation":
		prob -= 5
	}

	if areaSqft > 150000 {
		prob -= 8
	} else if areaSqft < 15000 {
		prob += 5
	}

	if durationWeeks > 24 {
		prob -= 7
	} else if durationWeeks < 6 {
		prob += 5
	}

	if prob < 60 {
		prob = 60
	}
	if prob > 95 {
		prob = 95
	}
	return fmt.Sprintf("%d%%", prob)
}
