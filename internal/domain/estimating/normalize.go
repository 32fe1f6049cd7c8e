package estimating

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/paveiq/bidmaster/internal/domain/entities"
)

// ErrInvalidArea is returned when no positive project area can be resolved
// from either the stated area or lane-mile length and width. It is the only
// error the normalization pass can produce; every other bad value degrades
// to a default.
var ErrInvalidArea = errors.New("valid area required: provide either area or lane-mile and width")

const (
	feetPerMile          = 5280
	defaultDurationWeeks = 8
)

// Input is the loose field dictionary the engine accepts. It mirrors what the
// upstream extractors (regex or LLM) and the manual API hand over: any field
// may be missing, empty, or a number wrapped in a string with junk around it.
type Input struct {
	ProjectName    string
	ProjectType    string
	Location       string
	Scope          string
	Requirements   string
	MaterialType   string
	Tonnage        string
	LandMile       string
	WidthFt        string
	AreaSqft       string
	CompletionDate string // YYYY-MM-DD
	DurationWeeks  string
	Quantities     []entities.QuantityLine
}

// Normalized is the typed, internally consistent result of one normalization
// pass. All downstream calculators consume only this.
type Normalized struct {
	ProjectName    string
	ProjectType    string
	Location       string
	Scope          string
	Requirements   string
	MaterialType   entities.MaterialKind
	Tonnage        float64
	LandMile       float64
	WidthFt        float64
	AreaSqft       float64
	DurationWeeks  float64
	CompletionDate time.Time
	Quantities     []entities.QuantityLine
}

var nonNumeric = regexp.MustCompile(`[^\d.\-]`)

// CoerceFloat parses a loosely formatted numeric string, stripping every
// character except digits, '.' and '-'. Empty, whitespace-only, "undefined"
// or unparsable values fall back to def. It never fails.
func CoerceFloat(value string, def float64) float64 {
	s := strings.TrimSpace(value)
	if s == "" || strings.EqualFold(s, "undefined") {
		return def
	}
	f, err := strconv.ParseFloat(nonNumeric.ReplaceAllString(s, ""), 64)
	if err != nil {
		return def
	}
	return f
}

// Normalize coerces the raw input into a Normalized value. now is injected so
// date/duration resolution is deterministic under test.
//
// Resolution rules:
//   - area: stated area wins; otherwise lane_mile*5280*width; otherwise
//     ErrInvalidArea.
//   - duration: a parseable completion date wins over a stated duration
//     (weeks = max(days/7, 1)); an unparseable date falls back to now+8w;
//     no date means the stated duration, defaulting to 8 weeks, and the
//     completion date is derived from it.
//   - material: lower-cased and trimmed; kinds without takeoff formulas
//     degrade to asphalt.
func Normalize(in Input, now time.Time) (Normalized, error) {
	n := Normalized{
		ProjectName:  strings.TrimSpace(in.ProjectName),
		ProjectType:  strings.ToLower(strings.TrimSpace(in.ProjectType)),
		Location:     strings.TrimSpace(in.Location),
		Scope:        in.Scope,
		Requirements: in.Requirements,
		Tonnage:      CoerceFloat(in.Tonnage, 0),
		LandMile:     CoerceFloat(in.LandMile, 0),
		WidthFt:      CoerceFloat(in.WidthFt, 0),
		AreaSqft:     CoerceFloat(in.AreaSqft, 0),
		Quantities:   in.Quantities,
	}

	if n.ProjectName == "" {
		n.ProjectName = "Unnamed Project"
	}
	if n.ProjectType == "" {
		n.ProjectType = string(entities.ProjectTypeRoad)
	}
	if n.Location == "" {
		n.Location = "Unknown Location"
	}

	kind := entities.MaterialKind(strings.ToLower(strings.TrimSpace(in.MaterialType)))
	n.MaterialType, _ = resolveMaterial(kind)

	if n.AreaSqft <= 0 && n.LandMile > 0 && n.WidthFt > 0 {
		n.AreaSqft = n.LandMile * feetPerMile * n.WidthFt
	}
	if n.AreaSqft <= 0 {
		return Normalized{}, ErrInvalidArea
	}

	n.CompletionDate, n.DurationWeeks = resolveSchedule(in.CompletionDate, CoerceFloat(in.DurationWeeks, 0), now)
	return n, nil
}

func resolveSchedule(dateStr string, durationWeeks float64, now time.Time) (time.Time, float64) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr != "" {
		completion, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return now.AddDate(0, 0, defaultDurationWeeks*7), defaultDurationWeeks
		}
		weeks := completion.Sub(now).Hours() / 24 / 7
		if weeks < 1 {
			weeks = 1
		}
		return completion, weeks
	}

	if durationWeeks <= 0 {
		durationWeeks = defaultDurationWeeks
	}
	return now.Add(time.Duration(durationWeeks * 7 * 24 * float64(time.Hour))), durationWeeks
}
