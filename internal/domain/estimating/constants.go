// Package estimating implements the paving cost estimation engine: input
// normalization, material quantity takeoff, crew-hour allocation, equipment
// sizing, financial roll-up and the bid success heuristic.
//
// The engine is pure: apart from the clock injected by the caller for
// date/duration resolution it has no side effects and no shared state.
package estimating

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConstantSet is a named, versioned table of the Virginia market constants
// (VDOT and RSMeans, 2025) the engine computes with.
//
// Two sets ship by default. The deployed pipeline and a later revision of it
// drifted apart on hot-mix asphalt density (145 vs 150 lbs/ft3); rather than
// silently picking one, both are kept under their own names and the active
// set is selected by BIDMASTER_CONSTANTS. "vdot-2025" (density 145) is the
// default.
type ConstantSet struct {
	Name                    string             `yaml:"name"`
	LaborRate               float64            `yaml:"labor_rate"`                // $/crew-hour
	MaterialMarkup          float64            `yaml:"material_markup"`           // e.g. 1.15
	EquipmentRateMultiplier float64            `yaml:"equipment_rate_multiplier"` // e.g. 1.12
	ProfitMargin            float64            `yaml:"profit_margin"`             // fraction of subtotal
	OverheadRate            float64            `yaml:"overhead_rate"`             // fraction of subtotal
	CrewSize                int                `yaml:"crew_size"`
	HoursPerWorkerWeek      int                `yaml:"hours_per_worker_week"`
	UnitCosts               map[string]float64 `yaml:"unit_costs"`  // priced per material family key
	Densities               map[string]float64 `yaml:"densities"`   // lbs/ft3 by material kind
	Thicknesses             map[string]float64 `yaml:"thicknesses"` // ft by material kind
}

// DefaultConstants is the authoritative 2025 set (asphalt density 145,
// matching VDOT hot-mix averages).
func DefaultConstants() ConstantSet {
	return ConstantSet{
		Name:                    "vdot-2025",
		LaborRate:               62.50,
		MaterialMarkup:          1.15,
		EquipmentRateMultiplier: 1.12,
		ProfitMargin:            0.10,
		OverheadRate:            0.12,
		CrewSize:                7,
		HoursPerWorkerWeek:      40,
		UnitCosts: map[string]float64{
			"asphalt":            110,  // $/ton
			"recycled asphalt":   85,   // $/ton
			"concrete":           170,  // $/yd3
			"bituminous surface": 120,  // $/ton
			"sealcoat":           0.55, // $/sq ft
			"rebar":              0.80, // $/lb
			"aggregate base":     42,   // $/ton
		},
		Densities: map[string]float64{
			"asphalt":            145,
			"recycled asphalt":   140,
			"bituminous surface": 145,
			"concrete":           150,
			"sealcoat":           100,
		},
		Thicknesses: map[string]float64{
			"asphalt":            0.33, // 4 in
			"recycled asphalt":   0.25, // 3 in
			"bituminous surface": 0.17, // 2 in
			"concrete":           0.42, // 6 in
			"sealcoat":           0.02,
		},
	}
}

// RevisedConstants is the drifted second-pipeline set (asphalt density 150).
// Kept so historic estimates can be reproduced; not the default.
func RevisedConstants() ConstantSet {
	c := DefaultConstants()
	c.Name = "vdot-2025r1"
	c.Densities = map[string]float64{
		"asphalt":            150,
		"recycled asphalt":   145,
		"bituminous surface": 150,
		"concrete":           150,
		"sealcoat":           100,
	}
	return c
}

// LoadConstants resolves the active ConstantSet: the named built-in selected
// by BIDMASTER_CONSTANTS (default "vdot-2025"), optionally overridden field
// by field from the yaml file at BIDMASTER_CONSTANTS_FILE.
func LoadConstants() (ConstantSet, error) {
	set, err := constantsByName(os.Getenv("BIDMASTER_CONSTANTS"))
	if err != nil {
		return ConstantSet{}, err
	}

	if path := os.Getenv("BIDMASTER_CONSTANTS_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return ConstantSet{}, fmt.Errorf("read constants file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &set); err != nil {
			return ConstantSet{}, fmt.Errorf("parse constants file %q: %w", path, err)
		}
	}
	return set, nil
}

func constantsByName(name string) (ConstantSet, error) {
	switch name {
	case "", "vdot-2025":
		return DefaultConstants(), nil
	case "vdot-2025r1":
		return RevisedConstants(), nil
	default:
		return ConstantSet{}, fmt.Errorf("unknown constant set %q", name)
	}
}

func (c ConstantSet) density(kind string) float64 {
	return c.Densities[kind]
}

func (c ConstantSet) thickness(kind string) float64 {
	return c.Thicknesses[kind]
}

func (c ConstantSet) unitCost(key string) float64 {
	return c.UnitCosts[key]
}
