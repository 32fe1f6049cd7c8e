package estimating

import "github.com/paveiq/bidmaster/internal/domain/entities"

// primaryFormula selects how a material's primary quantity is derived from
// project geometry when no explicit tonnage is stated.
type primaryFormula int

const (
	// tons from volume: area * thickness * density / 2000
	formulaTonsVolumetric primaryFormula = iota
	// cubic yards from volume: area * thickness / 27
	formulaYardsVolumetric
	// square feet straight from area
	formulaAreaSqft
)

// secondaryRatio derives an extra quantity from the primary quantity or the
// project area (rebar is specified per square foot, aggregate per primary ton).
type secondaryRatio struct {
	key      string
	ofArea   bool // multiply area instead of primary quantity
	ratio    float64
	wholeNum bool
}

// costItem prices one output quantity against a unit-cost key.
type costItem struct {
	quantityKey string
	priceKey    string
}

// materialSpec is one row of the material registry: how to compute a kind's
// primary quantity, which secondary quantities follow, and how the result is
// priced. New material kinds are added here, not in the calculators.
type materialSpec struct {
	formula    primaryFormula
	primaryKey string
	wholeNum   bool
	secondary  []secondaryRatio
	costs      []costItem
}

// materialRegistry covers the kinds the takeoff formulas exist for. Every
// other MaterialKind the extractors can emit (aggregate base, curb, pavers,
// drainage pipe, ...) degrades to asphalt, matching the deployed behavior.
var materialRegistry = map[entities.MaterialKind]materialSpec{
	entities.MaterialAsphalt: {
		formula:    formulaTonsVolumetric,
		primaryKey: "asphalt_tons",
		secondary:  []secondaryRatio{{key: "aggregate_tons", ratio: 1.2}},
		costs: []costItem{
			{quantityKey: "asphalt_tons", priceKey: "asphalt"},
			{quantityKey: "aggregate_tons", priceKey: "aggregate base"},
		},
	},
	entities.MaterialRecycledAsphalt: {
		formula:    formulaTonsVolumetric,
		primaryKey: "asphalt_tons",
		secondary:  []secondaryRatio{{key: "aggregate_tons", ratio: 1.2}},
		costs: []costItem{
			{quantityKey: "asphalt_tons", priceKey: "recycled asphalt"},
			{quantityKey: "aggregate_tons", priceKey: "aggregate base"},
		},
	},
	entities.MaterialBituminous: {
		formula:    formulaTonsVolumetric,
		primaryKey: "bituminous_tons",
		secondary:  []secondaryRatio{{key: "aggregate_tons", ratio: 1.2}},
		costs: []costItem{
			{quantityKey: "bituminous_tons", priceKey: "bituminous surface"},
			{quantityKey: "aggregate_tons", priceKey: "aggregate base"},
		},
	},
	entities.MaterialConcrete: {
		formula:    formulaYardsVolumetric,
		primaryKey: "concrete_yds",
		// 1.2 lbs rebar per sq ft, VDOT reinforced slab average.
		secondary: []secondaryRatio{{key: "rebar_lbs", ofArea: true, ratio: 1.2}},
		costs: []costItem{
			{quantityKey: "concrete_yds", priceKey: "concrete"},
			{quantityKey: "rebar_lbs", priceKey: "rebar"},
		},
	},
	entities.MaterialSealcoat: {
		formula:    formulaAreaSqft,
		primaryKey: "sealcoat_sqft",
		wholeNum:   true,
		costs: []costItem{
			{quantityKey: "sealcoat_sqft", priceKey: "sealcoat"},
		},
	},
}

// resolveMaterial returns the registry row for kind, falling back to asphalt
// exactly once for unrecognized kinds.
func resolveMaterial(kind entities.MaterialKind) (entities.MaterialKind, materialSpec) {
	if spec, ok := materialRegistry[kind]; ok {
		return kind, spec
	}
	return entities.MaterialAsphalt, materialRegistry[entities.MaterialAsphalt]
}
