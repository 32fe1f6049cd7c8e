package estimating

import (
	"math"

	"github.com/paveiq/bidmaster/internal/domain/entities"
)

// Engine evaluates the estimation formulas against one ConstantSet. It is
// stateless and safe for concurrent use.
type Engine struct {
	constants ConstantSet
}

func NewEngine(c ConstantSet) *Engine {
	return &Engine{constants: c}
}

// Constants returns the set the engine was built with.
func (e *Engine) Constants() ConstantSet { return e.constants }

// ComputeMaterials performs the material takeoff for the given area and kind.
// An explicit RFP-stated tonnage overrides the geometric primary quantity.
// Quantities are rounded to 1 decimal, or to whole numbers for inherently
// discrete units.
func (e *Engine) ComputeMaterials(areaSqft float64, kind entities.MaterialKind, tonnageHint float64) entities.MaterialEstimate {
	kind, spec := resolveMaterial(kind)

	primary := tonnageHint
	if primary <= 0 {
		switch spec.formula {
		case formulaTonsVolumetric:
			volumeCf := areaSqft * e.constants.thickness(string(kind))
			primary = volumeCf * e.constants.density(string(kind)) / 2000
		case formulaYardsVolumetric:
			volumeCf := areaSqft * e.constants.thickness(string(kind))
			primary = volumeCf / 27
		case formulaAreaSqft:
			primary = areaSqft
		}
	}

	out := entities.MaterialEstimate{
		spec.primaryKey: roundQuantity(primary, spec.wholeNum),
	}
	for _, sec := range spec.secondary {
		base := primary
		if sec.ofArea {
			base = areaSqft
		}
		out[sec.key] = roundQuantity(base*sec.ratio, sec.wholeNum)
	}
	return out
}

// PrimaryQuantity picks the primary quantity for kind out of a computed
// material estimate (e.g. asphalt_tons for the asphalt family).
func (e *Engine) PrimaryQuantity(kind entities.MaterialKind, est entities.MaterialEstimate) float64 {
	_, spec := resolveMaterial(kind)
	return est[spec.primaryKey]
}

func roundQuantity(v float64, whole bool) float64 {
	if whole {
		return math.Round(v)
	}
	return math.Round(v*10) / 10
}
