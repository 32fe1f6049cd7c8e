package entities

import "time"

// ProjectStatus represents the review lifecycle of a submitted bid project.
//
// Domain notes:
//   - The estimation engine writes a project exactly once, always as "pending".
//   - Only the admin review flow moves a project to accepted/rejected.
//
//go:generate stringer -type=ProjectStatus

type ProjectStatus string

const (
	ProjectStatusPending  ProjectStatus = "pending"
	ProjectStatusAccepted ProjectStatus = "accepted"
	ProjectStatusRejected ProjectStatus = "rejected"
)

// ProjectType categorizes the paving work; it drives crew productivity rates
// and the bid success heuristic. Unknown values degrade to ProjectTypeGeneral.
type ProjectType string

const (
	ProjectTypeRoad       ProjectType = "road"
	ProjectTypeSidewalk   ProjectType = "sidewalk"
	ProjectTypeGeneral    ProjectType = "general"
	ProjectTypeRenovation ProjectType = "renovation"
	ProjectTypeOther      ProjectType = "other"
)

// MaterialKind is the enumerated paving material driving quantity and cost
// formulas. Unrecognized kinds degrade to MaterialAsphalt rather than failing.
type MaterialKind string

const (
	MaterialAsphalt          MaterialKind = "asphalt"
	MaterialRecycledAsphalt  MaterialKind = "recycled asphalt"
	MaterialBituminous       MaterialKind = "bituminous surface"
	MaterialConcrete         MaterialKind = "concrete"
	MaterialSealcoat         MaterialKind = "sealcoat"
	MaterialAggregateBase    MaterialKind = "aggregate base"
	MaterialSubbase          MaterialKind = "subbase"
	MaterialGeotextile       MaterialKind = "geotextile"
	MaterialThermoStriping   MaterialKind = "thermoplastic striping"
	MaterialCurb             MaterialKind = "curb"
	MaterialSidewalk         MaterialKind = "sidewalk"
	MaterialPavers           MaterialKind = "pavers"
	MaterialDrainagePipe     MaterialKind = "drainage pipe"
	MaterialStormwaterStruct MaterialKind = "stormwater structure"
)

// QuantityLine is a raw material/quantity/unit line item extracted upstream
// from an RFP document. Quantities may be zero when extraction failed.
type QuantityLine struct {
	Material string  `json:"material"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// MaterialEstimate maps quantity kinds (asphalt_tons, concrete_yds, ...) to
// non-negative amounts. Only the kinds relevant to the chosen material are set.
type MaterialEstimate map[string]float64

// LaborEstimate is the crew-hour split for a 7-person crew. The four phase
// values are rounded independently and may sum to total +/- 1.
type LaborEstimate struct {
	ManagementHours int `json:"management_hours"`
	PrepHours       int `json:"prep_hours"`
	PavingHours     int `json:"paving_hours"`
	FinishingHours  int `json:"finishing_hours"`
	TotalHours      int `json:"total_hours"`
}

// EquipmentEstimate holds rental unit counts and per-type rental costs.
type EquipmentEstimate struct {
	Pavers        int     `json:"pavers"`
	Rollers       int     `json:"rollers"`
	Excavators    int     `json:"excavators"`
	Trucks        int     `json:"trucks"`
	PaverCost     float64 `json:"paver_cost"`
	RollerCost    float64 `json:"roller_cost"`
	ExcavatorCost float64 `json:"excavator_cost"`
	TruckCost     float64 `json:"truck_cost"`
}

// CostBreakdown itemizes the financial roll-up, all values rounded to whole
// currency units.
type CostBreakdown struct {
	Materials float64 `json:"materials"`
	Labor     float64 `json:"labor"`
	Equipment float64 `json:"equipment"`
	Overhead  float64 `json:"overhead"`
	Profit    float64 `json:"profit"`
}

// FinancialSummary is the markup/overhead/profit-adjusted project total.
type FinancialSummary struct {
	TotalCost     float64       `json:"total_cost"`
	CostPerSqft   float64       `json:"cost_per_sqft"`
	ProfitMargin  string        `json:"profit_margin"`
	CostBreakdown CostBreakdown `json:"cost_breakdown"`
}

// Project is the persisted bid project record.
//
// Storage model (DynamoDB):
//   - PK: id
//
// A project is written exactly once at the end of a successful estimate run
// and afterwards mutated only by the admin review flow (status) or deleted.
type Project struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Type               string            `json:"type"`
	Location           string            `json:"location"`
	Submitted          time.Time         `json:"submitted"`
	Status             ProjectStatus     `json:"status"`
	Cost               string            `json:"cost"`
	CompletionDate     time.Time         `json:"completion_date"`
	DurationWeeks      float64           `json:"duration_weeks"`
	LandMile           float64           `json:"land_mile"`
	Width              float64           `json:"width"`
	Area               float64           `json:"area"`
	Material           string            `json:"material"`
	Tonnage            float64           `json:"tonnage"`
	Scope              string            `json:"scope"`
	Requirements       string            `json:"requirements"`
	EstimatedCost      string            `json:"estimated_cost"`
	ProfitMargin       string            `json:"profit_margin"`
	SuccessProbability string            `json:"success_probability"`
	Materials          MaterialEstimate  `json:"materials"`
	Labor              LaborEstimate     `json:"labor"`
	Equipment          EquipmentEstimate `json:"equipment"`
	Financials         FinancialSummary  `json:"financials"`
}
