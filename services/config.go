package services

// ProjectType discriminates the five product variants a quotation can be
// generated for. Pricing and BOM generation dispatch on it through the
// variant strategy table in pricing.go.
type ProjectType string

const (
	ProjectTypeOnGrid      ProjectType = "on_grid"
	ProjectTypeOffGrid     ProjectType = "off_grid"
	ProjectTypeHybrid      ProjectType = "hybrid"
	ProjectTypeWaterHeater ProjectType = "water_heater"
	ProjectTypeWaterPump   ProjectType = "water_pump"
)

// IsValid reports whether the tag is one of the five known variants.
func (p ProjectType) IsValid() bool {
	switch p {
	case ProjectTypeOnGrid, ProjectTypeOffGrid, ProjectTypeHybrid,
		ProjectTypeWaterHeater, ProjectTypeWaterPump:
		return true
	}
	return false
}

// IsSolar reports whether the variant is a solar power plant (as opposed to
// a water heater / water pump utility product).
func (p ProjectType) IsSolar() bool {
	switch p {
	case ProjectTypeOnGrid, ProjectTypeOffGrid, ProjectTypeHybrid:
		return true
	}
	return false
}

// HasBattery reports whether the variant carries a battery bank.
func (p ProjectType) HasBattery() bool {
	return p == ProjectTypeOffGrid || p == ProjectTypeHybrid
}

// GridTied reports whether the variant exports to the grid and therefore
// needs net-meter liaisoning.
func (p ProjectType) GridTied() bool {
	return p == ProjectTypeOnGrid || p == ProjectTypeHybrid
}

// Label returns the display name used in document headers.
func (p ProjectType) Label() string {
	switch p {
	case ProjectTypeOnGrid:
		return "On-Grid Solar Power Plant"
	case ProjectTypeOffGrid:
		return "Off-Grid Solar Power Plant"
	case ProjectTypeHybrid:
		return "Hybrid Solar Power Plant"
	case ProjectTypeWaterHeater:
		return "Solar Water Heater"
	case ProjectTypeWaterPump:
		return "Solar Water Pump"
	}
	return string(p)
}

// PropertyType classifies the customer's property. Only residential
// properties qualify for the capital subsidy.
type PropertyType string

const (
	PropertyResidential   PropertyType = "residential"
	PropertyCommercial    PropertyType = "commercial"
	PropertyIndustrial    PropertyType = "industrial"
	PropertyInstitutional PropertyType = "institutional"
)

// IsValid reports whether the property type is one of PropertyTypeOptions.
func (p PropertyType) IsValid() bool {
	for _, opt := range PropertyTypeOptions {
		if p == opt {
			return true
		}
	}
	return false
}

// InverterPhase is the AC supply phase of the inverter.
type InverterPhase string

const (
	SinglePhase InverterPhase = "single_phase"
	ThreePhase  InverterPhase = "three_phase"
)

// Label returns the phase as printed in descriptions ("Single Phase").
func (p InverterPhase) Label() string {
	if p == ThreePhase {
		return "Three Phase"
	}
	return "Single Phase"
}

// ACVoltage returns the nominal AC voltage text for the phase.
// Three phase supply is 415V, single phase 230V.
func (p InverterPhase) ACVoltage() string {
	if p == ThreePhase {
		return "415V"
	}
	return "230V"
}

// StructureType identifies the panel mounting structure variant.
type StructureType string

const (
	StructureGP          StructureType = "gp_structure"
	StructureGI          StructureType = "gi_structure"
	StructureGIRoundPipe StructureType = "gi_round_pipe"
	StructureMonoRail    StructureType = "mono_rail"
	StructureMSSquare    StructureType = "ms_square_pipe"
)

// IsValid reports whether the structure type is one of StructureTypeOptions.
// Material maps anything else to GI, so request validation is the only place
// a mistyped structure surfaces.
func (s StructureType) IsValid() bool {
	for _, opt := range StructureTypeOptions {
		if s == opt {
			return true
		}
	}
	return false
}

// Material maps the structure type to the material shown on the BOM row.
// Unknown or empty types fall back to GI, the most common structure.
func (s StructureType) Material() string {
	switch s {
	case StructureGP, StructureGI, StructureGIRoundPipe:
		return "GI"
	case StructureMonoRail:
		return "Aluminium"
	case StructureMSSquare:
		return "MS"
	}
	return "GI"
}

// ScopeAssignment routes a work item to exactly one side of the
// scope-of-work split.
type ScopeAssignment string

const (
	CompanyScope  ScopeAssignment = "company_scope"
	CustomerScope ScopeAssignment = "customer_scope"
)

// Documented defaults applied when optional configuration fields are absent.
const (
	DefaultPanelWatts  = 530
	DefaultPanelType   = "Mono PERC"
	DefaultBatteryAH   = "100"
	DefaultBatteryVolt = 12
	DefaultBatteryType = "C10 Lead Acid"

	// DefaultMake is printed when no brand was captured for a component.
	DefaultMake = "Reputed Make"

	// Solar works contracts attract the composite 13.8% rate; standalone
	// utility products are billed at the standard 18% slab.
	DefaultGSTPercentSolar   = 13.8
	DefaultGSTPercentUtility = 18
)

// DefaultRatePerKW is the GST-inclusive turnkey rate used to synthesize a
// project value when none was entered, per solar variant.
var DefaultRatePerKW = map[ProjectType]float64{
	ProjectTypeOnGrid:  50000,
	ProjectTypeOffGrid: 70000,
	ProjectTypeHybrid:  80000,
}

// DefaultUsageWatts are the appliance load points shown on the backup
// runtime table when the configuration does not override them.
var DefaultUsageWatts = []float64{800, 750, 550, 450, 200}

// GSTOptions lists the GST slab rates a quotation may be billed at, including
// the 13.8% composite works-contract rate for solar. Zero means the variant
// default applies. ValidateGSTRate checks membership.
var GSTOptions = []float64{0, 5, 12, 13.8, 18, 28}

// PropertyTypeOptions lists the accepted property classifications.
// PropertyType.IsValid checks membership.
var PropertyTypeOptions = []PropertyType{
	PropertyResidential,
	PropertyCommercial,
	PropertyIndustrial,
	PropertyInstitutional,
}

// StructureTypeOptions lists the accepted mounting structures.
// StructureType.IsValid checks membership.
var StructureTypeOptions = []StructureType{
	StructureGP,
	StructureGI,
	StructureGIRoundPipe,
	StructureMonoRail,
	StructureMSSquare,
}

// ProjectConfiguration is the validated system configuration a quotation is
// generated from. Field relevance depends on ProjectType: the solar variants
// read the panel/inverter/battery/structure blocks, the utility variants the
// brand/capacity/qty block. ProjectValue and BatteryAH arrive as display
// strings from upstream forms and are parsed leniently (see ParseMoney).
type ProjectConfiguration struct {
	ProjectType ProjectType `json:"projectType"`

	PanelWatts  int    `json:"panelWatts,omitempty"`
	PanelCount  int    `json:"panelCount,omitempty"`
	DCRCount    int    `json:"dcrCount,omitempty"`
	NonDCRCount int    `json:"nonDcrCount,omitempty"`
	PanelBrand  string `json:"panelBrand,omitempty"`
	PanelType   string `json:"panelType,omitempty"`

	InverterKW    float64       `json:"inverterKw,omitempty"`
	InverterKVA   float64       `json:"inverterKva,omitempty"`
	InverterVolt  int           `json:"inverterVolt,omitempty"`
	InverterPhase InverterPhase `json:"inverterPhase,omitempty"`
	InverterQty   int           `json:"inverterQty,omitempty"`
	InverterBrand string        `json:"inverterBrand,omitempty"`

	BatteryBrand string `json:"batteryBrand,omitempty"`
	BatteryType  string `json:"batteryType,omitempty"`
	BatteryVolt  int    `json:"batteryVolt,omitempty"`
	BatteryAH    string `json:"batteryAh,omitempty"`
	BatteryCount int    `json:"batteryCount,omitempty"`

	StructureType StructureType `json:"structureType,omitempty"`

	EarthingAC            bool `json:"earthingAc,omitempty"`
	EarthingDC            bool `json:"earthingDc,omitempty"`
	LightningArrestor     bool `json:"lightningArrestor,omitempty"`
	ElectricalAccessories bool `json:"electricalAccessories,omitempty"`
	AccessoriesCount      int  `json:"accessoriesCount,omitempty"`

	Brand               string  `json:"brand,omitempty"`
	Model               string  `json:"model,omitempty"`
	CapacityLPD         int     `json:"capacityLpd,omitempty"`
	HorsePower          float64 `json:"horsePower,omitempty"`
	Qty                 int     `json:"qty,omitempty"`
	IncludesLabour      bool    `json:"includesLabour,omitempty"`
	IncludesTransport   bool    `json:"includesTransport,omitempty"`
	IncludesAccessories bool    `json:"includesAccessories,omitempty"`

	ProjectValue  string    `json:"projectValue,omitempty"`
	GSTPercentage float64   `json:"gstPercentage,omitempty"`
	UsageWatts    []float64 `json:"usageWatts,omitempty"`

	CivilScope      ScopeAssignment `json:"civilScope,omitempty"`
	NetMeterScope   ScopeAssignment `json:"netMeterScope,omitempty"`
	ElectricalScope ScopeAssignment `json:"electricalScope,omitempty"`
	PlumbingScope   ScopeAssignment `json:"plumbingScope,omitempty"`
}

// withDefaults returns a copy of the configuration with the documented
// fallbacks applied. The input is never mutated; every calculator works on
// the normalized copy so the same request always yields the same document.
func (c ProjectConfiguration) withDefaults() ProjectConfiguration {
	if c.PanelWatts <= 0 {
		c.PanelWatts = DefaultPanelWatts
	}
	if c.PanelType == "" {
		c.PanelType = DefaultPanelType
	}
	if c.InverterQty <= 0 {
		c.InverterQty = 1
	}
	if c.InverterPhase == "" {
		c.InverterPhase = SinglePhase
	}
	if c.BatteryVolt <= 0 {
		c.BatteryVolt = DefaultBatteryVolt
	}
	if c.BatteryAH == "" {
		c.BatteryAH = DefaultBatteryAH
	}
	if c.BatteryCount <= 0 {
		c.BatteryCount = 1
	}
	if c.BatteryType == "" {
		c.BatteryType = DefaultBatteryType
	}
	if c.Qty <= 0 {
		c.Qty = 1
	}
	if c.GSTPercentage <= 0 {
		if c.ProjectType.IsSolar() {
			c.GSTPercentage = DefaultGSTPercentSolar
		} else {
			c.GSTPercentage = DefaultGSTPercentUtility
		}
	}
	if c.CivilScope == "" {
		c.CivilScope = CompanyScope
	}
	if c.NetMeterScope == "" {
		c.NetMeterScope = CompanyScope
	}
	if c.ElectricalScope == "" {
		c.ElectricalScope = CompanyScope
	}
	if c.PlumbingScope == "" {
		c.PlumbingScope = CompanyScope
	}
	return c
}

// inverterRating returns the inverter rating figure and its unit for the
// variant. On-grid and hybrid inverters are rated in kW, off-grid power
// conditioning units in kVA; whichever field was captured is used, preferring
// the variant's native unit.
func (c ProjectConfiguration) inverterRating() (float64, string) {
	if c.ProjectType == ProjectTypeOffGrid {
		if c.InverterKVA > 0 {
			return c.InverterKVA, "kVA"
		}
		return c.InverterKW, "kVA"
	}
	if c.InverterKW > 0 {
		return c.InverterKW, "kW"
	}
	return c.InverterKVA, "kW"
}

// acVoltage returns the AC side voltage text for BOM rows. On-grid systems
// derive it from the supply phase; battery systems use the captured inverter
// voltage, falling back to the battery bank voltage (volt × count).
func (c ProjectConfiguration) acVoltage() string {
	if c.ProjectType == ProjectTypeOnGrid {
		return c.InverterPhase.ACVoltage()
	}
	if c.InverterVolt > 0 {
		return formatVolt(c.InverterVolt)
	}
	return formatVolt(c.BatteryVolt * c.BatteryCount)
}
