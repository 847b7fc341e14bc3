// Package services implements the quotation engine for solar installations:
// capacity, subsidy and GST pricing calculators, bill-of-materials
// generation, backup runtime estimation, and assembly of the immutable
// quotation template consumed by the PDF and Excel renderers.
package services

import (
	"fmt"
	"math"
	"strings"
)

// variantStrategy pairs the pricing and BOM builders for one project type.
// Adding a variant means adding a ProjectType constant and one entry here;
// everything else dispatches through the table.
type variantStrategy struct {
	pricing func(cfg ProjectConfiguration, property PropertyType) PricingBreakdown
	bom     func(cfg ProjectConfiguration) ([]BOMItem, []string)
}

var variantStrategies = map[ProjectType]variantStrategy{
	ProjectTypeOnGrid:      {pricing: onGridPricing, bom: solarBOM},
	ProjectTypeOffGrid:     {pricing: offGridPricing, bom: solarBOM},
	ProjectTypeHybrid:      {pricing: hybridPricing, bom: solarBOM},
	ProjectTypeWaterHeater: {pricing: waterHeaterPricing, bom: utilityBOM},
	ProjectTypeWaterPump:   {pricing: waterPumpPricing, bom: utilityBOM},
}

// GeneratePricing computes the price block for the configured variant. The
// second return is false for an unrecognized project type, which signals "no
// breakdown available" as a condition the caller checks for, not an error.
func GeneratePricing(cfg ProjectConfiguration, property PropertyType) (PricingBreakdown, bool) {
	strategy, ok := variantStrategies[cfg.ProjectType]
	if !ok {
		return PricingBreakdown{}, false
	}
	return strategy.pricing(cfg.withDefaults(), property), true
}

func onGridPricing(cfg ProjectConfiguration, property PropertyType) PricingBreakdown {
	return solarPricing(cfg, property, onGridDescription)
}

func offGridPricing(cfg ProjectConfiguration, property PropertyType) PricingBreakdown {
	return solarPricing(cfg, property, offGridDescription)
}

func hybridPricing(cfg ProjectConfiguration, property PropertyType) PricingBreakdown {
	return solarPricing(cfg, property, hybridDescription)
}

func waterHeaterPricing(cfg ProjectConfiguration, _ PropertyType) PricingBreakdown {
	return utilityPricing(cfg, waterHeaterDescription)
}

func waterPumpPricing(cfg ProjectConfiguration, _ PropertyType) PricingBreakdown {
	return utilityPricing(cfg, waterPumpDescription)
}

// solarPricing builds the breakdown for the three plant variants. The quoted
// projectValue is GST-inclusive; when it is missing the value is synthesized
// from the variant's default rate per kW. The pre-tax base is back-calculated
// from the inclusive value, and per-kW figures divide by the rating capacity
// (RoundForRate) so sub-kilowatt systems do not divide by zero.
func solarPricing(cfg ProjectConfiguration, property PropertyType, describe func(ProjectConfiguration, float64) string) PricingBreakdown {
	kw := CalculateSystemKW(cfg.PanelWatts, cfg.PanelCount)

	valueWithGST := ParseMoney(cfg.ProjectValue)
	if valueWithGST <= 0 {
		// synthesized to the whole rupee; kw*rate is integral on paper but
		// not in float64 (5.3 × 50000), and TotalCost floors the value
		valueWithGST = math.Round(kw * DefaultRatePerKW[cfg.ProjectType])
	}

	basePrice, gstAmount := SplitGST(valueWithGST, cfg.GSTPercentage)

	var ratePerKW, gstPerKW float64
	if rateKW := RoundForRate(kw); rateKW > 0 {
		ratePerKW = math.Round(basePrice / rateKW)
		gstPerKW = math.Round(gstAmount / rateKW)
	}

	subsidy := CalculateSubsidy(kw, property, cfg.ProjectType)
	totalCost := math.Floor(valueWithGST)
	roundOff := round2(totalCost - valueWithGST)
	if roundOff == 0 {
		// clear the sign so an integral value serializes as 0, not -0
		roundOff = 0
	}

	return PricingBreakdown{
		Description:     describe(cfg, kw),
		KW:              kw,
		RatePerKW:       ratePerKW,
		GSTPerKW:        gstPerKW,
		GSTPercentage:   cfg.GSTPercentage,
		BasePrice:       basePrice,
		GSTAmount:       gstAmount,
		ValueWithGST:    valueWithGST,
		TotalCost:       totalCost,
		SubsidyAmount:   subsidy,
		CustomerPayment: totalCost - subsidy,
		RoundOff:        roundOff,
	}
}

// utilityPricing builds the breakdown for water heaters and water pumps.
// Here projectValue is a per-unit price including GST and totals scale by
// quantity; RatePerKW and GSTPerKW carry the per-unit base and tax figures.
// No subsidy applies to utility products.
func utilityPricing(cfg ProjectConfiguration, describe func(ProjectConfiguration) string) PricingBreakdown {
	perUnit := ParseMoney(cfg.ProjectValue)
	qty := float64(cfg.Qty)

	perUnitBase, perUnitGST := SplitGST(perUnit, cfg.GSTPercentage)
	basePrice := perUnitBase * qty
	valueWithGST := perUnit * qty
	gstAmount := valueWithGST - basePrice

	totalCost := math.Floor(valueWithGST)
	roundOff := round2(totalCost - valueWithGST)
	if roundOff == 0 {
		// clear the sign so an integral value serializes as 0, not -0
		roundOff = 0
	}

	return PricingBreakdown{
		Description:     describe(cfg),
		Qty:             cfg.Qty,
		RatePerKW:       perUnitBase,
		GSTPerKW:        perUnitGST,
		GSTPercentage:   cfg.GSTPercentage,
		BasePrice:       basePrice,
		GSTAmount:       gstAmount,
		ValueWithGST:    valueWithGST,
		TotalCost:       totalCost,
		CustomerPayment: totalCost,
		RoundOff:        roundOff,
	}
}

// Description sentences are a contract with the renderers; the wording below
// is reproduced verbatim on the PDF and Excel documents.

func onGridDescription(cfg ProjectConfiguration, kw float64) string {
	inv, _ := cfg.inverterRating()
	return fmt.Sprintf(
		"Supply, Installation, Testing & Commissioning of %s kW On-Grid Solar Power Plant with %d Wp x %d Nos Solar PV Modules and %s kW %s Grid Tie Inverter",
		FormatNumber(kw), cfg.PanelWatts, cfg.PanelCount, FormatNumber(inv), cfg.InverterPhase.Label(),
	)
}

func offGridDescription(cfg ProjectConfiguration, kw float64) string {
	inv, _ := cfg.inverterRating()
	return fmt.Sprintf(
		"Supply, Installation, Testing & Commissioning of %s kW Off-Grid Solar Power Plant with %d Wp x %d Nos Solar PV Modules, %s kVA %s Off-Grid Inverter and %dV %s AH x %d Nos Battery Bank",
		FormatNumber(kw), cfg.PanelWatts, cfg.PanelCount, FormatNumber(inv), cfg.InverterPhase.Label(),
		cfg.BatteryVolt, cfg.BatteryAH, cfg.BatteryCount,
	)
}

func hybridDescription(cfg ProjectConfiguration, kw float64) string {
	inv, _ := cfg.inverterRating()
	return fmt.Sprintf(
		"Supply, Installation, Testing & Commissioning of %s kW Hybrid Solar Power Plant with %d Wp x %d Nos Solar PV Modules, %s kW %s Hybrid Inverter and %dV %s AH x %d Nos Battery Bank",
		FormatNumber(kw), cfg.PanelWatts, cfg.PanelCount, FormatNumber(inv), cfg.InverterPhase.Label(),
		cfg.BatteryVolt, cfg.BatteryAH, cfg.BatteryCount,
	)
}

func waterHeaterDescription(cfg ProjectConfiguration) string {
	var b strings.Builder
	b.WriteString("Supply & Installation of ")
	if cfg.Brand != "" {
		b.WriteString(cfg.Brand + " ")
	}
	if cfg.Model != "" {
		b.WriteString(cfg.Model + " ")
	}
	fmt.Fprintf(&b, "%d LPD Solar Water Heater", cfg.CapacityLPD)
	return b.String()
}

func waterPumpDescription(cfg ProjectConfiguration) string {
	var b strings.Builder
	b.WriteString("Supply & Installation of ")
	if cfg.Brand != "" {
		b.WriteString(cfg.Brand + " ")
	}
	if cfg.Model != "" {
		b.WriteString(cfg.Model + " ")
	}
	fmt.Fprintf(&b, "%s HP Solar Water Pump", FormatNumber(cfg.HorsePower))
	return b.String()
}
