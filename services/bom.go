package services

import (
	"fmt"
	"strings"
)

// GenerateBOM builds the ordered bill of materials for the configured
// variant. The second return carries generation warnings (conditions worth
// surfacing to the preparer without failing the quotation). Both returns are
// nil for an unrecognized project type.
func GenerateBOM(cfg ProjectConfiguration) ([]BOMItem, []string) {
	strategy, ok := variantStrategies[cfg.ProjectType]
	if !ok {
		return nil, nil
	}
	return strategy.bom(cfg.withDefaults())
}

// solarBOM builds the component list shared by the on-grid, off-grid and
// hybrid variants. Rows keep a fixed order: panels, inverter (plus battery
// for battery-backed variants), structure, distribution boxes, cabling,
// protective add-ons, then the fixed closing rows. Serial numbers increment
// per row except for the DCR / non-DCR panel split, which shares one ordinal
// with "a"/"b" minors.
func solarBOM(cfg ProjectConfiguration) ([]BOMItem, []string) {
	var (
		items    []BOMItem
		warnings []string
		serial   int
	)
	next := func() int {
		serial++
		return serial
	}

	kw := CalculateSystemKW(cfg.PanelWatts, cfg.PanelCount)
	panelRating := fmt.Sprintf("%d Wp", cfg.PanelWatts)
	panelMake := brandOrDefault(cfg.PanelBrand)

	switch {
	case cfg.DCRCount > 0 && cfg.NonDCRCount > 0:
		major := next()
		items = append(items,
			BOMItem{
				Serial:      SerialNumber{Major: major, Minor: "a"},
				Description: "Solar PV Module (DCR)",
				Type:        cfg.PanelType,
				Volt:        "-",
				Rating:      panelRating,
				Make:        panelMake,
				Qty:         Qty(float64(cfg.DCRCount)),
				Unit:        "Nos",
			},
			BOMItem{
				Serial:      SerialNumber{Major: major, Minor: "b"},
				Description: "Solar PV Module (Non-DCR)",
				Type:        cfg.PanelType,
				Volt:        "-",
				Rating:      panelRating,
				Make:        panelMake,
				Qty:         Qty(float64(cfg.NonDCRCount)),
				Unit:        "Nos",
			},
		)
	case cfg.DCRCount > 0:
		items = append(items, BOMItem{
			Serial:      SerialNumber{Major: next()},
			Description: "Solar PV Module (DCR)",
			Type:        cfg.PanelType,
			Volt:        "-",
			Rating:      panelRating,
			Make:        panelMake,
			Qty:         Qty(float64(cfg.DCRCount)),
			Unit:        "Nos",
		})
	case cfg.NonDCRCount > 0:
		items = append(items, BOMItem{
			Serial:      SerialNumber{Major: next()},
			Description: "Solar PV Module (Non-DCR)",
			Type:        cfg.PanelType,
			Volt:        "-",
			Rating:      panelRating,
			Make:        panelMake,
			Qty:         Qty(float64(cfg.NonDCRCount)),
			Unit:        "Nos",
		})
	default:
		// A zero/zero split may be a valid panel-free quotation or a
		// data-entry gap upstream; surface it instead of guessing.
		warnings = append(warnings, "no panel rows generated: both DCR and non-DCR panel counts are zero")
	}

	invRating, invUnit := cfg.inverterRating()
	acVolt := cfg.acVoltage()
	items = append(items, BOMItem{
		Serial:      SerialNumber{Major: next()},
		Description: inverterDescription(cfg.ProjectType),
		Type:        cfg.InverterPhase.Label(),
		Volt:        acVolt,
		Rating:      FormatNumber(invRating) + " " + invUnit,
		Make:        brandOrDefault(cfg.InverterBrand),
		Qty:         Qty(float64(cfg.InverterQty)),
		Unit:        "Nos",
	})

	if cfg.ProjectType.HasBattery() {
		items = append(items, BOMItem{
			Serial:      SerialNumber{Major: next()},
			Description: "Solar Battery",
			Type:        cfg.BatteryType,
			Volt:        formatVolt(cfg.BatteryVolt),
			Rating:      cfg.BatteryAH + " AH",
			Make:        brandOrDefault(cfg.BatteryBrand),
			Qty:         Qty(float64(cfg.BatteryCount)),
			Unit:        "Nos",
		})
	}

	items = append(items, BOMItem{
		Serial:      SerialNumber{Major: next()},
		Description: "Panel Mounting Structure",
		Type:        cfg.StructureType.Material(),
		Volt:        "-",
		Rating:      FormatNumber(RoundForRate(kw)) + " kW",
		Make:        "-",
		Qty:         Qty(1),
		Unit:        "Set",
	})

	items = append(items, BOMItem{
		Serial:      SerialNumber{Major: next()},
		Description: "ACDB (AC Distribution Box)",
		Type:        "-",
		Volt:        acVolt,
		Rating:      "-",
		Make:        "-",
		Qty:         Qty(1),
		Unit:        "Nos",
	})

	items = append(items, BOMItem{
		Serial:      SerialNumber{Major: next()},
		Description: "DCDB (DC Distribution Box)",
		Type:        "-",
		Volt:        "600V",
		Rating:      "-",
		Make:        "-",
		Qty:         Qty(1),
		Unit:        "Nos",
	})

	// Cable runs double once the plant crosses 10 kW.
	dcCable, acCable := 20.0, 15.0
	if kw > 10 {
		dcCable, acCable = 40, 30
	}
	items = append(items, BOMItem{
		Serial:      SerialNumber{Major: next()},
		Description: "DC Cable (4 sq.mm, UV Protected)",
		Type:        "-",
		Volt:        "1500V",
		Rating:      "-",
		Make:        "-",
		Qty:         Qty(dcCable),
		Unit:        "Mtr",
	})
	items = append(items, BOMItem{
		Serial:      SerialNumber{Major: next()},
		Description: "AC Cable (4 sq.mm, Multicore)",
		Type:        "-",
		Volt:        acVolt,
		Rating:      "-",
		Make:        "-",
		Qty:         Qty(acCable),
		Unit:        "Mtr",
	})

	if cfg.EarthingAC || cfg.EarthingDC {
		earthQty := 1.0
		if cfg.EarthingAC && cfg.EarthingDC {
			earthQty = 2
		}
		items = append(items, BOMItem{
			Serial:      SerialNumber{Major: next()},
			Description: "Earthing Kit with Earth Pit",
			Type:        "Chemical Earthing",
			Volt:        "-",
			Rating:      "-",
			Make:        "-",
			Qty:         Qty(earthQty),
			Unit:        "Set",
		})
	}

	if cfg.LightningArrestor {
		items = append(items, BOMItem{
			Serial:      SerialNumber{Major: next()},
			Description: "Lightning Arrestor",
			Type:        "-",
			Volt:        "-",
			Rating:      "-",
			Make:        "-",
			Qty:         Qty(1),
			Unit:        "Nos",
		})
	}

	if cfg.ElectricalAccessories {
		accQty := float64(cfg.AccessoriesCount)
		if accQty <= 0 {
			accQty = RoundForRate(kw)
		}
		items = append(items, BOMItem{
			Serial:      SerialNumber{Major: next()},
			Description: "Electrical Accessories (MCB, SPD & Connectors)",
			Type:        "-",
			Volt:        "-",
			Rating:      "-",
			Make:        "-",
			Qty:         Qty(accQty),
			Unit:        "Set",
		})
	}

	items = append(items, BOMItem{
		Serial:      SerialNumber{Major: next()},
		Description: "Balance of System (Nuts, Bolts & Hardware)",
		Type:        "-",
		Volt:        "-",
		Rating:      "-",
		Make:        "-",
		Qty:         Qty(1),
		Unit:        "Set",
	})

	items = append(items, BOMItem{
		Serial:      SerialNumber{Major: next()},
		Description: "Installation & Commissioning",
		Type:        "-",
		Volt:        "-",
		Rating:      "-",
		Make:        "-",
		Qty:         QtyUndecided,
		Unit:        "Lumpsum",
	})

	return items, warnings
}

func inverterDescription(p ProjectType) string {
	switch p {
	case ProjectTypeOffGrid:
		return "Off-Grid Solar Inverter"
	case ProjectTypeHybrid:
		return "Hybrid Solar Inverter"
	}
	return "Grid Tie Solar Inverter"
}

// utilityBOM builds the single aggregated supply row for water heaters and
// water pumps. The unit rate comes from an ordered fallback chain because
// upstream data is sometimes incomplete: the quoted per-unit value first,
// then the computed customer payment, then the taxed base. The first source
// yielding a non-zero rate wins, and the ordering must be preserved.
func utilityBOM(cfg ProjectConfiguration) ([]BOMItem, []string) {
	describe := waterPumpDescription
	rating := FormatNumber(cfg.HorsePower) + " HP"
	if cfg.ProjectType == ProjectTypeWaterHeater {
		describe = waterHeaterDescription
		rating = fmt.Sprintf("%d LPD", cfg.CapacityLPD)
	}

	pricing := utilityPricing(cfg, describe)
	qty := float64(cfg.Qty)

	sources := []struct {
		name string
		rate func() float64
	}{
		{"projectValue", func() float64 { return ParseMoney(cfg.ProjectValue) }},
		{"customerPayment", func() float64 { return pricing.CustomerPayment / qty }},
		{"taxedBase", func() float64 { return (pricing.BasePrice + pricing.GSTAmount) / qty }},
	}

	var warnings []string
	var rate float64
	for _, src := range sources {
		if v := src.rate(); v > 0 {
			rate = v
			break
		}
	}
	if rate == 0 {
		warnings = append(warnings, "no price source yielded a unit rate for the supply row")
	}

	desc := strings.TrimPrefix(pricing.Description, "Supply & Installation of ")
	if extras := utilityExtras(cfg); len(extras) > 0 {
		desc += " (Including " + joinWithAmpersand(extras) + ")"
	}

	item := BOMItem{
		Serial:      SerialNumber{Major: 1},
		Description: desc,
		Type:        orDash(cfg.Model),
		Volt:        "-",
		Rating:      rating,
		Make:        brandOrDefault(cfg.Brand),
		Qty:         Qty(qty),
		Unit:        "Nos",
		Rate:        rate,
		Amount:      rate * qty,
	}
	return []BOMItem{item}, warnings
}

func utilityExtras(cfg ProjectConfiguration) []string {
	var extras []string
	if cfg.IncludesLabour {
		extras = append(extras, "Labour")
	}
	if cfg.IncludesTransport {
		extras = append(extras, "Transport")
	}
	if cfg.IncludesAccessories {
		extras = append(extras, "Accessories")
	}
	return extras
}

// joinWithAmpersand joins list items with commas and a final "&":
// ["Labour", "Transport", "Accessories"] → "Labour, Transport & Accessories".
func joinWithAmpersand(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " & " + items[len(items)-1]
}

func brandOrDefault(brand string) string {
	if brand == "" {
		return DefaultMake
	}
	return brand
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
