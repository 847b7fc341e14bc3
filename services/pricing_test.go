package services

import (
	"math"
	"testing"
)

func TestGeneratePricing_OnGrid(t *testing.T) {
	cfg := ProjectConfiguration{
		ProjectType:   ProjectTypeOnGrid,
		PanelWatts:    530,
		PanelCount:    10,
		DCRCount:      6,
		NonDCRCount:   4,
		InverterKW:    5,
		ProjectValue:  "₹3,00,000",
		GSTPercentage: 18,
	}

	got, ok := GeneratePricing(cfg, PropertyResidential)
	if !ok {
		t.Fatal("GeneratePricing() ok = false, want true")
	}

	if !floatClose(got.KW, 5.3) {
		t.Errorf("KW = %v, want 5.3", got.KW)
	}
	if !floatClose(got.BasePrice, 254237) {
		t.Errorf("BasePrice = %v, want 254237", got.BasePrice)
	}
	if !floatClose(got.GSTAmount, 45763) {
		t.Errorf("GSTAmount = %v, want 45763", got.GSTAmount)
	}
	if !floatClose(got.ValueWithGST, 300000) {
		t.Errorf("ValueWithGST = %v, want 300000", got.ValueWithGST)
	}
	if !floatClose(got.TotalCost, 300000) {
		t.Errorf("TotalCost = %v, want 300000", got.TotalCost)
	}
	if got.RoundOff != 0 {
		t.Errorf("RoundOff = %v, want 0", got.RoundOff)
	}
	if !floatClose(got.SubsidyAmount, 78000) {
		t.Errorf("SubsidyAmount = %v, want 78000", got.SubsidyAmount)
	}
	if !floatClose(got.CustomerPayment, 222000) {
		t.Errorf("CustomerPayment = %v, want 222000", got.CustomerPayment)
	}
	// Per-kW figures divide by the rating capacity, round(5.3) = 5.
	if !floatClose(got.RatePerKW, 50847) {
		t.Errorf("RatePerKW = %v, want 50847", got.RatePerKW)
	}
	if !floatClose(got.GSTPerKW, 9153) {
		t.Errorf("GSTPerKW = %v, want 9153", got.GSTPerKW)
	}
	if got.GSTPercentage != 18 {
		t.Errorf("GSTPercentage = %v, want 18", got.GSTPercentage)
	}

	wantDesc := "Supply, Installation, Testing & Commissioning of 5.3 kW On-Grid Solar Power Plant " +
		"with 530 Wp x 10 Nos Solar PV Modules and 5 kW Single Phase Grid Tie Inverter"
	if got.Description != wantDesc {
		t.Errorf("Description = %q, want %q", got.Description, wantDesc)
	}
}

func TestGeneratePricing_SynthesizedValue(t *testing.T) {
	// No project value captured: the GST-inclusive value is synthesized from
	// the variant's default rate (5.3 kW × 50,000 = 2,65,000), and the default
	// composite GST rate applies.
	cfg := ProjectConfiguration{
		ProjectType: ProjectTypeOnGrid,
		PanelWatts:  530,
		PanelCount:  10,
		InverterKW:  5,
	}

	got, ok := GeneratePricing(cfg, PropertyCommercial)
	if !ok {
		t.Fatal("GeneratePricing() ok = false, want true")
	}

	if !floatClose(got.ValueWithGST, 265000) {
		t.Errorf("ValueWithGST = %v, want 265000", got.ValueWithGST)
	}
	if got.GSTPercentage != DefaultGSTPercentSolar {
		t.Errorf("GSTPercentage = %v, want %v", got.GSTPercentage, DefaultGSTPercentSolar)
	}
	if !floatClose(got.BasePrice, 232865) {
		t.Errorf("BasePrice = %v, want 232865", got.BasePrice)
	}
	if !floatClose(got.GSTAmount, 32135) {
		t.Errorf("GSTAmount = %v, want 32135", got.GSTAmount)
	}
	if got.RoundOff != 0 {
		t.Errorf("RoundOff = %v, want 0", got.RoundOff)
	}
	if got.SubsidyAmount != 0 {
		t.Errorf("SubsidyAmount = %v, want 0 for commercial property", got.SubsidyAmount)
	}
	if !floatClose(got.CustomerPayment, 265000) {
		t.Errorf("CustomerPayment = %v, want 265000", got.CustomerPayment)
	}
}

func TestGeneratePricing_FractionalValueRoundsDown(t *testing.T) {
	cfg := ProjectConfiguration{
		ProjectType:   ProjectTypeOnGrid,
		PanelWatts:    530,
		PanelCount:    10,
		InverterKW:    5,
		ProjectValue:  "2,50,000.75",
		GSTPercentage: 13.8,
	}

	got, _ := GeneratePricing(cfg, PropertyResidential)

	if !floatClose(got.ValueWithGST, 250000.75) {
		t.Errorf("ValueWithGST = %v, want 250000.75", got.ValueWithGST)
	}
	if !floatClose(got.TotalCost, 250000) {
		t.Errorf("TotalCost = %v, want 250000", got.TotalCost)
	}
	if !floatClose(got.RoundOff, -0.75) {
		t.Errorf("RoundOff = %v, want -0.75", got.RoundOff)
	}
	if !floatClose(got.CustomerPayment, 172000) {
		t.Errorf("CustomerPayment = %v, want 172000", got.CustomerPayment)
	}
	// The base and tax still sum to the inclusive value.
	if got.BasePrice+got.GSTAmount != got.ValueWithGST {
		t.Errorf("BasePrice %v + GSTAmount %v != ValueWithGST %v",
			got.BasePrice, got.GSTAmount, got.ValueWithGST)
	}
}

func TestGeneratePricing_WaterHeater(t *testing.T) {
	cfg := ProjectConfiguration{
		ProjectType:   ProjectTypeWaterHeater,
		Brand:         "Venus",
		CapacityLPD:   200,
		Qty:           2,
		ProjectValue:  "25,000",
		GSTPercentage: 18,
	}

	got, ok := GeneratePricing(cfg, PropertyResidential)
	if !ok {
		t.Fatal("GeneratePricing() ok = false, want true")
	}

	if got.KW != 0 {
		t.Errorf("KW = %v, want 0 for a utility product", got.KW)
	}
	if got.Qty != 2 {
		t.Errorf("Qty = %d, want 2", got.Qty)
	}
	// Per-unit figures: 25,000 inclusive splits into 21,186 + 3,814.
	if !floatClose(got.RatePerKW, 21186) {
		t.Errorf("RatePerKW = %v, want 21186", got.RatePerKW)
	}
	if !floatClose(got.GSTPerKW, 3814) {
		t.Errorf("GSTPerKW = %v, want 3814", got.GSTPerKW)
	}
	// Totals scale by quantity.
	if !floatClose(got.BasePrice, 42372) {
		t.Errorf("BasePrice = %v, want 42372", got.BasePrice)
	}
	if !floatClose(got.GSTAmount, 7628) {
		t.Errorf("GSTAmount = %v, want 7628", got.GSTAmount)
	}
	if !floatClose(got.ValueWithGST, 50000) {
		t.Errorf("ValueWithGST = %v, want 50000", got.ValueWithGST)
	}
	if got.SubsidyAmount != 0 {
		t.Errorf("SubsidyAmount = %v, want 0", got.SubsidyAmount)
	}
	if !floatClose(got.CustomerPayment, 50000) {
		t.Errorf("CustomerPayment = %v, want 50000", got.CustomerPayment)
	}

	wantDesc := "Supply & Installation of Venus 200 LPD Solar Water Heater"
	if got.Description != wantDesc {
		t.Errorf("Description = %q, want %q", got.Description, wantDesc)
	}
}

func TestGeneratePricing_WaterPump(t *testing.T) {
	cfg := ProjectConfiguration{
		ProjectType:  ProjectTypeWaterPump,
		HorsePower:   5,
		ProjectValue: "₹1,85,000",
	}

	got, ok := GeneratePricing(cfg, PropertyCommercial)
	if !ok {
		t.Fatal("GeneratePricing() ok = false, want true")
	}

	if got.Qty != 1 {
		t.Errorf("Qty = %d, want default 1", got.Qty)
	}
	if got.GSTPercentage != DefaultGSTPercentUtility {
		t.Errorf("GSTPercentage = %v, want %v", got.GSTPercentage, DefaultGSTPercentUtility)
	}
	if !floatClose(got.BasePrice, 156780) {
		t.Errorf("BasePrice = %v, want 156780", got.BasePrice)
	}
	if !floatClose(got.GSTAmount, 28220) {
		t.Errorf("GSTAmount = %v, want 28220", got.GSTAmount)
	}
	if !floatClose(got.CustomerPayment, 185000) {
		t.Errorf("CustomerPayment = %v, want 185000", got.CustomerPayment)
	}

	wantDesc := "Supply & Installation of 5 HP Solar Water Pump"
	if got.Description != wantDesc {
		t.Errorf("Description = %q, want %q", got.Description, wantDesc)
	}
}

func TestGeneratePricing_UnknownType(t *testing.T) {
	_, ok := GeneratePricing(ProjectConfiguration{ProjectType: "windmill"}, PropertyResidential)
	if ok {
		t.Error("GeneratePricing() ok = true for unknown project type, want false")
	}
}

func TestSolarDescriptions(t *testing.T) {
	t.Run("off_grid", func(t *testing.T) {
		cfg := ProjectConfiguration{
			ProjectType:  ProjectTypeOffGrid,
			PanelWatts:   540,
			PanelCount:   6,
			InverterKVA:  5,
			BatteryAH:    "150",
			BatteryCount: 4,
		}
		got, _ := GeneratePricing(cfg, PropertyResidential)
		want := "Supply, Installation, Testing & Commissioning of 3.24 kW Off-Grid Solar Power Plant " +
			"with 540 Wp x 6 Nos Solar PV Modules, 5 kVA Single Phase Off-Grid Inverter " +
			"and 12V 150 AH x 4 Nos Battery Bank"
		if got.Description != want {
			t.Errorf("Description = %q, want %q", got.Description, want)
		}
	})

	t.Run("hybrid", func(t *testing.T) {
		cfg := ProjectConfiguration{
			ProjectType: ProjectTypeHybrid,
			PanelWatts:  530,
			PanelCount:  12,
			InverterKW:  6,
		}
		got, _ := GeneratePricing(cfg, PropertyResidential)
		want := "Supply, Installation, Testing & Commissioning of 6.36 kW Hybrid Solar Power Plant " +
			"with 530 Wp x 12 Nos Solar PV Modules, 6 kW Single Phase Hybrid Inverter " +
			"and 12V 100 AH x 1 Nos Battery Bank"
		if got.Description != want {
			t.Errorf("Description = %q, want %q", got.Description, want)
		}
	})
}

func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}
