package services

import "math"

// CalculateSystemKW derives the plant capacity in kW from the panel wattage
// and total panel count. The result keeps its fractional part (10 × 530 Wp
// is a 5.3 kW system); display rounding is left to the caller.
func CalculateSystemKW(panelWatts, panelCount int) float64 {
	if panelWatts <= 0 || panelCount <= 0 {
		return 0
	}
	return float64(panelWatts) * float64(panelCount) / 1000.0
}

// RoundForRate rounds a system capacity for rating text such as the mounting
// structure row. Sub-kW systems keep their exact figure so a 0.53 kW plant is
// not rated as 1 kW; anything at or above one kW rounds half-up to the
// nearest whole kW.
func RoundForRate(kw float64) float64 {
	if kw < 1 {
		return kw
	}
	return math.Round(kw)
}
