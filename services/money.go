package services

import (
	"math"
	"strconv"
	"strings"
)

// ParseMoney converts a display amount such as "₹3,00,000" or "Rs. 45000.50"
// into a float. Currency markers, grouping commas and whitespace are stripped
// before parsing; a value that still fails to parse is treated as zero so a
// malformed entry degrades to "no price captured" rather than an error.
func ParseMoney(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	for _, marker := range []string{"₹", "Rs.", "Rs", "INR"} {
		s = strings.ReplaceAll(s, marker, "")
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// SplitGST back-calculates the pre-tax base from a GST-inclusive value. The
// base is rounded to the nearest rupee and the tax taken as the remainder,
// so base + tax always reproduces the inclusive value.
func SplitGST(valueWithGST, gstPercent float64) (base, tax float64) {
	if valueWithGST <= 0 {
		return 0, 0
	}
	base = math.Round(valueWithGST / (1 + gstPercent/100))
	tax = valueWithGST - base
	return base, tax
}

// round2 rounds to two decimal places, the precision printed on documents.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
