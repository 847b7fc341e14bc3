package services

import (
	"fmt"
	"time"
)

// FiscalYear returns the Indian fiscal year string for a given date.
// Indian fiscal year runs April to March.
// Jan 2026 → "25-26", May 2026 → "26-27"
func FiscalYear(t time.Time) string {
	year := t.Year()
	month := t.Month()

	var startYear int
	if month >= time.April {
		startYear = year
	} else {
		startYear = year - 1
	}
	endYear := startYear + 1

	return fmt.Sprintf("%02d-%02d", startYear%100, endYear%100)
}

// FormatQuotationNumber constructs a quotation number from its components.
// Format: SES-QT-{fiscal_year}-{sequence}, e.g. SES-QT-25-26-007.
// Uses "-" as separator to avoid conflicts with reference numbers that contain "/".
func FormatQuotationNumber(fiscalYear string, sequence int) string {
	return fmt.Sprintf("SES-QT-%s-%03d", fiscalYear, sequence)
}
