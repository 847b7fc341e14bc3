package services

import (
	"math"
	"strings"
)

// NumberToWords converts a whole number to Indian English words using
// crore/lakh grouping. Zero is spelled out ("Zero"), and "and" joins the
// final sub-hundred part when anything precedes it, matching how amounts
// are read out on Indian documents.
// Example: 254237 → "Two Lakh Fifty Four Thousand Two Hundred and Thirty Seven"
func NumberToWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Negative " + NumberToWords(-n)
	}
	return convertToIndianWords(n)
}

// AmountInWords renders a rupee amount as the in-words line printed under
// quotation totals, rounding to the nearest whole rupee.
// Example: 254237.00 → "Rupees Two Lakh Fifty Four Thousand Two Hundred and Thirty Seven Only"
func AmountInWords(amount float64) string {
	rupees := int64(math.Round(amount))
	return "Rupees " + NumberToWords(rupees) + " Only"
}

func convertToIndianWords(n int64) string {
	if n == 0 {
		return ""
	}

	var parts []string

	// Crores (10,000,000); counts of 100 and above recurse through the
	// same grouping ("One Hundred and Fifty Crore")
	if n >= 10000000 {
		crores := n / 10000000
		parts = append(parts, convertToIndianWords(crores)+" Crore")
		n %= 10000000
	}

	// Lakhs (100,000)
	if n >= 100000 {
		lakhs := n / 100000
		parts = append(parts, convertUnder100(lakhs)+" Lakh")
		n %= 100000
	}

	// Thousands (1,000)
	if n >= 1000 {
		thousands := n / 1000
		parts = append(parts, convertUnder100(thousands)+" Thousand")
		n %= 1000
	}

	// Hundreds
	if n >= 100 {
		hundreds := n / 100
		parts = append(parts, ones[hundreds]+" Hundred")
		n %= 100
	}

	// Remaining (1-99)
	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}

	return strings.Join(parts, " ")
}

func convertUnder100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	result := tens[n/10]
	if n%10 != 0 {
		result += " " + ones[n%10]
	}
	return result
}

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
