package services

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation regex patterns
var (
	phonePattern     = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	gstinPattern     = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	ifscPattern      = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	ebServicePattern = regexp.MustCompile(`^[0-9][0-9-]{4,14}[0-9]$`)
)

// ValidatePhone validates an Indian mobile number (10 digits starting with 6-9).
func ValidatePhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return true
	}
	return len(phone) == 10 && phonePattern.MatchString(phone)
}

// ValidateEmail validates an email address format.
func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return true
	}
	return emailPattern.MatchString(email)
}

// ValidateGSTIN validates a GSTIN (15-character alphanumeric).
func ValidateGSTIN(gstin string) bool {
	gstin = strings.TrimSpace(strings.ToUpper(gstin))
	if gstin == "" {
		return true
	}
	return len(gstin) == 15 && gstinPattern.MatchString(gstin)
}

// ValidateIFSC validates a bank IFSC code (4 letters, 0, 6 alphanumerics).
func ValidateIFSC(ifsc string) bool {
	ifsc = strings.TrimSpace(strings.ToUpper(ifsc))
	if ifsc == "" {
		return true
	}
	return len(ifsc) == 11 && ifscPattern.MatchString(ifsc)
}

// ValidateEBServiceNumber validates an electricity-board service connection
// number: digits with optional hyphen separators, 6 to 16 characters.
func ValidateEBServiceNumber(num string) bool {
	num = strings.TrimSpace(num)
	if num == "" {
		return true
	}
	return ebServicePattern.MatchString(num)
}

// ValidateGSTRate reports whether the rate is one of the GSTOptions slabs.
// Zero is accepted; it selects the variant default at generation time.
func ValidateGSTRate(rate float64) bool {
	for _, opt := range GSTOptions {
		if rate == opt {
			return true
		}
	}
	return false
}

// FieldError is a single field-level problem found in a quotation request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateQuotationRequest checks a quotation request before assembly and
// returns every problem found. The checks are advisory: the engine itself is
// total and will still produce a document for a flagged request (lenient
// parsing turns bad money strings into zero), so callers decide whether to
// block on the result.
func ValidateQuotationRequest(cfg ProjectConfiguration, customer Customer) []FieldError {
	var errs []FieldError
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	if strings.TrimSpace(customer.Name) == "" {
		add("customer.name", "Customer name is required")
	}
	if strings.TrimSpace(customer.Mobile) == "" {
		add("customer.mobile", "Mobile number is required")
	} else if !ValidatePhone(customer.Mobile) {
		add("customer.mobile", "Invalid mobile number (expected: 10 digits starting with 6-9)")
	}
	if !ValidateEmail(customer.Email) {
		add("customer.email", "Invalid email format")
	}
	if customer.PropertyType == "" {
		add("customer.propertyType", "Property type is required")
	} else if !customer.PropertyType.IsValid() {
		add("customer.propertyType", fmt.Sprintf("Unknown property type %q", customer.PropertyType))
	}
	if !ValidateEBServiceNumber(customer.EBServiceNumber) {
		add("customer.ebServiceNumber", "Invalid EB service number (expected: digits with optional hyphens)")
	}

	if !cfg.ProjectType.IsValid() {
		add("projectType", fmt.Sprintf("Unknown project type %q", cfg.ProjectType))
		return errs
	}

	if v := strings.TrimSpace(cfg.ProjectValue); v != "" && ParseMoney(v) == 0 {
		add("projectValue", fmt.Sprintf("Project value %q could not be parsed and will be treated as zero", v))
	}
	if !ValidateGSTRate(cfg.GSTPercentage) {
		add("gstPercentage", fmt.Sprintf("GST percentage %v is not one of the billable slab rates", cfg.GSTPercentage))
	}

	if cfg.ProjectType.IsSolar() {
		if cfg.PanelCount <= 0 {
			add("panelCount", "Panel count must be positive for a solar plant")
		}
		if cfg.PanelWatts < 0 {
			add("panelWatts", "Panel wattage cannot be negative")
		}
		if split := cfg.DCRCount + cfg.NonDCRCount; split > 0 && cfg.PanelCount > 0 && split != cfg.PanelCount {
			add("dcrCount", fmt.Sprintf("DCR + non-DCR counts (%d) do not match the panel count (%d)", split, cfg.PanelCount))
		}
		if cfg.StructureType != "" && !cfg.StructureType.IsValid() {
			add("structureType", fmt.Sprintf("Unknown structure type %q", cfg.StructureType))
		}
		if cfg.ProjectType.HasBattery() {
			if v := strings.TrimSpace(cfg.BatteryAH); v != "" && parseAH(v) == 0 {
				add("batteryAh", fmt.Sprintf("Battery capacity %q could not be parsed", v))
			}
			if cfg.BatteryCount < 0 {
				add("batteryCount", "Battery count cannot be negative")
			}
		}
	}

	switch cfg.ProjectType {
	case ProjectTypeWaterHeater:
		if cfg.CapacityLPD <= 0 {
			add("capacityLpd", "Capacity in LPD is required for a water heater")
		}
	case ProjectTypeWaterPump:
		if cfg.HorsePower <= 0 {
			add("horsePower", "Horse power is required for a water pump")
		}
	}

	return errs
}
