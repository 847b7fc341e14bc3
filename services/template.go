package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SerialNumber identifies a BOM row. Most rows carry a plain ordinal; a row
// split into sub-rows (DCR / non-DCR panels) shares one ordinal with letter
// minors, rendered "1a", "1b". It marshals as a bare number for plain rows
// and as a string for split rows.
type SerialNumber struct {
	Major int
	Minor string
}

// String renders the serial in its textual form ("3", "1a").
func (s SerialNumber) String() string {
	return strconv.Itoa(s.Major) + s.Minor
}

// MarshalJSON emits a JSON number for plain ordinals and a string such as
// "1a" for split rows.
func (s SerialNumber) MarshalJSON() ([]byte, error) {
	if s.Minor == "" {
		return []byte(strconv.Itoa(s.Major)), nil
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts either form: 3 or "1a".
func (s *SerialNumber) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = SerialNumber{Major: n}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("serial number: %w", err)
	}
	trimmed := strings.TrimRight(raw, "abcdefghijklmnopqrstuvwxyz")
	major, err := strconv.Atoi(trimmed)
	if err != nil {
		return fmt.Errorf("serial number %q: %w", raw, err)
	}
	*s = SerialNumber{Major: major, Minor: raw[len(trimmed):]}
	return nil
}

// Quantity is a BOM quantity: either a fixed count or "left to the
// preparer's discretion", which renders and marshals as the "-" sentinel.
type Quantity struct {
	Value     float64
	Undecided bool
}

// Qty wraps a fixed count.
func Qty(v float64) Quantity {
	return Quantity{Value: v}
}

// QtyUndecided is the "preparer decides" quantity.
var QtyUndecided = Quantity{Undecided: true}

// String renders the quantity without trailing zeros, or "-" when undecided.
func (q Quantity) String() string {
	if q.Undecided {
		return "-"
	}
	return FormatNumber(q.Value)
}

// MarshalJSON emits a JSON number, or the "-" sentinel string when the
// quantity is left undecided.
func (q Quantity) MarshalJSON() ([]byte, error) {
	if q.Undecided {
		return json.Marshal("-")
	}
	return []byte(FormatNumber(q.Value)), nil
}

// UnmarshalJSON accepts a number, a numeric string, or the "-" sentinel.
func (q *Quantity) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*q = Quantity{Value: v}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("quantity: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "-" || raw == "" {
		*q = QtyUndecided
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("quantity %q: %w", raw, err)
	}
	*q = Quantity{Value: v}
	return nil
}

// BOMItem is one row of the bill of materials. Detail columns that do not
// apply to an item hold "-".
// Rate and Amount are set only on the aggregated utility row.
type BOMItem struct {
	Serial      SerialNumber `json:"slNo"`
	Description string       `json:"description"`
	Type        string       `json:"type,omitempty"`
	Volt        string       `json:"volt,omitempty"`
	Rating      string       `json:"rating,omitempty"`
	Make        string       `json:"make,omitempty"`
	Qty         Quantity     `json:"qty"`
	Unit        string       `json:"unit"`
	Rate        float64      `json:"rate,omitempty"`
	Amount      float64      `json:"amount,omitempty"`
}

// PricingBreakdown is the computed price block of a quotation. KW carries the
// system capacity for solar variants; Qty carries the unit count for water
// heater / water pump quotations, whose KW stays 0 (earlier revisions packed
// the count into the kw column, which renderers had to special-case).
type PricingBreakdown struct {
	Description     string  `json:"description"`
	KW              float64 `json:"kw"`
	Qty             int     `json:"qty,omitempty"`
	RatePerKW       float64 `json:"ratePerKw"`
	GSTPerKW        float64 `json:"gstPerKw"`
	GSTPercentage   float64 `json:"gstPercentage"`
	BasePrice       float64 `json:"basePrice"`
	GSTAmount       float64 `json:"gstAmount"`
	ValueWithGST    float64 `json:"valueWithGST"`
	TotalCost       float64 `json:"totalCost"`
	SubsidyAmount   float64 `json:"subsidyAmount"`
	CustomerPayment float64 `json:"customerPayment"`
	RoundOff        float64 `json:"roundoff"`
}

// BOMSummary is the one-line supply summary shown on the price schedule
// above the itemized bill of materials.
type BOMSummary struct {
	Description string   `json:"description"`
	Qty         Quantity `json:"qty"`
	Unit        string   `json:"unit"`
	Rate        float64  `json:"rate"`
	Amount      float64  `json:"amount"`
}

// BackupSolutions is the battery runtime table for systems with a battery
// bank. BackupHours[i] is the runtime at UsageWatts[i].
type BackupSolutions struct {
	BackupWatts float64   `json:"backupWatts"`
	UsageWatts  []float64 `json:"usageWatts"`
	BackupHours []float64 `json:"backupHours"`
}

// Customer is the customer and property record a quotation is addressed to.
// The EB fields identify the electricity-board service connection used for
// net-meter liaisoning.
type Customer struct {
	Name            string       `json:"name"`
	Address         string       `json:"address"`
	Mobile          string       `json:"mobile"`
	Email           string       `json:"email,omitempty"`
	PropertyType    PropertyType `json:"propertyType"`
	EBServiceNumber string       `json:"ebServiceNumber,omitempty"`
	TariffCode      string       `json:"tariffCode,omitempty"`
	EBSanctionPhase string       `json:"ebSanctionPhase,omitempty"`
	EBSanctionKW    float64      `json:"ebSanctionKw,omitempty"`
}

// CompanyProfile is the issuing company block printed on document headers.
type CompanyProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	GSTIN   string `json:"gstin,omitempty"`
	Website string `json:"website,omitempty"`
}

// DefaultCompany is used when the quotation metadata does not carry a
// company profile.
var DefaultCompany = CompanyProfile{
	Name:    "SUNSHINE ENERGY SYSTEMS",
	Address: "No. 12, Kamarajar Salai, Madurai - 625009, Tamil Nadu",
	Phone:   "+91 90433 21456",
	Email:   "sales@sunshineenergy.in",
	GSTIN:   "33AAFCS9921H1ZL",
	Website: "www.sunshineenergy.in",
}

// QuotationMeta is the per-quotation metadata supplied alongside the project
// configuration: document identity, commercial terms and optional overrides.
// A non-empty CustomBillOfMaterials replaces the generated BOM wholesale.
type QuotationMeta struct {
	QuotationNumber          string          `json:"quotationNumber,omitempty"`
	DocumentVersion          string          `json:"documentVersion,omitempty"`
	ValidUntil               string          `json:"validUntil,omitempty"`
	PreparedBy               string          `json:"preparedBy,omitempty"`
	ContactPerson            string          `json:"contactPerson,omitempty"`
	ContactNumber            string          `json:"contactNumber,omitempty"`
	RefName                  string          `json:"refName,omitempty"`
	AdvancePaymentPercentage float64         `json:"advancePaymentPercentage,omitempty"`
	DeliveryTimeframe        string          `json:"deliveryTimeframe,omitempty"`
	DetailedWarrantyTerms    []string        `json:"detailedWarrantyTerms,omitempty"`
	PhysicalDamageExclusions []string        `json:"physicalDamageExclusions,omitempty"`
	AccountDetails           string          `json:"accountDetails,omitempty"`
	DocumentRequirements     []string        `json:"documentRequirements,omitempty"`
	CustomBillOfMaterials    []BOMItem       `json:"customBillOfMaterials,omitempty"`
	Company                  *CompanyProfile `json:"company,omitempty"`
}

// QuotationHeader is the document header block.
type QuotationHeader struct {
	QuotationNumber string         `json:"quotationNumber"`
	QuotationDate   string         `json:"quotationDate"`
	ValidUntil      string         `json:"validUntil,omitempty"`
	DocumentVersion string         `json:"documentVersion,omitempty"`
	ProjectTitle    string         `json:"projectTitle"`
	PreparedBy      string         `json:"preparedBy,omitempty"`
	ContactPerson   string         `json:"contactPerson,omitempty"`
	ContactNumber   string         `json:"contactNumber,omitempty"`
	RefName         string         `json:"refName,omitempty"`
	Company         CompanyProfile `json:"company"`
}

// TermsAndConditions is the commercial terms block.
type TermsAndConditions struct {
	AdvancePaymentPercentage float64  `json:"advancePaymentPercentage,omitempty"`
	DeliveryTimeframe        string   `json:"deliveryTimeframe,omitempty"`
	Warranty                 []string `json:"warranty"`
	PhysicalDamageExclusions []string `json:"physicalDamageExclusions,omitempty"`
	AccountDetails           string   `json:"accountDetails,omitempty"`
}

// ScopeOfWork splits the work items between the installer and the customer.
// Every routable item appears in exactly one of the two lists.
type ScopeOfWork struct {
	CompanyScope  []string `json:"companyScope"`
	CustomerScope []string `json:"customerScope"`
}

// QuotationTemplate is the assembled quotation document. It is constructed
// once per request and never mutated; a configuration change requires
// generating a new template.
type QuotationTemplate struct {
	Header             QuotationHeader    `json:"header"`
	Customer           Customer           `json:"customer"`
	PricingBreakdown   PricingBreakdown   `json:"pricingBreakdown"`
	BOMSummary         BOMSummary         `json:"bomSummary"`
	BackupSolutions    *BackupSolutions   `json:"backupSolutions,omitempty"`
	BillOfMaterials    []BOMItem          `json:"billOfMaterials"`
	TermsAndConditions TermsAndConditions `json:"termsAndConditions"`
	ScopeOfWork        ScopeOfWork        `json:"scopeOfWork"`
	DocumentsRequired  []string           `json:"documentsRequiredForSubsidy"`
}
