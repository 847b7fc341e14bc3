package services

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupportedProjectType is returned by AssembleQuotation when the
// configuration carries a project type outside the five known variants.
var ErrUnsupportedProjectType = errors.New("unsupported project type")

// AssembleQuotation builds the complete quotation document from a project
// configuration, the customer record and the per-quotation metadata. The
// second return aggregates generation warnings for the preparer; the only
// error condition is an unrecognized project type. The result is a value
// snapshot; changing the configuration afterwards requires assembling a
// new template.
func AssembleQuotation(cfg ProjectConfiguration, customer Customer, meta QuotationMeta, now time.Time) (*QuotationTemplate, []string, error) {
	if !cfg.ProjectType.IsValid() {
		return nil, nil, fmt.Errorf("assemble quotation: %w: %q", ErrUnsupportedProjectType, cfg.ProjectType)
	}
	cfg = cfg.withDefaults()

	pricing, _ := GeneratePricing(cfg, customer.PropertyType)

	var (
		bom      []BOMItem
		warnings []string
	)
	if len(meta.CustomBillOfMaterials) > 0 {
		// A supplied bill of materials replaces generation wholesale.
		bom = meta.CustomBillOfMaterials
	} else {
		bom, warnings = GenerateBOM(cfg)
	}

	documents := meta.DocumentRequirements
	if len(documents) == 0 {
		documents = DefaultDocumentRequirements
	}

	template := &QuotationTemplate{
		Header:             buildHeader(cfg, pricing, meta, now),
		Customer:           customer,
		PricingBreakdown:   pricing,
		BOMSummary:         buildBOMSummary(cfg, pricing, bom),
		BackupSolutions:    CalculateBackup(cfg),
		BillOfMaterials:    bom,
		TermsAndConditions: buildTerms(cfg, meta),
		ScopeOfWork:        BuildScopeOfWork(cfg),
		DocumentsRequired:  documents,
	}
	return template, warnings, nil
}

func buildHeader(cfg ProjectConfiguration, pricing PricingBreakdown, meta QuotationMeta, now time.Time) QuotationHeader {
	company := DefaultCompany
	if meta.Company != nil {
		company = *meta.Company
	}
	return QuotationHeader{
		QuotationNumber: meta.QuotationNumber,
		QuotationDate:   now.Format("02 Jan 2006"),
		ValidUntil:      meta.ValidUntil,
		DocumentVersion: meta.DocumentVersion,
		ProjectTitle:    projectTitle(cfg, pricing.KW),
		PreparedBy:      meta.PreparedBy,
		ContactPerson:   meta.ContactPerson,
		ContactNumber:   meta.ContactNumber,
		RefName:         meta.RefName,
		Company:         company,
	}
}

func projectTitle(cfg ProjectConfiguration, kw float64) string {
	switch cfg.ProjectType {
	case ProjectTypeWaterHeater:
		return fmt.Sprintf("%d LPD Solar Water Heater", cfg.CapacityLPD)
	case ProjectTypeWaterPump:
		return fmt.Sprintf("%s HP Solar Water Pump", FormatNumber(cfg.HorsePower))
	}
	return fmt.Sprintf("%s kW %s", FormatNumber(kw), cfg.ProjectType.Label())
}

// buildBOMSummary condenses the quotation into the single supply line shown
// on the price schedule. Solar plants quote one turnkey set at the full
// GST-inclusive value; utility products carry the unit rate resolved by the
// BOM fallback chain.
func buildBOMSummary(cfg ProjectConfiguration, pricing PricingBreakdown, bom []BOMItem) BOMSummary {
	if cfg.ProjectType.IsSolar() {
		return BOMSummary{
			Description: pricing.Description,
			Qty:         Qty(1),
			Unit:        "Set",
			Rate:        pricing.ValueWithGST,
			Amount:      pricing.ValueWithGST,
		}
	}

	summary := BOMSummary{
		Description: pricing.Description,
		Qty:         Qty(float64(cfg.Qty)),
		Unit:        "Nos",
	}
	if len(bom) > 0 && bom[0].Rate > 0 {
		summary.Rate = bom[0].Rate
		summary.Amount = bom[0].Amount
	} else if cfg.Qty > 0 {
		summary.Rate = pricing.ValueWithGST / float64(cfg.Qty)
		summary.Amount = pricing.ValueWithGST
	}
	return summary
}

func buildTerms(cfg ProjectConfiguration, meta QuotationMeta) TermsAndConditions {
	terms := TermsAndConditions{
		AdvancePaymentPercentage: meta.AdvancePaymentPercentage,
		DeliveryTimeframe:        meta.DeliveryTimeframe,
		Warranty:                 WarrantyTerms(cfg.ProjectType),
		PhysicalDamageExclusions: meta.PhysicalDamageExclusions,
		AccountDetails:           meta.AccountDetails,
	}
	if terms.AdvancePaymentPercentage <= 0 {
		terms.AdvancePaymentPercentage = DefaultAdvancePercentage
	}
	if terms.DeliveryTimeframe == "" {
		terms.DeliveryTimeframe = DefaultDeliveryTimeframe
	}
	if len(meta.DetailedWarrantyTerms) > 0 {
		terms.Warranty = meta.DetailedWarrantyTerms
	}
	if len(terms.PhysicalDamageExclusions) == 0 {
		terms.PhysicalDamageExclusions = DefaultPhysicalDamageExclusions
	}
	return terms
}
