package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders a quotation template into the customer-facing PDF
// using maroto/v2. It returns the raw PDF bytes or an error.
func GeneratePDF(t *QuotationTemplate) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addLetterhead(m, t.Header)
	addQuotationInfo(m, t.Header)
	addCustomerBlock(m, t.Customer)
	addPriceSchedule(m, t.PricingBreakdown)
	addBOMTable(m, t.BillOfMaterials)
	if t.BackupSolutions != nil {
		addBackupTable(m, t.BackupSolutions)
	}
	addScopeOfWork(m, t.ScopeOfWork)
	addTermsSection(m, t.TermsAndConditions)
	if t.PricingBreakdown.SubsidyAmount > 0 && len(t.DocumentsRequired) > 0 {
		addDocumentsSection(m, t.DocumentsRequired)
	}
	addSignatureBlock(m, t.Header)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addLetterhead adds the issuing company block at the top of the document.
func addLetterhead(m core.Maroto, h QuotationHeader) {
	gray := &props.Color{Red: 80, Green: 80, Blue: 80}

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(h.Company.Name, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(h.Company.Address, props.Text{
					Size:  8,
					Align: align.Center,
					Color: gray,
				}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Phone: %s | Email: %s", h.Company.Phone, h.Company.Email), props.Text{
					Size:  8,
					Align: align.Center,
					Color: gray,
				}),
			),
		),
	)
	if h.Company.GSTIN != "" {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New("GSTIN: "+h.Company.GSTIN, props.Text{
						Size:  8,
						Align: align.Center,
						Color: gray,
					}),
				),
			),
		)
	}
	m.AddRows(row.New(4))
}

// addQuotationInfo adds the document title plus the identity block: number
// and date on the left, preparer and contact on the right.
func addQuotationInfo(m core.Maroto, h QuotationHeader) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New("QUOTATION", props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(7).Add(
			col.New(12).Add(
				text.New(h.ProjectTitle, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	small := props.Text{Size: 9, Align: align.Left}
	right := props.Text{Size: 9, Align: align.Right}

	left := fmt.Sprintf("Quotation No: %s   Date: %s", h.QuotationNumber, h.QuotationDate)
	if h.ValidUntil != "" {
		left += "   Valid Until: " + h.ValidUntil
	}
	var prepared string
	if h.PreparedBy != "" {
		prepared = "Prepared By: " + h.PreparedBy
	}
	if h.ContactNumber != "" {
		prepared += "  (" + h.ContactNumber + ")"
	}

	m.AddRows(
		row.New(6).Add(
			col.New(7).Add(text.New(left, small)),
			col.New(5).Add(text.New(prepared, right)),
		),
	)
	if h.RefName != "" || h.DocumentVersion != "" {
		var ref, version string
		if h.RefName != "" {
			ref = "Ref: " + h.RefName
		}
		if h.DocumentVersion != "" {
			version = "Version: " + h.DocumentVersion
		}
		m.AddRows(
			row.New(6).Add(
				col.New(7).Add(text.New(ref, small)),
				col.New(5).Add(text.New(version, right)),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addCustomerBlock adds the addressee details.
func addCustomerBlock(m core.Maroto, c Customer) {
	addSectionTitle(m, "Customer Details")

	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 9, Align: align.Left}

	pair := func(l, v string) core.Row {
		return row.New(6).Add(
			col.New(3).Add(text.New(l, label)),
			col.New(9).Add(text.New(v, value)),
		)
	}

	m.AddRows(
		pair("Name", c.Name),
		pair("Address", c.Address),
		pair("Mobile", c.Mobile),
		pair("Property Type", string(c.PropertyType)),
	)
	if c.EBServiceNumber != "" {
		eb := c.EBServiceNumber
		if c.TariffCode != "" {
			eb += "  (Tariff: " + c.TariffCode + ")"
		}
		m.AddRows(pair("EB Service No", eb))
	}
	m.AddRows(row.New(3))
}

// addPriceSchedule adds the description paragraph and the computed money
// rows, ending with the customer payment and its amount in words.
func addPriceSchedule(m core.Maroto, p PricingBreakdown) {
	addSectionTitle(m, "Price Schedule")

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(p.Description, props.Text{Size: 9, Align: align.Left}),
			),
		),
	)

	label := props.Text{Size: 9, Align: align.Left}
	value := props.Text{Size: 9, Align: align.Right}
	bold := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	boldValue := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	money := func(l, v string) core.Row {
		return row.New(6).Add(
			col.New(8).Add(text.New(l, label)),
			col.New(4).Add(text.New(v, value)),
		)
	}

	if p.KW > 0 {
		m.AddRows(
			money("System Capacity", FormatNumber(p.KW)+" kW"),
			money("Rate per kW (excl. GST)", FormatINR(p.RatePerKW)),
		)
	}
	if p.Qty > 0 {
		m.AddRows(
			money("Quantity", fmt.Sprintf("%d Nos", p.Qty)),
			money("Unit Rate (excl. GST)", FormatINR(p.RatePerKW)),
		)
	}
	m.AddRows(
		money("Base Price", FormatINR(p.BasePrice)),
		money(fmt.Sprintf("GST (%s%%)", FormatNumber(p.GSTPercentage)), FormatINR(p.GSTAmount)),
		money("Value with GST", FormatINR(p.ValueWithGST)),
	)
	if p.RoundOff != 0 {
		m.AddRows(money("Round Off", FormatINR(p.RoundOff)))
	}
	m.AddRows(money("Total Cost", FormatINR(p.TotalCost)))
	if p.SubsidyAmount > 0 {
		m.AddRows(money("Less: Government Subsidy", FormatINR(p.SubsidyAmount)))
	}

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(text.New("Customer Payment", bold)).WithStyle(summaryCell),
			col.New(4).Add(text.New(FormatINR(p.CustomerPayment), boldValue)).WithStyle(summaryCell),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(AmountInWords(p.CustomerPayment), props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Left,
				}),
			),
		),
	)
	m.AddRows(row.New(3))
}

// addBOMTable adds the itemized bill of materials. The column layout widens
// the description and adds Rate/Amount columns when any row carries a rate
// (the aggregated utility row does).
func addBOMTable(m core.Maroto, items []BOMItem) {
	if len(items) == 0 {
		return
	}
	addSectionTitle(m, "Bill of Materials")

	hasRates := false
	for _, item := range items {
		if item.Rate > 0 {
			hasRates = true
			break
		}
	}

	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	if hasRates {
		m.AddRows(
			row.New(8).Add(
				col.New(1).Add(text.New("Sl", headerText)).WithStyle(&headerCell),
				col.New(4).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
				col.New(1).Add(text.New("Rating", headerText)).WithStyle(&headerCell),
				col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
				col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
				col.New(2).Add(text.New("Rate", headerText)).WithStyle(&headerCell),
				col.New(2).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
			),
		)
	} else {
		m.AddRows(
			row.New(8).Add(
				col.New(1).Add(text.New("Sl", headerText)).WithStyle(&headerCell),
				col.New(3).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
				col.New(2).Add(text.New("Type", headerText)).WithStyle(&headerCell),
				col.New(1).Add(text.New("Volt", headerText)).WithStyle(&headerCell),
				col.New(1).Add(text.New("Rating", headerText)).WithStyle(&headerCell),
				col.New(2).Add(text.New("Make", headerText)).WithStyle(&headerCell),
				col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
				col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
			),
		)
	}

	baseText := props.Text{Size: 7, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	stripe := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}

	for i, item := range items {
		var cols []core.Col
		if hasRates {
			cols = []core.Col{
				col.New(1).Add(text.New(item.Serial.String(), baseText)),
				col.New(4).Add(text.New(item.Description, leftText)),
				col.New(1).Add(text.New(item.Rating, baseText)),
				col.New(1).Add(text.New(item.Qty.String(), rightText)),
				col.New(1).Add(text.New(item.Unit, baseText)),
				col.New(2).Add(text.New(FormatINR(item.Rate), rightText)),
				col.New(2).Add(text.New(FormatINR(item.Amount), rightText)),
			}
		} else {
			cols = []core.Col{
				col.New(1).Add(text.New(item.Serial.String(), baseText)),
				col.New(3).Add(text.New(item.Description, leftText)),
				col.New(2).Add(text.New(item.Type, baseText)),
				col.New(1).Add(text.New(item.Volt, baseText)),
				col.New(1).Add(text.New(item.Rating, baseText)),
				col.New(2).Add(text.New(item.Make, baseText)),
				col.New(1).Add(text.New(item.Qty.String(), rightText)),
				col.New(1).Add(text.New(item.Unit, baseText)),
			}
		}
		if i%2 == 1 {
			for j := range cols {
				cols[j] = cols[j].WithStyle(stripe)
			}
		}
		m.AddRows(row.New(7).Add(cols...))
	}
	m.AddRows(row.New(3))
}

// addBackupTable adds the battery runtime estimates.
func addBackupTable(m core.Maroto, b *BackupSolutions) {
	addSectionTitle(m, "Backup Solutions")

	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Backup Capacity: %s W (after 3%% system loss)", FormatNumber(b.BackupWatts)), props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)

	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: headerBg}
	cellText := props.Text{Size: 8, Align: align.Center}

	m.AddRows(
		row.New(7).Add(
			col.New(6).Add(text.New("Load (Watts)", headerText)).WithStyle(&headerCell),
			col.New(6).Add(text.New("Backup (Hours)", headerText)).WithStyle(&headerCell),
		),
	)
	for i, w := range b.UsageWatts {
		m.AddRows(
			row.New(6).Add(
				col.New(6).Add(text.New(FormatNumber(w), cellText)),
				col.New(6).Add(text.New(FormatNumber(b.BackupHours[i]), cellText)),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addScopeOfWork adds the two scope lists side by side.
func addScopeOfWork(m core.Maroto, s ScopeOfWork) {
	addSectionTitle(m, "Scope of Work")

	heading := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	bullet := props.Text{Size: 8, Align: align.Left}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("Company Scope", heading)),
			col.New(6).Add(text.New("Customer Scope", heading)),
		),
	)

	rows := len(s.CompanyScope)
	if len(s.CustomerScope) > rows {
		rows = len(s.CustomerScope)
	}
	for i := 0; i < rows; i++ {
		var left, right string
		if i < len(s.CompanyScope) {
			left = "• " + s.CompanyScope[i]
		}
		if i < len(s.CustomerScope) {
			right = "• " + s.CustomerScope[i]
		}
		m.AddRows(
			row.New(6).Add(
				col.New(6).Add(text.New(left, bullet)),
				col.New(6).Add(text.New(right, bullet)),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addTermsSection adds the commercial terms and warranty lines.
func addTermsSection(m core.Maroto, terms TermsAndConditions) {
	addSectionTitle(m, "Terms & Conditions")

	bullet := props.Text{Size: 8, Align: align.Left}
	heading := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}

	line := func(txt string) core.Row {
		return row.New(5).Add(col.New(12).Add(text.New(txt, bullet)))
	}

	m.AddRows(
		line(fmt.Sprintf("• Advance Payment: %s%% of the order value along with the confirmed order", FormatNumber(terms.AdvancePaymentPercentage))),
		line("• Delivery: "+terms.DeliveryTimeframe),
	)
	if terms.AccountDetails != "" {
		m.AddRows(line("• Account Details: " + terms.AccountDetails))
	}

	m.AddRows(row.New(6).Add(col.New(12).Add(text.New("Warranty", heading))))
	for _, w := range terms.Warranty {
		m.AddRows(line("• " + w))
	}
	if len(terms.PhysicalDamageExclusions) > 0 {
		m.AddRows(row.New(6).Add(col.New(12).Add(text.New("Warranty Exclusions", heading))))
		for _, e := range terms.PhysicalDamageExclusions {
			m.AddRows(line("• " + e))
		}
	}
	m.AddRows(row.New(3))
}

// addDocumentsSection adds the subsidy document checklist.
func addDocumentsSection(m core.Maroto, docs []string) {
	addSectionTitle(m, "Documents Required for Subsidy")
	bullet := props.Text{Size: 8, Align: align.Left}
	for _, d := range docs {
		m.AddRows(
			row.New(5).Add(col.New(12).Add(text.New("• "+d, bullet))),
		)
	}
	m.AddRows(row.New(3))
}

// addSignatureBlock closes the document with the acceptance and signatory
// lines.
func addSignatureBlock(m core.Maroto, h QuotationHeader) {
	m.AddRows(row.New(10))

	small := props.Text{Size: 9, Align: align.Left}
	right := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("Customer Acceptance", small)),
			col.New(6).Add(text.New("For "+h.Company.Name, right)),
		),
		row.New(14),
		row.New(6).Add(
			col.New(6).Add(text.New("(Signature with date)", props.Text{
				Size:  8,
				Align: align.Left,
				Color: &props.Color{Red: 120, Green: 120, Blue: 120},
			})),
			col.New(6).Add(text.New("Authorised Signatory", props.Text{
				Size:  9,
				Align: align.Right,
			})),
		),
	)
}

// addSectionTitle adds a charcoal section banner.
func addSectionTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 255, Green: 255, Blue: 255},
					Left:  2,
				}),
			).WithStyle(&props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}),
		),
	)
}
