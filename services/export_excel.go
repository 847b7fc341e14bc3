package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const bomSheetName = "Bill of Materials"

// GenerateExcel renders a quotation template into a two-sheet workbook:
// "Quotation" carries the header, customer, price schedule, scope and terms;
// "Bill of Materials" carries the itemized BOM and the backup table. The
// file contents are returned as a byte slice.
func GenerateExcel(t *QuotationTemplate) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// Rename default sheet.
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, "Quotation"); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	if err := writeQuotationSheet(f, "Quotation", t); err != nil {
		return nil, err
	}
	if err := writeBOMSheet(f, t); err != nil {
		return nil, err
	}
	f.SetActiveSheet(0)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetStyles holds the style ids shared by both sheets.
type sheetStyles struct {
	title   int
	caption int
	section int
	label   int
	value   int
	header  int
	cell    int
	total   int
}

func buildStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	var err error

	// Title style: bold, 16pt.
	s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}

	// Caption style (address and contact lines).
	s.caption, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return s, fmt.Errorf("create caption style: %w", err)
	}

	// Section heading: bold, white text, charcoal background.
	s.section, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	if err != nil {
		return s, fmt.Errorf("create section style: %w", err)
	}

	// Label / value pair styles.
	s.label, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
	})
	if err != nil {
		return s, fmt.Errorf("create label style: %w", err)
	}
	s.value, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			WrapText:   true,
		},
	})
	if err != nil {
		return s, fmt.Errorf("create value style: %w", err)
	}

	// Table header: bold, white text, charcoal background, centered.
	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	// Table cell: normal with borders.
	s.cell, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{
			Vertical: "center",
			WrapText: true,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create cell style: %w", err)
	}

	// Emphasis style for totals and the amount in words.
	s.total, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return s, fmt.Errorf("create total style: %w", err)
	}

	return s, nil
}

func writeQuotationSheet(f *excelize.File, sheet string, t *QuotationTemplate) error {
	styles, err := buildStyles(f)
	if err != nil {
		return err
	}

	cols := []string{"A", "B", "C", "D"}
	widths := []float64{28, 44, 16, 28}
	for i, col := range cols {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}
	lastCol := cols[len(cols)-1]

	var firstErr error
	row := 0

	// line writes one merged full-width row.
	line := func(text string, style int) {
		row++
		ref := fmt.Sprintf("%d", row)
		if err := f.MergeCell(sheet, "A"+ref, lastCol+ref); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("merge row %s: %w", ref, err)
		}
		f.SetCellValue(sheet, "A"+ref, sanitizeExcelCell(text))
		f.SetCellStyle(sheet, "A"+ref, lastCol+ref, style)
	}

	// pair writes a label in column A and its value merged across the rest.
	pair := func(label string, value any) {
		row++
		ref := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+ref, label)
		f.SetCellStyle(sheet, "A"+ref, "A"+ref, styles.label)
		if err := f.MergeCell(sheet, "B"+ref, lastCol+ref); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("merge row %s: %w", ref, err)
		}
		if s, ok := value.(string); ok {
			value = sanitizeExcelCell(s)
		}
		f.SetCellValue(sheet, "B"+ref, value)
		f.SetCellStyle(sheet, "B"+ref, lastCol+ref, styles.value)
	}
	blank := func() { row++ }

	// ── Company header ──────────────────────────────────────────────────

	company := t.Header.Company
	line(company.Name, styles.title)
	line(company.Address, styles.caption)
	line("Phone: "+company.Phone+" | Email: "+company.Email, styles.caption)
	if company.GSTIN != "" {
		line("GSTIN: "+company.GSTIN, styles.caption)
	}
	blank()

	// ── Quotation identity ──────────────────────────────────────────────

	line("QUOTATION: "+t.Header.ProjectTitle, styles.section)
	if t.Header.QuotationNumber != "" {
		pair("Quotation No", t.Header.QuotationNumber)
	}
	pair("Date", t.Header.QuotationDate)
	if t.Header.ValidUntil != "" {
		pair("Valid Until", t.Header.ValidUntil)
	}
	if t.Header.DocumentVersion != "" {
		pair("Version", t.Header.DocumentVersion)
	}
	if t.Header.PreparedBy != "" {
		pair("Prepared By", t.Header.PreparedBy)
	}
	if t.Header.ContactPerson != "" {
		contact := t.Header.ContactPerson
		if t.Header.ContactNumber != "" {
			contact += " (" + t.Header.ContactNumber + ")"
		}
		pair("Contact", contact)
	}
	if t.Header.RefName != "" {
		pair("Ref", t.Header.RefName)
	}
	blank()

	// ── Customer ────────────────────────────────────────────────────────

	line("Customer Details", styles.section)
	pair("Name", t.Customer.Name)
	pair("Address", t.Customer.Address)
	pair("Mobile", t.Customer.Mobile)
	pair("Property Type", string(t.Customer.PropertyType))
	if t.Customer.EBServiceNumber != "" {
		pair("EB Service No", t.Customer.EBServiceNumber)
	}
	blank()

	// ── Price schedule ──────────────────────────────────────────────────

	p := t.PricingBreakdown
	line("Price Schedule", styles.section)
	pair("Description", p.Description)
	if p.KW > 0 {
		pair("System Capacity", FormatNumber(p.KW)+" kW")
		pair("Rate per kW (excl. GST)", FormatINR(p.RatePerKW))
		pair("GST per kW", FormatINR(p.GSTPerKW))
	}
	if p.Qty > 0 {
		pair("Quantity", p.Qty)
		pair("Unit Rate (excl. GST)", FormatINR(p.RatePerKW))
	}
	pair("Base Price", FormatINR(p.BasePrice))
	pair(fmt.Sprintf("GST (%s%%)", FormatNumber(p.GSTPercentage)), FormatINR(p.GSTAmount))
	pair("Value with GST", FormatINR(p.ValueWithGST))
	if p.RoundOff != 0 {
		pair("Round Off", FormatINR(p.RoundOff))
	}
	pair("Total Cost", FormatINR(p.TotalCost))
	if p.SubsidyAmount > 0 {
		pair("Government Subsidy", FormatINR(p.SubsidyAmount))
	}
	pair("Customer Payment", FormatINR(p.CustomerPayment))
	line(AmountInWords(p.CustomerPayment), styles.total)
	blank()

	// ── Scope of work ───────────────────────────────────────────────────

	line("Scope of Work", styles.section)
	line("Company Scope:", styles.label)
	for _, item := range t.ScopeOfWork.CompanyScope {
		line("• "+item, styles.value)
	}
	line("Customer Scope:", styles.label)
	for _, item := range t.ScopeOfWork.CustomerScope {
		line("• "+item, styles.value)
	}
	blank()

	// ── Terms ───────────────────────────────────────────────────────────

	terms := t.TermsAndConditions
	line("Terms & Conditions", styles.section)
	pair("Advance Payment", fmt.Sprintf("%s%% of the order value", FormatNumber(terms.AdvancePaymentPercentage)))
	pair("Delivery", terms.DeliveryTimeframe)
	line("Warranty:", styles.label)
	for _, w := range terms.Warranty {
		line("• "+w, styles.value)
	}
	if len(terms.PhysicalDamageExclusions) > 0 {
		line("Warranty Exclusions:", styles.label)
		for _, e := range terms.PhysicalDamageExclusions {
			line("• "+e, styles.value)
		}
	}
	if terms.AccountDetails != "" {
		pair("Account Details", terms.AccountDetails)
	}

	// ── Subsidy documents ───────────────────────────────────────────────

	if p.SubsidyAmount > 0 && len(t.DocumentsRequired) > 0 {
		blank()
		line("Documents Required for Subsidy", styles.section)
		for _, d := range t.DocumentsRequired {
			line("• "+d, styles.value)
		}
	}

	return firstErr
}

func writeBOMSheet(f *excelize.File, t *QuotationTemplate) error {
	if _, err := f.NewSheet(bomSheetName); err != nil {
		return fmt.Errorf("create bom sheet: %w", err)
	}
	styles, err := buildStyles(f)
	if err != nil {
		return err
	}

	// Rate and Amount columns appear only when a row carries them.
	hasRates := false
	for _, item := range t.BillOfMaterials {
		if item.Rate > 0 {
			hasRates = true
			break
		}
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	widths := []float64{8, 46, 18, 10, 12, 18, 8, 10}
	headers := []string{"Sl. No", "Description", "Type", "Volt", "Rating", "Make", "Qty", "Unit"}
	if hasRates {
		columns = append(columns, "I", "J")
		widths = append(widths, 16, 16)
		headers = append(headers, "Rate", "Amount")
	}
	for i, col := range columns {
		if err := f.SetColWidth(bomSheetName, col, col, widths[i]); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}
	lastCol := columns[len(columns)-1]

	// ── Title and column headers ────────────────────────────────────────

	if err := f.MergeCell(bomSheetName, "A1", lastCol+"1"); err != nil {
		return fmt.Errorf("merge bom title: %w", err)
	}
	f.SetCellValue(bomSheetName, "A1", "Bill of Materials: "+sanitizeExcelCell(t.Header.ProjectTitle))
	f.SetCellStyle(bomSheetName, "A1", lastCol+"1", styles.title)

	for i, h := range headers {
		f.SetCellValue(bomSheetName, columns[i]+"3", h)
	}
	f.SetCellStyle(bomSheetName, "A3", lastCol+"3", styles.header)

	// ── Item rows ───────────────────────────────────────────────────────

	row := 4
	for _, item := range t.BillOfMaterials {
		ref := fmt.Sprintf("%d", row)
		f.SetCellValue(bomSheetName, "A"+ref, item.Serial.String())
		f.SetCellValue(bomSheetName, "B"+ref, sanitizeExcelCell(item.Description))
		f.SetCellValue(bomSheetName, "C"+ref, sanitizeExcelCell(item.Type))
		f.SetCellValue(bomSheetName, "D"+ref, sanitizeExcelCell(item.Volt))
		f.SetCellValue(bomSheetName, "E"+ref, sanitizeExcelCell(item.Rating))
		f.SetCellValue(bomSheetName, "F"+ref, sanitizeExcelCell(item.Make))
		if item.Qty.Undecided {
			f.SetCellValue(bomSheetName, "G"+ref, "-")
		} else {
			f.SetCellValue(bomSheetName, "G"+ref, item.Qty.Value)
		}
		f.SetCellValue(bomSheetName, "H"+ref, sanitizeExcelCell(item.Unit))
		if hasRates && item.Rate > 0 {
			f.SetCellValue(bomSheetName, "I"+ref, FormatINR(item.Rate))
			f.SetCellValue(bomSheetName, "J"+ref, FormatINR(item.Amount))
		}
		f.SetCellStyle(bomSheetName, "A"+ref, lastCol+ref, styles.cell)
		row++
	}

	// ── Backup table ────────────────────────────────────────────────────

	if b := t.BackupSolutions; b != nil {
		row += 2
		ref := fmt.Sprintf("%d", row)
		if err := f.MergeCell(bomSheetName, "A"+ref, "C"+ref); err != nil {
			return fmt.Errorf("merge backup title: %w", err)
		}
		f.SetCellValue(bomSheetName, "A"+ref, "Backup Solutions")
		f.SetCellStyle(bomSheetName, "A"+ref, "C"+ref, styles.section)
		row++

		ref = fmt.Sprintf("%d", row)
		f.SetCellValue(bomSheetName, "A"+ref, "Backup Capacity")
		f.SetCellStyle(bomSheetName, "A"+ref, "A"+ref, styles.label)
		f.SetCellValue(bomSheetName, "B"+ref, FormatNumber(b.BackupWatts)+" W")
		row++

		ref = fmt.Sprintf("%d", row)
		f.SetCellValue(bomSheetName, "A"+ref, "Load (Watts)")
		f.SetCellValue(bomSheetName, "B"+ref, "Backup (Hours)")
		f.SetCellStyle(bomSheetName, "A"+ref, "B"+ref, styles.header)
		row++

		for i, w := range b.UsageWatts {
			ref = fmt.Sprintf("%d", row)
			f.SetCellValue(bomSheetName, "A"+ref, w)
			f.SetCellValue(bomSheetName, "B"+ref, b.BackupHours[i])
			f.SetCellStyle(bomSheetName, "A"+ref, "B"+ref, styles.cell)
			row++
		}
	}

	return nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
// The lone "-" placeholder used for empty table cells is exempt.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 || s == "-" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
