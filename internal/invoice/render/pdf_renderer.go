package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

type pdfRenderer struct{}

// NewPDFRenderer renders bills with the core Helvetica font set. The
// rupee glyph is not part of the core fonts, so amounts are prefixed
// with "Rs." instead.
func NewPDFRenderer() PDFRenderer {
	return pdfRenderer{}
}

func (pdfRenderer) RenderPDF(input RenderInput) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.AddPage()

	storeName := strings.TrimSpace(input.Store.Name)
	if storeName == "" {
		storeName = "Pharmacy"
	}

	pdf.SetFont("Helvetica", "B", 15)
	pdf.CellFormat(0, 8, storeName, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range []string{
		input.Store.Address,
		joinNonEmpty("Ph: ", input.Store.Phone),
		joinNonEmpty("GSTIN: ", input.Store.GSTIN),
		joinNonEmpty("DL No: ", input.Store.DLNo),
	} {
		if line != "" {
			pdf.CellFormat(0, 4.5, line, "", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(100, 6, billTitle(input.Invoice.Kind)+" "+input.Invoice.Number, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, "Date: "+formatDate(input.Invoice.Date), "", 1, "R", false, 0, "")
	if input.Invoice.CustomerName != "" {
		pdf.CellFormat(0, 5, "Customer: "+input.Invoice.CustomerName, "", 1, "L", false, 0, "")
	}
	if input.Invoice.DoctorName != "" {
		pdf.CellFormat(0, 5, "Prescribed by: "+input.Invoice.DoctorName, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	type column struct {
		title string
		width float64
		align string
	}
	columns := []column{
		{"Item", 52, "L"},
		{"Batch", 20, "L"},
		{"Exp", 14, "L"},
		{"Qty", 12, "R"},
		{"MRP", 20, "R"},
		{"Rate", 20, "R"},
		{"GST%", 14, "R"},
		{"Amount", 24, "R"},
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(240, 240, 240)
	for _, col := range columns {
		pdf.CellFormat(col.width, 6, col.title, "1", 0, col.align, true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, line := range input.Lines {
		cells := []string{
			line.ItemName,
			line.Batch,
			line.Expiry,
			fmt.Sprintf("%d", line.Quantity),
			formatAmount(line.MRP),
			formatAmount(line.Rate),
			formatPercent(line.GSTPercent),
			formatAmount(line.Total),
		}
		for i, col := range columns {
			pdf.CellFormat(col.width, 5.5, cells[i], "1", 0, col.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(3)
	writeTotal := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 9)
		pdf.CellFormat(130, 5, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(26, 5, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 5, value, "", 1, "R", false, 0, "")
	}
	writeTotal("Taxable", "Rs. "+formatAmount(input.Invoice.GrossAmount), false)
	writeTotal("CGST", "Rs. "+formatAmount(input.Invoice.CGSTAmount), false)
	writeTotal("SGST", "Rs. "+formatAmount(input.Invoice.SGSTAmount), false)
	if !input.Invoice.DiscountAmount.IsZero() {
		writeTotal("Discount", "-Rs. "+formatAmount(input.Invoice.DiscountAmount), false)
	}
	if !input.Invoice.RoundOff.IsZero() {
		writeTotal("Round Off", "Rs. "+formatAmount(input.Invoice.RoundOff), false)
	}
	label := "Total"
	if isReturn(input.Invoice.Kind) {
		label = "Refund"
	}
	writeTotal(label, fmt.Sprintf("Rs. %d", input.Invoice.FinalAmount), true)

	if !input.Invoice.SavedFromMRP.IsZero() {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 5, "You saved Rs. "+formatAmount(input.Invoice.SavedFromMRP)+" on MRP today.", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func joinNonEmpty(prefix, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return prefix + value
}
