package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"
	reportdomain "github.com/aushadhi/pos/internal/report/domain"
)

const exportSheet = "Sheet1"

var exportHeaders = []string{
	"Day",
	"Invoices",
	"Returns",
	"Taxable Value",
	"CGST",
	"SGST",
	"Discount",
	"Sales Total",
	"Returns Total",
	"Net Total",
	"Saved From MRP",
}

// ExportRangeXLSX renders persisted daily summaries as an Excel
// workbook, one row per day plus a totals row.
func (s *Service) ExportRangeXLSX(ctx context.Context, req reportdomain.RangeRequest) ([]byte, error) {
	summaries, err := s.ListRange(ctx, req)
	if err != nil {
		return nil, err
	}

	xlsx := excelize.NewFile()
	for col, header := range exportHeaders {
		xlsx.SetCellValue(exportSheet, cellRef(col, 1), header)
	}

	var salesTotal, returnsTotal, netTotal int64
	for i, summary := range summaries {
		row := i + 2
		xlsx.SetCellValue(exportSheet, cellRef(0, row), summary.Day)
		xlsx.SetCellValue(exportSheet, cellRef(1, row), summary.InvoiceCount)
		xlsx.SetCellValue(exportSheet, cellRef(2, row), summary.ReturnCount)
		xlsx.SetCellValue(exportSheet, cellRef(3, row), summary.GrossAmount.StringFixed(2))
		xlsx.SetCellValue(exportSheet, cellRef(4, row), summary.CGSTAmount.StringFixed(2))
		xlsx.SetCellValue(exportSheet, cellRef(5, row), summary.SGSTAmount.StringFixed(2))
		xlsx.SetCellValue(exportSheet, cellRef(6, row), summary.DiscountTotal.StringFixed(2))
		xlsx.SetCellValue(exportSheet, cellRef(7, row), summary.SalesTotal)
		xlsx.SetCellValue(exportSheet, cellRef(8, row), summary.ReturnsTotal)
		xlsx.SetCellValue(exportSheet, cellRef(9, row), summary.NetTotal)
		xlsx.SetCellValue(exportSheet, cellRef(10, row), summary.SavedFromMRP.StringFixed(2))

		salesTotal += summary.SalesTotal
		returnsTotal += summary.ReturnsTotal
		netTotal += summary.NetTotal
	}

	totalRow := len(summaries) + 2
	xlsx.SetCellValue(exportSheet, cellRef(0, totalRow), "Total")
	xlsx.SetCellValue(exportSheet, cellRef(7, totalRow), salesTotal)
	xlsx.SetCellValue(exportSheet, cellRef(8, totalRow), returnsTotal)
	xlsx.SetCellValue(exportSheet, cellRef(9, totalRow), netTotal)

	var buf bytes.Buffer
	if err := xlsx.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%c%d", 'A'+col, row)
}
