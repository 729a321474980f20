package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"memorial-park-svc/internal/models"
)

var generatedAt = time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

func open(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestExport_TotalsRowSumsOnlySummableColumns(t *testing.T) {
	ds := models.ReportDataset{
		Kind:    "revenue",
		Title:   "Monthly Revenue",
		Headers: []string{"Month", "Revenue", "Payments"},
		Rows: [][]interface{}{
			{"Jan", float64(10000), float64(5)},
			{"Feb", float64(12000), float64(6)},
		},
	}

	data, filename, err := Export(ds, Options{CompanyName: "Memorial Park", Filters: "All records", GeneratedAt: generatedAt})
	require.NoError(t, err)
	assert.Equal(t, "revenue_report_20250315_143000.xlsx", filename)

	f := open(t, data)
	sheet := "Monthly Revenue"

	label, _ := f.GetCellValue(sheet, "A8")
	assert.Equal(t, "TOTAL", label)
	monthFormula, _ := f.GetCellFormula(sheet, "A8")
	assert.Empty(t, monthFormula, "Month is never summed")

	formula, err := f.GetCellFormula(sheet, "B8")
	require.NoError(t, err)
	assert.Equal(t, "SUM(B6:B7)", formula)
	formula, _ = f.GetCellFormula(sheet, "C8")
	assert.Equal(t, "SUM(C6:C7)", formula)

	revenue, err := f.CalcCellValue(sheet, "B8", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "22000", revenue)
	payments, err := f.CalcCellValue(sheet, "C8", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "11", payments)
}

func TestExport_Layout(t *testing.T) {
	ds := models.ReportDataset{
		Kind:    "payments",
		Title:   "Payments",
		Headers: []string{"Customer Name", "Amount", "Method"},
		Rows:    [][]interface{}{{"Juan", "5,000.50", "cash"}},
	}
	data, _, err := Export(ds, Options{CompanyName: "Memorial Park", Filters: "Garden: Peace", GeneratedAt: generatedAt})
	require.NoError(t, err)

	f := open(t, data)
	sheet := "Payments"
	assert.Equal(t, []string{"Payments"}, f.GetSheetList())

	company, _ := f.GetCellValue(sheet, "A1")
	assert.Equal(t, "Memorial Park", company)
	meta, _ := f.GetCellValue(sheet, "A3")
	assert.Equal(t, "Filters: Garden: Peace | Generated: Mar 15, 2025 02:30 PM", meta)
	blank, _ := f.GetCellValue(sheet, "A4")
	assert.Empty(t, blank)
	header, _ := f.GetCellValue(sheet, "B5")
	assert.Equal(t, "Amount", header)

	merged, err := f.GetMergeCells(sheet)
	require.NoError(t, err)
	require.Len(t, merged, BannerRows)
	assert.Equal(t, "A1", merged[0].GetStartAxis())
	assert.Equal(t, "C1", merged[0].GetEndAxis())

	amount, _ := f.GetCellValue(sheet, "B6", excelize.Options{RawCellValue: true})
	assert.Equal(t, "5000.5", amount, "numeric strings in money columns become numbers")

	styleID, _ := f.GetCellStyle(sheet, "B6")
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.CustomNumFmt)
	assert.Equal(t, `"₱"#,##0.00`, *style.CustomNumFmt)

	methodFormula, _ := f.GetCellFormula(sheet, "C7")
	assert.Empty(t, methodFormula)
}

func TestExport_InventoryOccupancyRecomputed(t *testing.T) {
	ds := models.ReportDataset{
		Kind:    "inventory",
		Title:   "Lot Inventory",
		Headers: []string{"Garden", "Total Lots", "Available", "Sold", "Occupancy Rate"},
		Rows: [][]interface{}{
			{"Peace", float64(100), float64(60), float64(40), float64(0.4)},
			{"Hope", float64(50), float64(40), float64(10), float64(0.2)},
		},
	}
	data, _, err := Export(ds, Options{CompanyName: "Memorial Park", GeneratedAt: generatedAt})
	require.NoError(t, err)

	f := open(t, data)
	sheet := "Lot Inventory"

	rate, _ := f.GetCellFormula(sheet, "E8")
	assert.Equal(t, "IF(B8=0,0,D8/B8)", rate)

	sold, _ := f.GetCellFormula(sheet, "D8")
	assert.Equal(t, "SUM(D6:D7)", sold)

	styleID, _ := f.GetCellStyle(sheet, "E8")
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	assert.Equal(t, 10, style.NumFmt)
}

func TestExport_NoColumns(t *testing.T) {
	_, _, err := Export(models.ReportDataset{Kind: "empty"}, Options{})
	assert.Error(t, err)
}

func TestExport_NoRowsSkipsTotals(t *testing.T) {
	data, _, err := Export(models.ReportDataset{Kind: "revenue", Headers: []string{"Month", "Revenue"}}, Options{GeneratedAt: generatedAt})
	require.NoError(t, err)

	f := open(t, data)
	sheet := "Report"
	title, _ := f.GetCellValue(sheet, "A2")
	assert.Equal(t, "Revenue Report", title)
	v, _ := f.GetCellValue(sheet, "A6")
	assert.Empty(t, v)
}

func TestColumnPatterns(t *testing.T) {
	tests := []struct {
		header   string
		summable bool
		currency bool
	}{
		{"Revenue", true, true},
		{"Payments", true, false},
		{"Total Lots", true, false},
		{"Lot Count", true, false},
		{"Total Amount", true, true},
		{"Occupancy Rate", false, false},
		{"Payment Date", false, false},
		{"Month", false, false},
		{"Customer Name", false, false},
		{"Payment Method", false, false},
		{"ID", false, false},
		{"No.", false, false},
		{"Penalty", true, true},
		{"Deceased", true, false},
		{"Collection %", false, true},
		{"Monthly Amount", true, true},
		{"Amount Paid This Month", true, true},
		{"Total Yearly Revenue", true, true},
		{"Payment Count", true, false},
		{"Payment Month", false, false},
		{"Year", false, false},
		{"Lot Type", false, false},
		{"Due Dates", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.summable, IsSummable(tt.header))
			assert.Equal(t, tt.currency, IsCurrency(tt.header))
		})
	}
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Report", SheetName(""))
	assert.Equal(t, "Revenue 2025", SheetName("Revenue / 2025"))
	assert.Len(t, []rune(SheetName("An extremely long report title that overflows")), 31)
}

func TestDescribeFilters(t *testing.T) {
	assert.Equal(t, "All records", DescribeFilters(models.ReportFilter{}))
	assert.Equal(t, "From: 2025-01-01, Garden: Peace", DescribeFilters(models.ReportFilter{From: "2025-01-01", Garden: "Peace"}))
}
